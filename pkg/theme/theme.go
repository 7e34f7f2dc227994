package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Background is the window color, also used behind exported images.
var Background = color.RGBA{R: 23, G: 23, B: 24, A: 255}

type SpeedoTheme struct{}

var _ fyne.Theme = SpeedoTheme{}

func (m SpeedoTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return Background
	case theme.ColorNamePrimary:
		return color.RGBA{R: 0xFF, G: 0xA5, B: 0x00, A: 255}
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

func (m SpeedoTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (m SpeedoTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (m SpeedoTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameSeparatorThickness:
		return 0
	case theme.SizeNameInnerPadding:
		return 8
	case theme.SizeNamePadding:
		return 2
	case theme.SizeNameScrollBarSmall:
		return 4
	case theme.SizeNameText:
		return 14
	}
	return theme.DefaultTheme().Size(name)
}
