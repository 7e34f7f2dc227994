package theme_test

import (
	"testing"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"

	"github.com/roffe/speedo/pkg/theme"
)

func TestSpeedoTheme(t *testing.T) {
	var th fyne.Theme = theme.SpeedoTheme{}
	assert.Equal(t, theme.Background, th.Color(fynetheme.ColorNameBackground, fynetheme.VariantLight))
	assert.Equal(t, fynetheme.DefaultTheme().Color(fynetheme.ColorNameForeground, fynetheme.VariantDark),
		th.Color(fynetheme.ColorNameForeground, fynetheme.VariantLight))
	assert.Zero(t, th.Size(fynetheme.SizeNameSeparatorThickness))
	assert.Equal(t, float32(14), th.Size(fynetheme.SizeNameText))
}
