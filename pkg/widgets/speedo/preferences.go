package speedo

import (
	"fyne.io/fyne/v2"

	"github.com/roffe/speedo/pkg/colors"
	"github.com/roffe/speedo/pkg/speedometer"
)

const (
	prefOnColor = "speedo.onColor"
	prefValue   = "speedo.value"
)

// PreferenceOptions restores what SavePreferences stored.
func PreferenceOptions(p fyne.Preferences) []speedometer.Option {
	var opts []speedometer.Option
	if hex := p.String(prefOnColor); hex != "" {
		if c, err := colors.ParseHex(hex); err == nil {
			opts = append(opts, speedometer.WithOnColor(c))
		} else {
			fyne.LogError("invalid stored on color", err)
		}
	}
	if v := p.Float(prefValue); v != 0 {
		opts = append(opts, speedometer.WithValue(v))
	}
	return opts
}

func SavePreferences(p fyne.Preferences, g *speedometer.Gauge) {
	p.SetString(prefOnColor, colors.Hex(g.Config().OnColor))
	p.SetFloat(prefValue, g.Value())
}
