// Package gaugeconfig reads gauge settings from a TOML file.
//
//	max = 240
//	on_color = "#ffa500"
//	reading_text_size = 65
//
//	[serial]
//	port = "/dev/ttyUSB0"
//	baud = 9600
//	scale = 3.6
//
// Keys left out of the file keep their defaults.
package gaugeconfig

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/shibukawa/configdir"

	"github.com/roffe/speedo/pkg/colors"
	"github.com/roffe/speedo/pkg/speedometer"
)

const (
	CONFFILE = "speedo.toml"

	vendor  = "roffe"
	appName = "speedo"
)

type Serial struct {
	Port  string  `toml:"port,omitempty"`
	Baud  int     `toml:"baud,omitempty"`
	Scale float64 `toml:"scale,omitempty"`
}

type File struct {
	Max             float64 `toml:"max"`
	Value           float64 `toml:"value"`
	OnColor         string  `toml:"on_color"`
	OffColor        string  `toml:"off_color"`
	ScaleColor      string  `toml:"scale_color"`
	ReadingColor    string  `toml:"reading_color"`
	ScaleTextSize   float64 `toml:"scale_text_size"`
	ReadingTextSize float64 `toml:"reading_text_size"`
	StrokeWidth     float64 `toml:"stroke_width"`
	TickStep        float64 `toml:"tick_step"`
	TickWidth       float64 `toml:"tick_width"`
	LegendIncrement float64 `toml:"legend_increment"`
	Serial          Serial  `toml:"serial,omitempty"`

	Path string `toml:"-"`
	md   *toml.MetaData
}

// Parse decodes a TOML document. Unknown keys are an error so typos do
// not silently fall back to defaults.
func Parse(r io.Reader) (*File, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("gaugeconfig: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("gaugeconfig: unknown key %q", undecoded[0].String())
	}
	f.md = &md
	return &f, nil
}

func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	f, err := Parse(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// Locate returns the path of CONFFILE in the working directory or the
// user config folders, or "" when there is none.
func Locate() string {
	cd := configdir.New(vendor, appName)
	cd.LocalPath, _ = filepath.Abs(".")
	folder := cd.QueryFolderContainsFile(CONFFILE)
	if folder == nil {
		return ""
	}
	return filepath.Join(folder.Path, CONFFILE)
}

// LoadDefault loads the located config file. A missing file is not an
// error and yields an empty File.
func LoadDefault() (*File, error) {
	path := Locate()
	if path == "" {
		return &File{}, nil
	}
	f, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return &File{}, nil
	}
	return f, err
}

func (f *File) defined(key ...string) bool {
	return f.md != nil && f.md.IsDefined(key...)
}

// Options maps the keys present in the file onto gauge options.
func (f *File) Options() ([]speedometer.Option, error) {
	var opts []speedometer.Option
	if f.defined("max") {
		opts = append(opts, speedometer.WithMax(f.Max))
	}
	if f.defined("value") {
		opts = append(opts, speedometer.WithValue(f.Value))
	}
	for _, c := range []struct {
		key  string
		val  string
		with func(color.RGBA) speedometer.Option
	}{
		{"on_color", f.OnColor, speedometer.WithOnColor},
		{"off_color", f.OffColor, speedometer.WithOffColor},
		{"scale_color", f.ScaleColor, speedometer.WithScaleColor},
		{"reading_color", f.ReadingColor, speedometer.WithReadingColor},
	} {
		if !f.defined(c.key) {
			continue
		}
		col, err := colors.Parse(c.val)
		if err != nil {
			return nil, fmt.Errorf("gaugeconfig: %s: %w", c.key, err)
		}
		opts = append(opts, c.with(col))
	}
	if f.defined("scale_text_size") {
		opts = append(opts, speedometer.WithScaleTextSize(f.ScaleTextSize))
	}
	if f.defined("reading_text_size") {
		opts = append(opts, speedometer.WithReadingTextSize(f.ReadingTextSize))
	}
	if f.defined("stroke_width") {
		opts = append(opts, speedometer.WithStrokeWidth(f.StrokeWidth))
	}
	if f.defined("tick_step") || f.defined("tick_width") {
		step, width := float64(speedometer.DefaultTickStep), float64(speedometer.DefaultTickWidth)
		if f.defined("tick_step") {
			step = f.TickStep
		}
		if f.defined("tick_width") {
			width = f.TickWidth
		}
		opts = append(opts, speedometer.WithTicks(step, width))
	}
	if f.defined("legend_increment") {
		opts = append(opts, speedometer.WithLegendIncrement(f.LegendIncrement))
	}
	return opts, nil
}

// FromConfig builds a File describing cfg, suitable for Write.
func FromConfig(cfg speedometer.Config, value float64) *File {
	return &File{
		Max:             cfg.Max,
		Value:           value,
		OnColor:         colors.Hex(cfg.OnColor),
		OffColor:        colors.Hex(cfg.OffColor),
		ScaleColor:      colors.Hex(cfg.ScaleColor),
		ReadingColor:    colors.Hex(cfg.ReadingColor),
		ScaleTextSize:   cfg.ScaleTextSize,
		ReadingTextSize: cfg.ReadingTextSize,
		StrokeWidth:     cfg.StrokeWidth,
		TickStep:        cfg.TickStep,
		TickWidth:       cfg.TickWidth,
		LegendIncrement: cfg.LegendIncrement,
	}
}

func (f *File) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(f)
}
