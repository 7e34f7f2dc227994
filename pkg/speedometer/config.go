package speedometer

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

const (
	DefaultMax             = 300
	DefaultScaleTextSize   = 14
	DefaultReadingTextSize = 65
	DefaultStrokeWidth     = 35
	DefaultTickStep        = 4
	DefaultTickWidth       = 2
	DefaultLegendIncrement = 20
	DefaultLegendOffset    = -30
	DefaultGlow            = 5
	PreferredSize          = 300

	// MinTickStep bounds the background scale to 4096 segments.
	MinTickStep = 180.0 / 4096
	// MaxLegendLabels bounds Max / LegendIncrement.
	MaxLegendLabels = 4096
)

var (
	ErrInvalidMax       = errors.New("max must be finite and greater than zero")
	ErrInvalidTicks     = errors.New("tick step must be at least 180/4096 degrees and width finite and greater than zero")
	ErrInvalidIncrement = errors.New("legend increment must be greater than zero and yield at most 4096 labels")
	ErrInvalidTextSize  = errors.New("text size must be finite and greater than zero")
	ErrInvalidStroke    = errors.New("stroke width and glow must be finite and not negative")
)

// Config is the static configuration of a gauge. It is replaced as a
// whole, never patched field by field while rendering.
type Config struct {
	Max float64

	OnColor      color.RGBA
	OffColor     color.RGBA
	ScaleColor   color.RGBA
	ReadingColor color.RGBA

	ScaleTextSize   float64
	ReadingTextSize float64

	StrokeWidth float64
	TickStep    float64 // degrees between segment starts
	TickWidth   float64 // degrees covered by one segment

	LegendIncrement float64
	LegendOffset    float64 // perpendicular baseline offset of legend labels
	Glow            float64 // blur radius of the lit segments, cosmetic
}

func DefaultConfig() Config {
	return Config{
		Max:             DefaultMax,
		OnColor:         color.RGBA{R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF},
		OffColor:        color.RGBA{R: 0x3E, G: 0x3E, B: 0x3E, A: 0xFF},
		ScaleColor:      color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		ReadingColor:    color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		ScaleTextSize:   DefaultScaleTextSize,
		ReadingTextSize: DefaultReadingTextSize,
		StrokeWidth:     DefaultStrokeWidth,
		TickStep:        DefaultTickStep,
		TickWidth:       DefaultTickWidth,
		LegendIncrement: DefaultLegendIncrement,
		LegendOffset:    DefaultLegendOffset,
		Glow:            DefaultGlow,
	}
}

// Validate rejects configs that cannot be drawn in bounded time: every
// size must be finite and the scale and legend loops are capped.
func (c Config) Validate() error {
	if !positive(c.Max) {
		return fmt.Errorf("config: %w (got %v)", ErrInvalidMax, c.Max)
	}
	if !(c.TickStep >= MinTickStep) || !positive(c.TickWidth) {
		return fmt.Errorf("config: %w (step %v, width %v)", ErrInvalidTicks, c.TickStep, c.TickWidth)
	}
	if !(c.LegendIncrement > 0) || !(c.Max/c.LegendIncrement <= MaxLegendLabels) {
		return fmt.Errorf("config: %w (got %v for max %v)", ErrInvalidIncrement, c.LegendIncrement, c.Max)
	}
	if !positive(c.ScaleTextSize) || !positive(c.ReadingTextSize) {
		return fmt.Errorf("config: %w (scale %v, reading %v)", ErrInvalidTextSize, c.ScaleTextSize, c.ReadingTextSize)
	}
	if !nonNegative(c.StrokeWidth) || !nonNegative(c.Glow) || math.IsInf(c.LegendOffset, 0) || math.IsNaN(c.LegendOffset) {
		return fmt.Errorf("config: %w (stroke %v, glow %v, legend offset %v)", ErrInvalidStroke, c.StrokeWidth, c.Glow, c.LegendOffset)
	}
	return nil
}

// positive is false for NaN and ±Inf.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

type Option func(*Gauge)

func WithMax(maxValue float64) Option {
	return func(g *Gauge) { g.cfg.Max = maxValue }
}

// WithValue sets the initial value. It is clamped once the config is valid.
func WithValue(v float64) Option {
	return func(g *Gauge) { g.value = v }
}

func WithOnColor(c color.RGBA) Option {
	return func(g *Gauge) { g.cfg.OnColor = c }
}

func WithOffColor(c color.RGBA) Option {
	return func(g *Gauge) { g.cfg.OffColor = c }
}

func WithScaleColor(c color.RGBA) Option {
	return func(g *Gauge) { g.cfg.ScaleColor = c }
}

func WithReadingColor(c color.RGBA) Option {
	return func(g *Gauge) { g.cfg.ReadingColor = c }
}

func WithScaleTextSize(size float64) Option {
	return func(g *Gauge) { g.cfg.ScaleTextSize = size }
}

func WithReadingTextSize(size float64) Option {
	return func(g *Gauge) { g.cfg.ReadingTextSize = size }
}

func WithStrokeWidth(w float64) Option {
	return func(g *Gauge) { g.cfg.StrokeWidth = w }
}

// WithTicks sets the angular step and width of the scale segments in degrees.
func WithTicks(step, width float64) Option {
	return func(g *Gauge) {
		g.cfg.TickStep = step
		g.cfg.TickWidth = width
	}
}

func WithLegendIncrement(inc float64) Option {
	return func(g *Gauge) { g.cfg.LegendIncrement = inc }
}

// WithConfig replaces the whole config. Options after it still apply.
func WithConfig(cfg Config) Option {
	return func(g *Gauge) { g.cfg = cfg }
}

// WithInvalidate registers the repaint request hook called after every
// accepted value change.
func WithInvalidate(fn func()) Option {
	return func(g *Gauge) { g.invalidate = fn }
}
