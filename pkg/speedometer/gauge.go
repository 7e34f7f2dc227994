// Package speedometer holds the state and drawing model of an analog
// speedometer gauge: a half circle of dashed segments lit in proportion
// to the current value, a ring of scale labels and a centered readout.
//
// The package has no UI dependency. Hosts feed it size and value events
// and hand it a Canvas to draw on.
package speedometer

import (
	"fmt"
	"math"
)

// ValueChangeListener is implemented by anything that accepts value
// updates from external controls.
type ValueChangeListener interface {
	OnValueChanged(v float64)
}

// TextMeasurer returns the total advance width of text at the given size.
type TextMeasurer interface {
	MeasureText(text string, size float64) float64
}

type Gauge struct {
	cfg   Config
	value float64

	measurer   TextMeasurer
	invalidate func()
	dirty      bool

	geom     Geometry
	measured bool
	ready    bool
}

var _ ValueChangeListener = (*Gauge)(nil)

func New(m TextMeasurer, opts ...Option) (*Gauge, error) {
	if m == nil {
		return nil, fmt.Errorf("speedometer: nil text measurer")
	}
	g := &Gauge{
		cfg:      DefaultConfig(),
		measurer: m,
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	g.value = clamp(g.value, g.cfg.Max)
	return g, nil
}

func (g *Gauge) Config() Config { return g.cfg }

// SetConfig replaces the configuration. The current value is re-clamped
// against the new maximum and a repaint is requested.
func (g *Gauge) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	g.cfg = cfg
	g.value = clamp(g.value, cfg.Max)
	g.requestRepaint()
	return nil
}

func (g *Gauge) Value() float64 { return g.value }
func (g *Gauge) Max() float64   { return g.cfg.Max }

// SetValue stores v saturated to [0, Max]. Out of range input is not an error.
func (g *Gauge) SetValue(v float64) {
	g.value = clamp(v, g.cfg.Max)
}

// OnValueChanged sets the value and asks the host for a repaint.
func (g *Gauge) OnValueChanged(v float64) {
	g.SetValue(v)
	g.requestRepaint()
}

// Dirty reports whether a repaint was requested since the last ClearDirty.
func (g *Gauge) Dirty() bool { return g.dirty }

func (g *Gauge) ClearDirty() { g.dirty = false }

func (g *Gauge) requestRepaint() {
	g.dirty = true
	if g.invalidate != nil {
		g.invalidate()
	}
}

func clamp(v, hi float64) float64 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v > hi:
		return hi
	}
	return v
}
