package speedometer

import (
	"math"
	"strconv"

	"github.com/roffe/speedo/pkg/common"
)

const (
	scaleStartDeg = -180.0
	scaleSweepDeg = 180.0
	legendStart   = 180.0 // the legend circle starts at 9 o'clock and runs over the top
)

// Render draws the off scale, the lit scale, the legend and the readout,
// in that order. Nothing is drawn before the first OnResize. Render only
// reads gauge state.
func (g *Gauge) Render(c Canvas) {
	if !g.ready {
		return
	}
	g.drawScaleBackground(c)
	g.drawScale(c)
	g.drawLegend(c)
	g.drawReading(c)
}

// Segments returns one arc per tick starting at -180° and stepping by the
// tick step while the start angle is below stop. A partial step before
// stop is not drawn.
func (g *Gauge) Segments(stop float64) []Arc {
	var arcs []Arc
	for i := 0; ; i++ {
		start := scaleStartDeg + float64(i)*g.cfg.TickStep
		if !(start < stop) {
			break
		}
		arcs = append(arcs, Arc{StartDeg: start, SweepDeg: g.cfg.TickWidth})
	}
	return arcs
}

// ActiveStop is the angle the lit scale runs up to for the current value.
func (g *Gauge) ActiveStop() float64 {
	return scaleStartDeg + g.value/g.cfg.Max*scaleSweepDeg
}

func (g *Gauge) ActiveSegments() int {
	return len(g.Segments(g.ActiveStop()))
}

func (g *Gauge) offPaint() Paint {
	return Paint{Color: g.cfg.OffColor, StrokeWidth: g.cfg.StrokeWidth}
}

func (g *Gauge) onPaint() Paint {
	return Paint{Color: g.cfg.OnColor, StrokeWidth: g.cfg.StrokeWidth, Glow: g.cfg.Glow}
}

func (g *Gauge) drawScaleBackground(c Canvas) {
	c.DrawArcs(g.geom.Oval, g.Segments(scaleStartDeg+scaleSweepDeg), g.offPaint())
}

func (g *Gauge) drawScale(c Canvas) {
	c.DrawArcs(g.geom.Oval, g.Segments(g.ActiveStop()), g.onPaint())
}

// Label is one legend entry.
type Label struct {
	Value  float64
	Text   string
	Offset float64 // arc length along the legend circle
}

// LegendLabels lists the scale labels from 0 up to, but not including,
// Max. A label sits at Value/Max of the half circumference.
func (g *Gauge) LegendLabels() []Label {
	halfCircumference := g.geom.Radius * math.Pi
	var labels []Label
	for i := 0; ; i++ {
		v := float64(i) * g.cfg.LegendIncrement
		if !(v < g.cfg.Max) {
			break
		}
		labels = append(labels, Label{
			Value:  v,
			Text:   strconv.FormatFloat(v, 'f', -1, 64),
			Offset: v * halfCircumference / g.cfg.Max,
		})
	}
	return labels
}

func (g *Gauge) legendPath() Circle {
	return Circle{
		Center:   Point{X: g.geom.CenterX, Y: g.geom.CenterY},
		Radius:   g.geom.Radius,
		StartDeg: legendStart,
	}
}

func (g *Gauge) drawLegend(c Canvas) {
	p := Paint{Color: g.cfg.ScaleColor, StrokeWidth: 2, TextSize: g.cfg.ScaleTextSize}
	path := g.legendPath()
	for _, l := range g.LegendLabels() {
		c.DrawTextOnPath(l.Text, path, l.Offset, g.cfg.LegendOffset, p)
	}
}

// Reading is the readout text: the value truncated toward zero.
func (g *Gauge) Reading() string {
	return strconv.FormatFloat(math.Trunc(g.value), 'f', 0, 64)
}

// ReadingPath is a horizontal line as wide as the readout text, centered
// on the gauge center.
func (g *Gauge) ReadingPath() Line {
	w := g.measurer.MeasureText(g.Reading(), g.cfg.ReadingTextSize)
	half := w * common.OneHalf
	return Line{
		From: Point{X: g.geom.CenterX - half, Y: g.geom.CenterY},
		To:   Point{X: g.geom.CenterX + half, Y: g.geom.CenterY},
	}
}

func (g *Gauge) drawReading(c Canvas) {
	p := Paint{Color: g.cfg.ReadingColor, TextSize: g.cfg.ReadingTextSize}
	c.DrawTextOnPath(g.Reading(), g.ReadingPath(), 0, 0, p)
}
