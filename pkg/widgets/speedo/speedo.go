// Package speedo is the Fyne host for a speedometer.Gauge.
package speedo

import (
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/roffe/speedo/pkg/colors"
	"github.com/roffe/speedo/pkg/common"
	"github.com/roffe/speedo/pkg/speedometer"
)

// glow lines are drawn under lit segments at this fraction of their alpha
const glowAlpha = 0.35

type Speedo struct {
	widget.BaseWidget

	gauge   *speedometer.Gauge
	minsize fyne.Size
}

var _ speedometer.ValueChangeListener = (*Speedo)(nil)

// TextMeasurer measures with the current Fyne theme font.
type TextMeasurer struct {
	Style fyne.TextStyle
}

func (m TextMeasurer) MeasureText(text string, size float64) float64 {
	if text == "" {
		return 0
	}
	return float64(fyne.MeasureText(text, float32(size), m.Style).Width)
}

func New(opts ...speedometer.Option) (*Speedo, error) {
	s := &Speedo{
		minsize: fyne.NewSize(100, 100),
	}
	opts = append(opts, speedometer.WithInvalidate(s.Refresh))
	g, err := speedometer.New(TextMeasurer{}, opts...)
	if err != nil {
		return nil, err
	}
	s.gauge = g
	s.ExtendBaseWidget(s)
	return s, nil
}

func (s *Speedo) Gauge() *speedometer.Gauge { return s.gauge }

func (s *Speedo) Value() float64 { return s.gauge.Value() }

// OnValueChanged must be called on the Fyne goroutine, e.g. from a button
// callback. Use Bind for values coming from other goroutines.
func (s *Speedo) OnValueChanged(v float64) {
	s.gauge.OnValueChanged(v)
}

func (s *Speedo) SetConfig(cfg speedometer.Config) error {
	return s.gauge.SetConfig(cfg)
}

func (s *Speedo) SetMinSize(size fyne.Size) {
	s.minsize = size
}

func (s *Speedo) CreateRenderer() fyne.WidgetRenderer {
	return &speedoRenderer{s: s}
}

type speedoRenderer struct {
	s       *Speedo
	size    fyne.Size
	origin  fyne.Position
	objects []fyne.CanvasObject
}

func (r *speedoRenderer) Layout(space fyne.Size) {
	if r.size == space && r.s.gauge.Ready() {
		return
	}
	r.size = space
	w, h := float64(space.Width), float64(space.Height)
	side := r.s.gauge.Measure(speedometer.ExactlySpec(w), speedometer.ExactlySpec(h))
	r.s.gauge.OnResize(w, h)
	r.origin = fyne.NewPos(float32(w-side)*common.OneHalf, float32(h-side)*common.OneHalf)
	r.build()
}

func (r *speedoRenderer) MinSize() fyne.Size { return r.s.minsize }

func (r *speedoRenderer) Refresh() {
	r.build()
	canvas.Refresh(r.s)
}

func (r *speedoRenderer) Destroy() {}

func (r *speedoRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *speedoRenderer) build() {
	r.objects = r.objects[:0]
	r.s.gauge.Render(r)
	r.s.gauge.ClearDirty()
}

func (r *speedoRenderer) pos(p speedometer.Point) fyne.Position {
	return r.origin.AddXY(float32(p.X), float32(p.Y))
}

// DrawArcs approximates every segment with its chord.
func (r *speedoRenderer) DrawArcs(oval speedometer.Rect, arcs []speedometer.Arc, p speedometer.Paint) {
	center := oval.Center()
	radius := oval.Width() * common.OneHalf
	chord := func(a speedometer.Arc) (fyne.Position, fyne.Position) {
		s0, c0 := math.Sincos(a.StartDeg * common.PiDiv180)
		s1, c1 := math.Sincos((a.StartDeg + a.SweepDeg) * common.PiDiv180)
		return r.pos(speedometer.Point{X: center.X + radius*c0, Y: center.Y + radius*s0}),
			r.pos(speedometer.Point{X: center.X + radius*c1, Y: center.Y + radius*s1})
	}
	if p.Glow > 0 {
		glow := colors.Fade(p.Color, glowAlpha)
		for _, a := range arcs {
			p1, p2 := chord(a)
			r.objects = append(r.objects, &canvas.Line{
				Position1:   p1,
				Position2:   p2,
				StrokeColor: glow,
				StrokeWidth: float32(p.StrokeWidth + 2*p.Glow),
			})
		}
	}
	for _, a := range arcs {
		p1, p2 := chord(a)
		r.objects = append(r.objects, &canvas.Line{
			Position1:   p1,
			Position2:   p2,
			StrokeColor: p.Color,
			StrokeWidth: float32(p.StrokeWidth),
		})
	}
}

// DrawTextOnPath keeps text upright and centers it on the point where the
// middle of the text falls on the path.
func (r *speedoRenderer) DrawTextOnPath(text string, path speedometer.Path, hOffset, vOffset float64, p speedometer.Paint) {
	size := fyne.MeasureText(text, float32(p.TextSize), fyne.TextStyle{})
	mid, _ := speedometer.Place(path, hOffset+float64(size.Width)*common.OneHalf, vOffset)
	t := canvas.NewText(text, p.Color)
	t.TextSize = float32(p.TextSize)
	t.Alignment = fyne.TextAlignCenter
	t.Resize(size)
	t.Move(r.pos(mid).SubtractXY(size.Width*common.OneHalf, size.Height))
	r.objects = append(r.objects, t)
}
