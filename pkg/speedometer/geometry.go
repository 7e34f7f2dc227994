package speedometer

import "github.com/roffe/speedo/pkg/common"

type MeasureMode int

const (
	Unspecified MeasureMode = iota
	Exactly
	AtMost
)

func (m MeasureMode) String() string {
	switch m {
	case Exactly:
		return "exactly"
	case AtMost:
		return "at most"
	default:
		return "unspecified"
	}
}

// MeasureSpec is the host's constraint for one axis.
type MeasureSpec struct {
	Mode MeasureMode
	Size float64
}

func ExactlySpec(size float64) MeasureSpec { return MeasureSpec{Mode: Exactly, Size: size} }
func AtMostSpec(size float64) MeasureSpec  { return MeasureSpec{Mode: AtMost, Size: size} }

// Geometry is derived from the drawing area size.
type Geometry struct {
	CenterX, CenterY float64
	Radius           float64
	Oval             Rect
}

func chooseDimension(spec MeasureSpec) float64 {
	switch spec.Mode {
	case Exactly, AtMost:
		return spec.Size
	default:
		return PreferredSize
	}
}

// Measure picks the gauge's side length, always a square of the smaller
// chosen axis, and stores the center at half of it.
func (g *Gauge) Measure(width, height MeasureSpec) float64 {
	side := min(chooseDimension(width), chooseDimension(height))
	g.geom.CenterX = side * common.OneHalf
	g.geom.CenterY = side * common.OneHalf
	g.measured = true
	return side
}

// OnResize recomputes radius and oval for a new drawing area. When the
// host never called Measure the center is taken from the area itself.
func (g *Gauge) OnResize(width, height float64) {
	side := max(min(width, height), 0)
	if !g.measured {
		g.geom.CenterX = side * common.OneHalf
		g.geom.CenterY = side * common.OneHalf
	}
	r := side * common.OneFourth
	cx, cy := g.geom.CenterX, g.geom.CenterY
	g.geom.Radius = r
	g.geom.Oval = Rect{Left: cx - r, Top: cy - r, Right: cx + r, Bottom: cy + r}
	g.ready = true
}

func (g *Gauge) Geometry() Geometry { return g.geom }

// Ready reports whether geometry has been computed at least once.
func (g *Gauge) Ready() bool { return g.ready }
