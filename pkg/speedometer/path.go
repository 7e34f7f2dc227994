package speedometer

import (
	"math"

	"github.com/roffe/speedo/pkg/common"
)

type Point struct {
	X, Y float64
}

// Rect is the bounding box of an arc. The gauge's "oval" is always square.
type Rect struct {
	Left, Top, Right, Bottom float64
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) * common.OneHalf, Y: (r.Top + r.Bottom) * common.OneHalf}
}

// Path is something text can be laid out along. Distances are arc lengths
// from the start of the path, angles are radians on a y-down screen.
type Path interface {
	Length() float64
	PointAt(s float64) (p Point, tangent float64)
}

// Circle is a full circle traversed clockwise on screen, starting at
// StartDeg (0 = 3 o'clock, 90 = 6 o'clock).
type Circle struct {
	Center   Point
	Radius   float64
	StartDeg float64
}

func (c Circle) Length() float64 { return 2 * math.Pi * c.Radius }

func (c Circle) PointAt(s float64) (Point, float64) {
	theta := c.StartDeg * common.PiDiv180
	if c.Radius > 0 {
		theta += s / c.Radius
	}
	sin, cos := math.Sincos(theta)
	return Point{X: c.Center.X + c.Radius*cos, Y: c.Center.Y + c.Radius*sin}, theta + math.Pi/2
}

type Line struct {
	From, To Point
}

func (l Line) Length() float64 { return math.Hypot(l.To.X-l.From.X, l.To.Y-l.From.Y) }

func (l Line) PointAt(s float64) (Point, float64) {
	dx, dy := l.To.X-l.From.X, l.To.Y-l.From.Y
	angle := math.Atan2(dy, dx)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return l.From, angle
	}
	t := s / length
	return Point{X: l.From.X + dx*t, Y: l.From.Y + dy*t}, angle
}

// Place returns where text laid out on path starts when shifted hOffset
// along it and vOffset perpendicular to it, together with the baseline
// angle. Negative vOffset moves the baseline to the left of the direction
// of travel, which is "above" for text reading along the path.
func Place(path Path, hOffset, vOffset float64) (Point, float64) {
	p, angle := path.PointAt(hOffset)
	sin, cos := math.Sincos(angle)
	return Point{X: p.X - vOffset*sin, Y: p.Y + vOffset*cos}, angle
}
