// Package raster draws gauges into RGBA images and encodes them as PNG.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/roffe/speedo/pkg/colors"
	"github.com/roffe/speedo/pkg/common"
	"github.com/roffe/speedo/pkg/fontface"
	"github.com/roffe/speedo/pkg/speedometer"
)

// degrees per polygon step when flattening arcs
const arcResolution = 0.5

// glow layers are drawn this much more transparent than the stroke
const glowAlpha = 0.35

// Canvas is a speedometer.Canvas backed by an *image.RGBA.
type Canvas struct {
	img   *image.RGBA
	fonts *fontface.Cache
}

var _ speedometer.Canvas = (*Canvas)(nil)

func New(width, height int, bg color.Color, fonts *fontface.Cache) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	if bg != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}
	return &Canvas{img: img, fonts: fonts}
}

func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

func (c *Canvas) DrawArcs(oval speedometer.Rect, arcs []speedometer.Arc, p speedometer.Paint) {
	b := c.img.Bounds()
	if len(arcs) == 0 || b.Empty() {
		return
	}
	center := oval.Center()
	r := oval.Width() * common.OneHalf
	if r <= 0 {
		return
	}
	if p.Glow > 0 {
		glow := colors.Fade(p.Color, glowAlpha)
		c.strokeArcs(center, r, arcs, p.StrokeWidth+2*p.Glow, glow)
	}
	c.strokeArcs(center, r, arcs, max(p.StrokeWidth, 1), p.Color)
}

func (c *Canvas) strokeArcs(center speedometer.Point, r float64, arcs []speedometer.Arc, width float64, col color.RGBA) {
	b := c.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	outer := r + width*common.OneHalf
	inner := max(r-width*common.OneHalf, 0)
	for _, a := range arcs {
		steps := int(math.Ceil(math.Abs(a.SweepDeg)/arcResolution)) + 1
		pt := func(radius float64, i int) (float32, float32) {
			deg := a.StartDeg + a.SweepDeg*float64(i)/float64(steps-1)
			sin, cos := math.Sincos(deg * common.PiDiv180)
			return float32(center.X + radius*cos), float32(center.Y + radius*sin)
		}
		z.MoveTo(pt(outer, 0))
		for i := 1; i < steps; i++ {
			z.LineTo(pt(outer, i))
		}
		for i := steps - 1; i >= 0; i-- {
			z.LineTo(pt(inner, i))
		}
		z.ClosePath()
	}
	z.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

// DrawTextOnPath lays glyphs one by one along path, each rotated to the
// path's tangent at its start.
func (c *Canvas) DrawTextOnPath(text string, path speedometer.Path, hOffset, vOffset float64, p speedometer.Paint) {
	face, err := c.fonts.Face(p.TextSize)
	if err != nil {
		return
	}
	src := image.NewUniform(p.Color)
	s := hOffset
	prev := rune(-1)
	for _, r := range text {
		if prev >= 0 {
			s += fontface.Fixed(face.Kern(prev, r))
		}
		prev = r
		dr, mask, maskp, adv, ok := face.Glyph(fixed.Point26_6{}, r)
		if ok && !dr.Empty() {
			glyph := image.NewRGBA(dr)
			draw.DrawMask(glyph, dr, src, image.Point{}, mask, maskp, draw.Over)
			at, angle := speedometer.Place(path, s, vOffset)
			sin, cos := math.Sincos(angle)
			m := f64.Aff3{
				cos, -sin, at.X,
				sin, cos, at.Y,
			}
			xdraw.BiLinear.Transform(c.img, m, glyph, dr, xdraw.Over, nil)
		}
		s += fontface.Fixed(adv)
	}
}

// Render sizes g to a side x side square, draws it and returns the canvas.
func Render(g *speedometer.Gauge, fonts *fontface.Cache, side int, bg color.Color) *Canvas {
	sz := float64(side)
	g.Measure(speedometer.ExactlySpec(sz), speedometer.ExactlySpec(sz))
	g.OnResize(sz, sz)
	c := New(side, side, bg, fonts)
	g.Render(c)
	return c
}

// WritePNG renders g and encodes the result to w.
func WritePNG(w io.Writer, g *speedometer.Gauge, fonts *fontface.Cache, side int, bg color.Color) error {
	return Render(g, fonts, side, bg).WritePNG(w)
}

// SavePNG renders g into the file at path.
func SavePNG(path string, g *speedometer.Gauge, fonts *fontface.Cache, side int, bg color.Color) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, g, fonts, side, bg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
