package raster_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/roffe/speedo/pkg/fontface"
	"github.com/roffe/speedo/pkg/raster"
	"github.com/roffe/speedo/pkg/speedometer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var black = color.RGBA{A: 0xFF}

func setup(t *testing.T, value float64) (*speedometer.Gauge, *fontface.Cache) {
	t.Helper()
	fonts, err := fontface.New()
	require.NoError(t, err)
	t.Cleanup(func() { fonts.Close() })
	g, err := speedometer.New(fonts, speedometer.WithValue(value))
	require.NoError(t, err)
	return g, fonts
}

// pixelAt returns the pixel on the scale ring at angle deg.
func pixelAt(img *image.RGBA, g *speedometer.Gauge, deg float64) color.RGBA {
	geom := g.Geometry()
	sin, cos := math.Sincos(deg * math.Pi / 180)
	x := geom.CenterX + geom.Radius*cos
	y := geom.CenterY + geom.Radius*sin
	return img.RGBAAt(int(math.Floor(x)), int(math.Floor(y)))
}

func assertColor(t *testing.T, want, got color.RGBA) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, 2, "red")
	assert.InDelta(t, want.G, got.G, 2, "green")
	assert.InDelta(t, want.B, got.B, 2, "blue")
}

func TestRenderLitScale(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		firstOn bool
		lastOn  bool
	}{
		{name: "zero", value: 0},
		{name: "half", value: 150, firstOn: true},
		{name: "max", value: 300, firstOn: true, lastOn: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, fonts := setup(t, tt.value)
			img := raster.Render(g, fonts, 400, black).Image()
			cfg := g.Config()

			want := cfg.OffColor
			if tt.firstOn {
				want = cfg.OnColor
			}
			assertColor(t, want, pixelAt(img, g, -179))

			want = cfg.OffColor
			if tt.lastOn {
				want = cfg.OnColor
			}
			assertColor(t, want, pixelAt(img, g, -3))

			// gaps between segments stay background
			assertColor(t, black, pixelAt(img, g, -89))
			assert.Equal(t, black, img.RGBAAt(2, 2))
		})
	}
}

func TestGlowBlendsOverBackground(t *testing.T) {
	fonts, err := fontface.New()
	require.NoError(t, err)
	defer fonts.Close()

	bg := color.RGBA{R: 23, G: 23, B: 24, A: 0xFF}
	amber := color.RGBA{R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF}
	c := raster.New(400, 400, bg, fonts)
	c.DrawArcs(speedometer.Rect{Left: 100, Top: 100, Right: 300, Bottom: 300},
		[]speedometer.Arc{{StartDeg: -170, SweepDeg: 20}},
		speedometer.Paint{Color: amber, StrokeWidth: 35, Glow: 5})

	// 20px out from the ring lies inside the glow band only
	sin, cos := math.Sincos(-160 * math.Pi / 180)
	got := c.Image().RGBAAt(int(200+120*cos), int(200+120*sin))

	// 35% amber over the background
	assertColor(t, color.RGBA{R: 104, G: 72, B: 15}, got)
	assert.Greater(t, got.R, bg.R)
	assert.Greater(t, got.R, got.G)
	assert.Greater(t, got.G, got.B)
}

func TestRenderReadout(t *testing.T) {
	g, fonts := setup(t, 88)
	img := raster.Render(g, fonts, 400, black).Image()

	line := g.ReadingPath()
	size := g.Config().ReadingTextSize
	lit := 0
	for y := int(line.From.Y - size); y < int(line.From.Y); y++ {
		for x := int(line.From.X); x < int(line.To.X); x++ {
			if img.RGBAAt(x, y) != black {
				lit++
			}
		}
	}
	assert.Greater(t, lit, 100)
}

func TestWritePNG(t *testing.T) {
	g, fonts := setup(t, 120)
	var buf bytes.Buffer
	require.NoError(t, raster.WritePNG(&buf, g, fonts, 256, black))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 256, 256), img.Bounds())
}

func TestRenderDegenerate(t *testing.T) {
	g, fonts := setup(t, 120)
	assert.NotPanics(t, func() {
		c := raster.Render(g, fonts, 0, black)
		assert.True(t, c.Image().Bounds().Empty())
	})
}

func TestSavePNG(t *testing.T) {
	g, fonts := setup(t, 60)
	path := filepath.Join(t.TempDir(), "gauge.png")
	require.NoError(t, raster.SavePNG(path, g, fonts, 128, black))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.Width)

	assert.Error(t, raster.SavePNG(filepath.Join(t.TempDir(), "missing", "gauge.png"), g, fonts, 128, black))
}
