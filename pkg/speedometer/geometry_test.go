package speedometer_test

import (
	"testing"

	"github.com/roffe/speedo/pkg/speedometer"
	"github.com/stretchr/testify/assert"
)

func TestMeasure(t *testing.T) {
	tests := []struct {
		name   string
		w, h   speedometer.MeasureSpec
		want   float64
		center float64
	}{
		{name: "exact wide", w: speedometer.ExactlySpec(400), h: speedometer.ExactlySpec(200), want: 200, center: 100},
		{name: "at most tall", w: speedometer.AtMostSpec(250), h: speedometer.AtMostSpec(600), want: 250, center: 125},
		{name: "unspecified", w: speedometer.MeasureSpec{}, h: speedometer.MeasureSpec{}, want: 300, center: 150},
		{name: "unspecified width", w: speedometer.MeasureSpec{}, h: speedometer.ExactlySpec(500), want: 300, center: 150},
		{name: "unspecified height small width", w: speedometer.AtMostSpec(120), h: speedometer.MeasureSpec{}, want: 120, center: 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGauge(t)
			assert.Equal(t, tt.want, g.Measure(tt.w, tt.h))
			geom := g.Geometry()
			assert.Equal(t, tt.center, geom.CenterX)
			assert.Equal(t, tt.center, geom.CenterY)
		})
	}
}

func TestOnResize(t *testing.T) {
	g := newGauge(t)
	assert.False(t, g.Ready())
	side := g.Measure(speedometer.ExactlySpec(400), speedometer.ExactlySpec(200))
	g.OnResize(400, 200)
	assert.True(t, g.Ready())

	geom := g.Geometry()
	assert.Equal(t, 200.0, side)
	assert.Equal(t, 50.0, geom.Radius)
	assert.Equal(t, speedometer.Rect{Left: 50, Top: 50, Right: 150, Bottom: 150}, geom.Oval)
	assert.Equal(t, speedometer.Point{X: 100, Y: 100}, geom.Oval.Center())
	assert.Equal(t, geom.Oval.Width(), geom.Oval.Height())
}

func TestOnResizeWithoutMeasure(t *testing.T) {
	g := newGauge(t)
	g.OnResize(300, 500)
	geom := g.Geometry()
	assert.Equal(t, 150.0, geom.CenterX)
	assert.Equal(t, 75.0, geom.Radius)
}

func TestOnResizeDegenerate(t *testing.T) {
	g := newGauge(t, speedometer.WithValue(150))
	g.OnResize(0, 480)
	geom := g.Geometry()
	assert.Zero(t, geom.Radius)
	assert.Equal(t, speedometer.Rect{}, geom.Oval)

	rec := &speedometer.Recorder{}
	assert.NotPanics(t, func() { g.Render(rec) })
	assert.Len(t, rec.Commands, 2+len(g.LegendLabels())+1)
	for _, l := range g.LegendLabels() {
		assert.Zero(t, l.Offset)
	}
}
