package fontface_test

import (
	"testing"

	"github.com/roffe/speedo/pkg/fontface"
	"github.com/roffe/speedo/pkg/speedometer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ speedometer.TextMeasurer = (*fontface.Cache)(nil)

func TestMeasureText(t *testing.T) {
	c, err := fontface.New()
	require.NoError(t, err)
	defer c.Close()

	one := c.MeasureText("7", 65)
	three := c.MeasureText("275", 65)
	assert.Greater(t, one, 0.0)
	assert.Greater(t, three, one)
	assert.Zero(t, c.MeasureText("", 65))

	// Go Regular digits share one advance
	assert.InDelta(t, 3*one, three, 0.1)
	assert.InDelta(t, 2*c.MeasureText("8", 20), c.MeasureText("8", 40), 0.1)
}

func TestAdvancesSumToWidth(t *testing.T) {
	c, err := fontface.New()
	require.NoError(t, err)
	defer c.Close()

	var sum float64
	for _, a := range c.Advances("120", 14) {
		sum += a
	}
	assert.InDelta(t, c.MeasureText("120", 14), sum, 0.01)
}

func TestFaceCached(t *testing.T) {
	c, err := fontface.New()
	require.NoError(t, err)
	defer c.Close()

	a, err := c.Face(14)
	require.NoError(t, err)
	b, err := c.Face(14)
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestNewFromTTFInvalid(t *testing.T) {
	_, err := fontface.NewFromTTF([]byte("not a font"))
	assert.Error(t, err)
}
