// Package fontface measures and caches text faces built from the
// embedded Go Regular font.
package fontface

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Cache hands out one face per size. Faces are unhinted so widths scale
// linearly with size. Looking faces up is safe from several goroutines,
// drawing with them is not.
type Cache struct {
	mu    sync.RWMutex
	font  *opentype.Font
	faces map[float64]font.Face
}

func New() (*Cache, error) {
	return NewFromTTF(goregular.TTF)
}

func NewFromTTF(ttf []byte) (*Cache, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("fontface: parse: %w", err)
	}
	return &Cache{
		font:  f,
		faces: make(map[float64]font.Face),
	}, nil
}

// Face returns the cached face for size, creating it on first use.
func (c *Cache) Face(size float64) (font.Face, error) {
	c.mu.RLock()
	if face, ok := c.faces[size]; ok {
		c.mu.RUnlock()
		return face, nil
	}
	c.mu.RUnlock()

	face, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("fontface: size %v: %w", size, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.faces[size]; ok {
		face.Close()
		return existing, nil
	}
	c.faces[size] = face
	return face, nil
}

// MeasureText sums the glyph advances of text. Unknown sizes measure as 0.
func (c *Cache) MeasureText(text string, size float64) float64 {
	face, err := c.Face(size)
	if err != nil {
		return 0
	}
	return Fixed(font.MeasureString(face, text))
}

// Advances returns the advance of every rune in text, in order.
func (c *Cache) Advances(text string, size float64) []float64 {
	face, err := c.Face(size)
	if err != nil {
		return nil
	}
	out := make([]float64, 0, len(text))
	prev := rune(-1)
	for _, r := range text {
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			adv, _ = face.GlyphAdvance('\ufffd')
		}
		if prev >= 0 {
			adv += face.Kern(prev, r)
		}
		out = append(out, Fixed(adv))
		prev = r
	}
	return out
}

func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for size, face := range c.faces {
		face.Close()
		delete(c.faces, size)
	}
	return nil
}

func Fixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
