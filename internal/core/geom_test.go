package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 16, 16), NewRect(8, 8, 16, 16), true},
		{"touching right edge", NewRect(0, 0, 16, 16), NewRect(16, 0, 16, 16), false},
		{"touching bottom edge", NewRect(0, 0, 16, 16), NewRect(0, 16, 16, 16), false},
		{"one pixel overlap", NewRect(0, 0, 16, 16), NewRect(15, 15, 16, 16), true},
		{"contained", NewRect(0, 0, 32, 32), NewRect(8, 8, 4, 4), true},
		{"far apart", NewRect(0, 0, 4, 4), NewRect(100, 100, 4, 4), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Intersects(tc.b))
			assert.Equal(t, tc.expected, tc.b.Intersects(tc.a), "reversed")
		})
	}
}

func TestRectTranslateAndEdges(t *testing.T) {
	r := NewRect(16, 32, 16, 16)

	assert.Equal(t, NewRect(14, 35, 16, 16), r.Translate(-2, 3))
	assert.Equal(t, 32, r.Right())
	assert.Equal(t, 48, r.Bottom())

	cx, cy := r.Center()
	assert.Equal(t, 24, cx)
	assert.Equal(t, 40, cy)
}

func TestRectValid(t *testing.T) {
	assert.True(t, NewRect(0, 0, 0, 0).Valid(), "zero-size rect")
	assert.False(t, NewRect(0, 0, -1, 4).Valid(), "negative width")
	assert.False(t, NewRect(0, 0, 4, -1).Valid(), "negative height")
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 7, Abs(-7))
	assert.Equal(t, 7, Abs(7))
	assert.Equal(t, 0, Abs(0))
}

func TestParseColor(t *testing.T) {
	c, ok := ParseColor(" Blue ")
	assert.True(t, ok)
	assert.Equal(t, ColorBlue, c)

	_, ok = ParseColor("ultraviolet")
	assert.False(t, ok, "unknown color")

	assert.Equal(t, "orange", ColorOrange.String())
}
