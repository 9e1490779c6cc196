package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidgetRequiredMargin(t *testing.T) {
	view := Vec2{X: 800, Y: 600}
	w := NewWidget()
	w.UpdateBounds(Vec2{X: 20, Y: 30}, Vec2{X: 120, Y: 90})

	tests := []struct {
		side MarginSide
		want float32
	}{
		{MarginNone, 0},
		{MarginLeft, 120},
		{MarginRight, 780},
		{MarginTop, 570},
		{MarginBottom, 90},
	}
	for _, tt := range tests {
		w.Margin = tt.side
		assert.Equal(t, tt.want, w.RequiredMargin(view), tt.side.String())
	}
}

func TestWidgetGrowMargins(t *testing.T) {
	view := Vec2{X: 800, Y: 600}
	w := NewWidget()
	w.UpdateBounds(Vec2{X: 0, Y: 0}, Vec2{X: 800, Y: 50})

	_, changed := w.GrowMargins(Margins{}, view)
	assert.False(t, changed, "undocked widgets never change margins")

	w.Margin = MarginBottom
	m, changed := w.GrowMargins(Margins{1, 2, 3, 4}, view)
	assert.True(t, changed)
	assert.Equal(t, Margins{1, 2, 3, 50}, m)

	_, changed = w.GrowMargins(m, view)
	assert.False(t, changed, "a wide enough margin is left alone")
}

func TestWidgetReleaseMargins(t *testing.T) {
	w := NewWidget()
	_, ok := w.ReleaseMargins()
	assert.False(t, ok)

	w.Margin = MarginRight
	m, ok := w.ReleaseMargins()
	assert.True(t, ok)
	assert.Equal(t, Margins{-1, 0, -1, -1}, m)
}

func TestWidgetContainsAndButtons(t *testing.T) {
	w := NewWidget()
	w.UpdateBounds(Vec2{X: 0, Y: 0}, Vec2{X: 100, Y: 20})
	w.Buttons = []Button{
		{Bounds: Box{X0: 0, Y0: 0, X1: 10, Y1: 20}},
		{Bounds: Box{X0: 10, Y0: 0, X1: 20, Y1: 5}},
	}

	assert.True(t, w.Contains(Vec2{X: 100, Y: 20}), "edges are inside")
	assert.False(t, w.Contains(Vec2{X: 101, Y: 10}))

	assert.Equal(t, 0, w.ButtonAt(Vec2{X: 5, Y: 15}))
	assert.Equal(t, 1, w.ButtonAt(Vec2{X: 15, Y: 4}))
	assert.Equal(t, -1, w.ButtonAt(Vec2{X: 15, Y: 15}), "button height bounds the hit test")
}

func TestMarginSideString(t *testing.T) {
	assert.Equal(t, "bottom", MarginBottom.String())
	assert.Equal(t, "none", MarginNone.String())
}
