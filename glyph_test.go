package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitSquare() Shape {
	return Polygon{Points: []Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, Fill: ShapeQuads}
}

func TestEvaluatePrimitive(t *testing.T) {
	s := newRecordingSurface()
	require.NoError(t, Evaluate(s, Prim(unitSquare()), false))

	require.Len(t, s.shapes, 1)
	assert.Equal(t, ShapeQuads, s.shapes[0].Kind)
	assert.Len(t, s.shapes[0].Points, 4)
}

func TestEvaluateOutline(t *testing.T) {
	s := newRecordingSurface()
	require.NoError(t, Evaluate(s, Prim(unitSquare()), true))

	require.Len(t, s.shapes, 1)
	assert.Equal(t, ShapeLineLoop, s.shapes[0].Kind)
}

func TestEvaluateTransformOrder(t *testing.T) {
	s := newRecordingSurface()
	g := Transform(Prim(unitSquare()), 45, Vec2{X: 2, Y: 3}, 0.5)
	require.NoError(t, Evaluate(s, g, false))

	assert.Equal(t, []string{"push", "rotate 45", "scale 0.5", "translate 2 3", "pop"}, s.transformCalls())
	assert.Equal(t, 1, s.shapes[0].Depth)
	assert.Zero(t, s.depth)
}

func TestEvaluateTransformSkipsZeroTranslate(t *testing.T) {
	s := newRecordingSurface()
	require.NoError(t, Evaluate(s, Rotated(Prim(unitSquare()), 0), false))

	assert.Equal(t, []string{"push", "rotate 0", "scale 1", "pop"}, s.transformCalls())
}

func TestEvaluateRestoresTransformOnError(t *testing.T) {
	s := newRecordingSurface()
	s.failAt = 2
	g := Transform(
		Join(
			Prim(unitSquare()),
			Transform(Prim(unitSquare()), 10, Vec2{}, 2),
			Prim(unitSquare()),
		),
		30, Vec2{X: 1}, 1,
	)

	err := Evaluate(s, g, false)
	require.ErrorIs(t, err, errLeaf)
	assert.Zero(t, s.depth, "every push must be popped")
	assert.Len(t, s.shapes, 2, "the walk stops at the failing leaf")
}

func TestJoinAssociative(t *testing.T) {
	a := Prim(Segments{Points: []Vec2{{0, 0}, {1, 0}}})
	b := Tint(Prim(unitSquare()), Red)
	c := Scaled(Prim(unitSquare()), 2)

	left, right := newRecordingSurface(), newRecordingSurface()
	require.NoError(t, Evaluate(left, Join(Join(a, b), c), false))
	require.NoError(t, Evaluate(right, Join(a, Join(b, c)), false))

	assert.Equal(t, left.calls, right.calls)
	assert.Equal(t, left.shapes, right.shapes)
}

func TestJoinSkipsNil(t *testing.T) {
	j := Join(nil, CircleGlyph(), nil).(Joined)
	assert.Len(t, j.Children, 1)
}

func TestColoredNestedLastWins(t *testing.T) {
	s := newRecordingSurface()
	g := Tint(Tint(Prim(unitSquare()), Blue), Red)
	require.NoError(t, Evaluate(s, g, false))

	require.Len(t, s.shapes, 1)
	assert.Equal(t, Blue, s.shapes[0].Color)
}

func TestColoredBleedsIntoSiblings(t *testing.T) {
	s := newRecordingSurface()
	g := Join(Tint(Prim(unitSquare()), Green), Prim(unitSquare()))
	require.NoError(t, Evaluate(s, g, false))

	require.Len(t, s.shapes, 2)
	assert.Equal(t, Green, s.shapes[1].Color)
}

func TestEvaluateNil(t *testing.T) {
	s := newRecordingSurface()
	assert.NoError(t, Evaluate(s, nil, false))
	assert.NoError(t, Evaluate(s, Prim(nil), false))
	assert.Empty(t, s.calls)
}

func TestDrawPlacement(t *testing.T) {
	s := newRecordingSurface()
	require.NoError(t, Draw(s, Prim(unitSquare()), 100, 50, 90, 32, false))

	assert.Equal(t, []string{"push", "translate 100 50", "rotate 90", "scale 32", "pop"}, s.transformCalls())
	assert.Zero(t, s.depth)
}

func TestDrawThroughDrawList(t *testing.T) {
	dl := NewDrawList()
	require.NoError(t, Draw(dl, Prim(Polygon{
		Points: []Vec2{{0, 0}, {1, 0}, {0, 1}},
		Fill:   ShapeTriangles,
	}), 10, 20, 0, 4, false))

	require.Len(t, dl.VtxBuffer, 3)
	assert.Equal(t, [2]float32{10, 20}, dl.VtxBuffer[0].Pos)
	assert.Equal(t, [2]float32{14, 20}, dl.VtxBuffer[1].Pos)
	assert.Equal(t, [2]float32{10, 24}, dl.VtxBuffer[2].Pos)
	assert.Equal(t, Identity(), dl.Transform())
}
