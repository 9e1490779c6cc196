package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionDefaults(t *testing.T) {
	assert.Equal(t, AngleSpacingLiteral, ApplyAndGet(nil, OptAngleSpacing))
	assert.Equal(t, LineSplitLiteral, ApplyAndGet(nil, OptLineSplit))
	assert.Equal(t, defaultMaxFitIterations, ApplyAndGet(nil, OptMaxFitIterations))

	_, set := ApplyAndCheck(nil, OptLineSplit)
	assert.False(t, set)
}

func TestOptionOverrides(t *testing.T) {
	opts := []Option{
		WithAngleSpacing(AngleSpacingEven),
		WithMaxFitIterations(8),
		WithMaxFitIterations(16),
	}
	assert.Equal(t, AngleSpacingEven, ApplyAndGet(opts, OptAngleSpacing))
	assert.Equal(t, 16, ApplyAndGet(opts, OptMaxFitIterations), "last option wins")

	v, set := ApplyAndCheck(opts, OptAngleSpacing)
	assert.True(t, set)
	assert.Equal(t, AngleSpacingEven, v)
}

func TestOptionWrongTypeFallsBack(t *testing.T) {
	key := NewOptKey("maxFitIterations", "x")
	assert.Equal(t, "x", ApplyAndGet([]Option{WithMaxFitIterations(3)}, key))
	assert.Equal(t, "maxFitIterations", key.Name())
	assert.Equal(t, "x", key.Default())
}

func TestLineSplit(t *testing.T) {
	assert.Equal(t, "\n\r", LineSplitLiteral.Delimiter())
	assert.Equal(t, "\n", LineSplitNewline.Delimiter())
	assert.Equal(t, "literal", LineSplitLiteral.String())
	assert.Equal(t, "newline", LineSplitNewline.String())
	assert.Equal(t, "even", AngleSpacingEven.String())
}
