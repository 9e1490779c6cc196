package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameValuePairBounds(t *testing.T) {
	m := newLinearMeasurer()
	require.NoError(t, m.SetSize(10))
	pairs := []NameValuePair{
		{Name: "Source", Value: "a.exr"},
		{Name: "Fps", Value: "24"},
		{Name: "Notes", Value: "long value here"},
	}

	b, err := NameValuePairBounds(m, pairs, 4)
	require.NoError(t, err)

	// Each rune is 5 wide at size 10; a row is 10 tall.
	assert.Equal(t, float32(30), b.NameWidth)
	assert.Equal(t, float32(75), b.ValueWidth())
	assert.Equal(t, float32(10), b.TextHeight)
	assert.Equal(t, float32(-2), b.Descender)
	assert.Equal(t, Vec2{X: 105, Y: 3*10 + 2*4}, b.Size)
	assert.Len(t, b.NameBounds, 3)
	assert.Equal(t, float32(15), b.NameBounds[1].Width(), "three runes of Fps")
}

func TestNameValuePairBoundsHeightIgnoresContent(t *testing.T) {
	m := newLinearMeasurer()
	short, err := NameValuePairBounds(m, []NameValuePair{{"a", ""}, {"b", ""}}, 0)
	require.NoError(t, err)
	long, err := NameValuePairBounds(m, []NameValuePair{{"a", "gjpqy"}, {"bbbbbbb", "x"}}, 0)
	require.NoError(t, err)
	assert.Equal(t, short.Size.Y, long.Size.Y)
}

func TestExpandLiteralPassesThrough(t *testing.T) {
	pairs := []NameValuePair{
		{Name: "Notes", Value: "first\nsecond"},
		{Name: "Path", Value: "a\r\nb"},
		{Name: "Plain", Value: "value"},
	}
	got := ExpandNameValuePairs(pairs)
	assert.Equal(t, pairs, got)
}

func TestExpandNewlineSplitsInOrder(t *testing.T) {
	pairs := []NameValuePair{
		{Name: "Notes", Value: "one\ntwo\r\nthree"},
		{Name: "Single", Value: "only"},
	}
	got := ExpandNameValuePairs(pairs, WithLineSplit(LineSplitNewline))

	assert.Equal(t, []NameValuePair{
		{Name: "Notes", Value: "one"},
		{Name: "", Value: "two"},
		{Name: "", Value: "three"},
		{Name: "Single", Value: "only"},
	}, got)
}

func TestExpandNewlineBlankLines(t *testing.T) {
	pairs := []NameValuePair{{Name: "Notes", Value: "\na\n\nb\n"}}
	got := ExpandNameValuePairs(pairs, WithLineSplit(LineSplitNewline))

	assert.Equal(t, []NameValuePair{
		{Name: "", Value: "a"},
		{Name: "", Value: " "},
		{Name: "", Value: "b"},
	}, got, "an empty first line takes the name with it")
}

func TestExpandLiteralLeadingDelimiter(t *testing.T) {
	pairs := []NameValuePair{
		{Name: "Notes", Value: "\n\ra\n\rb"},
		{Name: "Path", Value: "x\n\ry"},
	}
	got := ExpandNameValuePairs(pairs)

	assert.Equal(t, []NameValuePair{
		{Name: "", Value: "a"},
		{Name: "", Value: "b"},
		{Name: "Path", Value: "x"},
		{Name: "", Value: "y"},
	}, got)
}

func TestExpandEmpty(t *testing.T) {
	assert.Empty(t, ExpandNameValuePairs(nil))
}
