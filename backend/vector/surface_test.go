package vector

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/overlay"
)

func drawPage(t *testing.T) *Surface {
	t.Helper()
	s, err := New(100, 60)
	require.NoError(t, err)

	s.Clear(overlay.Black)
	p := overlay.NewPainter(s, s.Text())
	require.NoError(t, p.Glyph(overlay.CircleGlyph(), 20, 30, 0, 20, false))
	_, err = p.TextWithCartouche(40, 30, "Play", 6, overlay.White, overlay.Blue, nil, overlay.Color{})
	require.NoError(t, err)
	return s
}

func TestNewInvalidSize(t *testing.T) {
	_, err := New(10, -1)
	assert.Error(t, err)
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, drawPage(t).WritePDF(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, drawPage(t).WriteSVG(&buf))
	assert.Contains(t, buf.String(), "<svg")
}

func TestEndShapeWithoutBegin(t *testing.T) {
	s, err := New(10, 10)
	require.NoError(t, err)
	assert.ErrorIs(t, s.EndShape(), overlay.ErrNoShape)
}

func TestTextMetrics(t *testing.T) {
	s, err := New(10, 10)
	require.NoError(t, err)
	m := s.Text()

	require.NoError(t, m.SetSize(4))
	small, err := m.Bounds("abc")
	require.NoError(t, err)
	require.NoError(t, m.SetSize(8))
	large, err := m.Bounds("abc")
	require.NoError(t, err)
	assert.InDelta(t, 2*small.Width(), large.Width(), 1e-3)

	asc, err := m.AscenderHeight()
	require.NoError(t, err)
	desc, err := m.DescenderDepth()
	require.NoError(t, err)
	assert.Positive(t, asc)
	assert.Negative(t, desc)

	assert.Error(t, m.SetSize(-3))
}

func TestFacesAreCachedPerColor(t *testing.T) {
	s, err := New(10, 10)
	require.NoError(t, err)
	m := s.Text()

	require.NoError(t, m.WriteAt(1, 1, "a"))
	require.NoError(t, m.SetColor(overlay.Red))
	require.NoError(t, m.WriteAt(1, 1, "a"))
	require.NoError(t, m.WriteAt(1, 1, "b"))
	assert.Len(t, s.faces, 2)
}
