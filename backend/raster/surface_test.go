package raster

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/overlay"
)

func newSurface(t *testing.T, w, h int) *Surface {
	t.Helper()
	s, err := New(w, h)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNewInvalidSize(t *testing.T) {
	_, err := New(0, 10)
	assert.Error(t, err)
}

func TestSurfaceDrawsGlyph(t *testing.T) {
	s := newSurface(t, 64, 64)
	s.Clear(overlay.Black)
	s.SetColor(overlay.Red)
	require.NoError(t, overlay.Draw(s, overlay.CircleGlyph(), 32, 32, 0, 40, false))

	r, g, _, _ := s.Image().At(32, 32).RGBA()
	assert.Greater(t, r, uint32(0xf000))
	assert.Less(t, g, uint32(0x1000))

	r, _, _, _ = s.Image().At(1, 1).RGBA()
	assert.Less(t, r, uint32(0x1000), "corners stay clear")
}

func TestSurfaceIsYUp(t *testing.T) {
	s := newSurface(t, 64, 64)
	s.Clear(overlay.Black)
	s.SetColor(overlay.White)
	require.NoError(t, overlay.Draw(s, overlay.SquareGlyph(), 16, 48, 0, 16, false))

	img := s.Image()
	r, _, _, _ := img.At(16, 16).RGBA()
	assert.Greater(t, r, uint32(0xf000), "high y lands near the top of the image")
	r, _, _, _ = img.At(16, 48).RGBA()
	assert.Less(t, r, uint32(0x1000))
}

func TestSurfaceEndShapeWithoutBegin(t *testing.T) {
	s := newSurface(t, 8, 8)
	assert.ErrorIs(t, s.EndShape(), overlay.ErrNoShape)
}

func TestSurfaceTransformStack(t *testing.T) {
	s := newSurface(t, 8, 8)
	s.Enable(overlay.CapBlend)
	assert.True(t, s.Enabled(overlay.CapBlend))
	s.Disable(overlay.CapBlend)
	assert.False(t, s.Enabled(overlay.CapBlend))

	s.PushTransform()
	s.Translate(100, 100)
	s.PopTransform()
	s.SetColor(overlay.White)
	require.NoError(t, overlay.Draw(s, overlay.SquareGlyph(), 4, 4, 0, 4, false))

	r, _, _, _ := s.Image().At(4, 4).RGBA()
	assert.Greater(t, r, uint32(0xf000), "pop restores the translation")
}

func TestSurfaceTextMetrics(t *testing.T) {
	s := newSurface(t, 8, 8)
	m := s.Text()
	require.NoError(t, m.SetSize(20))

	asc, err := m.AscenderHeight()
	require.NoError(t, err)
	desc, err := m.DescenderDepth()
	require.NoError(t, err)
	assert.Positive(t, asc)
	assert.Negative(t, desc)

	short, err := m.Bounds("ab")
	require.NoError(t, err)
	long, err := m.Bounds("abcd")
	require.NoError(t, err)
	assert.Greater(t, long.Width(), short.Width())
	assert.InDelta(t, asc-desc, long.Height(), 1e-3)

	assert.Error(t, m.SetSize(0))
}

func TestSurfaceFitsText(t *testing.T) {
	s := newSurface(t, 8, 8)
	size, err := overlay.FitSingle(overlay.MeasureWith(s.Text()), "Fit me", 200, 40)
	require.NoError(t, err)

	require.NoError(t, s.SetSize(size))
	b, err := s.Bounds("Fit me")
	require.NoError(t, err)
	assert.LessOrEqual(t, b.Width(), float32(200))
	assert.LessOrEqual(t, b.Height(), float32(40))
}

func TestSurfaceWriteAndEncode(t *testing.T) {
	s := newSurface(t, 64, 32)
	s.Clear(overlay.Black)
	m := s.Text()
	require.NoError(t, m.SetColor(overlay.White))
	require.NoError(t, m.WriteAt(2, 8, "Hi"))
	require.NoError(t, m.WriteAt(2, 8, ""))

	var buf bytes.Buffer
	require.NoError(t, s.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())

	lit := false
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r > 0x8000 {
				lit = true
			}
		}
	}
	assert.True(t, lit, "text was drawn")
}

// inkRows returns the first and last image rows holding bright pixels and
// the bright pixel count of each.
func inkRows(s *Surface) (first, last, firstCount, lastCount int) {
	img := s.Image()
	first, last = -1, -1
	for y := 0; y < img.Bounds().Dy(); y++ {
		n := 0
		for x := 0; x < img.Bounds().Dx(); x++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r > 0x8000 {
				n++
			}
		}
		if n == 0 {
			continue
		}
		if first < 0 {
			first, firstCount = y, n
		}
		last, lastCount = y, n
	}
	return first, last, firstCount, lastCount
}

func TestSurfaceWriteAtBaseline(t *testing.T) {
	s := newSurface(t, 64, 64)
	s.Clear(overlay.Black)
	m := s.Text()
	require.NoError(t, m.SetSize(20))
	require.NoError(t, m.SetColor(overlay.White))
	require.NoError(t, m.WriteAt(4, 40, "T"))

	first, last, firstCount, lastCount := inkRows(s)
	require.GreaterOrEqual(t, first, 0, "text was drawn")

	// Baseline y=40 is image row 24; a capital sits above it.
	assert.LessOrEqual(t, last, 25)
	assert.GreaterOrEqual(t, first, 4)
	assert.Less(t, first, 20)
	assert.Greater(t, firstCount, lastCount, "the bar of the T is on top")
}

func TestSurfaceWriteAtIgnoresTransform(t *testing.T) {
	s := newSurface(t, 64, 64)
	s.Clear(overlay.Black)
	m := s.Text()
	require.NoError(t, m.SetSize(20))
	require.NoError(t, m.SetColor(overlay.White))

	s.PushTransform()
	s.Translate(0, -30)
	require.NoError(t, m.WriteAt(4, 40, "T"))
	s.PopTransform()

	_, last, _, _ := inkRows(s)
	assert.LessOrEqual(t, last, 25)

	// The y-up flip is still in place for shapes afterwards.
	s.SetColor(overlay.White)
	require.NoError(t, overlay.Draw(s, overlay.SquareGlyph(), 50, 58, 0, 8, false))
	r, _, _, _ := s.Image().At(50, 6).RGBA()
	assert.Greater(t, r, uint32(0xf000))
}
