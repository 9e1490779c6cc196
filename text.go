package overlay

import (
	"errors"
	"fmt"
	"image"
	"sync"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Built-in bitmap font layout: basicfont's 7x13 face for ASCII 32-127,
// rasterized into a 16x6 grid of cells.
const (
	BitmapCellW   = 7
	BitmapCellH   = 13
	BitmapCols    = 16
	BitmapRows    = 6
	BitmapAtlasW  = BitmapCols * BitmapCellW
	BitmapAtlasH  = BitmapRows * BitmapCellH
	bitmapAscent  = 11
	bitmapDescent = 2
)

var (
	atlasOnce sync.Once
	atlas     *image.Alpha
)

// BitmapAtlas returns the single-channel glyph atlas BitmapText quads
// sample from. Row 0 of the image is the top of the first cell row.
func BitmapAtlas() *image.Alpha {
	atlasOnce.Do(func() {
		atlas = image.NewAlpha(image.Rect(0, 0, BitmapAtlasW, BitmapAtlasH))
		d := font.Drawer{Dst: atlas, Src: image.Opaque, Face: basicfont.Face7x13}
		for ch := rune(32); ch < 128; ch++ {
			idx := int(ch - 32)
			col, row := idx%BitmapCols, idx/BitmapCols
			d.Dot = fixed.P(col*BitmapCellW, row*BitmapCellH+bitmapAscent)
			d.DrawString(string(ch))
		}
	})
	return atlas
}

// ErrNoTarget is returned by BitmapText.WriteAt before a draw list is set.
var ErrNoTarget = errors.New("overlay: bitmap text has no draw list")

// BitmapText is a TextMeasurer over the built-in fixed-width bitmap font.
// Text is written as textured quads into a DrawList; the renderer uploads
// BitmapAtlas and reports its texture ID (see the opengl backend's
// FontTextureID).
//
// Coordinates are y-up: WriteAt places the baseline at y with ascenders
// above it. Text ignores the draw list transform.
type BitmapText struct {
	dl        *DrawList
	textureID uint32
	size      int
	color     uint32
}

// NewBitmapText returns a measurer writing into dl with the font texture
// textureID. dl may be nil for measuring only.
func NewBitmapText(dl *DrawList, textureID uint32) *BitmapText {
	return &BitmapText{
		dl:        dl,
		textureID: textureID,
		size:      BitmapCellH,
		color:     White.Packed(),
	}
}

// SetTarget changes the draw list text is written into.
func (t *BitmapText) SetTarget(dl *DrawList) { t.dl = dl }

// scale is the cell magnification for the current size.
func (t *BitmapText) scale() float32 {
	return float32(t.size) / BitmapCellH
}

// SetSize implements TextMeasurer. The size is the cell height in pixels;
// the font is scaled from its native 13 pixel cell.
func (t *BitmapText) SetSize(px int) error {
	if px <= 0 {
		return fmt.Errorf("overlay: invalid text size %d", px)
	}
	t.size = px
	return nil
}

// Size returns the current cell height in pixels.
func (t *BitmapText) Size() int { return t.size }

// Bounds implements TextMeasurer. Every character advances one cell.
func (t *BitmapText) Bounds(text string) (TextBounds, error) {
	s := t.scale()
	n := float32(utf8.RuneCountInString(text))
	return TextBounds{
		Left:   0,
		Bottom: bitmapDescent * s,
		Right:  n * BitmapCellW * s,
		Top:    bitmapAscent * s,
	}, nil
}

// AscenderHeight implements TextMeasurer.
func (t *BitmapText) AscenderHeight() (float32, error) {
	return bitmapAscent * t.scale(), nil
}

// DescenderDepth implements TextMeasurer.
func (t *BitmapText) DescenderDepth() (float32, error) {
	return -bitmapDescent * t.scale(), nil
}

// SetColor implements TextMeasurer.
func (t *BitmapText) SetColor(c Color) error {
	t.color = c.Packed()
	return nil
}

// WriteAt implements TextMeasurer.
func (t *BitmapText) WriteAt(x, y float32, text string) error {
	if t.dl == nil {
		return ErrNoTarget
	}
	if text == "" {
		return nil
	}
	s := t.scale()
	cw := BitmapCellW * s
	bottom := y - bitmapDescent*s
	top := bottom + BitmapCellH*s

	quads := make([]GlyphQuad, 0, utf8.RuneCountInString(text))
	i := 0
	for _, r := range text {
		char := unicodeFallback(r)
		if char < 32 || char > 127 {
			char = '?'
		}
		idx := int(char - 32)
		col := float32(idx % BitmapCols)
		row := float32(idx / BitmapCols)

		px := x + float32(i)*cw
		quads = append(quads, GlyphQuad{
			X0: px, Y0: top,
			X1: px + cw, Y1: bottom,
			U0: col * BitmapCellW / BitmapAtlasW, V0: row * BitmapCellH / BitmapAtlasH,
			U1: (col + 1) * BitmapCellW / BitmapAtlasW, V1: (row + 1) * BitmapCellH / BitmapAtlasH,
		})
		i++
	}

	prev := t.dl.textureID
	t.dl.SetTexture(t.textureID)
	t.dl.AddGlyphQuads(quads, t.color)
	t.dl.SetTexture(prev)
	return nil
}

// unicodeFallback maps common Unicode symbols to ASCII equivalents
// for the built-in bitmap font (ASCII 32-127 only).
func unicodeFallback(r rune) rune {
	if r >= 32 && r <= 127 {
		return r
	}
	switch r {
	case '►', '▶', '▸', '→', '⯈':
		return '>'
	case '◄', '◀', '◂', '←', '⯇':
		return '<'
	case '▼', '▾', '↓':
		return 'v'
	case '▲', '▴', '↑':
		return '^'
	case '●', '•', '◆':
		return '*'
	case '✓', '✔':
		return '+'
	case '✗', '✘':
		return 'x'
	case '—', '–':
		return '-'
	default:
		return r
	}
}
