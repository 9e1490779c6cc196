// Package raster renders overlays into an in-memory image with gogpu/gg.
//
// A Surface is both the overlay.DrawSurface glyphs and panels draw into and
// (through Text) the overlay.TextMeasurer their labels use, so a
// whole frame can be produced headless and saved as PNG:
//
//	s, err := raster.New(512, 512)
//	if err != nil {
//		return err
//	}
//	defer s.Close()
//	p := overlay.NewPainter(s, s.Text())
//	_ = p.Glyph(overlay.CircleGlyph(), 256, 256, 0, 200, false)
//	return s.SavePNG("circle.png")
//
// Coordinates are y-up with the origin at the bottom-left corner.
package raster

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/overlay"
)

// DefaultTextSize is the pixel size used before the first SetSize.
const DefaultTextSize = 13

// Surface draws into a gg.Context.
type Surface struct {
	ctx    *gg.Context
	width  int
	height int

	source *text.FontSource
	faces  map[int]text.Face
	size   int

	color     overlay.Color
	textColor overlay.Color
	lineWidth float32
	caps      map[overlay.Capability]bool

	shapeOpen bool
	shapeKind overlay.ShapeKind
	shapePts  []overlay.Vec2
}

// New creates a width x height surface cleared to transparent, with Go
// Regular as its font.
func New(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster: load font: %w", err)
	}

	ctx := gg.NewContext(width, height)
	ctx.InvertY()

	overlay.Logger().Debug("raster surface created", "width", width, "height", height)
	return &Surface{
		ctx:       ctx,
		width:     width,
		height:    height,
		source:    source,
		faces:     make(map[int]text.Face),
		size:      DefaultTextSize,
		color:     overlay.White,
		textColor: overlay.White,
		lineWidth: 1,
		caps:      make(map[overlay.Capability]bool),
	}, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// View returns the surface size as a vector.
func (s *Surface) View() overlay.Vec2 {
	return overlay.Vec2{X: float32(s.width), Y: float32(s.height)}
}

// Clear fills the whole surface with c.
func (s *Surface) Clear(c overlay.Color) {
	s.ctx.ClearWithColor(gg.RGBA{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A)})
}

// BeginShape implements overlay.DrawSurface.
func (s *Surface) BeginShape(kind overlay.ShapeKind) {
	s.shapeOpen = true
	s.shapeKind = kind
	s.shapePts = s.shapePts[:0]
}

// Vertex implements overlay.DrawSurface.
func (s *Surface) Vertex(x, y float32) {
	if !s.shapeOpen {
		return
	}
	s.shapePts = append(s.shapePts, overlay.Vec2{X: x, Y: y})
}

// EndShape implements overlay.DrawSurface. Outline kinds are stroked with
// the current line width; the rest are filled.
func (s *Surface) EndShape() error {
	if !s.shapeOpen {
		return overlay.ErrNoShape
	}
	s.shapeOpen = false

	paths, closed := overlay.AssembleShape(s.shapeKind, s.shapePts)
	if len(paths) == 0 || s.color.IsTransparent() {
		return nil
	}
	for _, path := range paths {
		s.ctx.MoveTo(float64(path[0].X), float64(path[0].Y))
		for _, p := range path[1:] {
			s.ctx.LineTo(float64(p.X), float64(p.Y))
		}
		if closed {
			s.ctx.ClosePath()
		}
	}

	s.setPaint(s.color)
	if s.shapeKind.IsOutline() {
		s.ctx.SetLineWidth(float64(s.lineWidth))
		if err := s.ctx.Stroke(); err != nil {
			return fmt.Errorf("raster: stroke %s: %w", s.shapeKind, err)
		}
		return nil
	}
	if err := s.ctx.Fill(); err != nil {
		return fmt.Errorf("raster: fill %s: %w", s.shapeKind, err)
	}
	return nil
}

func (s *Surface) setPaint(c overlay.Color) {
	s.ctx.SetRGBA(float64(c.R), float64(c.G), float64(c.B), float64(c.A))
}

// SetColor implements overlay.DrawSurface.
func (s *Surface) SetColor(c overlay.Color) { s.color = c }

// SetLineWidth implements overlay.DrawSurface.
func (s *Surface) SetLineWidth(w float32) { s.lineWidth = w }

// PushTransform implements overlay.DrawSurface.
func (s *Surface) PushTransform() { s.ctx.Push() }

// PopTransform implements overlay.DrawSurface.
func (s *Surface) PopTransform() { s.ctx.Pop() }

// Rotate implements overlay.DrawSurface.
func (s *Surface) Rotate(degrees float32) {
	s.ctx.Rotate(float64(degrees) * math.Pi / 180)
}

// Scale implements overlay.DrawSurface.
func (s *Surface) Scale(f float32) { s.ctx.Scale(float64(f), float64(f)) }

// Translate implements overlay.DrawSurface.
func (s *Surface) Translate(x, y float32) { s.ctx.Translate(float64(x), float64(y)) }

// Enable implements overlay.DrawSurface. gg always antialiases, so the
// capabilities are only recorded.
func (s *Surface) Enable(c overlay.Capability) { s.caps[c] = true }

// Disable implements overlay.DrawSurface.
func (s *Surface) Disable(c overlay.Capability) { s.caps[c] = false }

// Enabled reports whether a capability is on.
func (s *Surface) Enabled(c overlay.Capability) bool { return s.caps[c] }

func (s *Surface) face() text.Face {
	f, ok := s.faces[s.size]
	if !ok {
		f = s.source.Face(float64(s.size))
		s.faces[s.size] = f
	}
	return f
}

// SetSize is part of the Text measurer.
func (s *Surface) SetSize(px int) error {
	if px <= 0 {
		return fmt.Errorf("raster: invalid text size %d", px)
	}
	s.size = px
	return nil
}

// Bounds is part of the Text measurer. Height always covers the font's
// full ascent and descent, whatever glyphs text holds.
func (s *Surface) Bounds(str string) (overlay.TextBounds, error) {
	f := s.face()
	m := f.Metrics()
	return overlay.TextBounds{
		Right:  float32(f.Advance(str)),
		Top:    float32(m.Ascent),
		Bottom: float32(m.Descent),
	}, nil
}

// AscenderHeight is part of the Text measurer.
func (s *Surface) AscenderHeight() (float32, error) {
	return float32(s.face().Metrics().Ascent), nil
}

// DescenderDepth is part of the Text measurer.
func (s *Surface) DescenderDepth() (float32, error) {
	return -float32(s.face().Metrics().Descent), nil
}

// setTextColor sets the WriteAt color, kept apart from the shape color.
func (s *Surface) setTextColor(c overlay.Color) { s.textColor = c }

// WriteAt is part of the Text measurer. Text ignores the transform: the
// y-up flip set up by New is dropped while the string is drawn in device
// space.
func (s *Surface) WriteAt(x, y float32, str string) error {
	if str == "" {
		return nil
	}
	s.ctx.Push()
	defer s.ctx.Pop()
	s.ctx.Identity()

	s.ctx.SetFont(s.face())
	s.setPaint(s.textColor)
	s.ctx.DrawString(str, float64(x), float64(s.height)-float64(y))
	return nil
}

// Text returns the surface as an overlay.TextMeasurer. The two interfaces
// disagree on SetColor, so text gets its own view.
func (s *Surface) Text() overlay.TextMeasurer { return textView{s} }

type textView struct{ *Surface }

func (t textView) SetColor(c overlay.Color) error {
	t.setTextColor(c)
	return nil
}

// Image returns the rendered image.
func (s *Surface) Image() image.Image { return s.ctx.Image() }

// SavePNG writes the image to path.
func (s *Surface) SavePNG(path string) error {
	if err := s.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("raster: save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the image to w.
func (s *Surface) EncodePNG(w io.Writer) error {
	return s.ctx.EncodePNG(w)
}

// Close releases the context and the font.
func (s *Surface) Close() error {
	return errors.Join(s.ctx.Close(), s.source.Close())
}
