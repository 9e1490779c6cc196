// Package vector records overlays on a tdewolff/canvas page and writes them
// out as PDF or SVG.
//
// One overlay unit is one millimetre on the page, and text sizes are given
// in the same unit, so a vector page lays out exactly like a raster image of
// the same dimensions. Coordinates are y-up with the origin at the
// bottom-left corner.
package vector

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/overlay"
)

// DefaultTextSize is the text size used before the first SetSize.
const DefaultTextSize = 13

const (
	familyName = "overlay-go-regular"
	ptPerMM    = 72 / 25.4
)

type faceKey struct {
	size  int
	color overlay.Color
}

// Surface draws onto a canvas.Canvas.
type Surface struct {
	canvas *canvas.Canvas
	ctx    *canvas.Context
	width  float64
	height float64

	family *canvas.FontFamily
	faces  map[faceKey]*canvas.FontFace
	size   int

	color     overlay.Color
	textColor overlay.Color
	lineWidth float32
	caps      map[overlay.Capability]bool

	shapeOpen bool
	shapeKind overlay.ShapeKind
	shapePts  []overlay.Vec2
}

// New creates a width x height page with Go Regular as its font.
func New(width, height float64) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("vector: invalid size %gx%g", width, height)
	}
	family := canvas.NewFontFamily(familyName)
	if err := family.LoadFont(goregular.TTF, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("vector: load font: %w", err)
	}

	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianI)

	return &Surface{
		canvas:    c,
		ctx:       ctx,
		width:     width,
		height:    height,
		family:    family,
		faces:     make(map[faceKey]*canvas.FontFace),
		size:      DefaultTextSize,
		color:     overlay.White,
		textColor: overlay.White,
		lineWidth: 1,
		caps:      make(map[overlay.Capability]bool),
	}, nil
}

// View returns the page size.
func (s *Surface) View() overlay.Vec2 {
	return overlay.Vec2{X: float32(s.width), Y: float32(s.height)}
}

// Clear paints the whole page with c.
func (s *Surface) Clear(c overlay.Color) {
	s.ctx.SetFillColor(c.NRGBA())
	s.ctx.SetStrokeColor(color.RGBA{})
	s.ctx.DrawPath(0, 0, canvas.Rectangle(s.width, s.height))
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

// EndShape implements overlay.DrawSurface.
func (s *Surface) EndShape() error {
	if !s.shapeOpen {
		return overlay.ErrNoShape
	}
	s.shapeOpen = false

	paths, closed := overlay.AssembleShape(s.shapeKind, s.shapePts)
	if len(paths) == 0 || s.color.IsTransparent() {
		return nil
	}
	p := &canvas.Path{}
	for _, path := range paths {
		p.MoveTo(float64(path[0].X), float64(path[0].Y))
		for _, v := range path[1:] {
			p.LineTo(float64(v.X), float64(v.Y))
		}
		if closed {
			p.Close()
		}
	}

	if s.shapeKind.IsOutline() {
		s.ctx.SetFillColor(color.RGBA{})
		s.ctx.SetStrokeColor(s.color.NRGBA())
		s.ctx.SetStrokeWidth(float64(s.lineWidth))
	} else {
		s.ctx.SetFillColor(s.color.NRGBA())
		s.ctx.SetStrokeColor(color.RGBA{})
	}
	s.ctx.DrawPath(0, 0, p)
	return nil
}

// SetColor implements overlay.DrawSurface.
func (s *Surface) SetColor(c overlay.Color) { s.color = c }

// SetLineWidth implements overlay.DrawSurface.
func (s *Surface) SetLineWidth(w float32) { s.lineWidth = w }

// PushTransform implements overlay.DrawSurface. The canvas context also
// saves its style, which is harmless since every draw sets its own colors.
func (s *Surface) PushTransform() { s.ctx.Push() }

// PopTransform implements overlay.DrawSurface.
func (s *Surface) PopTransform() { s.ctx.Pop() }

// Rotate implements overlay.DrawSurface.
func (s *Surface) Rotate(degrees float32) { s.ctx.Rotate(float64(degrees)) }

// Scale implements overlay.DrawSurface.
func (s *Surface) Scale(f float32) { s.ctx.Scale(float64(f), float64(f)) }

// Translate implements overlay.DrawSurface.
func (s *Surface) Translate(x, y float32) { s.ctx.Translate(float64(x), float64(y)) }

// Enable implements overlay.DrawSurface. Vector output has no render
// state, so capabilities are only recorded.
func (s *Surface) Enable(c overlay.Capability) { s.caps[c] = true }

// Disable implements overlay.DrawSurface.
func (s *Surface) Disable(c overlay.Capability) { s.caps[c] = false }

// Enabled reports whether a capability is on.
func (s *Surface) Enabled(c overlay.Capability) bool { return s.caps[c] }

// Text returns the surface as an overlay.TextMeasurer.
func (s *Surface) Text() overlay.TextMeasurer { return textView{s} }

type textView struct{ *Surface }

func (t textView) SetColor(c overlay.Color) error {
	t.textColor = c
	return nil
}

func (s *Surface) face(c overlay.Color) *canvas.FontFace {
	key := faceKey{size: s.size, color: c}
	f, ok := s.faces[key]
	if !ok {
		f = s.family.Face(float64(s.size)*ptPerMM, c.NRGBA(), canvas.FontRegular, canvas.FontNormal)
		s.faces[key] = f
	}
	return f
}

// SetSize is part of the Text measurer.
func (s *Surface) SetSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("vector: invalid text size %d", size)
	}
	s.size = size
	return nil
}

// Bounds is part of the Text measurer.
func (s *Surface) Bounds(str string) (overlay.TextBounds, error) {
	f := s.face(s.textColor)
	m := f.Metrics()
	return overlay.TextBounds{
		Right:  float32(f.TextWidth(str)),
		Top:    float32(m.Ascent),
		Bottom: float32(math.Abs(m.Descent)),
	}, nil
}

// AscenderHeight is part of the Text measurer.
func (s *Surface) AscenderHeight() (float32, error) {
	return float32(s.face(s.textColor).Metrics().Ascent), nil
}

// DescenderDepth is part of the Text measurer.
func (s *Surface) DescenderDepth() (float32, error) {
	return -float32(math.Abs(s.face(s.textColor).Metrics().Descent)), nil
}

// WriteAt is part of the Text measurer. Unlike the raster backend, text
// follows the current transform.
func (s *Surface) WriteAt(x, y float32, str string) error {
	if str == "" {
		return nil
	}
	line := canvas.NewTextLine(s.face(s.textColor), str, canvas.Left)
	s.ctx.DrawText(float64(x), float64(y), line)
	return nil
}

// WritePDF renders the page as a single-page PDF.
func (s *Surface) WritePDF(w io.Writer) error {
	writer := pdf.New(w, s.width, s.height, nil)
	s.canvas.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return fmt.Errorf("vector: write pdf: %w", err)
	}
	return nil
}

// WriteSVG renders the page as an SVG document.
func (s *Surface) WriteSVG(w io.Writer) error {
	writer := svg.New(w, s.width, s.height, nil)
	s.canvas.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return fmt.Errorf("vector: write svg: %w", err)
	}
	return nil
}
