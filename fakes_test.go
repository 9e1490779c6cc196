package overlay

import (
	"errors"
	"fmt"
)

// recordedShape is one completed BeginShape/EndShape pair.
type recordedShape struct {
	Kind   ShapeKind
	Points []Vec2
	Color  Color
	Depth  int
}

// recordingSurface is a DrawSurface that logs every call.
type recordingSurface struct {
	calls  []string
	shapes []recordedShape
	color  Color
	width  float32
	depth  int
	caps   map[Capability]bool

	open *recordedShape

	// failAt makes the n-th EndShape (1-based) fail with errLeaf.
	failAt int
	ends   int
}

var errLeaf = errors.New("leaf failed")

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{color: White, width: 1, caps: map[Capability]bool{}}
}

func (r *recordingSurface) log(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recordingSurface) BeginShape(kind ShapeKind) {
	r.log("begin %s", kind)
	r.open = &recordedShape{Kind: kind, Color: r.color, Depth: r.depth}
}

func (r *recordingSurface) Vertex(x, y float32) {
	if r.open != nil {
		r.open.Points = append(r.open.Points, Vec2{x, y})
	}
}

func (r *recordingSurface) EndShape() error {
	r.log("end")
	r.ends++
	if r.open == nil {
		return ErrNoShape
	}
	r.shapes = append(r.shapes, *r.open)
	r.open = nil
	if r.ends == r.failAt {
		return errLeaf
	}
	return nil
}

func (r *recordingSurface) SetColor(c Color) {
	r.log("color %s", c.Hex())
	r.color = c
}

func (r *recordingSurface) SetLineWidth(w float32) {
	r.log("width %g", w)
	r.width = w
}

func (r *recordingSurface) PushTransform() {
	r.log("push")
	r.depth++
}

func (r *recordingSurface) PopTransform() {
	r.log("pop")
	r.depth--
}

func (r *recordingSurface) Rotate(deg float32) { r.log("rotate %g", deg) }

func (r *recordingSurface) Scale(s float32) { r.log("scale %g", s) }

func (r *recordingSurface) Translate(x, y float32) { r.log("translate %g %g", x, y) }

func (r *recordingSurface) Enable(c Capability) { r.caps[c] = true }

func (r *recordingSurface) Disable(c Capability) { r.caps[c] = false }

// transformCalls returns only the transform stack calls.
func (r *recordingSurface) transformCalls() []string {
	var out []string
	for _, c := range r.calls {
		switch c[:3] {
		case "pus", "pop", "rot", "sca", "tra":
			out = append(out, c)
		}
	}
	return out
}

// write is one recorded WriteAt.
type write struct {
	X, Y  float32
	Text  string
	Color Color
	Size  int
}

// linearMeasurer is a TextMeasurer whose metrics scale linearly with size:
// every rune is CharW*size wide, the ascender is Asc*size and the descender
// is Desc*size below the baseline.
type linearMeasurer struct {
	CharW, Asc, Desc float32

	size   int
	color  Color
	writes []write

	boundsCalls int
	err         error
}

func newLinearMeasurer() *linearMeasurer {
	return &linearMeasurer{CharW: 0.5, Asc: 0.8, Desc: 0.2, size: 10}
}

func (m *linearMeasurer) SetSize(px int) error {
	if m.err != nil {
		return m.err
	}
	m.size = px
	return nil
}

func (m *linearMeasurer) Bounds(text string) (TextBounds, error) {
	m.boundsCalls++
	if m.err != nil {
		return TextBounds{}, m.err
	}
	s := float32(m.size)
	return TextBounds{
		Right:  float32(len([]rune(text))) * m.CharW * s,
		Top:    m.Asc * s,
		Bottom: m.Desc * s,
	}, nil
}

func (m *linearMeasurer) AscenderHeight() (float32, error) {
	return m.Asc * float32(m.size), m.err
}

func (m *linearMeasurer) DescenderDepth() (float32, error) {
	return -m.Desc * float32(m.size), m.err
}

func (m *linearMeasurer) WriteAt(x, y float32, text string) error {
	if m.err != nil {
		return m.err
	}
	m.writes = append(m.writes, write{X: x, Y: y, Text: text, Color: m.color, Size: m.size})
	return nil
}

func (m *linearMeasurer) SetColor(c Color) error {
	m.color = c
	return m.err
}
