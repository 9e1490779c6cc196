package overlay

import "fmt"

// Glyph is an immutable tree of drawing instructions. The variant set is
// closed: Primitive, Joined, Transformed and Colored.
//
// Evaluating a glyph with outline set draws the same composition as
// outlines instead of fills, which is how hover/active states are rendered.
type Glyph interface {
	isGlyph()
}

// Primitive is a leaf that draws one shape.
type Primitive struct {
	Shape Shape
}

// Joined draws its children in order. Children share the ambient transform
// and color state; nothing is saved or restored between them.
type Joined struct {
	Children []Glyph
}

// Transformed evaluates Child under a scoped transform: rotate by Angle
// degrees about Z, then scale uniformly, then translate. The surrounding
// transform is restored afterwards on every exit path.
type Transformed struct {
	Child     Glyph
	Angle     float32
	Translate Vec2
	Scale     float32
}

// Colored sets the draw color before evaluating Child. The previous color is
// not restored, so the tint bleeds into whatever is drawn next.
type Colored struct {
	Child Glyph
	Color Color
}

func (Primitive) isGlyph()   {}
func (Joined) isGlyph()      {}
func (Transformed) isGlyph() {}
func (Colored) isGlyph()     {}

// Prim wraps a shape as a glyph leaf.
func Prim(s Shape) Glyph {
	return Primitive{Shape: s}
}

// Join composes glyphs drawn in argument order. Join(Join(a, b), c) and
// Join(a, Join(b, c)) render identically.
func Join(glyphs ...Glyph) Glyph {
	children := make([]Glyph, 0, len(glyphs))
	for _, g := range glyphs {
		if g != nil {
			children = append(children, g)
		}
	}
	return Joined{Children: children}
}

// Transform wraps g in a scoped rotate/scale/translate.
func Transform(g Glyph, angle float32, translate Vec2, scale float32) Glyph {
	return Transformed{Child: g, Angle: angle, Translate: translate, Scale: scale}
}

// Rotated is Transform with only a rotation.
func Rotated(g Glyph, angle float32) Glyph {
	return Transform(g, angle, Vec2{}, 1)
}

// Scaled is Transform with only a uniform scale.
func Scaled(g Glyph, scale float32) Glyph {
	return Transform(g, 0, Vec2{}, scale)
}

// Tint wraps g so it is drawn in c.
func Tint(g Glyph, c Color) Glyph {
	return Colored{Child: g, Color: c}
}

// Evaluate interprets g against s. The only effect is the sequence of calls
// made on s. A failing leaf aborts the walk and its error is returned;
// primitives already issued stay issued. Every transform pushed during the
// walk is popped before Evaluate returns.
func Evaluate(s DrawSurface, g Glyph, outline bool) error {
	switch n := g.(type) {
	case nil:
		return nil
	case Primitive:
		if n.Shape == nil {
			return nil
		}
		return n.Shape.Draw(s, outline)
	case Joined:
		for _, child := range n.Children {
			if err := Evaluate(s, child, outline); err != nil {
				return err
			}
		}
		return nil
	case Transformed:
		return evalTransformed(s, n, outline)
	case Colored:
		s.SetColor(n.Color)
		return Evaluate(s, n.Child, outline)
	default:
		return fmt.Errorf("overlay: unknown glyph type %T", g)
	}
}

func evalTransformed(s DrawSurface, n Transformed, outline bool) error {
	s.PushTransform()
	defer s.PopTransform()

	s.Rotate(n.Angle)
	s.Scale(n.Scale)
	if !n.Translate.IsZero() {
		s.Translate(n.Translate.X, n.Translate.Y)
	}
	return Evaluate(s, n.Child, outline)
}

// Draw places g at (x, y), rotated by angle degrees and scaled to size, and
// evaluates it. The placement is scoped like Transformed.
func Draw(s DrawSurface, g Glyph, x, y, angle, size float32, outline bool) error {
	s.PushTransform()
	defer s.PopTransform()

	s.Translate(x, y)
	s.Rotate(angle)
	s.Scale(size)
	return Evaluate(s, g, outline)
}
