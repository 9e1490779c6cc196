package overlay

import "github.com/chewxy/math32"

// Glyphs in the library are drawn in a unit box centered on the origin, so
// Draw's size argument is the on-screen diameter.

// fanStep is the angular increment used by the library's round glyphs.
const fanStep = 0.3

// Outlined forces its shape to draw as an outline regardless of the
// evaluation flag.
type Outlined struct {
	Shape Shape
}

// Draw implements Shape.
func (o Outlined) Draw(s DrawSurface, _ bool) error {
	return o.Shape.Draw(s, true)
}

// TriangleGlyph is a triangle with its apex at the left edge.
func TriangleGlyph() Glyph {
	return Prim(Polygon{
		Points: []Vec2{{-0.5, 0}, {0.5, -0.5}, {0.5, 0.5}},
		Fill:   ShapeTriangles,
	})
}

// CircleGlyph is a unit-diameter disc.
func CircleGlyph() Glyph {
	return Prim(Circle(Vec2{}, 0.5, fanStep))
}

// SquareGlyph is a unit square.
func SquareGlyph() Glyph {
	return Prim(Polygon{
		Points: []Vec2{{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}},
		Fill:   ShapeQuads,
	})
}

// PauseGlyph is two vertical bars.
func PauseGlyph() Glyph {
	return Prim(Polygon{
		Points: []Vec2{
			{-0.5, -0.5}, {-0.1, -0.5}, {-0.1, 0.5}, {-0.5, 0.5},
			{0.1, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {0.1, 0.5},
		},
		Fill: ShapeQuads,
	})
}

// AdvanceGlyph is a triangle followed by a bar (step one frame).
func AdvanceGlyph() Glyph {
	return Join(
		Prim(Polygon{
			Points: []Vec2{{-0.5, 0}, {0.2, -0.5}, {0.2, 0.5}},
			Fill:   ShapeTriangles,
		}),
		Prim(Polygon{
			Points: []Vec2{{0.3, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {0.3, 0.5}},
			Fill:   ShapeQuads,
		}),
	)
}

// RGBGlyph is a disc split into red, green and blue thirds.
func RGBGlyph() Glyph {
	band := func(start, end float32) Glyph {
		return Prim(ArcFan{Radius: 0.5, Start: start, End: end, Step: fanStep})
	}
	return Join(
		Tint(band(0, 0.33), Red),
		Tint(band(0.33, 0.66), Green),
		Tint(band(0.66, 1), Blue),
	)
}

// CloseGlyph is an orange close button.
func CloseGlyph() Glyph {
	return Prim(ShapeFunc(func(s DrawSurface, _ bool) error {
		return DrawCloseButton(s, 0, 0, 0.75, RGBAf(0.3, 0.2, 0, 1), RGBAf(1, 0.6, 0, 1))
	}))
}

// minLerpRadius bounds CircleLerpGlyph so the ring loop terminates.
const minLerpRadius = 1e-3

// CircleLerpGlyph draws concentric rings shrinking by 10% from radius 1 down
// to start, fading in cyan toward the center.
func CircleLerpGlyph(start float32) Glyph {
	if start < minLerpRadius {
		start = minLerpRadius
	}
	var rings []Glyph
	for q := float32(1); q >= start; q *= 0.9 {
		a := math32.Cbrt(1 - q)
		ring := Outlined{Shape: Circle(Vec2{}, q, 0.1)}
		rings = append(rings, Tint(Prim(ring), RGBAf(0.2, 1, 1, 1).MulScalar(a)))
	}
	return Join(rings...)
}

// translateCircle is the small hub of the translate icons.
func translateCircle() Glyph {
	return Scaled(CircleGlyph(), 0.2333)
}

// translateTriangle is one arrowhead of the translate icons.
func translateTriangle(angle float32) Glyph {
	return Transform(TriangleGlyph(), angle, Vec2{X: -1.3}, 0.25)
}

// iconAngles returns the triangle angles for a translate icon.
func iconAngles(start, inc, limit float32, spacing AngleSpacing) []float32 {
	steps := int(limit / inc)
	angles := make([]float32, 0, steps)
	current := start
	for i := 0; i < steps; i++ {
		if spacing == AngleSpacingEven {
			angles = append(angles, start+float32(i)*inc)
			continue
		}
		angles = append(angles, current)
		current += float32(i) * inc
	}
	return angles
}

func translateIcon(start, inc float32, opts []Option) Glyph {
	spacing := ApplyAndGet(opts, OptAngleSpacing)
	parts := []Glyph{translateCircle()}
	for _, a := range iconAngles(start, inc, 360, spacing) {
		parts = append(parts, translateTriangle(a))
	}
	return Join(parts...)
}

// TranslateIconGlyph is a hub with arrowheads in four directions.
func TranslateIconGlyph(opts ...Option) Glyph {
	return translateIcon(0, 90, opts)
}

// TranslateXIconGlyph is a hub with horizontal arrowheads.
func TranslateXIconGlyph(opts ...Option) Glyph {
	return translateIcon(90, 180, opts)
}

// TranslateYIconGlyph is a hub with vertical arrowheads.
func TranslateYIconGlyph(opts ...Option) Glyph {
	return translateIcon(0, 180, opts)
}

// NamedGlyph pairs a library glyph with its name.
type NamedGlyph struct {
	Name  string
	Glyph Glyph
}

// Library returns the built-in glyphs in display order.
func Library(opts ...Option) []NamedGlyph {
	return []NamedGlyph{
		{"triangle", TriangleGlyph()},
		{"circle", CircleGlyph()},
		{"square", SquareGlyph()},
		{"pause", PauseGlyph()},
		{"advance", AdvanceGlyph()},
		{"rgb", RGBGlyph()},
		{"close", CloseGlyph()},
		{"circle-lerp", CircleLerpGlyph(0.1)},
		{"translate", TranslateIconGlyph(opts...)},
		{"translate-x", TranslateXIconGlyph(opts...)},
		{"translate-y", TranslateYIconGlyph(opts...)},
	}
}

// LookupGlyph returns the library glyph with the given name.
func LookupGlyph(name string, opts ...Option) (Glyph, bool) {
	for _, ng := range Library(opts...) {
		if ng.Name == name {
			return ng.Glyph, true
		}
	}
	return nil, false
}
