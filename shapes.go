package overlay

import "github.com/chewxy/math32"

// Shape is a primitive producer used as a glyph leaf.
type Shape interface {
	Draw(s DrawSurface, outline bool) error
}

// ShapeFunc adapts a function to Shape, for host-supplied leaves.
type ShapeFunc func(s DrawSurface, outline bool) error

// Draw calls f.
func (f ShapeFunc) Draw(s DrawSurface, outline bool) error { return f(s, outline) }

// Polygon is a filled or outlined vertex list. Fill selects how the
// vertices are assembled when filled (ShapeTriangles, ShapeQuads,
// ShapePolygon or ShapeTriangleFan). Outlines trace every triangle or quad
// of the fill as its own closed loop.
type Polygon struct {
	Points []Vec2
	Fill   ShapeKind
}

// Draw implements Shape.
func (p Polygon) Draw(s DrawSurface, outline bool) error {
	if !outline {
		return shape(s, p.Fill, p.Points...)
	}
	group := len(p.Points)
	switch p.Fill {
	case ShapeTriangles:
		group = 3
	case ShapeQuads:
		group = 4
	}
	if group == 0 {
		return nil
	}
	for i := 0; i+group <= len(p.Points); i += group {
		if err := shape(s, ShapeLineLoop, p.Points[i:i+group]...); err != nil {
			return err
		}
	}
	return nil
}

// Segments draws independent line segments, one per pair of points. It looks
// the same filled and outlined.
type Segments struct {
	Points []Vec2
}

// Draw implements Shape.
func (g Segments) Draw(s DrawSurface, _ bool) error {
	return shape(s, ShapeLines, g.Points...)
}

// ArcFan approximates a circular arc. Start and End are fractions of a full
// turn measured clockwise from +Y; Step is the angular increment in radians.
// Filled arcs are triangle fans around Center, outlines are line strips
// along the rim.
type ArcFan struct {
	Center Vec2
	Radius float32
	Start  float32
	End    float32
	Step   float32
}

// Draw implements Shape.
func (f ArcFan) Draw(s DrawSurface, outline bool) error {
	kind := ShapeTriangleFan
	if outline {
		kind = ShapeLineStrip
	}
	return shape(s, kind, FanVertices(f, outline)...)
}

// rim returns the rim point at angle a (radians).
func (f ArcFan) rim(a float32) Vec2 {
	sin, cos := math32.Sincos(a)
	return Vec2{X: sin*f.Radius + f.Center.X, Y: cos*f.Radius + f.Center.Y}
}

// FanVertices returns the vertex sequence for f. Filled fans start with the
// center. The rim runs from the start angle in Step increments while below
// the end angle, and always finishes on the exact end angle, so the step
// count need not divide the arc evenly.
func FanVertices(f ArcFan, outline bool) []Vec2 {
	a0 := f.Start * math32.Pi * 2
	a1 := f.End * math32.Pi * 2

	n := 0
	if f.Step > 0 && a1 > a0 {
		n = int(math32.Ceil((a1 - a0) / f.Step))
	}
	verts := make([]Vec2, 0, n+2)
	if !outline {
		verts = append(verts, f.Center)
	}
	if f.Step > 0 {
		for i := 0; ; i++ {
			a := a0 + float32(i)*f.Step
			if a >= a1 {
				break
			}
			verts = append(verts, f.rim(a))
		}
	} else if a0 < a1 {
		verts = append(verts, f.rim(a0))
	}
	return append(verts, f.rim(a1))
}

// Circle returns a full-turn fan.
func Circle(center Vec2, radius, step float32) ArcFan {
	return ArcFan{Center: center, Radius: radius, Start: 0, End: 1, Step: step}
}
