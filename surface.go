package overlay

// ShapeKind selects how the vertices between BeginShape and EndShape are
// assembled, mirroring the classic immediate-mode primitive types.
type ShapeKind int

const (
	ShapeLines       ShapeKind = iota // independent segments, two vertices each
	ShapeLineStrip                    // open polyline
	ShapeLineLoop                     // closed polyline
	ShapeTriangles                    // independent triangles
	ShapeTriangleFan                  // fan around the first vertex
	ShapeQuads                        // independent quads
	ShapePolygon                      // single convex polygon
)

// String returns the shape kind name.
func (k ShapeKind) String() string {
	switch k {
	case ShapeLines:
		return "lines"
	case ShapeLineStrip:
		return "line-strip"
	case ShapeLineLoop:
		return "line-loop"
	case ShapeTriangles:
		return "triangles"
	case ShapeTriangleFan:
		return "triangle-fan"
	case ShapeQuads:
		return "quads"
	case ShapePolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// IsOutline reports whether the kind draws lines rather than filled area.
func (k ShapeKind) IsOutline() bool {
	return k == ShapeLines || k == ShapeLineStrip || k == ShapeLineLoop
}

// Capability is a toggleable piece of render state.
type Capability int

const (
	CapLineSmooth Capability = iota
	CapPolygonSmooth
	CapBlend
)

// DrawSurface is the immediate-mode drawing target glyphs and panels render
// into. The host (or one of the backends) supplies it.
//
// Transforms compose like the classic matrix stack: each Rotate, Scale or
// Translate is applied to subsequently issued vertices before the
// transforms already in effect.
type DrawSurface interface {
	BeginShape(kind ShapeKind)
	Vertex(x, y float32)
	// EndShape assembles and draws the vertices issued since BeginShape.
	EndShape() error

	SetColor(c Color)
	SetLineWidth(w float32)

	PushTransform()
	PopTransform()
	Rotate(degrees float32)
	Scale(s float32)
	Translate(x, y float32)

	Enable(capability Capability)
	Disable(capability Capability)
}

// shape issues a whole shape in one call.
func shape(s DrawSurface, kind ShapeKind, pts ...Vec2) error {
	s.BeginShape(kind)
	for _, p := range pts {
		s.Vertex(p.X, p.Y)
	}
	return s.EndShape()
}

// AssembleShape splits the vertices of a shape into the paths a vector
// backend draws. For outline kinds each path is a polyline, closed only for
// ShapeLineLoop; for filled kinds each path is a closed polygon. Trailing
// vertices that do not complete a primitive are dropped.
func AssembleShape(kind ShapeKind, pts []Vec2) (paths [][]Vec2, closed bool) {
	switch kind {
	case ShapeLines:
		for i := 0; i+1 < len(pts); i += 2 {
			paths = append(paths, pts[i:i+2])
		}
		return paths, false
	case ShapeLineStrip:
		if len(pts) >= 2 {
			paths = append(paths, pts)
		}
		return paths, false
	case ShapeLineLoop:
		if len(pts) >= 2 {
			paths = append(paths, pts)
		}
		return paths, true
	case ShapeTriangles:
		for i := 0; i+2 < len(pts); i += 3 {
			paths = append(paths, pts[i:i+3])
		}
	case ShapeQuads:
		for i := 0; i+3 < len(pts); i += 4 {
			paths = append(paths, pts[i:i+4])
		}
	case ShapeTriangleFan, ShapePolygon:
		if len(pts) >= 3 {
			paths = append(paths, pts)
		}
	}
	return paths, true
}
