package overlay

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Box is an axis-aligned rectangle given by two corners.
type Box struct {
	X0, Y0 float32
	X1, Y1 float32
}

// Width returns the horizontal extent.
func (b Box) Width() float32 { return b.X1 - b.X0 }

// Height returns the vertical extent.
func (b Box) Height() float32 { return b.Y1 - b.Y0 }

// Size returns the extents as a vector.
func (b Box) Size() Vec2 { return Vec2{X: b.Width(), Y: b.Height()} }

// Contains returns true if the point lies inside the box, edges included.
func (b Box) Contains(p Vec2) bool {
	return b.X0 <= p.X && p.X <= b.X1 && b.Y0 <= p.Y && p.Y <= b.Y1
}

// Union returns the smallest box enclosing both boxes.
func (b Box) Union(other Box) Box {
	return Box{
		X0: minf(b.X0, other.X0),
		Y0: minf(b.Y0, other.Y0),
		X1: maxf(b.X1, other.X1),
		Y1: maxf(b.Y1, other.Y1),
	}
}

// TextBounds is the four component extent a TextMeasurer reports for a
// string: distances from the pen origin to the left, bottom, right and top
// edges of the inked area.
type TextBounds struct {
	Left, Bottom float32
	Right, Top   float32
}

// Width returns the horizontal extent of the text.
func (t TextBounds) Width() float32 { return t.Left + t.Right }

// Height returns the vertical extent of the text.
func (t TextBounds) Height() float32 { return t.Bottom + t.Top }

// Fits reports whether the bounds fit within w x h.
func (t TextBounds) Fits(w, h float32) bool {
	return t.Width() <= w && t.Height() <= h
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// RGBA creates a packed color from individual components (0-255).
// Packed colors are 0xAABBGGRR for OpenGL vertex buffers.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minf returns the minimum of two float32 values.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
