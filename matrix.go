package overlay

import "github.com/chewxy/math32"

// Matrix is a 2D affine transform in row-major 2x3 form:
//
//	| a  b  c |
//	| d  e  f |
//
// so that x' = a*x + b*y + c and y' = d*x + e*y + f.
type Matrix struct {
	A, B, C float32
	D, E, F float32
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// TranslateMatrix returns a translation.
func TranslateMatrix(x, y float32) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// ScaleMatrix returns a non-uniform scale.
func ScaleMatrix(x, y float32) Matrix {
	return Matrix{A: x, E: y}
}

// RotateMatrix returns a counter-clockwise rotation about the Z axis.
func RotateMatrix(degrees float32) Matrix {
	rad := degrees * math32.Pi / 180
	sin, cos := math32.Sincos(rad)
	return Matrix{
		A: cos, B: -sin,
		D: sin, E: cos,
	}
}

// Multiply returns m * other: other is applied first.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Apply transforms a point.
func (m Matrix) Apply(x, y float32) (float32, float32) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// matrixStack is a transform stack with a current top.
type matrixStack struct {
	top   Matrix
	saved []Matrix
}

func (s *matrixStack) reset() {
	s.top = Identity()
	s.saved = s.saved[:0]
}

func (s *matrixStack) push() {
	s.saved = append(s.saved, s.top)
}

// pop restores the last pushed transform. Popping an empty stack is a no-op.
func (s *matrixStack) pop() {
	n := len(s.saved)
	if n == 0 {
		return
	}
	s.top = s.saved[n-1]
	s.saved = s.saved[:n-1]
}

func (s *matrixStack) depth() int { return len(s.saved) }

func (s *matrixStack) rotate(deg float32) {
	s.top = s.top.Multiply(RotateMatrix(deg))
}

func (s *matrixStack) scale(f float32) {
	s.top = s.top.Multiply(ScaleMatrix(f, f))
}

func (s *matrixStack) translate(x, y float32) {
	s.top = s.top.Multiply(TranslateMatrix(x, y))
}
