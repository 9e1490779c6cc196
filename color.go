package overlay

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a non-premultiplied RGBA quad with components nominally in [0, 1].
// Arithmetic does not clamp; clamping happens when packing for a backend.
type Color struct {
	R, G, B, A float32
}

// Commonly used colors.
var (
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Transparent = Color{}
)

// RGBAf creates a color from float components.
func RGBAf(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// MulScalar scales all four channels by f.
func (c Color) MulScalar(f float32) Color {
	return Color{R: c.R * f, G: c.G * f, B: c.B * f, A: c.A * f}
}

// MulColor multiplies channel-wise.
func (c Color) MulColor(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A * o.A}
}

// Mul multiplies by a numeric scalar or another Color. Any other operand is a
// programming error and panics with *InvalidColorOperandError.
func (c Color) Mul(operand any) Color {
	switch v := operand.(type) {
	case Color:
		return c.MulColor(v)
	case *Color:
		if v == nil {
			break
		}
		return c.MulColor(*v)
	case float32:
		return c.MulScalar(v)
	case float64:
		return c.MulScalar(float32(v))
	case int:
		return c.MulScalar(float32(v))
	case int32:
		return c.MulScalar(float32(v))
	case int64:
		return c.MulScalar(float32(v))
	case uint8:
		return c.MulScalar(float32(v))
	}
	panic(&InvalidColorOperandError{Operand: operand})
}

// Sub subtracts channel-wise.
func (c Color) Sub(o Color) Color {
	return Color{R: c.R - o.R, G: c.G - o.G, B: c.B - o.B, A: c.A - o.A}
}

// Lerp interpolates channel-wise toward o.
func (c Color) Lerp(o Color, t float32) Color {
	return Color{
		R: Lerp(c.R, o.R, t),
		G: Lerp(c.G, o.G, t),
		B: Lerp(c.B, o.B, t),
		A: Lerp(c.A, o.A, t),
	}
}

// Packed returns the color packed as 0xAABBGGRR, clamped to [0, 1].
func (c Color) Packed() uint32 {
	return RGBA(
		uint8(clampf(c.R, 0, 1)*255),
		uint8(clampf(c.G, 0, 1)*255),
		uint8(clampf(c.B, 0, 1)*255),
		uint8(clampf(c.A, 0, 1)*255),
	)
}

// NRGBA converts to the standard library color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clampf(c.R, 0, 1)*255 + 0.5),
		G: uint8(clampf(c.G, 0, 1)*255 + 0.5),
		B: uint8(clampf(c.B, 0, 1)*255 + 0.5),
		A: uint8(clampf(c.A, 0, 1)*255 + 0.5),
	}
}

// IsTransparent reports whether the alpha channel is zero or below.
func (c Color) IsTransparent() bool {
	return c.A <= 0
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa". The leading '#' is
// optional; a missing alpha means opaque.
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("overlay: invalid hex color %q", s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("overlay: invalid hex color %q: %w", s, err)
	}
	return Color{
		R: float32(v>>24&0xff) / 255,
		G: float32(v>>16&0xff) / 255,
		B: float32(v>>8&0xff) / 255,
		A: float32(v&0xff) / 255,
	}, nil
}

// Hex formats c as "#rrggbbaa".
func (c Color) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHexColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
