package glyphexpr

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/go-theft-auto/overlay"
)

const defaultLerpStart = 0.1

// Error is an evaluation error at a position in the source.
type Error struct {
	Pos lexer.Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("glyphexpr: %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

func errorf(pos lexer.Position, format string, args ...any) error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Compile parses input and evaluates it to a glyph. opts are passed to the
// library lookups (for example overlay.WithAngleSpacing).
func Compile(input string, opts ...overlay.Option) (overlay.Glyph, error) {
	e, err := ParseString(input)
	if err != nil {
		return nil, err
	}
	return e.Eval(opts...)
}

// Eval builds the glyph the expression describes.
func (e *Expr) Eval(opts ...overlay.Option) (overlay.Glyph, error) {
	glyphs := make([]overlay.Glyph, 0, len(e.Terms))
	for _, t := range e.Terms {
		g, err := t.eval(opts)
		if err != nil {
			return nil, err
		}
		glyphs = append(glyphs, g)
	}
	if len(glyphs) == 1 {
		return glyphs[0], nil
	}
	return overlay.Join(glyphs...), nil
}

func (t *Term) eval(opts []overlay.Option) (overlay.Glyph, error) {
	switch {
	case t.Call != nil:
		return t.Call.eval(opts)
	case t.Group != nil:
		return t.Group.Eval(opts...)
	case t.Name != nil:
		g, ok := overlay.LookupGlyph(*t.Name, opts...)
		if !ok {
			return nil, errorf(t.Pos, "unknown glyph %q", *t.Name)
		}
		return g, nil
	}
	return nil, errorf(t.Pos, "empty term")
}

// params are call arguments after binding positional and keyed values.
type params struct {
	call   *Call
	values map[string]*Arg
}

// bind matches the call's arguments against names in order. Positional
// arguments must precede keyed ones.
func (c *Call) bind(names ...string) (params, error) {
	p := params{call: c, values: make(map[string]*Arg, len(c.Args))}
	keyed := false
	for i, a := range c.Args {
		var name string
		switch {
		case a.Key != nil:
			keyed = true
			name = *a.Key
			if !contains(names, name) {
				return p, errorf(a.Pos, "%s has no argument %q", c.Func, name)
			}
		case keyed:
			return p, errorf(a.Pos, "positional argument after keyed argument in %s", c.Func)
		case i >= len(names):
			return p, errorf(a.Pos, "%s takes at most %d arguments", c.Func, len(names))
		default:
			name = names[i]
		}
		if _, dup := p.values[name]; dup {
			return p, errorf(a.Pos, "argument %q given twice in %s", name, c.Func)
		}
		p.values[name] = a
	}
	return p, nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func (p params) number(name string, def float32) (float32, error) {
	a, ok := p.values[name]
	if !ok {
		return def, nil
	}
	if a.Value.Number == nil {
		return 0, errorf(a.Pos, "%s: %s must be a number", p.call.Func, name)
	}
	return float32(*a.Value.Number), nil
}

func (p params) glyph(name string, opts []overlay.Option) (overlay.Glyph, error) {
	a, ok := p.values[name]
	if !ok {
		return nil, errorf(p.call.Pos, "%s: missing %s", p.call.Func, name)
	}
	if a.Value.Glyph == nil {
		return nil, errorf(a.Pos, "%s: %s must be a glyph", p.call.Func, name)
	}
	return a.Value.Glyph.Eval(opts...)
}

func (p params) color(name string) (overlay.Color, error) {
	a, ok := p.values[name]
	if !ok {
		return overlay.Color{}, errorf(p.call.Pos, "%s: missing %s", p.call.Func, name)
	}
	if a.Value.Color == nil {
		return overlay.Color{}, errorf(a.Pos, "%s: %s must be a color", p.call.Func, name)
	}
	c, err := overlay.ParseHexColor(*a.Value.Color)
	if err != nil {
		return overlay.Color{}, errorf(a.Pos, "%s: %v", p.call.Func, err)
	}
	return c, nil
}

func (c *Call) eval(opts []overlay.Option) (overlay.Glyph, error) {
	switch c.Func {
	case "xform":
		p, err := c.bind("g", "angle", "scale", "tx", "ty")
		if err != nil {
			return nil, err
		}
		g, err := p.glyph("g", opts)
		if err != nil {
			return nil, err
		}
		angle, err := p.number("angle", 0)
		if err != nil {
			return nil, err
		}
		scale, err := p.number("scale", 1)
		if err != nil {
			return nil, err
		}
		tx, err := p.number("tx", 0)
		if err != nil {
			return nil, err
		}
		ty, err := p.number("ty", 0)
		if err != nil {
			return nil, err
		}
		return overlay.Transform(g, angle, overlay.Vec2{X: tx, Y: ty}, scale), nil

	case "rotate":
		p, err := c.bind("g", "degrees")
		if err != nil {
			return nil, err
		}
		g, err := p.glyph("g", opts)
		if err != nil {
			return nil, err
		}
		deg, err := p.number("degrees", 0)
		if err != nil {
			return nil, err
		}
		return overlay.Rotated(g, deg), nil

	case "scale":
		p, err := c.bind("g", "factor")
		if err != nil {
			return nil, err
		}
		g, err := p.glyph("g", opts)
		if err != nil {
			return nil, err
		}
		f, err := p.number("factor", 1)
		if err != nil {
			return nil, err
		}
		return overlay.Scaled(g, f), nil

	case "tint":
		p, err := c.bind("g", "color")
		if err != nil {
			return nil, err
		}
		g, err := p.glyph("g", opts)
		if err != nil {
			return nil, err
		}
		col, err := p.color("color")
		if err != nil {
			return nil, err
		}
		return overlay.Tint(g, col), nil

	case "lerp":
		p, err := c.bind("start")
		if err != nil {
			return nil, err
		}
		start, err := p.number("start", defaultLerpStart)
		if err != nil {
			return nil, err
		}
		if start <= 0 || start > 1 {
			return nil, errorf(c.Pos, "lerp: start %g outside (0, 1]", start)
		}
		return overlay.CircleLerpGlyph(start), nil
	}
	return nil, errorf(c.Pos, "unknown function %q", c.Func)
}
