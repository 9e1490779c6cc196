// Package glyphexpr parses a small expression language that composes
// library glyphs, so new glyphs can be described on the command line or in
// a theme file instead of in Go:
//
//	circle & xform(triangle, angle=90, scale=0.5)
//	tint(square, #ff8000) & lerp(0.2)
//
// Names refer to overlay.Library entries. "&" joins glyphs, drawing them in
// order. Calls are:
//
//	xform(g, angle, scale, tx, ty)  rotate, then scale, then translate g
//	rotate(g, degrees)
//	scale(g, factor)
//	tint(g, #rrggbb[aa])            draw g in a fixed color
//	lerp(start)                     concentric fading rings, start in (0, 1]
//
// Arguments after the glyph may be positional or keyed (angle=45).
package glyphexpr

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	exprLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6})`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d*|\.\d+|\d+)`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[&(),=]`},
	})

	exprParser = participle.MustBuild[Expr](
		participle.Lexer(exprLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(3),
	)
)

// Expr is one or more terms joined with "&".
type Expr struct {
	Pos   lexer.Position `parser:""`
	Terms []*Term        `parser:"@@ ( '&' @@ )*"`
}

// Term is a call, a library name or a parenthesized expression.
type Term struct {
	Pos   lexer.Position `parser:""`
	Call  *Call          `parser:"  @@"`
	Name  *string        `parser:"| @Ident"`
	Group *Expr          `parser:"| '(' @@ ')'"`
}

// Call applies a function to its arguments.
type Call struct {
	Pos  lexer.Position `parser:""`
	Func string         `parser:"@Ident '('"`
	Args []*Arg         `parser:"( @@ ( ',' @@ )* )? ')'"`
}

// Arg is a positional or keyed call argument.
type Arg struct {
	Pos   lexer.Position `parser:""`
	Key   *string        `parser:"( @Ident '=' )?"`
	Value *Value         `parser:"@@"`
}

// Value is an argument value.
type Value struct {
	Number *float64 `parser:"  @Number"`
	Color  *string  `parser:"| @Color"`
	Glyph  *Expr    `parser:"| @@"`
}

// Parse parses an expression from r.
func Parse(r io.Reader) (*Expr, error) {
	e, err := exprParser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("glyphexpr: %w", err)
	}
	return e, nil
}

// ParseString parses an expression from a string.
func ParseString(input string) (*Expr, error) {
	e, err := exprParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("glyphexpr: %w", err)
	}
	return e, nil
}
