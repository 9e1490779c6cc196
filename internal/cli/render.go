package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/overlay"
	"github.com/go-theft-auto/overlay/glyphexpr"
)

type renderOpts struct {
	output  string
	format  string
	outline bool
	spacing string
	exprs   []string
	cell    int
	cols    int
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the glyph library or glyph expressions as a grid",
		Long: `Render draws every library glyph, or each --expr, in a labeled grid.

Expressions join library glyphs with "&" and transform them with calls:
  glyphsheet render --expr 'circle & xform(triangle, angle=90, scale=0.5)' -o g.png`,
		Example: `  glyphsheet render -o library.png
  glyphsheet render --outline --spacing even -o library.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (required)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: png, pdf or svg (default: from extension)")
	cmd.Flags().BoolVar(&opts.outline, "outline", false, "draw glyphs as outlines")
	cmd.Flags().StringVar(&opts.spacing, "spacing", overlay.AngleSpacingLiteral.String(), "translate icon arrowhead spacing: literal or even")
	cmd.Flags().StringArrayVarP(&opts.exprs, "expr", "e", nil, "glyph expression to render instead of the library (repeatable)")
	cmd.Flags().IntVar(&opts.cell, "cell", 96, "grid cell size in pixels")
	cmd.Flags().IntVar(&opts.cols, "cols", 4, "grid columns")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// parseSpacing maps a flag value to an AngleSpacing.
func parseSpacing(s string) (overlay.AngleSpacing, error) {
	for _, a := range []overlay.AngleSpacing{overlay.AngleSpacingLiteral, overlay.AngleSpacingEven} {
		if a.String() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown spacing %q (want literal or even)", s)
}

// sheetGlyphs returns the glyphs to draw: the compiled expressions, or the
// whole library.
func sheetGlyphs(exprs []string, opts ...overlay.Option) ([]overlay.NamedGlyph, error) {
	if len(exprs) == 0 {
		return overlay.Library(opts...), nil
	}
	out := make([]overlay.NamedGlyph, 0, len(exprs))
	for _, e := range exprs {
		g, err := glyphexpr.Compile(e, opts...)
		if err != nil {
			return nil, fmt.Errorf("expression %q: %w", e, err)
		}
		out = append(out, overlay.NamedGlyph{Name: e, Glyph: g})
	}
	return out, nil
}

// gridLayout places n cells in rows of cols, top row first.
type gridLayout struct {
	cell float32
	cols int
	rows int
}

func newGridLayout(n, cols, cell int) gridLayout {
	if cols > n {
		cols = n
	}
	if cols < 1 {
		cols = 1
	}
	return gridLayout{cell: float32(cell), cols: cols, rows: (n + cols - 1) / cols}
}

func (g gridLayout) size() (int, int) {
	return g.cols * int(g.cell), g.rows * int(g.cell)
}

// cellBox returns the bounds of cell i in y-up coordinates.
func (g gridLayout) cellBox(i int) overlay.Box {
	col, row := i%g.cols, i/g.cols
	x0 := float32(col) * g.cell
	y1 := float32(g.rows-row) * g.cell
	return overlay.Box{X0: x0, Y0: y1 - g.cell, X1: x0 + g.cell, Y1: y1}
}

// drawSheet draws each glyph centered in its cell with its name below, at
// the theme's info text size.
func drawSheet(p *overlay.Painter, grid gridLayout, glyphs []overlay.NamedGlyph, outline bool) error {
	cfg := p.Config
	labelSpace := float32(cfg.InfoTextSize) * 1.5
	size := (grid.cell - labelSpace) * 0.8

	for i, ng := range glyphs {
		box := grid.cellBox(i)
		cx := (box.X0 + box.X1) / 2
		cy := box.Y0 + labelSpace + (grid.cell-labelSpace)/2

		p.Surface.SetColor(cfg.Fg)
		p.Surface.SetLineWidth(cfg.LineWidth)
		if err := p.Glyph(ng.Glyph, cx, cy, 0, size, outline); err != nil {
			return fmt.Errorf("glyph %s: %w", ng.Name, err)
		}

		if err := p.Text.SetSize(cfg.InfoTextSize); err != nil {
			return err
		}
		b, err := p.Text.Bounds(ng.Name)
		if err != nil {
			return err
		}
		if err := p.Text.SetColor(cfg.Fg); err != nil {
			return err
		}
		if err := p.Text.WriteAt(cx-b.Width()/2, box.Y0+b.Bottom+labelSpace/4, ng.Name); err != nil {
			return err
		}
	}
	return nil
}

func (c *CLI) runRender(opts renderOpts) (err error) {
	spacing, err := parseSpacing(opts.spacing)
	if err != nil {
		return err
	}
	format, err := resolveFormat(opts.format, opts.output)
	if err != nil {
		return err
	}
	cfg, err := c.config()
	if err != nil {
		return err
	}
	if opts.cell <= cfg.InfoTextSize*2 {
		return fmt.Errorf("cell size %d too small", opts.cell)
	}

	glyphs, err := sheetGlyphs(opts.exprs, overlay.WithAngleSpacing(spacing))
	if err != nil {
		return err
	}
	grid := newGridLayout(len(glyphs), opts.cols, opts.cell)
	w, h := grid.size()

	s, err := newSheet(format, w, h)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, s.close()) }()

	s.Clear(cfg.Bg)
	p := overlay.NewPainter(s, s.Text(), overlay.WithConfig(cfg))
	if err := drawSheet(p, grid, glyphs, opts.outline); err != nil {
		return err
	}
	if err := s.save(opts.output); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}

	c.Logger.Debug("sheet rendered", "glyphs", len(glyphs), "width", w, "height", h, "format", format)
	printWritten(c.Out, opts.output)
	return nil
}
