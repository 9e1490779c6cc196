package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/overlay"
)

type panelOpts struct {
	output string
	format string
	split  string
	style  string
	width  int
	height int
}

func (c *CLI) panelCommand() *cobra.Command {
	opts := panelOpts{}

	cmd := &cobra.Command{
		Use:   "panel <pairs.toml>",
		Short: "Draw a name/value panel sized to fill the output",
		Long: `Panel reads [[pair]] tables with name and value keys, splits multi-line
values into extra rows, picks the largest text size at which the panel fits
and draws it.`,
		Example: `  glyphsheet panel info.toml -o info.png --width 480 --height 200`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPanel(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (required)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: png, pdf or svg (default: from extension)")
	cmd.Flags().StringVar(&opts.split, "split", overlay.LineSplitLiteral.String(), "value line delimiter: literal or newline")
	cmd.Flags().StringVar(&opts.style, "style", "normal", "panel colors: normal, error or feedback")
	cmd.Flags().IntVar(&opts.width, "width", 480, "output width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 240, "output height in pixels")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// parseLineSplit maps a flag value to a LineSplit.
func parseLineSplit(s string) (overlay.LineSplit, error) {
	for _, l := range []overlay.LineSplit{overlay.LineSplitLiteral, overlay.LineSplitNewline} {
		if l.String() == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown split %q (want literal or newline)", s)
}

// panelStyle returns cfg with its panel colors picked by name.
func panelStyle(cfg overlay.Config, name string) (overlay.Config, error) {
	switch name {
	case "normal":
		return cfg, nil
	case "error":
		return cfg.ErrorConfig(), nil
	case "feedback":
		return cfg.FeedbackConfig(), nil
	default:
		return cfg, fmt.Errorf("unknown style %q (want normal, error or feedback)", name)
	}
}

// panelInset is the gap kept between the panel and the output edges, in
// panel margins.
const panelInset = 2

// drawPanel fits pairs into the view and draws them. It returns the chosen
// text size.
func drawPanel(p *overlay.Painter, view overlay.Vec2, pairs []overlay.NameValuePair) (int, error) {
	m := p.Config.PanelMargin
	size, err := overlay.FitPairs(p.Text, pairs, m, view.X-panelInset*2*m, view.Y-panelInset*2*m)
	if err != nil {
		return 0, err
	}
	if err := p.Text.SetSize(size); err != nil {
		return 0, err
	}
	_, err = p.NameValuePairs(pairs, p.Config.Fg, p.Config.Bg, panelInset*m, panelInset*m, m, overlay.PanelLimits{})
	return size, err
}

func (c *CLI) runPanel(path string, opts panelOpts) (err error) {
	split, err := parseLineSplit(opts.split)
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
	cfg, err = panelStyle(cfg, opts.style)
	if err != nil {
		return err
	}

	pairs, err := LoadPairs(path)
	if err != nil {
		return err
	}
	rows := overlay.ExpandNameValuePairs(pairs, overlay.WithLineSplit(split))
	c.Logger.Debug("pairs loaded", "pairs", len(pairs), "rows", len(rows))

	s, err := newSheet(format, opts.width, opts.height)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, s.close()) }()

	s.Clear(overlay.Transparent)
	p := overlay.NewPainter(s, s.Text(), overlay.WithConfig(cfg))
	size, err := drawPanel(p, s.View(), rows)
	if err != nil {
		return err
	}
	if err := s.save(opts.output); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}

	printReport(c.Out, "panel", field{"rows", len(rows)}, field{"text size", size})
	printWritten(c.Out, opts.output)
	return nil
}
