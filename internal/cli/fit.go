package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/overlay"
	"github.com/go-theft-auto/overlay/backend/raster"
)

type fitOpts struct {
	text     string
	width    float32
	height   float32
	maxIters int
}

func (c *CLI) fitCommand() *cobra.Command {
	opts := fitOpts{}

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Find the largest font size that fits text in a box",
		Long: `Fit runs the font-size search against the raster backend's Go Regular
font and reports the chosen size and the text extent at that size.`,
		Example: `  glyphsheet fit --text "Hello" --width 100 --height 40`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "text to fit (required)")
	cmd.Flags().Float32Var(&opts.width, "width", 0, "box width in pixels (required)")
	cmd.Flags().Float32Var(&opts.height, "height", 0, "box height in pixels (required)")
	cmd.Flags().IntVar(&opts.maxIters, "max-iterations", overlay.OptMaxFitIterations.Default(), "search iteration cap")
	_ = cmd.MarkFlagRequired("text")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")

	return cmd
}

func (c *CLI) runFit(opts fitOpts) (err error) {
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("box %gx%g must be positive", opts.width, opts.height)
	}
	s, err := raster.New(1, 1)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, s.Close()) }()

	m := s.Text()
	size, err := overlay.FitSingle(overlay.MeasureWith(m), opts.text, opts.width, opts.height,
		overlay.WithMaxFitIterations(opts.maxIters))
	if err != nil {
		return err
	}
	if err := m.SetSize(size); err != nil {
		return err
	}
	b, err := m.Bounds(opts.text)
	if err != nil {
		return err
	}

	printReport(c.Out, "fit",
		field{"size", size},
		field{"width", fmt.Sprintf("%.1f / %g", b.Width(), opts.width)},
		field{"height", fmt.Sprintf("%.1f / %g", b.Height(), opts.height)},
	)
	return nil
}
