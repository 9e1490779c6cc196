// Package cli implements the glyphsheet command-line interface.
//
// glyphsheet renders overlay glyphs and panels headless, through the raster
// and vector backends, and exposes the font-size fitter for inspection.
//
// # Commands
//
//   - render: draw the glyph library, or glyph expressions, as a grid
//   - fit: report the largest font size that fits text in a box
//   - panel: draw a name/value panel read from a TOML file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The
// charmbracelet logger is installed as the slog handler of the overlay
// package and of gg, so library diagnostics share its output.
//
// # Themes
//
// --theme loads a TOML file over overlay.DefaultConfig; see LoadTheme.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/overlay"
)

const appName = "glyphsheet"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer

	themePath string
}

// New creates a CLI logging to logw at level and writing reports to out.
func New(logw, out io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(logw, level), Out: out}
	installLogger(c.Logger)
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "glyphsheet renders overlay glyphs and panels",
		Long:         `glyphsheet renders the overlay glyph library, glyph expressions and name/value panels to PNG, PDF or SVG without a window.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&c.themePath, "theme", "", "TOML theme overriding the default colors and sizes")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.fitCommand())
	root.AddCommand(c.panelCommand())
	return root
}

// config returns the theme selected by --theme.
func (c *CLI) config() (overlay.Config, error) {
	if c.themePath == "" {
		return overlay.DefaultConfig(), nil
	}
	cfg, err := LoadTheme(c.themePath)
	if err != nil {
		return overlay.Config{}, err
	}
	c.Logger.Debug("theme loaded", "path", c.themePath)
	return cfg, nil
}
