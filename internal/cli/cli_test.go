package cli

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/overlay"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTheme(t *testing.T) {
	path := writeFile(t, "theme.toml", `
bg = "#102030cc"
panel_margin = 12.0
drop_text_size = 30
`)
	cfg, err := LoadTheme(path)
	require.NoError(t, err)

	def := overlay.DefaultConfig()
	assert.Equal(t, "#102030cc", cfg.Bg.Hex())
	assert.Equal(t, float32(12), cfg.PanelMargin)
	assert.Equal(t, 30, cfg.DropTextSize)
	assert.Equal(t, def.Fg, cfg.Fg, "unset fields keep their defaults")
}

func TestLoadThemeErrors(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		path := writeFile(t, "theme.toml", `background = "#000000"`)
		_, err := LoadTheme(path)
		require.ErrorIs(t, err, ErrUnknownKeys)
		assert.Contains(t, err.Error(), "background")
	})
	t.Run("bad color", func(t *testing.T) {
		path := writeFile(t, "theme.toml", `fg = "#12"`)
		_, err := LoadTheme(path)
		require.Error(t, err)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTheme(filepath.Join(t.TempDir(), "none.toml"))
		require.Error(t, err)
	})
}

func TestLoadPairs(t *testing.T) {
	path := writeFile(t, "pairs.toml", `
[[pair]]
name = "Source"
value = "shot_010.exr"

[[pair]]
name = "Notes"
value = """
first
second"""
`)
	pairs, err := LoadPairs(path)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, overlay.NameValuePair{Name: "Source", Value: "shot_010.exr"}, pairs[0])
	assert.Equal(t, "first\nsecond", pairs[1].Value)
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	l.Debug("hidden")
	assert.Zero(t, buf.Len())

	l.SetLevel(log.DebugLevel)
	l.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestInstallLoggerRoutesOverlayLogs(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.DebugLevel)
	installLogger(l)
	t.Cleanup(func() { overlay.SetLogger(nil) })

	overlay.Logger().Debug("from overlay", "k", 1)
	assert.Contains(t, buf.String(), "from overlay")
}

func TestParseFlags(t *testing.T) {
	s, err := parseSpacing("even")
	require.NoError(t, err)
	assert.Equal(t, overlay.AngleSpacingEven, s)
	_, err = parseSpacing("odd")
	assert.Error(t, err)

	l, err := parseLineSplit("newline")
	require.NoError(t, err)
	assert.Equal(t, overlay.LineSplitNewline, l)
	_, err = parseLineSplit("crlf")
	assert.Error(t, err)
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		format, path, want string
		wantErr            bool
	}{
		{"", "out.png", FormatPNG, false},
		{"", "out.PDF", FormatPDF, false},
		{"", "out.svg", FormatSVG, false},
		{"", "out", FormatPNG, false},
		{"pdf", "out.png", FormatPDF, false},
		{"", "out.gif", "", true},
	}
	for _, tt := range tests {
		got, err := resolveFormat(tt.format, tt.path)
		if tt.wantErr {
			assert.Error(t, err, tt.path)
			continue
		}
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}

func TestGridLayout(t *testing.T) {
	g := newGridLayout(11, 4, 100)
	assert.Equal(t, 4, g.cols)
	assert.Equal(t, 3, g.rows)

	w, h := g.size()
	assert.Equal(t, 400, w)
	assert.Equal(t, 300, h)

	// First cell is top-left in y-up coordinates.
	assert.Equal(t, overlay.Box{X0: 0, Y0: 200, X1: 100, Y1: 300}, g.cellBox(0))
	assert.Equal(t, overlay.Box{X0: 200, Y0: 0, X1: 300, Y1: 100}, g.cellBox(10))

	small := newGridLayout(2, 4, 50)
	assert.Equal(t, 2, small.cols)
	assert.Equal(t, 1, small.rows)
}

func TestSheetGlyphs(t *testing.T) {
	lib, err := sheetGlyphs(nil)
	require.NoError(t, err)
	assert.Len(t, lib, len(overlay.Library()))

	exprs, err := sheetGlyphs([]string{"circle", "square & pause"})
	require.NoError(t, err)
	require.Len(t, exprs, 2)
	assert.Equal(t, "square & pause", exprs[1].Name)

	_, err = sheetGlyphs([]string{"nothing"})
	assert.Error(t, err)
}

func newTestCLI() (*CLI, *bytes.Buffer) {
	var out bytes.Buffer
	return New(&bytes.Buffer{}, &out, LogInfo), &out
}

func TestRenderCommandWritesPNG(t *testing.T) {
	c, out := newTestCLI()
	t.Cleanup(func() { overlay.SetLogger(nil) })
	path := filepath.Join(t.TempDir(), "sheet.png")

	root := c.RootCommand()
	root.SetArgs([]string{"render", "-o", path, "--cell", "64", "--cols", "3", "-e", "circle", "-e", "xform(triangle, angle=90)"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())
}

func TestRenderCommandRejectsBadExpression(t *testing.T) {
	c, _ := newTestCLI()
	t.Cleanup(func() { overlay.SetLogger(nil) })

	root := c.RootCommand()
	root.SetArgs([]string{"render", "-o", filepath.Join(t.TempDir(), "x.png"), "-e", "xform("})
	root.SetErr(&bytes.Buffer{})
	assert.Error(t, root.Execute())
}

func TestFitCommand(t *testing.T) {
	c, out := newTestCLI()
	t.Cleanup(func() { overlay.SetLogger(nil) })

	root := c.RootCommand()
	root.SetArgs([]string{"fit", "--text", "Hello", "--width", "200", "--height", "60"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "size")
}

func TestFitCommandEmptyText(t *testing.T) {
	c, _ := newTestCLI()
	t.Cleanup(func() { overlay.SetLogger(nil) })

	root := c.RootCommand()
	root.SetArgs([]string{"fit", "--text", "", "--width", "200", "--height", "60"})
	root.SetErr(&bytes.Buffer{})
	assert.ErrorIs(t, root.Execute(), overlay.ErrEmptyInput)
}

func TestPanelCommand(t *testing.T) {
	c, out := newTestCLI()
	t.Cleanup(func() { overlay.SetLogger(nil) })
	pairs := writeFile(t, "pairs.toml", `
[[pair]]
name = "Source"
value = "shot_010.exr"

[[pair]]
name = "Notes"
value = "one\ntwo"
`)
	path := filepath.Join(t.TempDir(), "panel.png")

	root := c.RootCommand()
	root.SetArgs([]string{"panel", pairs, "-o", path, "--split", "newline"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "rows")
	assert.FileExists(t, path)
}

func TestPanelStyle(t *testing.T) {
	def := overlay.DefaultConfig()

	cfg, err := panelStyle(def, "normal")
	require.NoError(t, err)
	assert.Equal(t, def, cfg)

	cfg, err = panelStyle(def, "error")
	require.NoError(t, err)
	assert.Equal(t, def.BgErr, cfg.Bg)
	assert.Equal(t, def.FgErr, cfg.Fg)

	cfg, err = panelStyle(def, "feedback")
	require.NoError(t, err)
	assert.Equal(t, def.BgFeedback, cfg.Bg)
	assert.Equal(t, def.FgFeedback, cfg.Fg)

	_, err = panelStyle(def, "loud")
	assert.ErrorContains(t, err, "loud")
}

func TestPanelCommandErrorStyle(t *testing.T) {
	c, _ := newTestCLI()
	t.Cleanup(func() { overlay.SetLogger(nil) })
	pairs := writeFile(t, "pairs.toml", `
[[pair]]
name = "Error"
value = "missing frame"
`)
	path := filepath.Join(t.TempDir(), "panel.png")

	root := c.RootCommand()
	root.SetArgs([]string{"panel", pairs, "-o", path, "--style", "error"})
	require.NoError(t, root.Execute())
	assert.FileExists(t, path)

	root = c.RootCommand()
	root.SetArgs([]string{"panel", pairs, "-o", path, "--style", "loud"})
	root.SetErr(&bytes.Buffer{})
	assert.Error(t, root.Execute())
}

func TestSheetLabelSizeFollowsTheme(t *testing.T) {
	c, _ := newTestCLI()
	t.Cleanup(func() { overlay.SetLogger(nil) })
	theme := writeFile(t, "theme.toml", `info_text_size = 40`)

	root := c.RootCommand()
	root.SetArgs([]string{"render", "--theme", theme, "-o", filepath.Join(t.TempDir(), "s.png"), "--cell", "64", "-e", "circle"})
	root.SetErr(&bytes.Buffer{})
	assert.ErrorContains(t, root.Execute(), "too small")
}
