// Example shows the glyph library, a cartouche label and a name/value panel
// in a GLFW window. Hovering a glyph draws it outlined; holding the left
// button shows drop regions.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/overlay"
	"github.com/go-theft-auto/overlay/backend/opengl"
)

const (
	windowWidth  = 900
	windowHeight = 600
	windowTitle  = "overlay example"

	glyphSize = 48
	glyphGap  = 72
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	win, err := opengl.OpenWindow(windowWidth, windowHeight, windowTitle)
	if err != nil {
		return err
	}
	defer win.Close()

	ov := overlay.New(win.Renderer)
	library := overlay.Library(overlay.WithAngleSpacing(overlay.AngleSpacingEven))
	pairs := overlay.ExpandNameValuePairs([]overlay.NameValuePair{
		{Name: "Source", Value: "shot_010_comp_v3.exr"},
		{Name: "Resolution", Value: "4096 x 2160"},
		{Name: "Notes", Value: "matte edge\nneeds a second pass"},
	}, overlay.WithLineSplit(overlay.LineSplitNewline))

	frame := 0
	for !win.ShouldClose() {
		view := win.BeginFrame(overlay.RGBAf(0.12, 0.12, 0.14, 1))
		pointer := win.Pointer()
		p := ov.Begin(view)

		if err := drawFrame(p, view, pointer, library, pairs, frame, win.Pressed()); err != nil {
			return err
		}
		if err := ov.End(); err != nil {
			return fmt.Errorf("overlay render: %w", err)
		}
		win.EndFrame()
		frame++
	}
	return nil
}

func drawFrame(p *overlay.Painter, view, pointer overlay.Vec2, library []overlay.NamedGlyph, pairs []overlay.NameValuePair, frame int, pressed bool) error {
	cfg := p.Config
	top := view.Y - glyphGap

	for i, ng := range library {
		x := float32(glyphGap + i%8*glyphGap)
		y := top - float32(i/8*glyphGap)
		hit := overlay.Box{X0: x - glyphSize/2, Y0: y - glyphSize/2, X1: x + glyphSize/2, Y1: y + glyphSize/2}
		p.Surface.SetColor(cfg.Fg)
		if err := p.Glyph(ng.Glyph, x, y, float32(frame%360), glyphSize, hit.Contains(pointer)); err != nil {
			return fmt.Errorf("glyph %s: %w", ng.Name, err)
		}
	}

	if _, err := p.TextWithCartouche(40, 240, "Playing", 20, cfg.FgVCR, cfg.BgVCR, overlay.AdvanceGlyph(), cfg.HlVCRButton); err != nil {
		return err
	}

	if err := p.Text.SetSize(cfg.InfoTextSize); err != nil {
		return err
	}
	if _, err := p.NameValuePairs(pairs, cfg.Fg, cfg.Bg, 60, 60, cfg.PanelMargin, overlay.PanelLimits{MinWidth: 240}); err != nil {
		return err
	}

	if pressed {
		_, err := p.DropRegions(view.X, view.Y, pointer, cfg.PanelMargin, overlay.Margins{}, []string{"Replace", "Append", "Compare"})
		return err
	}
	return nil
}
