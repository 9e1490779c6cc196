/*
Package overlay draws vector glyph icons through an injected immediate-mode
surface, fits text into boxes and lays out name/value annotation panels.

# Overview

Everything is drawn through two interfaces the host provides: a DrawSurface
that takes shapes (begin, vertices, end) plus a transform stack, and a
TextMeasurer that sizes and writes text. The package never owns a window or
a font. Three surfaces ship with it:

  - DrawList, a pooled CPU vertex buffer rendered by backend/opengl
  - backend/raster, an in-memory image drawn with gogpu/gg
  - backend/vector, a PDF or SVG page drawn with tdewolff/canvas

Coordinates are y-up with the origin at the bottom-left corner, and angles
are in degrees, counter-clockwise.

# Quick Start

	// Setup
	win, _ := opengl.OpenWindow(900, 600, "overlay")
	ov := overlay.New(win.Renderer)

	// Frame loop
	for !win.ShouldClose() {
	    view := win.BeginFrame(overlay.Black)
	    p := ov.Begin(view)

	    p.Glyph(overlay.CircleGlyph(), 100, 100, 0, 48, false)
	    p.TextWithCartouche(40, 240, "Playing", 20, overlay.White, p.Config.BgVCR, overlay.AdvanceGlyph(), overlay.Color{})

	    ov.End()
	    win.EndFrame()
	}

# Glyphs

A Glyph is an immutable tree. Leaves (Prim) draw one Shape; Joined draws
children in order; Transformed wraps a child in push, translate, rotate,
scale and pop; Colored sets the current color before its child. Colors are
not restored afterwards, so a Colored node tints every sibling drawn after
it until another Colored node runs.

	arrow := overlay.Join(
	    overlay.CircleGlyph(),
	    overlay.Transform(overlay.TriangleGlyph(), 90, overlay.Vec2{}, 0.5),
	)
	overlay.Draw(surface, arrow, x, y, angle, size, outline)

Library returns the stock glyphs by name. The glyphexpr package parses a
small expression language over the same names, for example
"xform(triangle, angle=90, scale=0.5) & circle".

# Fitting text

FitSingle and FitPairs search for the largest font size at which text, or a
whole name/value panel, fits a box. The search needs a measure that grows
with size; it is capped by OptMaxFitIterations and fails with
ErrNoConvergence rather than looping.

	size, err := overlay.FitSingle(overlay.MeasureWith(m), "Frame 1042", 200, 40)

# Options

Builders and fitters take functional options keyed by typed OptKey values:

  - OptAngleSpacing: literal or even triangle spacing for translate icons
  - OptLineSplit: the delimiter ExpandNameValuePairs splits values on
  - OptMaxFitIterations: the fitter's iteration cap
  - OptConfig: the theme a Painter draws with

# Logging

Nothing is logged by default. SetLogger installs a *slog.Logger used by the
package and its backends; the glyphsheet command routes it through
charmbracelet/log.
*/
package overlay
