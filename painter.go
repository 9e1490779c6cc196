package overlay

// OptConfig selects the theme a Painter draws with.
var OptConfig = NewOptKey("config", DefaultConfig())

// WithConfig sets OptConfig.
func WithConfig(c Config) Option { return WithOpt(OptConfig, c) }

// defaultGlyphColor is used by TextWithCartouche when no glyph color is given.
var defaultGlyphColor = RGBAf(0.2, 0.2, 0.2, 1)

// Painter draws the composite overlay elements: rounded panels, cartouche
// labels, name/value panels, drop regions and close buttons. Shapes go to
// Surface and text goes to Text; both are owned by the host.
type Painter struct {
	Surface DrawSurface
	Text    TextMeasurer
	Config  Config
}

// NewPainter creates a painter. WithConfig overrides DefaultConfig.
func NewPainter(s DrawSurface, t TextMeasurer, opts ...Option) *Painter {
	return &Painter{
		Surface: s,
		Text:    t,
		Config:  ApplyAndGet(opts, OptConfig),
	}
}

// drawShapes draws each shape in order, stopping at the first error.
func drawShapes(s DrawSurface, outline bool, shapes ...Shape) error {
	for _, sh := range shapes {
		if err := sh.Draw(s, outline); err != nil {
			return err
		}
	}
	return nil
}

// smooth enables antialiased, blended drawing and returns the matching
// restore.
func smooth(s DrawSurface, caps ...Capability) func() {
	for _, c := range caps {
		s.Enable(c)
	}
	return func() {
		s.SetLineWidth(1)
		for _, c := range caps {
			s.Disable(c)
		}
	}
}

// RoundedBox fills the rectangle (x0, y0)-(x1, y1) in bg, widened on the
// left and right by margin with rounded corners, and strokes its outline in
// fg.
func (p *Painter) RoundedBox(x0, y0, x1, y1, margin float32, bg, fg Color) error {
	s, m := p.Surface, margin
	body := Polygon{
		Points: []Vec2{
			{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1},
			{x0 - m, y0 + m}, {x0, y0 + m}, {x0, y1 - m}, {x0 - m, y1 - m},
			{x1, y0 + m}, {x1 + m, y0 + m}, {x1 + m, y1 - m}, {x1, y1 - m},
		},
		Fill: ShapeQuads,
	}
	corners := []Shape{
		ArcFan{Center: Vec2{x0, y0 + m}, Radius: m, Start: 0.5, End: 0.75, Step: fanStep},
		ArcFan{Center: Vec2{x1, y0 + m}, Radius: m, Start: 0.25, End: 0.5, Step: fanStep},
		ArcFan{Center: Vec2{x1, y1 - m}, Radius: m, Start: 0, End: 0.25, Step: fanStep},
		ArcFan{Center: Vec2{x0, y1 - m}, Radius: m, Start: 0.75, End: 1, Step: fanStep},
	}

	s.SetColor(bg)
	if err := drawShapes(s, false, append([]Shape{body}, corners...)...); err != nil {
		return err
	}

	restore := smooth(s, CapLineSmooth, CapPolygonSmooth, CapBlend)
	defer restore()

	s.SetColor(fg)
	s.SetLineWidth(p.Config.LineWidth)
	if err := drawShapes(s, true, corners...); err != nil {
		return err
	}
	return Segments{Points: []Vec2{
		{x0, y0}, {x1, y0},
		{x1, y1}, {x0, y1},
		{x0 - m, y0 + m}, {x0 - m, y1 - m},
		{x1 + m, y0 + m}, {x1 + m, y1 - m},
	}}.Draw(s, false)
}

// DrawCloseButton draws a filled disc in bg with an fg rim and an X across
// it.
func DrawCloseButton(s DrawSurface, x, y, radius float32, bg, fg Color) error {
	r2 := radius / 2
	disc := Circle(Vec2{x, y}, radius, fanStep)

	s.Enable(CapBlend)
	s.Enable(CapLineSmooth)
	s.SetLineWidth(2)
	s.SetColor(bg)
	if err := disc.Draw(s, false); err != nil {
		return err
	}
	s.SetColor(fg)
	if err := disc.Draw(s, true); err != nil {
		return err
	}
	return Segments{Points: []Vec2{
		{x - r2, y - r2}, {x + r2, y + r2},
		{x - r2, y + r2}, {x + r2, y - r2},
	}}.Draw(s, false)
}

// CloseButton draws a close button centered on (x, y).
func (p *Painter) CloseButton(x, y, radius float32, bg, fg Color) error {
	return DrawCloseButton(p.Surface, x, y, radius, bg, fg)
}

// TextWithCartouche writes text at (x, y) in textColor on a pill shaped
// background in bgColor. When g is non-nil it is drawn in glyphColor at the
// left end of the pill and the text is shifted right to make room; a zero
// glyphColor selects dark gray. The returned box covers the whole pill.
func (p *Painter) TextWithCartouche(x, y float32, text string, size int, textColor, bgColor Color, g Glyph, glyphColor Color) (Box, error) {
	s, t := p.Surface, p.Text
	if glyphColor == (Color{}) {
		glyphColor = defaultGlyphColor
	}
	if err := t.SetSize(size); err != nil {
		return Box{}, measurementError("size", err)
	}
	if g != nil {
		text = "   " + text
	}

	b, err := t.Bounds(text)
	if err != nil {
		return Box{}, measurementError("bounds", err)
	}
	asc, desc, th, err := lineMetrics(t)
	if err != nil {
		return Box{}, err
	}

	mx := th * 0.05
	x0, x1 := x-mx, x+b.Width()+mx
	y0, y1 := y+desc-mx, y+asc+mx
	rad := (y1 - y0) * 0.5
	ymid := (y1 + y0) * 0.5

	left := ArcFan{Center: Vec2{x0, ymid}, Radius: rad, Start: 0.5, End: 1, Step: fanStep}
	right := ArcFan{Center: Vec2{x1, ymid}, Radius: rad, Start: 0, End: 0.5, Step: fanStep}

	s.SetColor(bgColor)
	body := Polygon{Points: []Vec2{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}, Fill: ShapePolygon}
	if err := drawShapes(s, false, body, left, right); err != nil {
		return Box{}, err
	}

	restore := smooth(s, CapLineSmooth, CapBlend)
	s.SetColor(bgColor.MulScalar(0.8))
	s.SetLineWidth(1)
	err = drawShapes(s, true, left, right, Segments{Points: []Vec2{
		{x0, y0}, {x1, y0},
		{x1, y1}, {x0, y1},
	}})
	if err == nil && g != nil {
		s.SetColor(glyphColor)
		err = Draw(s, g, x, ymid, 0, rad, false)
		if err == nil {
			s.SetColor(glyphColor.MulScalar(0.8))
			err = Draw(s, g, x, ymid, 0, rad, true)
		}
	}
	restore()
	if err != nil {
		return Box{}, err
	}

	if err := t.SetColor(textColor); err != nil {
		return Box{}, measurementError("color", err)
	}
	if err := t.WriteAt(x, y, text); err != nil {
		return Box{}, measurementError("write", err)
	}
	return Box{X0: x0 - rad, Y0: y0, X1: x1 + rad, Y1: y1}, nil
}

// PanelLimits clamps the size of a name/value panel. Zero fields are
// ignored; maximums win over minimums.
type PanelLimits struct {
	MinWidth, MinHeight float32
	MaxWidth, MaxHeight float32

	// NoBox skips the rounded background.
	NoBox bool
}

// NameValuePairs draws a two-column panel whose bottom-left text corner is
// (x, y). Rows read top to bottom: the first pair sits one row below the top
// margin and, unclamped, the last pair's baseline is y. Names are right
// aligned against the column divider. Text is drawn at the measurer's current size. The returned bounds
// carry the clamped panel size.
func (p *Painter) NameValuePairs(pairs []NameValuePair, fg, bg Color, x, y, margin float32, limits PanelLimits) (NameValueBounds, error) {
	s, t, m := p.Surface, p.Text, margin

	b, err := NameValuePairBounds(t, pairs, m)
	if err != nil {
		return NameValueBounds{}, err
	}

	x0 := x - b.Descender
	y0 := y - m
	x1 := b.Size.X + x0
	y1 := b.Size.Y + y0

	xs, ys := x1-x0, y1-y0
	if limits.MinWidth > 0 && xs < limits.MinWidth {
		x1 = x0 + limits.MinWidth
	}
	if limits.MinHeight > 0 && ys < limits.MinHeight {
		y1 = y0 + limits.MinHeight
	}
	if limits.MaxWidth > 0 && xs > limits.MaxWidth {
		x1 = x0 + limits.MaxWidth
	}
	if limits.MaxHeight > 0 && ys > limits.MaxHeight {
		y1 = y0 + limits.MaxHeight
	}
	b.Size = Vec2{X: x1 - x0, Y: y1 - y0}

	s.Enable(CapBlend)
	defer s.Disable(CapBlend)

	if !limits.NoBox {
		if err := p.RoundedBox(x0, y0, x1, y1, m, bg, fg.MulColor(RGBAf(0.5, 0.5, 0.5, 0.5))); err != nil {
			return NameValueBounds{}, err
		}
	}

	divider := x + b.NameWidth + m/4
	s.SetColor(fg.MulColor(RGBAf(1, 1, 1, 0.25)))
	if err := (Segments{Points: []Vec2{{divider, y0 + m/2}, {divider, y1 - m/2}}}).Draw(s, false); err != nil {
		return NameValueBounds{}, err
	}

	nameColor := fg.Sub(RGBAf(0, 0, 0, 0.25))
	row := y1 - m - b.TextHeight
	for i, pair := range pairs {
		if err := t.SetColor(nameColor); err != nil {
			return NameValueBounds{}, measurementError("color", err)
		}
		if err := t.WriteAt(x+b.NameWidth-b.NameBounds[i].Width(), row, pair.Name); err != nil {
			return NameValueBounds{}, measurementError("write", err)
		}
		if err := t.SetColor(fg); err != nil {
			return NameValueBounds{}, measurementError("color", err)
		}
		if err := t.WriteAt(x+b.NameWidth+m/2, row, pair.Value); err != nil {
			return NameValueBounds{}, measurementError("write", err)
		}
		row -= b.TextHeight
	}
	return b, nil
}

// Drop region colors.
var (
	dropActiveFg   = RGBAf(1, 1, 1, 1)
	dropInactiveFg = RGBAf(0.5, 0.5, 0.5, 1)
	dropBg         = RGBAf(0, 0, 0, 0.85)
)

// dropCornerRadius is the corner margin of each drop region box.
const dropCornerRadius = 10

// DropRegions stacks one labeled box per descriptor inside a w by h view,
// inset by the host's screen margins and by margin. The box under pointer
// is highlighted and its index returned; -1 means none.
func (p *Painter) DropRegions(w, h float32, pointer Vec2, margin float32, margins Margins, descriptors []string) (int, error) {
	if len(descriptors) == 0 {
		return -1, nil
	}
	t := p.Text
	left, right := margins[MarginLeft], margins[MarginRight]
	top, bottom := margins[MarginTop], margins[MarginBottom]
	bsize := (h - top - bottom) / float32(len(descriptors))
	inregion := -1

	for i, desc := range descriptors {
		if err := t.SetSize(p.Config.DropTextSize); err != nil {
			return -1, measurementError("size", err)
		}
		y0 := bsize*float32(i) + margin + bottom
		x0 := left + margin
		y1 := bsize*float32(i+1) - margin + bottom
		x1 := w - margin - right

		b, err := t.Bounds(desc)
		if err != nil {
			return -1, measurementError("bounds", err)
		}
		active := pointer.Y >= y0 && pointer.Y <= y1
		fg := dropInactiveFg
		if active {
			fg = dropActiveFg
			inregion = i
		}

		if err := p.RoundedBox(x0, y0, x1, y1, dropCornerRadius, dropBg, fg); err != nil {
			return -1, err
		}
		if err := t.SetColor(fg); err != nil {
			return -1, measurementError("color", err)
		}
		if err := t.WriteAt((x1-x0-b.Width())*0.5+x0, Lerp(y0, y1, 0.5), desc); err != nil {
			return -1, measurementError("write", err)
		}
	}
	return inregion, nil
}

// Glyph draws g placed at (x, y), rotated by angle degrees and scaled to
// size.
func (p *Painter) Glyph(g Glyph, x, y, angle, size float32, outline bool) error {
	return Draw(p.Surface, g, x, y, angle, size, outline)
}
