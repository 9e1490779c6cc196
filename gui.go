package overlay

// Renderer draws a finished DrawList.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// Overlay runs per-frame overlay drawing against a Renderer: each frame gets
// a pooled DrawList, a BitmapText writing into it and a Painter over both.
type Overlay struct {
	renderer Renderer
	config   Config
	text     *BitmapText
	dl       *DrawList
	view     Vec2
}

// New creates an overlay drawing through renderer. WithConfig overrides
// DefaultConfig.
func New(renderer Renderer, opts ...Option) *Overlay {
	return &Overlay{
		renderer: renderer,
		config:   ApplyAndGet(opts, OptConfig),
		text:     NewBitmapText(nil, renderer.FontTextureID()),
	}
}

// Begin starts a frame for a view of the given size and returns the painter
// to draw it with. Call End when the frame is complete.
func (o *Overlay) Begin(view Vec2) *Painter {
	if o.dl != nil {
		ReleaseDrawList(o.dl)
	}
	o.dl = AcquireDrawList()
	o.view = view
	o.text.SetTarget(o.dl)

	return &Painter{Surface: o.dl, Text: o.text, Config: o.config}
}

// End renders the frame and returns its draw list to the pool.
func (o *Overlay) End() error {
	if o.dl == nil {
		return nil
	}
	err := o.renderer.Render(o.dl)

	o.text.SetTarget(nil)
	ReleaseDrawList(o.dl)
	o.dl = nil
	if err != nil {
		Logger().Error("overlay render failed", "err", err)
	}
	return err
}

// DrawList returns the current frame's draw list.
// Only valid between Begin() and End() calls.
func (o *Overlay) DrawList() *DrawList {
	return o.dl
}

// View returns the size passed to the last Begin.
func (o *Overlay) View() Vec2 {
	return o.view
}

// Config returns the current theme.
func (o *Overlay) Config() Config {
	return o.config
}

// SetConfig sets the theme used from the next frame on.
func (o *Overlay) SetConfig(c Config) {
	o.config = c
}

// Resize notifies the overlay of a display size change.
func (o *Overlay) Resize(width, height int) {
	o.renderer.Resize(width, height)
}
