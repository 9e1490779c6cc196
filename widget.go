package overlay

// MarginSide names the screen margin a widget docks into. The numbering
// follows the host's margin array: left, right, top, bottom.
type MarginSide int

const (
	MarginNone   MarginSide = -1
	MarginLeft   MarginSide = 0
	MarginRight  MarginSide = 1
	MarginTop    MarginSide = 2
	MarginBottom MarginSide = 3
)

// String returns the side name.
func (m MarginSide) String() string {
	switch m {
	case MarginLeft:
		return "left"
	case MarginRight:
		return "right"
	case MarginTop:
		return "top"
	case MarginBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Margins holds the host's reserved screen margins, indexed by MarginSide.
// A negative entry means "leave unchanged" when handed back to the host.
type Margins [4]float32

// Widget is the geometry of an on-screen panel: its bounds and the screen
// margin it occupies, if any. Event handling stays with the host.
type Widget struct {
	Bounds  Box
	Margin  MarginSide
	Buttons []Button
}

// NewWidget returns a widget that is not docked into any margin.
func NewWidget() *Widget {
	return &Widget{Margin: MarginNone}
}

// UpdateBounds sets the widget rectangle from its min and max corners.
func (w *Widget) UpdateBounds(minPt, maxPt Vec2) {
	w.Bounds = Box{X0: minPt.X, Y0: minPt.Y, X1: maxPt.X, Y1: maxPt.Y}
}

// Contains reports whether p lies inside the widget, edges included.
func (w *Widget) Contains(p Vec2) bool {
	return w.Bounds.Contains(p)
}

// RequiredMargin returns how much of its margin the widget needs to stay
// clear of the image in a view of the given size.
func (w *Widget) RequiredMargin(view Vec2) float32 {
	switch w.Margin {
	case MarginLeft:
		return w.Bounds.X1
	case MarginRight:
		return view.X - w.Bounds.X0
	case MarginTop:
		return view.Y - w.Bounds.Y0
	case MarginBottom:
		return w.Bounds.Y1
	default:
		return 0
	}
}

// GrowMargins returns current with the widget's side widened to
// RequiredMargin if it is narrower. The bool reports whether anything
// changed and the host should be told.
func (w *Widget) GrowMargins(current Margins, view Vec2) (Margins, bool) {
	if w.Margin == MarginNone {
		return current, false
	}
	need := w.RequiredMargin(view)
	if current[w.Margin] >= need {
		return current, false
	}
	current[w.Margin] = need
	return current, true
}

// ReleaseMargins returns the margins to hand back to the host when the
// widget is hidden: its own side zeroed, every other side left unchanged.
func (w *Widget) ReleaseMargins() (Margins, bool) {
	if w.Margin == MarginNone {
		return Margins{}, false
	}
	m := Margins{-1, -1, -1, -1}
	m[w.Margin] = 0
	return m, true
}

// ButtonAt returns the index of the first button containing p, or -1.
func (w *Widget) ButtonAt(p Vec2) int {
	for i, b := range w.Buttons {
		if b.Inside(p) {
			return i
		}
	}
	return -1
}

// Button is a clickable rectangle inside a widget.
type Button struct {
	Bounds Box
}

// Inside reports whether p lies inside the button, edges included.
func (b Button) Inside(p Vec2) bool {
	return b.Bounds.Contains(p)
}
