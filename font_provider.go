package overlay

// TextMeasurer is the host's text facility: it measures and writes strings at
// a current pixel size. The overlay package does not depend on any concrete
// font implementation; applications inject one (the bitmap atlas in this
// package, the raster or vector backends, or a host bridge).
//
// Any error a TextMeasurer returns is surfaced to callers wrapped in a
// *MeasurementUnavailableError.
type TextMeasurer interface {
	// SetSize selects the pixel size used by subsequent calls.
	SetSize(px int) error

	// Bounds returns the extent of text at the current size.
	Bounds(text string) (TextBounds, error)

	// AscenderHeight returns the font ascender above the baseline.
	AscenderHeight() (float32, error)

	// DescenderDepth returns the font descender, negative below the baseline.
	DescenderDepth() (float32, error)

	// WriteAt draws text with its baseline origin at (x, y).
	WriteAt(x, y float32, text string) error

	// SetColor sets the color used by WriteAt.
	SetColor(c Color) error
}

// MeasureFunc measures text at a font size. Fitters require it to be
// monotonic non-decreasing in size for both dimensions.
type MeasureFunc func(text string, size int) (TextBounds, error)

// MeasureWith adapts a TextMeasurer to a MeasureFunc.
func MeasureWith(m TextMeasurer) MeasureFunc {
	return func(text string, size int) (TextBounds, error) {
		if err := m.SetSize(size); err != nil {
			return TextBounds{}, measurementError("size", err)
		}
		b, err := m.Bounds(text)
		if err != nil {
			return TextBounds{}, measurementError("bounds", err)
		}
		return b, nil
	}
}

// lineMetrics returns the ascender, descender and text height at the
// measurer's current size.
func lineMetrics(m TextMeasurer) (asc, desc, th float32, err error) {
	asc, err = m.AscenderHeight()
	if err != nil {
		return 0, 0, 0, measurementError("ascender", err)
	}
	desc, err = m.DescenderDepth()
	if err != nil {
		return 0, 0, 0, measurementError("descender", err)
	}
	return asc, desc, asc - desc, nil
}
