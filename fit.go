package overlay

import "fmt"

// Font-size search bracket.
const (
	fitStartSize = 64
	fitMinSize   = 4
	fitMaxSize   = 2048

	// fitSafetyMargin is subtracted from the last accepted size.
	fitSafetyMargin = 2

	defaultMaxFitIterations = 64
)

// boxMeasure returns the width and height of the content at size.
type boxMeasure func(size int) (w, h float32, err error)

// bisect runs the font-size search. Each step measures at the current size;
// overflow moves the upper bound down to it and retries halfway to the lower
// bound, a fit moves the lower bound up and retries halfway to the upper
// bound. The search ends on a fitting measurement with a bracket no wider
// than one.
func bisect(what string, measure boxMeasure, maxW, maxH float32, limit int) (int, error) {
	size, lower, upper := fitStartSize, fitMinSize, fitMaxSize
	for i := 0; i < limit; i++ {
		w, h, err := measure(size)
		if err != nil {
			return 0, err
		}
		overflow := w > maxW || h > maxH
		if overflow {
			upper = size
			size = (size + lower) / 2
		} else {
			lower = size
			size = (size + upper) / 2
		}
		if !overflow && upper-lower <= 1 {
			Logger().Debug("fit converged", "what", what, "iterations", i+1, "size", size-fitSafetyMargin)
			return size - fitSafetyMargin, nil
		}
	}
	Logger().Warn("fit did not converge", "what", what, "iterations", limit, "size", size)
	return 0, fmt.Errorf("overlay: fit %s after %d iterations at size %d: %w", what, limit, size, ErrNoConvergence)
}

// FitSingle returns the largest font size, less a safety margin of two, at
// which text fits within maxW by maxH. measure must be monotonic
// non-decreasing in size for both dimensions. Empty text fails with
// ErrEmptyInput before measure is called.
//
// The search is capped by OptMaxFitIterations; when the text does not fit
// even at the smallest size, or measure is not monotonic, it stops with an
// error wrapping ErrNoConvergence.
func FitSingle(measure MeasureFunc, text string, maxW, maxH float32, opts ...Option) (int, error) {
	if text == "" {
		return 0, fmt.Errorf("overlay: fit text: %w", ErrEmptyInput)
	}
	limit := ApplyAndGet(opts, OptMaxFitIterations)
	return bisect("text", func(size int) (float32, float32, error) {
		b, err := measure(text, size)
		if err != nil {
			return 0, 0, measurementError("bounds", err)
		}
		return b.Width(), b.Height(), nil
	}, maxW, maxH, limit)
}

// FitPairs is FitSingle for a name/value panel: each trial size measures the
// whole panel with NameValuePairBounds.
func FitPairs(m TextMeasurer, pairs []NameValuePair, margin, maxW, maxH float32, opts ...Option) (int, error) {
	if len(pairs) == 0 {
		return 0, fmt.Errorf("overlay: fit pairs: %w", ErrEmptyInput)
	}
	limit := ApplyAndGet(opts, OptMaxFitIterations)
	return bisect("pairs", func(size int) (float32, float32, error) {
		if err := m.SetSize(size); err != nil {
			return 0, 0, measurementError("size", err)
		}
		b, err := NameValuePairBounds(m, pairs, margin)
		if err != nil {
			return 0, 0, err
		}
		return b.Size.X, b.Size.Y, nil
	}, maxW, maxH, limit)
}
