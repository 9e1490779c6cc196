package overlay

import "strings"

// NameValuePair is one row of a two-column panel.
type NameValuePair struct {
	Name  string
	Value string
}

// NameValueBounds is the measured layout of a name/value panel.
type NameValueBounds struct {
	// Size is the whole panel: both columns wide, every row plus a margin
	// above and below tall.
	Size Vec2

	// NameBounds and ValueBounds hold each row's measured text, in row order.
	NameBounds  []TextBounds
	ValueBounds []TextBounds

	// NameWidth is the widest name; the value column starts after it.
	NameWidth float32

	// TextHeight is the height of one row, ascender minus descender.
	TextHeight float32

	// Descender is the font descender at the measured size.
	Descender float32
}

// ValueWidth returns the width of the value column.
func (b NameValueBounds) ValueWidth() float32 {
	return b.Size.X - b.NameWidth
}

// NameValuePairBounds measures pairs at m's current size. Every row is
// TextHeight tall regardless of its content, so the panel height is
// len(pairs)*TextHeight + 2*margin.
func NameValuePairBounds(m TextMeasurer, pairs []NameValuePair, margin float32) (NameValueBounds, error) {
	_, desc, th, err := lineMetrics(m)
	if err != nil {
		return NameValueBounds{}, err
	}

	out := NameValueBounds{
		NameBounds:  make([]TextBounds, 0, len(pairs)),
		ValueBounds: make([]TextBounds, 0, len(pairs)),
		TextHeight:  th,
		Descender:   desc,
	}
	var vw float32
	for _, p := range pairs {
		nb, err := m.Bounds(p.Name)
		if err != nil {
			return NameValueBounds{}, measurementError("bounds", err)
		}
		vb, err := m.Bounds(p.Value)
		if err != nil {
			return NameValueBounds{}, measurementError("bounds", err)
		}
		out.NameBounds = append(out.NameBounds, nb)
		out.ValueBounds = append(out.ValueBounds, vb)
		out.NameWidth = maxf(out.NameWidth, nb.Width())
		vw = maxf(vw, vb.Width())
	}

	out.Size = Vec2{
		X: out.NameWidth + vw,
		Y: float32(len(pairs))*th + 2*margin,
	}
	return out, nil
}

// ExpandNameValuePairs splits multi-line values into one pair per line. Line
// endings are normalized ("\r\n" to "\n") and blank lines are kept as a
// single space. The name goes with the first line only, and is dropped when
// that line is empty; continuation lines get an empty name. Empty lines are
// dropped and line order is preserved.
//
// The delimiter is OptLineSplit. With the default LineSplitLiteral values
// split on "\n\r", which normalization leaves almost nowhere, so most values
// pass through unchanged. Use WithLineSplit(LineSplitNewline) to split on
// "\n".
func ExpandNameValuePairs(pairs []NameValuePair, opts ...Option) []NameValuePair {
	delim := ApplyAndGet(opts, OptLineSplit).Delimiter()

	out := make([]NameValuePair, 0, len(pairs))
	for _, p := range pairs {
		v := strings.ReplaceAll(p.Value, "\r\n", "\n")
		v = strings.ReplaceAll(v, "\n\n", "\n \n")
		lines := strings.Split(v, delim)
		if len(lines) <= 1 {
			out = append(out, p)
			continue
		}
		for i, line := range lines {
			if line == "" {
				continue
			}
			var name string
			if i == 0 {
				name = p.Name
			}
			out = append(out, NameValuePair{Name: name, Value: line})
		}
	}
	return out
}
