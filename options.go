package overlay

// Option configures a glyph builder, a fitter or a layout helper.
type Option func(*options)

// options holds all configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for options.
//
// Example:
//
//	var OptCustomThing = overlay.NewOptKey("customThing", defaultValue)
//
//	g := overlay.TranslateIconGlyph(overlay.WithOpt(OptCustomThing, value))
//
//	value := overlay.ApplyAndGet(opts, OptCustomThing)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was explicitly set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

// AngleSpacing controls how the translate icons step their triangles.
type AngleSpacing int

const (
	// AngleSpacingLiteral accumulates angle += index*increment, which gives
	// non-uniform spacing past two steps. This is the historical look.
	AngleSpacingLiteral AngleSpacing = iota
	// AngleSpacingEven places triangles at start + index*increment.
	AngleSpacingEven
)

// String returns the spacing name.
func (a AngleSpacing) String() string {
	if a == AngleSpacingEven {
		return "even"
	}
	return "literal"
}

// LineSplit selects the delimiter ExpandNameValuePairs splits values on.
type LineSplit int

const (
	// LineSplitLiteral splits on "\n\r". After line endings are normalized
	// this almost never matches, so values pass through unsplit.
	LineSplitLiteral LineSplit = iota
	// LineSplitNewline splits on "\n".
	LineSplitNewline
)

// String returns the split mode name.
func (l LineSplit) String() string {
	if l == LineSplitNewline {
		return "newline"
	}
	return "literal"
}

// Delimiter returns the separator string.
func (l LineSplit) Delimiter() string {
	if l == LineSplitNewline {
		return "\n"
	}
	return "\n\r"
}

var (
	// OptAngleSpacing selects literal or even triangle spacing for the
	// translate icons.
	OptAngleSpacing = NewOptKey("angleSpacing", AngleSpacingLiteral)

	// OptLineSplit selects the delimiter for ExpandNameValuePairs.
	OptLineSplit = NewOptKey("lineSplit", LineSplitLiteral)

	// OptMaxFitIterations caps the font-size search loop.
	OptMaxFitIterations = NewOptKey("maxFitIterations", defaultMaxFitIterations)
)

// WithAngleSpacing sets OptAngleSpacing.
func WithAngleSpacing(a AngleSpacing) Option { return WithOpt(OptAngleSpacing, a) }

// WithLineSplit sets OptLineSplit.
func WithLineSplit(l LineSplit) Option { return WithOpt(OptLineSplit, l) }

// WithMaxFitIterations sets OptMaxFitIterations.
func WithMaxFitIterations(n int) Option { return WithOpt(OptMaxFitIterations, n) }
