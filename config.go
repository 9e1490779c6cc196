package overlay

// Config holds the colors and sizes overlay panels are drawn with. It is a
// plain value: pass it to whatever draws, there is no global instance.
//
// Field names double as TOML keys; colors are "#rrggbb" or "#rrggbbaa".
type Config struct {
	// Panel colors
	Bg         Color `toml:"bg"`
	Fg         Color `toml:"fg"`
	BgErr      Color `toml:"bg_err"`
	FgErr      Color `toml:"fg_err"`
	BgFeedback Color `toml:"bg_feedback"`
	FgFeedback Color `toml:"fg_feedback"`

	// Transport (VCR) controls
	BgVCR       Color `toml:"bg_vcr"`
	FgVCR       Color `toml:"fg_vcr"`
	HlVCRButton Color `toml:"hl_vcr_button"`

	// Sizing
	InfoTextSize int     `toml:"info_text_size"`
	PanelMargin  float32 `toml:"panel_margin"`
	LineWidth    float32 `toml:"line_width"`
	DropTextSize int     `toml:"drop_text_size"`
}

// DefaultConfig returns the stock dark overlay theme.
func DefaultConfig() Config {
	return Config{
		Bg:         RGBAf(0.2, 0.2, 0.2, 0.8),
		Fg:         RGBAf(0.75, 0.75, 0.75, 1),
		BgErr:      RGBAf(0.5, 0.1, 0.1, 0.8),
		FgErr:      RGBAf(1, 0.8, 0.8, 1),
		BgFeedback: RGBAf(0.1, 0.1, 0.1, 0.85),
		FgFeedback: RGBAf(1, 1, 1, 1),

		BgVCR:       RGBAf(0.2, 0.2, 0.2, 1),
		FgVCR:       RGBAf(0.7, 0.7, 0.7, 1),
		HlVCRButton: RGBAf(0.9, 0.6, 0.2, 1),

		InfoTextSize: 12,
		PanelMargin:  10,
		LineWidth:    3,
		DropTextSize: 20,
	}
}

// ErrorConfig returns c with the panel colors swapped for the error colors.
func (c Config) ErrorConfig() Config {
	c.Bg, c.Fg = c.BgErr, c.FgErr
	return c
}

// FeedbackConfig returns c with the panel colors swapped for the feedback
// colors.
func (c Config) FeedbackConfig() Config {
	c.Bg, c.Fg = c.BgFeedback, c.FgFeedback
	return c
}
