package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigStyles(t *testing.T) {
	c := DefaultConfig()

	e := c.ErrorConfig()
	assert.Equal(t, c.BgErr, e.Bg)
	assert.Equal(t, c.FgErr, e.Fg)
	assert.Equal(t, c.BgVCR, e.BgVCR, "only panel colors change")

	f := c.FeedbackConfig()
	assert.Equal(t, c.BgFeedback, f.Bg)
	assert.Equal(t, c.FgFeedback, f.Fg)

	assert.Equal(t, DefaultConfig(), c, "receiver is a copy")
}

func TestDefaultConfigSizes(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, 12, c.InfoTextSize)
	assert.Equal(t, float32(10), c.PanelMargin)
	assert.Positive(t, c.DropTextSize)
}
