package overlay_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/overlay"
)

// mockRenderer records frames instead of drawing them.
type mockRenderer struct {
	renderCalls int
	vertices    []int
	resized     [2]int
	err         error
}

func (m *mockRenderer) Render(dl *overlay.DrawList) error {
	m.renderCalls++
	m.vertices = append(m.vertices, len(dl.VtxBuffer))
	return m.err
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {
	m.resized = [2]int{width, height}
}

func TestOverlayFrame(t *testing.T) {
	renderer := &mockRenderer{}
	ui := overlay.New(renderer)

	p := ui.Begin(overlay.Vec2{X: 1920, Y: 1080})
	require.NotNil(t, p)
	assert.NotNil(t, ui.DrawList())
	assert.Equal(t, overlay.Vec2{X: 1920, Y: 1080}, ui.View())

	_, err := p.TextWithCartouche(100, 100, "Hello World", 13, overlay.White, overlay.Blue, overlay.TriangleGlyph(), overlay.Color{})
	require.NoError(t, err)

	require.NoError(t, ui.End())
	assert.Equal(t, 1, renderer.renderCalls)
	assert.Positive(t, renderer.vertices[0])
	assert.Nil(t, ui.DrawList(), "draw list is released after End")
}

func TestOverlayEndWithoutBegin(t *testing.T) {
	renderer := &mockRenderer{}
	ui := overlay.New(renderer)

	assert.NoError(t, ui.End())
	assert.Zero(t, renderer.renderCalls)
}

func TestOverlayFramesStartEmpty(t *testing.T) {
	renderer := &mockRenderer{}
	ui := overlay.New(renderer)

	p := ui.Begin(overlay.Vec2{X: 800, Y: 600})
	require.NoError(t, p.CloseButton(20, 20, 10, overlay.Black, overlay.White))
	require.NoError(t, ui.End())

	ui.Begin(overlay.Vec2{X: 800, Y: 600})
	require.NoError(t, ui.End())

	require.Len(t, renderer.vertices, 2)
	assert.Positive(t, renderer.vertices[0])
	assert.Zero(t, renderer.vertices[1])
}

func TestOverlayRenderErrorIsLogged(t *testing.T) {
	var buf bytes.Buffer
	overlay.SetLogger(slog.New(log.New(&buf)))
	t.Cleanup(func() { overlay.SetLogger(nil) })

	renderErr := errors.New("context lost")
	renderer := &mockRenderer{err: renderErr}
	ui := overlay.New(renderer)

	ui.Begin(overlay.Vec2{X: 10, Y: 10})
	assert.ErrorIs(t, ui.End(), renderErr)
	assert.Contains(t, buf.String(), "overlay render failed")
	assert.Nil(t, ui.DrawList())
}

func TestOverlayConfig(t *testing.T) {
	renderer := &mockRenderer{}
	ui := overlay.New(renderer)
	assert.Equal(t, overlay.DefaultConfig(), ui.Config())

	cfg := overlay.DefaultConfig()
	cfg.DropTextSize = 40
	ui.SetConfig(cfg)

	p := ui.Begin(overlay.Vec2{X: 100, Y: 100})
	assert.Equal(t, 40, p.Config.DropTextSize)
	require.NoError(t, ui.End())

	ui = overlay.New(renderer, overlay.WithConfig(cfg))
	assert.Equal(t, cfg, ui.Config())
}

func TestOverlayResize(t *testing.T) {
	renderer := &mockRenderer{}
	overlay.New(renderer).Resize(640, 480)
	assert.Equal(t, [2]int{640, 480}, renderer.resized)
}
