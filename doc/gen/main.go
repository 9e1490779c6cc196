// Command gen draws the glyph library and each composite element with sample
// data through the OpenGL backend, captures framebuffer pixels, and saves
// JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/overlay"
	"github.com/go-theft-auto/overlay/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single screenshot to capture.
type screenshot struct {
	name   string // filename without extension
	width  int
	height int
	draw   func(p *overlay.Painter, view overlay.Vec2) error
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("overlay renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	renderer.Resize(s.width, s.height)
	ov := overlay.New(renderer)

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	view := overlay.Vec2{X: float32(s.width), Y: float32(s.height)}
	if err := s.draw(ov.Begin(view), view); err != nil {
		_ = ov.End()
		return err
	}
	if err := ov.End(); err != nil {
		return err
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// GL rows run bottom to top.
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func buildScreenshots() []screenshot {
	pairs := overlay.ExpandNameValuePairs([]overlay.NameValuePair{
		{Name: "Source", Value: "shot_010_comp_v3.exr"},
		{Name: "Frame", Value: "1042 / 1200"},
		{Name: "Notes", Value: "grain pass\nretime 24 -> 25"},
	}, overlay.WithLineSplit(overlay.LineSplitNewline))

	return []screenshot{
		{
			name: "glyphs", width: 640, height: 320,
			draw: func(p *overlay.Painter, view overlay.Vec2) error {
				lib := overlay.Library(overlay.WithAngleSpacing(overlay.AngleSpacingEven))
				const cols, cell = 8, 80
				for i, ng := range lib {
					x := float32(i%cols)*cell + cell/2
					y := view.Y - float32(i/cols)*cell - cell/2
					p.Surface.SetColor(p.Config.Fg)
					if err := p.Glyph(ng.Glyph, x, y, 0, cell*0.6, false); err != nil {
						return fmt.Errorf("%s: %w", ng.Name, err)
					}
				}
				return nil
			},
		},
		{
			name: "cartouche", width: 360, height: 100,
			draw: func(p *overlay.Painter, _ overlay.Vec2) error {
				cfg := p.Config
				if _, err := p.TextWithCartouche(40, 56, "Playing", 20, cfg.FgVCR, cfg.BgVCR, overlay.AdvanceGlyph(), cfg.HlVCRButton); err != nil {
					return err
				}
				_, err := p.TextWithCartouche(40, 20, "Paused", cfg.InfoTextSize, cfg.FgVCR, cfg.BgVCR, nil, overlay.Color{})
				return err
			},
		},
		{
			name: "panel", width: 480, height: 200,
			draw: func(p *overlay.Painter, view overlay.Vec2) error {
				m := p.Config.PanelMargin
				size, err := overlay.FitPairs(p.Text, pairs, m, view.X-4*m, view.Y-4*m)
				if err != nil {
					return err
				}
				if err := p.Text.SetSize(size); err != nil {
					return err
				}
				_, err = p.NameValuePairs(pairs, p.Config.Fg, p.Config.Bg, 2*m, 2*m, m, overlay.PanelLimits{})
				return err
			},
		},
		{
			name: "drop-regions", width: 480, height: 320,
			draw: func(p *overlay.Painter, view overlay.Vec2) error {
				pointer := overlay.Vec2{X: view.X / 2, Y: view.Y / 2}
				_, err := p.DropRegions(view.X, view.Y, pointer, p.Config.PanelMargin, overlay.Margins{}, []string{"Replace", "Append", "Compare"})
				return err
			},
		},
		{
			name: "close-button", width: 80, height: 80,
			draw: func(p *overlay.Painter, _ overlay.Vec2) error {
				return p.CloseButton(40, 40, 24, p.Config.Bg, p.Config.Fg)
			},
		},
	}
}
