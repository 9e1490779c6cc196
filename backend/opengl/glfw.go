package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/overlay"
)

// Window is a GLFW window with a GL 4.1 core context and a Renderer bound
// to it. GLFW requires all calls to come from the main thread.
type Window struct {
	*glfw.Window
	Renderer *Renderer

	pressed bool
	clicked bool
}

// OpenWindow initializes GLFW and GL, opens a window and creates its
// renderer. Close releases everything.
func OpenWindow(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	fw, fh := win.GetFramebufferSize()
	r, err := NewRenderer(fw, fh)
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("overlay renderer: %w", err)
	}

	w := &Window{Window: win, Renderer: r}
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		r.Resize(width, height)
	})
	win.SetMouseButtonCallback(w.mouseButtonCallback)
	return w, nil
}

// Close releases the renderer, the window and GLFW.
func (w *Window) Close() {
	w.Renderer.Delete()
	w.Destroy()
	glfw.Terminate()
}

// BeginFrame polls events, resets the viewport and clears it to c. It
// returns the framebuffer size.
func (w *Window) BeginFrame(c overlay.Color) overlay.Vec2 {
	w.clicked = false
	glfw.PollEvents()

	fw, fh := w.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fw), int32(fh))
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	return overlay.Vec2{X: float32(fw), Y: float32(fh)}
}

// EndFrame presents the frame.
func (w *Window) EndFrame() {
	w.SwapBuffers()
}

// Pointer returns the cursor position in y-up framebuffer coordinates.
func (w *Window) Pointer() overlay.Vec2 {
	x, y := w.GetCursorPos()
	ww, wh := w.GetSize()
	fw, fh := w.GetFramebufferSize()
	sx, sy := 1.0, 1.0
	if ww > 0 && wh > 0 {
		sx, sy = float64(fw)/float64(ww), float64(fh)/float64(wh)
	}
	return overlay.Vec2{X: float32(x * sx), Y: float32(float64(fh) - y*sy)}
}

// Pressed reports whether the left mouse button is held.
func (w *Window) Pressed() bool { return w.pressed }

// Clicked reports whether the left mouse button was released this frame.
func (w *Window) Clicked() bool { return w.clicked }

func (w *Window) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	switch action {
	case glfw.Press:
		w.pressed = true
	case glfw.Release:
		if w.pressed {
			w.clicked = true
		}
		w.pressed = false
	}
}
