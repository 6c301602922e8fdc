package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/pyramid"
)

// Window owns the GLFW window and its current GL context.
// It must be created and used on the main OS thread.
type Window struct {
	window *glfw.Window
}

// NewWindow initializes GLFW, opens a fixed-size core-profile window,
// makes its context current and loads the GL function pointers.
// The viewport covers the whole framebuffer and depth testing is on.
func NewWindow(cfg pyramid.Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(cfg.WindowWidth, cfg.WindowHeight, cfg.WindowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}

	w, h := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.Enable(gl.DEPTH_TEST)

	return &Window{window: window}, nil
}

// ShouldClose reports whether Escape or the window manager asked to close.
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

// SetShouldClose sets the close flag checked at the top of the next frame.
func (w *Window) SetShouldClose(v bool) {
	w.window.SetShouldClose(v)
}

// Time returns seconds since GLFW was initialized.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// PollKeys samples the held state of every bound key.
func (w *Window) PollKeys(in *pyramid.InputState) {
	for _, b := range keyBindings {
		in.SetKey(b.key, w.window.GetKey(b.glfw) == glfw.Press)
	}
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// PollEvents processes pending window and input events.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Destroy closes the window and shuts GLFW down.
func (w *Window) Destroy() {
	w.window.Destroy()
	glfw.Terminate()
}

type keyBinding struct {
	glfw glfw.Key
	key  pyramid.Key
}

// keyBindings maps GLFW keys to demo keys.
var keyBindings = []keyBinding{
	{glfw.KeyLeft, pyramid.KeyLeft},
	{glfw.KeyRight, pyramid.KeyRight},
	{glfw.KeyUp, pyramid.KeyUp},
	{glfw.KeyDown, pyramid.KeyDown},
	{glfw.KeyEscape, pyramid.KeyEscape},
	{glfw.KeyA, pyramid.KeyA},
	{glfw.KeyD, pyramid.KeyD},
	{glfw.KeyS, pyramid.KeyS},
	{glfw.KeyW, pyramid.KeyW},
}
