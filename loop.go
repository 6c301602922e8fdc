package pyramid

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// Window is the surface the loop presents to and samples keys from.
type Window interface {
	ShouldClose() bool
	SetShouldClose(bool)
	// Time returns monotonic seconds since the window system started.
	Time() float64
	// PollKeys writes the current key-down state into in.
	PollKeys(in *InputState)
	SwapBuffers()
	PollEvents()
}

// Renderer issues the per-frame GPU work.
// The projection is fixed when the renderer is created.
type Renderer interface {
	Clear()
	DrawFaces(model, view mgl32.Mat4)
	DrawEdges(model, view mgl32.Mat4)
	Delete()
}

// State is the loop's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// Loop drives the window and renderer one frame at a time.
type Loop struct {
	window   Window
	renderer Renderer
	config   Config
	logger   *slog.Logger
	camera   *Camera
	input    *InputState

	state  State
	last   float64
	frames int
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithConfig replaces the default parameters.
func WithConfig(cfg Config) LoopOption {
	return func(l *Loop) { l.config = cfg }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) LoopOption {
	return func(l *Loop) { l.logger = logger }
}

// WithCamera starts the loop from an existing camera instead of one built from the config.
func WithCamera(c *Camera) LoopOption {
	return func(l *Loop) { l.camera = c }
}

// NewLoop creates a loop in the running state.
// The first frame's delta time is measured from this call.
func NewLoop(window Window, renderer Renderer, opts ...LoopOption) *Loop {
	l := &Loop{
		window:   window,
		renderer: renderer,
		config:   DefaultConfig(),
		logger:   slog.Default(),
		input:    NewInputState(),
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.camera == nil {
		l.camera = NewCamera(l.config)
	}
	l.last = window.Time()

	return l
}

// State returns the current lifecycle state.
func (l *Loop) State() State { return l.state }

// Frames returns how many frames have been presented.
func (l *Loop) Frames() int { return l.frames }

// Camera returns the orbit camera mutated by input.
func (l *Loop) Camera() *Camera { return l.camera }

// Step runs one frame. It returns false once the loop has moved to closing,
// in which case nothing was drawn.
func (l *Loop) Step() bool {
	if l.state == StateClosing {
		return false
	}
	if l.window.ShouldClose() {
		l.state = StateClosing
		return false
	}

	now := l.window.Time()
	dt := float32(now - l.last)
	l.last = now

	l.window.PollKeys(l.input)
	if l.camera.Update(l.input, dt) {
		l.window.SetShouldClose(true)
	}

	l.renderer.Clear()

	model := ModelMatrix(float32(now), l.config.SpinSpeed, l.config.SpinAxis)
	view := l.camera.View()

	// Faces first so the edges depth-test against them.
	l.renderer.DrawFaces(model, view)
	l.renderer.DrawEdges(model, view)

	l.window.SwapBuffers()
	l.window.PollEvents()
	l.frames++

	return true
}

// Run steps until the window asks to close, then releases the renderer.
func (l *Loop) Run() {
	for l.Step() {
	}
	l.logger.Debug("render loop closing", "frames", l.frames)
	l.renderer.Delete()
}
