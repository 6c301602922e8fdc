package pyramid

import "github.com/go-gl/mathgl/mgl32"

// Config holds the demo's fixed parameters.
// Nothing here is read from flags, files or the environment.
type Config struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	GLMajor, GLMinor int

	Background [3]float32

	FovY       float32 // degrees
	Near, Far  float32
	SpinSpeed  float32 // model rotation, radians per second
	SpinAxis   mgl32.Vec3
	OrbitSpeed float32 // radians per second
	ZoomSpeed  float32 // units per second
	MinRadius  float32
	MaxRadius  float32

	CameraRadius float32
	CameraHeight float32
}

// DefaultConfig returns the parameters the demo ships with.
func DefaultConfig() Config {
	return Config{
		WindowWidth:  800,
		WindowHeight: 800,
		WindowTitle:  "Proyecto_OpenGL",

		GLMajor: 3,
		GLMinor: 3,

		Background: [3]float32{0.07, 0.13, 0.17},

		FovY:       45,
		Near:       0.1,
		Far:        100,
		SpinSpeed:  0.8,
		SpinAxis:   mgl32.Vec3{0.5, 1.0, 0.3},
		OrbitSpeed: 1.5,
		ZoomSpeed:  1.5,
		MinRadius:  0.5,
		MaxRadius:  10,

		CameraRadius: 3,
		CameraHeight: 1,
	}
}

// Aspect returns the window's width over height.
func (c Config) Aspect() float32 {
	if c.WindowHeight == 0 {
		return 1
	}
	return float32(c.WindowWidth) / float32(c.WindowHeight)
}
