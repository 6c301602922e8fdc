package pyramid

import "github.com/go-gl/mathgl/mgl32"

var (
	origin = mgl32.Vec3{0, 0, 0}
	up     = mgl32.Vec3{0, 1, 0}
)

// Projection returns the perspective matrix for cfg. It is computed once.
func Projection(cfg Config) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(cfg.FovY), cfg.Aspect(), cfg.Near, cfg.Far)
}

// ModelMatrix returns the pyramid's rotation after elapsed seconds.
// The axis need not be normalized.
func ModelMatrix(elapsed, speed float32, axis mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Ident4().Mul4(mgl32.HomogRotate3D(elapsed*speed, axis.Normalize()))
}

// ViewMatrix looks from eye at the origin with +Y up.
func ViewMatrix(eye mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, origin, up)
}
