package pyramid

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestModelMatrixAtZero(t *testing.T) {
	cfg := DefaultConfig()
	got := ModelMatrix(0, cfg.SpinSpeed, cfg.SpinAxis)
	if !got.ApproxEqual(mgl32.Ident4()) {
		t.Errorf("model at t=0 = %v, want identity", got)
	}
}

func TestModelMatrixKeepsAxis(t *testing.T) {
	cfg := DefaultConfig()
	axis := cfg.SpinAxis.Normalize()

	for _, elapsed := range []float32{0.25, 1, 7.5} {
		m := ModelMatrix(elapsed, cfg.SpinSpeed, cfg.SpinAxis)
		got := m.Mul4x1(axis.Vec4(0)).Vec3()
		if !got.ApproxEqualThreshold(axis, 1e-5) {
			t.Errorf("t=%v: axis moved to %v", elapsed, got)
		}
	}
}

func TestModelMatrixAngle(t *testing.T) {
	cfg := DefaultConfig()
	want := mgl32.HomogRotate3D(0.8, cfg.SpinAxis.Normalize())
	got := ModelMatrix(1, cfg.SpinSpeed, cfg.SpinAxis)
	if !got.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("model at t=1 = %v, want %v", got, want)
	}
}

func TestProjection(t *testing.T) {
	cfg := DefaultConfig()
	want := mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 100)
	if got := Projection(cfg); got != want {
		t.Errorf("projection = %v, want %v", got, want)
	}
}

func TestViewMatrixLooksAtOrigin(t *testing.T) {
	eye := OrbitPosition(0, 3, 1)
	view := ViewMatrix(eye)

	atEye := view.Mul4x1(eye.Vec4(1))
	if !atEye.ApproxEqualThreshold(mgl32.Vec4{0, 0, 0, 1}, 1e-5) {
		t.Errorf("eye maps to %v, want view-space origin", atEye)
	}

	atOrigin := view.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if atOrigin.X() > 1e-5 || atOrigin.X() < -1e-5 || atOrigin.Y() > 1e-5 || atOrigin.Y() < -1e-5 {
		t.Errorf("origin not centered in view: %v", atOrigin)
	}
	if !mgl32.FloatEqualThreshold(atOrigin.Z(), -eye.Len(), 1e-5) {
		t.Errorf("origin depth = %f, want %f", atOrigin.Z(), -eye.Len())
	}
}

func TestConfigAspect(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Aspect() != 1 {
		t.Errorf("aspect = %f, want 1", cfg.Aspect())
	}
	cfg.WindowHeight = 0
	if cfg.Aspect() != 1 {
		t.Errorf("aspect with zero height = %f, want 1", cfg.Aspect())
	}
}
