package systems

import (
	"math"
	"testing"
)

func TestFalloff(t *testing.T) {
	tests := []struct {
		name     string
		maxForce float32
		dist     float32
		radius   float32
		want     float32
	}{
		{"zero distance", 0.2, 0, 60, 0.2},
		{"half radius", 0.2, 30, 60, 0.1},
		{"at radius", 0.2, 60, 60, 0},
		{"beyond radius", 0.2, 100, 60, 0},
		{"zero radius", 0.2, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Falloff(tc.maxForce, tc.dist, tc.radius)
			if math.Abs(float64(got-tc.want)) > 1e-6 {
				t.Errorf("Falloff(%v, %v, %v) = %v, want %v", tc.maxForce, tc.dist, tc.radius, got, tc.want)
			}
		})
	}
}

func TestClampSpeedPreservesDirection(t *testing.T) {
	vx, vy := ClampSpeed(6, 8, 5)

	speed := math.Hypot(float64(vx), float64(vy))
	if math.Abs(speed-5) > 1e-3 {
		t.Errorf("clamped speed = %f, want 5", speed)
	}
	// Direction 3:4 preserved
	if math.Abs(float64(vx/vy)-0.75) > 1e-3 {
		t.Errorf("direction changed: vx/vy = %f, want 0.75", vx/vy)
	}
}

func TestClampSpeedBelowLimit(t *testing.T) {
	vx, vy := ClampSpeed(1, 2, 5)
	if vx != 1 || vy != 2 {
		t.Errorf("velocity below the limit must be unchanged, got (%f, %f)", vx, vy)
	}
}

func TestDiscOverlap(t *testing.T) {
	if got := DiscOverlap(12, 10, 10); got != 0 {
		t.Errorf("separated discs: overlap = %f, want 0", got)
	}
	if got := DiscOverlap(10, 10, 10); got != 0 {
		t.Errorf("touching discs: overlap = %f, want 0", got)
	}
	if got := DiscOverlap(6, 10, 10); math.Abs(float64(got-4)) > 1e-6 {
		t.Errorf("overlapping discs: overlap = %f, want 4", got)
	}
}

func TestReflectPreserveSpeed(t *testing.T) {
	// Head-on into a normal pointing +X: velocity flips, speed kept.
	vx, vy := ReflectPreserveSpeed(3, 0, 1, 0)
	if math.Abs(float64(vx+3)) > 1e-3 || math.Abs(float64(vy)) > 1e-3 {
		t.Errorf("head-on reflection = (%f, %f), want (-3, 0)", vx, vy)
	}

	// Oblique: speed preserved.
	vx, vy = ReflectPreserveSpeed(3, 4, 1, 0)
	speed := math.Hypot(float64(vx), float64(vy))
	if math.Abs(speed-5) > 1e-3 {
		t.Errorf("oblique reflection speed = %f, want 5", speed)
	}
	if math.Abs(float64(vx+3)) > 1e-3 || math.Abs(float64(vy-4)) > 1e-3 {
		t.Errorf("oblique reflection = (%f, %f), want (-3, 4)", vx, vy)
	}
}

func TestReflectZeroVelocity(t *testing.T) {
	vx, vy := ReflectPreserveSpeed(0, 0, 1, 0)
	if vx != 0 || vy != 0 {
		t.Errorf("zero velocity reflection = (%f, %f), want (0, 0)", vx, vy)
	}
}
