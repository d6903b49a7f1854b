package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/trichrome/components"
)

func TestResolveExtents(t *testing.T) {
	tests := []struct {
		name  string
		shape ArenaShape
		size  ArenaSize
		wantW float32
		wantH float32
	}{
		{"large square", ShapeSquare, SizeLarge, 720, 720},
		{"medium circle", ShapeCircle, SizeMedium, 612, 612},
		{"small square", ShapeSquare, SizeSmall, 504, 504},
		{"large hexagon", ShapeHexagon, SizeLarge, 720, 720 * 0.866},
		{"small triangle", ShapeTriangle, SizeSmall, 504, 504 * 0.866},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := Arena{Shape: tc.shape, Size: tc.size}
			a.Resolve(1280, 720, 1.0)

			if math.Abs(float64(a.W-tc.wantW)) > 0.01 {
				t.Errorf("W = %f, want %f", a.W, tc.wantW)
			}
			if math.Abs(float64(a.H-tc.wantH)) > 0.01 {
				t.Errorf("H = %f, want %f", a.H, tc.wantH)
			}
			if a.CX != 640 || a.CY != 360 {
				t.Errorf("center = (%f, %f), want (640, 360)", a.CX, a.CY)
			}
		})
	}
}

func TestResolveKeepsShapeAndSize(t *testing.T) {
	a := Arena{Shape: ShapeHexagon, Size: SizeMedium}
	a.Resolve(1280, 720, 0.9)
	w1 := a.W

	a.Resolve(1920, 1080, 0.9)
	if a.Shape != ShapeHexagon || a.Size != SizeMedium {
		t.Error("resize must not change shape or size class")
	}
	if a.W <= w1 {
		t.Errorf("larger surface should yield larger extents, got %f <= %f", a.W, w1)
	}
}

func TestSquareContainReflects(t *testing.T) {
	a := Arena{Shape: ShapeSquare, Size: SizeLarge}
	a.Resolve(1000, 1000, 1.0)

	half := float32(5)
	pos := components.Position{X: a.CX + a.W/2 + 20, Y: a.CY}
	vel := components.Velocity{X: 3, Y: 1}

	a.Contain(&pos, &vel, half)

	right := a.CX + a.W/2 - half
	if pos.X != right {
		t.Errorf("X = %f, want clamped to %f", pos.X, right)
	}
	if vel.X != -3 {
		t.Errorf("VX = %f, want reflected -3", vel.X)
	}
	if vel.Y != 1 {
		t.Errorf("VY = %f, want unchanged 1", vel.Y)
	}
}

func TestRadialContainReflects(t *testing.T) {
	for _, shape := range []ArenaShape{ShapeCircle, ShapeHexagon, ShapeTriangle} {
		t.Run(shape.String(), func(t *testing.T) {
			a := Arena{Shape: shape, Size: SizeLarge}
			a.Resolve(1000, 1000, 1.0)

			half := float32(5)
			r := a.Radius() - half

			pos := components.Position{X: a.CX + r + 30, Y: a.CY}
			vel := components.Velocity{X: 2, Y: 0}

			a.Contain(&pos, &vel, half)

			dx := pos.X - a.CX
			dy := pos.Y - a.CY
			d := float32(math.Sqrt(float64(dx*dx + dy*dy)))
			if math.Abs(float64(d-r)) > 0.01 {
				t.Errorf("distance from center = %f, want %f", d, r)
			}
			if vel.X != -2 {
				t.Errorf("VX = %f, want reflected -2", vel.X)
			}
		})
	}
}

func TestContainInsideIsNoop(t *testing.T) {
	for _, shape := range []ArenaShape{ShapeSquare, ShapeCircle, ShapeHexagon, ShapeTriangle} {
		a := Arena{Shape: shape, Size: SizeMedium}
		a.Resolve(1000, 1000, 0.9)

		pos := components.Position{X: a.CX + 10, Y: a.CY - 10}
		vel := components.Velocity{X: 1, Y: -1}
		a.Contain(&pos, &vel, 5)

		if pos.X != a.CX+10 || pos.Y != a.CY-10 || vel.X != 1 || vel.Y != -1 {
			t.Errorf("%v: contain mutated an agent already inside", shape)
		}
	}
}

func TestClampInside(t *testing.T) {
	a := Arena{Shape: ShapeCircle, Size: SizeSmall}
	a.Resolve(800, 800, 0.9)

	x, y := a.Clamp(a.CX+5000, a.CY, 5)
	dx := x - a.CX
	dy := y - a.CY
	d := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if d > a.Radius()-5+0.01 {
		t.Errorf("clamped point outside interior: dist %f > %f", d, a.Radius()-5)
	}
	if y != a.CY {
		t.Errorf("clamp moved the point off its radial line: y = %f", y)
	}
}

func TestRandomArenaInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		shape, size := RandomArena(rng)
		if shape >= NumShapes {
			t.Fatalf("shape out of range: %d", shape)
		}
		if size >= NumSizes {
			t.Fatalf("size out of range: %d", size)
		}
	}
}
