package systems

import "math"

// DiscOverlap returns the penetration depth of two discs, or 0 when
// they do not overlap. Discs collide when the center distance is less
// than the sum of their radii, (sizeA+sizeB)/2.
func DiscOverlap(dist, sizeA, sizeB float32) float32 {
	sum := (sizeA + sizeB) / 2
	if dist >= sum {
		return 0
	}
	return sum - dist
}

// ReflectPreserveSpeed reflects the velocity (vx, vy) about the unit
// collision normal (nx, ny) and restores the original speed. This is a
// direction reflection, not a mass-based impulse: each agent keeps its
// own pre-collision speed.
func ReflectPreserveSpeed(vx, vy, nx, ny float32) (float32, float32) {
	speed := float32(math.Sqrt(float64(vx*vx + vy*vy)))

	dot := vx*nx + vy*ny
	rx := vx - 2*dot*nx
	ry := vy - 2*dot*ny

	// Reflection preserves magnitude analytically; renormalize to
	// guard against float drift.
	mag := float32(math.Sqrt(float64(rx*rx + ry*ry)))
	if mag == 0 {
		return 0, 0
	}
	scale := speed / mag
	return rx * scale, ry * scale
}
