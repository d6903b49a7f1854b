package systems

import "math"

// Falloff returns the force magnitude for a neighbor at the given
// distance: maxForce at distance zero, decreasing linearly to zero at
// the interaction radius.
func Falloff(maxForce, dist, radius float32) float32 {
	if dist >= radius || radius <= 0 {
		return 0
	}
	return maxForce * (1 - dist/radius)
}

// ClampSpeed limits the magnitude of (vx, vy) to maxSpeed, preserving
// direction. Bounds runaway acceleration from accumulated forces.
func ClampSpeed(vx, vy, maxSpeed float32) (float32, float32) {
	speedSq := vx*vx + vy*vy
	if speedSq <= maxSpeed*maxSpeed {
		return vx, vy
	}
	speed := float32(math.Sqrt(float64(speedSq)))
	scale := maxSpeed / speed
	return vx * scale, vy * scale
}
