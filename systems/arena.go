// Package systems provides the pure simulation systems for the engine.
package systems

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/pthm-cable/trichrome/components"
)

// ArenaShape identifies the arena outline.
type ArenaShape uint8

const (
	ShapeSquare ArenaShape = iota
	ShapeCircle
	ShapeHexagon
	ShapeTriangle
)

// NumShapes is the number of arena shapes.
const NumShapes = 4

// String returns the shape name.
func (s ArenaShape) String() string {
	switch s {
	case ShapeSquare:
		return "square"
	case ShapeCircle:
		return "circle"
	case ShapeHexagon:
		return "hexagon"
	case ShapeTriangle:
		return "triangle"
	}
	return "unknown"
}

// ParseShape returns the shape for a config name.
func ParseShape(name string) (ArenaShape, bool) {
	switch name {
	case "square":
		return ShapeSquare, true
	case "circle":
		return ShapeCircle, true
	case "hexagon":
		return ShapeHexagon, true
	case "triangle":
		return ShapeTriangle, true
	}
	return 0, false
}

// ArenaSize is the arena size class.
type ArenaSize uint8

const (
	SizeSmall ArenaSize = iota
	SizeMedium
	SizeLarge
)

// NumSizes is the number of arena size classes.
const NumSizes = 3

// Scale returns the extent multiplier for the size class.
func (s ArenaSize) Scale() float32 {
	switch s {
	case SizeSmall:
		return 0.7
	case SizeMedium:
		return 0.85
	case SizeLarge:
		return 1.0
	}
	panic("systems: unknown arena size")
}

// String returns the size class name.
func (s ArenaSize) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	}
	return "unknown"
}

// ParseSize returns the size class for a config name.
func ParseSize(name string) (ArenaSize, bool) {
	switch name {
	case "small":
		return SizeSmall, true
	case "medium":
		return SizeMedium, true
	case "large":
		return SizeLarge, true
	}
	return 0, false
}

// polygonAspect approximates the natural bounding proportions of the
// hexagon and triangle outlines (height = 0.866 x width).
const polygonAspect = 0.866

// Arena is the bounded region agents are confined to for one run.
// Shape and size class are fixed per run; W, H and the center are
// recomputed whenever the drawing surface resizes.
type Arena struct {
	Shape ArenaShape
	Size  ArenaSize

	W, H   float32 // resolved pixel extents
	CX, CY float32 // center on the drawing surface
}

// RandomArena picks a uniformly random shape and size class.
func RandomArena(rng *rand.Rand) (ArenaShape, ArenaSize) {
	return ArenaShape(rng.Intn(NumShapes)), ArenaSize(rng.Intn(NumSizes))
}

// Resolve computes pixel extents from the available drawing surface.
// Agent and particle state are unaffected.
func (a *Arena) Resolve(surfaceW, surfaceH, baseFraction float32) {
	base := surfaceW
	if surfaceH < base {
		base = surfaceH
	}
	base *= baseFraction

	w := base * a.Size.Scale()
	h := w
	switch a.Shape {
	case ShapeSquare, ShapeCircle:
		// 1:1
	case ShapeHexagon, ShapeTriangle:
		h = w * polygonAspect
	default:
		panic(fmt.Sprintf("systems: unknown arena shape %d", a.Shape))
	}

	a.W = w
	a.H = h
	a.CX = surfaceW / 2
	a.CY = surfaceH / 2
}

// Radius returns the containment radius used by the non-square shapes.
func (a *Arena) Radius() float32 {
	r := a.W
	if a.H < r {
		r = a.H
	}
	return r / 2
}

// Contain reflects an agent back inside the arena. The square reflects
// each axis independently against its edges; circle, hexagon and
// triangle share radial reflection against Radius(). The polygon shapes
// reuse the circular math as an approximation, differing only in their
// rendered outline. half is half the agent diameter.
func (a *Arena) Contain(pos *components.Position, vel *components.Velocity, half float32) {
	switch a.Shape {
	case ShapeSquare:
		left := a.CX - a.W/2 + half
		right := a.CX + a.W/2 - half
		top := a.CY - a.H/2 + half
		bottom := a.CY + a.H/2 - half

		if pos.X < left {
			pos.X = left
			vel.X = -vel.X
		} else if pos.X > right {
			pos.X = right
			vel.X = -vel.X
		}
		if pos.Y < top {
			pos.Y = top
			vel.Y = -vel.Y
		} else if pos.Y > bottom {
			pos.Y = bottom
			vel.Y = -vel.Y
		}

	case ShapeCircle, ShapeHexagon, ShapeTriangle:
		r := a.Radius() - half
		dx := pos.X - a.CX
		dy := pos.Y - a.CY
		d := float32(math.Sqrt(float64(dx*dx + dy*dy)))
		if d <= r || d == 0 {
			return
		}
		nx := dx / d
		ny := dy / d
		// Reflect the outward velocity component about the boundary normal.
		dot := vel.X*nx + vel.Y*ny
		if dot > 0 {
			vel.X -= 2 * dot * nx
			vel.Y -= 2 * dot * ny
		}
		pos.X = a.CX + nx*r
		pos.Y = a.CY + ny*r

	default:
		panic(fmt.Sprintf("systems: unknown arena shape %d", a.Shape))
	}
}

// Clamp forces a point into the arena interior, inset by half.
// Used when placing freshly seeded agents.
func (a *Arena) Clamp(x, y, half float32) (float32, float32) {
	switch a.Shape {
	case ShapeSquare:
		left := a.CX - a.W/2 + half
		right := a.CX + a.W/2 - half
		top := a.CY - a.H/2 + half
		bottom := a.CY + a.H/2 - half
		if x < left {
			x = left
		} else if x > right {
			x = right
		}
		if y < top {
			y = top
		} else if y > bottom {
			y = bottom
		}
		return x, y

	case ShapeCircle, ShapeHexagon, ShapeTriangle:
		r := a.Radius() - half
		dx := x - a.CX
		dy := y - a.CY
		d := float32(math.Sqrt(float64(dx*dx + dy*dy)))
		if d <= r || d == 0 {
			return x, y
		}
		return a.CX + dx/d*r, a.CY + dy/d*r

	default:
		panic(fmt.Sprintf("systems: unknown arena shape %d", a.Shape))
	}
}

// Label returns a human-readable arena description for the HUD.
func (a *Arena) Label() string {
	return fmt.Sprintf("%s %s arena", a.Size, a.Shape)
}
