// Package ui renders the HUD and the immediate-mode control panel.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/trichrome/components"
)

// ColorFor returns the display color for an agent color. This is the
// single palette source for agents, particles and HUD text.
func ColorFor(c components.Color) rl.Color {
	switch c {
	case components.ColorRed:
		return rl.Color{R: 235, G: 82, B: 82, A: 255}
	case components.ColorGreen:
		return rl.Color{R: 92, G: 220, B: 112, A: 255}
	case components.ColorBlue:
		return rl.Color{R: 96, G: 144, B: 245, A: 255}
	}
	panic("ui: unknown agent color")
}

// Brighten lightens a color for highlight rendering.
func Brighten(c rl.Color, amount uint8) rl.Color {
	add := func(v, a uint8) uint8 {
		if v > 255-a {
			return 255
		}
		return v + a
	}
	return rl.Color{R: add(c.R, amount), G: add(c.G, amount), B: add(c.B, amount), A: c.A}
}
