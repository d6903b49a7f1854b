package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes keyboard input and window resizes.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.restart()
	}

	if rl.IsWindowResized() {
		w := float32(rl.GetScreenWidth())
		h := float32(rl.GetScreenHeight())
		g.width, g.height = w, h
		g.engine.Resize(w, h)
		g.background.Resize(int32(w), int32(h))
	}
}
