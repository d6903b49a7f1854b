package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/trichrome/components"
	"github.com/pthm-cable/trichrome/engine"
	"github.com/pthm-cable/trichrome/systems"
	"github.com/pthm-cable/trichrome/ui"
)

var (
	arenaFill    = rl.Color{R: 255, G: 255, B: 255, A: 10}
	arenaOutline = rl.Color{R: 200, G: 200, B: 210, A: 120}
)

// Draw renders one frame.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 10, G: 10, B: 16, A: 255})

	g.background.Draw(float32(g.engine.Tick()))
	g.drawArena()
	g.drawParticles()
	g.drawAgents()
	g.drawHUD()

	rl.EndDrawing()
}

// drawArena renders the arena fill and outline for the current shape.
func (g *Game) drawArena() {
	arena := g.engine.Arena()
	center := rl.Vector2{X: arena.CX, Y: arena.CY}

	switch arena.Shape {
	case systems.ShapeSquare:
		rect := rl.Rectangle{
			X:      arena.CX - arena.W/2,
			Y:      arena.CY - arena.H/2,
			Width:  arena.W,
			Height: arena.H,
		}
		rl.DrawRectangleRec(rect, arenaFill)
		rl.DrawRectangleLinesEx(rect, 2, arenaOutline)

	case systems.ShapeCircle:
		rl.DrawCircleV(center, arena.Radius(), arenaFill)
		rl.DrawCircleLines(int32(arena.CX), int32(arena.CY), arena.Radius(), arenaOutline)

	case systems.ShapeHexagon:
		// Circumradius W/2 puts the inscribed circle exactly at the
		// containment radius.
		rl.DrawPoly(center, 6, arena.W/2, 0, arenaFill)
		rl.DrawPolyLinesEx(center, 6, arena.W/2, 0, 2, arenaOutline)

	case systems.ShapeTriangle:
		rl.DrawPoly(center, 3, arena.W/2, -90, arenaFill)
		rl.DrawPolyLinesEx(center, 3, arena.W/2, -90, 2, arenaOutline)

	default:
		panic("game: unknown arena shape")
	}
}

// drawParticles renders effect particles, fading with remaining life.
func (g *Game) drawParticles() {
	for _, p := range g.engine.Particles() {
		color := ui.ColorFor(p.Color)
		if p.Core {
			color = ui.Brighten(color, 70)
		}

		alpha := p.Life / p.MaxLife
		if alpha < 0 {
			alpha = 0
		}
		color.A = uint8(alpha * 255)

		rl.DrawCircleV(rl.Vector2{X: p.X, Y: p.Y}, p.Size, color)
	}
}

// drawAgents renders every agent as a filled disc.
func (g *Game) drawAgents() {
	g.engine.VisitAgents(func(pos components.Position, size float32, color components.Color) {
		rl.DrawCircleV(rl.Vector2{X: pos.X, Y: pos.Y}, size/2, ui.ColorFor(color))
	})
}

// drawHUD renders counters, controls and the winner banner.
func (g *Game) drawHUD() {
	screenW := int32(g.width)
	screenH := int32(g.height)

	g.hud.Draw(ui.HUDData{
		Counts:       g.engine.Counts(),
		Tick:         g.engine.Tick(),
		FPS:          rl.GetFPS(),
		Arena:        g.engine.Arena().Label(),
		Paused:       g.paused,
		ScreenWidth:  screenW,
		ScreenHeight: screenH,
	})
	g.hud.DrawControls(screenW, screenH, "Space: pause | R: restart")

	action := g.controls.Draw(screenH, g.shapeLabel(), g.sizeLabel())
	if action.Restart {
		g.restart()
	}
	if action.CycleShape {
		g.cycleShape()
	}
	if action.CycleSize {
		g.cycleSize()
	}

	if g.engine.State() == engine.StateWon {
		g.hud.DrawWinnerBanner(screenW, screenH, g.engine.Winner())
	}
}
