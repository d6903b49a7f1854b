package ui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/trichrome/components"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Counts [components.NumColors]int
	Tick   int32
	FPS    int32
	Arena  string
	Paused bool

	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the main heads-up display.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	// Per-color population counts in their own colors.
	x := int32(10)
	for _, color := range components.AllColors() {
		text := fmt.Sprintf("%s: %d", color, data.Counts[color])
		rl.DrawText(text, x, 10, 20, ColorFor(color))
		x += rl.MeasureText(text, 20) + 18
	}

	// Simulation info
	rl.DrawText(
		fmt.Sprintf("Tick: %d | FPS: %d | %s", data.Tick, data.FPS, data.Arena),
		10, 35, 16, rl.LightGray,
	)

	if data.Paused {
		rl.DrawText("PAUSED", 10, 55, 16, rl.Yellow)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-65, 14, rl.Gray)
}

// DrawWinnerBanner renders the end-of-run banner for the winning color.
func (h *HUD) DrawWinnerBanner(screenWidth, screenHeight int32, winner components.Color) {
	title := fmt.Sprintf("%s WINS", strings.ToUpper(winner.String()))
	titleWidth := rl.MeasureText(title, 48)
	rl.DrawText(title, screenWidth/2-titleWidth/2, screenHeight/2-48, 48, ColorFor(winner))

	sub := "Press R for a new run"
	subWidth := rl.MeasureText(sub, 20)
	rl.DrawText(sub, screenWidth/2-subWidth/2, screenHeight/2+12, 20, rl.LightGray)
}
