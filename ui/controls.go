package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlAction reports which control was clicked this frame.
type ControlAction struct {
	Restart    bool
	CycleShape bool
	CycleSize  bool
}

// ControlsPanel renders the bottom-left run controls.
type ControlsPanel struct{}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel() *ControlsPanel {
	return &ControlsPanel{}
}

// Draw renders the buttons and returns any clicked action. Arena
// selection buttons show the override that applies to the next run;
// "random" means a fresh random pick per run.
func (c *ControlsPanel) Draw(screenHeight int32, shapeLabel, sizeLabel string) ControlAction {
	y := float32(screenHeight) - 40

	var action ControlAction
	action.Restart = gui.Button(rl.Rectangle{X: 10, Y: y, Width: 90, Height: 30}, "Restart")
	action.CycleShape = gui.Button(
		rl.Rectangle{X: 110, Y: y, Width: 150, Height: 30},
		fmt.Sprintf("Shape: %s", shapeLabel),
	)
	action.CycleSize = gui.Button(
		rl.Rectangle{X: 270, Y: y, Width: 150, Height: 30},
		fmt.Sprintf("Size: %s", sizeLabel),
	)
	return action
}
