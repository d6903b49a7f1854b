// Package game hosts the simulation behind a raylib frame loop: input,
// rendering, pause state and run output. All simulation state lives in
// the engine; the game only drives and observes it.
package game

import (
	"log/slog"

	"github.com/pthm-cable/trichrome/components"
	"github.com/pthm-cable/trichrome/config"
	"github.com/pthm-cable/trichrome/engine"
	"github.com/pthm-cable/trichrome/systems"
	"github.com/pthm-cable/trichrome/telemetry"
	"github.com/pthm-cable/trichrome/ui"
)

// Options configures game behavior.
type Options struct {
	Seed      int64
	Headless  bool
	OutputDir string
	LogStats  bool
}

// Game wires the engine to the frame loop, input handling and output.
type Game struct {
	engine *engine.Engine
	sched  *engine.FrameScheduler
	output *telemetry.OutputManager

	background *Background
	hud        *ui.HUD
	controls   *ui.ControlsPanel

	paused   bool
	headless bool
	logStats bool

	// Arena override cycling; -1 selects random per run.
	shapeSel int
	sizeSel  int

	width, height float32
}

var shapeCycle = []systems.ArenaShape{
	systems.ShapeSquare,
	systems.ShapeCircle,
	systems.ShapeHexagon,
	systems.ShapeTriangle,
}

var sizeCycle = []systems.ArenaSize{
	systems.SizeSmall,
	systems.SizeMedium,
	systems.SizeLarge,
}

// NewGame creates the game and starts the first run.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	g := &Game{
		sched:    engine.NewFrameScheduler(),
		output:   output,
		headless: opts.Headless,
		logStats: opts.LogStats,
		shapeSel: -1,
		sizeSel:  -1,
		width:    cfg.Derived.ScreenW32,
		height:   cfg.Derived.ScreenH32,
	}

	g.engine = engine.New(engine.Options{
		Seed:      opts.Seed,
		Scheduler: g.sched,
		OnEnd:     g.onRunEnd,
		OnStats:   g.onStats,
		SurfaceW:  g.width,
		SurfaceH:  g.height,
	})

	if !opts.Headless {
		g.background = NewBackground(int32(g.width), int32(g.height), opts.Seed)
		g.hud = ui.NewHUD()
		g.controls = ui.NewControlsPanel()
	}

	g.engine.Start()
	return g, nil
}

// onRunEnd handles the engine's end-of-run callback.
func (g *Game) onRunEnd(winner components.Color) {
	slog.Info("run finished",
		"winner", winner.String(),
		"tick", g.engine.Tick(),
		"survivors", g.engine.TotalAgents(),
	)
}

// onStats handles a closed telemetry window.
func (g *Game) onStats(stats telemetry.WindowStats) {
	if g.logStats {
		slog.Info("window stats",
			"tick", stats.WindowEndTick,
			"red", stats.RedCount,
			"green", stats.GreenCount,
			"blue", stats.BlueCount,
			"battles", stats.Battles,
			"speed_mean", stats.SpeedMean,
		)
	}
	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Error("telemetry write failed", "error", err)
	}
}

// Update runs input handling and at most one simulation step.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}
	g.sched.RunPending()
}

// UpdateHeadless runs one simulation step without any raylib calls.
func (g *Game) UpdateHeadless() {
	g.sched.RunPending()
}

// restart aborts the current run and starts a fresh one with the
// currently selected arena overrides.
func (g *Game) restart() {
	g.engine.Reset()
	g.paused = false
	g.engine.Start()
}

// cycleShape advances the shape override: random, then each shape.
func (g *Game) cycleShape() {
	g.shapeSel++
	if g.shapeSel >= len(shapeCycle) {
		g.shapeSel = -1
	}
	if g.shapeSel < 0 {
		g.engine.ClearShapeOverride()
		return
	}
	g.engine.SetShapeOverride(shapeCycle[g.shapeSel])
}

// cycleSize advances the size override: random, then each size class.
func (g *Game) cycleSize() {
	g.sizeSel++
	if g.sizeSel >= len(sizeCycle) {
		g.sizeSel = -1
	}
	if g.sizeSel < 0 {
		g.engine.ClearSizeOverride()
		return
	}
	g.engine.SetSizeOverride(sizeCycle[g.sizeSel])
}

func (g *Game) shapeLabel() string {
	if g.shapeSel < 0 {
		return "random"
	}
	return shapeCycle[g.shapeSel].String()
}

func (g *Game) sizeLabel() string {
	if g.sizeSel < 0 {
		return "random"
	}
	return sizeCycle[g.sizeSel].String()
}

// State returns the engine lifecycle state.
func (g *Game) State() engine.RunState {
	return g.engine.State()
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.engine.Tick()
}

// Unload releases run output and engine resources.
func (g *Game) Unload() {
	g.engine.Teardown()
	if err := g.output.Close(); err != nil {
		slog.Error("closing output", "error", err)
	}
}
