package engine

import (
	"log/slog"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/trichrome/components"
	"github.com/pthm-cable/trichrome/systems"
)

// Start begins a new run: picks the arena, seeds the three
// populations and schedules the first frame. A no-op while a run is
// already in progress.
func (e *Engine) Start() {
	if e.state == StateRunning {
		slog.Warn("start ignored, run in progress", "tick", e.tick)
		return
	}

	cfg := e.config()

	e.clearAgents()
	e.particles.Clear()
	e.tick = 0
	e.winner = 0
	e.collector.Reset()

	shape, size := systems.RandomArena(e.rng)
	if e.forcedShape != nil {
		shape = *e.forcedShape
	}
	if e.forcedSize != nil {
		size = *e.forcedSize
	}
	e.arena = systems.Arena{Shape: shape, Size: size}
	e.arena.Resolve(e.surfaceW, e.surfaceH, float32(cfg.Arena.BaseFraction))

	e.seedPopulations()

	e.state = StateRunning
	slog.Info("run started",
		"arena", e.arena.Label(),
		"per_color", cfg.Population.PerColor,
		"total", e.TotalAgents(),
	)
	e.sched.Schedule(e.step)
}

// Reset aborts the current run and clears to idle. Any scheduled tick
// is cancelled and will not execute further engine logic.
func (e *Engine) Reset() {
	e.sched.Cancel()
	e.clearAgents()
	e.particles.Clear()
	e.tick = 0
	e.winner = 0
	e.state = StateIdle
}

// Teardown releases the engine on shutdown. Equivalent to Reset for
// this core; kept separate so hosts can hook resource cleanup.
func (e *Engine) Teardown() {
	e.Reset()
}

// seedPopulations creates the three color groups. Anchors sit near the
// top edge and the two bottom corners so initial encounters are
// symmetric; members scatter uniformly within the spread radius.
func (e *Engine) seedPopulations() {
	cfg := e.config()
	spread := float32(cfg.Population.SpreadRadius)
	cruise := float32(cfg.Physics.CruiseSpeed)
	half := float32(cfg.Agent.Size) / 2

	insetX := e.arena.W * 0.28
	insetY := e.arena.H * 0.30
	anchors := [components.NumColors][2]float32{
		{e.arena.CX, e.arena.CY - insetY},          // top center
		{e.arena.CX - insetX, e.arena.CY + insetY}, // bottom left
		{e.arena.CX + insetX, e.arena.CY + insetY}, // bottom right
	}

	for i, color := range components.AllColors() {
		ax, ay := anchors[i][0], anchors[i][1]
		for j := 0; j < cfg.Population.PerColor; j++ {
			// Uniform scatter over the disc of the spread radius.
			ang := e.rng.Float64() * 2 * math.Pi
			rad := spread * float32(math.Sqrt(e.rng.Float64()))
			x := ax + float32(math.Cos(ang))*rad
			y := ay + float32(math.Sin(ang))*rad
			x, y = e.arena.Clamp(x, y, half)

			heading := e.rng.Float64() * 2 * math.Pi
			vx := float32(math.Cos(heading)) * cruise
			vy := float32(math.Sin(heading)) * cruise

			e.spawnAgent(x, y, vx, vy, color)
		}
	}
}

// spawnAgent creates one agent and updates the population counts.
func (e *Engine) spawnAgent(x, y, vx, vy float32, color components.Color) ecs.Entity {
	cfg := e.config()

	id := e.nextID
	e.nextID++

	pos := components.Position{X: x, Y: y}
	vel := components.Velocity{X: vx, Y: vy}
	body := components.Body{Size: float32(cfg.Agent.Size)}
	com := components.Combatant{ID: id, Color: color}

	entity := e.agentMapper.NewEntity(&pos, &vel, &body, &com)
	e.counts[color]++
	return entity
}

// clearAgents removes every agent from the world.
func (e *Engine) clearAgents() {
	// First pass: collect (must complete before structural changes).
	var toRemove []ecs.Entity
	query := e.agentFilter.Query()
	for query.Next() {
		toRemove = append(toRemove, query.Entity())
	}
	for _, entity := range toRemove {
		e.world.RemoveEntity(entity)
	}
	e.counts = [components.NumColors]int{}
}
