// Package engine implements the frame-driven battle simulation: agent
// motion under the cyclic force field, arena containment, collision
// battles with population growth, transient effect particles, and the
// win condition. It owns all simulation state; the host only observes
// it through lifecycle calls and the end-of-run callback.
package engine

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/trichrome/components"
	"github.com/pthm-cable/trichrome/config"
	"github.com/pthm-cable/trichrome/systems"
	"github.com/pthm-cable/trichrome/telemetry"
)

// RunState is the engine lifecycle state.
type RunState uint8

const (
	StateIdle    RunState = iota // no agents, not advancing
	StateRunning                 // advancing every frame
	StateWon                     // terminal, a winner has been determined
)

// String returns the state name.
func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateWon:
		return "won"
	}
	return "unknown"
}

// Options configures a new engine.
type Options struct {
	Seed      int64
	Scheduler Scheduler
	// OnEnd is invoked exactly once per run when a single color remains.
	OnEnd func(winner components.Color)
	// OnStats receives windowed telemetry while the run advances.
	OnStats func(telemetry.WindowStats)
	// Surface dimensions in pixels.
	SurfaceW, SurfaceH float32
}

// pairAgent is a per-frame snapshot entry for the collision scan.
// Component pointers stay valid for the whole scan because structural
// changes are deferred until after it.
type pairAgent struct {
	entity  ecs.Entity
	pos     *components.Position
	vel     *components.Velocity
	body    *components.Body
	com     *components.Combatant
	removed bool
}

// birth queues a clone spawn produced during the collision scan.
type birth struct {
	x, y, vx, vy float32
	color        components.Color
}

// Engine owns the agent collection, transient particles, arena config
// and run state, and advances them once per scheduled frame.
type Engine struct {
	world *ecs.World
	rng   *rand.Rand
	sched Scheduler

	onEnd   func(components.Color)
	onStats func(telemetry.WindowStats)

	agentMapper *ecs.Map4[components.Position, components.Velocity, components.Body, components.Combatant]
	agentFilter *ecs.Filter4[components.Position, components.Velocity, components.Body, components.Combatant]
	posMap      *ecs.Map1[components.Position]
	comMap      *ecs.Map1[components.Combatant]

	grid      *systems.SpatialGrid
	particles *systems.ParticleSystem
	collector *telemetry.Collector
	arena     systems.Arena

	// Forced arena selection; nil means random per run.
	forcedShape *systems.ArenaShape
	forcedSize  *systems.ArenaSize

	state  RunState
	tick   int32
	nextID uint32
	counts [components.NumColors]int
	winner components.Color

	surfaceW, surfaceH float32

	// Scratch buffers reused across ticks.
	neighbors []systems.Neighbor
	pairs     []pairAgent
	births    []birth
}

// New creates an engine attached to the given scheduler, surface
// dimensions and callbacks. Config must be initialized.
func New(opts Options) *Engine {
	cfg := config.Cfg()

	e := &Engine{
		world:    ecs.NewWorld(),
		rng:      rand.New(rand.NewSource(opts.Seed)),
		sched:    opts.Scheduler,
		onEnd:    opts.OnEnd,
		onStats:  opts.OnStats,
		surfaceW: opts.SurfaceW,
		surfaceH: opts.SurfaceH,
	}

	e.agentMapper = ecs.NewMap4[components.Position, components.Velocity, components.Body, components.Combatant](e.world)
	e.agentFilter = ecs.NewFilter4[components.Position, components.Velocity, components.Body, components.Combatant](e.world)
	e.posMap = ecs.NewMap1[components.Position](e.world)
	e.comMap = ecs.NewMap1[components.Combatant](e.world)

	e.grid = systems.NewSpatialGrid(e.surfaceW, e.surfaceH, cfg.Derived.CellSize)
	e.particles = systems.NewParticleSystem(cfg.Particles.Max, float32(cfg.Particles.Gravity), float32(cfg.Particles.Damping))
	e.collector = telemetry.NewCollector(cfg.Telemetry.StatsWindow, 1.0/float32(cfg.Screen.TargetFPS))

	// A forced arena from config becomes the initial override.
	if shape, ok := systems.ParseShape(cfg.Arena.Shape); ok {
		e.forcedShape = &shape
	}
	if size, ok := systems.ParseSize(cfg.Arena.Size); ok {
		e.forcedSize = &size
	}

	// Resolve a default arena so the host can draw something sensible
	// before the first run starts.
	e.arena = systems.Arena{Shape: systems.ShapeSquare, Size: systems.SizeLarge}
	e.arena.Resolve(e.surfaceW, e.surfaceH, float32(cfg.Arena.BaseFraction))

	return e
}

func (e *Engine) config() *config.Config {
	return config.Cfg()
}

// State returns the current lifecycle state.
func (e *Engine) State() RunState {
	return e.state
}

// Tick returns the current simulation tick.
func (e *Engine) Tick() int32 {
	return e.tick
}

// Winner returns the winning color; valid only in StateWon.
func (e *Engine) Winner() components.Color {
	return e.winner
}

// Arena returns the current arena geometry.
func (e *Engine) Arena() *systems.Arena {
	return &e.arena
}

// Counts returns the live agent count per color, indexed by Color.
func (e *Engine) Counts() [components.NumColors]int {
	return e.counts
}

// TotalAgents returns the total live agent count.
func (e *Engine) TotalAgents() int {
	total := 0
	for _, c := range e.counts {
		total += c
	}
	return total
}

// Particles exposes the live effect particles for rendering.
func (e *Engine) Particles() []systems.EffectParticle {
	return e.particles.Particles
}

// VisitAgents calls fn for every live agent. Used by rendering and
// must not mutate engine state.
func (e *Engine) VisitAgents(fn func(pos components.Position, size float32, color components.Color)) {
	query := e.agentFilter.Query()
	for query.Next() {
		pos, _, body, com := query.Get()
		fn(*pos, body.Size, com.Color)
	}
}

// SetArena forces the given shape and size for subsequent runs.
func (e *Engine) SetArena(shape systems.ArenaShape, size systems.ArenaSize) {
	e.forcedShape = &shape
	e.forcedSize = &size
}

// SetShapeOverride forces only the shape; size selection is unaffected.
func (e *Engine) SetShapeOverride(shape systems.ArenaShape) {
	e.forcedShape = &shape
}

// ClearShapeOverride restores random shape selection.
func (e *Engine) ClearShapeOverride() {
	e.forcedShape = nil
}

// SetSizeOverride forces only the size class; shape selection is unaffected.
func (e *Engine) SetSizeOverride(size systems.ArenaSize) {
	e.forcedSize = &size
}

// ClearSizeOverride restores random size selection.
func (e *Engine) ClearSizeOverride() {
	e.forcedSize = nil
}

// ClearArenaOverride restores random arena selection for subsequent runs.
func (e *Engine) ClearArenaOverride() {
	e.forcedShape = nil
	e.forcedSize = nil
}

// Resize recomputes the arena pixel extents for a new surface size.
// Shape, size class and all agent/particle state are unaffected.
func (e *Engine) Resize(surfaceW, surfaceH float32) {
	cfg := e.config()
	e.surfaceW = surfaceW
	e.surfaceH = surfaceH
	e.arena.Resolve(surfaceW, surfaceH, float32(cfg.Arena.BaseFraction))
	e.grid = systems.NewSpatialGrid(surfaceW, surfaceH, cfg.Derived.CellSize)
}
