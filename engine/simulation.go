package engine

import (
	"log/slog"
	"math"

	"github.com/pthm-cable/trichrome/components"
	"github.com/pthm-cable/trichrome/systems"
)

// step advances the simulation one frame. Phase order matters: later
// phases read the results of earlier ones.
func (e *Engine) step() {
	if e.state != StateRunning {
		return
	}

	e.updateSpatialGrid()
	e.applyForceField()  // 1. chase prey, flee predator
	e.integrate()        // 2. Euler step
	e.containAgents()    // 3. arena boundary reflection
	e.particles.Update() // 4. transient visual particles
	e.resolveBattles()   // 5. collisions, battles, clone spawns
	e.tick++
	e.flushTelemetry()
	e.checkWin() // 6. terminal check, reschedule otherwise
}

// updateSpatialGrid rebuilds the neighbor index from current positions.
func (e *Engine) updateSpatialGrid() {
	e.grid.Clear()

	query := e.agentFilter.Query()
	for query.Next() {
		entity := query.Entity()
		pos, _, _, _ := query.Get()
		e.grid.Insert(entity, pos.X, pos.Y)
	}
}

// applyForceField accumulates pairwise contributions from other-colored
// agents within the interaction radius: attraction toward prey,
// repulsion from predators, linear falloff. Same-colored agents never
// contribute. The resulting velocity is clamped to bound runaway
// acceleration.
func (e *Engine) applyForceField() {
	cfg := e.config()
	radius := float32(cfg.Physics.InteractionRadius)
	maxForce := float32(cfg.Physics.MaxForce)
	maxSpeed := cfg.Derived.MaxSpeed

	query := e.agentFilter.Query()
	for query.Next() {
		entity := query.Entity()
		pos, vel, _, com := query.Get()

		e.neighbors = e.grid.QueryRadiusInto(e.neighbors[:0], pos.X, pos.Y, radius, entity, e.posMap)

		var fx, fy float32
		for _, n := range e.neighbors {
			other := e.comMap.Get(n.E)
			if other == nil || other.Color == com.Color {
				continue
			}
			if n.DistSq == 0 {
				// Exactly overlapping centers: no direction to push along.
				continue
			}
			dist := float32(math.Sqrt(float64(n.DistSq)))
			f := systems.Falloff(maxForce, dist, radius)
			if f == 0 {
				continue
			}
			nx := n.DX / dist
			ny := n.DY / dist
			if com.Color.Beats(other.Color) {
				fx += f * nx // prey ahead: chase
				fy += f * ny
			} else {
				fx -= f * nx // predator ahead: flee
				fy -= f * ny
			}
		}

		vel.X += fx
		vel.Y += fy
		vel.X, vel.Y = systems.ClampSpeed(vel.X, vel.Y, maxSpeed)
	}
}

// integrate applies one explicit Euler step per agent.
func (e *Engine) integrate() {
	query := e.agentFilter.Query()
	for query.Next() {
		pos, vel, _, _ := query.Get()
		pos.X += vel.X
		pos.Y += vel.Y
	}
}

// containAgents reflects agents that left the arena back inside.
func (e *Engine) containAgents() {
	query := e.agentFilter.Query()
	for query.Next() {
		pos, vel, body, _ := query.Get()
		e.arena.Contain(pos, vel, body.Size/2)
	}
}

// resolveBattles scans all unordered agent pairs, applies bounces and
// resolves battles. Removals and clone spawns are applied only after
// the full scan; pairs with an agent already marked for removal this
// frame are skipped.
func (e *Engine) resolveBattles() {
	cfg := e.config()

	// Snapshot the live agents. Component pointers stay valid because
	// no structural change happens until after the scan.
	e.pairs = e.pairs[:0]
	query := e.agentFilter.Query()
	for query.Next() {
		pos, vel, body, com := query.Get()
		e.pairs = append(e.pairs, pairAgent{
			entity: query.Entity(),
			pos:    pos,
			vel:    vel,
			body:   body,
			com:    com,
		})
	}

	e.births = e.births[:0]

	for i := range e.pairs {
		for j := i + 1; j < len(e.pairs); j++ {
			a := &e.pairs[i]
			b := &e.pairs[j]
			if a.removed || b.removed {
				continue
			}

			dx := b.pos.X - a.pos.X
			dy := b.pos.Y - a.pos.Y
			distSq := dx*dx + dy*dy
			sum := (a.body.Size + b.body.Size) / 2
			if distSq >= sum*sum {
				continue
			}

			// Same-color contacts pass through with no effect.
			if a.com.Color == b.com.Color {
				continue
			}

			dist := float32(math.Sqrt(float64(distSq)))
			if dist == 0 {
				// No derivable collision normal; skip this pair this frame.
				continue
			}
			nx := dx / dist
			ny := dy / dist

			midX := (a.pos.X + b.pos.X) / 2
			midY := (a.pos.Y + b.pos.Y) / 2

			// Elastic-style bounce: reflect directions, keep each
			// agent's own speed, then push both out of the overlap.
			a.vel.X, a.vel.Y = systems.ReflectPreserveSpeed(a.vel.X, a.vel.Y, nx, ny)
			b.vel.X, b.vel.Y = systems.ReflectPreserveSpeed(b.vel.X, b.vel.Y, nx, ny)

			overlap := systems.DiscOverlap(dist, a.body.Size, b.body.Size)
			a.pos.X -= nx * overlap / 2
			a.pos.Y -= ny * overlap / 2
			b.pos.X += nx * overlap / 2
			b.pos.Y += ny * overlap / 2

			e.particles.EmitCollision(e.rng, midX, midY, a.com.Color, b.com.Color, cfg.Particles.CollisionBurst)

			winner, loser := a, b
			if b.com.Color.Beats(a.com.Color) {
				winner, loser = b, a
			}

			// The loser goes, the winner is retained unmodified and
			// splits off one clone. Total count is invariant.
			loser.removed = true
			e.queueClone(winner)
			e.particles.EmitSplit(e.rng, winner.pos.X, winner.pos.Y, winner.com.Color, cfg.Particles.SplitBurst)
			e.collector.RecordBattle(winner.com.Color, loser.com.Color)
		}
	}

	// Apply removals, then births.
	for i := range e.pairs {
		if e.pairs[i].removed {
			e.counts[e.pairs[i].com.Color]--
			e.world.RemoveEntity(e.pairs[i].entity)
		}
	}
	for _, nb := range e.births {
		half := float32(cfg.Agent.Size) / 2
		x, y := e.arena.Clamp(nb.x, nb.y, half)
		e.spawnAgent(x, y, nb.vx, nb.vy, nb.color)
	}
}

// queueClone queues a clone of the winner: nearby position, winner's
// velocity plus a small random jitter.
func (e *Engine) queueClone(winner *pairAgent) {
	cfg := e.config()
	offset := float32(cfg.Agent.SpawnOffset)
	jitter := float32(cfg.Agent.SpawnJitter)

	e.births = append(e.births, birth{
		x:     winner.pos.X + (e.rng.Float32()-0.5)*offset*2,
		y:     winner.pos.Y + (e.rng.Float32()-0.5)*offset*2,
		vx:    winner.vel.X + (e.rng.Float32()-0.5)*jitter*2,
		vy:    winner.vel.Y + (e.rng.Float32()-0.5)*jitter*2,
		color: winner.com.Color,
	})
}

// flushTelemetry emits window stats when the current window closes.
func (e *Engine) flushTelemetry() {
	if e.onStats == nil || !e.collector.ShouldFlush(e.tick) {
		return
	}

	var speeds []float64
	query := e.agentFilter.Query()
	for query.Next() {
		_, vel, _, _ := query.Get()
		speeds = append(speeds, math.Hypot(float64(vel.X), float64(vel.Y)))
	}

	e.onStats(e.collector.Flush(e.tick, e.counts, speeds))
}

// checkWin evaluates the win condition and either terminates the run
// or schedules the next frame.
func (e *Engine) checkWin() {
	alive := 0
	var last components.Color
	for _, color := range components.AllColors() {
		if e.counts[color] > 0 {
			alive++
			last = color
		}
	}

	switch alive {
	case 1:
		e.state = StateWon
		e.winner = last
		e.sched.Cancel()
		slog.Info("run won", "winner", last.String(), "tick", e.tick)
		if e.onEnd != nil {
			e.onEnd(last)
		}
	case 0:
		// Degenerate: every population eliminated in the same frame.
		// Stop without reporting a winner.
		e.sched.Cancel()
		e.state = StateIdle
		slog.Warn("all populations eliminated", "tick", e.tick)
	default:
		e.sched.Schedule(e.step)
	}
}
