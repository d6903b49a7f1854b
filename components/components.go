// Package components defines ECS components for the simulation.
package components

// Position represents an entity's world position.
type Position struct {
	X, Y float32
}

// Velocity represents an entity's velocity.
type Velocity struct {
	X, Y float32
}

// Body holds an agent's physical extent. Size is the disc diameter.
type Body struct {
	Size float32
}

// Combatant holds battle-relevant agent data.
type Combatant struct {
	ID    uint32
	Color Color
}
