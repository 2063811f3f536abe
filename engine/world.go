package engine

import (
	"github.com/lixenwraith/wrapshot/input"
	"github.com/lixenwraith/wrapshot/vmath"
)

// System is one simulation stage. Stages run synchronously in ascending
// Priority order within a tick; data flows forward only
type System interface {
	Update(w *World)
	Priority() int // Lower values run first
}

// World is the shared state the stages operate on within a tick. The store
// is the only shared mutable resource; each stage touches only the fields
// its phase owns (physics: movement, collision: read-only event emission,
// resolution: lifecycle and score, director: spawning and scheduling).
type World struct {
	Store *Store
	Rng   *vmath.FastRand

	// Intent is this tick's input snapshot
	Intent input.Snapshot

	// Events is the collision stage's output, consumed by resolution
	Events []CollisionEvent

	Score      int64
	WaveNumber int

	// Director scheduling state
	SaucerSpawnTicks int
	WavePauseTicks   int
	WavePending      bool

	// Signals for the state machine, raised by resolution
	ShipDown bool // ship lost a life this tick, respawn pending
	GameOver bool // lives exhausted

	// Respawning is set by the state machine while the ship waits to be
	// placed back on the field. It covers the tick where the respawn timer
	// reaches zero but placement has not happened yet
	Respawning bool
}

func NewWorld(seed uint64) *World {
	return &World{
		Store:  NewStore(),
		Rng:    vmath.NewFastRand(seed),
		Events: make([]CollisionEvent, 0, 64),
	}
}

// BeginTick clears the per-tick scratch state
func (w *World) BeginTick(intent input.Snapshot) {
	w.Intent = intent
	w.Events = w.Events[:0]
	w.ShipDown = false
}
