package input

// Aggregator folds discrete host input events into a per-tick Snapshot.
// Held controls (turn, thrust) track key-down/key-up pairs; trigger controls
// (fire, hyperspace, start) latch on press and clear when a snapshot is
// taken, so a press between ticks is never lost and never double-counted.
type Aggregator struct {
	turnLeft  bool
	turnRight bool
	thrust    bool

	fireLatch  bool
	hyperLatch bool
	startLatch bool

	aimActive  bool
	aimX, aimY int64
}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// SetTurnLeft tracks the held state of the left-turn control
func (a *Aggregator) SetTurnLeft(down bool) { a.turnLeft = down }

// SetTurnRight tracks the held state of the right-turn control
func (a *Aggregator) SetTurnRight(down bool) { a.turnRight = down }

// SetThrust tracks the held state of the thrust control
func (a *Aggregator) SetThrust(down bool) { a.thrust = down }

// PressFire latches a fire request until the next snapshot
func (a *Aggregator) PressFire() { a.fireLatch = true }

// PressHyperspace latches a hyperspace request until the next snapshot
func (a *Aggregator) PressHyperspace() { a.hyperLatch = true }

// PressStart latches a start/restart request until the next snapshot
func (a *Aggregator) PressStart() { a.startLatch = true }

// SetAim points the ship toward a world position (mouse/touch steering)
func (a *Aggregator) SetAim(x, y int64) {
	a.aimActive = true
	a.aimX, a.aimY = x, y
}

// ClearAim returns steering control to the turn flags
func (a *Aggregator) ClearAim() {
	a.aimActive = false
}

// Snapshot produces the intent snapshot for one tick and clears the
// one-shot latches. Held controls persist across snapshots
func (a *Aggregator) Snapshot() Snapshot {
	s := Snapshot{
		TurnLeft:   a.turnLeft,
		TurnRight:  a.turnRight,
		Thrust:     a.thrust,
		Fire:       a.fireLatch,
		Hyperspace: a.hyperLatch,
		Start:      a.startLatch,
		AimActive:  a.aimActive,
		AimX:       a.aimX,
		AimY:       a.aimY,
	}

	a.fireLatch = false
	a.hyperLatch = false
	a.startLatch = false

	return s
}

// Reset drops all held and latched state, for a new game
func (a *Aggregator) Reset() {
	*a = Aggregator{}
}
