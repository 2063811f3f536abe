package input

import "github.com/lixenwraith/wrapshot/vmath"

// Snapshot is the per-tick summary of player-desired actions, decoupled from
// raw device events. The host translates key/mouse/touch input into one
// Snapshot before each tick; the simulation never sees device codes.
// Pure data struct with no function pointers or engine dependencies
type Snapshot struct {
	TurnLeft   bool
	TurnRight  bool
	Thrust     bool
	Fire       bool
	Hyperspace bool
	Start      bool // start a game from Ready, or restart from GameOver

	// Optional aim target in world cells (Q32.32); when set, steering is
	// derived from the angle to the target instead of the turn flags
	AimActive  bool
	AimX, AimY int64
}

// Turn resolves the steering flags into -1 (left), 0, or +1 (right).
// Conflicting simultaneous signals cancel rather than reject
func (s Snapshot) Turn() int {
	switch {
	case s.TurnLeft && s.TurnRight:
		return 0
	case s.TurnLeft:
		return -1
	case s.TurnRight:
		return 1
	}
	return 0
}

// AimAngle returns the world-space angle toward the aim target from (x, y)
// on a toroidal world, in Q32.32 turns
func (s Snapshot) AimAngle(x, y, w, h int64) int64 {
	dx := vmath.WrapDelta(x, s.AimX, w)
	dy := vmath.WrapDelta(y, s.AimY, h)
	return vmath.Atan2(dy, dx)
}
