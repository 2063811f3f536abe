// @focus: #constants { world }
package constants

import "github.com/lixenwraith/wrapshot/vmath"

// Simulation Clock
const (
	// TickRate is the number of fixed simulation steps per second
	TickRate = 60

	// TickDelta is the fixed per-tick time delta in Q32.32 seconds
	TickDelta = vmath.Scale / TickRate
)

// World Geometry
const (
	// WorldWidth and WorldHeight are the toroidal world bounds in cells
	WorldWidth  = 800
	WorldHeight = 600

	// WorldEdge is the shorter world dimension; entity sizes and speeds are
	// proportions of it, matching the classic screen-edge scaling
	WorldEdge = 600
)

// Q32.32 world bounds
var (
	WorldWidthQ  = vmath.FromInt(WorldWidth)
	WorldHeightQ = vmath.FromInt(WorldHeight)
)
