// @focus: #constants { ship }
package constants

import "github.com/lixenwraith/wrapshot/vmath"

// Ship Movement
var (
	// ShipRadius is the collision radius in cells
	ShipRadius = vmath.FromFloat(7.5)

	// ShipThrust is acceleration along heading in cells/sec²
	ShipThrust = vmath.FromInt(650)

	// ShipMaxSpeed caps velocity magnitude in cells/sec
	ShipMaxSpeed = vmath.FromInt(1080)

	// ShipDragFactor multiplies velocity every tick so the ship coasts to a
	// stop when thrust is off
	ShipDragFactor = vmath.FromFloat(0.99)

	// ShipTurnRate is rotation speed in turns/sec (Scale = full rotation)
	ShipTurnRate = vmath.FromFloat(0.955)

	// ShipMuzzleSpeed is bullet speed relative to the ship in cells/sec
	ShipMuzzleSpeed = vmath.FromInt(360)

	// ShipNoseOffset is the distance from center to the gun muzzle
	ShipNoseOffset = vmath.FromInt(20)
)

// Ship Lifecycle
const (
	// StartingLives is the life count at the beginning of a game
	StartingLives = 3

	// ExtraLifeScore grants one life each time the score crosses a multiple
	ExtraLifeScore = 10000

	// ShipFireCooldownTicks is the minimum tick gap between player shots
	ShipFireCooldownTicks = 12

	// PlayerBulletTTLTicks is the lifetime of a player bullet
	PlayerBulletTTLTicks = 50

	// RespawnDelayTicks is how long the ship stays hidden after losing a life
	RespawnDelayTicks = 120

	// RespawnShieldTicks is the invulnerability window after respawn
	RespawnShieldTicks = 120

	// RespawnMaxAttempts bounds placement retries before a risky respawn
	// location is accepted anyway; the respawn must always complete
	RespawnMaxAttempts = 8
)

// Hyperspace
const (
	// HyperspaceCooldownTicks is the recharge period between jumps
	HyperspaceCooldownTicks = 300

	// HyperspaceShieldTicks is the short post-teleport invulnerability window;
	// the destination is deliberately not checked for safety
	HyperspaceShieldTicks = 30
)

// RespawnSafeRadius is the clearance required around the respawn point
var RespawnSafeRadius = vmath.FromInt(100)
