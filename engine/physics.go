package engine

import (
	"github.com/lixenwraith/wrapshot/constants"
	"github.com/lixenwraith/wrapshot/vmath"
)

// PhysicsSystem advances movement for one fixed tick: integration, toroidal
// wraparound, ship thrust/drag, saucer drift steering, and timer decrements.
// It never creates or destroys entities except for time-to-live expiry.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (s *PhysicsSystem) Priority() int {
	return 10
}

func (s *PhysicsSystem) Update(w *World) {
	if w.SaucerSpawnTicks > 0 {
		w.SaucerSpawnTicks--
	}

	for i := 0; i < w.Store.Len(); i++ {
		e := w.Store.At(i)
		if !e.Alive {
			continue
		}

		switch e.Kind {
		case KindShip:
			s.updateShip(w, e)
		case KindSaucer:
			s.updateSaucer(w, e)
		default:
			s.integrate(e)
		}

		// Lifetime expiry marks dead; the store compacts at the tick boundary
		if e.TTL > 0 {
			e.TTL--
			if e.TTL == 0 {
				e.Alive = false
			}
		}
	}
}

// integrate applies one tick of linear and angular motion with wraparound
func (s *PhysicsSystem) integrate(e *Entity) {
	e.PosX = vmath.WrapCoord(e.PosX+vmath.Mul(e.VelX, constants.TickDelta), constants.WorldWidthQ)
	e.PosY = vmath.WrapCoord(e.PosY+vmath.Mul(e.VelY, constants.TickDelta), constants.WorldHeightQ)
	e.Rot = vmath.WrapCoord(e.Rot+vmath.Mul(e.Spin, constants.TickDelta), vmath.Scale)
}

func (s *PhysicsSystem) updateShip(w *World, e *Entity) {
	ship := &e.Ship

	if ship.InvulnTicks > 0 {
		ship.InvulnTicks--
	}
	if ship.FireCooldown > 0 {
		ship.FireCooldown--
	}
	if ship.HyperCooldown > 0 {
		ship.HyperCooldown--
	}

	if ship.Hidden() {
		// Frozen off the field; only the respawn timer advances
		ship.RespawnTicks--
		ship.Thrusting = false
		return
	}

	// Steering: aim target overrides the turn flags
	turnStep := vmath.Mul(constants.ShipTurnRate, constants.TickDelta)
	if w.Intent.AimActive {
		target := w.Intent.AimAngle(e.PosX, e.PosY, constants.WorldWidthQ, constants.WorldHeightQ)
		diff := vmath.WrapDelta(e.Rot, target, vmath.Scale)
		e.Rot += vmath.Clamp(diff, -turnStep, turnStep)
	} else {
		e.Rot += int64(w.Intent.Turn()) * turnStep
	}
	e.Rot = vmath.WrapCoord(e.Rot, vmath.Scale)

	// Thrust along heading, capped; drag applies every tick so the ship
	// coasts to a stop when idle
	ship.Thrusting = w.Intent.Thrust
	if ship.Thrusting {
		dirX, dirY := vmath.AngleVector(e.Rot)
		accel := vmath.Mul(constants.ShipThrust, constants.TickDelta)
		e.VelX += vmath.Mul(dirX, accel)
		e.VelY += vmath.Mul(dirY, accel)
	}
	e.VelX = vmath.Mul(e.VelX, constants.ShipDragFactor)
	e.VelY = vmath.Mul(e.VelY, constants.ShipDragFactor)
	e.VelX, e.VelY = vmath.ClampMagnitude(e.VelX, e.VelY, constants.ShipMaxSpeed)

	e.PosX = vmath.WrapCoord(e.PosX+vmath.Mul(e.VelX, constants.TickDelta), constants.WorldWidthQ)
	e.PosY = vmath.WrapCoord(e.PosY+vmath.Mul(e.VelY, constants.TickDelta), constants.WorldHeightQ)
}

func (s *PhysicsSystem) updateSaucer(w *World, e *Entity) {
	saucer := &e.Saucer

	if saucer.FireTicks > 0 {
		saucer.FireTicks--
	}

	saucer.SteerTicks--
	if saucer.SteerTicks <= 0 {
		saucer.SteerTicks = constants.SaucerSteerTicks

		// Occasional bounded course change, ±10 degrees
		if w.Rng.Chance(constants.SaucerSteerChance) {
			saucer.Heading += w.Rng.Range(-constants.SaucerSteerMaxTurn, constants.SaucerSteerMaxTurn)
			saucer.Heading = vmath.WrapCoord(saucer.Heading, vmath.Scale)

			speed := constants.SaucerLargeSpeed
			if saucer.Class == SaucerSmall {
				speed = constants.SaucerSmallSpeed
			}
			dirX, dirY := vmath.AngleVector(saucer.Heading)
			e.VelX = vmath.Mul(dirX, speed)
			e.VelY = vmath.Mul(dirY, speed)
		}
	}

	s.integrate(e)
}
