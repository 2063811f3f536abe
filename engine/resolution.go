package engine

import (
	"fmt"

	"github.com/lixenwraith/wrapshot/constants"
	"github.com/lixenwraith/wrapshot/vmath"
)

// ResolutionSystem consumes the tick's collision events and input intents
// and applies every state mutation: asteroid splits, destruction, scoring,
// life loss, bullet fire, hyperspace. It is the sole mutator of lives and
// score, and with the director the only creator of entities.
type ResolutionSystem struct{}

func NewResolutionSystem() *ResolutionSystem {
	return &ResolutionSystem{}
}

func (s *ResolutionSystem) Priority() int {
	return 30
}

func (s *ResolutionSystem) Update(w *World) {
	scoreBefore := w.Score

	for _, ev := range w.Events {
		switch ev.Pair {
		case PairShipAsteroid:
			s.resolveShipHit(w, ev.A)
		case PairShipSaucer:
			s.destroySaucer(w, ev.B)
			s.resolveShipHit(w, ev.A)
		case PairShipSaucerBullet:
			if w.Store.At(ev.B).Alive {
				w.Store.MarkDead(ev.B)
				s.resolveShipHit(w, ev.A)
			}
		case PairPlayerBulletAsteroid, PairSaucerBulletAsteroid:
			s.resolveBulletAsteroid(w, ev.A, ev.B)
		case PairPlayerBulletSaucer:
			if w.Store.At(ev.A).Alive && w.Store.At(ev.B).Alive {
				w.Store.MarkDead(ev.A)
				s.destroySaucer(w, ev.B)
			}
		}
	}

	s.resolveIntents(w)

	// One extra life each time the score crosses a multiple of the threshold
	if w.Score/constants.ExtraLifeScore > scoreBefore/constants.ExtraLifeScore {
		if idx := w.Store.ShipIndex(); idx >= 0 {
			w.Store.At(idx).Ship.Lives++
		}
	}
}

// resolveShipHit applies one life loss. Multiple ship events in the same
// tick collapse to a single loss via the ShipDown guard
func (s *ResolutionSystem) resolveShipHit(w *World, shipIdx int) {
	if w.ShipDown || w.GameOver {
		return
	}
	ship := w.Store.At(shipIdx)
	if !ship.Alive || ship.Ship.Hidden() || ship.Ship.InvulnTicks > 0 {
		return
	}

	x, y := ship.PosX, ship.PosY
	SpawnRadialBurst(w.Store, w.Rng, x, y, constants.BurstShipRadial)
	SpawnDebrisBurst(w.Store, w.Rng, x, y, constants.BurstShipDebris)

	ship = w.Store.At(shipIdx) // re-fetch, spawning may grow the arena
	ship.Ship.Lives--
	if ship.Ship.Lives <= 0 {
		ship.Ship.Lives = 0
		ship.Alive = false
		w.GameOver = true
		return
	}

	ship.Ship.RespawnTicks = constants.RespawnDelayTicks
	ship.VelX, ship.VelY = 0, 0
	ship.Ship.Thrusting = false
	w.ShipDown = true
}

// resolveBulletAsteroid destroys the bullet, splits or destroys the
// asteroid, and awards points by size class
func (s *ResolutionSystem) resolveBulletAsteroid(w *World, bulletIdx, asteroidIdx int) {
	if !w.Store.At(bulletIdx).Alive || !w.Store.At(asteroidIdx).Alive {
		return
	}

	ast := w.Store.At(asteroidIdx)
	size := ast.Asteroid.Size
	x, y := ast.PosX, ast.PosY
	velX, velY := ast.VelX, ast.VelY

	w.Store.MarkDead(bulletIdx)
	w.Store.MarkDead(asteroidIdx)
	w.Score += constants.AsteroidPoints[size]

	switch size {
	case SizeLarge:
		SpawnRadialBurst(w.Store, w.Rng, x, y, constants.BurstAsteroidLarge)
	case SizeMedium:
		SpawnRadialBurst(w.Store, w.Rng, x, y, constants.BurstAsteroidMed)
	case SizeSmall:
		SpawnRadialBurst(w.Store, w.Rng, x, y, constants.BurstAsteroidSmall)
	}

	if size != SizeSmall {
		splitAsteroid(w, size-1, x, y, velX, velY)
	}
}

// splitAsteroid spawns the two next-smaller children at the parent position.
// Child velocity is the parent velocity plus a random kick at the child
// class's scaled speed, capped so the pieces never carry runaway energy
func splitAsteroid(w *World, childSize AsteroidSize, x, y, velX, velY int64) {
	if childSize >= SizeLarge {
		panic(fmt.Sprintf("splitAsteroid: invalid child size %d", childSize))
	}

	mult := WaveSpeedMult(w.WaveNumber)
	childSpeed := vmath.Mul(constants.AsteroidBaseSpeed[childSize], mult)
	speedCap := vmath.Mul(childSpeed, constants.SplitSpeedCapFactor)

	for c := 0; c < constants.SplitChildCount; c++ {
		child := NewAsteroidAt(childSize, x, y, mult, w.Rng)
		dirX, dirY := vmath.AngleVector(w.Rng.Angle())
		child.VelX = velX + vmath.Mul(dirX, childSpeed)
		child.VelY = velY + vmath.Mul(dirY, childSpeed)
		child.VelX, child.VelY = vmath.ClampMagnitude(child.VelX, child.VelY, speedCap)
		w.Store.Spawn(child)
	}
}

// destroySaucer marks a saucer dead, awards points, and bursts particles
func (s *ResolutionSystem) destroySaucer(w *World, saucerIdx int) {
	saucer := w.Store.At(saucerIdx)
	if !saucer.Alive {
		return
	}

	x, y := saucer.PosX, saucer.PosY
	if saucer.Saucer.Class == SaucerSmall {
		w.Score += constants.SaucerSmallPoints
	} else {
		w.Score += constants.SaucerLargePoints
	}

	w.Store.MarkDead(saucerIdx)
	SpawnRadialBurst(w.Store, w.Rng, x, y, constants.BurstSaucerRadial)
	SpawnDebrisBurst(w.Store, w.Rng, x, y, constants.BurstSaucerDebris)
}

// resolveIntents handles fire, hyperspace, and exhaust for a visible ship
func (s *ResolutionSystem) resolveIntents(w *World) {
	shipIdx := w.Store.ShipIndex()
	if shipIdx < 0 {
		return
	}
	ship := w.Store.At(shipIdx)
	if ship.Ship.Hidden() || w.Respawning {
		return
	}

	// Exhaust trail while thrusting
	if ship.Ship.Thrusting {
		dirX, dirY := vmath.AngleVector(ship.Rot)
		ex := ship.PosX - vmath.Mul(dirX, ship.Radius)
		ey := ship.PosY - vmath.Mul(dirY, ship.Radius)
		back := vmath.WrapCoord(ship.Rot+vmath.Scale/2, vmath.Scale)
		SpawnConeBurst(w.Store, w.Rng, ex, ey, back, constants.ExhaustSpread, 1)
		ship = w.Store.At(shipIdx)
	}

	if w.Intent.Fire && ship.Ship.FireCooldown == 0 {
		dirX, dirY := vmath.AngleVector(ship.Rot)
		bx := vmath.WrapCoord(ship.PosX+vmath.Mul(dirX, constants.ShipNoseOffset), constants.WorldWidthQ)
		by := vmath.WrapCoord(ship.PosY+vmath.Mul(dirY, constants.ShipNoseOffset), constants.WorldHeightQ)
		velX := ship.VelX + vmath.Mul(dirX, constants.ShipMuzzleSpeed)
		velY := ship.VelY + vmath.Mul(dirY, constants.ShipMuzzleSpeed)

		w.Store.Spawn(NewBullet(PlayerFired, bx, by, velX, velY))
		ship = w.Store.At(shipIdx)
		ship.Ship.FireCooldown = constants.ShipFireCooldownTicks
	}

	if w.Intent.Hyperspace && ship.Ship.HyperCooldown == 0 {
		oldX, oldY := ship.PosX, ship.PosY
		newX := w.Rng.Range(0, constants.WorldWidthQ)
		newY := w.Rng.Range(0, constants.WorldHeightQ)

		// The arrival point is deliberately unchecked: hyperspace keeps its
		// arcade self-risk
		SpawnRingBurst(w.Store, w.Rng, oldX, oldY, constants.HyperspaceRingRadius, constants.HyperspaceRingCount)
		SpawnRingBurst(w.Store, w.Rng, newX, newY, constants.HyperspaceRingRadius, constants.HyperspaceRingCount)

		ship = w.Store.At(shipIdx)
		ship.PosX, ship.PosY = newX, newY
		ship.Ship.HyperCooldown = constants.HyperspaceCooldownTicks
		if ship.Ship.InvulnTicks < constants.HyperspaceShieldTicks {
			ship.Ship.InvulnTicks = constants.HyperspaceShieldTicks
		}
	}
}
