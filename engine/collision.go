package engine

import (
	"github.com/lixenwraith/wrapshot/constants"
	"github.com/lixenwraith/wrapshot/vmath"
)

// PairKind classifies a collision event for the resolution stage
type PairKind uint8

const (
	PairShipAsteroid PairKind = iota
	PairShipSaucer
	PairShipSaucerBullet
	PairPlayerBulletAsteroid
	PairPlayerBulletSaucer
	PairSaucerBulletAsteroid
)

// CollisionEvent references two entities by store index. Indices are stable
// within a tick: nothing is compacted until the tick boundary, and appends
// never reorder
type CollisionEvent struct {
	A, B int
	Pair PairKind
}

// CollisionSystem runs the pairwise intersection tests. Only the six pair
// classes above are tested; everything else is skipped. The stage is
// read-only with respect to entity state and only emits events.
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Priority() int {
	return 20
}

func (s *CollisionSystem) Update(w *World) {
	st := w.Store

	shipIdx := st.ShipIndex()
	shipCollidable := false
	if shipIdx >= 0 {
		ship := st.At(shipIdx)
		// Invulnerability and the respawn window suppress all ship
		// collisions; the ship still renders and moves
		shipCollidable = !ship.Ship.Hidden() && ship.Ship.InvulnTicks == 0 && !w.Respawning
	}

	// Ship against asteroids and saucers
	if shipCollidable {
		ship := st.At(shipIdx)
		for i := 0; i < st.Len(); i++ {
			e := st.At(i)
			if !e.Alive {
				continue
			}
			var pair PairKind
			switch e.Kind {
			case KindAsteroid:
				pair = PairShipAsteroid
			case KindSaucer:
				pair = PairShipSaucer
			default:
				continue
			}
			if intersects(ship, e) {
				w.Events = append(w.Events, CollisionEvent{A: shipIdx, B: i, Pair: pair})
			}
		}
	}

	// Bullets: each bullet registers at most one collision per tick; the
	// first match in ascending creation order wins
	for b := 0; b < st.Len(); b++ {
		bullet := st.At(b)
		if !bullet.Alive || bullet.Kind != KindBullet {
			continue
		}

		for t := 0; t < st.Len(); t++ {
			target := st.At(t)
			if !target.Alive {
				continue
			}

			var pair PairKind
			var a, bIdx int
			switch {
			case bullet.Bullet.Owner == PlayerFired && target.Kind == KindAsteroid:
				pair, a, bIdx = PairPlayerBulletAsteroid, b, t
			case bullet.Bullet.Owner == PlayerFired && target.Kind == KindSaucer:
				pair, a, bIdx = PairPlayerBulletSaucer, b, t
			case bullet.Bullet.Owner == SaucerFired && target.Kind == KindAsteroid:
				pair, a, bIdx = PairSaucerBulletAsteroid, b, t
			case bullet.Bullet.Owner == SaucerFired && target.Kind == KindShip && shipCollidable:
				pair, a, bIdx = PairShipSaucerBullet, t, b
			default:
				continue
			}

			if intersects(bullet, target) {
				w.Events = append(w.Events, CollisionEvent{A: a, B: bIdx, Pair: pair})
				break
			}
		}
	}
}

// intersects tests wrapped circle-circle overlap in toroidal space
func intersects(a, b *Entity) bool {
	return vmath.CirclesIntersect(
		a.PosX, a.PosY, a.Radius,
		b.PosX, b.PosY, b.Radius,
		constants.WorldWidthQ, constants.WorldHeightQ,
	)
}
