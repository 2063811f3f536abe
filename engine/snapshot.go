package engine

import (
	"github.com/lixenwraith/wrapshot/constants"
	"github.com/lixenwraith/wrapshot/vmath"
)

// RenderVec is a float vertex offset in cells, relative to the entity center
type RenderVec struct {
	X, Y float64
}

// RenderEntity is a value copy of one visible entity, converted to floats
// for the presentation layer. Snapshots share nothing with the store; the
// host may hold them across ticks.
type RenderEntity struct {
	Kind   Kind
	X, Y   float64 // position in cells
	Rot    float64 // rotation in turns [0, 1)
	Radius float64

	// Verts is the polygon outline for asteroids and saucers, nil otherwise
	Verts []RenderVec

	// Ship-only flags
	Shield    bool
	Thrusting bool

	// Bullet-only tag
	Owner BulletOwner
}

func copyVerts(src []Point) []RenderVec {
	out := make([]RenderVec, len(src))
	for i, p := range src {
		out[i] = RenderVec{X: vmath.ToFloat(p.X), Y: vmath.ToFloat(p.Y)}
	}
	return out
}

// RenderState returns the visible entities as detached value copies. A ship
// waiting to respawn is omitted.
func (g *Game) RenderState() []RenderEntity {
	st := g.world.Store
	out := make([]RenderEntity, 0, st.Len())

	for i := 0; i < st.Len(); i++ {
		e := st.At(i)
		if !e.Alive {
			continue
		}

		re := RenderEntity{
			Kind:   e.Kind,
			X:      vmath.ToFloat(e.PosX),
			Y:      vmath.ToFloat(e.PosY),
			Rot:    vmath.ToFloat(e.Rot),
			Radius: vmath.ToFloat(e.Radius),
		}

		switch e.Kind {
		case KindShip:
			if e.Ship.Hidden() || g.world.Respawning {
				continue
			}
			re.Shield = e.Ship.InvulnTicks > 0
			re.Thrusting = e.Ship.Thrusting
		case KindAsteroid:
			re.Verts = copyVerts(e.Asteroid.Verts)
		case KindSaucer:
			re.Verts = copyVerts(e.Saucer.Verts)
		case KindBullet:
			re.Owner = e.Bullet.Owner
		}

		out = append(out, re)
	}
	return out
}

// HUD is the scoreboard snapshot
type HUD struct {
	Lives int
	Score int64
	Wave  int
	State State
}

// HUDState returns the current scoreboard values
func (g *Game) HUDState() HUD {
	hud := HUD{
		Score: g.world.Score,
		Wave:  g.world.WaveNumber,
		State: g.state,
	}

	if idx := g.world.Store.ShipIndex(); idx >= 0 {
		hud.Lives = g.world.Store.At(idx).Ship.Lives
	} else if g.state == StateReady {
		hud.Lives = g.startingLives
	}

	return hud
}

// Dimensions returns the playfield size in cells
func Dimensions() (w, h float64) {
	return float64(constants.WorldWidth), float64(constants.WorldHeight)
}
