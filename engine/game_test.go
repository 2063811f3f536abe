package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/wrapshot/config"
	"github.com/lixenwraith/wrapshot/constants"
	"github.com/lixenwraith/wrapshot/input"
)

func newTestGame(seed string) *Game {
	cfg := config.Default()
	cfg.Seed = seed
	return NewGame(cfg, nil)
}

func pressStart(g *Game) {
	g.SubmitInput(input.Snapshot{Start: true})
	g.AdvanceTick()
}

func TestGameStartsInReady(t *testing.T) {
	g := newTestGame("boot")
	assert.Equal(t, StateReady, g.State())

	hud := g.HUDState()
	assert.Equal(t, constants.StartingLives, hud.Lives)
	assert.Equal(t, int64(0), hud.Score)
	assert.Equal(t, 1, hud.Wave)
	assert.Empty(t, g.RenderState(), "ready holds an empty field")
}

func TestStartSpawnsShipAndFirstWave(t *testing.T) {
	g := newTestGame("boot")
	pressStart(g)
	require.Equal(t, StatePlaying, g.State())

	// First simulated tick places the wave
	g.AdvanceTick()

	st := g.world.Store
	assert.Equal(t, 1, st.CountKind(KindShip))
	assert.Equal(t, constants.WaveBaseAsteroids+1, st.CountKind(KindAsteroid))
	assert.Equal(t, 1, g.HUDState().Wave)
}

func TestTicksIgnoredInReady(t *testing.T) {
	g := newTestGame("idle")
	for i := 0; i < 100; i++ {
		g.SubmitInput(input.Snapshot{Thrust: true, Fire: true})
		g.AdvanceTick()
	}
	assert.Equal(t, StateReady, g.State())
	assert.Empty(t, g.RenderState())
}

func TestPositionsStayInBounds(t *testing.T) {
	g := newTestGame("bounds")
	pressStart(g)

	worldW, worldH := Dimensions()
	for i := 0; i < constants.TickRate*10; i++ {
		g.SubmitInput(input.Snapshot{Thrust: true, TurnRight: true, Fire: i%13 == 0})
		g.AdvanceTick()

		for _, e := range g.RenderState() {
			require.True(t, e.X >= 0 && e.X < worldW, "tick %d: x=%f", i, e.X)
			require.True(t, e.Y >= 0 && e.Y < worldH, "tick %d: y=%f", i, e.Y)
		}
	}
}

func TestResetReplaysDeterministically(t *testing.T) {
	g := newTestGame("replay")

	run := func() []RenderEntity {
		pressStart(g)
		for i := 0; i < constants.TickRate*5; i++ {
			g.SubmitInput(input.Snapshot{Thrust: i%7 != 0, TurnLeft: i%3 == 0, Fire: i%11 == 0})
			g.AdvanceTick()
		}
		out := g.RenderState()
		g.Reset()
		return out
	}

	first := run()
	second := run()

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Kind, second[i].Kind)
		assert.Equal(t, first[i].X, second[i].X)
		assert.Equal(t, first[i].Y, second[i].Y)
		assert.Equal(t, first[i].Rot, second[i].Rot)
	}
}

func TestShipDeathEntersRespawnThenPlaying(t *testing.T) {
	g := newTestGame("death")
	pressStart(g)
	g.AdvanceTick()

	// Drop the shield and park a rock on the ship
	shipIdx := g.world.Store.ShipIndex()
	require.GreaterOrEqual(t, shipIdx, 0)
	ship := g.world.Store.At(shipIdx)
	ship.Ship.InvulnTicks = 0
	g.world.Store.Spawn(NewAsteroidAt(SizeLarge, ship.PosX, ship.PosY, 0, g.world.Rng))

	g.AdvanceTick()
	require.Equal(t, StateRespawning, g.State())

	shipIdx = g.world.Store.ShipIndex()
	require.GreaterOrEqual(t, shipIdx, 0)
	assert.Equal(t, constants.StartingLives-1, g.world.Store.At(shipIdx).Ship.Lives)

	// The ship is hidden from render while waiting
	for _, e := range g.RenderState() {
		assert.NotEqual(t, KindShip, e.Kind)
	}

	for i := 0; i < constants.RespawnDelayTicks; i++ {
		g.AdvanceTick()
	}
	require.Equal(t, StatePlaying, g.State())

	shipIdx = g.world.Store.ShipIndex()
	require.GreaterOrEqual(t, shipIdx, 0)
	assert.Equal(t, constants.RespawnShieldTicks, g.world.Store.At(shipIdx).Ship.InvulnTicks)
}

func TestLastLifeReachesGameOver(t *testing.T) {
	g := newTestGame("gameover")
	pressStart(g)
	g.AdvanceTick()

	shipIdx := g.world.Store.ShipIndex()
	require.GreaterOrEqual(t, shipIdx, 0)
	ship := g.world.Store.At(shipIdx)
	ship.Ship.Lives = 1
	ship.Ship.InvulnTicks = 0
	g.world.Store.Spawn(NewAsteroidAt(SizeLarge, ship.PosX, ship.PosY, 0, g.world.Rng))

	g.AdvanceTick()
	require.Equal(t, StateGameOver, g.State())
	assert.Equal(t, 0, g.HUDState().Lives)

	// The field keeps animating while the score stands
	score := g.HUDState().Score
	for i := 0; i < 30; i++ {
		g.AdvanceTick()
	}
	assert.Equal(t, StateGameOver, g.State())
	assert.Equal(t, score, g.HUDState().Score)

	// Start from game over runs a full reset back to Ready
	g.SubmitInput(input.Snapshot{Start: true})
	g.AdvanceTick()
	assert.Equal(t, StateReady, g.State())
	assert.Equal(t, int64(0), g.HUDState().Score)
}

func TestWaveClearAdvancesOnce(t *testing.T) {
	g := newTestGame("clear")
	pressStart(g)
	g.AdvanceTick()

	// Clear the field by hand; the director notices on the next tick
	st := g.world.Store
	for i := 0; i < st.Len(); i++ {
		if st.At(i).Kind == KindAsteroid {
			st.MarkDead(i)
		}
	}

	g.AdvanceTick()
	require.Equal(t, 2, g.HUDState().Wave)

	for i := 0; i < constants.WaveClearPauseTicks; i++ {
		g.AdvanceTick()
	}
	assert.Equal(t, 2, g.HUDState().Wave)
	assert.Equal(t, constants.WaveBaseAsteroids+2, g.world.Store.CountKind(KindAsteroid))
}

func TestRenderStateIsDetached(t *testing.T) {
	g := newTestGame("copy")
	pressStart(g)
	g.AdvanceTick()

	snap := g.RenderState()
	require.NotEmpty(t, snap)

	var before []RenderVec
	idx := -1
	for i, e := range snap {
		if e.Kind == KindAsteroid {
			before = append([]RenderVec(nil), e.Verts...)
			idx = i
			break
		}
	}
	require.GreaterOrEqual(t, idx, 0)

	for i := 0; i < 30; i++ {
		g.AdvanceTick()
	}
	assert.Equal(t, before, snap[idx].Verts, "snapshot must not alias live state")
}
