package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/wrapshot/constants"
	"github.com/lixenwraith/wrapshot/input"
	"github.com/lixenwraith/wrapshot/vmath"
)

func spawnShipAt(w *World, x, y int64) int {
	idx := w.Store.Len()
	w.Store.Spawn(NewShip(3))
	ship := w.Store.At(idx)
	ship.PosX, ship.PosY = x, y
	ship.Ship.InvulnTicks = 0
	return idx
}

func spawnAsteroidAt(w *World, size AsteroidSize, x, y int64) int {
	idx := w.Store.Len()
	ast := NewAsteroidAt(size, x, y, vmath.Scale, w.Rng)
	ast.VelX, ast.VelY = 0, 0
	w.Store.Spawn(ast)
	return idx
}

func TestShipAsteroidCollision(t *testing.T) {
	w := NewWorld(1)
	col := NewCollisionSystem()

	cx := constants.WorldWidthQ / 2
	cy := constants.WorldHeightQ / 2
	shipIdx := spawnShipAt(w, cx, cy)
	astIdx := spawnAsteroidAt(w, SizeLarge, cx, cy)

	w.BeginTick(input.Snapshot{})
	col.Update(w)

	require.Len(t, w.Events, 1)
	assert.Equal(t, PairShipAsteroid, w.Events[0].Pair)
	assert.Equal(t, shipIdx, w.Events[0].A)
	assert.Equal(t, astIdx, w.Events[0].B)
}

func TestInvulnerableShipIgnored(t *testing.T) {
	w := NewWorld(1)
	col := NewCollisionSystem()

	cx := constants.WorldWidthQ / 2
	cy := constants.WorldHeightQ / 2
	shipIdx := spawnShipAt(w, cx, cy)
	spawnAsteroidAt(w, SizeLarge, cx, cy)
	w.Store.At(shipIdx).Ship.InvulnTicks = 30

	w.BeginTick(input.Snapshot{})
	col.Update(w)
	assert.Empty(t, w.Events)
}

func TestHiddenShipIgnored(t *testing.T) {
	w := NewWorld(1)
	col := NewCollisionSystem()

	cx := constants.WorldWidthQ / 2
	cy := constants.WorldHeightQ / 2
	shipIdx := spawnShipAt(w, cx, cy)
	spawnAsteroidAt(w, SizeLarge, cx, cy)
	w.Store.At(shipIdx).Ship.RespawnTicks = 60

	w.BeginTick(input.Snapshot{})
	col.Update(w)
	assert.Empty(t, w.Events)
}

func TestBulletHitsFirstInCreationOrder(t *testing.T) {
	w := NewWorld(1)
	col := NewCollisionSystem()

	cx := constants.WorldWidthQ / 2
	cy := constants.WorldHeightQ / 2
	first := spawnAsteroidAt(w, SizeLarge, cx, cy)
	spawnAsteroidAt(w, SizeLarge, cx, cy)
	bulletIdx := w.Store.Len()
	w.Store.Spawn(NewBullet(PlayerFired, cx, cy, 0, 0))

	w.BeginTick(input.Snapshot{})
	col.Update(w)

	// One collision per bullet per tick, lowest index wins
	require.Len(t, w.Events, 1)
	assert.Equal(t, PairPlayerBulletAsteroid, w.Events[0].Pair)
	assert.Equal(t, bulletIdx, w.Events[0].A)
	assert.Equal(t, first, w.Events[0].B)
}

func TestSaucerBulletHitsShip(t *testing.T) {
	w := NewWorld(1)
	col := NewCollisionSystem()

	cx := constants.WorldWidthQ / 2
	cy := constants.WorldHeightQ / 2
	shipIdx := spawnShipAt(w, cx, cy)
	bulletIdx := w.Store.Len()
	w.Store.Spawn(NewBullet(SaucerFired, cx, cy, 0, 0))

	w.BeginTick(input.Snapshot{})
	col.Update(w)

	require.Len(t, w.Events, 1)
	assert.Equal(t, PairShipSaucerBullet, w.Events[0].Pair)
	assert.Equal(t, shipIdx, w.Events[0].A)
	assert.Equal(t, bulletIdx, w.Events[0].B)
}

func TestSaucerBulletIgnoresSaucer(t *testing.T) {
	w := NewWorld(1)
	col := NewCollisionSystem()

	cx := constants.WorldWidthQ / 2
	cy := constants.WorldHeightQ / 2
	w.Store.Spawn(NewSaucer(SaucerLarge, w.Rng))
	saucer := w.Store.At(0)
	saucer.PosX, saucer.PosY = cx, cy
	w.Store.Spawn(NewBullet(SaucerFired, cx, cy, 0, 0))

	w.BeginTick(input.Snapshot{})
	col.Update(w)
	assert.Empty(t, w.Events)
}

func TestCollisionAcrossWrapSeam(t *testing.T) {
	w := NewWorld(1)
	col := NewCollisionSystem()

	cy := constants.WorldHeightQ / 2
	spawnShipAt(w, vmath.FromInt(1), cy)
	spawnAsteroidAt(w, SizeLarge, constants.WorldWidthQ-vmath.FromInt(5), cy)

	w.BeginTick(input.Snapshot{})
	col.Update(w)

	require.Len(t, w.Events, 1)
	assert.Equal(t, PairShipAsteroid, w.Events[0].Pair)
}

func TestCollisionStageIsReadOnly(t *testing.T) {
	w := NewWorld(1)
	col := NewCollisionSystem()

	cx := constants.WorldWidthQ / 2
	cy := constants.WorldHeightQ / 2
	spawnShipAt(w, cx, cy)
	astIdx := spawnAsteroidAt(w, SizeLarge, cx, cy)

	w.BeginTick(input.Snapshot{})
	col.Update(w)

	require.NotEmpty(t, w.Events)
	assert.True(t, w.Store.At(0).Alive)
	assert.True(t, w.Store.At(astIdx).Alive)
}
