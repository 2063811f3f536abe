package engine

import (
	"github.com/lixenwraith/wrapshot/constants"
	"github.com/lixenwraith/wrapshot/vmath"
)

// DirectorSystem drives wave progression and enemy pressure: it spawns each
// wave's asteroid field, advances the wave number when the field is cleared,
// schedules saucers against a shrinking interval, and fires their guns.
type DirectorSystem struct{}

func NewDirectorSystem() *DirectorSystem {
	return &DirectorSystem{}
}

func (s *DirectorSystem) Priority() int {
	return 40
}

// WaveSpeedMult returns the asteroid speed multiplier for a wave (Q32.32)
func WaveSpeedMult(wave int) int64 {
	if wave < 1 {
		return vmath.Scale
	}
	mult := vmath.Scale + vmath.Mul(constants.WaveSpeedRampPerWave, vmath.FromInt(wave-1))
	if mult > constants.WaveSpeedRampCap {
		mult = constants.WaveSpeedRampCap
	}
	return mult
}

// saucerInterval returns the spawn interval in ticks for a wave
func saucerInterval(wave int) int {
	interval := constants.SaucerSpawnBaseTicks - constants.SaucerSpawnStepTicks*(wave-1)
	if interval < constants.SaucerSpawnFloorTicks {
		interval = constants.SaucerSpawnFloorTicks
	}
	return interval
}

func (s *DirectorSystem) Update(w *World) {
	s.updateWave(w)
	s.updateSaucerSpawn(w)
	s.updateSaucerFire(w)
}

// updateWave detects a cleared field, runs the timed breather, and spawns
// the next asteroid field. The wave number advances exactly once per clear,
// at detection time
func (s *DirectorSystem) updateWave(w *World) {
	if w.WavePending {
		if w.WavePauseTicks > 0 {
			w.WavePauseTicks--
		}
		if w.WavePauseTicks == 0 {
			s.spawnWave(w)
			w.WavePending = false
		}
		return
	}

	if w.Store.CountKind(KindAsteroid) == 0 {
		w.WaveNumber++
		w.WavePending = true
		w.WavePauseTicks = constants.WaveClearPauseTicks
	}
}

// spawnWave places the wave's large asteroids at random positions, each at
// least the safe distance from the ship
func (s *DirectorSystem) spawnWave(w *World) {
	count := constants.WaveBaseAsteroids + w.WaveNumber
	mult := WaveSpeedMult(w.WaveNumber)

	var shipX, shipY int64
	hasShip := false
	if idx := w.Store.ShipIndex(); idx >= 0 {
		ship := w.Store.At(idx)
		shipX, shipY, hasShip = ship.PosX, ship.PosY, true
	}

	safeSq := vmath.Mul(constants.WaveSafeSpawnRadius, constants.WaveSafeSpawnRadius)

	for i := 0; i < count; i++ {
		var x, y int64
		for attempt := 0; attempt < 16; attempt++ {
			x = w.Rng.Range(0, constants.WorldWidthQ)
			y = w.Rng.Range(0, constants.WorldHeightQ)
			if !hasShip {
				break
			}
			d := vmath.TorusDistSq(x, y, shipX, shipY, constants.WorldWidthQ, constants.WorldHeightQ)
			if d >= safeSq {
				break
			}
		}
		w.Store.Spawn(NewAsteroidAt(SizeLarge, x, y, mult, w.Rng))
	}
}

// updateSaucerSpawn spawns a saucer when the interval timer has elapsed and
// no saucer is alive. The type weighting shifts toward Small as waves climb
func (s *DirectorSystem) updateSaucerSpawn(w *World) {
	if w.SaucerSpawnTicks > 0 || w.WavePending {
		return
	}
	if w.Store.CountKind(KindSaucer) > 0 {
		// Hold at zero; the next saucer appears as soon as the field is free
		return
	}

	smallChance := constants.SaucerSmallBaseChance +
		vmath.Mul(constants.SaucerSmallChanceStep, vmath.FromInt(w.WaveNumber-1))
	if smallChance > constants.SaucerSmallChanceCap {
		smallChance = constants.SaucerSmallChanceCap
	}

	class := SaucerLarge
	if w.Rng.Chance(smallChance) {
		class = SaucerSmall
	}

	w.Store.Spawn(NewSaucer(class, w.Rng))
	w.SaucerSpawnTicks = saucerInterval(w.WaveNumber)
}

// updateSaucerFire fires saucer guns on their cooldown. Small saucers aim
// along the shortest wrapped path to the ship; large saucers fire blind
func (s *DirectorSystem) updateSaucerFire(w *World) {
	var shipX, shipY int64
	shipVisible := false
	if idx := w.Store.ShipIndex(); idx >= 0 {
		ship := w.Store.At(idx)
		if !ship.Ship.Hidden() {
			shipX, shipY, shipVisible = ship.PosX, ship.PosY, true
		}
	}

	n := w.Store.Len()
	for i := 0; i < n; i++ {
		e := w.Store.At(i)
		if !e.Alive || e.Kind != KindSaucer || e.Saucer.FireTicks > 0 {
			continue
		}

		x, y := e.PosX, e.PosY
		class := e.Saucer.Class
		e.Saucer.FireTicks = constants.SaucerFireTicks

		if !w.Rng.Chance(constants.SaucerFireChance) {
			continue
		}

		var dirX, dirY int64
		if class == SaucerSmall && shipVisible {
			dx := vmath.WrapDelta(x, shipX, constants.WorldWidthQ)
			dy := vmath.WrapDelta(y, shipY, constants.WorldHeightQ)
			dirX, dirY = vmath.Normalize2D(dx, dy)
			if dirX == 0 && dirY == 0 {
				dirX = vmath.Scale
			}
		} else {
			dirX, dirY = vmath.AngleVector(w.Rng.Angle())
		}

		w.Store.Spawn(NewBullet(SaucerFired, x, y,
			vmath.Mul(dirX, constants.SaucerBulletSpeed),
			vmath.Mul(dirY, constants.SaucerBulletSpeed)))
		// Spawn may have grown the arena; the saucer pointer is stale now
	}
}
