// @focus: #constants { director }
package constants

import "github.com/lixenwraith/wrapshot/vmath"

// Wave Progression
const (
	// WaveBaseAsteroids plus the wave number gives the large-asteroid count
	// spawned at the start of each wave
	WaveBaseAsteroids = 4

	// WaveClearPauseTicks is the breather between clearing a wave and the
	// next wave's asteroids appearing
	WaveClearPauseTicks = 90
)

var (
	// WaveSafeSpawnRadius keeps new asteroids away from the ship
	WaveSafeSpawnRadius = vmath.FromInt(150)

	// WaveSpeedRampPerWave raises asteroid speed each wave
	WaveSpeedRampPerWave = vmath.FromFloat(0.1)

	// WaveSpeedRampCap limits the difficulty multiplier
	WaveSpeedRampCap = vmath.FromFloat(2.0)
)

// Saucer Scheduling
const (
	// SaucerSpawnBaseTicks is the wave-1 saucer spawn interval
	SaucerSpawnBaseTicks = 600

	// SaucerSpawnStepTicks shrinks the interval per wave
	SaucerSpawnStepTicks = 30

	// SaucerSpawnFloorTicks is the minimum spawn interval
	SaucerSpawnFloorTicks = 240
)

var (
	// SaucerSmallBaseChance is the wave-1 probability of a small saucer
	SaucerSmallBaseChance = vmath.FromFloat(0.25)

	// SaucerSmallChanceStep raises the small-saucer weight per wave
	SaucerSmallChanceStep = vmath.FromFloat(0.15)

	// SaucerSmallChanceCap limits the small-saucer weight
	SaucerSmallChanceCap = vmath.FromFloat(0.9)
)
