// @focus: #constants { entities }
package constants

import "github.com/lixenwraith/wrapshot/vmath"

// --- Asteroids ---

// Asteroid size-class tables, indexed Small=0, Medium=1, Large=2.
// Radii and speeds are proportions of WorldEdge from the classic tuning:
// diameters 0.05/0.1/0.2, per-frame speeds 0.004/0.002/0.001 at 60 fps.
var (
	AsteroidRadius = [3]int64{
		vmath.FromInt(15),
		vmath.FromInt(30),
		vmath.FromInt(60),
	}

	// AsteroidBaseSpeed in cells/sec, before the wave difficulty multiplier
	AsteroidBaseSpeed = [3]int64{
		vmath.FromInt(144),
		vmath.FromInt(72),
		vmath.FromInt(36),
	}

	// AsteroidMaxSpin in turns/sec; actual spin is uniform in [-max, max]
	AsteroidMaxSpin = [3]int64{
		vmath.FromFloat(1.9),
		vmath.FromFloat(0.95),
		vmath.FromFloat(0.48),
	}

	// AsteroidVertexJitterMin/Max scale each polygon vertex radius
	AsteroidVertexJitterMin = vmath.FromFloat(0.6)
	AsteroidVertexJitterMax = vmath.FromFloat(1.0)

	// SplitSpeedCapFactor bounds a split child's speed relative to its size
	// class base speed, keeping combined kinetic energy in check
	SplitSpeedCapFactor = vmath.FromFloat(1.25)
)

// AsteroidSides is the polygon vertex count per size class
var AsteroidSides = [3]int{6, 9, 12}

// AsteroidPoints awarded on destruction: small rocks are harder to hit
var AsteroidPoints = [3]int64{100, 50, 20}

// SplitChildCount is how many next-smaller asteroids a split produces
const SplitChildCount = 2

// --- Saucers ---

var (
	SaucerLargeRadius = vmath.FromInt(21)
	SaucerSmallRadius = vmath.FromFloat(10.5)

	// Saucer cruise speeds in cells/sec
	SaucerLargeSpeed = vmath.FromInt(45)
	SaucerSmallSpeed = vmath.FromInt(90)

	// SaucerSteerChance is the probability of a course change per steer check
	SaucerSteerChance = vmath.FromFloat(0.5)

	// SaucerSteerMaxTurn bounds a course change to ±10 degrees
	SaucerSteerMaxTurn = vmath.FromFloat(10.0 / 360.0)

	// SaucerFireChance is the probability of a shot per fire check
	SaucerFireChance = vmath.FromFloat(0.5)

	// SaucerBulletSpeed in cells/sec
	SaucerBulletSpeed = vmath.FromInt(120)
)

const (
	// SaucerSteerTicks is the interval between course-change checks
	SaucerSteerTicks = 60

	// SaucerFireTicks is the interval between fire checks
	SaucerFireTicks = 60

	// SaucerBulletTTLTicks is the lifetime of a saucer bullet
	SaucerBulletTTLTicks = 90

	// Saucer destruction points: the small saucer is worth more
	SaucerLargePoints = 200
	SaucerSmallPoints = 1000
)

// --- Bullets ---

var (
	PlayerBulletRadius = vmath.FromInt(2)
	SaucerBulletRadius = vmath.FromInt(3)
)

// --- Particles ---

var (
	// Particle speeds in cells/sec (classic 0.4..1.0 cells/frame at 60 fps)
	ParticleSpeedMin = vmath.FromInt(24)
	ParticleSpeedMax = vmath.FromInt(60)

	// ExhaustSpread is the cone half-spread behind a thrusting ship, in turns
	ExhaustSpread = vmath.FromFloat(0.08)
)

const (
	// Particle lifetimes in ticks
	ParticleTTLMinTicks = 12
	ParticleTTLMaxTicks = 60

	// DebrisTTLMinTicks/Max are the slower-fading large fragments
	DebrisTTLMinTicks = 120
	DebrisTTLMaxTicks = 300

	// Burst sizes per destruction event
	BurstShipRadial    = 100
	BurstShipDebris    = 50
	BurstSaucerRadial  = 100
	BurstSaucerDebris  = 50
	BurstAsteroidLarge = 30
	BurstAsteroidMed   = 20
	BurstAsteroidSmall = 10

	// HyperspaceRingCount is the particle count of each teleport ring
	HyperspaceRingCount = 200
)

// HyperspaceRingRadius is the spawn radius of the teleport ring
var HyperspaceRingRadius = vmath.FromInt(45)
