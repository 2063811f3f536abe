package engine

import (
	"github.com/lixenwraith/wrapshot/constants"
	"github.com/lixenwraith/wrapshot/vmath"
)

// Entity constructors. All procedural shape data is generated here, once at
// spawn, from the world's seeded random stream; shapes are immutable for the
// entity's lifetime.

// NewShip builds the player ship at the world center
func NewShip(lives int) Entity {
	return Entity{
		Kind:   KindShip,
		PosX:   constants.WorldWidthQ / 2,
		PosY:   constants.WorldHeightQ / 2,
		Rot:    0,
		Radius: constants.ShipRadius,
		TTL:    TTLInfinite,
		Ship: ShipData{
			Lives:       lives,
			InvulnTicks: constants.RespawnShieldTicks,
		},
	}
}

// asteroidPolygon generates the closed vertex loop for a size class, with
// per-vertex radius jitter in [0.6, 1.0]
func asteroidPolygon(size AsteroidSize, rng *vmath.FastRand) []Point {
	sides := constants.AsteroidSides[size]
	radius := constants.AsteroidRadius[size]

	verts := make([]Point, sides)
	for i := 0; i < sides; i++ {
		r := vmath.Mul(radius, rng.Range(constants.AsteroidVertexJitterMin, constants.AsteroidVertexJitterMax))
		angle := vmath.MulDiv(vmath.Scale, int64(i), int64(sides))
		verts[i] = Point{
			X: vmath.Mul(vmath.Cos(angle), r),
			Y: vmath.Mul(vmath.Sin(angle), r),
		}
	}
	return verts
}

// NewAsteroidAt builds an asteroid of the given size at a position, with a
// random heading at the size's base speed times speedMult (Q32.32)
func NewAsteroidAt(size AsteroidSize, x, y, speedMult int64, rng *vmath.FastRand) Entity {
	speed := vmath.Mul(constants.AsteroidBaseSpeed[size], speedMult)
	dirX, dirY := vmath.AngleVector(rng.Angle())
	maxSpin := constants.AsteroidMaxSpin[size]

	return Entity{
		Kind:   KindAsteroid,
		PosX:   x,
		PosY:   y,
		VelX:   vmath.Mul(dirX, speed),
		VelY:   vmath.Mul(dirY, speed),
		Rot:    rng.Angle(),
		Spin:   rng.Range(-maxSpin, maxSpin),
		Radius: constants.AsteroidRadius[size],
		TTL:    TTLInfinite,
		Asteroid: AsteroidData{
			Size:  size,
			Verts: asteroidPolygon(size, rng),
		},
	}
}

// saucerHull is the classic twelve-segment saucer outline scaled to radius r
func saucerHull(r int64) []Point {
	half := r >> 1
	third := r / 3
	wide := r + (r >> 2) // 1.25r

	return []Point{
		{-wide, 0}, {-half, half}, {half, half}, {wide, 0},
		{-wide, 0}, {-half, -half}, {-third, -r}, {third, -r},
		{half, -half}, {wide, 0}, {half, -half}, {-half, -half},
	}
}

// NewSaucer builds a saucer entering from the left or right edge, drifting
// toward the opposite side
func NewSaucer(class SaucerClass, rng *vmath.FastRand) Entity {
	radius := constants.SaucerLargeRadius
	speed := constants.SaucerLargeSpeed
	if class == SaucerSmall {
		radius = constants.SaucerSmallRadius
		speed = constants.SaucerSmallSpeed
	}

	var x, heading int64
	if rng.Intn(2) == 0 {
		x, heading = 0, 0 // left edge, drifting right
	} else {
		x, heading = constants.WorldWidthQ-1, vmath.Scale/2
	}

	dirX, dirY := vmath.AngleVector(heading)

	return Entity{
		Kind:   KindSaucer,
		PosX:   x,
		PosY:   rng.Range(0, constants.WorldHeightQ),
		VelX:   vmath.Mul(dirX, speed),
		VelY:   vmath.Mul(dirY, speed),
		Radius: radius,
		TTL:    TTLInfinite,
		Saucer: SaucerData{
			Class:      class,
			Heading:    heading,
			FireTicks:  constants.SaucerFireTicks,
			SteerTicks: constants.SaucerSteerTicks,
			Verts:      saucerHull(radius),
		},
	}
}

// NewBullet builds a bullet with fixed velocity and lifetime
func NewBullet(owner BulletOwner, x, y, velX, velY int64) Entity {
	radius := constants.PlayerBulletRadius
	ttl := constants.PlayerBulletTTLTicks
	if owner == SaucerFired {
		radius = constants.SaucerBulletRadius
		ttl = constants.SaucerBulletTTLTicks
	}

	return Entity{
		Kind:   KindBullet,
		PosX:   x,
		PosY:   y,
		VelX:   velX,
		VelY:   velY,
		Radius: radius,
		TTL:    ttl,
		Bullet: BulletData{Owner: owner},
	}
}

func newParticle(x, y, velX, velY int64, ttl int) Entity {
	return Entity{
		Kind: KindParticle,
		PosX: x,
		PosY: y,
		VelX: velX,
		VelY: velY,
		TTL:  ttl,
	}
}

// SpawnRadialBurst scatters count particles in all directions from a point
func SpawnRadialBurst(s *Store, rng *vmath.FastRand, x, y int64, count int) {
	for i := 0; i < count; i++ {
		dirX, dirY := vmath.AngleVector(rng.Angle())
		speed := rng.Range(constants.ParticleSpeedMin, constants.ParticleSpeedMax)
		ttl := constants.ParticleTTLMinTicks + rng.Intn(constants.ParticleTTLMaxTicks-constants.ParticleTTLMinTicks)
		s.Spawn(newParticle(x, y, vmath.Mul(dirX, speed), vmath.Mul(dirY, speed), ttl))
	}
}

// SpawnDebrisBurst scatters slower-fading fragments from a destruction point
func SpawnDebrisBurst(s *Store, rng *vmath.FastRand, x, y int64, count int) {
	for i := 0; i < count; i++ {
		dirX, dirY := vmath.AngleVector(rng.Angle())
		speed := rng.Range(constants.ParticleSpeedMin, constants.ParticleSpeedMax)
		ttl := constants.DebrisTTLMinTicks + rng.Intn(constants.DebrisTTLMaxTicks-constants.DebrisTTLMinTicks)
		s.Spawn(newParticle(x, y, vmath.Mul(dirX, speed), vmath.Mul(dirY, speed), ttl))
	}
}

// SpawnConeBurst emits particles within a spread around direction, used for
// engine exhaust behind a thrusting ship
func SpawnConeBurst(s *Store, rng *vmath.FastRand, x, y, direction, spread int64, count int) {
	for i := 0; i < count; i++ {
		angle := direction + rng.Range(-spread>>1, spread>>1)
		dirX, dirY := vmath.AngleVector(angle)
		speed := rng.Range(constants.ParticleSpeedMin, constants.ParticleSpeedMax)
		ttl := constants.ParticleTTLMinTicks + rng.Intn(constants.ParticleTTLMaxTicks-constants.ParticleTTLMinTicks)
		s.Spawn(newParticle(x, y, vmath.Mul(dirX, speed), vmath.Mul(dirY, speed), ttl))
	}
}

// SpawnRingBurst emits an expanding ring of particles, used for the
// hyperspace departure and arrival flashes
func SpawnRingBurst(s *Store, rng *vmath.FastRand, x, y, radius int64, count int) {
	for i := 0; i < count; i++ {
		angle := vmath.MulDiv(vmath.Scale, int64(i), int64(count))
		dirX, dirY := vmath.AngleVector(angle)
		speed := rng.Range(constants.ParticleSpeedMin, constants.ParticleSpeedMax)
		ttl := constants.ParticleTTLMinTicks + rng.Intn(constants.ParticleTTLMaxTicks-constants.ParticleTTLMinTicks)
		s.Spawn(newParticle(
			vmath.WrapCoord(x+vmath.Mul(dirX, radius), constants.WorldWidthQ),
			vmath.WrapCoord(y+vmath.Mul(dirY, radius), constants.WorldHeightQ),
			vmath.Mul(dirX, speed),
			vmath.Mul(dirY, speed),
			ttl,
		))
	}
}
