package engine

// Kind discriminates the entity variants held in the store
type Kind uint8

const (
	KindShip Kind = iota
	KindAsteroid
	KindBullet
	KindSaucer
	KindParticle
)

// AsteroidSize is the ordinal size class; it indexes the constants tables
type AsteroidSize uint8

const (
	SizeSmall AsteroidSize = iota
	SizeMedium
	SizeLarge
)

// BulletOwner tags which side fired a bullet. Relations are value tags, not
// entity references, so bullets never dangle when their shooter dies
type BulletOwner uint8

const (
	PlayerFired BulletOwner = iota
	SaucerFired
)

// SaucerClass distinguishes the two saucer behaviors
type SaucerClass uint8

const (
	SaucerLarge SaucerClass = iota
	SaucerSmall
)

// TTLInfinite marks entities without a lifetime
const TTLInfinite = -1

// Point is a Q32.32 offset used for polygon vertices
type Point struct {
	X, Y int64
}

// ShipData is the ship-only payload
type ShipData struct {
	Lives int

	// InvulnTicks blocks destruction collisions while counting down
	InvulnTicks int

	// RespawnTicks > 0 means the ship is hidden awaiting respawn
	RespawnTicks int

	FireCooldown int
	HyperCooldown int

	// Thrusting is set while thrust intent is applied, for exhaust and render
	Thrusting bool
}

// Hidden reports whether the ship is off the field awaiting respawn
func (s ShipData) Hidden() bool {
	return s.RespawnTicks > 0
}

// AsteroidData is the asteroid-only payload. Verts is the procedurally
// generated closed polygon, fixed at spawn and immutable thereafter
type AsteroidData struct {
	Size  AsteroidSize
	Verts []Point
}

// BulletData is the bullet-only payload
type BulletData struct {
	Owner BulletOwner
}

// SaucerData is the saucer-only payload
type SaucerData struct {
	Class SaucerClass

	// Heading backs the bounded random course changes
	Heading int64

	FireTicks  int
	SteerTicks int

	Verts []Point
}

// Entity is a tagged variant over the five kinds. Exactly one payload struct
// is meaningful per Kind; the rest stay zero. Entities are owned by the Store
// and identified by creation order, never by pointer.
type Entity struct {
	ID    uint64
	Kind  Kind
	Alive bool

	// Movement fields, Q32.32: position in cells, velocity in cells/sec,
	// rotation in turns (Scale = full rotation), spin in turns/sec
	PosX, PosY int64
	VelX, VelY int64
	Rot        int64
	Spin       int64

	// Radius is the circle-collision radius in cells
	Radius int64

	// TTL in ticks; TTLInfinite for ship, asteroids, and saucers
	TTL int

	Ship     ShipData
	Asteroid AsteroidData
	Bullet   BulletData
	Saucer   SaucerData
}
