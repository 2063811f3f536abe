package vmath

// FastRand is a seeded xorshift64 stream. Every piece of procedural state in
// the simulation (asteroid shapes, spawn positions, saucer behavior, particle
// velocities) draws from one FastRand so a run is reproducible from its seed.
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Frac returns a uniform Q32.32 value in [0, Scale)
func (r *FastRand) Frac() int64 {
	return int64(r.Next() & Mask)
}

// Range returns a uniform Q32.32 value in [lo, hi)
func (r *FastRand) Range(lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + Mul(hi-lo, r.Frac())
}

// Angle returns a uniform angle in [0, Scale), Scale = full rotation
func (r *FastRand) Angle() int64 {
	return r.Frac()
}

// Chance returns true with probability p, where p is Q32.32 in [0, Scale]
func (r *FastRand) Chance(p int64) bool {
	return r.Frac() < p
}
