package engine

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/wrapshot/config"
	"github.com/lixenwraith/wrapshot/constants"
	"github.com/lixenwraith/wrapshot/input"
	"github.com/lixenwraith/wrapshot/vmath"
)

// State is the top-level game state
type State uint8

const (
	StateReady State = iota
	StatePlaying
	StateRespawning
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StateRespawning:
		return "respawning"
	case StateGameOver:
		return "game-over"
	}
	return "unknown"
}

// Game is the simulation façade the host drives: one AdvanceTick per frame,
// SubmitInput before each tick, snapshot queries for render and HUD.
// Single-threaded by contract; the host guarantees at most one in-flight
// tick and never reenters.
type Game struct {
	world   *World
	systems []System

	state         State
	seed          uint64
	startingLives int
	tick          uint64

	intent  input.Snapshot
	physics System
	log     *zap.Logger
}

func NewGame(cfg config.Config, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}

	seed := cfg.RNGSeed()
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g := &Game{
		world:         NewWorld(seed),
		seed:          seed,
		startingLives: cfg.StartingLives,
		state:         StateReady,
		log:           logger.With(zap.String("session", uuid.NewString())),
	}

	g.physics = NewPhysicsSystem()
	g.systems = []System{
		g.physics,
		NewCollisionSystem(),
		NewResolutionSystem(),
		NewDirectorSystem(),
	}
	sort.SliceStable(g.systems, func(i, j int) bool {
		return g.systems[i].Priority() < g.systems[j].Priority()
	})

	g.world.WaveNumber = 1
	g.log.Info("simulation ready", zap.Uint64("seed", seed))
	return g
}

// SubmitInput sets the intent snapshot consumed by the next AdvanceTick.
// The snapshot is cleared after each tick so trigger intents never repeat
func (g *Game) SubmitInput(s input.Snapshot) {
	g.intent = s
}

// State returns the current state-machine state
func (g *Game) State() State {
	return g.state
}

// Tick returns the number of ticks advanced since the last reset
func (g *Game) Tick() uint64 {
	return g.tick
}

// Seed returns the resolved RNG seed for this session
func (g *Game) Seed() uint64 {
	return g.seed
}

// AdvanceTick runs one full simulation step:
// physics → collision → resolution → director → state machine
func (g *Game) AdvanceTick() {
	g.tick++
	intent := g.intent
	g.intent = input.Snapshot{}

	switch g.state {
	case StateReady:
		if intent.Start {
			g.startGame()
		}

	case StateGameOver:
		if intent.Start {
			g.Reset()
			return
		}
		// The field keeps drifting behind the game-over card; nothing
		// collides or spawns and the final score stands
		g.world.BeginTick(input.Snapshot{})
		g.physics.Update(g.world)
		g.world.Store.Compact()

	case StatePlaying, StateRespawning:
		waveBefore := g.world.WaveNumber

		g.world.BeginTick(intent)
		g.world.Respawning = g.state == StateRespawning
		for _, sys := range g.systems {
			sys.Update(g.world)
		}
		g.world.Store.Compact()

		if g.world.WaveNumber > waveBefore {
			g.log.Info("wave cleared",
				zap.Int("wave", g.world.WaveNumber),
				zap.Int64("score", g.world.Score))
		}

		g.transition()
	}
}

// startGame leaves Ready for a fresh wave-1 run
func (g *Game) startGame() {
	g.world.Store.Spawn(NewShip(g.startingLives))
	g.world.WaveNumber = 1
	g.world.WavePending = true
	g.world.WavePauseTicks = 0
	g.world.SaucerSpawnTicks = saucerInterval(1)
	g.state = StatePlaying
	g.log.Info("game started", zap.Int("lives", g.startingLives))
}

// transition applies the end-of-tick state-machine checks
func (g *Game) transition() {
	if g.world.GameOver {
		g.state = StateGameOver
		g.log.Info("game over",
			zap.Int64("score", g.world.Score),
			zap.Int("wave", g.world.WaveNumber),
			zap.Uint64("tick", g.tick))
		return
	}

	if g.world.ShipDown {
		g.state = StateRespawning
		if idx := g.world.Store.ShipIndex(); idx >= 0 {
			g.log.Info("ship destroyed",
				zap.Int("lives", g.world.Store.At(idx).Ship.Lives))
		}
		return
	}

	if g.state == StateRespawning {
		idx := g.world.Store.ShipIndex()
		if idx >= 0 && g.world.Store.At(idx).Ship.RespawnTicks == 0 {
			g.placeRespawn(idx)
			g.state = StatePlaying
		}
	}
}

// placeRespawn returns the ship to the field. The center is preferred; if
// asteroids crowd a candidate spot, a bounded number of random spots are
// tried and the last one is accepted regardless, so the respawn always
// completes
func (g *Game) placeRespawn(shipIdx int) {
	x := constants.WorldWidthQ / 2
	y := constants.WorldHeightQ / 2

	for attempt := 0; attempt < constants.RespawnMaxAttempts; attempt++ {
		if g.respawnClear(x, y) {
			break
		}
		x = g.world.Rng.Range(0, constants.WorldWidthQ)
		y = g.world.Rng.Range(0, constants.WorldHeightQ)
	}

	ship := g.world.Store.At(shipIdx)
	ship.PosX, ship.PosY = x, y
	ship.VelX, ship.VelY = 0, 0
	ship.Rot = 0
	ship.Ship.InvulnTicks = constants.RespawnShieldTicks
}

// respawnClear reports whether no asteroid sits within the safe radius
func (g *Game) respawnClear(x, y int64) bool {
	safeSq := vmath.Mul(constants.RespawnSafeRadius, constants.RespawnSafeRadius)
	st := g.world.Store
	for i := 0; i < st.Len(); i++ {
		e := st.At(i)
		if !e.Alive || e.Kind != KindAsteroid {
			continue
		}
		if vmath.TorusDistSq(x, y, e.PosX, e.PosY, constants.WorldWidthQ, constants.WorldHeightQ) < safeSq {
			return false
		}
	}
	return true
}

// Reset returns to Ready with a fresh entity store, score 0, wave 1, and
// the RNG reseeded so a session replays identically from the same seed
func (g *Game) Reset() {
	g.world.Store.Reset()
	g.world.Rng = vmath.NewFastRand(g.seed)
	g.world.Events = g.world.Events[:0]
	g.world.Score = 0
	g.world.WaveNumber = 1
	g.world.WavePending = false
	g.world.WavePauseTicks = 0
	g.world.SaucerSpawnTicks = 0
	g.world.ShipDown = false
	g.world.GameOver = false
	g.world.Respawning = false
	g.tick = 0
	g.intent = input.Snapshot{}
	g.state = StateReady
	g.log.Info("reset")
}
