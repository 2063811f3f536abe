package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/wrapshot/config"
	"github.com/lixenwraith/wrapshot/constants"
	"github.com/lixenwraith/wrapshot/engine"
	"github.com/lixenwraith/wrapshot/input"
)

var (
	configFlag = flag.String("config", "wrapshot.yaml", "Path to the config file")
	seedFlag   = flag.String("seed", "", "Session seed, overrides the config value")
	debugFlag  = flag.Bool("debug", false, "Enable debug logging to wrapshot.log")
)

// Terminals report key presses, never releases, so a press arms its intent
// for a short window of ticks and the window is re-armed on repeat
const keyHoldTicks = 6

type heldKeys struct {
	left, right, thrust int
}

func (h *heldKeys) decay() {
	if h.left > 0 {
		h.left--
	}
	if h.right > 0 {
		h.right--
	}
	if h.thrust > 0 {
		h.thrust--
	}
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nwrapshot crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != "" {
		cfg.Seed = *seedFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}

	logger := zap.NewNop()
	if cfg.Debug {
		lcfg := zap.NewDevelopmentConfig()
		lcfg.OutputPaths = []string{"wrapshot.log"}
		if logger, err = lcfg.Build(); err != nil {
			fmt.Fprintf(os.Stderr, "logger: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	game := engine.NewGame(cfg, logger)

	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	run(game, screen, events)
	close(quit)
}

// run drives the fixed-rate loop: drain input, advance one tick, draw
func run(game *engine.Game, screen tcell.Screen, events <-chan tcell.Event) {
	ticker := time.NewTicker(time.Second / constants.TickRate)
	defer ticker.Stop()

	var agg input.Aggregator
	var held heldKeys

	for range ticker.C {
		for {
			select {
			case ev := <-events:
				switch tev := ev.(type) {
				case *tcell.EventKey:
					if handleKey(tev, &agg, &held) {
						return
					}
				case *tcell.EventResize:
					screen.Sync()
				}
				continue
			default:
			}
			break
		}

		snap := agg.Snapshot()
		snap.TurnLeft = snap.TurnLeft || held.left > 0
		snap.TurnRight = snap.TurnRight || held.right > 0
		snap.Thrust = snap.Thrust || held.thrust > 0
		held.decay()

		game.SubmitInput(snap)
		game.AdvanceTick()
		draw(game, screen)
	}
}

// handleKey maps a key event onto intents; returns true on quit
func handleKey(ev *tcell.EventKey, agg *input.Aggregator, held *heldKeys) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		held.left = keyHoldTicks
	case tcell.KeyRight:
		held.right = keyHoldTicks
	case tcell.KeyUp:
		held.thrust = keyHoldTicks
	case tcell.KeyEnter:
		agg.PressStart()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'a', 'A':
			held.left = keyHoldTicks
		case 'd', 'D':
			held.right = keyHoldTicks
		case 'w', 'W':
			held.thrust = keyHoldTicks
		case ' ':
			agg.PressFire()
		case 'h', 'H':
			agg.PressHyperspace()
		}
	}
	return false
}

func draw(game *engine.Game, screen tcell.Screen) {
	screen.Clear()
	sw, sh := screen.Size()
	if sw < 2 || sh < 3 {
		screen.Show()
		return
	}

	worldW, worldH := engine.Dimensions()
	// Top row is the HUD; the field scales into the rest
	fieldH := sh - 1
	toCell := func(x, y float64) (int, int) {
		cx := int(x / worldW * float64(sw))
		cy := 1 + int(y/worldH*float64(fieldH))
		if cx < 0 {
			cx = 0
		} else if cx >= sw {
			cx = sw - 1
		}
		if cy < 1 {
			cy = 1
		} else if cy >= sh {
			cy = sh - 1
		}
		return cx, cy
	}

	for _, e := range game.RenderState() {
		switch e.Kind {
		case engine.KindShip:
			cx, cy := toCell(e.X, e.Y)
			style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
			if e.Shield {
				style = style.Foreground(tcell.ColorAqua)
			}
			screen.SetContent(cx, cy, shipGlyph(e.Rot), nil, style)
		case engine.KindAsteroid:
			style := tcell.StyleDefault.Foreground(tcell.ColorGray)
			for _, v := range e.Verts {
				cx, cy := toCell(e.X+v.X, e.Y+v.Y)
				screen.SetContent(cx, cy, '#', nil, style)
			}
		case engine.KindSaucer:
			style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
			for _, v := range e.Verts {
				cx, cy := toCell(e.X+v.X, e.Y+v.Y)
				screen.SetContent(cx, cy, '=', nil, style)
			}
		case engine.KindBullet:
			cx, cy := toCell(e.X, e.Y)
			style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
			if e.Owner == engine.SaucerFired {
				style = style.Foreground(tcell.ColorRed)
			}
			screen.SetContent(cx, cy, 'o', nil, style)
		case engine.KindParticle:
			cx, cy := toCell(e.X, e.Y)
			screen.SetContent(cx, cy, '.', nil, tcell.StyleDefault.Foreground(tcell.ColorDarkGray))
		}
	}

	drawHUD(game, screen, sw)
	screen.Show()
}

// shipGlyph picks an arrow for the nearest of eight headings
func shipGlyph(rot float64) rune {
	glyphs := [8]rune{'>', '\\', 'v', '/', '<', '\\', '^', '/'}
	octant := int(rot*8+0.5) % 8
	if octant < 0 {
		octant += 8
	}
	return glyphs[octant]
}

func drawHUD(game *engine.Game, screen tcell.Screen, sw int) {
	hud := game.HUDState()

	var line string
	switch hud.State {
	case engine.StateReady:
		line = fmt.Sprintf(" WRAPSHOT | press Enter to start | lives %d", hud.Lives)
	case engine.StateGameOver:
		line = fmt.Sprintf(" GAME OVER | score %d | wave %d | Enter to restart", hud.Score, hud.Wave)
	default:
		line = fmt.Sprintf(" score %d   lives %d   wave %d", hud.Score, hud.Lives, hud.Wave)
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	for i, r := range line {
		if i >= sw {
			break
		}
		screen.SetContent(i, 0, r, nil, style)
	}
}
