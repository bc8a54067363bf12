package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"
	"golang.org/x/image/colornames"

	"github.com/milk9111/momentum/prefabs"
	"github.com/milk9111/momentum/session"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	pixelsPerMeter = 32
)

const controlsText = `A/D, arrows  run left/right
W/S          strafe in depth
Space        jump / double jump
Shift, K     dash
J            punch (parry)
R            restart
P            toggle controls
F12          quit`

type Game struct {
	cfg     session.Config
	debug   bool
	log     zerolog.Logger
	input   *Input
	camera  *Camera
	session *session.Session
	watcher *prefabs.Watcher

	showHelp bool
}

func NewGame(cfg session.Config, debug, watch bool, log zerolog.Logger) (*Game, error) {
	g := &Game{
		cfg:      cfg,
		debug:    debug,
		log:      log,
		input:    NewInput(),
		camera:   NewCamera(baseWidth, baseHeight, pixelsPerMeter),
		showHelp: true,
	}
	if err := g.restart(); err != nil {
		return nil, err
	}
	if watch {
		w, err := session.Watch()
		if err != nil {
			log.Warn().Err(err).Msg("hot reload disabled")
		}
		g.watcher = w
	}
	ebiten.SetTPS(int(time.Second / g.session.TickDuration()))
	return g, nil
}

// restart rebuilds the player and the world from the prefabs on disk.
func (g *Game) restart() error {
	s, err := session.New(g.cfg, g.log)
	if err != nil {
		return err
	}
	g.session = s
	pos := s.Player().Position()
	g.camera.SnapTo(pos.X, pos.Y)
	g.input = NewInput()
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.input.Update()
	if g.input.QuitPressed {
		return ebiten.Termination
	}
	if g.input.HelpPressed {
		g.showHelp = !g.showHelp
	}
	if g.input.RestartPressed {
		if err := g.restart(); err != nil {
			g.log.Warn().Err(err).Msg("restart failed")
		}
		return nil
	}

	g.session.Drain(g.watcher)
	if !g.session.Scripted() {
		g.input.Apply(g.session.Player())
	}
	if err := g.session.Tick(); err != nil {
		return err
	}

	pos := g.session.Player().Position()
	g.camera.Update(pos.X, pos.Y)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	world := g.session.World()
	for _, d := range world.Drawables() {
		x, y, w, h := g.camera.ToScreen(d.BB)
		vector.FillRect(screen, x, y, w, h, d.Color, false)
	}

	player := g.session.Player()
	status := player.Status()
	x, y, w, h := g.camera.ToScreen(world.Body().BB())
	body := colornames.Crimson
	if status.Boosted {
		body = colornames.Gold
	}
	if !status.Alive {
		body = colornames.Dimgray
	}
	vector.FillRect(screen, x, y, w, h, body, false)
	if g.debug {
		drawPhysicsDebug(screen, world.Space(), g.camera)
	}
	if status.Punching {
		vector.StrokeRect(screen, x-2, y-2, w+4, h+4, 2, colornames.White, false)
	}

	ebitenutil.DebugPrintAt(screen, status.HUDText(), 10, 10)
	if status.Boosted {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Boost - %ds", status.BoostSeconds), 10, 42)
	}
	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.1f  tick: %d  max speed: %.2f\npos: %.2f %.2f %.2f\nvel: %.2f %.2f %.2f",
			ebiten.ActualTPS(), g.session.Ticks(), status.MaxSpeed,
			status.Position.X, status.Position.Y, status.Position.Z,
			status.Velocity.X, status.Velocity.Y, status.Velocity.Z), 10, baseHeight-60)
	}
	if !status.Alive {
		ebitenutil.DebugPrintAt(screen, "You died. Press R to restart.", baseWidth/2-90, baseHeight/2)
	}
	if g.showHelp {
		ebitenutil.DebugPrintAt(screen, controlsText, baseWidth-240, 10)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func exitOnError(log zerolog.Logger, err error) {
	if err != nil {
		log.Error().Err(err).Msg("playground")
		os.Exit(1)
	}
}
