package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/milk9111/momentum/session"
)

var CLI struct {
	Debug       bool   `help:"Enable debug logging and the debug overlay."`
	BaseMonitor bool   `short:"m" help:"Use the base monitor instead of the primary (for multi-monitor setups)."`
	Script      string `help:"Scenario script under prefabs/scripts. Empty plays from the keyboard."`
	Player      string `help:"Player prefab." default:"player.yaml"`
	Level       string `help:"Level prefab." default:"sandbox.yaml"`
	Watch       bool   `help:"Reload the player prefab and script when they change on disk." default:"true" negatable:""`
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("momentum"),
		kong.Description("movement playground"),
		kong.UsageOnError())

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if CLI.BaseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("momentum")

	game, err := NewGame(session.Config{
		Script: CLI.Script,
		Player: CLI.Player,
		Level:  CLI.Level,
	}, CLI.Debug, CLI.Watch, log.Logger)
	exitOnError(log.Logger, err)

	err = ebiten.RunGame(game)
	game.Close()
	exitOnError(log.Logger, err)
}
