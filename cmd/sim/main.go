package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Debug    bool   `help:"Whether to enable debug logging."`
	Ticks    int    `help:"Number of fixed ticks to simulate." default:"1500"`
	Script   string `help:"Scenario script under prefabs/scripts. Empty runs with no input." default:"sandbox.tengo"`
	Player   string `help:"Player prefab." default:"player.yaml"`
	Level    string `help:"Level prefab." default:"sandbox.yaml"`
	Watch    bool   `help:"Reload the player prefab and script when they change on disk."`
	Realtime bool   `help:"Pace ticks at wall-clock speed."`
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("sim"),
		kong.Description("headless fixed-tick run of a momentum level"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	status, err := run(config{
		Ticks:    CLI.Ticks,
		Script:   CLI.Script,
		Player:   CLI.Player,
		Level:    CLI.Level,
		Watch:    CLI.Watch,
		Realtime: CLI.Realtime || CLI.Watch,
		Out:      os.Stdout,
	}, log.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	if !status.Alive {
		os.Exit(2)
	}
}
