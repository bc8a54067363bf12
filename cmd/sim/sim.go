package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/milk9111/momentum/prefabs"
	"github.com/milk9111/momentum/session"
	"github.com/milk9111/momentum/system"
)

type config struct {
	Ticks    int
	Script   string
	Player   string
	Level    string
	Watch    bool
	Realtime bool
	Out      io.Writer
}

// run simulates cfg.Ticks fixed ticks, printing the HUD once per simulated
// second. It stops early when the player dies.
func run(cfg config, log zerolog.Logger) (system.Status, error) {
	s, err := session.New(session.Config{
		Script: cfg.Script,
		Player: cfg.Player,
		Level:  cfg.Level,
	}, log)
	if err != nil {
		return system.Status{}, err
	}
	player := s.Player()

	var watcher *prefabs.Watcher
	if cfg.Watch {
		watcher, err = session.Watch()
		if err != nil {
			return system.Status{}, err
		}
		defer watcher.Close()
	}

	tick := s.TickDuration()
	var pace *time.Ticker
	if cfg.Realtime {
		pace = time.NewTicker(tick)
		defer pace.Stop()
	}
	perSecond := int(time.Second / tick)

	for i := 0; i < cfg.Ticks; i++ {
		s.Drain(watcher)
		if err := s.Tick(); err != nil {
			return player.Status(), err
		}

		if (i+1)%perSecond == 0 {
			hud := strings.ReplaceAll(player.Status().HUDText(), "\n", " | ")
			fmt.Fprintf(cfg.Out, "[%3ds] %s\n", (i+1)/perSecond, hud)
		}
		if !player.Alive() {
			fmt.Fprintf(cfg.Out, "player died at tick %d\n", i+1)
			break
		}
		if pace != nil {
			<-pace.C
		}
	}
	return player.Status(), nil
}
