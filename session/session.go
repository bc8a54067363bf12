// Package session assembles one playable run: the level world, the player
// attached to it and an optional scenario script. Both the playground and the
// headless simulator drive a Session, one fixed tick at a time.
package session

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/milk9111/momentum/ecs"
	"github.com/milk9111/momentum/physics"
	"github.com/milk9111/momentum/prefabs"
	"github.com/milk9111/momentum/script"
	"github.com/milk9111/momentum/system"
)

// Config names the prefabs a session is built from. An empty Script runs
// without a scenario.
type Config struct {
	Script string
	Player string
	Level  string
}

type Session struct {
	cfg      Config
	log      zerolog.Logger
	level    *prefabs.LevelSpec
	entities *ecs.World
	world    *physics.World
	player   *system.Player
	runtime  *script.Runtime
	ticks    uint64
}

// New loads the prefabs and spawns the player on the level's spawn point.
func New(cfg Config, log zerolog.Logger) (*Session, error) {
	pspec, err := prefabs.LoadPlayerSpec(cfg.Player)
	if err != nil {
		return nil, err
	}
	lspec, err := prefabs.LoadLevelSpec(cfg.Level)
	if err != nil {
		return nil, err
	}

	s := &Session{cfg: cfg, log: log, level: lspec, entities: ecs.NewWorld()}
	tun := pspec.Tunables()
	s.world = physics.NewWorld(lspec, tun.Mass,
		physics.WithLogger(log),
		physics.WithECS(s.entities))
	s.player = system.NewPlayer(s.world.Body(), tun,
		system.WithLogger(log),
		system.WithECS(s.entities),
		system.WithPunchListener(s.world.SetPunching),
		system.WithDeathListener(func() {
			log.Info().Str("level", lspec.Name).Uint64("tick", s.ticks).Msg("player died")
		}),
	)
	s.world.Attach(s.player)

	if cfg.Script != "" {
		rt, err := script.Load(cfg.Script, log)
		if err != nil {
			return nil, err
		}
		s.runtime = rt
	}
	return s, nil
}

func (s *Session) ECS() *ecs.World           { return s.entities }
func (s *Session) World() *physics.World     { return s.world }
func (s *Session) Player() *system.Player    { return s.player }
func (s *Session) Level() *prefabs.LevelSpec { return s.level }
func (s *Session) Ticks() uint64             { return s.ticks }
func (s *Session) Scripted() bool            { return s.runtime != nil }

// TickDuration is the fixed step of the loaded player tunables.
func (s *Session) TickDuration() time.Duration {
	return s.player.Tunables().Tick
}

// Tick runs the scenario, steps the physics world and then the player.
func (s *Session) Tick() error {
	if s.runtime != nil {
		if err := s.runtime.Update(s.player, s.ticks); err != nil {
			return err
		}
	}
	s.world.Step(s.TickDuration())
	s.player.Tick()
	s.ticks++
	return nil
}

// Drain applies every pending watcher change without blocking.
func (s *Session) Drain(w *prefabs.Watcher) {
	if w == nil {
		return
	}
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return
			}
			s.Reload(name)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			s.log.Warn().Err(err).Msg("watch error")
		default:
			return
		}
	}
}

// Reload reapplies the player prefab or recompiles the scenario when path
// names one of them. A file that fails to load leaves the session unchanged.
func (s *Session) Reload(path string) bool {
	base := filepath.Base(path)
	switch {
	case base == filepath.Base(s.cfg.Player):
		spec, err := prefabs.LoadPlayerSpec(s.cfg.Player)
		if err != nil {
			s.log.Warn().Err(err).Msg("player reload failed")
			return false
		}
		s.player.ApplyTunables(spec.Tunables())
		s.log.Info().Str("file", base).Msg("player tunables reloaded")
		return true
	case s.cfg.Script != "" && base == filepath.Base(s.cfg.Script):
		rt, err := script.Load(s.cfg.Script, s.log)
		if err != nil {
			s.log.Warn().Err(err).Msg("script reload failed")
			return false
		}
		s.runtime = rt
		s.log.Info().Str("file", base).Msg("script reloaded")
		return true
	}
	return false
}

// Watch starts a watcher on the prefab directories.
func Watch() (*prefabs.Watcher, error) {
	w, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
	if err != nil {
		return nil, fmt.Errorf("session: watch: %w", err)
	}
	return w, nil
}
