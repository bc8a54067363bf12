package system

import (
	"time"

	"github.com/milk9111/momentum/component"
	"github.com/milk9111/momentum/ecs"
)

const defaultTick = 20 * time.Millisecond

// DefaultScheduler orders a tick as contacts, abilities, movement, commit.
func DefaultScheduler() *Scheduler {
	return NewScheduler(ContactPhase{}, AbilityPhase{}, MovementPhase{}, CommitPhase{})
}

// ContactPhase applies queued contact events to the ContactTracker.
type ContactPhase struct{}

func (ContactPhase) Name() string { return "contacts" }

func (ContactPhase) Update(w *ecs.World) {
	eachPlayer(w, func(v playerView) {
		for _, evt := range v.events.Contact.Drain() {
			if !v.player.Alive() {
				return
			}
			v.player.handleContact(evt, v)
		}
	})
}

// AbilityPhase advances effect timers, then runs queued triggers and
// collaborator events in arrival order.
type AbilityPhase struct{}

func (AbilityPhase) Name() string { return "abilities" }

func (AbilityPhase) Update(w *ecs.World) {
	eachPlayer(w, func(v playerView) {
		v.timers.Advance(tickDuration(v.tun))
		for _, evt := range v.events.Action.Drain() {
			if !v.player.Alive() {
				return
			}
			v.player.handleAction(evt)
		}
	})
}

// MovementPhase runs speed decay and the movement solve.
type MovementPhase struct{}

func (MovementPhase) Name() string { return "movement" }

func (MovementPhase) Update(w *ecs.World) {
	eachPlayer(w, func(v playerView) {
		solver := MovementSolver{tun: v.tun}
		grounded := v.contacts.Grounded()
		solver.UpdateSpeed(v.speed, v.timers, grounded)
		v.commit.Solved = solver.Solve(SolveInput{
			Input:       *v.input,
			Velocity:    v.player.Velocity(),
			Grounded:    grounded,
			Dashing:     v.dash.Active,
			WallRunning: v.contacts.WallRunning(),
			MaxSpeed:    v.speed.Current,
			DT:          tickDuration(v.tun),
		})
		v.commit.Pending = true
	})
}

// CommitPhase writes the solved velocity, friction and heading to the body.
type CommitPhase struct{}

func (CommitPhase) Name() string { return "commit" }

func (CommitPhase) Update(w *ecs.World) {
	eachPlayer(w, func(v playerView) {
		c := v.commit
		if v.body == nil || !c.Pending {
			return
		}
		c.Pending = false
		v.body.SetVelocity(c.Solved.Velocity)
		if c.Landed || c.Solved.Friction != c.Friction {
			v.body.SetGroundFriction(c.Solved.Friction)
			c.Friction = c.Solved.Friction
			c.Landed = false
		}
		v.body.SetYaw(v.input.Yaw)
	})
}

func tickDuration(tun *component.Tunables) time.Duration {
	if tun == nil || tun.Tick <= 0 {
		return defaultTick
	}
	return tun.Tick
}
