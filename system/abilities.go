package system

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/milk9111/momentum/common"
	"github.com/milk9111/momentum/component"
)

// AbilityContext provides controlled access to the body for ability
// transitions. It uses callbacks so abilities stay decoupled from the
// physics proxy.
type AbilityContext struct {
	GetVelocity   func() common.Vec3
	SetVelocity   func(v common.Vec3)
	IsGrounded    func() bool
	IsWallRunning func() bool
	Facing        func() common.Vec3
	PunchChanged  func(active bool)
}

// AbilityController owns the resource pool, the effect timers and the
// speed, dash and punch state, and implements every ability transition.
// Rejected transitions are silent no-ops reported as a false return.
type AbilityController struct {
	ctx    AbilityContext
	tun    *component.Tunables
	log    zerolog.Logger
	alive  bool
	Pool   *component.ResourcePool
	Timers *component.Timers
	Speed  *component.Speed
	Dash   *component.Dash
	Punch  *component.Punch
}

func NewAbilityController(ctx AbilityContext, tun *component.Tunables, log zerolog.Logger) *AbilityController {
	a := &AbilityController{
		ctx:    ctx,
		tun:    tun,
		log:    log,
		alive:  true,
		Pool:   component.NewResourcePool(tun.Capacity),
		Timers: &component.Timers{},
		Dash:   &component.Dash{ResetArmed: true},
		Punch:  &component.Punch{},
	}
	a.Speed = &component.Speed{
		Base:       tun.MaxSpeed,
		Current:    tun.MaxSpeed,
		BoostedMax: tun.BoostedMaxSpeed(),
		Floor:      tun.SpeedFloor,
	}
	return a
}

func (a *AbilityController) Alive() bool {
	return a != nil && a.alive
}

func (a *AbilityController) velocity() common.Vec3 {
	if a.ctx.GetVelocity == nil {
		return common.Vec3{}
	}
	return a.ctx.GetVelocity()
}

func (a *AbilityController) setVelocity(v common.Vec3) {
	if a.ctx.SetVelocity != nil {
		a.ctx.SetVelocity(v)
	}
}

func (a *AbilityController) setVertical(y float64) {
	a.setVelocity(a.velocity().WithY(y))
}

func (a *AbilityController) grounded() bool {
	return a.ctx.IsGrounded != nil && a.ctx.IsGrounded()
}

func (a *AbilityController) wallRunning() bool {
	return a.ctx.IsWallRunning != nil && a.ctx.IsWallRunning()
}

// Jump jumps from the ground or falls through to DoubleJump in the air.
func (a *AbilityController) Jump() bool {
	if !a.Alive() {
		return false
	}
	if a.grounded() {
		a.setVertical(a.tun.JumpValue)
		a.log.Debug().Float64("vy", a.tun.JumpValue).Msg("jump")
		return true
	}
	return a.DoubleJump()
}

// DoubleJump spends a jump charge. Not allowed while wall-running.
func (a *AbilityController) DoubleJump() bool {
	if !a.Alive() || a.wallRunning() {
		return false
	}
	if !a.Pool.Consume(component.ResourceJump) {
		a.log.Debug().Msg("double jump: no charges")
		return false
	}
	vy := a.tun.JumpValue * a.tun.DoubleJumpMultiplier
	a.setVertical(vy)
	a.log.Debug().Float64("vy", vy).Int("jumps", a.Pool.Count(component.ResourceJump)).Msg("double jump")
	return true
}

// StartPunch opens the parry hitbox for PunchDuration. Ignored while punching.
func (a *AbilityController) StartPunch() bool {
	if !a.Alive() || a.Punch.Active {
		return false
	}
	a.setPunch(true)
	a.Timers.Schedule(component.TimerPunch, a.tun.PunchDuration, func() {
		a.setPunch(false)
	})
	return true
}

func (a *AbilityController) setPunch(active bool) {
	if a.Punch.Active == active {
		return
	}
	a.Punch.Active = active
	if a.ctx.PunchChanged != nil {
		a.ctx.PunchChanged(active)
	}
}

// Parry starts the speed boost, or extends a running one. Boost time
// accumulates per parry, bounded by BoostCap when it is set.
func (a *AbilityController) Parry() {
	if !a.Alive() {
		return
	}
	add := a.tun.BoostPerParry
	limit := a.tun.BoostCap
	if a.Timers.Active(component.TimerBoost) {
		if limit > 0 {
			room := limit - a.Timers.Remaining(component.TimerBoost)
			if room <= 0 {
				return
			}
			add = min(add, room)
		}
		a.Timers.Extend(component.TimerBoost, add)
		a.log.Debug().Dur("remaining", a.Timers.Remaining(component.TimerBoost)).Msg("boost extended")
		return
	}

	if limit > 0 {
		add = min(add, limit)
	}
	a.Speed.Boosted = true
	a.Speed.Current = a.Speed.BoostedMax
	a.Timers.Cancel(component.TimerSpeedDecay)
	a.Timers.Schedule(component.TimerBoost, add, func() {
		a.Speed.Boosted = false
		a.log.Debug().Float64("max_speed", a.Speed.Current).Msg("boost ended")
	})
	a.log.Debug().Dur("remaining", add).Msg("boost started")
}

// BoostSeconds reports the remaining boost in whole seconds, rounded up.
func (a *AbilityController) BoostSeconds() int {
	r := a.Timers.Remaining(component.TimerBoost)
	return int((r + time.Second - 1) / time.Second)
}

func (a *AbilityController) BounceParry() {
	if !a.Alive() {
		return
	}
	a.setVertical(a.tun.JumpValue * a.tun.BounceParryMultiplier)
}

// GravityParry bounces the player off the ground when falling at or past
// the threshold.
func (a *AbilityController) GravityParry() bool {
	if !a.Alive() || !a.tun.GravityParryEnabled {
		return false
	}
	v := a.velocity()
	if v.Y > a.tun.GravityParryThreshold {
		return false
	}
	a.setVelocity(v.WithY(0))
	a.setVertical(a.tun.JumpValue * a.tun.GravityParryMultiplier)
	a.log.Debug().Float64("fall_speed", v.Y).Msg("gravity parry")
	return true
}

func (a *AbilityController) AddJumps() bool {
	if !a.Alive() {
		return false
	}
	return a.Pool.Add(component.ResourceJump)
}

func (a *AbilityController) AddDashes() bool {
	if !a.Alive() {
		return false
	}
	return a.Pool.Add(component.ResourceDash)
}

func (a *AbilityController) add(kind component.ResourceKind) bool {
	if kind == component.ResourceDash {
		return a.AddDashes()
	}
	return a.AddJumps()
}

// CrystalConsumed is the parry path: a punched crystal boosts, grants its
// charge and bounces the player when it was airborne.
func (a *AbilityController) CrystalConsumed(kind component.ResourceKind, airborne bool) {
	if !a.Alive() {
		return
	}
	a.Parry()
	a.add(kind)
	if airborne {
		a.BounceParry()
	}
	a.log.Debug().Stringer("kind", kind).Bool("airborne", airborne).Msg("parry")
}

// CrystalTouched grants the charge of a crystal walked into, with no boost.
func (a *AbilityController) CrystalTouched(kind component.ResourceKind) {
	if !a.Alive() {
		return
	}
	a.add(kind)
}

// StartDash spends a dash charge and launches the player along its facing at
// DashMultiplier times the current cap. The cap is bypassed for DashDuration,
// after which the pre-dash velocity is restored if dash reset is armed.
func (a *AbilityController) StartDash() bool {
	if !a.Alive() || a.Dash.Active || a.wallRunning() {
		return false
	}
	if !a.Pool.Consume(component.ResourceDash) {
		a.log.Debug().Msg("dash: no charges")
		return false
	}
	facing := common.Vec3{Z: 1}
	if a.ctx.Facing != nil {
		facing = a.ctx.Facing()
	}
	a.Dash.Active = true
	a.Dash.Saved = a.velocity()
	a.setVelocity(facing.Scale(a.Speed.Current * a.tun.DashMultiplier))
	a.Timers.Schedule(component.TimerDash, a.tun.DashDuration, a.endDash)
	a.log.Debug().Int("dashes", a.Pool.Count(component.ResourceDash)).Msg("dash")
	return true
}

func (a *AbilityController) endDash() {
	a.Dash.Active = false
	if a.Dash.ResetArmed {
		a.setVelocity(a.Dash.Saved)
	}
}

// disarmDashReset keeps momentum from a bounce or swing if a dash ends
// during the lock window.
func (a *AbilityController) disarmDashReset() {
	a.Dash.ResetArmed = false
	a.Timers.Schedule(component.TimerDashResetLock, a.tun.DashResetLock, func() {
		a.Dash.ResetArmed = true
	})
}

func (a *AbilityController) MushroomBounce() {
	if !a.Alive() {
		return
	}
	a.setVertical(a.tun.JumpValue * a.tun.MushroomMultiplier)
	a.disarmDashReset()
}

// Swing snaps the player down to SwingEntryVelocity, then nudges it upward
// every SwingInterval until vertical velocity reaches SwingReleaseVelocity.
func (a *AbilityController) Swing() {
	if !a.Alive() {
		return
	}
	a.disarmDashReset()
	a.setVertical(a.tun.SwingEntryVelocity)

	mass := a.tun.Mass
	if mass <= 0 {
		mass = 1
	}
	nudge := a.tun.SwingForce * a.tun.Tick.Seconds() / mass
	step := func() bool {
		v := a.velocity()
		if v.Y >= a.tun.SwingReleaseVelocity {
			return false
		}
		a.setVelocity(v.WithY(v.Y + nudge))
		return true
	}
	if !step() {
		a.Timers.Cancel(component.TimerSwing)
		return
	}
	a.Timers.SchedulePeriodic(component.TimerSwing, a.tun.SwingInterval, step)
}

// Kill collapses every ability into the inert state. Idempotent.
func (a *AbilityController) Kill() bool {
	if !a.Alive() {
		return false
	}
	a.alive = false
	a.Timers.CancelAll()
	a.Pool.ResetAll()
	a.tun.JumpValue = 0
	a.tun.PlayerSpeed = 0
	a.tun.MaxSpeed = 0
	*a.Speed = component.Speed{Floor: a.Speed.Floor}
	*a.Dash = component.Dash{ResetArmed: true}
	a.setPunch(false)
	return true
}

// ApplyTunables swaps in reloaded parameters. Ignored once dead.
func (a *AbilityController) ApplyTunables(t component.Tunables) {
	if !a.Alive() {
		return
	}
	*a.tun = t
	a.Pool.SetCapacity(t.Capacity)
	a.Speed.Base = t.MaxSpeed
	a.Speed.BoostedMax = t.BoostedMaxSpeed()
	a.Speed.Floor = t.SpeedFloor
	if a.Speed.Boosted {
		a.Speed.Current = a.Speed.BoostedMax
	} else if a.Speed.Current < a.Speed.Base {
		a.Speed.Current = a.Speed.Base
	}
}
