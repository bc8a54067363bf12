package system

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/milk9111/momentum/common"
	"github.com/milk9111/momentum/component"
	"github.com/milk9111/momentum/ecs"
)

// Body is the rigid-body proxy the player drives. The integrator behind it
// applies gravity and collision response between ticks.
type Body interface {
	Velocity() common.Vec3
	SetVelocity(v common.Vec3)
	Position() common.Vec3
	SetYaw(yaw float64)
	SetGravityEnabled(enabled bool)
	SetGroundFriction(friction float64)
}

// Status is a read-only snapshot for HUD and death-screen display.
type Status struct {
	Alive        bool
	Jumps        int
	Dashes       int
	Grounded     bool
	WallRunning  bool
	Dashing      bool
	Punching     bool
	Boosted      bool
	BoostSeconds int
	MaxSpeed     float64
	Velocity     common.Vec3
	Position     common.Vec3
}

// HUDText renders the resource counters.
func (s Status) HUDText() string {
	return fmt.Sprintf("Jumps - %d\nDashes - %d", s.Jumps, s.Dashes)
}

type Option func(p *Player)

func WithLogger(log zerolog.Logger) Option {
	return func(p *Player) {
		p.log = log
	}
}

// WithPunchListener is notified when the parry hitbox opens and closes.
func WithPunchListener(fn func(active bool)) Option {
	return func(p *Player) {
		p.onPunch = fn
	}
}

// WithDeathListener is notified once when the player is killed.
func WithDeathListener(fn func()) Option {
	return func(p *Player) {
		p.onDeath = fn
	}
}

// WithECS spawns the player entity into w instead of a private world. A world
// hosts at most one player.
func WithECS(w *ecs.World) Option {
	return func(p *Player) {
		p.world = w
	}
}

// WithScheduler replaces the default tick phases.
func WithScheduler(s *Scheduler) Option {
	return func(p *Player) {
		p.scheduler = s
	}
}

// Player spawns one entity whose components carry the contact tracker,
// resource pool, timers and movement state, and exposes the collaborator
// contract. Tick runs the scheduler's phases over that entity. It is not safe
// for concurrent use; all calls come from the goroutine that runs Tick.
type Player struct {
	world     *ecs.World
	entity    ecs.Entity
	body      Body
	tun       *component.Tunables
	log       zerolog.Logger
	contacts  *component.ContactTracker
	abilities *AbilityController
	scheduler *Scheduler
	input     *component.Input
	events    *Events
	commit    *Commit
	ticks     uint64

	onPunch func(active bool)
	onDeath func()
}

// NewPlayer spawns a player: grounded, alive, with empty pools.
func NewPlayer(body Body, tun component.Tunables, opts ...Option) *Player {
	p := &Player{
		body:     body,
		tun:      &tun,
		log:      zerolog.Nop(),
		contacts: component.NewContactTracker(),
		input:    &component.Input{},
		events:   &Events{},
		commit:   &Commit{Friction: -1},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.scheduler == nil {
		p.scheduler = DefaultScheduler()
	}
	if p.world == nil {
		p.world = ecs.NewWorld()
	}

	p.abilities = NewAbilityController(AbilityContext{
		GetVelocity:   p.Velocity,
		SetVelocity:   p.setVelocity,
		IsGrounded:    p.contacts.Grounded,
		IsWallRunning: p.contacts.WallRunning,
		Facing: func() common.Vec3 {
			return common.Forward(p.input.Yaw)
		},
		PunchChanged: func(active bool) {
			if p.onPunch != nil {
				p.onPunch(active)
			}
		},
	}, p.tun, p.log)

	p.entity = p.world.CreateEntity()
	if err := p.register(); err != nil {
		p.log.Error().Err(err).Stringer("entity", p.entity).Msg("register player components")
	}

	if body != nil {
		body.SetGravityEnabled(true)
	}
	return p
}

func (p *Player) register() error {
	w, e, a := p.world, p.entity, p.abilities
	errs := []error{
		ecs.Add(w, e, component.PlayerTagComponent, component.PlayerTag{}),
		ecs.Add(w, e, PlayerComponent, p),
		ecs.Add(w, e, AbilityComponent, a),
		ecs.Add(w, e, component.TunablesComponent, p.tun),
		ecs.Add(w, e, component.InputComponent, p.input),
		ecs.Add(w, e, component.ContactComponent, p.contacts),
		ecs.Add(w, e, component.PoolComponent, a.Pool),
		ecs.Add(w, e, component.TimersComponent, a.Timers),
		ecs.Add(w, e, component.SpeedComponent, a.Speed),
		ecs.Add(w, e, component.DashComponent, a.Dash),
		ecs.Add(w, e, component.PunchComponent, a.Punch),
		ecs.Add(w, e, EventsComponent, p.events),
		ecs.Add(w, e, CommitComponent, p.commit),
	}
	if p.body != nil {
		errs = append(errs, ecs.Add(w, e, BodyComponent, p.body))
	}
	return errors.Join(errs...)
}

// Tick advances the player one fixed step. Call it after the physics step.
func (p *Player) Tick() {
	if p == nil {
		return
	}
	p.ticks++
	if !p.Alive() {
		p.events.flush()
		return
	}
	p.scheduler.Update(p.world)
}

func (p *Player) World() *ecs.World  { return p.world }
func (p *Player) Entity() ecs.Entity { return p.entity }

func (p *Player) Ticks() uint64 {
	return p.ticks
}

// SetIntent stores the movement intent; each axis is clamped to [-1, 1].
func (p *Player) SetIntent(moveX, moveZ float64) {
	p.input.MoveX = common.Clamp(moveX, -1, 1)
	p.input.MoveZ = common.Clamp(moveZ, -1, 1)
}

// SetYaw sets the heading used for movement and dash direction.
func (p *Player) SetYaw(yaw float64) {
	p.input.Yaw = yaw
}

func (p *Player) Yaw() float64 {
	return p.input.Yaw
}

func (p *Player) Velocity() common.Vec3 {
	if p.body == nil {
		return common.Vec3{}
	}
	return p.body.Velocity()
}

func (p *Player) setVelocity(v common.Vec3) {
	if p.body != nil {
		p.body.SetVelocity(v)
	}
}

func (p *Player) Position() common.Vec3 {
	if p.body == nil {
		return common.Vec3{}
	}
	return p.body.Position()
}

func (p *Player) Alive() bool       { return p.abilities.Alive() }
func (p *Player) Jumps() int        { return p.abilities.Pool.Count(component.ResourceJump) }
func (p *Player) Dashes() int       { return p.abilities.Pool.Count(component.ResourceDash) }
func (p *Player) Grounded() bool    { return p.contacts.Grounded() }
func (p *Player) WallRunning() bool { return p.contacts.WallRunning() }
func (p *Player) Punching() bool    { return p.abilities.Punch.Active }
func (p *Player) Dashing() bool     { return p.abilities.Dash.Active }
func (p *Player) Boosted() bool     { return p.abilities.Speed.Boosted }
func (p *Player) MaxSpeed() float64 { return p.abilities.Speed.Current }

// Tunables returns a copy of the live parameters.
func (p *Player) Tunables() component.Tunables { return *p.tun }

func (p *Player) Status() Status {
	return Status{
		Alive:        p.Alive(),
		Jumps:        p.Jumps(),
		Dashes:       p.Dashes(),
		Grounded:     p.Grounded(),
		WallRunning:  p.WallRunning(),
		Dashing:      p.Dashing(),
		Punching:     p.Punching(),
		Boosted:      p.Boosted(),
		BoostSeconds: p.abilities.BoostSeconds(),
		MaxSpeed:     p.MaxSpeed(),
		Velocity:     p.Velocity(),
		Position:     p.Position(),
	}
}

// ApplyTunables swaps in reloaded parameters. Ignored once dead.
func (p *Player) ApplyTunables(t component.Tunables) {
	p.abilities.ApplyTunables(t)
}

func (p *Player) push(evt Event) {
	if !p.Alive() {
		return
	}
	if evt.Kind.Contact() {
		p.events.Contact.Push(evt)
		return
	}
	p.events.Action.Push(evt)
}

func (p *Player) OnGroundEnter()     { p.push(Event{Kind: EventGroundEnter}) }
func (p *Player) OnGroundExit()      { p.push(Event{Kind: EventGroundExit}) }
func (p *Player) OnWallStay()        { p.push(Event{Kind: EventWallStay}) }
func (p *Player) OnWallExit()        { p.push(Event{Kind: EventWallExit}) }
func (p *Player) OnDeathPlaneEnter() { p.push(Event{Kind: EventDeathPlane}) }
func (p *Player) OnHazardImpact()    { p.push(Event{Kind: EventHazardImpact}) }
func (p *Player) OnMonkeyBarEnter()  { p.push(Event{Kind: EventMonkeyBar}) }
func (p *Player) OnMushroomEnter()   { p.push(Event{Kind: EventMushroom}) }
func (p *Player) OnGroundPunched()   { p.push(Event{Kind: EventGroundPunched}) }
func (p *Player) OnJumpTriggered()   { p.push(Event{Kind: EventJump}) }
func (p *Player) OnDashTriggered()   { p.push(Event{Kind: EventDash}) }
func (p *Player) OnPunchTriggered()  { p.push(Event{Kind: EventPunch}) }

// OnCrystalConsumed reports a crystal destroyed by the punch hitbox.
func (p *Player) OnCrystalConsumed(kind component.ResourceKind, wasAirborne bool) {
	p.push(Event{Kind: EventCrystalConsumed, Resource: kind, Airborne: wasAirborne})
}

// OnCrystalTouched reports a crystal the player walked into.
func (p *Player) OnCrystalTouched(kind component.ResourceKind) {
	p.push(Event{Kind: EventCrystalTouched, Resource: kind})
}

// Kill is the terminal transition: tunables, pools and velocity are zeroed,
// gravity is disabled and every timer is cancelled. Idempotent.
func (p *Player) Kill() {
	if !p.abilities.Kill() {
		return
	}
	p.events.flush()
	*p.input = component.Input{Yaw: p.input.Yaw}
	p.commit.Pending = false
	if p.body != nil {
		p.body.SetGravityEnabled(false)
		p.body.SetVelocity(common.Vec3{})
	}
	p.log.Info().Uint64("tick", p.ticks).Msg("player killed")
	if p.onDeath != nil {
		p.onDeath()
	}
}

func (p *Player) Parry()                        { p.abilities.Parry() }
func (p *Player) AddJumps() bool                { return p.abilities.AddJumps() }
func (p *Player) AddDashes() bool               { return p.abilities.AddDashes() }
func (p *Player) BounceParry()                  { p.abilities.BounceParry() }
func (p *Player) GravityParry() bool            { return p.abilities.GravityParry() }
func (p *Player) Abilities() *AbilityController { return p.abilities }

func (p *Player) handleContact(evt Event, v playerView) {
	contacts := v.contacts
	switch evt.Kind {
	case EventGroundEnter:
		wasWallRunning := contacts.WallRunning()
		if contacts.GroundBegin() {
			v.commit.Landed = true
			p.log.Debug().Msg("landed")
		}
		if wasWallRunning {
			p.log.Debug().Msg("wall run ended")
		}
	case EventGroundExit:
		if contacts.GroundEnd() {
			p.log.Debug().Msg("airborne")
		}
	case EventWallStay:
		if contacts.WallStay() {
			p.log.Debug().Msg("wall run started")
		}
	case EventWallExit:
		if contacts.WallEnd() {
			p.log.Debug().Msg("wall run ended")
		}
	case EventDeathPlane:
		p.Kill()
	}
}

func (p *Player) handleAction(evt Event) {
	a := p.abilities
	switch evt.Kind {
	case EventHazardImpact:
		p.Kill()
	case EventCrystalConsumed:
		a.CrystalConsumed(evt.Resource, evt.Airborne)
	case EventCrystalTouched:
		a.CrystalTouched(evt.Resource)
	case EventGroundPunched:
		a.GravityParry()
	case EventMonkeyBar:
		a.Swing()
	case EventMushroom:
		a.MushroomBounce()
	case EventJump:
		a.Jump()
	case EventDash:
		a.StartDash()
	case EventPunch:
		a.StartPunch()
	}
}
