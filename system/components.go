package system

import (
	"github.com/milk9111/momentum/component"
	"github.com/milk9111/momentum/ecs"
)

// Events holds the inbound collaborator queues of one player.
type Events struct {
	Contact EventQueue
	Action  EventQueue
}

func (e *Events) flush() {
	e.Contact.flush()
	e.Action.flush()
}

// Commit carries the movement solve into the commit phase and remembers the
// last friction written to the body.
type Commit struct {
	Solved   SolveResult
	Pending  bool
	Friction float64
	Landed   bool
}

var (
	PlayerComponent  = ecs.NewComponent[*Player]()
	BodyComponent    = ecs.NewComponent[Body]()
	EventsComponent  = ecs.NewComponent[*Events]()
	CommitComponent  = ecs.NewComponent[*Commit]()
	AbilityComponent = ecs.NewComponent[*AbilityController]()
)

// playerView is the component set a tick phase reads for one player entity.
// body is nil for a bodiless player.
type playerView struct {
	entity   ecs.Entity
	player   *Player
	body     Body
	tun      *component.Tunables
	input    *component.Input
	contacts *component.ContactTracker
	timers   *component.Timers
	speed    *component.Speed
	dash     *component.Dash
	events   *Events
	commit   *Commit
}

func viewOf(w *ecs.World, e ecs.Entity) (playerView, bool) {
	v := playerView{entity: e}
	var ok [9]bool
	v.player, ok[0] = ecs.Get(w, e, PlayerComponent)
	v.tun, ok[1] = ecs.Get(w, e, component.TunablesComponent)
	v.input, ok[2] = ecs.Get(w, e, component.InputComponent)
	v.contacts, ok[3] = ecs.Get(w, e, component.ContactComponent)
	v.timers, ok[4] = ecs.Get(w, e, component.TimersComponent)
	v.speed, ok[5] = ecs.Get(w, e, component.SpeedComponent)
	v.dash, ok[6] = ecs.Get(w, e, component.DashComponent)
	v.events, ok[7] = ecs.Get(w, e, EventsComponent)
	v.commit, ok[8] = ecs.Get(w, e, CommitComponent)
	v.body, _ = ecs.Get(w, e, BodyComponent)
	for _, has := range ok {
		if !has {
			return playerView{}, false
		}
	}
	return v, true
}

// eachPlayer visits every live player entity in id order.
func eachPlayer(w *ecs.World, fn func(v playerView)) {
	for _, e := range w.Query(component.PlayerTagComponent.ID(), PlayerComponent.ID()) {
		if v, ok := viewOf(w, e); ok && v.player.Alive() {
			fn(v)
		}
	}
}
