package component

import "github.com/milk9111/momentum/ecs"

// PlayerTag marks the entity driven by a system.Player.
type PlayerTag struct{}

var (
	PlayerTagComponent = ecs.NewComponent[PlayerTag]()
	TunablesComponent  = ecs.NewComponent[*Tunables]()
	InputComponent     = ecs.NewComponent[*Input]()
	ContactComponent   = ecs.NewComponent[*ContactTracker]()
	PoolComponent      = ecs.NewComponent[*ResourcePool]()
	TimersComponent    = ecs.NewComponent[*Timers]()
	SpeedComponent     = ecs.NewComponent[*Speed]()
	DashComponent      = ecs.NewComponent[*Dash]()
	PunchComponent     = ecs.NewComponent[*Punch]()
)
