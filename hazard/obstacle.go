package hazard

type ObstacleState int

const (
	ObstacleFrozen ObstacleState = iota
	ObstacleFalling
	ObstacleDisabled
)

func (s ObstacleState) String() string {
	switch s {
	case ObstacleFrozen:
		return "frozen"
	case ObstacleFalling:
		return "falling"
	case ObstacleDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// ObstacleHooks let the physics layer follow state changes.
type ObstacleHooks struct {
	Collapse func()
	Disable  func()
}

// FallingObstacle hangs frozen until the player enters its drop trigger,
// then falls. Landing on the ground disables it; touching the player while
// it is still active kills.
type FallingObstacle struct {
	Name   string
	state  ObstacleState
	target Target
	hooks  ObstacleHooks
}

func NewFallingObstacle(name string, target Target, hooks ObstacleHooks) *FallingObstacle {
	return &FallingObstacle{Name: name, target: target, hooks: hooks}
}

func (o *FallingObstacle) State() ObstacleState {
	return o.state
}

// TriggerEnter drops a frozen obstacle.
func (o *FallingObstacle) TriggerEnter() bool {
	if o.state != ObstacleFrozen {
		return false
	}
	o.state = ObstacleFalling
	if o.hooks.Collapse != nil {
		o.hooks.Collapse()
	}
	return true
}

func (o *FallingObstacle) HitGround() bool {
	if o.state == ObstacleDisabled {
		return false
	}
	o.state = ObstacleDisabled
	if o.hooks.Disable != nil {
		o.hooks.Disable()
	}
	return true
}

func (o *FallingObstacle) HitPlayer() bool {
	if o.state == ObstacleDisabled || o.target == nil {
		return false
	}
	o.target.OnHazardImpact()
	return true
}
