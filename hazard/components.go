package hazard

import "github.com/milk9111/momentum/ecs"

// Collaborators live as components on the entity of the level shape that
// reports them. A falling obstacle is an ObstacleComponent on its body shape
// and an ObstacleTriggerComponent on its trigger sensor.
var (
	CrystalComponent         = ecs.NewComponent[*Crystal]()
	MushroomComponent        = ecs.NewComponent[*Mushroom]()
	MonkeyBarComponent       = ecs.NewComponent[*MonkeyBar]()
	DeathPlaneComponent      = ecs.NewComponent[*DeathPlane]()
	ObstacleComponent        = ecs.NewComponent[*FallingObstacle]()
	ObstacleTriggerComponent = ecs.NewComponent[*FallingObstacle]()
)
