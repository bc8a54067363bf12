package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/momentum/prefabs"
)

// Category tags every shape in the space. It doubles as the cp collision type.
type Category int

const (
	CategoryGround Category = iota + 1
	CategoryWall
	CategoryDeathPlane
	CategoryMushroom
	CategoryMonkeyBar
	CategoryJumpCrystal
	CategoryDashCrystal
	CategoryHazard
	CategoryHazardTrigger
	CategoryHitbox
	CategoryPlayer
)

var categoryNames = map[Category]string{
	CategoryGround:        "ground",
	CategoryWall:          "wall",
	CategoryDeathPlane:    "death_plane",
	CategoryMushroom:      "mushroom",
	CategoryMonkeyBar:     "monkey_bar",
	CategoryJumpCrystal:   "jump_crystal",
	CategoryDashCrystal:   "dash_crystal",
	CategoryHazard:        "hazard",
	CategoryHazardTrigger: "hazard_trigger",
	CategoryHitbox:        "hitbox",
	CategoryPlayer:        "player",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

func (c Category) collisionType() cp.CollisionType {
	return cp.CollisionType(c)
}

// Sensor reports whether shapes of this category only detect overlap.
func (c Category) Sensor() bool {
	switch c {
	case CategoryMushroom, CategoryMonkeyBar, CategoryJumpCrystal, CategoryDashCrystal,
		CategoryHazardTrigger, CategoryHitbox:
		return true
	}
	return false
}

func segmentCategory(name string) (Category, bool) {
	switch name {
	case prefabs.SegmentGround:
		return CategoryGround, true
	case prefabs.SegmentWall:
		return CategoryWall, true
	case prefabs.SegmentDeathPlane:
		return CategoryDeathPlane, true
	}
	return 0, false
}

func triggerCategory(kind string) (Category, bool) {
	switch kind {
	case prefabs.TriggerJumpCrystal:
		return CategoryJumpCrystal, true
	case prefabs.TriggerDashCrystal:
		return CategoryDashCrystal, true
	case prefabs.TriggerMushroom:
		return CategoryMushroom, true
	case prefabs.TriggerMonkeyBar:
		return CategoryMonkeyBar, true
	case prefabs.TriggerFallingObstacle:
		return CategoryHazard, true
	}
	return 0, false
}

func boxBB(b prefabs.BoxSpec) cp.BB {
	return cp.BB{
		L: b.X - b.Width/2,
		B: b.Y - b.Height/2,
		R: b.X + b.Width/2,
		T: b.Y + b.Height/2,
	}
}
