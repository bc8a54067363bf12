package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/momentum/ecs"
	"github.com/milk9111/momentum/hazard"
)

type contactFunc func(w *World, self, other *cp.Shape)

// handler registers callbacks for contacts between a and b. The callbacks
// receive the shapes in handler order.
func (w *World) handler(a, b Category, begin, stay, separate contactFunc) {
	h := w.space.NewCollisionHandler(a.collisionType(), b.collisionType())
	h.UserData = w
	if begin != nil {
		h.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			world, ok := userData.(*World)
			if !ok || world == nil || world.target == nil {
				return true
			}
			self, other := arb.Shapes()
			begin(world, self, other)
			return true
		}
	}
	if stay != nil {
		h.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			world, ok := userData.(*World)
			if !ok || world == nil || world.target == nil {
				return true
			}
			self, other := arb.Shapes()
			stay(world, self, other)
			return true
		}
	}
	if separate != nil {
		h.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
			world, ok := userData.(*World)
			if !ok || world == nil || world.target == nil {
				return
			}
			self, other := arb.Shapes()
			separate(world, self, other)
		}
	}
}

func (w *World) setupHandlers() {
	w.handler(CategoryPlayer, CategoryGround, groundBegin, nil, groundSeparate)
	w.handler(CategoryPlayer, CategoryWall, nil, wallStay, wallSeparate)
	w.handler(CategoryPlayer, CategoryDeathPlane, deathPlaneBegin, nil, nil)
	w.handler(CategoryPlayer, CategoryMushroom, mushroomBegin, nil, nil)
	w.handler(CategoryPlayer, CategoryMonkeyBar, monkeyBarBegin, nil, nil)
	w.handler(CategoryPlayer, CategoryJumpCrystal, crystalTouch, nil, nil)
	w.handler(CategoryPlayer, CategoryDashCrystal, crystalTouch, nil, nil)
	w.handler(CategoryPlayer, CategoryHazardTrigger, obstacleTrigger, nil, nil)
	w.handler(CategoryPlayer, CategoryHazard, obstacleHitPlayer, nil, nil)
	w.handler(CategoryHazard, CategoryGround, obstacleHitGround, nil, nil)
	w.handler(CategoryHitbox, CategoryJumpCrystal, crystalPunch, nil, nil)
	w.handler(CategoryHitbox, CategoryDashCrystal, crystalPunch, nil, nil)
	w.handler(CategoryHitbox, CategoryGround, groundPunch, nil, nil)
}

// Only the first ground contact and the last separation reach the player.
func groundBegin(w *World, _, other *cp.Shape) {
	before := len(w.ground)
	w.ground[other] = struct{}{}
	if before == 0 {
		w.target.OnGroundEnter()
	}
}

func groundSeparate(w *World, _, other *cp.Shape) {
	if _, ok := w.ground[other]; !ok {
		return
	}
	delete(w.ground, other)
	if len(w.ground) == 0 {
		w.target.OnGroundExit()
	}
}

func wallStay(w *World, _, _ *cp.Shape) {
	w.target.OnWallStay()
}

func wallSeparate(w *World, _, _ *cp.Shape) {
	w.target.OnWallExit()
}

// collaborator looks up the component handle on shape's entity. Shapes
// already taken out of the level report nothing.
func collaborator[T any](w *World, shape *cp.Shape, handle ecs.ComponentHandle[T]) (T, bool) {
	var zero T
	if w.removed(shape) {
		return zero, false
	}
	e, _ := w.entityOf(shape)
	return ecs.Get(w.entities, e, handle)
}

func deathPlaneBegin(w *World, _, other *cp.Shape) {
	if plane, ok := collaborator(w, other, hazard.DeathPlaneComponent); ok {
		w.log.Debug().Str("plane", plane.Name).Msg("death plane")
		plane.Enter()
	}
}

func mushroomBegin(w *World, _, other *cp.Shape) {
	if m, ok := collaborator(w, other, hazard.MushroomComponent); ok {
		m.Enter()
	}
}

func monkeyBarBegin(w *World, _, other *cp.Shape) {
	if bar, ok := collaborator(w, other, hazard.MonkeyBarComponent); ok {
		bar.Enter()
	}
}

func crystalTouch(w *World, _, other *cp.Shape) {
	c, ok := collaborator(w, other, hazard.CrystalComponent)
	if !ok || !c.Touch() {
		return
	}
	w.log.Debug().Str("crystal", c.Name).Msg("crystal touched")
	w.remove(other)
}

func crystalPunch(w *World, _, other *cp.Shape) {
	c, ok := collaborator(w, other, hazard.CrystalComponent)
	if !ok || !w.hitbox.HitCrystal(c) {
		return
	}
	w.log.Debug().Str("crystal", c.Name).Bool("airborne", c.Airborne).Msg("crystal punched")
	w.remove(other)
}

func groundPunch(w *World, _, _ *cp.Shape) {
	w.hitbox.HitGround()
}

func obstacleTrigger(w *World, _, other *cp.Shape) {
	if o, ok := collaborator(w, other, hazard.ObstacleTriggerComponent); ok {
		o.TriggerEnter()
	}
}

func obstacleHitPlayer(w *World, _, other *cp.Shape) {
	if o, ok := collaborator(w, other, hazard.ObstacleComponent); ok {
		o.HitPlayer()
	}
}

func obstacleHitGround(w *World, self, _ *cp.Shape) {
	if o, ok := collaborator(w, self, hazard.ObstacleComponent); ok {
		o.HitGround()
	}
}
