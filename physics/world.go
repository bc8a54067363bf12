// Package physics runs the level in a Chipmunk space and reports contacts to
// the player through the collaborator contract.
package physics

import (
	"image/color"
	"math"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/rs/zerolog"

	"github.com/milk9111/momentum/component"
	"github.com/milk9111/momentum/ecs"
	"github.com/milk9111/momentum/hazard"
	"github.com/milk9111/momentum/prefabs"
)

const (
	hitboxReach = 1.0
	hitboxDrop  = 0.5
)

// Target is everything the world reports to. system.Player implements it.
type Target interface {
	hazard.Target
	OnGroundEnter()
	OnGroundExit()
	OnWallStay()
	OnWallExit()
}

// Drawable is a shape snapshot for rendering.
type Drawable struct {
	Name     string
	Category Category
	BB       cp.BB
	Color    color.Color
}

// Shape is the component on every level shape's entity.
type Shape struct {
	Shape    *cp.Shape
	Name     string
	Category Category
	Color    *prefabs.YAMLColor
}

var ShapeComponent = ecs.NewComponent[*Shape]()

type Option func(w *World)

func WithLogger(log zerolog.Logger) Option {
	return func(w *World) {
		w.log = log
	}
}

// WithECS builds the level's entities into e instead of a private world.
func WithECS(e *ecs.World) Option {
	return func(w *World) {
		w.entities = e
	}
}

// World owns the cp space and the player body. Every level shape is an
// entity in the ECS world, and the level collaborators are components on
// those entities. Contacts found during Step are forwarded to the target as
// queued events.
type World struct {
	spec     *prefabs.LevelSpec
	space    *cp.Space
	log      zerolog.Logger
	entities *ecs.World

	body   *Body
	target Target
	hitbox *hazard.ParryHitbox

	hitboxShapes [2]*cp.Shape
	activeHitbox *cp.Shape

	shapeToEntity map[*cp.Shape]ecs.Entity
	ground        map[*cp.Shape]struct{}

	pendingShapes []*cp.Shape
	pendingBodies []*cp.Body
}

// NewWorld builds the static geometry and the player body of a level.
// Collaborators are created by Attach once the player exists.
func NewWorld(spec *prefabs.LevelSpec, mass float64, opts ...Option) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: spec.Gravity})

	w := &World{
		spec:          spec,
		space:         space,
		log:           zerolog.Nop(),
		shapeToEntity: make(map[*cp.Shape]ecs.Entity),
		ground:        make(map[*cp.Shape]struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.entities == nil {
		w.entities = ecs.NewWorld()
	}

	w.buildSegments()
	w.buildPlayer(mass)
	w.setupHandlers()
	return w
}

func (w *World) Space() *cp.Space {
	return w.space
}

func (w *World) Body() *Body {
	return w.body
}

func (w *World) ECS() *ecs.World {
	return w.entities
}

// Crystals lists every crystal in build order, consumed ones included.
func (w *World) Crystals() []*hazard.Crystal {
	return collect(w.entities, hazard.CrystalComponent)
}

// Obstacles lists every falling obstacle in build order.
func (w *World) Obstacles() []*hazard.FallingObstacle {
	return collect(w.entities, hazard.ObstacleComponent)
}

func collect[T any](e *ecs.World, handle ecs.ComponentHandle[T]) []T {
	var out []T
	ecs.Each(e, handle, func(_ ecs.Entity, v T) {
		out = append(out, v)
	})
	return out
}

// shapesOf lists the live shapes of one category in build order.
func (w *World) shapesOf(category Category) []*Shape {
	var out []*Shape
	ecs.Each(w.entities, ShapeComponent, func(_ ecs.Entity, s *Shape) {
		if s.Category == category {
			out = append(out, s)
		}
	})
	return out
}

// Grounded reports whether the player body touches any ground shape.
func (w *World) Grounded() bool {
	return len(w.ground) > 0
}

func (w *World) addShape(shape *cp.Shape, name string, category Category, c *prefabs.YAMLColor) ecs.Entity {
	shape.SetCollisionType(category.collisionType())
	shape.SetSensor(category.Sensor())
	w.space.AddShape(shape)

	e := w.entities.CreateEntity()
	w.shapeToEntity[shape] = e
	w.checkAdd(e, ecs.Add(w.entities, e, ShapeComponent, &Shape{Shape: shape, Name: name, Category: category, Color: c}))
	return e
}

func (w *World) checkAdd(e ecs.Entity, err error) {
	if err != nil {
		w.log.Error().Err(err).Stringer("entity", e).Msg("add component")
	}
}

// entityOf returns the entity built for shape.
func (w *World) entityOf(shape *cp.Shape) (ecs.Entity, bool) {
	e, ok := w.shapeToEntity[shape]
	return e, ok
}

func (w *World) buildSegments() {
	for _, seg := range w.spec.Segments {
		category, ok := segmentCategory(seg.Category)
		if !ok {
			w.log.Warn().Str("segment", seg.Name).Str("category", seg.Category).Msg("unknown segment category")
			continue
		}
		shape := cp.NewBox2(w.space.StaticBody, boxBB(seg.Box), 0)
		shape.SetFriction(0)
		w.addShape(shape, seg.Name, category, seg.Color)
	}
}

func (w *World) buildPlayer(mass float64) {
	if mass <= 0 {
		mass = 1
	}
	size := w.spec.Player
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: w.spec.Spawn.X, Y: w.spec.Spawn.Y})
	w.space.AddBody(body)

	shape := cp.NewBox(body, size.Width, size.Height, 0)
	shape.SetFriction(1)
	w.addShape(shape, "player", CategoryPlayer, nil)

	halfW, halfH := size.Width/2, size.Height/2
	right := cp.BB{L: halfW, B: -halfH - hitboxDrop, R: halfW + hitboxReach, T: halfH}
	left := cp.BB{L: -halfW - hitboxReach, B: -halfH - hitboxDrop, R: -halfW, T: halfH}
	for i, bb := range []cp.BB{right, left} {
		hb := cp.NewBox2(body, bb, 0)
		hb.SetCollisionType(CategoryHitbox.collisionType())
		hb.SetSensor(true)
		w.hitboxShapes[i] = hb
	}

	w.body = &Body{
		body:     body,
		shape:    shape,
		z:        w.spec.Spawn.Z,
		friction: w.setGroundFriction,
	}
	w.body.SetGravityEnabled(true)
}

// Attach wires the level collaborators to target. Call it once, before the
// first Step.
func (w *World) Attach(target Target) {
	w.target = target
	w.hitbox = hazard.NewParryHitbox(target)

	for _, plane := range w.shapesOf(CategoryDeathPlane) {
		e := w.shapeToEntity[plane.Shape]
		w.checkAdd(e, ecs.Add(w.entities, e, hazard.DeathPlaneComponent, hazard.NewDeathPlane(plane.Name, target)))
	}

	for _, trig := range w.spec.Triggers {
		category, ok := triggerCategory(trig.Kind)
		if !ok {
			w.log.Warn().Str("trigger", trig.Name).Str("kind", trig.Kind).Msg("unknown trigger kind")
			continue
		}
		switch category {
		case CategoryJumpCrystal, CategoryDashCrystal:
			w.addCrystal(trig, category, target)
		case CategoryMushroom:
			shape := cp.NewBox2(w.space.StaticBody, boxBB(trig.Box), 0)
			e := w.addShape(shape, trig.Name, category, trig.Color)
			w.checkAdd(e, ecs.Add(w.entities, e, hazard.MushroomComponent, hazard.NewMushroom(trig.Name, target)))
		case CategoryMonkeyBar:
			shape := cp.NewBox2(w.space.StaticBody, boxBB(trig.Box), 0)
			e := w.addShape(shape, trig.Name, category, trig.Color)
			w.checkAdd(e, ecs.Add(w.entities, e, hazard.MonkeyBarComponent, hazard.NewMonkeyBar(trig.Name, target)))
		case CategoryHazard:
			w.addObstacle(trig, target)
		}
	}
}

func (w *World) addCrystal(trig prefabs.TriggerSpec, category Category, target Target) {
	params, err := trig.CrystalParams()
	if err != nil {
		w.log.Warn().Err(err).Str("trigger", trig.Name).Msg("bad crystal params")
	}
	kind := component.ResourceJump
	if category == CategoryDashCrystal {
		kind = component.ResourceDash
	}
	crystal := hazard.NewCrystal(trig.Name, kind, params.Airborne, target)
	shape := cp.NewBox2(w.space.StaticBody, boxBB(trig.Box), 0)
	e := w.addShape(shape, trig.Name, category, trig.Color)
	w.checkAdd(e, ecs.Add(w.entities, e, hazard.CrystalComponent, crystal))
}

func (w *World) addObstacle(trig prefabs.TriggerSpec, target Target) {
	params, err := trig.ObstacleParams()
	if err != nil {
		w.log.Warn().Err(err).Str("trigger", trig.Name).Msg("bad obstacle params")
		return
	}

	body := cp.NewBody(params.Mass, cp.MomentForBox(params.Mass, trig.Box.Width, trig.Box.Height))
	body.SetPosition(cp.Vector{X: trig.Box.X, Y: trig.Box.Y})
	freeze(body)
	w.space.AddBody(body)

	shape := cp.NewBox(body, trig.Box.Width, trig.Box.Height, 0)
	shape.SetFriction(0.8)
	bodyEntity := w.addShape(shape, trig.Name, CategoryHazard, trig.Color)

	sensor := cp.NewBox2(w.space.StaticBody, boxBB(params.Trigger), 0)
	sensorEntity := w.addShape(sensor, trig.Name+"_trigger", CategoryHazardTrigger, nil)

	var obstacle *hazard.FallingObstacle
	obstacle = hazard.NewFallingObstacle(trig.Name, target, hazard.ObstacleHooks{
		Collapse: func() {
			body.SetVelocityUpdateFunc(cp.BodyUpdateVelocity)
			w.log.Debug().Str("obstacle", obstacle.Name).Msg("obstacle collapsed")
		},
		Disable: func() {
			w.remove(shape, sensor)
			w.pendingBodies = append(w.pendingBodies, body)
			w.log.Debug().Str("obstacle", obstacle.Name).Msg("obstacle disabled")
		},
	})
	w.checkAdd(bodyEntity, ecs.Add(w.entities, bodyEntity, hazard.ObstacleComponent, obstacle))
	w.checkAdd(sensorEntity, ecs.Add(w.entities, sensorEntity, hazard.ObstacleTriggerComponent, obstacle))
}

// freeze holds a dynamic body in place until its update func is restored.
func freeze(body *cp.Body) {
	body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		b.SetVelocityVector(cp.Vector{})
		b.SetAngularVelocity(0)
	})
}

// SetPunching opens or closes the parry hitbox on the side the player faces.
// Use it as the player's punch listener.
func (w *World) SetPunching(active bool) {
	if w.hitbox != nil {
		w.hitbox.SetActive(active)
	}
	if w.activeHitbox != nil {
		w.space.RemoveShape(w.activeHitbox)
		w.activeHitbox = nil
	}
	if !active {
		return
	}
	shape := w.hitboxShapes[0]
	if w.body.facingLeft() {
		shape = w.hitboxShapes[1]
	}
	w.space.AddShape(shape)
	w.activeHitbox = shape
}

func (w *World) Punching() bool {
	return w.activeHitbox != nil
}

func (w *World) setGroundFriction(friction float64) {
	for _, ground := range w.shapesOf(CategoryGround) {
		ground.Shape.SetFriction(friction)
	}
}

// Step advances the space by dt and integrates the player's depth axis.
// Shapes removed by contact callbacks leave the space after the step.
func (w *World) Step(dt time.Duration) {
	w.space.Step(dt.Seconds())
	w.body.integrateDepth(dt)
	w.flushRemovals()
}

// remove drops the Shape component of each shape now and takes the shape out
// of the space after the step. Collaborator components stay on the entity.
func (w *World) remove(shapes ...*cp.Shape) {
	for _, shape := range shapes {
		e, ok := w.entityOf(shape)
		if !ok || !ecs.Remove(w.entities, e, ShapeComponent) {
			continue
		}
		w.pendingShapes = append(w.pendingShapes, shape)
	}
}

// removed reports whether shape was taken out of the level.
func (w *World) removed(shape *cp.Shape) bool {
	e, ok := w.entityOf(shape)
	return !ok || !ecs.Has(w.entities, e, ShapeComponent)
}

func (w *World) flushRemovals() {
	for _, shape := range w.pendingShapes {
		w.space.RemoveShape(shape)
		delete(w.ground, shape)
	}
	for _, body := range w.pendingBodies {
		w.space.RemoveBody(body)
	}
	w.pendingShapes = w.pendingShapes[:0]
	w.pendingBodies = w.pendingBodies[:0]
}

// Drawables lists every live level shape in build order.
func (w *World) Drawables() []Drawable {
	var out []Drawable
	ecs.Each(w.entities, ShapeComponent, func(_ ecs.Entity, s *Shape) {
		if s.Category == CategoryPlayer {
			return
		}
		out = append(out, Drawable{
			Name:     s.Name,
			Category: s.Category,
			BB:       s.Shape.BB(),
			Color:    s.Color.Or(defaultColors[s.Category]),
		})
	})
	return out
}

var defaultColors = map[Category]color.Color{
	CategoryGround:        color.NRGBA{R: 0x4f, G: 0x6b, B: 0x45, A: 0xff},
	CategoryWall:          color.NRGBA{R: 0x6b, G: 0x5a, B: 0x45, A: 0xff},
	CategoryDeathPlane:    color.NRGBA{R: 0x8b, G: 0x1e, B: 0x1e, A: 0xff},
	CategoryMushroom:      color.NRGBA{R: 0xc9, G: 0x4f, B: 0xd1, A: 0xff},
	CategoryMonkeyBar:     color.NRGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff},
	CategoryJumpCrystal:   color.NRGBA{R: 0x3f, G: 0xa9, B: 0xf5, A: 0xff},
	CategoryDashCrystal:   color.NRGBA{R: 0xf5, G: 0xa6, B: 0x3f, A: 0xff},
	CategoryHazard:        color.NRGBA{R: 0x7a, G: 0x7a, B: 0x7a, A: 0xff},
	CategoryHazardTrigger: color.NRGBA{R: 0xff, G: 0x00, B: 0x00, A: 0x30},
}
