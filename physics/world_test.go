package physics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/momentum/common"
	"github.com/milk9111/momentum/component"
	"github.com/milk9111/momentum/ecs"
	"github.com/milk9111/momentum/hazard"
	"github.com/milk9111/momentum/prefabs"
	"github.com/milk9111/momentum/system"
)

const tick = 20 * time.Millisecond

func floor() prefabs.SegmentSpec {
	return prefabs.SegmentSpec{
		Name:     "floor",
		Category: prefabs.SegmentGround,
		Box:      prefabs.BoxSpec{X: 0, Y: -0.5, Width: 40, Height: 1},
	}
}

func level(segments []prefabs.SegmentSpec, triggers ...prefabs.TriggerSpec) *prefabs.LevelSpec {
	return &prefabs.LevelSpec{
		Name:     "test",
		Gravity:  -20,
		Spawn:    prefabs.PointSpec{X: 0, Y: 1},
		Player:   prefabs.BoxSpec{Width: 1, Height: 2},
		Segments: segments,
		Triggers: triggers,
	}
}

func spawn(t *testing.T, spec *prefabs.LevelSpec) (*World, *system.Player) {
	t.Helper()
	require.NoError(t, spec.Validate())
	tun := component.DefaultTunables()
	entities := ecs.NewWorld()
	w := NewWorld(spec, tun.Mass, WithECS(entities))
	p := system.NewPlayer(w.Body(), tun,
		system.WithECS(entities),
		system.WithPunchListener(w.SetPunching))
	w.Attach(p)
	return w, p
}

func run(w *World, p *system.Player, n int) {
	for i := 0; i < n; i++ {
		w.Step(tick)
		p.Tick()
	}
}

func TestPlayerRestsOnGround(t *testing.T) {
	w, p := spawn(t, level([]prefabs.SegmentSpec{floor()}))
	run(w, p, 50)

	require.True(t, p.Alive())
	require.True(t, p.Grounded())
	require.True(t, w.Grounded())
	require.InDelta(t, 1, p.Position().Y, 0.15)
}

func TestJumpLeavesAndLands(t *testing.T) {
	w, p := spawn(t, level([]prefabs.SegmentSpec{floor()}))
	run(w, p, 25)

	p.OnJumpTriggered()
	run(w, p, 8)
	require.False(t, p.Grounded())
	require.Greater(t, p.Position().Y, 1.5)

	run(w, p, 100)
	require.True(t, p.Grounded())
}

func TestDeathPlaneKills(t *testing.T) {
	pit := prefabs.SegmentSpec{
		Name:     "pit",
		Category: prefabs.SegmentDeathPlane,
		Box:      prefabs.BoxSpec{X: 0, Y: -5, Width: 40, Height: 1},
	}
	w, p := spawn(t, level([]prefabs.SegmentSpec{pit}))
	run(w, p, 100)

	require.False(t, p.Alive())
	require.InDelta(t, 0, p.Velocity().Length(), 1e-6)
	require.False(t, w.Body().GravityEnabled())
}

func TestWalkIntoCrystal(t *testing.T) {
	crystal := prefabs.TriggerSpec{
		Name: "jc",
		Kind: prefabs.TriggerJumpCrystal,
		Box:  prefabs.BoxSpec{X: 0, Y: 1, Width: 0.5, Height: 0.5},
	}
	w, p := spawn(t, level([]prefabs.SegmentSpec{floor()}, crystal))
	run(w, p, 5)

	require.Equal(t, 1, p.Jumps())
	require.False(t, p.Boosted())
	require.True(t, w.Crystals()[0].Gone())
	for _, d := range w.Drawables() {
		require.NotEqual(t, "jc", d.Name)
	}
}

func TestPunchCrystal(t *testing.T) {
	crystal := prefabs.TriggerSpec{
		Name:   "dc",
		Kind:   prefabs.TriggerDashCrystal,
		Box:    prefabs.BoxSpec{X: 1.3, Y: 1, Width: 0.4, Height: 0.4},
		Params: map[string]any{"airborne": true},
	}
	w, p := spawn(t, level([]prefabs.SegmentSpec{floor()}, crystal))
	p.SetYaw(math.Pi / 2)
	run(w, p, 10)
	require.Equal(t, 0, p.Dashes(), "out of reach until punched")

	p.OnPunchTriggered()
	run(w, p, 3)
	require.True(t, w.Crystals()[0].Gone())
	require.Equal(t, 1, p.Dashes())
	require.True(t, p.Boosted())

	run(w, p, 20)
	require.False(t, w.Punching(), "hitbox closes with the punch window")
}

func TestMushroomBounce(t *testing.T) {
	mushroom := prefabs.TriggerSpec{
		Name: "m",
		Kind: prefabs.TriggerMushroom,
		Box:  prefabs.BoxSpec{X: 0, Y: 0.25, Width: 2, Height: 0.5},
	}
	w, p := spawn(t, level([]prefabs.SegmentSpec{floor()}, mushroom))
	w.Step(tick)
	p.Tick()

	require.Equal(t, 16.0, p.Velocity().Y)
}

func TestFallingObstacle(t *testing.T) {
	cases := []struct {
		name   string
		x      float64
		alive  bool
		states []hazard.ObstacleState
	}{
		{"lands_on_player", 0, false, []hazard.ObstacleState{hazard.ObstacleFalling, hazard.ObstacleDisabled}},
		{"lands_on_ground", 6, true, []hazard.ObstacleState{hazard.ObstacleDisabled}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			boulder := prefabs.TriggerSpec{
				Name: "boulder",
				Kind: prefabs.TriggerFallingObstacle,
				Box:  prefabs.BoxSpec{X: c.x, Y: 6, Width: 1, Height: 1},
				Params: map[string]any{
					"trigger": map[string]any{"x": 0, "y": 1, "width": 2, "height": 2},
				},
			}
			w, p := spawn(t, level([]prefabs.SegmentSpec{floor()}, boulder))
			run(w, p, 100)

			require.Equal(t, c.alive, p.Alive())
			require.Contains(t, c.states, w.Obstacles()[0].State())
		})
	}
}

func TestObstacleStaysFrozenUntilTriggered(t *testing.T) {
	boulder := prefabs.TriggerSpec{
		Name: "boulder",
		Kind: prefabs.TriggerFallingObstacle,
		Box:  prefabs.BoxSpec{X: 10, Y: 6, Width: 1, Height: 1},
		Params: map[string]any{
			"trigger": map[string]any{"x": 10, "y": 1, "width": 2, "height": 2},
		},
	}
	w, p := spawn(t, level([]prefabs.SegmentSpec{floor()}, boulder))
	run(w, p, 50)

	require.Equal(t, hazard.ObstacleFrozen, w.Obstacles()[0].State())
	for _, d := range w.Drawables() {
		if d.Name == "boulder" {
			require.InDelta(t, 6, (d.BB.B+d.BB.T)/2, 1e-6)
		}
	}
}

func TestBodyDepthAndGravity(t *testing.T) {
	w, _ := spawn(t, level(nil))
	b := w.Body()

	b.SetGravityEnabled(false)
	b.SetVelocity(common.Vec3{Z: 2})
	w.Step(500 * time.Millisecond)

	pos := b.Position()
	require.InDelta(t, 1, pos.Z, 1e-9)
	require.InDelta(t, 1, pos.Y, 1e-9, "no gravity while disabled")
	require.Equal(t, 2.0, b.Velocity().Z)
}

func TestDrawablesUseCategoryColors(t *testing.T) {
	w, _ := spawn(t, level([]prefabs.SegmentSpec{floor()}))
	ds := w.Drawables()
	require.Len(t, ds, 1)
	require.Equal(t, CategoryGround, ds[0].Category)
	require.Equal(t, defaultColors[CategoryGround], ds[0].Color)
	require.Equal(t, "ground", ds[0].Category.String())
}

func TestCollaboratorsAreEntities(t *testing.T) {
	pit := prefabs.SegmentSpec{
		Name:     "pit",
		Category: prefabs.SegmentDeathPlane,
		Box:      prefabs.BoxSpec{X: 0, Y: -20, Width: 40, Height: 1},
	}
	crystal := prefabs.TriggerSpec{
		Name: "jc",
		Kind: prefabs.TriggerJumpCrystal,
		Box:  prefabs.BoxSpec{X: 0, Y: 1, Width: 0.5, Height: 0.5},
	}
	bar := prefabs.TriggerSpec{
		Name: "bar",
		Kind: prefabs.TriggerMonkeyBar,
		Box:  prefabs.BoxSpec{X: 10, Y: 6, Width: 2, Height: 0.2},
	}
	boulder := prefabs.TriggerSpec{
		Name: "boulder",
		Kind: prefabs.TriggerFallingObstacle,
		Box:  prefabs.BoxSpec{X: 15, Y: 6, Width: 1, Height: 1},
		Params: map[string]any{
			"trigger": map[string]any{"x": 15, "y": 1, "width": 2, "height": 2},
		},
	}
	w, p := spawn(t, level([]prefabs.SegmentSpec{floor(), pit}, crystal, bar, boulder))
	entities := w.ECS()
	require.Same(t, entities, p.World())

	cases := []struct {
		name  string
		query []ecs.ComponentID
		want  int
	}{
		{"player", []ecs.ComponentID{component.PlayerTagComponent.ID(), system.PlayerComponent.ID()}, 1},
		{"death_plane", []ecs.ComponentID{hazard.DeathPlaneComponent.ID(), ShapeComponent.ID()}, 1},
		{"crystal", []ecs.ComponentID{hazard.CrystalComponent.ID(), ShapeComponent.ID()}, 1},
		{"monkey_bar", []ecs.ComponentID{hazard.MonkeyBarComponent.ID(), ShapeComponent.ID()}, 1},
		{"obstacle_body", []ecs.ComponentID{hazard.ObstacleComponent.ID()}, 1},
		{"obstacle_trigger", []ecs.ComponentID{hazard.ObstacleTriggerComponent.ID()}, 1},
		{"shapes", []ecs.ComponentID{ShapeComponent.ID()}, 7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Len(t, entities.Query(c.query...), c.want)
		})
	}

	run(w, p, 5)
	require.Equal(t, 1, p.Jumps())
	ents := entities.Query(hazard.CrystalComponent.ID())
	require.Len(t, ents, 1)
	require.False(t, ecs.Has(entities, ents[0], ShapeComponent), "consumed crystal leaves the level")
	got, ok := ecs.Get(entities, ents[0], hazard.CrystalComponent)
	require.True(t, ok)
	require.True(t, got.Gone())
	require.Len(t, w.Obstacles(), 1)
}
