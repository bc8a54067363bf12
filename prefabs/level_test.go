package prefabs

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadSandbox(t *testing.T) {
	spec, err := LoadLevelSpec("sandbox.yaml")
	require.NoError(t, err)

	require.Equal(t, "sandbox", spec.Name)
	require.Equal(t, -20.0, spec.Gravity)
	require.Equal(t, BoxSpec{Width: 1, Height: 2}, spec.Player)

	kinds := map[string]int{}
	for _, trig := range spec.Triggers {
		kinds[trig.Kind]++
	}
	require.Equal(t, 2, kinds[TriggerJumpCrystal])
	require.Equal(t, 1, kinds[TriggerDashCrystal])
	require.Equal(t, 1, kinds[TriggerFallingObstacle])

	var deathPlanes int
	for _, seg := range spec.Segments {
		if seg.Category == SegmentDeathPlane {
			deathPlanes++
		}
		require.NotNil(t, seg.Color, seg.Name)
	}
	require.Equal(t, 1, deathPlanes)

	for _, trig := range spec.Triggers {
		if trig.Name == "jump_crystal_b" {
			params, err := trig.CrystalParams()
			require.NoError(t, err)
			require.True(t, params.Airborne)
		}
		if trig.Kind != TriggerFallingObstacle {
			continue
		}
		params, err := trig.ObstacleParams()
		require.NoError(t, err)
		require.Equal(t, 5.0, params.Mass)
		require.Equal(t, BoxSpec{X: 42, Y: 1, Width: 4, Height: 2}, params.Trigger)
	}
}

func TestLevelSpecValidate(t *testing.T) {
	box := BoxSpec{Width: 1, Height: 1}
	cases := []struct {
		name string
		spec LevelSpec
		ok   bool
	}{
		{"empty_level", LevelSpec{Player: box}, true},
		{"gravity_up", LevelSpec{Player: box, Gravity: 10}, false},
		{"no_player_size", LevelSpec{}, false},
		{"bad_category", LevelSpec{Player: box, Segments: []SegmentSpec{{Name: "x", Category: "lava", Box: box}}}, false},
		{"flat_segment", LevelSpec{Player: box, Segments: []SegmentSpec{{Name: "x", Category: SegmentGround}}}, false},
		{"bad_kind", LevelSpec{Player: box, Triggers: []TriggerSpec{{Name: "x", Kind: "coin", Box: box}}}, false},
		{"obstacle_without_trigger", LevelSpec{Player: box, Triggers: []TriggerSpec{{Name: "x", Kind: TriggerFallingObstacle, Box: box}}}, false},
		{"crystal_bad_params", LevelSpec{Player: box, Triggers: []TriggerSpec{{
			Name:   "x",
			Kind:   TriggerJumpCrystal,
			Box:    box,
			Params: map[string]any{"airborne": []any{1}},
		}}}, false},
		{"obstacle_with_trigger", LevelSpec{Player: box, Triggers: []TriggerSpec{{
			Name:   "x",
			Kind:   TriggerFallingObstacle,
			Box:    box,
			Params: map[string]any{"trigger": map[string]any{"width": 2, "height": 2}},
		}}}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.spec.Validate()
			if c.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidSpec)
		})
	}
}

func TestObstacleParamsDefaultMass(t *testing.T) {
	params, err := TriggerSpec{}.ObstacleParams()
	require.NoError(t, err)
	require.Equal(t, 1.0, params.Mass)
}

func TestYAMLColor(t *testing.T) {
	type holder struct {
		C *YAMLColor `yaml:"c"`
	}
	cases := []struct {
		name string
		in   string
		want color.Color
		err  bool
	}{
		{"rgb", `c: "#102030"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, false},
		{"rgba", `c: "10203040"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{"short", `c: "#123"`, nil, true},
		{"not_hex", `c: "#zz0000"`, nil, true},
		{"not_scalar", `c: [1, 2]`, nil, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h, err := decodeYAML[holder](c.in)
			if c.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, c.want, h.C.Color)
		})
	}

	var unset *YAMLColor
	require.Equal(t, color.White, unset.Or(color.White))
}
