package prefabs

// Segment categories.
const (
	SegmentGround     = "ground"
	SegmentWall       = "wall"
	SegmentDeathPlane = "death_plane"
)

// Trigger kinds.
const (
	TriggerJumpCrystal     = "jump_crystal"
	TriggerDashCrystal     = "dash_crystal"
	TriggerMushroom        = "mushroom"
	TriggerMonkeyBar       = "monkey_bar"
	TriggerFallingObstacle = "falling_obstacle"
)

// BoxSpec is an axis-aligned box in the side view, positioned by its center.
type BoxSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type SegmentSpec struct {
	Name     string     `yaml:"name"`
	Category string     `yaml:"category"`
	Box      BoxSpec    `yaml:",inline"`
	Color    *YAMLColor `yaml:"color"`
}

type TriggerSpec struct {
	Name   string         `yaml:"name"`
	Kind   string         `yaml:"kind"`
	Box    BoxSpec        `yaml:",inline"`
	Color  *YAMLColor     `yaml:"color"`
	Params map[string]any `yaml:"params"`
}

// ObstacleParams are the params of a falling_obstacle trigger.
type ObstacleParams struct {
	Trigger BoxSpec `yaml:"trigger"`
	Mass    float64 `yaml:"mass"`
}

// CrystalParams are the params of a jump_crystal or dash_crystal trigger.
// Airborne crystals bounce the player when punched.
type CrystalParams struct {
	Airborne bool `yaml:"airborne"`
}

// LevelSpec is a level layout such as sandbox.yaml.
type LevelSpec struct {
	Name     string        `yaml:"name"`
	Gravity  float64       `yaml:"gravity"`
	Spawn    PointSpec     `yaml:"spawn"`
	Player   BoxSpec       `yaml:"player"`
	Segments []SegmentSpec `yaml:"segments"`
	Triggers []TriggerSpec `yaml:"triggers"`
}

func LoadLevelSpec(filename string) (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](filename)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *LevelSpec) Validate() error {
	if s.Gravity > 0 {
		return invalid("gravity must pull down, got %v", s.Gravity)
	}
	if s.Player.Width <= 0 || s.Player.Height <= 0 {
		return invalid("player size must be positive")
	}
	for _, seg := range s.Segments {
		switch seg.Category {
		case SegmentGround, SegmentWall, SegmentDeathPlane:
		default:
			return invalid("segment %q: unknown category %q", seg.Name, seg.Category)
		}
		if !seg.Box.valid() {
			return invalid("segment %q: size must be positive", seg.Name)
		}
	}
	for _, trig := range s.Triggers {
		if !trig.Box.valid() {
			return invalid("trigger %q: size must be positive", trig.Name)
		}
		switch trig.Kind {
		case TriggerJumpCrystal, TriggerDashCrystal:
			if _, err := trig.CrystalParams(); err != nil {
				return invalid("trigger %q: %v", trig.Name, err)
			}
		case TriggerMushroom, TriggerMonkeyBar:
		case TriggerFallingObstacle:
			params, err := trig.ObstacleParams()
			if err != nil {
				return invalid("trigger %q: %v", trig.Name, err)
			}
			if !params.Trigger.valid() {
				return invalid("trigger %q: drop trigger size must be positive", trig.Name)
			}
		default:
			return invalid("trigger %q: unknown kind %q", trig.Name, trig.Kind)
		}
	}
	return nil
}

// ObstacleParams decodes the params of a falling_obstacle trigger. Mass
// defaults to 1.
func (t TriggerSpec) ObstacleParams() (ObstacleParams, error) {
	p, err := DecodeParams[ObstacleParams](t.Params)
	if err != nil {
		return p, err
	}
	if p.Mass <= 0 {
		p.Mass = 1
	}
	return p, nil
}

func (t TriggerSpec) CrystalParams() (CrystalParams, error) {
	return DecodeParams[CrystalParams](t.Params)
}

func (b BoxSpec) valid() bool {
	return b.Width > 0 && b.Height > 0
}
