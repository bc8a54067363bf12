package prefabs

import (
	"time"

	"github.com/milk9111/momentum/component"
)

// PlayerSpec is player.yaml. Durations are in seconds.
type PlayerSpec struct {
	Name        string  `yaml:"name"`
	TickRate    int     `yaml:"tick_rate"`
	Capacity    int     `yaml:"capacity"`
	JumpValue   float64 `yaml:"jump_value"`
	PlayerSpeed float64 `yaml:"player_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
	BoostFactor float64 `yaml:"boost_factor"`
	Mass        float64 `yaml:"mass"`

	GroundAccelWeight float64 `yaml:"ground_accel_weight"`
	AirAccelWeight    float64 `yaml:"air_accel_weight"`
	GroundFriction    float64 `yaml:"ground_friction"`

	SpeedFloor         float64 `yaml:"speed_floor"`
	SpeedDecayStep     float64 `yaml:"speed_decay_step"`
	SpeedDecayInterval float64 `yaml:"speed_decay_interval_seconds"`

	BoostPerParry float64 `yaml:"boost_per_parry_seconds"`
	BoostCap      float64 `yaml:"boost_cap_seconds"`

	DashMultiplier float64 `yaml:"dash_multiplier"`
	DashDuration   float64 `yaml:"dash_duration_seconds"`
	PunchDuration  float64 `yaml:"punch_duration_seconds"`

	DoubleJumpMultiplier  float64 `yaml:"double_jump_multiplier"`
	BounceParryMultiplier float64 `yaml:"bounce_parry_multiplier"`
	MushroomMultiplier    float64 `yaml:"mushroom_multiplier"`

	GravityParryEnabled    bool    `yaml:"gravity_parry_enabled"`
	GravityParryThreshold  float64 `yaml:"gravity_parry_threshold"`
	GravityParryMultiplier float64 `yaml:"gravity_parry_multiplier"`

	DashResetLock float64 `yaml:"dash_reset_lock_seconds"`

	SwingEntryVelocity   float64 `yaml:"swing_entry_velocity"`
	SwingReleaseVelocity float64 `yaml:"swing_release_velocity"`
	SwingForce           float64 `yaml:"swing_force"`
	SwingInterval        float64 `yaml:"swing_interval_seconds"`

	WallRunSpeedMargin float64 `yaml:"wall_run_speed_margin"`
}

func LoadPlayerSpec(filename string) (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](filename)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate rejects specs a player cannot run with.
func (s *PlayerSpec) Validate() error {
	switch {
	case s.TickRate <= 0:
		return invalid("tick_rate must be positive, got %d", s.TickRate)
	case s.Capacity < 1:
		return invalid("capacity must be at least 1, got %d", s.Capacity)
	case s.Mass <= 0:
		return invalid("mass must be positive, got %v", s.Mass)
	case s.MaxSpeed < 0 || s.PlayerSpeed < 0 || s.JumpValue < 0:
		return invalid("speeds must not be negative")
	case s.BoostFactor < 1:
		return invalid("boost_factor must be at least 1, got %v", s.BoostFactor)
	case s.SpeedDecayStep <= 0:
		return invalid("speed_decay_step must be positive, got %v", s.SpeedDecayStep)
	case s.SwingInterval <= 0:
		return invalid("swing_interval_seconds must be positive, got %v", s.SwingInterval)
	case s.SpeedDecayInterval <= 0:
		return invalid("speed_decay_interval_seconds must be positive, got %v", s.SpeedDecayInterval)
	}

	durations := map[string]float64{
		"boost_per_parry_seconds": s.BoostPerParry,
		"boost_cap_seconds":       s.BoostCap,
		"dash_duration_seconds":   s.DashDuration,
		"punch_duration_seconds":  s.PunchDuration,
		"dash_reset_lock_seconds": s.DashResetLock,
	}
	for name, d := range durations {
		if d < 0 {
			return invalid("%s must not be negative, got %v", name, d)
		}
	}
	return nil
}

// Tunables converts the prefab into runtime parameters.
func (s *PlayerSpec) Tunables() component.Tunables {
	return component.Tunables{
		JumpValue:              s.JumpValue,
		PlayerSpeed:            s.PlayerSpeed,
		MaxSpeed:               s.MaxSpeed,
		BoostFactor:            s.BoostFactor,
		Mass:                   s.Mass,
		GroundAccelWeight:      s.GroundAccelWeight,
		AirAccelWeight:         s.AirAccelWeight,
		GroundFriction:         s.GroundFriction,
		SpeedFloor:             s.SpeedFloor,
		SpeedDecayStep:         s.SpeedDecayStep,
		SpeedDecayInterval:     seconds(s.SpeedDecayInterval),
		BoostPerParry:          seconds(s.BoostPerParry),
		BoostCap:               seconds(s.BoostCap),
		DashMultiplier:         s.DashMultiplier,
		DashDuration:           seconds(s.DashDuration),
		PunchDuration:          seconds(s.PunchDuration),
		DoubleJumpMultiplier:   s.DoubleJumpMultiplier,
		BounceParryMultiplier:  s.BounceParryMultiplier,
		MushroomMultiplier:     s.MushroomMultiplier,
		GravityParryEnabled:    s.GravityParryEnabled,
		GravityParryThreshold:  s.GravityParryThreshold,
		GravityParryMultiplier: s.GravityParryMultiplier,
		DashResetLock:          seconds(s.DashResetLock),
		SwingEntryVelocity:     s.SwingEntryVelocity,
		SwingReleaseVelocity:   s.SwingReleaseVelocity,
		SwingForce:             s.SwingForce,
		SwingInterval:          seconds(s.SwingInterval),
		WallRunSpeedMargin:     s.WallRunSpeedMargin,
		Capacity:               s.Capacity,
		Tick:                   time.Second / time.Duration(s.TickRate),
	}
}
