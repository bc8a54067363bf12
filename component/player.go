package component

import (
	"time"

	"github.com/milk9111/momentum/common"
)

// Tunables holds every movement and ability parameter of a player.
type Tunables struct {
	JumpValue   float64
	PlayerSpeed float64
	MaxSpeed    float64
	BoostFactor float64
	Mass        float64

	GroundAccelWeight float64
	AirAccelWeight    float64
	GroundFriction    float64

	SpeedFloor         float64
	SpeedDecayStep     float64
	SpeedDecayInterval time.Duration

	BoostPerParry time.Duration
	// BoostCap bounds accumulated boost time. Zero means uncapped.
	BoostCap time.Duration

	DashMultiplier float64
	DashDuration   time.Duration
	PunchDuration  time.Duration

	DoubleJumpMultiplier  float64
	BounceParryMultiplier float64
	MushroomMultiplier    float64

	GravityParryEnabled    bool
	GravityParryThreshold  float64
	GravityParryMultiplier float64

	DashResetLock time.Duration

	SwingEntryVelocity   float64
	SwingReleaseVelocity float64
	SwingForce           float64
	SwingInterval        time.Duration

	WallRunSpeedMargin float64

	Capacity int
	Tick     time.Duration
}

// DefaultTunables mirrors the shipped player.yaml.
func DefaultTunables() Tunables {
	return Tunables{
		JumpValue:              8,
		PlayerSpeed:            10,
		MaxSpeed:               8,
		BoostFactor:            2,
		Mass:                   1,
		GroundAccelWeight:      30,
		AirAccelWeight:         15,
		GroundFriction:         4.5,
		SpeedFloor:             3.5,
		SpeedDecayStep:         0.35,
		SpeedDecayInterval:     100 * time.Millisecond,
		BoostPerParry:          3 * time.Second,
		DashMultiplier:         3,
		DashDuration:           250 * time.Millisecond,
		PunchDuration:          330 * time.Millisecond,
		DoubleJumpMultiplier:   1.5,
		BounceParryMultiplier:  1.75,
		MushroomMultiplier:     2,
		GravityParryEnabled:    true,
		GravityParryThreshold:  -9,
		GravityParryMultiplier: 3,
		DashResetLock:          400 * time.Millisecond,
		SwingEntryVelocity:     -8,
		SwingReleaseVelocity:   4,
		SwingForce:             600,
		SwingInterval:          100 * time.Millisecond,
		WallRunSpeedMargin:     0.1,
		Capacity:               DefaultCapacity,
		Tick:                   20 * time.Millisecond,
	}
}

// BoostedMaxSpeed is the speed cap while a parry boost is running.
func (t Tunables) BoostedMaxSpeed() float64 {
	return t.MaxSpeed * t.BoostFactor
}

// Speed tracks the dynamic horizontal speed cap.
type Speed struct {
	Base       float64
	Current    float64
	BoostedMax float64
	Floor      float64
	Boosted    bool
}

// Dash stores the active dash window and the velocity to restore after it.
type Dash struct {
	Active bool
	// ResetArmed gates restoring Saved when the dash window ends. It is
	// disarmed briefly by bounces and swings so their momentum carries.
	ResetArmed bool
	Saved      common.Vec3
}

// Punch gates the parry hitbox.
type Punch struct {
	Active bool
}

// Input is the raw movement intent for a tick.
type Input struct {
	MoveX float64
	MoveZ float64
	// Yaw is the camera heading in radians, copied onto the player each tick.
	Yaw float64
}
