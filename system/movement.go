package system

import (
	"math"
	"time"

	"github.com/milk9111/momentum/common"
	"github.com/milk9111/momentum/component"
)

// SolveInput is everything the solver reads for one fixed tick.
type SolveInput struct {
	Input       component.Input
	Velocity    common.Vec3
	Grounded    bool
	Dashing     bool
	WallRunning bool
	MaxSpeed    float64
	DT          time.Duration
}

// SolveResult is the velocity and ground friction to commit.
type SolveResult struct {
	Velocity common.Vec3
	Friction float64
	Capped   bool
	WallHold bool
}

// MovementSolver computes per-tick locomotion. It reads tunables through a
// pointer so a Kill or reload is seen on the next solve.
type MovementSolver struct {
	tun *component.Tunables
}

func NewMovementSolver(tun *component.Tunables) *MovementSolver {
	return &MovementSolver{tun: tun}
}

// MoveDirection returns the normalized world-space direction for an intent.
func MoveDirection(in component.Input) common.Vec3 {
	x := common.Clamp(in.MoveX, -1, 1)
	z := common.Clamp(in.MoveZ, -1, 1)
	dir := common.Forward(in.Yaw).Scale(z).Add(common.Right(in.Yaw).Scale(x))
	return dir.Normalize()
}

// Solve applies acceleration toward the intent, then hard caps horizontal
// speed unless dashing. Vertical velocity is only touched by the wall-run hold.
func (s *MovementSolver) Solve(in SolveInput) SolveResult {
	tun := s.tun
	out := SolveResult{Velocity: in.Velocity}
	if tun == nil {
		return out
	}

	weight := tun.AirAccelWeight
	out.Friction = 0
	if in.Grounded {
		weight = tun.GroundAccelWeight
		out.Friction = tun.GroundFriction
	}

	mass := tun.Mass
	if mass <= 0 {
		mass = 1
	}
	dt := in.DT.Seconds()
	force := MoveDirection(in.Input).Scale(tun.PlayerSpeed * weight)
	out.Velocity = out.Velocity.Add(force.Scale(dt / mass))

	flat := out.Velocity.Horizontal()
	if !in.Dashing && flat.Length() > in.MaxSpeed {
		flat = flat.Normalize().Mult(in.MaxSpeed)
		out.Velocity = out.Velocity.WithHorizontal(flat)
		out.Capped = true
	}

	if in.WallRunning && flat.Length() >= in.MaxSpeed-tun.WallRunSpeedMargin && in.Input.MoveZ >= 0 {
		out.Velocity = out.Velocity.WithY(0)
		out.WallHold = true
	}

	return out
}

// UpdateSpeed runs the grounded speed decay. At most one decay step is in
// flight; each step lowers the cap by SpeedDecayStep, never below Base or Floor.
func (s *MovementSolver) UpdateSpeed(speed *component.Speed, timers *component.Timers, grounded bool) {
	if s == nil || s.tun == nil || speed == nil || !grounded || speed.Boosted {
		return
	}
	if speed.Current > speed.Base && !timers.Active(component.TimerSpeedDecay) {
		step := s.tun.SpeedDecayStep
		timers.Schedule(component.TimerSpeedDecay, s.tun.SpeedDecayInterval, func() {
			if speed.Boosted {
				return
			}
			speed.Current = math.Max(speed.Current-step, speed.Base)
			if speed.Current < speed.Floor {
				speed.Current = speed.Floor
			}
		})
	}
	if speed.Current < speed.Floor {
		speed.Current = speed.Floor
	}
}
