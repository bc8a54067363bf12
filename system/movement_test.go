package system

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/momentum/common"
	"github.com/milk9111/momentum/component"
)

func TestMoveDirection(t *testing.T) {
	cases := []struct {
		name  string
		input component.Input
		want  common.Vec3
	}{
		{"idle", component.Input{}, common.Vec3{}},
		{"forward", component.Input{MoveZ: 1}, common.Vec3{Z: 1}},
		{"right", component.Input{MoveX: 1}, common.Vec3{X: 1}},
		{"diagonal_normalized", component.Input{MoveX: 1, MoveZ: 1}, common.Vec3{X: math.Sqrt2 / 2, Z: math.Sqrt2 / 2}},
		{"clamped", component.Input{MoveZ: 5}, common.Vec3{Z: 1}},
		{"yaw_quarter_turn", component.Input{MoveZ: 1, Yaw: math.Pi / 2}, common.Vec3{X: 1}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := MoveDirection(c.input)
			require.InDelta(t, c.want.X, got.X, 1e-9)
			require.InDelta(t, c.want.Y, got.Y, 1e-9)
			require.InDelta(t, c.want.Z, got.Z, 1e-9)
		})
	}
}

func TestSolveHardCapsHorizontal(t *testing.T) {
	tun := component.DefaultTunables()
	s := NewMovementSolver(&tun)

	// 9 + 10*30*0.02 = 15 along +X.
	out := s.Solve(SolveInput{
		Input:    component.Input{MoveX: 1},
		Velocity: common.Vec3{X: 9, Y: 3},
		Grounded: true,
		MaxSpeed: 10,
		DT:       20 * time.Millisecond,
	})

	require.True(t, out.Capped)
	require.InDelta(t, 10, out.Velocity.Horizontal().Length(), 1e-9)
	require.Equal(t, 3.0, out.Velocity.Y)
	require.InDelta(t, 0, out.Velocity.Z, 1e-9)
}

func TestSolveCapKeepsDirection(t *testing.T) {
	tun := component.DefaultTunables()
	s := NewMovementSolver(&tun)

	out := s.Solve(SolveInput{
		Velocity: common.Vec3{X: 9, Y: -4, Z: 12},
		MaxSpeed: 10,
		DT:       20 * time.Millisecond,
	})
	require.InDelta(t, 6, out.Velocity.X, 1e-9)
	require.InDelta(t, 8, out.Velocity.Z, 1e-9)
	require.Equal(t, -4.0, out.Velocity.Y)
}

func TestSolveDashBypassesCap(t *testing.T) {
	tun := component.DefaultTunables()
	s := NewMovementSolver(&tun)

	out := s.Solve(SolveInput{
		Velocity: common.Vec3{X: 15},
		Dashing:  true,
		MaxSpeed: 10,
		DT:       20 * time.Millisecond,
	})
	require.False(t, out.Capped)
	require.Equal(t, 15.0, out.Velocity.X)
}

func TestSolveAccelerationWeights(t *testing.T) {
	tun := component.DefaultTunables()
	s := NewMovementSolver(&tun)

	cases := []struct {
		name     string
		grounded bool
		wantVZ   float64
		friction float64
	}{
		{"grounded", true, 10 * 30 * 0.02, 4.5},
		{"airborne", false, 10 * 15 * 0.02, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := s.Solve(SolveInput{
				Input:    component.Input{MoveZ: 1},
				Grounded: c.grounded,
				MaxSpeed: 100,
				DT:       20 * time.Millisecond,
			})
			require.InDelta(t, c.wantVZ, out.Velocity.Z, 1e-9)
			require.Equal(t, c.friction, out.Friction)
		})
	}
}

func TestSolveWallRunHold(t *testing.T) {
	tun := component.DefaultTunables()
	s := NewMovementSolver(&tun)

	in := SolveInput{
		Velocity:    common.Vec3{Y: -3, Z: 8},
		WallRunning: true,
		MaxSpeed:    8,
		DT:          20 * time.Millisecond,
	}
	out := s.Solve(in)
	require.True(t, out.WallHold)
	require.Equal(t, 0.0, out.Velocity.Y)

	in.Velocity = common.Vec3{Y: -3, Z: 4}
	out = s.Solve(in)
	require.False(t, out.WallHold, "too slow to hold the wall")
	require.Equal(t, -3.0, out.Velocity.Y)

	in.Velocity = common.Vec3{Y: -3, Z: 8}
	in.Input.MoveZ = -1
	out = s.Solve(in)
	require.False(t, out.WallHold, "pulling back releases the wall")
}

func TestUpdateSpeedDecaysToBase(t *testing.T) {
	tun := component.DefaultTunables()
	s := NewMovementSolver(&tun)
	var timers component.Timers
	speed := component.Speed{Base: 8, Current: 9, Floor: 3.5}

	s.UpdateSpeed(&speed, &timers, true)
	require.True(t, timers.Active(component.TimerSpeedDecay))
	s.UpdateSpeed(&speed, &timers, true)

	for i := 0; i < 5; i++ {
		timers.Advance(20 * time.Millisecond)
	}
	require.InDelta(t, 8.65, speed.Current, 1e-9, "one step per interval, even when polled twice")

	for i := 0; i < 100; i++ {
		s.UpdateSpeed(&speed, &timers, true)
		timers.Advance(20 * time.Millisecond)
	}
	require.Equal(t, 8.0, speed.Current)
}

func TestUpdateSpeedSkipsAirborneAndBoosted(t *testing.T) {
	tun := component.DefaultTunables()
	s := NewMovementSolver(&tun)
	var timers component.Timers

	speed := component.Speed{Base: 8, Current: 12, Floor: 3.5}
	s.UpdateSpeed(&speed, &timers, false)
	require.False(t, timers.Active(component.TimerSpeedDecay))

	speed.Boosted = true
	s.UpdateSpeed(&speed, &timers, true)
	require.False(t, timers.Active(component.TimerSpeedDecay))
}

func TestUpdateSpeedFloor(t *testing.T) {
	tun := component.DefaultTunables()
	s := NewMovementSolver(&tun)
	var timers component.Timers

	speed := component.Speed{Base: 2, Current: 2, Floor: 3.5}
	s.UpdateSpeed(&speed, &timers, true)
	require.Equal(t, 3.5, speed.Current)
}
