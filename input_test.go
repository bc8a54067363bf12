package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/momentum/common"
	"github.com/milk9111/momentum/component"
	"github.com/milk9111/momentum/system"
)

type recordingEngine struct {
	moveX, moveZ float64
	yaw          float64
	jumps        int
	dashes       int
	punches      int
}

func (e *recordingEngine) SetIntent(x, z float64) { e.moveX, e.moveZ = x, z }
func (e *recordingEngine) SetYaw(yaw float64)     { e.yaw = yaw }
func (e *recordingEngine) OnJumpTriggered()       { e.jumps++ }
func (e *recordingEngine) OnDashTriggered()       { e.dashes++ }
func (e *recordingEngine) OnPunchTriggered()      { e.punches++ }
func (e *recordingEngine) Status() system.Status  { return system.Status{} }

func TestInputApply(t *testing.T) {
	tests := []struct {
		name             string
		moveX, depth     float64
		startYaw         float64
		wantYaw, wantRun float64
		wantDir          common.Vec3
	}{
		{"idle keeps facing", 0, 0, -math.Pi / 2, -math.Pi / 2, 0, common.Vec3{}},
		{"run right", 1, 0, -math.Pi / 2, math.Pi / 2, 1, common.Vec3{X: 1}},
		{"run left", -1, 0, math.Pi / 2, -math.Pi / 2, 1, common.Vec3{X: -1}},
		{"stick half", 0.5, 0, 0, math.Pi / 2, 0.5, common.Vec3{X: 1}},
		{"strafe facing right", 0, -1, math.Pi / 2, math.Pi / 2, 0, common.Vec3{Z: 1}},
		{"strafe facing left", 0, -1, -math.Pi / 2, -math.Pi / 2, 0, common.Vec3{Z: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &Input{Yaw: tt.startYaw}
			in.setMove(tt.moveX, tt.depth)

			var e recordingEngine
			in.Apply(&e)
			require.Equal(t, tt.wantYaw, e.yaw)
			require.Equal(t, tt.wantRun, e.moveZ)

			dir := system.MoveDirection(component.Input{MoveX: e.moveX, MoveZ: e.moveZ, Yaw: e.yaw})
			require.InDelta(t, tt.wantDir.X, dir.X, 1e-9)
			require.InDelta(t, tt.wantDir.Z, dir.Z, 1e-9)
		})
	}
}

func TestInputTriggers(t *testing.T) {
	in := NewInput()
	in.JumpPressed = true
	in.PunchPressed = true

	var e recordingEngine
	in.Apply(&e)
	require.Equal(t, 1, e.jumps)
	require.Equal(t, 0, e.dashes)
	require.Equal(t, 1, e.punches)
	require.Equal(t, math.Pi/2, e.yaw)
}
