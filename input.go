package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/momentum/script"
)

const stickDeadzone = 0.3

// Input holds the polled keyboard and gamepad state for one frame.
type Input struct {
	// Run is 0..1 along the facing.
	Run float64
	// Strafe is -1..1 across the facing, which is depth in the side view.
	Strafe float64
	// Yaw is the last facing; +X is pi/2, -X is -pi/2.
	Yaw float64

	JumpPressed  bool
	DashPressed  bool
	PunchPressed bool

	RestartPressed bool
	HelpPressed    bool
	QuitPressed    bool
}

func NewInput() *Input {
	return &Input{Yaw: math.Pi / 2}
}

// Update polls the keyboard and the first gamepad.
func (i *Input) Update() {
	var moveX, moveDepth float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		moveDepth -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		moveDepth += 1
	}

	var gpJump, gpDash, gpPunch, gpRestart bool
	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		gid := ids[0]
		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			moveX = leftX
		}
		leftY := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(leftY) > stickDeadzone {
			moveDepth = leftY
		}
		gpJump = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		gpDash = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightLeft)
		gpPunch = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonFrontBottomRight)
		gpRestart = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
	}
	i.setMove(moveX, moveDepth)

	i.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace) || gpJump
	i.DashPressed = inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || inpututil.IsKeyJustPressed(ebiten.KeyK) || gpDash
	i.PunchPressed = inpututil.IsKeyJustPressed(ebiten.KeyJ) || gpPunch
	i.RestartPressed = inpututil.IsKeyJustPressed(ebiten.KeyR) || gpRestart
	i.HelpPressed = inpututil.IsKeyJustPressed(ebiten.KeyP)
	i.QuitPressed = inpututil.IsKeyJustPressed(ebiten.KeyF12)
}

// setMove turns the facing toward the sign of moveX and runs along it.
// Depth input strafes along a fixed world axis: W is +Z whichever way the
// player faces.
func (i *Input) setMove(moveX, moveDepth float64) {
	switch {
	case moveX > 0:
		i.Yaw = math.Pi / 2
	case moveX < 0:
		i.Yaw = -math.Pi / 2
	}
	i.Run = math.Min(math.Abs(moveX), 1)

	strafe := moveDepth
	if i.Yaw < 0 {
		strafe = -strafe
	}
	i.Strafe = strafe
}

// Apply forwards the frame's intent and trigger edges to the player.
func (i *Input) Apply(e script.Engine) {
	e.SetYaw(i.Yaw)
	e.SetIntent(i.Strafe, i.Run)
	if i.JumpPressed {
		e.OnJumpTriggered()
	}
	if i.DashPressed {
		e.OnDashTriggered()
	}
	if i.PunchPressed {
		e.OnPunchTriggered()
	}
}
