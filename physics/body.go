package physics

import (
	"time"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/momentum/common"
	"github.com/milk9111/momentum/system"
)

// Body adapts a cp body to system.Body. The space simulates X and Y; Z has
// no geometry and is integrated here.
type Body struct {
	body     *cp.Body
	shape    *cp.Shape
	z, vz    float64
	yaw      float64
	gravity  bool
	friction func(f float64)
}

var _ system.Body = (*Body)(nil)

func (b *Body) Velocity() common.Vec3 {
	v := b.body.Velocity()
	return common.Vec3{X: v.X, Y: v.Y, Z: b.vz}
}

func (b *Body) SetVelocity(v common.Vec3) {
	b.body.SetVelocityVector(cp.Vector{X: v.X, Y: v.Y})
	b.vz = v.Z
}

func (b *Body) Position() common.Vec3 {
	p := b.body.Position()
	return common.Vec3{X: p.X, Y: p.Y, Z: b.z}
}

func (b *Body) SetYaw(yaw float64) {
	b.yaw = yaw
}

func (b *Body) Yaw() float64 {
	return b.yaw
}

// SetGravityEnabled swaps the velocity integrator so the space's gravity is
// skipped while disabled.
func (b *Body) SetGravityEnabled(enabled bool) {
	b.gravity = enabled
	if enabled {
		b.body.SetVelocityUpdateFunc(cp.BodyUpdateVelocity)
		return
	}
	b.body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(body, cp.Vector{}, damping, dt)
	})
}

func (b *Body) GravityEnabled() bool {
	return b.gravity
}

func (b *Body) SetGroundFriction(friction float64) {
	if b.friction != nil {
		b.friction(friction)
	}
}

// BB is the current bounding box of the player shape.
func (b *Body) BB() cp.BB {
	return b.shape.BB()
}

func (b *Body) integrateDepth(dt time.Duration) {
	b.z += b.vz * dt.Seconds()
}

// facingLeft projects the heading onto the side view.
func (b *Body) facingLeft() bool {
	return common.Forward(b.yaw).X < 0
}
