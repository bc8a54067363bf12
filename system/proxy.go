package system

import (
	"time"

	"github.com/milk9111/momentum/common"
)

// Proxy is an in-memory Body with optional simple integration. It has no
// collision response; contacts must be reported by the caller.
type Proxy struct {
	Vel      common.Vec3
	Pos      common.Vec3
	Heading  float64
	Gravity  bool
	Friction float64
}

var _ Body = (*Proxy)(nil)

func (b *Proxy) Velocity() common.Vec3              { return b.Vel }
func (b *Proxy) SetVelocity(v common.Vec3)          { b.Vel = v }
func (b *Proxy) Position() common.Vec3              { return b.Pos }
func (b *Proxy) SetYaw(yaw float64)                 { b.Heading = yaw }
func (b *Proxy) SetGravityEnabled(enabled bool)     { b.Gravity = enabled }
func (b *Proxy) SetGroundFriction(friction float64) { b.Friction = friction }

// Integrate applies gravity (when enabled) and moves the position by one step.
func (b *Proxy) Integrate(dt time.Duration, gravity float64) {
	s := dt.Seconds()
	if b.Gravity {
		b.Vel.Y += gravity * s
	}
	b.Pos = b.Pos.Add(b.Vel.Scale(s))
}
