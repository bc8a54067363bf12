package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Vec3 is a world-space vector. Y is up.
type Vec3 struct {
	X, Y, Z float64
}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Horizontal returns the X/Z plane component as a 2D vector (X -> X, Z -> Y).
func (v Vec3) Horizontal() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Z}
}

// WithHorizontal replaces the X/Z components and keeps Y.
func (v Vec3) WithHorizontal(h cp.Vector) Vec3 {
	return Vec3{X: h.X, Y: v.Y, Z: h.Y}
}

func (v Vec3) WithY(y float64) Vec3 {
	v.Y = y
	return v
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector, or zero for a zero-length input.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Forward is the unit facing vector for a yaw in radians. Yaw 0 faces +Z and
// positive yaw turns toward +X.
func Forward(yaw float64) Vec3 {
	return Vec3{X: math.Sin(yaw), Z: math.Cos(yaw)}
}

// Right is the unit vector 90 degrees clockwise from Forward.
func Right(yaw float64) Vec3 {
	return Vec3{X: math.Cos(yaw), Z: -math.Sin(yaw)}
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
