package main

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/momentum/common"
)

// Camera maps the side view (world X right, Y up, in meters) onto the screen
// and follows a target with linear smoothing.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int
	// pixels per meter
	zoom float64
	// smoothing factor (0..1). higher -> faster follow.
	smooth float64
}

func NewCamera(screenW, screenH int, zoom float64) *Camera {
	return &Camera{screenW: screenW, screenH: screenH, zoom: zoom, smooth: 0.15}
}

// SetZoom updates the camera zoom.
func (c *Camera) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	c.zoom = z
}

func (c *Camera) Zoom() float64 {
	return c.zoom
}

func (c *Camera) SetSmooth(f float64) {
	c.smooth = math.Max(f, 0)
}

// Update moves the camera toward the target. Call from the fixed-rate Update
// loop to get consistent smoothing.
func (c *Camera) Update(targetX, targetY float64) {
	if c.smooth <= 0 {
		c.SnapTo(targetX, targetY)
		return
	}
	c.PosX = common.Lerp(c.PosX, targetX, c.smooth)
	c.PosY = common.Lerp(c.PosY, targetY, c.smooth)
}

// SnapTo centers the camera immediately, e.g. after a restart.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX = x
	c.PosY = y
}

// Point converts a world point to screen pixels. Screen Y grows downward.
func (c *Camera) Point(v cp.Vector) (float32, float32) {
	sx := (v.X-c.PosX)*c.zoom + float64(c.screenW)/2
	sy := float64(c.screenH)/2 - (v.Y-c.PosY)*c.zoom
	return float32(sx), float32(sy)
}

// ToScreen converts a world bounding box to a screen rectangle whose origin
// is the box's top-left corner.
func (c *Camera) ToScreen(bb cp.BB) (x, y, w, h float32) {
	x, y = c.Point(cp.Vector{X: bb.L, Y: bb.T})
	return x, y, float32((bb.R - bb.L) * c.zoom), float32((bb.T - bb.B) * c.zoom)
}
