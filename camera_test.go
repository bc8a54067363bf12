package main

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/require"
)

func TestCameraToScreen(t *testing.T) {
	tests := []struct {
		name       string
		posX, posY float64
		bb         cp.BB
		want       [4]float32
	}{
		{"centered", 0, 0, cp.BB{L: -1, B: -1, R: 1, T: 1}, [4]float32{390, 290, 20, 20}},
		{"above target", 0, 0, cp.BB{L: 0, B: 2, R: 1, T: 3}, [4]float32{400, 270, 10, 10}},
		{"camera moved right", 5, 0, cp.BB{L: 5, B: 0, R: 6, T: 1}, [4]float32{400, 290, 10, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(800, 600, 10)
			c.SnapTo(tt.posX, tt.posY)
			x, y, w, h := c.ToScreen(tt.bb)
			require.Equal(t, tt.want, [4]float32{x, y, w, h})
		})
	}
}

func TestCameraPoint(t *testing.T) {
	c := NewCamera(800, 600, 10)
	c.SnapTo(2, 3)
	x, y := c.Point(cp.Vector{X: 2, Y: 3})
	require.Equal(t, float32(400), x)
	require.Equal(t, float32(300), y)

	x, y = c.Point(cp.Vector{X: 0, Y: 0})
	require.Equal(t, float32(380), x)
	require.Equal(t, float32(330), y)
}

func TestCameraFollow(t *testing.T) {
	c := NewCamera(800, 600, 10)
	c.SetSmooth(0.5)
	c.Update(10, -4)
	require.Equal(t, 5.0, c.PosX)
	require.Equal(t, -2.0, c.PosY)

	c.SetSmooth(0)
	c.Update(10, -4)
	require.Equal(t, 10.0, c.PosX)
	require.Equal(t, -4.0, c.PosY)

	c.SetZoom(-1)
	require.Equal(t, 10.0, c.Zoom())
}
