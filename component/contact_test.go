package component

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContactTrackerSpawnsGrounded(t *testing.T) {
	c := NewContactTracker()
	require.True(t, c.Grounded())
	require.False(t, c.WallRunning())
	require.Equal(t, Grounded, c.Locomotion())
}

func TestContactTrackerEdges(t *testing.T) {
	c := NewContactTracker()

	require.False(t, c.WallStay(), "no wall run while grounded")
	require.False(t, c.WallRunning())

	require.True(t, c.GroundEnd())
	require.False(t, c.GroundEnd())
	require.Equal(t, Airborne, c.Locomotion())

	require.True(t, c.WallStay())
	require.False(t, c.WallStay(), "already wall running")
	require.True(t, c.WallRunning())

	require.True(t, c.GroundBegin())
	require.False(t, c.WallRunning(), "landing ends the wall run")
	require.False(t, c.GroundBegin())
}

func TestContactTrackerWallEnd(t *testing.T) {
	c := NewContactTracker()
	c.GroundEnd()
	c.WallStay()

	require.True(t, c.WallEnd())
	require.False(t, c.WallRunning())
	require.False(t, c.WallEnd())
	require.Equal(t, Airborne, c.Locomotion())
}

func TestContactTrackerNil(t *testing.T) {
	var c *ContactTracker
	require.False(t, c.Grounded())
	require.False(t, c.GroundBegin())
	require.False(t, c.WallStay())
	require.Equal(t, Airborne, c.Locomotion())
}
