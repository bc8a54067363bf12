package component

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResourcePoolSaturates(t *testing.T) {
	cases := []struct {
		name string
		kind ResourceKind
		adds int
		want int
	}{
		{"jump_one", ResourceJump, 1, 1},
		{"jump_at_capacity", ResourceJump, 3, 3},
		{"jump_surplus_dropped", ResourceJump, 7, 3},
		{"dash_surplus_dropped", ResourceDash, 5, 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewResourcePool(DefaultCapacity)
			for i := 0; i < c.adds; i++ {
				p.Add(c.kind)
				require.LessOrEqual(t, p.Count(c.kind), p.Capacity)
			}
			require.Equal(t, c.want, p.Count(c.kind))
		})
	}
}

func TestResourcePoolAddReportsFull(t *testing.T) {
	p := NewResourcePool(2)
	require.True(t, p.Add(ResourceDash))
	require.True(t, p.Add(ResourceDash))
	require.False(t, p.Add(ResourceDash))
	require.Equal(t, 0, p.Count(ResourceJump), "kinds are independent")
}

func TestResourcePoolConsumeEmptyIsNoop(t *testing.T) {
	p := NewResourcePool(DefaultCapacity)
	for i := 0; i < 3; i++ {
		require.False(t, p.Consume(ResourceJump))
		require.Equal(t, 0, p.Count(ResourceJump))
	}

	p.Add(ResourceJump)
	require.True(t, p.Consume(ResourceJump))
	require.False(t, p.Consume(ResourceJump))
	require.Equal(t, 0, p.Count(ResourceJump))
}

func TestResourcePoolResetAll(t *testing.T) {
	p := NewResourcePool(DefaultCapacity)
	p.Add(ResourceJump)
	p.Add(ResourceDash)
	p.Add(ResourceDash)

	p.ResetAll()
	require.Zero(t, p.Count(ResourceJump))
	require.Zero(t, p.Count(ResourceDash))
}

func TestResourcePoolSetCapacityClamps(t *testing.T) {
	p := NewResourcePool(3)
	for i := 0; i < 3; i++ {
		p.Add(ResourceJump)
	}
	p.SetCapacity(1)
	require.Equal(t, 1, p.Count(ResourceJump))

	p.SetCapacity(0)
	require.Equal(t, 1, p.Capacity, "non-positive capacity is ignored")
}

func TestResourcePoolInvalidKind(t *testing.T) {
	p := NewResourcePool(0)
	require.Equal(t, DefaultCapacity, p.Capacity)
	require.False(t, p.Add(ResourceKind(9)))
	require.False(t, p.Consume(ResourceKind(-1)))
	require.Zero(t, p.Count(ResourceKind(9)))
}
