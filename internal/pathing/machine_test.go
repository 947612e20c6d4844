package pathing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/litetux-lab/internal/pathing"
	"github.com/vovakirdan/litetux-lab/internal/tilegrid"
	"github.com/vovakirdan/litetux-lab/internal/tiles"
)

func TestStateIndexLayout(t *testing.T) {
	m := pathing.NewMachine(pathing.RequiredJumpParams(), nil)
	require.Equal(t, 17, m.NumStates())

	testCases := []struct {
		state pathing.State
		index int
	}{
		{pathing.Grounded(), 0},
		{pathing.Backtrack(), 1},
		{pathing.Jump(pathing.Straight, 0), 2},
		{pathing.Jump(pathing.Straight, 3), 5},
		{pathing.Jump(pathing.Right, 0), 6},
		{pathing.Jump(pathing.Left, 0), 10},
		{pathing.Jump(pathing.Left, 3), 13},
		{pathing.Fall(pathing.Straight), 14},
		{pathing.Fall(pathing.Right), 15},
		{pathing.Fall(pathing.Left), 16},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.index, m.Index(tc.state), tc.state.String())
	}
	for i := 0; i < m.NumStates(); i++ {
		s, ok := m.StateAt(i)
		require.True(t, ok)
		assert.Equal(t, i, m.Index(s))
	}
	_, ok := m.StateAt(m.NumStates())
	assert.False(t, ok)
}

func TestArrowIDs(t *testing.T) {
	testCases := []struct {
		state pathing.State
		arrow uint8
	}{
		{pathing.Grounded(), 4},
		{pathing.Backtrack(), 64},
		{pathing.Jump(pathing.Straight, 2), 1},
		{pathing.Jump(pathing.Right, 0), 2},
		{pathing.Jump(pathing.Left, 1), 128},
		{pathing.Fall(pathing.Straight), 16},
		{pathing.Fall(pathing.Right), 8},
		{pathing.Fall(pathing.Left), 32},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.arrow, pathing.ArrowID(tc.state), tc.state.String())
	}
}

func TestCost(t *testing.T) {
	m := pathing.NewMachine(pathing.Params{JumpHeight: 4, JumpCost: 3, BacktrackCost: 5, Budget: 100}, nil)

	assert.Equal(t, 3, m.Cost(pathing.Jump(pathing.Left, 0)))
	assert.Equal(t, 1, m.Cost(pathing.Jump(pathing.Left, 1)))
	assert.Equal(t, 5, m.Cost(pathing.Backtrack()))
	assert.Equal(t, 5, m.Cost(pathing.Fall(pathing.Left)))
	assert.Equal(t, 1, m.Cost(pathing.Fall(pathing.Right)))
	assert.Equal(t, 1, m.Cost(pathing.Grounded()))
}

func TestGroundedChildren(t *testing.T) {
	g, err := tilegrid.FromRows([][]int{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{8, 8, 8, 8, 8},
	})
	require.NoError(t, err)
	m := pathing.NewMachine(pathing.RequiredJumpParams(), tiles.LiteTux())
	root := pathing.Node{X: 0, Y: 1, State: pathing.Grounded(), Score: 1000, Parent: pathing.None}

	got := m.Children(nil, root, nil, g)
	want := []pathing.Candidate{
		{X: 1, Y: 1, State: pathing.Grounded(), Score: 999},
		{X: 0, Y: 0, State: pathing.Jump(pathing.Straight, 0), Score: 998},
		{X: 1, Y: 0, State: pathing.Jump(pathing.Right, 0), Score: 998},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, 1000+0-5, m.Weight(root, g))
}

func TestJumpingAndFalling(t *testing.T) {
	g, err := tilegrid.FromRows([][]int{
		{0, 8, 0},
		{0, 0, 0},
		{0, 9, 0},
		{8, 8, 8},
	})
	require.NoError(t, err)
	m := pathing.NewMachine(pathing.RequiredJumpParams(), nil)

	testCases := []struct {
		name    string
		node    pathing.Node
		jumping bool
		falling bool
	}{
		{"mid jump", pathing.Node{X: 0, Y: 1, State: pathing.Jump(pathing.Straight, 1)}, true, false},
		{"arc spent", pathing.Node{X: 0, Y: 1, State: pathing.Jump(pathing.Straight, 3)}, false, true},
		{"head bump", pathing.Node{X: 1, Y: 1, State: pathing.Jump(pathing.Straight, 0)}, false, true},
		{"ceiling", pathing.Node{X: 2, Y: 0, State: pathing.Jump(pathing.Right, 0)}, false, true},
		{"on ground", pathing.Node{X: 0, Y: 2, State: pathing.Grounded()}, false, false},
		{"over spike", pathing.Node{X: 1, Y: 1, State: pathing.Grounded()}, false, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.jumping, m.IsJumping(tc.node, g))
			assert.Equal(t, tc.falling, m.IsFalling(tc.node, g))
		})
	}
}

func TestIsAlive(t *testing.T) {
	g, err := tilegrid.FromRows([][]int{
		{0, 0, 0},
		{0, tiles.Owl, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)
	m := pathing.NewMachine(pathing.RequiredJumpParams(), nil)

	inOwl := pathing.Node{X: 1, Y: 1}
	fromBelow := pathing.Node{X: 1, Y: 2}
	fromSide := pathing.Node{X: 0, Y: 1}

	assert.True(t, m.IsAlive(inOwl, &fromBelow, g))
	assert.False(t, m.IsAlive(inOwl, &fromSide, g))
	assert.False(t, m.IsAlive(inOwl, nil, g))
	assert.True(t, m.IsAlive(pathing.Node{X: 0, Y: 1}, nil, g))
	assert.False(t, m.IsAlive(pathing.Node{X: 0, Y: 2}, nil, g), "bottom row is fatal")
}

func TestForcedJumpOnlyWhenLanding(t *testing.T) {
	g, err := tilegrid.FromRows([][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, tiles.Owl, 0, 0},
		{8, 8, 8, 8},
	})
	require.NoError(t, err)
	m := pathing.NewMachine(pathing.RequiredJumpParams(), nil)

	type cell struct {
		x, y  int
		state pathing.State
	}
	targets := func(cs []pathing.Candidate) []cell {
		var out []cell
		for _, c := range cs {
			out = append(out, cell{c.X, c.Y, c.State})
		}
		return out
	}

	t.Run("rising past the owl", func(t *testing.T) {
		rising := pathing.Node{X: 1, Y: 2, State: pathing.Jump(pathing.Right, 0), Score: 100}
		require.True(t, m.ForcesJump(rising, g))
		require.True(t, m.IsJumping(rising, g))

		got := targets(m.Children(nil, rising, nil, g))
		assert.Equal(t, []cell{
			{0, 1, pathing.Jump(pathing.Left, 1)},
			{1, 1, pathing.Jump(pathing.Straight, 1)},
			{2, 1, pathing.Jump(pathing.Right, 1)},
		}, got)
	})

	t.Run("landing on the owl", func(t *testing.T) {
		landing := pathing.Node{X: 1, Y: 2, State: pathing.Fall(pathing.Straight), Score: 100}
		require.True(t, m.IsFalling(landing, g))

		got := targets(m.Children(nil, landing, nil, g))
		assert.Equal(t, []cell{
			{0, 2, pathing.Jump(pathing.Straight, 0)},
			{1, 2, pathing.Jump(pathing.Straight, 0)},
			{2, 2, pathing.Jump(pathing.Straight, 0)},
		}, got)
	})
}
