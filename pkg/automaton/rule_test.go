package automaton

import (
	"testing"

	"cave-ca/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLivingNeighborsBorderCountsAsAlive(t *testing.T) {
	g := parseGrid(t,
		".....",
		".....",
		".....",
		".....",
		".....",
	)

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"top-left corner", 0, 0, 5},
		{"bottom-right corner", 4, 4, 5},
		{"top edge", 2, 0, 3},
		{"left edge", 0, 3, 3},
		{"interior", 2, 2, 0},
		{"next to edge", 1, 1, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LivingNeighbors(g, tc.x, tc.y, BoolStates))
		})
	}

	single := parseGrid(t, ".")
	assert.Equal(t, 8, LivingNeighbors(single, 0, 0, BoolStates))
}

func TestLivingNeighborsAddsInBoundsCells(t *testing.T) {
	g := parseGrid(t,
		"#.#",
		"...",
		"#.#",
	)
	// Three phantom border cells plus the two living corners beside it.
	assert.Equal(t, 5, LivingNeighbors(g, 1, 0, BoolStates))
	// Five phantom cells, no living in-bounds neighbours.
	assert.Equal(t, 5, LivingNeighbors(g, 0, 0, BoolStates))
	assert.Equal(t, 4, LivingNeighbors(g, 1, 1, BoolStates))
}

// centerWith returns a 5x5 grid whose centre has exactly n living neighbours.
func centerWith(t *testing.T, centerAlive bool, n int) *Grid[bool] {
	t.Helper()
	g, err := NewGrid(5, 5, false)
	require.NoError(t, err)
	ring := [][2]int{{1, 1}, {2, 1}, {3, 1}, {3, 2}, {3, 3}, {2, 3}, {1, 3}, {1, 2}}
	for i := 0; i < n; i++ {
		g.Set(ring[i][0], ring[i][1], true)
	}
	g.Set(2, 2, centerAlive)
	require.Equal(t, n, LivingNeighbors(g, 2, 2, BoolStates))
	return g
}

func TestStepBirthIsStrict(t *testing.T) {
	rule := Rule{BirthLimit: 4, DeathLimit: 3}

	next, err := Step(centerWith(t, false, 4), rule, BoolStates)
	require.NoError(t, err)
	assert.False(t, next.At(2, 2), "dead cell with exactly birthLimit neighbours must stay dead")

	next, err = Step(centerWith(t, false, 5), rule, BoolStates)
	require.NoError(t, err)
	assert.True(t, next.At(2, 2), "dead cell with birthLimit+1 neighbours must come alive")
}

func TestStepDeathIsStrict(t *testing.T) {
	rule := Rule{BirthLimit: 4, DeathLimit: 3}

	next, err := Step(centerWith(t, true, 3), rule, BoolStates)
	require.NoError(t, err)
	assert.True(t, next.At(2, 2), "living cell with exactly deathLimit neighbours must survive")

	next, err = Step(centerWith(t, true, 2), rule, BoolStates)
	require.NoError(t, err)
	assert.False(t, next.At(2, 2), "living cell with deathLimit-1 neighbours must die")
}

func TestStepLowerBoundOnlyByDefault(t *testing.T) {
	g := centerWith(t, true, 8)

	next, err := Step(g, Rule{BirthLimit: 4, DeathLimit: 3}, BoolStates)
	require.NoError(t, err)
	assert.True(t, next.At(2, 2), "crowded cells survive without an overcrowd limit")

	next, err = Step(g, Rule{BirthLimit: 4, DeathLimit: 3, OvercrowdLimit: 7}, BoolStates)
	require.NoError(t, err)
	assert.False(t, next.At(2, 2), "overcrowd limit kills cells above it")

	next, err = Step(g, Rule{BirthLimit: 4, DeathLimit: 3, OvercrowdLimit: 8}, BoolStates)
	require.NoError(t, err)
	assert.True(t, next.At(2, 2))
}

func TestOvercrowdLeavesBirthsAlone(t *testing.T) {
	rule := Rule{BirthLimit: 4, DeathLimit: 3, OvercrowdLimit: 5}
	assert.True(t, rule.Next(false, 8), "dead cell above the overcrowd limit is still born")
	assert.False(t, rule.Next(true, 8))

	next, err := Step(centerWith(t, false, 8), rule, BoolStates)
	require.NoError(t, err)
	assert.True(t, next.At(2, 2))
}

func TestStepIsPureAndPreservesSize(t *testing.T) {
	g, err := Seed(17, 11, 0.45, BoolStates, core.NewRNG(7))
	require.NoError(t, err)
	before := g.Clone()
	rule := DefaultRule()

	a, err := Step(g, rule, BoolStates)
	require.NoError(t, err)
	b, err := Step(g, rule, BoolStates)
	require.NoError(t, err)

	assert.True(t, a.Equal(b), "step must be deterministic")
	assert.True(t, g.Equal(before), "step must not mutate its input")
	assert.Equal(t, 17, a.Width())
	assert.Equal(t, 11, a.Height())
	assert.NotSame(t, g, a)
}

func TestStepTileAndBoolVariantsAgree(t *testing.T) {
	bools, err := Seed(24, 16, 0.4, BoolStates, core.NewRNG(3))
	require.NoError(t, err)
	tiles, err := NewGrid(24, 16, TileNone)
	require.NoError(t, err)
	for y := 0; y < 16; y++ {
		for x := 0; x < 24; x++ {
			if bools.At(x, y) {
				tiles.Set(x, y, TileWall)
			}
		}
	}

	for i := 0; i < 3; i++ {
		bools, err = Step(bools, DefaultRule(), BoolStates)
		require.NoError(t, err)
		tiles, err = Step(tiles, DefaultRule(), TileStates)
		require.NoError(t, err)
	}

	for y := 0; y < 16; y++ {
		for x := 0; x < 24; x++ {
			require.Equal(t, bools.At(x, y), tiles.At(x, y) == TileWall, "cell (%d,%d)", x, y)
		}
	}
}

func TestStepRejectsBadInput(t *testing.T) {
	_, err := Step[bool](nil, DefaultRule(), BoolStates)
	require.ErrorIs(t, err, ErrInvalidState)

	g := parseGrid(t, "..", "..")
	_, err = Step(g, Rule{BirthLimit: -1, DeathLimit: 3}, BoolStates)
	require.ErrorIs(t, err, ErrInvalidParameter)
	_, err = Step(g, Rule{BirthLimit: 4, DeathLimit: -2}, BoolStates)
	require.ErrorIs(t, err, ErrInvalidParameter)
	_, err = Step(g, Rule{BirthLimit: 4, DeathLimit: 3, OvercrowdLimit: -1}, BoolStates)
	require.ErrorIs(t, err, ErrInvalidParameter)
	_, err = Step(g, DefaultRule(), States[bool]{Dead: true, Alive: true})
	require.ErrorIs(t, err, ErrInvalidParameter)
}
