package caves

import (
	"image/color"
	"slices"
	"testing"

	"cave-ca/internal/core"
	"cave-ca/pkg/automaton"
	pkgcore "cave-ca/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultCavesConfig()
	cfg.Width = 48
	cfg.Height = 32

	world, err := NewCaves(cfg)
	require.NoError(t, err)
	require.NoError(t, world.Reset(0))
	initial := append([]uint8(nil), world.Cells()...)
	assert.Equal(t, cfg.Seed, world.Seed())

	world.Cells()[0] = 42
	require.NoError(t, world.Reset(0))
	if !slices.Equal(initial, world.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}

	require.NoError(t, world.Reset(777))
	explicit := append([]uint8(nil), world.Cells()...)
	require.NoError(t, world.Reset(777))
	if !slices.Equal(explicit, world.Cells()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if slices.Equal(initial, explicit) {
		t.Fatal("different seeds should produce different maps")
	}
}

func TestDisplayMatchesAutomaton(t *testing.T) {
	cfg := DefaultCavesConfig()
	cfg.Width, cfg.Height = 20, 15
	world, err := NewCaves(cfg)
	require.NoError(t, err)
	require.NoError(t, world.Reset(5))

	expected, err := automaton.Generate(cfg.Params(), automaton.TileStates, pkgcore.NewRNG(5))
	require.NoError(t, err)
	assertDisplay(t, world, expected)

	require.NoError(t, world.Step())
	expected, err = automaton.Step(expected, cfg.Params().Rule, automaton.TileStates)
	require.NoError(t, err)
	assertDisplay(t, world, expected)
	assert.Equal(t, cfg.Steps+1, world.Generation())
}

func assertDisplay(t *testing.T, world *World[automaton.Tile], g *automaton.Grid[automaton.Tile]) {
	t.Helper()
	cells := world.Cells()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			want := uint8(0)
			if g.At(x, y) == automaton.TileWall {
				want = 1
			}
			require.Equal(t, want, cells[y*g.Width()+x], "cell (%d,%d)", x, y)
		}
	}
}

func TestStepBeforeResetFails(t *testing.T) {
	world, err := NewBoolWorld(DefaultWorldConfig())
	require.NoError(t, err)
	require.ErrorIs(t, world.Step(), automaton.ErrInvalidState)
	assert.Nil(t, world.Grid())
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultWorldConfig()
	cfg.Width = 0
	_, err := NewBoolWorld(cfg)
	require.ErrorIs(t, err, automaton.ErrInvalidDimension)

	cfg = DefaultWorldConfig()
	cfg.SeedProbability = 1.5
	_, err = NewBoolWorld(cfg)
	require.ErrorIs(t, err, automaton.ErrInvalidParameter)
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(DefaultCavesConfig(), map[string]string{
		"w":               "64",
		"h":               "48",
		"seed":            "99",
		"p":               "0.45",
		"birth_limit":     "5",
		"death_limit":     "2",
		"steps":           "7",
		"overcrowd_limit": "6",
		"alive_color":     "#102030",
		"dead_color":      "a0b0c080",
	})
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 48, cfg.Height)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.InDelta(t, 0.45, cfg.SeedProbability, 1e-9)
	assert.Equal(t, 5, cfg.BirthLimit)
	assert.Equal(t, 2, cfg.DeathLimit)
	assert.Equal(t, 7, cfg.Steps)
	assert.Equal(t, 6, cfg.OvercrowdLimit)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, cfg.AliveColor)
	assert.Equal(t, color.RGBA{R: 0xa0, G: 0xb0, B: 0xc0, A: 0x80}, cfg.DeadColor)

	ignored := FromMap(DefaultWorldConfig(), map[string]string{"w": "wide", "alive_color": "#12"})
	assert.Equal(t, DefaultWorldConfig(), ignored)
	assert.Equal(t, DefaultCavesConfig(), FromMap(DefaultCavesConfig(), nil))
}

func TestSettersClampAndRegenerate(t *testing.T) {
	cfg := DefaultWorldConfig()
	world, err := NewBoolWorld(cfg)
	require.NoError(t, err)
	require.NoError(t, world.Reset(21))

	require.True(t, world.SetIntParameter("birth_limit", 40))
	assert.Equal(t, 10, world.Config().BirthLimit)

	require.True(t, world.SetIntParameter("steps", -3))
	assert.Equal(t, 0, world.Config().Steps)
	assert.Equal(t, 0, world.Generation(), "setter regenerates with the new step count")

	seeded, err := automaton.Seed(cfg.Width, cfg.Height, cfg.SeedProbability, automaton.BoolStates, pkgcore.NewRNG(21))
	require.NoError(t, err)
	assert.True(t, world.Grid().Equal(seeded), "regeneration keeps the current seed")

	require.True(t, world.SetFloatParameter("p", 3))
	assert.InDelta(t, 1.0, world.Config().SeedProbability, 1e-9)
	assert.Equal(t, 0, world.Stats().Open)

	assert.False(t, world.SetIntParameter("p", 1), "type mismatch")
	assert.False(t, world.SetIntParameter("w", 10), "dimensions are not adjustable")
	assert.False(t, world.SetFloatParameter("unknown", 1))
}

func TestParametersSnapshot(t *testing.T) {
	world, err := NewCaves(DefaultCavesConfig())
	require.NoError(t, err)
	require.NoError(t, world.Reset(4242))

	snap := world.Parameters()
	p, ok := snap.Lookup("seed")
	require.True(t, ok)
	assert.Equal(t, "4242", p.Value)
	p, ok = snap.Lookup("p")
	require.True(t, ok)
	assert.Equal(t, "0.4", p.Value)
	p, ok = snap.Lookup("dead_color")
	require.True(t, ok)
	assert.Equal(t, core.ParamTypeColor, p.Type)

	for _, ctrl := range world.ParameterControls() {
		_, ok := snap.Lookup(ctrl.Key)
		assert.True(t, ok, "control %q has no snapshot value", ctrl.Key)
	}
}

func TestStatsAndRegionMask(t *testing.T) {
	cfg := DefaultWorldConfig()
	cfg.Width, cfg.Height = 5, 5
	cfg.SeedProbability = 0
	cfg.Steps = 1
	world, err := NewBoolWorld(cfg)
	require.NoError(t, err)
	require.NoError(t, world.Reset(1))

	stats := world.Stats()
	assert.Equal(t, Stats{Generation: 1, Alive: 4, Open: 21, Regions: 1, Largest: 21}, stats)
	for _, v := range world.RegionMask() {
		assert.Zero(t, v)
	}
	assert.Equal(t, "gen 1  seed 1  fill 16.0%  regions 1  largest 21", world.Summary())
}

func TestRegionMaskMarksPockets(t *testing.T) {
	cfg := DefaultWorldConfig()
	cfg.Width, cfg.Height = 40, 40
	cfg.SeedProbability = 0.5
	world, err := NewBoolWorld(cfg)
	require.NoError(t, err)
	require.NoError(t, world.Reset(8))

	stats := world.Stats()
	marked := 0
	for _, v := range world.RegionMask() {
		if v > 0 {
			marked++
		}
	}
	assert.Equal(t, stats.Open-stats.Largest, marked)
}

func TestRegisteredVariants(t *testing.T) {
	for _, name := range []string{"caves", "world"} {
		factory, ok := core.Sims()[name]
		require.True(t, ok, name)

		sim, err := factory(map[string]string{"w": "16", "h": "12"})
		require.NoError(t, err)
		require.NoError(t, sim.Reset(3))
		assert.Equal(t, name, sim.Name())
		assert.Equal(t, core.Size{W: 16, H: 12}, sim.Size())
		assert.Len(t, sim.Cells(), 16*12)

		pp, ok := sim.(core.PaletteProvider)
		require.True(t, ok)
		assert.Len(t, pp.Palette(), 2)
	}

	_, err := core.Sims()["caves"](map[string]string{"steps": "-1"})
	require.ErrorIs(t, err, automaton.ErrInvalidParameter)
}
