package app

import (
	"flag"
	"testing"

	"cave-ca/internal/core"
	_ "cave-ca/internal/sims/caves"
	"cave-ca/pkg/automaton"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func launchWith(t *testing.T, args ...string) (core.Sim, error) {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse(args))
	return Launch(cfg)
}

func TestLaunchHonoursSeedOverride(t *testing.T) {
	sim, err := launchWith(t, "-set", "seed=7", "-set", "w=16", "-set", "h=8")
	require.NoError(t, err)
	assert.Equal(t, int64(7), CurrentSeed(sim, -1))

	direct, err := launchWith(t, "-seed", "7", "-set", "w=16", "-set", "h=8")
	require.NoError(t, err)
	assert.Equal(t, direct.Cells(), sim.Cells())

	other, err := launchWith(t, "-set", "seed=8", "-set", "w=16", "-set", "h=8")
	require.NoError(t, err)
	assert.NotEqual(t, other.Cells(), sim.Cells())
}

func TestLaunchSeedFlagWins(t *testing.T) {
	sim, err := launchWith(t, "-seed", "9", "-set", "seed=7", "-set", "w=16", "-set", "h=8")
	require.NoError(t, err)
	assert.Equal(t, int64(9), CurrentSeed(sim, -1))
}

func TestLaunchUsesVariantSeedByDefault(t *testing.T) {
	sim, err := launchWith(t, "-sim", "world")
	require.NoError(t, err)
	assert.Equal(t, int64(1337), CurrentSeed(sim, -1))
}

func TestLaunchErrors(t *testing.T) {
	_, err := launchWith(t, "-sim", "nope")
	assert.Error(t, err)

	_, err = launchWith(t, "-set", "steps=-1")
	require.ErrorIs(t, err, automaton.ErrInvalidParameter)
}

type seedless struct{ core.Sim }

func TestCurrentSeedFallback(t *testing.T) {
	assert.Equal(t, int64(5), CurrentSeed(seedless{}, 5))
}
