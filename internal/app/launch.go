package app

import (
	"fmt"

	"cave-ca/internal/core"
)

type seedProvider interface {
	Seed() int64
}

// Launch builds cfg.Sim with its -set overrides and generates the first map.
// A zero cfg.Seed leaves the choice to the sim, so "-set seed=N" applies.
func Launch(cfg *Config) (core.Sim, error) {
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (available: %v)", cfg.Sim, core.SimNames())
	}
	sim, err := factory(cfg.Overrides.Map())
	if err != nil {
		return nil, fmt.Errorf("configure %s: %w", cfg.Sim, err)
	}
	if err := sim.Reset(cfg.Seed); err != nil {
		return nil, fmt.Errorf("seed %s: %w", cfg.Sim, err)
	}
	return sim, nil
}

// CurrentSeed reports the seed behind the sim's current map, or fallback when
// the sim does not expose one.
func CurrentSeed(sim core.Sim, fallback int64) int64 {
	if p, ok := sim.(seedProvider); ok {
		return p.Seed()
	}
	return fallback
}
