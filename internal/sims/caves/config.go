package caves

import (
	"image/color"
	"strconv"

	"cave-ca/internal/render"
	"cave-ca/pkg/automaton"
)

// Config controls map dimensions, automaton tunables and display colours.
type Config struct {
	Width  int
	Height int

	Seed int64

	SeedProbability float64
	BirthLimit      int
	DeathLimit      int
	Steps           int
	OvercrowdLimit  int

	AliveColor color.RGBA
	DeadColor  color.RGBA
}

// DefaultCavesConfig returns the tile-map defaults: 128x128, three steps,
// purple walls on yellow floor.
func DefaultCavesConfig() Config {
	return Config{
		Width:           128,
		Height:          128,
		Seed:            1337,
		SeedProbability: 0.4,
		BirthLimit:      4,
		DeathLimit:      3,
		Steps:           3,
		AliveColor:      color.RGBA{R: 120, G: 81, B: 169, A: 255},
		DeadColor:       color.RGBA{R: 255, G: 223, B: 0, A: 255},
	}
}

// DefaultWorldConfig returns the boolean-world defaults: 32x32, two steps,
// white solids on black.
func DefaultWorldConfig() Config {
	return Config{
		Width:           32,
		Height:          32,
		Seed:            1337,
		SeedProbability: 0.4,
		BirthLimit:      4,
		DeathLimit:      3,
		Steps:           2,
		AliveColor:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		DeadColor:       color.RGBA{R: 0, G: 0, B: 0, A: 255},
	}
}

// Params converts the config into automaton parameters.
func (c Config) Params() automaton.Params {
	return automaton.Params{
		Width:           c.Width,
		Height:          c.Height,
		SeedProbability: c.SeedProbability,
		Rule: automaton.Rule{
			BirthLimit:     c.BirthLimit,
			DeathLimit:     c.DeathLimit,
			OvercrowdLimit: c.OvercrowdLimit,
		},
		Steps: c.Steps,
	}
}

// FromMap overlays flag-style key/value pairs on base. Values that do not
// parse are ignored; range checks happen when the world is built.
func FromMap(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["p"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.SeedProbability = parsed
		}
	}
	if v, ok := cfg["birth_limit"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.BirthLimit = parsed
		}
	}
	if v, ok := cfg["death_limit"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.DeathLimit = parsed
		}
	}
	if v, ok := cfg["steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Steps = parsed
		}
	}
	if v, ok := cfg["overcrowd_limit"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.OvercrowdLimit = parsed
		}
	}
	if v, ok := cfg["alive_color"]; ok {
		if parsed, err := render.ParseHexColor(v); err == nil {
			c.AliveColor = parsed
		}
	}
	if v, ok := cfg["dead_color"]; ok {
		if parsed, err := render.ParseHexColor(v); err == nil {
			c.DeadColor = parsed
		}
	}
	return c
}
