package core

import (
	"image/color"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract hosts drive: generate a map, step it, read its cells.
type Sim interface {
	Name() string
	Size() Size
	// Reset discards the current map and generates a new one from seed.
	Reset(seed int64) error
	// Step applies one more smoothing step to the current map.
	Step() error
	// Cells returns the display buffer, one byte per cell in row-major order.
	Cells() []uint8
}

// PaletteProvider is implemented by sims that map cell values to colours.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// Factory constructs a Sim from flag-style key/value overrides.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames lists registered simulations in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
