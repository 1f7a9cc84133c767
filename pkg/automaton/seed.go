package automaton

import (
	"fmt"
	"math"
)

// Source yields independent uniform draws in [0, 1). *rand.Rand from both
// math/rand and math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// Seed builds a w*h grid where each cell is alive with the given probability.
// Cells are drawn in row-major order, one draw per cell.
func Seed[T comparable](w, h int, probability float64, states States[T], src Source) (*Grid[T], error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	if err := validateProbability(probability); err != nil {
		return nil, err
	}
	if err := states.validate(); err != nil {
		return nil, fmt.Errorf("%w: alive and dead states are equal", err)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidParameter)
	}
	g := &Grid[T]{w: w, h: h, cells: make([]T, w*h)}
	for i := range g.cells {
		if src.Float64() < probability {
			g.cells[i] = states.Alive
		} else {
			g.cells[i] = states.Dead
		}
	}
	return g, nil
}

func validateProbability(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: seed probability %v", ErrInvalidParameter, p)
	}
	return nil
}
