package automaton

import "fmt"

// Rule holds the neighbour-count thresholds applied on every step.
type Rule struct {
	// BirthLimit: a dead cell comes alive with strictly more living neighbours.
	BirthLimit int
	// DeathLimit: a living cell dies with strictly fewer living neighbours.
	DeathLimit int
	// OvercrowdLimit, when positive, also kills living cells with strictly
	// more living neighbours. Zero keeps the lower-bound-only rule.
	OvercrowdLimit int
}

// DefaultRule returns birth 4, death 3 with overcrowding disabled.
func DefaultRule() Rule {
	return Rule{BirthLimit: 4, DeathLimit: 3}
}

// Validate rejects negative thresholds.
func (r Rule) Validate() error {
	if r.BirthLimit < 0 {
		return fmt.Errorf("%w: birth limit %d", ErrInvalidParameter, r.BirthLimit)
	}
	if r.DeathLimit < 0 {
		return fmt.Errorf("%w: death limit %d", ErrInvalidParameter, r.DeathLimit)
	}
	if r.OvercrowdLimit < 0 {
		return fmt.Errorf("%w: overcrowd limit %d", ErrInvalidParameter, r.OvercrowdLimit)
	}
	return nil
}

// Next returns the state a cell moves to given its current state and its
// living-neighbour count.
func (r Rule) Next(alive bool, neighbors int) bool {
	if alive {
		if neighbors < r.DeathLimit {
			return false
		}
		if r.OvercrowdLimit > 0 && neighbors > r.OvercrowdLimit {
			return false
		}
		return true
	}
	return neighbors > r.BirthLimit
}

// LivingNeighbors counts living cells in the Moore neighbourhood of (x, y).
// Coordinates outside the grid count as living.
func LivingNeighbors[T comparable](g *Grid[T], x, y int, states States[T]) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !g.InBounds(nx, ny) {
				count++
				continue
			}
			if g.cells[ny*g.w+nx] == states.Alive {
				count++
			}
		}
	}
	return count
}

// Step applies rule once to g and returns the resulting grid. g is not
// modified.
func Step[T comparable](g *Grid[T], rule Rule, states States[T]) (*Grid[T], error) {
	if g == nil {
		return nil, ErrInvalidState
	}
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	if err := states.validate(); err != nil {
		return nil, fmt.Errorf("%w: alive and dead states are equal", err)
	}
	next := &Grid[T]{w: g.w, h: g.h, cells: make([]T, len(g.cells))}
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			idx := y*g.w + x
			alive := g.cells[idx] == states.Alive
			if rule.Next(alive, LivingNeighbors(g, x, y, states)) {
				next.cells[idx] = states.Alive
			} else {
				next.cells[idx] = states.Dead
			}
		}
	}
	return next, nil
}
