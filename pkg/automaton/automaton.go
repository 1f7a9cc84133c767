package automaton

import "fmt"

// Params bundles everything needed to generate a map.
type Params struct {
	Width           int
	Height          int
	SeedProbability float64
	Rule            Rule
	// Steps is the number of smoothing steps applied right after seeding.
	Steps int
}

// DefaultParams returns a 128x128 map seeded at 0.4 and smoothed three times.
func DefaultParams() Params {
	return Params{
		Width:           128,
		Height:          128,
		SeedProbability: 0.4,
		Rule:            DefaultRule(),
		Steps:           3,
	}
}

// Validate checks dimensions, probability, rule and step count.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, p.Width, p.Height)
	}
	if err := validateProbability(p.SeedProbability); err != nil {
		return err
	}
	if err := p.Rule.Validate(); err != nil {
		return err
	}
	if p.Steps < 0 {
		return fmt.Errorf("%w: step count %d", ErrInvalidParameter, p.Steps)
	}
	return nil
}

// Generate seeds a grid and then applies p.Steps steps to it.
func Generate[T comparable](p Params, states States[T], src Source) (*Grid[T], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	g, err := Seed(p.Width, p.Height, p.SeedProbability, states, src)
	if err != nil {
		return nil, err
	}
	for i := 0; i < p.Steps; i++ {
		if g, err = Step(g, p.Rule, states); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Automaton owns a single grid and its generation history counter. It starts
// unseeded; Generate seeds it and Step advances it.
type Automaton[T comparable] struct {
	params Params
	states States[T]
	src    Source

	grid       *Grid[T]
	generation int
}

// New returns an unseeded automaton. Parameters are validated on Generate.
func New[T comparable](p Params, states States[T], src Source) *Automaton[T] {
	return &Automaton[T]{params: p, states: states, src: src}
}

// Params returns the current parameters.
func (a *Automaton[T]) Params() Params { return a.params }

// States returns the alive/dead mapping.
func (a *Automaton[T]) States() States[T] { return a.states }

// SetParams replaces the parameters. Size and probability changes apply on the
// next Generate, rule changes on the next Step.
func (a *Automaton[T]) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	a.params = p
	return nil
}

// Reseed swaps the random source used by subsequent Generate calls.
func (a *Automaton[T]) Reseed(src Source) { a.src = src }

// Seeded reports whether a grid exists.
func (a *Automaton[T]) Seeded() bool { return a.grid != nil }

// Generation returns the number of steps applied since the last seeding.
func (a *Automaton[T]) Generation() int { return a.generation }

// Generate discards any existing grid and builds a new one.
func (a *Automaton[T]) Generate() error {
	g, err := Generate(a.params, a.states, a.src)
	if err != nil {
		return err
	}
	a.grid = g
	a.generation = a.params.Steps
	return nil
}

// Step advances the current grid by one step.
func (a *Automaton[T]) Step() error {
	if a.grid == nil {
		return ErrInvalidState
	}
	next, err := Step(a.grid, a.params.Rule, a.states)
	if err != nil {
		return err
	}
	a.grid = next
	a.generation++
	return nil
}

// Grid returns a copy of the current grid, or nil when unseeded.
func (a *Automaton[T]) Grid() *Grid[T] {
	if a.grid == nil {
		return nil
	}
	return a.grid.Clone()
}

// View calls fn with the live grid without copying it. fn must not retain or
// modify the grid. It returns false when unseeded.
func (a *Automaton[T]) View(fn func(g *Grid[T])) bool {
	if a.grid == nil {
		return false
	}
	fn(a.grid)
	return true
}
