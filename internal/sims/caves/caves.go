// Package caves adapts the cave automaton to the host Sim contract. It
// registers two variants: "caves" runs on wall/none tiles and "world" on
// booleans. Both share one generic implementation.
package caves

import (
	"fmt"
	"image/color"

	"cave-ca/internal/core"
	"cave-ca/pkg/automaton"
	pkgcore "cave-ca/pkg/core"
)

const (
	cellDead  uint8 = 0
	cellAlive uint8 = 1
)

// Stats summarises the current map.
type Stats struct {
	Generation int
	Alive      int
	Open       int
	// Regions counts 4-connected open areas; Largest is the biggest one's size.
	Regions int
	Largest int
}

// World wraps an automaton and keeps a byte display buffer in sync with it.
type World[T comparable] struct {
	name string
	cfg  Config
	seed int64

	auto    *automaton.Automaton[T]
	display *core.ByteGrid
	palette []color.RGBA

	regions      [][]int
	regionsValid bool
}

// NewWithConfig validates cfg and returns an unseeded world; call Reset to
// generate the first map.
func NewWithConfig[T comparable](name string, states automaton.States[T], cfg Config) (*World[T], error) {
	params := cfg.Params()
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &World[T]{
		name:    name,
		cfg:     cfg,
		seed:    cfg.Seed,
		auto:    automaton.New(params, states, pkgcore.NewRNG(cfg.Seed)),
		display: core.NewByteGrid(cfg.Width, cfg.Height),
		palette: []color.RGBA{cfg.DeadColor, cfg.AliveColor},
	}, nil
}

// NewCaves builds the tile-map variant.
func NewCaves(cfg Config) (*World[automaton.Tile], error) {
	return NewWithConfig("caves", automaton.TileStates, cfg)
}

// NewBoolWorld builds the boolean variant.
func NewBoolWorld(cfg Config) (*World[bool], error) {
	return NewWithConfig("world", automaton.BoolStates, cfg)
}

// Name returns the simulation identifier.
func (w *World[T]) Name() string { return w.name }

// Size reports the dimensions of the current map.
func (w *World[T]) Size() core.Size { return w.display.Size() }

// Cells exposes the display buffer: 1 for alive/wall, 0 for dead/none.
func (w *World[T]) Cells() []uint8 { return w.display.Cells() }

// Palette maps display values to colours: index 0 dead, index 1 alive.
func (w *World[T]) Palette() []color.RGBA { return w.palette }

// Config returns the active configuration.
func (w *World[T]) Config() Config { return w.cfg }

// Seed returns the seed used by the last Reset.
func (w *World[T]) Seed() int64 { return w.seed }

// Generation returns the number of steps applied since the last Reset.
func (w *World[T]) Generation() int { return w.auto.Generation() }

// Grid returns a snapshot of the automaton grid, or nil before the first Reset.
func (w *World[T]) Grid() *automaton.Grid[T] { return w.auto.Grid() }

// Reset generates a fresh map. A zero seed reuses the configured seed.
func (w *World[T]) Reset(seed int64) error {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.auto.Reseed(pkgcore.NewRNG(seed))
	if err := w.auto.Generate(); err != nil {
		return err
	}
	w.seed = seed
	w.rebuildDisplay()
	return nil
}

// Step applies one additional smoothing step.
func (w *World[T]) Step() error {
	if err := w.auto.Step(); err != nil {
		return err
	}
	w.rebuildDisplay()
	return nil
}

// Stats reports generation, population and open-region figures.
func (w *World[T]) Stats() Stats {
	regions := w.openRegions()
	cells := w.display.Cells()
	alive := w.display.Count(cellAlive)
	return Stats{
		Generation: w.auto.Generation(),
		Alive:      alive,
		Open:       len(cells) - alive,
		Regions:    len(regions),
		Largest:    automaton.LargestRegion(regions),
	}
}

// Summary formats Stats as a single status line.
func (w *World[T]) Summary() string {
	s := w.Stats()
	total := s.Alive + s.Open
	fill := 0.0
	if total > 0 {
		fill = 100 * float64(s.Alive) / float64(total)
	}
	return fmt.Sprintf("gen %d  seed %d  fill %.1f%%  regions %d  largest %d", s.Generation, w.seed, fill, s.Regions, s.Largest)
}

// RegionMask marks open cells outside the largest open region with 1, so
// hosts can highlight pockets that are cut off from the main cave.
func (w *World[T]) RegionMask() []float32 {
	mask := make([]float32, len(w.display.Cells()))
	regions := w.openRegions()
	largest := -1
	for i, r := range regions {
		if largest < 0 || len(r) > len(regions[largest]) {
			largest = i
		}
	}
	for i, r := range regions {
		if i == largest {
			continue
		}
		for _, idx := range r {
			mask[idx] = 1
		}
	}
	return mask
}

func (w *World[T]) openRegions() [][]int {
	if w.regionsValid {
		return w.regions
	}
	w.regions = nil
	dead := w.auto.States().Dead
	w.auto.View(func(g *automaton.Grid[T]) {
		w.regions = automaton.Regions(g, dead)
	})
	w.regionsValid = true
	return w.regions
}

func (w *World[T]) rebuildDisplay() {
	w.regionsValid = false
	states := w.auto.States()
	w.auto.View(func(g *automaton.Grid[T]) {
		w.display.Resize(g.Width(), g.Height())
		cells := w.display.Cells()
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				if g.At(x, y) == states.Alive {
					cells[w.display.Index(x, y)] = cellAlive
				} else {
					cells[w.display.Index(x, y)] = cellDead
				}
			}
		}
	})
}

func init() {
	core.Register("caves", func(cfg map[string]string) (core.Sim, error) {
		w, err := NewCaves(FromMap(DefaultCavesConfig(), cfg))
		if err != nil {
			return nil, err
		}
		return w, nil
	})
	core.Register("world", func(cfg map[string]string) (core.Sim, error) {
		w, err := NewBoolWorld(FromMap(DefaultWorldConfig(), cfg))
		if err != nil {
			return nil, err
		}
		return w, nil
	})
}
