// Package sweep scores birth/death limit combinations by generating many maps
// per rule in parallel and measuring how open and how connected they are.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"cave-ca/pkg/automaton"
	pkgcore "cave-ca/pkg/core"

	"golang.org/x/sync/errgroup"
)

// Options controls the maps generated for every rule.
type Options struct {
	Width, Height   int
	SeedProbability float64
	Steps           int
	// Seeds is the number of maps per rule, seeded BaseSeed, BaseSeed+1, ...
	Seeds    int
	BaseSeed int64
	Workers  int
}

// DefaultOptions mirrors the caves variant at a smaller size.
func DefaultOptions() Options {
	return Options{Width: 64, Height: 64, SeedProbability: 0.4, Steps: 3, Seeds: 16, BaseSeed: 1, Workers: runtime.NumCPU()}
}

// Sample is the measurement of one generated map.
type Sample struct {
	OpenFraction float64
	Regions      int
	LargestShare float64
}

// Result aggregates the samples of one rule.
type Result struct {
	Rule         automaton.Rule
	Samples      int
	OpenFraction float64
	Regions      float64
	LargestShare float64
}

func (r Result) String() string {
	return fmt.Sprintf("birth=%d death=%d open=%.3f regions=%.1f largest=%.3f",
		r.Rule.BirthLimit, r.Rule.DeathLimit, r.OpenFraction, r.Regions, r.LargestShare)
}

// Rules builds the cross product of birth and death limits.
func Rules(births, deaths []int, overcrowd int) []automaton.Rule {
	rules := make([]automaton.Rule, 0, len(births)*len(deaths))
	for _, b := range births {
		for _, d := range deaths {
			rules = append(rules, automaton.Rule{BirthLimit: b, DeathLimit: d, OvercrowdLimit: overcrowd})
		}
	}
	return rules
}

// Measure generates one map and scores it. Open cells are TileNone; the
// largest share is the largest open region over all open cells.
func Measure(p automaton.Params, seed int64) (Sample, error) {
	g, err := automaton.Generate(p, automaton.TileStates, pkgcore.NewRNG(seed))
	if err != nil {
		return Sample{}, err
	}
	total := g.Width() * g.Height()
	open := g.Count(automaton.TileNone)
	regions := automaton.Regions(g, automaton.TileNone)
	s := Sample{OpenFraction: float64(open) / float64(total), Regions: len(regions)}
	if open > 0 {
		s.LargestShare = float64(automaton.LargestRegion(regions)) / float64(open)
	}
	return s, nil
}

// Run evaluates every rule over opts.Seeds maps and returns the results ranked
// by largest-region share, then open fraction. The first error cancels the
// remaining work.
func Run(ctx context.Context, opts Options, rules []automaton.Rule) ([]Result, error) {
	if opts.Seeds <= 0 {
		return nil, fmt.Errorf("sweep: seeds must be positive, got %d: %w", opts.Seeds, automaton.ErrInvalidParameter)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	params := make([]automaton.Params, len(rules))
	for i, rule := range rules {
		params[i] = automaton.Params{
			Width:           opts.Width,
			Height:          opts.Height,
			SeedProbability: opts.SeedProbability,
			Rule:            rule,
			Steps:           opts.Steps,
		}
		if err := params[i].Validate(); err != nil {
			return nil, fmt.Errorf("sweep: rule %d/%d: %w", rule.BirthLimit, rule.DeathLimit, err)
		}
	}

	samples := make([][]Sample, len(rules))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for ri := range rules {
		samples[ri] = make([]Sample, opts.Seeds)
		for si := 0; si < opts.Seeds; si++ {
			ri, si := ri, si
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				s, err := Measure(params[ri], opts.BaseSeed+int64(si))
				if err != nil {
					return err
				}
				samples[ri][si] = s
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]Result, len(rules))
	for i, rule := range rules {
		results[i] = aggregate(rule, samples[i])
	}
	Rank(results)
	return results, nil
}

func aggregate(rule automaton.Rule, samples []Sample) Result {
	r := Result{Rule: rule, Samples: len(samples)}
	if len(samples) == 0 {
		return r
	}
	for _, s := range samples {
		r.OpenFraction += s.OpenFraction
		r.Regions += float64(s.Regions)
		r.LargestShare += s.LargestShare
	}
	n := float64(len(samples))
	r.OpenFraction /= n
	r.Regions /= n
	r.LargestShare /= n
	return r
}

// Rank sorts results best first. Ties fall back to the rule limits so the
// order is stable across runs.
func Rank(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.LargestShare != b.LargestShare {
			return a.LargestShare > b.LargestShare
		}
		if a.OpenFraction != b.OpenFraction {
			return a.OpenFraction > b.OpenFraction
		}
		if a.Rule.BirthLimit != b.Rule.BirthLimit {
			return a.Rule.BirthLimit < b.Rule.BirthLimit
		}
		return a.Rule.DeathLimit < b.Rule.DeathLimit
	})
}
