package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"cave-ca/internal/sweep"
)

type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// Set replaces the list with the comma-separated values.
func (l *intList) Set(value string) error {
	var out intList
	for _, field := range strings.Split(value, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return fmt.Errorf("bad limit %q: %w", field, err)
		}
		out = append(out, v)
	}
	*l = out
	return nil
}

func main() {
	opts := sweep.DefaultOptions()
	births := intList{3, 4, 5}
	deaths := intList{2, 3, 4}
	flag.IntVar(&opts.Width, "w", opts.Width, "map width")
	flag.IntVar(&opts.Height, "h", opts.Height, "map height")
	flag.Float64Var(&opts.SeedProbability, "p", opts.SeedProbability, "initial wall probability")
	flag.IntVar(&opts.Steps, "steps", opts.Steps, "smoothing steps per map")
	flag.IntVar(&opts.Seeds, "seeds", opts.Seeds, "maps generated per rule")
	flag.Int64Var(&opts.BaseSeed, "seed", opts.BaseSeed, "first seed; map i uses seed+i")
	flag.IntVar(&opts.Workers, "workers", opts.Workers, "parallel map generations")
	overcrowd := flag.Int("overcrowd", 0, "overcrowd limit applied to every rule (0 disables)")
	top := flag.Int("top", 0, "print only the best N rules (0 prints all)")
	flag.Var(&births, "birth", "comma-separated birth limits")
	flag.Var(&deaths, "death", "comma-separated death limits")
	flag.Parse()

	rules := sweep.Rules(births, deaths, *overcrowd)
	if len(rules) == 0 {
		log.Fatal("no rules to sweep: -birth and -death must both be non-empty")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d rules x %d seeds on %dx%d (%d workers, %d steps)\n",
		len(rules), opts.Seeds, opts.Width, opts.Height, opts.Workers, opts.Steps)
	start := time.Now()
	results, err := sweep.Run(ctx, opts, rules)
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}
	fmt.Printf("Finished in %s\n\n", time.Since(start).Round(time.Millisecond))

	if *top > 0 && *top < len(results) {
		results = results[:*top]
	}
	for i, r := range results {
		fmt.Printf("%2d. %s\n", i+1, r)
	}
}
