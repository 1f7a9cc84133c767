package app

import (
	"flag"
	"fmt"
	"strings"
)

// Overrides collects repeatable key=value flags.
type Overrides []string

func (o *Overrides) String() string {
	return strings.Join(*o, ",")
}

// Set appends one key=value pair.
func (o *Overrides) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q must be in key=value form", value)
	}
	*o = append(*o, value)
	return nil
}

// Map returns the overrides as a map; later keys win.
func (o Overrides) Map() map[string]string {
	m := make(map[string]string, len(o))
	for _, kv := range o {
		key, value, _ := strings.Cut(kv, "=")
		m[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return m
}

// Config represents the command-line parameters shared by the viewer and the
// headless generator.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64
	// Rate is the auto-iterate speed in steps per second.
	Rate      int
	HUDWidth  int
	Overrides Overrides
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "caves", Scale: 4, TPS: 60, Rate: 4, HUDWidth: 240}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (caves or world)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for map generation (0 keeps the sim's own seed, see -set seed=N)")
	fs.IntVar(&c.Rate, "rate", c.Rate, "auto-iterate steps per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
	fs.Var(&c.Overrides, "set", "sim parameter override in key=value form (repeatable)")
}
