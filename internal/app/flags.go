package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Rule    string
	N       int
	Pattern string
	Scale   int
	TPS     int
	Seed    int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Rule: "average4", N: 128, Pattern: "spots", Scale: 4, TPS: 30, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Rule, "rule", c.Rule, "step rule to run")
	fs.IntVar(&c.N, "n", c.N, "grid side length")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "starting pattern")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for grid reset")
}
