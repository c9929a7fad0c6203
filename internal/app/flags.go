package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Family string
	W      int
	H      int
	Scale  int
	Seed   int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Family: "continental", W: 256, H: 256, Scale: 3, Seed: -1}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Family, "family", c.Family, "terrain family preset")
	fs.IntVar(&c.W, "w", c.W, "map width in cells")
	fs.IntVar(&c.H, "h", c.H, "map height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "generation seed; negative picks a random seed")
}
