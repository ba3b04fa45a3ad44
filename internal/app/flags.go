package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	World   string
	Seed    int64
	TPS     int
	Width   int
	Height  int
	HUD     int
	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		World:  "data/world_map.yaml",
		Seed:   1337,
		TPS:    60,
		Width:  1280,
		Height: 720,
		HUD:    240,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.World, "world", c.World, "world config file (YAML or JSON)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "terrain seed")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Width, "width", c.Width, "map viewport width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "map viewport height in pixels")
	fs.IntVar(&c.HUD, "hud", c.HUD, "HUD panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "debug logging")
}
