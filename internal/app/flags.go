package app

import (
	"flag"
	"strconv"
	"time"

	"entropy/internal/config"
)

// Config represents the command-line parameters for the application. Zero
// values defer to the config file.
type Config struct {
	ConfigPath string
	Sim        string
	Scale      int
	TPS        int
	Seed       int64
	IntervalMs int
	Verbose    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{ConfigPath: config.DefaultPath, TPS: 60, IntervalMs: -1}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "config file (.json, .yaml)")
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (default: from the config variant)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (default: config size_factor)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (default: config seed)")
	fs.IntVar(&c.IntervalMs, "interval", c.IntervalMs, "minimum milliseconds between steps (default: config sleep_interval_ms)")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log every step")
}

// Launch is everything the driver needs to build and pace a simulation.
type Launch struct {
	Sim      string
	Params   map[string]string
	Scale    int
	Seed     int64
	Interval time.Duration
}

// Resolve merges the flags over the config file. The file is validated after
// flag overrides are applied.
func (c *Config) Resolve(f config.File) (Launch, error) {
	if c.Scale > 0 {
		f.SizeFactor = c.Scale
	}
	if c.Seed != 0 {
		f.Seed = c.Seed
	}
	if c.IntervalMs >= 0 {
		f.SleepIntervalMs = c.IntervalMs
	}
	if err := f.Validate(); err != nil {
		return Launch{}, err
	}
	name := c.Sim
	if name == "" {
		var err error
		if name, err = f.SimName(); err != nil {
			return Launch{}, err
		}
	}
	params := f.Map()
	params["seed"] = strconv.FormatInt(f.Seed, 10)
	return Launch{
		Sim:      name,
		Params:   params,
		Scale:    f.SizeFactor,
		Seed:     f.Seed,
		Interval: f.SleepInterval(),
	}, nil
}
