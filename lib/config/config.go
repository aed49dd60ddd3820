/*package config reads dem's configuration files. Config files are
git-config-style INI files with a single [Simulation] section:

    [Simulation]
    Particles = 4000
    TimeStep = 1e-3

Any variable which isn't set keeps its default value.
*/
package config

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/gcfg.v1"
)

// Layouts which the initial particle positions can be generated with.
const (
	ZeroLayout = "zero"
	GridLayout = "grid"
	RandomLayout = "random"
)

// Example is an example config file which sets every variable to its default.
const Example = `[Simulation]
# Number of particles.
Particles = 4000

# The countdown clock starts at Time and loses TimeStep every step. The run
# ends once it reaches zero.
Time = 1.0
TimeStep = 1e-3

# Number of OS threads to run on. -1 uses every core.
Threads = -1
# Number of workers the force calculation is split between. -1 uses one
# worker per core.
Workers = -1

# If true, forces are zeroed at the start of every step. If false, they
# accumulate across the whole run.
Reset = true

# How initial positions are chosen: zero, grid, or random. zero puts every
# particle at the origin. grid puts them on a square lattice with the given
# Spacing. random scatters them uniformly in a square of side Spacing*sqrt(N)
# using the given Seed.
Layout = zero
Spacing = 1.0
Seed = 1

# Log progress every LogEvery steps. 0 turns progress logging off.
LogEvery = 0
`

// Config contains the settings for a single run.
type Config struct {
	Particles int
	Time, TimeStep float64
	Threads, Workers int
	Reset bool
	Layout string
	Spacing float64
	Seed int
	LogEvery int
}

type file struct {
	Simulation Config
}

// Default returns the default Config. It matches Example.
func Default() *Config {
	return &Config{
		Particles: 4000,
		Time: 1.0,
		TimeStep: 1e-3,
		Threads: -1,
		Workers: -1,
		Reset: true,
		Layout: ZeroLayout,
		Spacing: 1.0,
		Seed: 1,
		LogEvery: 0,
	}
}

// Read reads and checks the config file with the given name.
func Read(fname string) (*Config, error) {
	f := &file{ *Default() }
	if err := gcfg.ReadFileInto(f, fname); err != nil {
		return nil, fmt.Errorf("Could not read config file '%s': %w",
			fname, err)
	}
	return finish(&f.Simulation)
}

// Parse parses and checks the text of a config file.
func Parse(text string) (*Config, error) {
	f := &file{ *Default() }
	if err := gcfg.ReadStringInto(f, text); err != nil {
		return nil, fmt.Errorf("Could not parse config: %w", err)
	}
	return finish(&f.Simulation)
}

func finish(c *Config) (*Config, error) {
	c.Layout = strings.ToLower(strings.TrimSpace(c.Layout))
	if err := c.Check(); err != nil { return nil, err }
	return c, nil
}

// Check returns an error if any of the Config's values are invalid.
func (c *Config) Check() error {
	switch {
	case c.Particles < 0:
		return fmt.Errorf("Particles = %d, but it must be non-negative.",
			c.Particles)
	case math.IsNaN(c.Time) || math.IsInf(c.Time, 0):
		return fmt.Errorf("Time = %g, but it must be finite.", c.Time)
	case math.IsNaN(c.TimeStep) || math.IsInf(c.TimeStep, 0):
		return fmt.Errorf("TimeStep = %g, but it must be finite.", c.TimeStep)
	case !(c.TimeStep > 0):
		return fmt.Errorf("TimeStep = %g, but it must be positive.",
			c.TimeStep)
	case c.Time > 0 && c.Time - c.TimeStep == c.Time:
		return fmt.Errorf("TimeStep = %g is too small to count Time = %g " +
			"down to zero.", c.TimeStep, c.Time)
	case c.LogEvery < 0:
		return fmt.Errorf("LogEvery = %d, but it must be non-negative.",
			c.LogEvery)
	}

	switch c.Layout {
	case ZeroLayout:
	case GridLayout, RandomLayout:
		if !(c.Spacing > 0) {
			return fmt.Errorf("Spacing = %g, but it must be positive for " +
				"the '%s' layout.", c.Spacing, c.Layout)
		}
	default:
		return fmt.Errorf("Layout = '%s', but the only valid layouts are " +
			"'%s', '%s', and '%s'.", c.Layout,
			ZeroLayout, GridLayout, RandomLayout)
	}

	return nil
}
