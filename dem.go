package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"time"

	"github.com/phil-mansfield/dem/lib/config"
	"github.com/phil-mansfield/dem/lib/error"
	"github.com/phil-mansfield/dem/lib/force"
	"github.com/phil-mansfield/dem/lib/particles"
	"github.com/phil-mansfield/dem/lib/rng"
	"github.com/phil-mansfield/dem/lib/sim"
	"github.com/phil-mansfield/dem/lib/stats"
	"github.com/phil-mansfield/dem/lib/thread"
)

func main() {
	mode, configFile := ParseArguments(os.Args[1:])

	switch mode {
	case "help":
		Usage(os.Stdout)
	case "example_config":
		fmt.Print(config.Example)
	case "run":
		conf, err := config.Read(configFile)
		if err != nil { error.External("%s", err.Error()) }
		Run(conf)
	default:
		error.External(
			"You attempted to run dem in the mode '%s', but the only valid " +
				"modes are 'help', 'example_config', and 'run'.", mode,
		)
	}
}

// ParseArguments parses the command line arguments and returns the mode dem is
// being run in and the name of the config file, if there is one. Expects that
// the arguments are presented in the order:
// $ dem <mode> [<config file>]
func ParseArguments(args []string) (mode, configFile string) {
	if len(args) == 0 {
		Usage(os.Stderr)
		os.Exit(1)
	}

	mode, args = args[0], args[1:]
	switch mode {
	case "help", "example_config":
		if len(args) != 0 {
			error.External("Mode '%s' takes no arguments, but %d were given.",
				mode, len(args))
		}
	case "run":
		if len(args) != 1 {
			error.External("Mode 'run' takes exactly one argument, the " +
				"config file, but %d were given.", len(args))
		}
		configFile = args[0]
	}

	return mode, configFile
}

// Usage prints dem's usage information.
func Usage(w io.Writer) {
	fmt.Fprintf(w, `Expected usage:
./dem run <ConfigName>
./dem example_config
./dem help

'run' computes contact forces for the particles described by the config file
until the simulation clock runs out. 'example_config' prints an example config
file with every variable set to its default value.
`)
}

// InitialParticles creates the particle set described by conf.
func InitialParticles(conf *config.Config) *particles.Set {
	p := particles.New(conf.Particles)
	switch conf.Layout {
	case config.GridLayout:
		p.Grid(float32(conf.Spacing))
	case config.RandomLayout:
		width := conf.Spacing * math.Sqrt(float64(conf.Particles))
		p.Scatter(rng.New(uint64(conf.Seed)), float32(width))
	}
	return p
}

// Run runs dem's "run" mode: it steps the particles forward until the clock
// runs out and then logs a summary of the final forces. It returns the number
// of steps taken.
func Run(conf *config.Config) int {
	if err := thread.Set(conf.Threads); err != nil {
		error.External("%s", err.Error())
	}

	p := InitialParticles(conf)
	k := force.New(conf.Workers)
	clock := sim.Clock{ Time: conf.Time, Step: conf.TimeStep }
	if err := clock.Check(); err != nil { error.External("%s", err.Error()) }
	mode := sim.ResetEachStep
	if !conf.Reset { mode = sim.Accumulate }

	log.Printf("Running %d particles from Time = %g in steps of %g on %d " +
		"workers (%s).", p.Len(), clock.Time, clock.Step, k.Workers(), mode)

	var hook func(int)
	if conf.LogEvery > 0 {
		hook = func(step int) {
			if step % conf.LogEvery == 0 {
				log.Printf("Finished step %d.", step)
			}
		}
	}

	start := time.Now()
	steps, err := sim.Run(p, k, clock, mode, hook)
	if err != nil { error.Internal("%s", err.Error()) }
	log.Printf("Finished %d steps in %s.", steps, time.Since(start))

	summary, _ := stats.Summarize(p, nil)
	log.Printf("Final forces: %s.", summary)

	return steps
}
