/*package sim contains the time-stepping loop which drives the force kernel.*/
package sim

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/dem/lib/force"
	"github.com/phil-mansfield/dem/lib/particles"
)

// Clock is a countdown clock. It starts at Time and loses Step every time it's
// advanced.
type Clock struct {
	Time, Step float64
}

// Done returns true once the clock has run down to zero or below.
func (c *Clock) Done() bool { return c.Time <= 0 }

// Advance moves the clock forward by one step.
func (c *Clock) Advance() { c.Time -= c.Step }

// Check returns an error if the clock would never run down: if Time or Step
// isn't finite, if Step isn't positive, or if Step is too small to change
// Time at all.
func (c Clock) Check() error {
	switch {
	case math.IsNaN(c.Time) || math.IsInf(c.Time, 0):
		return fmt.Errorf("Time must be finite, but it's %g.", c.Time)
	case math.IsNaN(c.Step) || math.IsInf(c.Step, 0):
		return fmt.Errorf("Time step must be finite, but it's %g.", c.Step)
	case c.Step <= 0:
		return fmt.Errorf("Time step must be positive, but it's %g.", c.Step)
	case c.Time > 0 && c.Time - c.Step >= c.Time:
		return fmt.Errorf("Time step %g is too small to change Time = %g.",
			c.Step, c.Time)
	}
	return nil
}

// Steps returns the number of steps the clock will take before it's done, or
// -1 if it never will (see Check). Because the countdown is done in floating
// point this can differ by one from Time/Step.
func (c Clock) Steps() int {
	if c.Check() != nil { return -1 }
	n := 0
	for ; !c.Done(); c.Advance() { n++ }
	return n
}

// ResetMode says what happens to the force accumulators between steps.
type ResetMode int
const (
	// ResetEachStep zeroes the forces before every kernel call, so after
	// each step they hold only that step's forces.
	ResetEachStep ResetMode = iota
	// Accumulate never zeroes the forces. They keep growing from one step to
	// the next.
	Accumulate
)

func (m ResetMode) String() string {
	switch m {
	case ResetEachStep: return "reset-each-step"
	case Accumulate: return "accumulate"
	}
	return fmt.Sprintf("ResetMode(%d)", int(m))
}

// Run steps the particles in p forward until clock is done. At each step
// the forces are reset according to mode and then k adds the forces every
// particle exerts on every other particle (and itself). hook, if non-nil, is
// called after every step with the number of steps completed so far.
//
// Run returns the number of steps taken. A clock which fails Check is an error
// and no steps are taken. If the kernel fails the loop stops at that step and
// the error is returned.
func Run(
	p *particles.Set, k *force.Kernel, clock Clock,
	mode ResetMode, hook func(step int),
) (int, error) {
	if err := clock.Check(); err != nil { return 0, err }
	if mode != ResetEachStep && mode != Accumulate {
		return 0, fmt.Errorf("Unrecognized reset mode %s.", mode)
	}

	steps := 0
	for !clock.Done() {
		if mode == ResetEachStep { p.ResetForces() }

		if err := k.Self(p); err != nil {
			return steps, fmt.Errorf("Step %d: %w", steps, err)
		}

		clock.Advance()
		steps++
		if hook != nil { hook(steps) }
	}

	return steps, nil
}
