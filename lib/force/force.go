/*package force computes brute-force linear contact forces between two sets of
particles and accumulates them into the first set's force arrays.

Every destination particle i receives

    K * (x[i] - sx[j]), K * (y[i] - sy[j])

from every source particle j. There is no cutoff, no normalization by
distance, and self-pairs are summed like any other pair (they contribute
exactly zero). Forces are added to whatever the accumulators already hold;
resetting them between steps is the caller's job.

Contact, ContactRange, and ContactEach are sequential and numerically
interchangeable with ContactPar, the parallel version that production code
should use, usually through a Kernel.
*/
package force

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/phil-mansfield/dem/lib/particles"
	"github.com/phil-mansfield/dem/lib/thread"
)

// Stiffness is the constant K which converts a positional offset into a force.
const Stiffness float32 = 1e5

var (
	// ErrLength is matched by every error reporting mismatched array lengths.
	ErrLength = errors.New("mismatched array lengths")
	// ErrAlias is returned when a force array overlaps a position array or
	// the other force array.
	ErrAlias = errors.New("force arrays overlap other arrays")
)

// LengthError reports that two arrays which must have the same length
// don't.
type LengthError struct {
	Name1, Name2 string
	Len1, Len2 int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("len(%s) = %d, but len(%s) = %d.",
		e.Name1, e.Len1, e.Name2, e.Len2)
}

func (e *LengthError) Unwrap() error { return ErrLength }

// check validates the arguments of a kernel call. It is always run before any
// accumulator is written, so a failed call leaves the force arrays untouched.
func check(dx, dy, dfx, dfy, sx, sy []float32) error {
	switch {
	case len(dy) != len(dx):
		return &LengthError{ "dest_y", "dest_x", len(dy), len(dx) }
	case len(dfx) != len(dx):
		return &LengthError{ "dest_fx", "dest_x", len(dfx), len(dx) }
	case len(dfy) != len(dx):
		return &LengthError{ "dest_fy", "dest_x", len(dfy), len(dx) }
	case len(sy) != len(sx):
		return &LengthError{ "src_y", "src_x", len(sy), len(sx) }
	}

	if overlaps(dfx, dfy) {
		return fmt.Errorf("dest_fx and dest_fy: %w", ErrAlias)
	}
	pos := []struct{
		name string
		x []float32
	} {
		{"dest_x", dx}, {"dest_y", dy}, {"src_x", sx}, {"src_y", sy},
	}
	for _, p := range pos {
		if overlaps(dfx, p.x) {
			return fmt.Errorf("dest_fx and %s: %w", p.name, ErrAlias)
		} else if overlaps(dfy, p.x) {
			return fmt.Errorf("dest_fy and %s: %w", p.name, ErrAlias)
		}
	}

	return nil
}

// overlaps returns true if a and b share any elements.
func overlaps(a, b []float32) bool {
	if len(a) == 0 || len(b) == 0 { return false }

	size := unsafe.Sizeof(a[0])
	aStart := uintptr(unsafe.Pointer(&a[0]))
	bStart := uintptr(unsafe.Pointer(&b[0]))
	aEnd := aStart + uintptr(len(a))*size
	bEnd := bStart + uintptr(len(b))*size

	return aStart < bEnd && bStart < aEnd
}

// Kernel is the production entry point into the package. It runs ContactPar
// with a fixed number of workers.
type Kernel struct {
	workers int
}

// New creates a Kernel that splits each call between the given number of
// workers. workers <= 0 uses one worker per core.
func New(workers int) *Kernel {
	return &Kernel{ thread.Workers(workers) }
}

// Workers returns the number of workers the Kernel uses.
func (k *Kernel) Workers() int { return k.workers }

// Accumulate adds the forces exerted by the source particles at (srcX, srcY)
// onto the force accumulators of dest.
func (k *Kernel) Accumulate(dest *particles.Set, srcX, srcY []float32) error {
	return ContactPar(
		k.workers, dest.X, dest.Y, dest.FX, dest.FY, srcX, srcY,
	)
}

// Self adds the forces every particle in p exerts on every particle in p,
// including itself.
func (k *Kernel) Self(p *particles.Set) error {
	return k.Accumulate(p, p.X, p.Y)
}
