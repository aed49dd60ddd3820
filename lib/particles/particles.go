/*package particles contains the structure-of-arrays particle set which the
force kernel reads positions from and accumulates forces into.*/
package particles

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/dem/lib/rng"
)

// Set represents the particles in a simulation. Particle i is stored at index
// i of every array. The arrays are fixed-size: particles are never added or
// removed once a Set is created.
type Set struct {
	X, Y []float32 // Positions.
	FX, FY []float32 // Force accumulators.
}

// New creates a zero-initialized Set with n particles.
func New(n int) *Set {
	return &Set{
		X: make([]float32, n), Y: make([]float32, n),
		FX: make([]float32, n), FY: make([]float32, n),
	}
}

// Len returns the number of particles in the Set.
func (p *Set) Len() int { return len(p.X) }

// Check returns an error if the Set's arrays don't all have the same length.
func (p *Set) Check() error {
	n := len(p.X)
	if len(p.Y) != n || len(p.FX) != n || len(p.FY) != n {
		return fmt.Errorf("Particle set arrays have mismatched lengths: " +
			"len(X) = %d, len(Y) = %d, len(FX) = %d, len(FY) = %d.",
			len(p.X), len(p.Y), len(p.FX), len(p.FY))
	}
	return nil
}

// ResetForces sets every force accumulator back to zero.
func (p *Set) ResetForces() {
	for i := range p.FX { p.FX[i] = 0 }
	for i := range p.FY { p.FY[i] = 0 }
}

// Grid places the particles on a square lattice with the given spacing,
// filling rows of ceil(sqrt(N)) particles starting from the origin.
func (p *Set) Grid(spacing float32) {
	n := p.Len()
	if n == 0 { return }

	side := int(math.Ceil(math.Sqrt(float64(n))))
	for i := 0; i < n; i++ {
		p.X[i] = float32(i % side) * spacing
		p.Y[i] = float32(i / side) * spacing
	}
}

// Scatter places the particles uniformly at random in the square
// [0, width) x [0, width).
func (p *Set) Scatter(gen *rng.RNG, width float32) {
	gen.UniformSequence32(p.X, width)
	gen.UniformSequence32(p.Y, width)
}
