/*package rng contains a small, fast xorshift generator used to lay out
reproducible particle positions.*/
package rng

import (
	"math"
)

var (
	xorshiftMaxUint = float64(math.MaxUint32)
)

// RNG is an xorshift random number generator. It is not thread safe.
type RNG struct {
	w, x, y, z uint32
}

// New creates an RNG with a given seed. The same seed always produces the same
// sequence.
func New(seed uint64) *RNG {
	return &RNG{ uint32(seed), 123456789, 362436069, 521288629 }
}

func (gen *RNG) next() uint32 {
	t := gen.x ^ (gen.x << 11)
	gen.x, gen.y, gen.z = gen.y, gen.z, gen.w
	gen.w = gen.w ^ (gen.w >> 19) ^ (t ^ (t >> 8))
	return gen.w
}

// Uniform generates a single random number in the range [0, 1).
func (gen *RNG) Uniform() float64 {
	for {
		res := float64(math.MaxUint32 - gen.next()) / xorshiftMaxUint
		if res < 1.0 { return res }
	}
}

// UniformSequence32 writes one random number in the range [0, width) to each
// element of target.
func (gen *RNG) UniformSequence32(target []float32, width float32) {
	for i := range target {
		x := float32(gen.Uniform()) * width
		// float64 -> float32 rounding can land exactly on width.
		for x >= width { x = float32(gen.Uniform()) * width }
		target[i] = x
	}
}
