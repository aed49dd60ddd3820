/*package stats summarizes the force accumulators of a particle set so the
driver can report on a run.*/
package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/phil-mansfield/dem/lib/particles"
)

// Summary contains summary statistics of the forces on a set of particles.
// Magnitudes are |F_i| = sqrt(FX[i]^2 + FY[i]^2).
type Summary struct {
	N int
	NetX, NetY float64 // Total force on the whole set.
	MaxMag, MeanMag, StdMag float64
}

// Summarize computes a Summary of p's forces. The calculation is done in
// float64. buf is used to hold the magnitudes and will be resized as needed.
// The resized buffer is returned.
func Summarize(p *particles.Set, buf []float64) (*Summary, []float64) {
	n := p.Len()
	s := &Summary{ N: n }
	buf = resizeFloat64s(buf, n)
	if n == 0 { return s, buf }

	for i := range buf { buf[i] = float64(p.FX[i]) }
	s.NetX = floats.Sum(buf)
	for i := range buf { buf[i] = float64(p.FY[i]) }
	s.NetY = floats.Sum(buf)

	for i := range buf {
		buf[i] = math.Hypot(float64(p.FX[i]), float64(p.FY[i]))
	}
	s.MaxMag = floats.Max(buf)
	if n == 1 {
		s.MeanMag = buf[0]
	} else {
		s.MeanMag, s.StdMag = stat.MeanStdDev(buf, nil)
	}

	return s, buf
}

func (s *Summary) String() string {
	return fmt.Sprintf("N = %d, net force = (%.6g, %.6g), |F| max = %.6g, " +
		"mean = %.6g, std = %.6g", s.N, s.NetX, s.NetY,
		s.MaxMag, s.MeanMag, s.StdMag)
}

// resizeFloat64s resizes a float64 buffer to have the specified length.
func resizeFloat64s(x []float64, n int) []float64 {
	if cap(x) < n { return make([]float64, n) }
	return x[:n]
}
