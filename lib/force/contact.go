package force

/* contact.go contains the four realizations of the contact force kernel. They
all take (dest_x, dest_y, dest_fx, dest_fy, src_x, src_y) and differ only in
how the loops are executed. */

import (
	"sync"

	"github.com/phil-mansfield/dem/lib/thread"
)

// Contact is the plain index-based double loop.
func Contact(dx, dy, dfx, dfy, sx, sy []float32) error {
	if err := check(dx, dy, dfx, dfy, sx, sy); err != nil { return err }

	for i := 0; i < len(dx); i++ {
		for j := 0; j < len(sx); j++ {
			ddx := dx[i] - sx[j]
			ddy := dy[i] - sy[j]
			dfx[i] += Stiffness * ddx
			dfy[i] += Stiffness * ddy
		}
	}

	return nil
}

// ContactRange is Contact written with range loops over the destination and
// source arrays instead of explicit index arithmetic.
func ContactRange(dx, dy, dfx, dfy, sx, sy []float32) error {
	if err := check(dx, dy, dfx, dfy, sx, sy); err != nil { return err }

	for i, xi := range dx {
		yi := dy[i]
		for j, sxj := range sx {
			dfx[i] += Stiffness * (xi - sxj)
			dfy[i] += Stiffness * (yi - sy[j])
		}
	}

	return nil
}

// ContactEach expresses the kernel as a unit of work, the contribution of all
// sources to one destination, applied to every destination index. ContactPar
// runs the same unit of work, just on sub-ranges of the destinations.
func ContactEach(dx, dy, dfx, dfy, sx, sy []float32) error {
	if err := check(dx, dy, dfx, dfy, sx, sy); err != nil { return err }
	forEach(len(dx), contactBody(dx, dy, dfx, dfy, sx, sy))
	return nil
}

// ContactPar splits the destination particles into contiguous blocks and
// runs each block on its own goroutine. Sources are shared read-only. Each
// goroutine is handed sub-slices of the destination arrays covering only its
// own block, so no two goroutines can write to the same accumulator and no
// locking is needed. ContactPar returns once every block is finished.
//
// workers <= 0 uses one worker per core. No more workers than destination
// particles are started.
func ContactPar(workers int, dx, dy, dfx, dfy, sx, sy []float32) error {
	if err := check(dx, dy, dfx, dfy, sx, sy); err != nil { return err }

	ranges := thread.Split(len(dx), workers)
	if len(ranges) <= 1 {
		forEach(len(dx), contactBody(dx, dy, dfx, dfy, sx, sy))
		return nil
	}

	wg := &sync.WaitGroup{ }
	wg.Add(len(ranges))
	for _, r := range ranges {
		body := contactBody(
			dx[r.Start: r.End], dy[r.Start: r.End],
			dfx[r.Start: r.End], dfy[r.Start: r.End],
			sx, sy,
		)
		go func(n int) {
			forEach(n, body)
			wg.Done()
		}(r.Len())
	}
	wg.Wait()

	return nil
}

// forEach applies body to every index in [0, n).
func forEach(n int, body func(i int)) {
	for i := 0; i < n; i++ { body(i) }
}

// contactBody returns the function which sums the contributions of every
// source onto destination i.
func contactBody(dx, dy, dfx, dfy, sx, sy []float32) func(i int) {
	return func(i int) {
		xi, yi := dx[i], dy[i]
		fx, fy := dfx[i], dfy[i]
		for j := range sx {
			fx += Stiffness * (xi - sx[j])
			fy += Stiffness * (yi - sy[j])
		}
		dfx[i], dfy[i] = fx, fy
	}
}
