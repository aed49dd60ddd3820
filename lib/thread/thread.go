/*package thread contains functions useful for multi-threading: choosing how
many workers to use and splitting index ranges between them.*/
package thread

import (
	"fmt"
	"runtime"
)

// Set sets the number of OS threads which can run Go code simultaneously. n < 0
// will use every core on the machine. Asking for more threads than there are
// cores is an error.
func Set(n int) error {
	if n < 0 { n = runtime.NumCPU() }
	if n == 0 {
		return fmt.Errorf("0 threads requested. If you want dem to use the " +
			"maximum number of threads, set Threads = -1.")
	} else if n > runtime.NumCPU() {
		return fmt.Errorf("%d threads requested, but your system only has " +
			"%d cores. If you want dem to use the maximum number of " +
			"threads, set Threads = -1.", n, runtime.NumCPU())
	}

	runtime.GOMAXPROCS(n)
	return nil
}

// Workers resolves a requested worker count. Values <= 0 mean "one worker per
// core."
func Workers(n int) int {
	if n <= 0 { return runtime.NumCPU() }
	return n
}

// Range is the half-open index interval [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of indices in the range.
func (r Range) Len() int { return r.End - r.Start }

// Split divides [0, n) into at most workers contiguous, non-overlapping
// ranges which together cover every index exactly once. Range lengths differ
// by at most one. No empty ranges are returned, so there are never more
// ranges than n and none at all when n == 0.
func Split(n, workers int) []Range {
	workers = Workers(workers)
	if workers > n { workers = n }
	if workers == 0 { return nil }

	out := make([]Range, workers)
	size, extra := n / workers, n % workers
	start := 0
	for i := range out {
		end := start + size
		// The first n % workers ranges take one leftover index each.
		if i < extra { end++ }
		out[i] = Range{ start, end }
		start = end
	}

	return out
}
