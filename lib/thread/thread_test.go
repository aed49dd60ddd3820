package thread

import (
	"runtime"
	"testing"
)

func TestWorkers(t *testing.T) {
	tests := []struct{
		n, out int
	} {
		{1, 1},
		{8, 8},
		{64, 64},
		{0, runtime.NumCPU()},
		{-1, runtime.NumCPU()},
	}

	for i := range tests {
		if out := Workers(tests[i].n); out != tests[i].out {
			t.Errorf("%d) Expected Workers(%d) = %d, got %d.",
				i, tests[i].n, tests[i].out, out)
		}
	}
}

func TestSplit(t *testing.T) {
	tests := []struct{
		n, workers int
		lens []int
	} {
		{0, 4, []int{ }},
		{1, 4, []int{1}},
		{4, 4, []int{1, 1, 1, 1}},
		{10, 3, []int{4, 3, 3}},
		{10, 1, []int{10}},
		{7, 64, []int{1, 1, 1, 1, 1, 1, 1}},
		{4000, 8, []int{500, 500, 500, 500, 500, 500, 500, 500}},
	}

	for i := range tests {
		ranges := Split(tests[i].n, tests[i].workers)
		if len(ranges) != len(tests[i].lens) {
			t.Errorf("%d) Expected %d ranges from Split(%d, %d), got %d.", i,
				len(tests[i].lens), tests[i].n, tests[i].workers, len(ranges))
			continue
		}

		for j := range ranges {
			if ranges[j].Len() != tests[i].lens[j] {
				t.Errorf("%d) Expected range %d to have length %d, got %v.",
					i, j, tests[i].lens[j], ranges[j])
			}
		}
	}
}

func TestSplitCoverage(t *testing.T) {
	for _, n := range []int{ 0, 1, 2, 3, 17, 100, 4001 } {
		for _, workers := range []int{ -1, 1, 2, 3, 8, 64 } {
			hits := make([]int, n)
			prev := 0
			for _, r := range Split(n, workers) {
				if r.Start != prev {
					t.Errorf("Split(%d, %d): expected range to start at %d, " +
						"got %v.", n, workers, prev, r)
				}
				if r.Len() <= 0 {
					t.Errorf("Split(%d, %d): got empty range %v.",
						n, workers, r)
				}
				for k := r.Start; k < r.End; k++ { hits[k]++ }
				prev = r.End
			}

			for k := range hits {
				if hits[k] != 1 {
					t.Errorf("Split(%d, %d): index %d was covered %d times.",
						n, workers, k, hits[k])
					break
				}
			}
		}
	}
}

func TestSet(t *testing.T) {
	prev := runtime.GOMAXPROCS(0)
	defer runtime.GOMAXPROCS(prev)

	if err := Set(1); err != nil {
		t.Errorf("Expected Set(1) to succeed, got %s.", err.Error())
	} else if runtime.GOMAXPROCS(0) != 1 {
		t.Errorf("Expected GOMAXPROCS = 1, got %d.", runtime.GOMAXPROCS(0))
	}

	if err := Set(-1); err != nil {
		t.Errorf("Expected Set(-1) to succeed, got %s.", err.Error())
	} else if runtime.GOMAXPROCS(0) != runtime.NumCPU() {
		t.Errorf("Expected GOMAXPROCS = %d, got %d.",
			runtime.NumCPU(), runtime.GOMAXPROCS(0))
	}

	if err := Set(runtime.NumCPU() + 1); err == nil {
		t.Errorf("Expected Set(%d) to fail.", runtime.NumCPU() + 1)
	}
	if err := Set(0); err == nil {
		t.Errorf("Expected Set(0) to fail.")
	}
}
