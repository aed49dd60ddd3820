package eq

import (
	"testing"
)

func TestFloat32sRel(t *testing.T) {
	tests := []struct{
		x, y []float32
		rel float64
		out bool
	} {
		{[]float32{ }, []float32{ }, 0, true},
		{[]float32{0, 0}, []float32{0, 0}, 0, true},
		{[]float32{1e5, 1}, []float32{1e5, 1.5}, 1e-5, true},
		{[]float32{1e5, 1}, []float32{1e5, 3}, 1e-5, false},
		{[]float32{1, 2}, []float32{1, 2, 3}, 1, false},
	}

	for i := range tests {
		out := Float32sRel(tests[i].x, tests[i].y, tests[i].rel)
		if out != tests[i].out {
			t.Errorf("%d) Expected Float32sRel(%v, %v, %g) = %v, got %v.", i,
				tests[i].x, tests[i].y, tests[i].rel, tests[i].out, out)
		}
	}
}

func TestMaxRelDiff(t *testing.T) {
	if d := MaxRelDiff([]float32{2, 4}, []float32{2, 3}); d != 0.25 {
		t.Errorf("Expected MaxRelDiff = 0.25, got %g.", d)
	}
	if d := MaxRelDiff([]float32{0}, []float32{0}); d != 0 {
		t.Errorf("Expected MaxRelDiff = 0, got %g.", d)
	}
}
