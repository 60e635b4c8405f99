package environment

import (
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"

	ts "github.com/samuelfneumann/landerbench/timestep"
)

func TestStepLimit(t *testing.T) {
	limit := NewStepLimit(3)

	for n := 0; n < 3; n++ {
		step := ts.New(ts.Mid, 0, 1, nil, n)
		if limit.End(&step) {
			t.Errorf("end: step %v should not end the episode", n)
		}
		if step.Last() {
			t.Errorf("end: step %v should not be marked as last", n)
		}
	}

	step := ts.New(ts.Mid, 0, 1, nil, 3)
	if !limit.End(&step) {
		t.Error("end: step 3 should end the episode")
	}
	if !step.Last() || !step.Truncated() {
		t.Errorf("end: expected truncated last step, got %v", step)
	}
}

func TestUniformStarter(t *testing.T) {
	bounds := []r1.Interval{{Min: -1, Max: 1}, {Min: 5, Max: 5}}
	s := NewUniformStarter(bounds, 7)

	for i := 0; i < 100; i++ {
		start := s.Start()
		if start.Len() != len(bounds) {
			t.Fatalf("start: want(%v) features have(%v)", len(bounds),
				start.Len())
		}
		for j, b := range bounds {
			if v := start.AtVec(j); v < b.Min || v > b.Max {
				t.Errorf("start: feature %v = %v outside of %v", j, v, b)
			}
		}
	}
}

func TestNewSpecPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("newSpec: expected panic for mismatched bounds")
		}
	}()

	NewSpec(mat.NewVecDense(2, nil), Action, mat.NewVecDense(1, nil),
		mat.NewVecDense(2, nil), Continuous)
}
