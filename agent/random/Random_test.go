package random

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/landerbench/environment"
	ts "github.com/samuelfneumann/landerbench/timestep"
)

func TestDiscrete(t *testing.T) {
	spec := environment.NewSpec(
		mat.NewVecDense(1, nil),
		environment.Action,
		mat.NewVecDense(1, []float64{0}),
		mat.NewVecDense(1, []float64{3}),
		environment.Discrete,
	)
	r, err := New(spec, 10)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	counts := make(map[float64]int)
	samples := 4000
	for i := 0; i < samples; i++ {
		action, err := r.SelectAction(ts.TimeStep{})
		if err != nil {
			t.Fatalf("selectAction: %v", err)
		}
		if action.Len() != 1 {
			t.Fatalf("selectAction: want(1) dimension have(%v)", action.Len())
		}
		counts[action.AtVec(0)]++
	}

	if len(counts) != 4 {
		t.Errorf("selectAction: expected all 4 actions, got %v", counts)
	}
	for a, n := range counts {
		if a != 0 && a != 1 && a != 2 && a != 3 {
			t.Errorf("selectAction: illegal action %v", a)
		}

		// Each action has probability 1/4, allow a generous margin
		if n < samples/8 || n > samples*3/8 {
			t.Errorf("selectAction: action %v sampled %v/%v times", a, n,
				samples)
		}
	}
}

func TestDiscreteOffset(t *testing.T) {
	spec := environment.NewSpec(
		mat.NewVecDense(2, nil),
		environment.Action,
		mat.NewVecDense(2, []float64{-2, 5}),
		mat.NewVecDense(2, []float64{-1, 5}),
		environment.Discrete,
	)
	r, err := New(spec, 3)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	for i := 0; i < 100; i++ {
		action, _ := r.SelectAction(ts.TimeStep{})
		if a := action.AtVec(0); a != -2 && a != -1 {
			t.Errorf("selectAction: dimension 0 out of [-2, -1]: %v", a)
		}
		if a := action.AtVec(1); a != 5 {
			t.Errorf("selectAction: dimension 1 should always be 5, got %v", a)
		}
	}
}

func TestContinuous(t *testing.T) {
	low := []float64{-1, 0}
	high := []float64{1, 0.5}
	spec := environment.NewSpec(
		mat.NewVecDense(2, nil),
		environment.Action,
		mat.NewVecDense(2, low),
		mat.NewVecDense(2, high),
		environment.Continuous,
	)
	r, err := New(spec, 1)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	for i := 0; i < 1000; i++ {
		action, err := r.SelectAction(ts.TimeStep{})
		if err != nil {
			t.Fatalf("selectAction: %v", err)
		}
		for j := range low {
			if a := action.AtVec(j); a < low[j] || a > high[j] {
				t.Errorf("selectAction: dimension %v = %v outside [%v, %v]",
					j, a, low[j], high[j])
			}
		}
	}
}

func TestNewErrors(t *testing.T) {
	specs := []environment.Spec{
		// Not an action spec
		environment.NewSpec(mat.NewVecDense(1, nil), environment.Observation,
			mat.NewVecDense(1, []float64{0}), mat.NewVecDense(1, []float64{1}),
			environment.Discrete),

		// Inverted bounds
		environment.NewSpec(mat.NewVecDense(1, nil), environment.Action,
			mat.NewVecDense(1, []float64{1}), mat.NewVecDense(1, []float64{0}),
			environment.Continuous),

		// Fractional discrete bounds
		environment.NewSpec(mat.NewVecDense(1, nil), environment.Action,
			mat.NewVecDense(1, []float64{0}), mat.NewVecDense(1, []float64{2.5}),
			environment.Discrete),
	}

	for _, spec := range specs {
		if _, err := New(spec, 1); err == nil {
			t.Errorf("new: expected error for spec %v", spec)
		}
	}
}

func TestSeeded(t *testing.T) {
	spec := environment.NewSpec(mat.NewVecDense(1, nil), environment.Action,
		mat.NewVecDense(1, []float64{0}), mat.NewVecDense(1, []float64{9}),
		environment.Discrete)

	r1, _ := New(spec, 99)
	r2, _ := New(spec, 99)
	for i := 0; i < 50; i++ {
		a1, _ := r1.SelectAction(ts.TimeStep{})
		a2, _ := r2.SelectAction(ts.TimeStep{})
		if a1.AtVec(0) != a2.AtVec(0) {
			t.Fatalf("selectAction %v: equal seeds gave %v and %v", i,
				a1.AtVec(0), a2.AtVec(0))
		}
	}
}
