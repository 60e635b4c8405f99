// Package random implements a policy which selects actions uniformly
// at random from an environment's action space
package random

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/landerbench/environment"
	"github.com/samuelfneumann/landerbench/timestep"
)

// Random selects actions uniformly at random, ignoring observations.
//
// For discrete action specifications, each dimension i is sampled
// uniformly from the integers in [LowerBound[i], UpperBound[i]]. For
// continuous action specifications, each dimension is sampled uniformly
// from the interval [LowerBound[i], UpperBound[i]).
//
// Random implements the agent.Policy interface.
type Random struct {
	seed        uint64
	cardinality environment.Cardinality

	// Discrete actions
	offsets      []float64
	categoricals []distuv.Categorical

	// Continuous actions
	uniforms []distuv.Uniform
}

// New returns a new Random policy over the actions described by spec
func New(spec environment.Spec, seed uint64) (*Random, error) {
	if spec.Type != environment.Action {
		return nil, fmt.Errorf("new: cannot create random policy from a "+
			"%v specification", spec.Type)
	}

	low, high := spec.LowerBound, spec.UpperBound
	for i := 0; i < low.Len(); i++ {
		if low.AtVec(i) > high.AtVec(i) {
			return nil, fmt.Errorf("new: lower bound %v exceeds upper bound "+
				"%v for action dimension %v", low.AtVec(i), high.AtVec(i), i)
		}
	}

	source := rand.NewSource(seed)
	r := &Random{seed: seed, cardinality: spec.Cardinality}

	switch spec.Cardinality {
	case environment.Discrete:
		r.offsets = make([]float64, low.Len())
		r.categoricals = make([]distuv.Categorical, low.Len())
		for i := range r.categoricals {
			lo, hi := low.AtVec(i), high.AtVec(i)
			if lo != math.Trunc(lo) || hi != math.Trunc(hi) {
				return nil, fmt.Errorf("new: discrete action bounds must be "+
					"integers, got [%v, %v] for dimension %v", lo, hi, i)
			}

			// Uniform weights over each action in the dimension
			weights := make([]float64, int(hi-lo)+1)
			for j := range weights {
				weights[j] = 1.0 / float64(len(weights))
			}
			r.offsets[i] = lo
			r.categoricals[i] = distuv.NewCategorical(weights, source)
		}

	case environment.Continuous:
		r.uniforms = make([]distuv.Uniform, low.Len())
		for i := range r.uniforms {
			r.uniforms[i] = distuv.Uniform{
				Min: low.AtVec(i),
				Max: high.AtVec(i),
				Src: source,
			}
		}

	default:
		return nil, fmt.Errorf("new: unknown action cardinality %v",
			spec.Cardinality)
	}

	return r, nil
}

// SelectAction returns a uniformly random action
func (r *Random) SelectAction(_ timestep.TimeStep) (*mat.VecDense, error) {
	if r.cardinality == environment.Discrete {
		action := make([]float64, len(r.categoricals))
		for i := range r.categoricals {
			action[i] = r.categoricals[i].Rand() + r.offsets[i]
		}
		return mat.NewVecDense(len(action), action), nil
	}

	action := make([]float64, len(r.uniforms))
	for i := range r.uniforms {
		action[i] = r.uniforms[i].Rand()
	}
	return mat.NewVecDense(len(action), action), nil
}
