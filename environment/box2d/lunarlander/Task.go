package lunarlander

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/landerbench/environment"
	ts "github.com/samuelfneumann/landerbench/timestep"
)

// lunarLanderTask is a Task which needs access to the internal
// physics of the lunar lander to compute rewards or episode endings
type lunarLanderTask interface {
	environment.Task
	registerEnv(*lunarLander)
	reset()
}

// Land implements the task of landing the lunar lander on the landing
// pad. Rewards are the difference in a shaping potential between
// consecutive states, minus the fuel spent on the step. Crashing the
// lander or flying it off the side of the screen gives a reward of
// -100, and bringing it to rest gives a reward of +100. Both of these
// end the episode in a terminal state. Episodes which do not reach a
// terminal state are truncated after the cutoff number of steps.
type Land struct {
	environment.Starter
	stepLimit *environment.StepLimit

	prevShaping *float64

	env *lunarLander
}

// NewLand returns a new Land task which truncates episodes after
// cutoff steps
func NewLand(s environment.Starter, cutoff int) *Land {
	stepLimit := environment.NewStepLimit(cutoff)

	return &Land{Starter: s, stepLimit: stepLimit}
}

// NewDefaultStarter returns a Starter which always starts the lander
// at the top centre of the viewport with the default random force
func NewDefaultStarter(seed uint64) environment.Starter {
	return environment.NewUniformStarter([]r1.Interval{
		{Min: InitialX, Max: InitialX},
		{Min: InitialY, Max: InitialY},
		{Min: InitialRandom, Max: InitialRandom},
	}, seed)
}

func (l *Land) registerEnv(env *lunarLander) {
	l.env = env
}

func (l *Land) reset() {
	l.prevShaping = nil
}

// Cutoff returns the number of steps after which episodes are truncated
func (l *Land) Cutoff() int {
	return l.stepLimit.Limit()
}

// AtGoal returns whether both legs of the lander are on the ground
func (l *Land) AtGoal(state *mat.VecDense) bool {
	return state.AtVec(6) == 1.0 && state.AtVec(7) == 1.0
}

// GetReward returns the reward for the transition to nextState. Only
// nextState and the environment's engine powers are used.
func (l *Land) GetReward(_, _, nextState *mat.VecDense) float64 {
	state := nextState.RawVector().Data

	reward := 0.0
	shaping := (-100 * math.Sqrt(state[0]*state[0]+state[1]*state[1])) +
		(-100 * math.Sqrt(state[2]*state[2]+state[3]*state[3])) +
		(-100 * math.Abs(state[4])) +
		(10 * state[6]) +
		(10 * state[7])

	if l.prevShaping != nil {
		reward = shaping - *l.prevShaping
	}
	l.prevShaping = &shaping

	// Less fuel spent is better
	reward -= l.env.MPower() * 0.30
	reward -= l.env.SPower() * 0.03

	if l.crashed(nextState) {
		reward = -100
	}
	if !l.env.IsAwake() {
		reward = 100
	}
	return reward
}

// End ends the episode in a terminal state if the lander crashed, left
// the viewport or came to rest, and truncates it at the step limit
// otherwise
func (l *Land) End(t *ts.TimeStep) bool {
	if l.crashed(t.Observation) || !l.env.IsAwake() {
		t.SetEnd(ts.TerminalStateReached)
		return true
	}
	return l.stepLimit.End(t)
}

func (l *Land) crashed(state *mat.VecDense) bool {
	return l.env.IsGameOver() || math.Abs(state.AtVec(0)) >= 1.0
}
