package experiment

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summary summarizes the returns of an experiment
type Summary struct {
	Episodes int

	// Mean is the arithmetic mean of the episodic returns. It is NaN
	// when no episodes ran.
	Mean float64
}

// Summarize returns the Summary of the given episodic returns
func Summarize(returns []float64) Summary {
	if len(returns) == 0 {
		return Summary{Episodes: 0, Mean: math.NaN()}
	}
	return Summary{Episodes: len(returns), Mean: stat.Mean(returns, nil)}
}

// Report writes the summary to w as two lines: the number of episodes
// run and the average reward with two decimal places
func (s Summary) Report(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Ran %d episodes\n", s.Episodes); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	var err error
	if s.Episodes == 0 {
		_, err = fmt.Fprintln(w, "Average reward: n/a (no episodes ran)")
	} else {
		_, err = fmt.Fprintf(w, "Average reward: %.2f\n", s.Mean)
	}
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}
