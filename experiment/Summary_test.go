package experiment

import (
	"math"
	"strings"
	"testing"
)

func TestReport(t *testing.T) {
	tests := []struct {
		summary Summary
		want    string
	}{
		{
			Summary{Episodes: 5, Mean: -12.3456},
			"Ran 5 episodes\nAverage reward: -12.35\n",
		},
		{
			Summary{Episodes: 100, Mean: 2},
			"Ran 100 episodes\nAverage reward: 2.00\n",
		},
		{
			Summary{Episodes: 1, Mean: 1234.5},
			"Ran 1 episodes\nAverage reward: 1234.50\n",
		},
		{
			Summary{Episodes: 3, Mean: -0.004},
			"Ran 3 episodes\nAverage reward: -0.00\n",
		},
		{
			Summary{Episodes: 0, Mean: math.NaN()},
			"Ran 0 episodes\nAverage reward: n/a (no episodes ran)\n",
		},
	}

	for _, test := range tests {
		var out strings.Builder
		if err := test.summary.Report(&out); err != nil {
			t.Fatalf("report: %v", err)
		}
		if out.String() != test.want {
			t.Errorf("report(%+v): want(%q) have(%q)", test.summary, test.want,
				out.String())
		}
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{1, 2, 3, 6})
	if s.Episodes != 4 || s.Mean != 3 {
		t.Errorf("summarize: want({4 3}) have(%+v)", s)
	}

	s = Summarize(nil)
	if s.Episodes != 0 || !math.IsNaN(s.Mean) {
		t.Errorf("summarize: want({0 NaN}) have(%+v)", s)
	}
}
