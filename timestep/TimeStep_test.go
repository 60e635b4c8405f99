package timestep

import "testing"

func TestEndType(t *testing.T) {
	step := New(Mid, 1.0, 0.99, nil, 4)
	if step.EndType() != NotEnded || step.Terminated() || step.Truncated() {
		t.Errorf("endType: mid step should not have ended, got %v",
			step.EndType())
	}

	tests := []struct {
		end        EndType
		terminated bool
		truncated  bool
	}{
		{TerminalStateReached, true, false},
		{Timeout, false, true},
	}

	for _, test := range tests {
		step := New(Mid, 1.0, 0.99, nil, 4)
		step.SetEnd(test.end)

		if !step.Last() {
			t.Errorf("setEnd(%v): step should be last", test.end)
		}
		if step.Terminated() != test.terminated {
			t.Errorf("setEnd(%v): terminated want(%v) have(%v)", test.end,
				test.terminated, step.Terminated())
		}
		if step.Truncated() != test.truncated {
			t.Errorf("setEnd(%v): truncated want(%v) have(%v)", test.end,
				test.truncated, step.Truncated())
		}
	}
}

func TestEndTypeIgnoredUnlessLast(t *testing.T) {
	step := New(Mid, 0, 1, nil, 1)
	step.SetEnd(Timeout)
	step.StepType = Mid

	if step.EndType() != NotEnded {
		t.Errorf("endType: want(%v) have(%v)", NotEnded, step.EndType())
	}
}
