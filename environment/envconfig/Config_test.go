package envconfig

import (
	"testing"

	"github.com/samuelfneumann/landerbench/environment"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		conf        Config
		cardinality environment.Cardinality
	}{
		{Default(), environment.Discrete},
		{NewConfig(LunarLander, Land, true, 10, 0.9), environment.Continuous},
	}

	for _, test := range tests {
		e, step, err := test.conf.Create(1)
		if err != nil {
			t.Fatalf("create %v: %v", test.conf, err)
		}
		if !step.First() {
			t.Errorf("create %v: expected first timestep, got %v", test.conf,
				step)
		}
		if c := e.ActionSpec().Cardinality; c != test.cardinality {
			t.Errorf("create %v: want(%v) actions have(%v)", test.conf,
				test.cardinality, c)
		}
	}
}

func TestCreateErrors(t *testing.T) {
	confs := []Config{
		NewConfig("MountainCar", Land, false, 10, 0.9),
		NewConfig(LunarLander, "SwingUp", false, 10, 0.9),
		NewConfig(LunarLander, Land, false, 0, 0.9),
		NewConfig(Gym, "SwingUp", false, 10, 0.9),
		NewConfig(Gym, Land, false, 0, 0.9),
	}

	for _, conf := range confs {
		if _, _, err := conf.Create(1); err == nil {
			t.Errorf("create %v: expected error", conf)
		}
	}
}
