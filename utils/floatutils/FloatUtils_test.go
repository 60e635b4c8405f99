package floatutils

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r1"
)

func TestClip(t *testing.T) {
	tests := []struct {
		value, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-2, -1, 1, -1},
		{3, -1, 1, 1},
		{1, 1, 1, 1},
	}

	for _, test := range tests {
		if got := Clip(test.value, test.min, test.max); got != test.want {
			t.Errorf("clip(%v, %v, %v): want(%v) have(%v)", test.value,
				test.min, test.max, test.want, got)
		}
		interval := r1.Interval{Min: test.min, Max: test.max}
		if got := ClipInterval(test.value, interval); got != test.want {
			t.Errorf("clipInterval(%v, %v): want(%v) have(%v)", test.value,
				interval, test.want, got)
		}
	}
}

func TestSign(t *testing.T) {
	for value, want := range map[float64]float64{-3.2: -1, 0: 0, 0.01: 1} {
		if got := Sign(value); got != want {
			t.Errorf("sign(%v): want(%v) have(%v)", value, want, got)
		}
	}
}
