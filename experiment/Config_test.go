package experiment

import (
	"errors"
	"testing"
)

func lookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
}

func TestConfigFromEnv(t *testing.T) {
	tests := []struct {
		env  map[string]string
		want int
	}{
		{map[string]string{}, DefaultEpisodes},
		{map[string]string{EpisodesVar: ""}, DefaultEpisodes},
		{map[string]string{EpisodesVar: "5"}, 5},
		{map[string]string{EpisodesVar: " 12\n"}, 12},
		{map[string]string{EpisodesVar: "0"}, 0},
		{map[string]string{"EPISODES": "3"}, DefaultEpisodes},
	}

	for _, test := range tests {
		c, err := ConfigFromEnv(lookup(test.env))
		if err != nil {
			t.Errorf("configFromEnv(%v): %v", test.env, err)
			continue
		}
		if c.Episodes != test.want {
			t.Errorf("configFromEnv(%v): want(%v) episodes have(%v)",
				test.env, test.want, c.Episodes)
		}
		if c.EnvConf != DefaultConfig().EnvConf {
			t.Errorf("configFromEnv(%v): unexpected environment config %v",
				test.env, c.EnvConf)
		}
	}
}

func TestConfigFromEnvErrors(t *testing.T) {
	for _, value := range []string{"abc", "1.5", "-3", "10k", "0x10"} {
		_, err := ConfigFromEnv(lookup(map[string]string{EpisodesVar: value}))
		if !errors.Is(err, ErrConfig) {
			t.Errorf("configFromEnv(%q): want(%v) have(%v)", value, ErrConfig,
				err)
		}
	}
}
