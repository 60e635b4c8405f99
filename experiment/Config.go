package experiment

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samuelfneumann/landerbench/environment/envconfig"
)

// EpisodesVar is the environment variable which overrides the number
// of episodes to run
const EpisodesVar = "NUM_EPISODES"

// DefaultEpisodes is the number of episodes run when EpisodesVar is
// not set
const DefaultEpisodes = 100

// ErrConfig is returned, wrapped, for invalid configurations
var ErrConfig = errors.New("invalid configuration")

// Config represents a configuration of an experiment.
type Config struct {
	Episodes int
	EnvConf  envconfig.Config
}

// DefaultConfig returns the configuration of DefaultEpisodes episodes
// on the default environment
func DefaultConfig() Config {
	return Config{
		Episodes: DefaultEpisodes,
		EnvConf:  envconfig.Default(),
	}
}

// ConfigFromEnv returns the default Config with the number of episodes
// taken from the EpisodesVar environment variable, if it is set and
// not blank. The lookup function is usually os.LookupEnv.
//
// Values which are not non-negative integers are an error wrapping
// ErrConfig.
func ConfigFromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := DefaultConfig()

	value, ok := lookup(EpisodesVar)
	value = strings.TrimSpace(value)
	if !ok || value == "" {
		return c, nil
	}

	episodes, err := strconv.Atoi(value)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v must be an integer, got %q",
			ErrConfig, EpisodesVar, value)
	}
	if episodes < 0 {
		return Config{}, fmt.Errorf("%w: %v must not be negative, got %v",
			ErrConfig, EpisodesVar, episodes)
	}

	c.Episodes = episodes
	return c, nil
}
