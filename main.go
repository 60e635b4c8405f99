// Command landerbench runs a uniformly random policy on Lunar Lander
// for a number of episodes and prints the average episodic return.
//
// The number of episodes is read from the NUM_EPISODES environment
// variable and defaults to 100.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/samuelfneumann/landerbench/agent/random"
	"github.com/samuelfneumann/landerbench/environment"
	"github.com/samuelfneumann/landerbench/environment/envconfig"
	"github.com/samuelfneumann/landerbench/experiment"
	"github.com/samuelfneumann/landerbench/experiment/tracker"
	ts "github.com/samuelfneumann/landerbench/timestep"
	"github.com/samuelfneumann/landerbench/utils/progressbar"
)

// envFactory creates the environment to run the experiment on
type envFactory func(c envconfig.Config, seed uint64) (environment.Environment,
	error)

func createEnv(c envconfig.Config, seed uint64) (environment.Environment,
	error) {
	env, _, err := c.Create(seed)
	return env, err
}

func main() {
	if err := newRootCmd(os.LookupEnv, createEnv).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(lookup func(string) (string, bool),
	create envFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "landerbench",
		Short: "Run a random policy on Lunar Lander and report the average reward",
		Long: "landerbench runs a uniformly random policy on the Lunar Lander " +
			"environment for " + experiment.EpisodesVar + " episodes " +
			fmt.Sprintf("(default %v) ", experiment.DefaultEpisodes) +
			"and prints the number of episodes run and the average " +
			"episodic reward.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, lookup, create)
		},
	}
}

func run(cmd *cobra.Command, lookup func(string) (string, bool),
	create envFactory) error {
	// Validate the configuration before any episode runs
	conf, err := experiment.ConfigFromEnv(lookup)
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	logger := log.New(cmd.ErrOrStderr(), fmt.Sprintf("[%v] ", runID[:8]),
		log.LstdFlags)

	seed := uint64(time.Now().UnixNano())
	env, err := create(conf.EnvConf, seed)
	if err != nil {
		return fmt.Errorf("could not create environment: %w", err)
	}
	if closer, ok := env.(environment.Closer); ok {
		defer closer.Close()
	}

	policy, err := random.New(env.ActionSpec(), seed+1)
	if err != nil {
		return fmt.Errorf("could not create policy: %w", err)
	}

	returns := tracker.NewReturn()
	lengths := tracker.NewEpisodeLength()
	exp := experiment.NewEpisodic(env, policy, conf.Episodes, returns,
		lengths)
	bar := newProgressTracker(cmd.ErrOrStderr(), conf.Episodes, logger)
	if bar != nil {
		exp.Register(bar)
	}

	logger.Printf("running %v episodes on %v with seed %v", conf.Episodes,
		conf.EnvConf, seed)
	start := time.Now()
	if err := exp.Run(); err != nil {
		return err
	}
	logger.Printf("finished in %v, %v of %v episodes truncated",
		time.Since(start).Truncate(time.Millisecond), lengths.Truncated(),
		exp.Completed())

	return experiment.Summarize(returns.Data()).Report(cmd.OutOrStdout())
}

// progressTracker displays a progress bar which advances at the end of
// each episode. The first display error is logged and the bar is not
// displayed again.
type progressTracker struct {
	bar    *progressbar.ManualProgressBar
	logger *log.Logger
	failed bool
}

// newProgressTracker returns a progressTracker displaying on out, or
// nil if out is not a terminal
func newProgressTracker(out io.Writer, episodes int,
	logger *log.Logger) *progressTracker {
	f, ok := out.(*os.File)
	if !ok || episodes == 0 {
		return nil
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return nil
	}

	p := &progressTracker{
		bar:    progressbar.NewManualProgressBar(out, 40, episodes),
		logger: logger,
	}
	p.display()
	return p
}

func (p *progressTracker) Track(t ts.TimeStep) {
	if t.Last() {
		p.bar.Increment()
		p.display()
	}
}

func (p *progressTracker) display() {
	if p.failed {
		return
	}
	if err := p.bar.Display(); err != nil {
		p.failed = true
		p.logger.Printf("disabling progress bar: %v", err)
	}
}
