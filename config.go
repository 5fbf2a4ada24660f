package pegx

import "time"

// RunnerConfig configures a Runner, plus the knobs engine.go's Config
// exposes for the matcher engine itself.
type RunnerConfig struct {
	Engine Config

	// Timeout bounds a run's wall-clock time, measured from the start of
	// the run; zero means no timeout. It is checked on every Sequence
	// failure during the recovering passes (locating, reporting and the
	// final run), not during the initial non-recovering attempt.
	Timeout time.Duration
}

// RunnerOption mutates a RunnerConfig being built by NewRunner.
type RunnerOption func(*RunnerConfig)

// WithTimeout sets the repair loop's wall-clock budget.
func WithTimeout(d time.Duration) RunnerOption {
	return func(c *RunnerConfig) { c.Timeout = d }
}

// WithMaxErrors bounds how many distinct errors one run will try to
// overcome before giving up with a TimeoutError. Options apply after
// defaults, so n is used as given; zero allows no errors at all.
func WithMaxErrors(n int) RunnerOption {
	return func(c *RunnerConfig) { c.Engine.MaxErrors = n }
}

// WithMaxRecursionDepth bounds matcher nesting depth. Options apply after
// defaults, so n is used as given; zero rejects even the root matcher.
func WithMaxRecursionDepth(n int) RunnerOption {
	return func(c *RunnerConfig) { c.Engine.MaxRecursionDepth = n }
}

// DisableLineColumnCounting sets Config.DisableLineColumnCounting, which
// nothing in matching or position computation consults.
func DisableLineColumnCounting() RunnerOption {
	return func(c *RunnerConfig) { c.Engine.DisableLineColumnCounting = true }
}

func newRunnerConfig(opts []RunnerOption) RunnerConfig {
	cfg := RunnerConfig{Engine: Config{}.withDefaults()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
