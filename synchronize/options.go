// SPDX-License-Identifier: MIT

package synchronize

import (
	"runtime"

	"github.com/katalvlaran/syncdist/progress"
)

// Option configures Synchronize.
type Option func(*Options)

// Options holds the parameters of a Synchronize run.
type Options struct {
	// Workers bounds the number of trajectories interpolated concurrently.
	// Values <= 1 run sequentially. Default: runtime.GOMAXPROCS(0).
	Workers int

	// Reporter receives one StageSynchronise report per finished trajectory.
	Reporter progress.Reporter
}

// DefaultOptions returns Options with GOMAXPROCS workers and a Nop reporter.
func DefaultOptions() Options {
	return Options{
		Workers:  runtime.GOMAXPROCS(0),
		Reporter: progress.Nop{},
	}
}

// WithWorkers sets the worker count.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithReporter installs a progress reporter. nil keeps the Nop reporter.
func WithReporter(r progress.Reporter) Option {
	return func(o *Options) {
		if r != nil {
			o.Reporter = r
		}
	}
}
