// SPDX-License-Identifier: MIT

package measure

import (
	"log/slog"
	"runtime"

	"github.com/katalvlaran/syncdist/progress"
)

// Option configures a SynchronisedDistance.
type Option func(*Options)

// Options holds the parameters shared by every stage of setup.
type Options struct {
	// Workers bounds the parallelism of synchronisation, graph building and
	// the shortest-path closure. Values <= 1 run sequentially.
	// Default: runtime.GOMAXPROCS(0).
	Workers int

	// Logger receives debug records per stage. Default discards everything.
	Logger *slog.Logger

	// Reporter receives per-stage progress. Default: progress.Nop.
	Reporter progress.Reporter
}

// DefaultOptions returns the configuration used by New without options.
func DefaultOptions() Options {
	return Options{
		Workers:  runtime.GOMAXPROCS(0),
		Logger:   slog.New(slog.DiscardHandler),
		Reporter: progress.Nop{},
	}
}

// WithWorkers sets the worker count for every parallel stage.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger installs a structured logger. nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithReporter installs a progress reporter. nil keeps the Nop reporter.
func WithReporter(r progress.Reporter) Option {
	return func(o *Options) {
		if r != nil {
			o.Reporter = r
		}
	}
}
