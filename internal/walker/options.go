package walker

import "github.com/bethropolis/dir-tree/internal/utils"

// WalkOptions configures the behavior of the Walk function
type WalkOptions struct {
	Logger       utils.Logger
	PathFilter   PathFilter
	TrackSkipped bool
}

// defaultOptions returns the default walk options
func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger:       utils.NoopLogger{},
		PathFilter:   nil,
		TrackSkipped: false,
	}
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		opts.Logger = utils.OrNoop(logger)
	}
}

// WithPathFilter adds a path-based filter consulted after the name rules
func WithPathFilter(filter PathFilter) Option {
	return func(opts *WalkOptions) {
		opts.PathFilter = filter
	}
}

// WithSkipTracking records excluded and unreadable entries in Result.Skipped
func WithSkipTracking(enabled bool) Option {
	return func(opts *WalkOptions) {
		opts.TrackSkipped = enabled
	}
}
