package glyphcode

import "log/slog"

// Option configures a Tracker during creation.
//
// Example:
//
//	setting := glyphcode.NewSetting(glyphcode.EncodingASCII)
//	tr := glyphcode.NewTracker(
//	    glyphcode.WithEncoding(setting),
//	    glyphcode.WithLogger(slog.Default()),
//	)
type Option func(*trackerOptions)

// trackerOptions holds optional configuration for Tracker creation.
type trackerOptions struct {
	registry *Registry
	encoding EncodingSource
	logger   *slog.Logger
}

// defaultTrackerOptions returns the default tracker options.
func defaultTrackerOptions() trackerOptions {
	return trackerOptions{
		registry: nil, // Created if nil
		encoding: NewSetting(EncodingPUA),
		logger:   nil, // Package logger
	}
}

// WithEncoding sets the source of the active encoding. The source is
// queried on every allocation. A nil source keeps the default, a Setting
// holding EncodingPUA.
func WithEncoding(src EncodingSource) Option {
	return func(o *trackerOptions) {
		if src != nil {
			o.encoding = src
		}
	}
}

// WithRegistry makes the tracker use reg instead of a fresh registry.
// reg must not be shared with another tracker.
func WithRegistry(reg *Registry) Option {
	return func(o *trackerOptions) {
		o.registry = reg
	}
}

// WithLogger gives the tracker its own logger. Without it the tracker logs
// through the package logger (see SetLogger).
func WithLogger(l *slog.Logger) Option {
	return func(o *trackerOptions) {
		o.logger = l
	}
}
