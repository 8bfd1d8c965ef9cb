package writeup

import (
	"log/slog"
	"time"
)

const (
	// DefaultTemplatePath is used when no template is configured.
	DefaultTemplatePath = "./template.md"
	// DefaultBaseDir is used when no base directory is configured.
	DefaultBaseDir = "."
)

// options holds the internal configuration for the Generator.
type options struct {
	baseDir      string
	templatePath string
	now          func() time.Time
	hostOS       func() string
	logger       *slog.Logger
}

// Option defines a functional option for configuring the Generator.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		baseDir:      DefaultBaseDir,
		templatePath: DefaultTemplatePath,
		now:          time.Now,
		hostOS:       nil, // resolved in New once the logger is known
		logger:       nil,
	}
}

// WithBaseDir sets the root of the YEAR/MM-Month tree.
func WithBaseDir(dir string) Option {
	return func(o *options) {
		o.baseDir = dir
	}
}

// WithTemplatePath sets the markdown template a report is generated from.
func WithTemplatePath(path string) Option {
	return func(o *options) {
		o.templatePath = path
	}
}

// WithClock overrides the time source used for folder names and the report date.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithHostOS overrides host OS detection (useful for testing).
func WithHostOS(detect func() string) Option {
	return func(o *options) {
		o.hostOS = detect
	}
}

// WithLogger sets the logger for the generator.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
