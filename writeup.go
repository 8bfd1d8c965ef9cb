package writeup

import (
	"log/slog"
	"time"

	"github.com/aretw0/writeup/pkg/core"
	"github.com/aretw0/writeup/pkg/hostos"
	"github.com/aretw0/writeup/pkg/slug"
	"github.com/aretw0/writeup/pkg/writeup"
)

// Version is the release version, overridden at build time with
// -ldflags "-X github.com/aretw0/writeup.Version=v1.2.3".
var Version = "dev"

// --- Types ---

// Answers is a public alias for the values collected from the user.
type Answers = core.Answers

// Metadata is a public alias for the report metadata record.
type Metadata = core.Metadata

// Generator is a public alias for the writeup generator.
type Generator = writeup.Generator

// Result is a public alias for a generated writeup.
type Result = writeup.Result

// --- Configuration ---

// Option defines a functional option for configuring the Generator.
type Option = writeup.Option

// WithBaseDir sets the root of the YEAR/MM-Month tree.
func WithBaseDir(dir string) Option {
	return writeup.WithBaseDir(dir)
}

// WithTemplatePath sets the template a report is generated from.
func WithTemplatePath(path string) Option {
	return writeup.WithTemplatePath(path)
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return writeup.WithClock(now)
}

// WithHostOS overrides host OS detection.
func WithHostOS(detect func() string) Option {
	return writeup.WithHostOS(detect)
}

// WithLogger sets the logger for the generator.
func WithLogger(logger *slog.Logger) Option {
	return writeup.WithLogger(logger)
}

// --- Factory ---

// New creates a new Generator.
func New(opts ...Option) *Generator {
	return writeup.New(opts...)
}

// --- Helpers ---

// Slugify turns a room name into the folder name used for it.
func Slugify(room string) string {
	return slug.Slugify(room)
}

// DetectHostOS describes the operating system this process runs on.
func DetectHostOS() string {
	return hostos.Detect()
}
