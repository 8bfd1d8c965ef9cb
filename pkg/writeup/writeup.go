package writeup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/writeup/pkg/adapters/fs"
	"github.com/aretw0/writeup/pkg/core"
	"github.com/aretw0/writeup/pkg/hostos"
	"github.com/aretw0/writeup/pkg/report"
	"github.com/aretw0/writeup/pkg/slug"
)

// DateLayout is the format of the report's Date field.
const DateLayout = "2006-01-02"

// Generator files new writeups.
type Generator struct {
	baseDir      string
	templatePath string
	now          func() time.Time
	hostOS       func() string
	logger       *slog.Logger
}

// Result describes a generated writeup.
type Result struct {
	Layout   fs.Layout
	Metadata core.Metadata
	HostOS   string
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}
	detect := o.hostOS
	if detect == nil {
		detect = hostos.New(hostos.WithLogger(logger)).Detect
	}

	return &Generator{
		baseDir:      o.baseDir,
		templatePath: o.templatePath,
		now:          o.now,
		hostOS:       detect,
		logger:       logger,
	}
}

// TemplatePath returns the template the generator reads.
func (g *Generator) TemplatePath() string {
	return g.templatePath
}

// Generate creates the writeup folders for a, then patches the template into
// REPORT.md. An existing report is overwritten.
//
// Folders are created before the template is read, so a missing template
// (core.ErrTemplateNotFound) still leaves the folder tree behind.
func (g *Generator) Generate(ctx context.Context, a core.Answers) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	now := g.now()
	layout := fs.NewLayout(g.baseDir, now, slug.Slugify(a.Room))
	g.logger.Debug("creating writeup folders", "dir", layout.Dir)
	if err := layout.Ensure(); err != nil {
		return Result{}, err
	}

	template, err := fs.ReadTemplate(g.templatePath)
	if err != nil {
		return Result{}, err
	}

	meta := BuildMetadata(a, now)
	hostOS := g.hostOS()
	text := report.Patch(template, meta, hostOS)

	if err := fs.WriteReport(layout.Report, []byte(text)); err != nil {
		return Result{}, fmt.Errorf("failed to write report: %w", err)
	}
	g.logger.Debug("report written", "path", layout.Report, "host_os", hostOS)

	return Result{Layout: layout, Metadata: meta, HostOS: hostOS}, nil
}

// BuildMetadata turns answers into the report metadata record, stamping the
// date of now. A blank author becomes core.DefaultAuthor.
func BuildMetadata(a core.Answers, now time.Time) core.Metadata {
	author := a.Author
	if author == "" {
		author = core.DefaultAuthor
	}
	return core.Metadata{
		MachineName: a.Room,
		Platform:    a.Platform,
		Host:        a.Host,
		Date:        now.Format(DateLayout),
		Author:      author,
		Difficulty:  a.Difficulty,
		Goal:        a.Goal,
	}
}
