// Package fs is the filesystem adapter: it decides where a writeup lives,
// creates its folders, reads the template and writes the report.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// ReportName is the file name of a generated report.
	ReportName = "REPORT.md"
	// ScreenshotsDir and ExploitsDir are created inside every writeup folder.
	ScreenshotsDir = "screenshots"
	ExploitsDir    = "exploits"

	dirPerm = 0755
)

// Layout is the set of paths belonging to one writeup:
// <base>/<YYYY>/<MM>-<MonthName>/<slug>/{screenshots,exploits,REPORT.md}.
type Layout struct {
	Dir         string
	Screenshots string
	Exploits    string
	Report      string
}

// NewLayout derives the paths for a writeup filed under date t.
// roomSlug must already be a single path segment.
func NewLayout(base string, t time.Time, roomSlug string) Layout {
	dir := filepath.Join(base, YearDir(t), MonthDir(t), roomSlug)
	return Layout{
		Dir:         dir,
		Screenshots: filepath.Join(dir, ScreenshotsDir),
		Exploits:    filepath.Join(dir, ExploitsDir),
		Report:      filepath.Join(dir, ReportName),
	}
}

// YearDir returns the four digit year folder name, e.g. "2024".
func YearDir(t time.Time) string {
	return t.Format("2006")
}

// MonthDir returns the month folder name, e.g. "03-March".
func MonthDir(t time.Time) string {
	return t.Format("01-January")
}

// Ensure creates the screenshots and exploits folders (and their parents).
// Folders that already exist are left alone.
func (l Layout) Ensure() error {
	for _, dir := range []string{l.Screenshots, l.Exploits} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}
