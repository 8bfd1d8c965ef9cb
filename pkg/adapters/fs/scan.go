package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ReportGlob matches every report below a base directory.
const ReportGlob = "**/" + ReportName

// FindReports returns the paths (joined onto base) of all reports below base,
// sorted lexically. A missing base directory yields no reports.
func FindReports(base string) ([]string, error) {
	if _, err := os.Stat(base); os.IsNotExist(err) {
		return nil, nil
	}

	matches, err := doublestar.Glob(os.DirFS(base), ReportGlob, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", base, err)
	}

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, filepath.Join(base, filepath.FromSlash(m)))
	}
	sort.Strings(paths)
	return paths, nil
}
