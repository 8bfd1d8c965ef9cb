package writeup

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/writeup/pkg/adapters/fs"
	"github.com/aretw0/writeup/pkg/core"
	"github.com/aretw0/writeup/pkg/report"
)

// List returns every report below base with the metadata read back from it,
// ordered by path.
func List(ctx context.Context, base string) ([]core.Entry, error) {
	paths, err := fs.FindReports(base)
	if err != nil {
		return nil, err
	}

	entries := make([]core.Entry, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		entries = append(entries, core.Entry{
			Path:     path,
			Metadata: report.ParseMetadata(string(data)),
		})
	}
	return entries, nil
}
