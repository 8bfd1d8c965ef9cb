package fs

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/writeup/pkg/core"
)

// ReadTemplate loads the report template at path.
// A missing path, or one that is not a regular file, yields core.ErrTemplateNotFound.
// Windows line endings are converted to "\n" so every line pattern sees the
// same terminator.
func ReadTemplate(path string) (string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) || (err == nil && !info.Mode().IsRegular()) {
		return "", fmt.Errorf("%w at %s", core.ErrTemplateNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat template: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template: %w", err)
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}
