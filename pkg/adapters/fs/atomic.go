package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// TempFilePrefix names the scratch file a report is staged in before rename.
	TempFilePrefix = ".writeup-tmp-"

	reportPerm = 0644
)

// WriteReport replaces the file at path with data. The data is staged in a
// temporary file next to path and renamed over it, so a crash never leaves a
// half-written report behind.
func WriteReport(path string, data []byte) error {
	return writeFileAtomic(path, data, reportPerm)
}

func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, filename); err != nil {
		return fmt.Errorf("failed to move report into %s: %w", filename, err)
	}
	return nil
}
