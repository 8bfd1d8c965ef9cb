package fs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/writeup/pkg/slug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayout(t *testing.T) {
	base := filepath.Join("tmp", "x")
	date := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.Local)

	l := NewLayout(base, date, slug.Slugify("My Room!"))

	want := filepath.Join(base, "2024", "03-March", "my-room")
	assert.Equal(t, want, l.Dir)
	assert.Equal(t, filepath.Join(want, "screenshots"), l.Screenshots)
	assert.Equal(t, filepath.Join(want, "exploits"), l.Exploits)
	assert.Equal(t, filepath.Join(want, "REPORT.md"), l.Report)
}

func TestMonthDir(t *testing.T) {
	tests := []struct {
		month time.Month
		want  string
	}{
		{time.January, "01-January"},
		{time.September, "09-September"},
		{time.December, "12-December"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MonthDir(time.Date(2025, tt.month, 1, 0, 0, 0, 0, time.UTC)))
	}
}

func TestLayout_Ensure(t *testing.T) {
	base := t.TempDir()
	l := NewLayout(base, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local), "my-room")

	require.NoError(t, l.Ensure())
	// Existing folders are fine.
	require.NoError(t, l.Ensure())

	for _, dir := range []string{
		filepath.Join(base, "2024", "03-March", "my-room", "screenshots"),
		filepath.Join(base, "2024", "03-March", "my-room", "exploits"),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestLayout_EnsureFailsOnFileInTheWay(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "2024"), []byte("not a dir"), 0644))

	l := NewLayout(base, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local), "room")
	assert.Error(t, l.Ensure())
}
