package writeup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Missing File", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Config{}, cfg)
	})

	t.Run("Empty Path", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, Config{}, cfg)
	})

	t.Run("Reads Fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "author: zero\ntemplate: /opt/tpl.md\nbase_dir: /srv/writeups\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, Config{Author: "zero", Template: "/opt/tpl.md", BaseDir: "/srv/writeups"}, cfg)
	})

	t.Run("Expands Home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv("USERPROFILE", home)

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("base_dir: ~/ctf\n"), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "ctf"), cfg.BaseDir)
	})

	t.Run("Invalid YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("author: [unclosed\n"), 0644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}
