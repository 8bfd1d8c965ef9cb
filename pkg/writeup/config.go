package writeup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables consulted by the CLI.
const (
	EnvTemplatePath = "TEMPLATE_PATH"
	EnvBaseDir      = "BASE_DIR"
	EnvConfig       = "WRITEUP_CONFIG"
)

// Config holds user defaults read from a YAML file, e.g.
//
//	author: R0b1
//	template: ~/writeups/template.md
//	base_dir: ~/writeups
type Config struct {
	Author   string `yaml:"author"`
	Template string `yaml:"template"`
	BaseDir  string `yaml:"base_dir"`
}

// DefaultConfigPath returns <user config dir>/writeup/config.yaml, or "" when
// the user config dir cannot be determined.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "writeup", "config.yaml")
}

// LoadConfig reads the config file at path. A missing file (or an empty path)
// is not an error and yields the zero Config.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	cfg.Template = expandHome(cfg.Template)
	cfg.BaseDir = expandHome(cfg.BaseDir)
	return cfg, nil
}

func expandHome(path string) string {
	if path != "~" && !hasHomePrefix(path) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

func hasHomePrefix(path string) bool {
	return len(path) >= 2 && path[0] == '~' && (path[1] == '/' || path[1] == filepath.Separator)
}
