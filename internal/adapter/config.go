package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const configFileName = "bannerfmt.toml"

// Config is the optional project configuration. Command-line flags
// always take precedence over values found here.
type Config struct {
	Check   CheckConfig   `toml:"check"`
	Reports ReportsConfig `toml:"reports"`
}

// CheckConfig configures scanning defaults.
type CheckConfig struct {
	Exclude []string `toml:"exclude"`
	Workers int      `toml:"workers"`
}

// ReportsConfig configures where scan reports are stored.
type ReportsConfig struct {
	Dir string `toml:"dir"`
}

// LoadConfig searches startDir and its parents for a bannerfmt.toml and
// decodes it. found is false when no config file exists, which is not
// an error.
func LoadConfig(startDir string) (cfg Config, found bool, err error) {
	path, ok, err := findConfigFile(startDir)
	if err != nil || !ok {
		return Config{}, ok, err
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, true, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	return cfg, true, nil
}

func findConfigFile(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return "", false, nil
}
