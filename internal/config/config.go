// internal/config/config.go

package config

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Config mirrors the subset of the build configuration file the
// orchestrator itself cares about. The downstream task runner consumes the
// full file; we only decode enough to describe it (status output) and to
// sanity-check a template before copying it.
type Config struct {
	Plat      string   `toml:"plat"`
	Arch      string   `toml:"arch"`
	LogLevel  string   `toml:"log_level"`
	VMConfigs []string `toml:"vmconfigs"`
}

// Load reads and decodes a configuration file. Unknown keys are ignored;
// the file belongs to the external executor, not to us.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal config %s: %w", path, err)
	}
	return &c, nil
}
