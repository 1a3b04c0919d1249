package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables read as configuration. A double
// underscore separates nested keys: PATHMAN_UPDATE__OWNER sets update.owner.
const EnvPrefix = "PATHMAN_"

// Config holds the settings that shape a pathman run.
type Config struct {
	Verbosity     int    `koanf:"verbosity"`
	NoColor       bool   `koanf:"no_color"`
	Batch         bool   `koanf:"batch"`
	ReportMissing bool   `koanf:"report_missing"`
	Store         Store  `koanf:"store"`
	Update        Update `koanf:"update"`
}

// Store selects where PATH values live. An empty File means the registry.
type Store struct {
	File string `koanf:"file"`
}

// Update names the GitHub repository checked by `version --check`.
type Update struct {
	Owner      string `koanf:"owner"`
	Repository string `koanf:"repository"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"verbosity":         0,
		"no_color":          false,
		"batch":             false,
		"report_missing":    true,
		"store.file":        "",
		"update.owner":      "pathman-cli",
		"update.repository": "pathman",
	}
}

// DefaultPath is <XDG_CONFIG_HOME>/pathman/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "pathman", "config.yaml")
}

// Load layers defaults, the YAML file at path (skipped when it does not
// exist) and PATHMAN_* environment variables. An empty path means DefaultPath.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return &cfg, nil
}
