package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	apperrors "github.com/ainkit/ainviz/pkg/errors"
)

// Config holds user-level settings read from the TOML config file.
// All fields are optional; flags override config values.
type Config struct {
	// Precision is the default number of decimal places for edge weights.
	Precision int `toml:"precision"`

	// Strict enables all-members compatibility checks during level packing.
	Strict bool `toml:"strict"`

	// CacheDir overrides the XDG cache directory.
	CacheDir string `toml:"cache_dir"`

	Redis RedisConfig `toml:"redis"`
	Mongo MongoConfig `toml:"mongo"`
}

// RedisConfig selects the Redis cache backend for serve mode.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig selects the MongoDB document store for serve mode.
type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// LoadConfig reads the TOML config from path, or from the default location
// (~/.config/ainviz/config.toml) when path is empty. A missing file yields
// the zero config; a malformed file is an INVALID_CONFIG error.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return Config{}, nil
		}
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return Config{}, nil
		}
		return Config{}, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "load config %s", path)
	}
	return cfg, nil
}

// defaultConfigPath returns the XDG config file location.
func defaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}
