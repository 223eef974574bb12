package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/boxflow/pkg/errors"
)

// configFile is the file name looked up in configDir.
const configFile = "config.toml"

// Config holds settings read from the TOML config file. Flags override
// every value here.
//
//	cache = "redis://localhost:6379/0"
//	cache_prefix = "staging:"
//	verbose = true
//	width = 1280
//	height = 720
//	scale = 2
//
//	[server]
//	addr = ":9090"
//	max_body_bytes = 2097152
type Config struct {
	Cache       string       `toml:"cache"`
	CachePrefix string       `toml:"cache_prefix"`
	Verbose     bool         `toml:"verbose"`
	Width       float64      `toml:"width"`
	Height      float64      `toml:"height"`
	Scale       float64      `toml:"scale"`
	Server      ServerConfig `toml:"server"`

	// path is the file the values came from, empty when none was found.
	path string
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr         string `toml:"addr"`
	MaxBodyBytes int64  `toml:"max_body_bytes"`
}

// loadConfig reads the config file at path. An empty path selects the default
// location, which may be absent; an explicit path must exist.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return Config{}, nil
		}
		path = filepath.Join(dir, configFile)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return Config{}, nil
		}
		if os.IsNotExist(err) {
			return Config{}, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
		}
		return Config{}, fmt.Errorf("stat config: %w", err)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s: %v", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if cfg.Width < 0 || cfg.Height < 0 || cfg.Scale < 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "config %s: sizes must not be negative", path)
	}
	cfg.path = path
	return cfg, nil
}
