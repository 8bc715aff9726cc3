// Package config loads cz settings from TOML.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/collatzlab/cz/internal/constants"
	"github.com/collatzlab/cz/internal/util"
)

//go:embed defaults.toml
var defaultsTOML []byte

// Config holds the user-tunable settings.
type Config struct {
	// MaxPositions caps the exponent count of a search. The search itself has
	// no limit; this is where factorial growth is kept in check.
	MaxPositions int `toml:"max_positions" validate:"min=1,max=20"`

	// Theme is the CLI colour scheme (auto, dark, light).
	Theme string `toml:"theme" validate:"oneof=auto dark light"`

	// LogFile receives run events when non-empty.
	LogFile string `toml:"log_file"`

	// DecodePaths decodes each search row's node back into a ladder path.
	DecodePaths bool `toml:"decode_paths"`

	// PageSize is the number of rows the browser shows at once.
	PageSize int `toml:"page_size" validate:"min=5,max=200"`
}

var validate = validator.New()

// Default returns the built-in configuration.
func Default() *Config {
	var cfg Config
	if _, err := toml.NewDecoder(bytes.NewReader(defaultsTOML)).Decode(&cfg); err != nil {
		panic(fmt.Sprintf("parsing built-in defaults: %v", err))
	}
	return &cfg
}

// DefaultPath returns $XDG_CONFIG_HOME/cz/config.toml (or the platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, constants.AppName, constants.FileConfig), nil
}

// Load layers the file at path over the built-in defaults and then applies
// environment overrides. An empty path means DefaultPath. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if err := loadOverride(path, cfg); err != nil {
		return nil, err
	}
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// loadOverride decodes the file at path on top of cfg.
func loadOverride(path string, cfg *Config) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is chosen by the user
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// applyEnv applies CZ_* environment overrides.
func applyEnv(cfg *Config) {
	if v := os.Getenv(constants.EnvTheme); v != "" {
		cfg.Theme = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv(constants.EnvLogFile); ok {
		cfg.LogFile = v
	}
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q (%s=%v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Save writes cfg to path as TOML, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0644)
}
