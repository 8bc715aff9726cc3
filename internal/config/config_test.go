package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/collatzlab/cz/internal/constants"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.MaxPositions != 10 {
		t.Errorf("MaxPositions = %d, want 10", cfg.MaxPositions)
	}
	if cfg.Theme != "auto" {
		t.Errorf("Theme = %q, want auto", cfg.Theme)
	}
	if cfg.PageSize != 20 {
		t.Errorf("PageSize = %d, want 20", cfg.PageSize)
	}
	if cfg.LogFile != "" || cfg.DecodePaths {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(constants.EnvTheme, "")
	t.Setenv(constants.EnvLogFile, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxPositions != Default().MaxPositions {
		t.Errorf("MaxPositions = %d, want default", cfg.MaxPositions)
	}
}

func TestLoad_Override(t *testing.T) {
	t.Setenv(constants.EnvTheme, "")
	unsetEnv(t, constants.EnvLogFile)

	path := filepath.Join(t.TempDir(), "config.toml")
	content := "max_positions = 7\ndecode_paths = true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxPositions != 7 {
		t.Errorf("MaxPositions = %d, want 7", cfg.MaxPositions)
	}
	if !cfg.DecodePaths {
		t.Error("DecodePaths should be true")
	}
	// untouched keys keep their defaults
	if cfg.Theme != "auto" || cfg.PageSize != 20 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(constants.EnvTheme, "DARK")
	t.Setenv(constants.EnvLogFile, "/tmp/cz-test.log")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", cfg.Theme)
	}
	if cfg.LogFile != "/tmp/cz-test.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv(constants.EnvTheme, "")

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"out of range", "max_positions = 40\n", "MaxPositions"},
		{"bad theme", "theme = \"neon\"\n", "Theme"},
		{"page size", "page_size = 1\n", "PageSize"},
		{"unknown key", "max_position = 5\n", "unknown keys: max_position"},
		{"syntax", "max_positions = \n", "parsing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	t.Setenv(constants.EnvTheme, "")
	unsetEnv(t, constants.EnvLogFile)

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.MaxPositions = 8
	cfg.LogFile = "/var/tmp/cz.log"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestSave_RejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.MaxPositions = 0
	if err := Save(filepath.Join(t.TempDir(), "config.toml"), cfg); err == nil {
		t.Error("Save() should reject an invalid config")
	}
}

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}
