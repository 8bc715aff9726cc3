// Package constants defines shared constant values used throughout cz.
package constants

import "time"

// AppName names the binary and its config directory.
const AppName = "cz"

// File names.
const (
	// FileConfig is the user configuration file inside the config directory.
	FileConfig = "config.toml"

	// FileLockSuffix is appended to a log file path to form its lock file.
	FileLockSuffix = ".lock"
)

// Environment variables.
const (
	// EnvTheme overrides the configured CLI theme (dark, light, auto).
	EnvTheme = "CZ_THEME"

	// EnvLogFile overrides the configured run log file. Set it empty to disable logging.
	EnvLogFile = "CZ_LOG_FILE"

	// EnvNoEmoji disables decorative symbols in output.
	EnvNoEmoji = "CZ_NO_EMOJI"
)

// Timing constants.
const (
	// LogLockTimeout is how long a run log append waits for the file lock.
	LogLockTimeout = 2 * time.Second

	// LogLockRetry is the polling interval while waiting for the file lock.
	LogLockRetry = 50 * time.Millisecond
)
