package cmd

import (
	"errors"
	"fmt"

	"github.com/collatzlab/cz/internal/ladder"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitInvalid  = 2
	ExitOverflow = 3
)

// SilentExitError signals that the command should exit with a specific code
// without printing an error message. Used when the exit code is the answer,
// e.g. 'cz eval --check' on a ladder that stops early.
type SilentExitError struct {
	Code int
}

func (e *SilentExitError) Error() string {
	return fmt.Sprintf("exit %d", e.Code)
}

// NewSilentExit creates a SilentExitError with the given exit code.
func NewSilentExit(code int) *SilentExitError {
	return &SilentExitError{Code: code}
}

// IsSilentExit checks if an error is a SilentExitError and returns its code.
// Returns 0 and false if err is nil or not a SilentExitError.
func IsSilentExit(err error) (int, bool) {
	if err == nil {
		return 0, false
	}
	var se *SilentExitError
	if errors.As(err, &se) {
		return se.Code, true
	}
	return 0, false
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if code, ok := IsSilentExit(err); ok {
		return code
	}
	switch ladder.KindOf(err) {
	case ladder.KindInvalidInput:
		return ExitInvalid
	case ladder.KindOverflow:
		return ExitOverflow
	}
	return ExitFailure
}
