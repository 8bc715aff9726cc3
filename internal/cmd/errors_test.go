package cmd

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/collatzlab/cz/internal/ladder"
)

func TestSilentExitError_Error(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "exit 0"},
		{1, "exit 1"},
		{42, "exit 42"},
	}
	for _, tt := range tests {
		if got := NewSilentExit(tt.code).Error(); got != tt.want {
			t.Errorf("NewSilentExit(%d).Error() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestIsSilentExit(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantCode     int
		wantIsSilent bool
	}{
		{"nil error", nil, 0, false},
		{"silent exit code 0", NewSilentExit(0), 0, true},
		{"silent exit code 1", NewSilentExit(1), 1, true},
		{"other error", errors.New("some error"), 0, false},
		{"wrapped silent exit", fmt.Errorf("wrapped: %w", NewSilentExit(5)), 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, isSilent := IsSilentExit(tt.err)
			if isSilent != tt.wantIsSilent {
				t.Errorf("IsSilentExit(%v) isSilent = %v, want %v", tt.err, isSilent, tt.wantIsSilent)
			}
			if code != tt.wantCode {
				t.Errorf("IsSilentExit(%v) code = %d, want %d", tt.err, code, tt.wantCode)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	_, decodeErr := ladder.Decode(big.NewInt(0))
	_, seqErr := ladder.StoppingTime(^uint64(0))

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"silent", NewSilentExit(7), 7},
		{"invalid input", fmt.Errorf("decoding: %w", decodeErr), ExitInvalid},
		{"bad argument", invalidArg("exponent %q is not an integer", "x"), ExitInvalid},
		{"overflow", seqErr, ExitOverflow},
		{"plain", errors.New("disk full"), ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
