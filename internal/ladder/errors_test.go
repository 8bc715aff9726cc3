package ladder

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"kind only", &Error{Kind: KindOverflow}, "overflow"},
		{"op and message", &Error{Kind: KindInvalidInput, Op: "decode", Msg: "node must be positive"}, "decode: node must be positive"},
		{"op value message", &Error{Kind: KindInvalidInput, Op: "decode", Value: "-3", Msg: "node must be positive"}, "decode -3: node must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", invalidInput("search", 0, "base stem must be positive"))

	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, errors.Is(err, ErrOverflow))
	assert.Equal(t, KindInvalidInput, KindOf(err))
	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))

	var le *Error
	assert.True(t, errors.As(err, &le))
	assert.Equal(t, "search", le.Op)
	assert.Equal(t, "0", le.Value)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "completed", Completed.String())
	assert.Equal(t, "branchless-stem", BranchlessStem.String())
	assert.Equal(t, "ends-at-r", EndsAtR.String())
	assert.Equal(t, "unknown", Outcome(42).String())
	assert.True(t, EndsAtR.IsStemClass())
	assert.False(t, InvalidStop.IsStemClass())
	assert.Equal(t, "invalid", StepInvalid.String())
}
