package errors

import (
	"os/exec"
	"runtime"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error returns 0", nil, 0},
		{"plain error defaults to 1", errors.New("boom"), 1},
		{"wrapped sentinel defaults to 1", errors.Wrap(ErrNotFound, "resolving user32.dll"), 1},
		{"exit coder is honored", WithExitCode(errors.New("boom"), 3), 3},
		{"exit coder survives wrapping", errors.Wrap(WithExitCode(errors.New("boom"), 7), "outer"), 7},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, GetExitCode(test.err))
		})
	}
}

func TestGetExitCodeFromExecExitError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	cmd := exec.Command("sh", "-c", "exit 42")
	err := cmd.Run()
	assert.Error(t, err)
	assert.Equal(t, 42, GetExitCode(err))
}

func TestWithExitCodeNil(t *testing.T) {
	assert.NoError(t, WithExitCode(nil, 5))
}
