package command

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// StandardExecutor implements CommandExecutor using os/exec
type StandardExecutor struct{}

// NewStandardExecutor creates a new StandardExecutor
func NewStandardExecutor() *StandardExecutor {
	return &StandardExecutor{}
}

// LookPath searches PATH for the named executable
func (e *StandardExecutor) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// ExecuteWithStreams runs a command with custom input/output streams.
// When stderr is nil the command's stderr is captured and included in the error.
func (e *StandardExecutor) ExecuteWithStreams(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout

	var captured bytes.Buffer
	if stderr != nil {
		cmd.Stderr = stderr
	} else {
		cmd.Stderr = &captured
	}

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(captured.String()); msg != "" {
			return fmt.Errorf("command %s failed: %w, stderr: %s", name, err, msg)
		}
		return fmt.Errorf("command %s failed: %w", name, err)
	}
	return nil
}
