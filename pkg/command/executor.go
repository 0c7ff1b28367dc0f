// Package command abstracts the external programs uuidw shells out to.
package command

import (
	"context"
	"io"
)

// CommandExecutor defines the interface for executing system commands
type CommandExecutor interface {
	// LookPath reports the resolved path of an executable
	LookPath(name string) (string, error)

	// ExecuteWithStreams runs a command with custom input/output streams
	ExecuteWithStreams(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, name string, args ...string) error
}
