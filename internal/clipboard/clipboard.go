// Package clipboard copies identifiers to the system clipboard.
//
// Writes are fire-and-forget: WriteText never reports failure to the caller,
// failures are only logged at debug level.
package clipboard

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aymanbagabas/go-osc52/v2"
	pkglog "github.com/d-kuro/uuidw/internal/log"
	"github.com/d-kuro/uuidw/pkg/command"
)

// Clipboard methods accepted by New.
const (
	MethodAuto    = "auto"
	MethodOSC52   = "osc52"
	MethodCommand = "command"
	MethodNone    = "none"
)

// Clipboard is the system clipboard collaborator.
type Clipboard interface {
	WriteText(s string)
}

// New builds the clipboard for method. out receives OSC 52 sequences.
func New(method string, out io.Writer, exec command.CommandExecutor) (Clipboard, error) {
	switch strings.ToLower(method) {
	case "", MethodAuto:
		if c, ok := DetectCommand(exec); ok {
			return c, nil
		}
		return NewOSC52(out), nil
	case MethodOSC52:
		return NewOSC52(out), nil
	case MethodCommand:
		c, ok := DetectCommand(exec)
		if !ok {
			return nil, fmt.Errorf("no clipboard command found (tried %s)", strings.Join(toolNames(), ", "))
		}
		return c, nil
	case MethodNone:
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("unknown clipboard method: %s", method)
	}
}

// OSC52 writes the OSC 52 escape sequence, which terminal emulators
// (including over SSH) turn into a clipboard write.
//
// The whole sequence goes out in a single Write. Under the TUI, out is
// stderr on the same tty the renderer draws to on stdout; a frame and the
// sequence can alternate but never split each other, and the sequence
// itself prints nothing.
type OSC52 struct {
	out    io.Writer
	getenv func(string) string
}

// NewOSC52 creates an OSC52 clipboard writing to out.
func NewOSC52(out io.Writer) *OSC52 {
	return &OSC52{out: out, getenv: os.Getenv}
}

// WriteText emits the sequence, wrapped for tmux or screen when needed.
func (c *OSC52) WriteText(s string) {
	seq := osc52.New(s)
	switch {
	case c.getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(c.getenv("TERM"), "screen"):
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(c.out); err != nil {
		pkglog.L().Debug().Err(err).Msg("osc52 clipboard write failed")
	}
}

type tool struct {
	name string
	args []string
}

var tools = []tool{
	{name: "pbcopy"},
	{name: "wl-copy"},
	{name: "xclip", args: []string{"-selection", "clipboard"}},
	{name: "xsel", args: []string{"--clipboard", "--input"}},
	{name: "clip.exe"},
}

func toolNames() []string {
	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = t.name
	}
	return names
}

// Command pipes the text into a clipboard program such as pbcopy or xclip.
type Command struct {
	exec    command.CommandExecutor
	tool    tool
	timeout time.Duration
}

// DetectCommand returns a Command for the first clipboard program on PATH.
func DetectCommand(exec command.CommandExecutor) (*Command, bool) {
	for _, t := range tools {
		if _, err := exec.LookPath(t.name); err == nil {
			return &Command{exec: exec, tool: t, timeout: 2 * time.Second}, true
		}
	}
	return nil, false
}

// Name returns the program the clipboard writes through.
func (c *Command) Name() string {
	return c.tool.name
}

// WriteText runs the clipboard program with s on stdin.
func (c *Command) WriteText(s string) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	err := c.exec.ExecuteWithStreams(ctx, strings.NewReader(s), io.Discard, nil, c.tool.name, c.tool.args...)
	if err != nil {
		pkglog.L().Debug().Err(err).Str("tool", c.tool.name).Msg("clipboard command failed")
	}
}

// Nop discards every write.
type Nop struct{}

// WriteText does nothing.
func (Nop) WriteText(string) {}
