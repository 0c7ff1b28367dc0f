package cmd

import (
	"fmt"
	"os"

	"github.com/d-kuro/uuidw/internal/clipboard"
	"github.com/d-kuro/uuidw/internal/config"
	"github.com/d-kuro/uuidw/internal/finder"
	pkglog "github.com/d-kuro/uuidw/internal/log"
	"github.com/d-kuro/uuidw/internal/registry"
	"github.com/d-kuro/uuidw/internal/ui"
	"github.com/d-kuro/uuidw/pkg/command"
	"github.com/d-kuro/uuidw/pkg/models"
)

// CommandContext encapsulates common dependencies used across commands.
type CommandContext struct {
	Config   *models.Config
	Printer  *ui.Printer
	Registry registry.Generator
	Executor command.CommandExecutor
	finder   *finder.Finder // Lazy-loaded
}

// NewCommandContext creates a new command context from the loaded configuration.
func NewCommandContext() (*CommandContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &CommandContext{
		Config:   cfg,
		Printer:  ui.New(&cfg.UI),
		Registry: registry.New(),
		Executor: command.NewStandardExecutor(),
	}, nil
}

// GetFinder returns a finder instance, creating it if needed.
func (ctx *CommandContext) GetFinder() *finder.Finder {
	if ctx.finder == nil {
		ctx.finder = finder.New(&ctx.Config.Finder)
	}
	return ctx.finder
}

// Clipboard builds the clipboard selected by clipboard.method.
// OSC 52 sequences go to stderr so they never mix with command output.
func (ctx *CommandContext) Clipboard() (clipboard.Clipboard, error) {
	clip, err := clipboard.New(ctx.Config.Clipboard.Method, os.Stderr, ctx.Executor)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize clipboard: %w", err)
	}
	if c, ok := clip.(*clipboard.Command); ok {
		pkglog.L().Debug().Str("tool", c.Name()).Msg("using clipboard command")
	}
	return clip, nil
}

// InitialVariant resolves the variant from a flag value, falling back to
// workspace.default_variant.
func (ctx *CommandContext) InitialVariant(flag string) (registry.Variant, error) {
	if flag != "" {
		return registry.ParseVariant(flag)
	}
	v, err := registry.ParseVariant(ctx.Config.Workspace.DefaultVariant)
	if err != nil {
		return 0, fmt.Errorf("invalid workspace.default_variant: %w", err)
	}
	return v, nil
}
