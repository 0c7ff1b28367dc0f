// Package cmd provides CLI commands for the uuidw application.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/d-kuro/uuidw/internal/config"
	pkglog "github.com/d-kuro/uuidw/internal/log"
	"github.com/d-kuro/uuidw/internal/tui"
	"github.com/d-kuro/uuidw/internal/ui"
	"github.com/d-kuro/uuidw/internal/workspace"
	"github.com/d-kuro/uuidw/pkg/models"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	rootVariant string
	debug       bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "uuidw",
	Short: "UUID workspace",
	Long: `uuidw generates version 1, 4 and 7 UUIDs.

Run without a subcommand to open the interactive workspace: pick a
version, regenerate, copy the current UUID to the clipboard and
generate up to 99 UUIDs in bulk. Use 'uuidw gen' for scripting.`,
	Example: `  # Open the workspace
  uuidw

  # Open the workspace with version 7 selected
  uuidw -V v7`,
	Version:           fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	Args:              cobra.NoArgs,
	RunE:              runWorkspace,
	SilenceUsage:      true,
	SilenceErrors:     true,
	ValidArgsFunction: cobra.NoFileCompletions,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// execute runs the command tree with args and reports a failure through
// the printer, so errors follow ui.icons and ui.color like other output.
func execute(args []string, out, errOut io.Writer) error {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	err := rootCmd.Execute()
	if err != nil {
		uiConfig := models.UIConfig{}
		if cfg, lerr := config.Load(); lerr == nil {
			uiConfig = cfg.UI
		}
		printer := ui.New(&uiConfig)
		printer.SetOutput(out, errOut)
		printer.PrintError(err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log debug output to stderr")
	rootCmd.Flags().StringVarP(&rootVariant, "variant", "V", "", "UUID version to select at start (v1, v4, v7)")
	_ = rootCmd.RegisterFlagCompletionFunc("variant", getVariantCompletions)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	level := "warn"
	if cfg, err := config.Load(); err == nil {
		level = cfg.Log.Level
	}
	pkglog.Init(pkglog.Config{Level: logLevel(level)})
}

// logLevel lets --debug override the configured level.
func logLevel(configured string) string {
	if debug {
		return "debug"
	}
	return configured
}

func runWorkspace(cmd *cobra.Command, args []string) error {
	ctx, err := NewCommandContext()
	if err != nil {
		return err
	}

	variant, err := ctx.InitialVariant(rootVariant)
	if err != nil {
		return err
	}

	// The TUI owns the terminal; logs go to log.file or nowhere.
	logOut, err := pkglog.OpenFile(ctx.Config.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = logOut.Close() }()
	pkglog.Init(pkglog.Config{Level: logLevel(ctx.Config.Log.Level), Output: logOut})

	clip, err := ctx.Clipboard()
	if err != nil {
		return err
	}

	store := workspace.NewWithVariant(ctx.Registry, variant)
	pkglog.L().Info().Stringer("variant", variant).Msg("workspace mounted")

	return tui.RunWorkspace(store, clip, tui.Options{
		Color: ctx.Config.UI.Color,
		Icons: ctx.Config.UI.Icons,
	})
}
