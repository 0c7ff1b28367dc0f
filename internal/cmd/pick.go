package cmd

import (
	"fmt"

	"github.com/d-kuro/uuidw/internal/clipboard"
	"github.com/d-kuro/uuidw/internal/finder"
	"github.com/spf13/cobra"
)

var pickFlags struct {
	variant string
	count   string
}

// pickCmd represents the pick command.
var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a UUID from a generated batch",
	Long: `Generate a batch of UUIDs and choose one with a fuzzy finder.

The chosen UUID is printed to standard output and copied to the
clipboard (set clipboard.method to none to skip). The preview window shows
the decoded version, layout and, for time-based versions, the timestamp.`,
	Example: `  # Pick from 20 version 4 UUIDs
  uuidw pick

  # Pick from 50 version 7 UUIDs
  uuidw pick -V v7 -n 50`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)

	pickCmd.Flags().StringVarP(&pickFlags.variant, "variant", "V", "", "UUID version (v1, v4, v7)")
	pickCmd.Flags().StringVarP(&pickFlags.count, "count", "n", "20", "Number of UUIDs to choose from (1-99)")

	_ = pickCmd.RegisterFlagCompletionFunc("variant", getVariantCompletions)
}

func runPick(cmd *cobra.Command, args []string) error {
	ctx, err := NewCommandContext()
	if err != nil {
		return err
	}

	variant, err := ctx.InitialVariant(pickFlags.variant)
	if err != nil {
		return err
	}

	values, err := generate(ctx.Registry, variant, pickFlags.count)
	if err != nil {
		return err
	}

	selected, err := ctx.GetFinder().SelectIdentifier(values)
	if err != nil {
		if finder.IsAbort(err) {
			return nil
		}
		return fmt.Errorf("failed to select UUID: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), selected)

	clip, err := ctx.Clipboard()
	if err != nil {
		return err
	}
	clip.WriteText(selected)
	if _, ok := clip.(clipboard.Nop); !ok {
		ctx.Printer.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
		ctx.Printer.PrintSuccess("Copied to clipboard")
	}
	return nil
}
