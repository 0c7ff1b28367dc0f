package cmd

import (
	"fmt"
	"strings"

	"github.com/d-kuro/uuidw/internal/registry"
	"github.com/d-kuro/uuidw/internal/ui"
	"github.com/d-kuro/uuidw/internal/workspace"
	"github.com/d-kuro/uuidw/pkg/models"
	"github.com/d-kuro/uuidw/pkg/utils"
	"github.com/spf13/cobra"
)

var genFlags struct {
	variant string
	count   string
	output  string
	copy    bool
}

// genCmd represents the gen command.
var genCmd = &cobra.Command{
	Use:     "gen",
	Aliases: []string{"g"},
	Short:   "Generate UUIDs",
	Long: `Generate UUIDs without opening the workspace.

Without -n a single UUID is printed. With -n the given number of UUIDs
(1-99) is generated as one batch, in generation order.`,
	Example: `  # Generate a version 4 UUID
  uuidw gen

  # Generate ten version 7 UUIDs as a table
  uuidw gen -V v7 -n 10 -o table

  # Generate a UUID and copy it to the clipboard
  uuidw gen --copy`,
	Args: cobra.NoArgs,
	RunE: runGen,
}

func init() {
	rootCmd.AddCommand(genCmd)

	genCmd.Flags().StringVarP(&genFlags.variant, "variant", "V", "", "UUID version (v1, v4, v7)")
	genCmd.Flags().StringVarP(&genFlags.count, "count", "n", "", "Number of UUIDs to generate (1-99)")
	genCmd.Flags().StringVarP(&genFlags.output, "output", "o", "", "Output format (text, table, csv, json, yaml)")
	genCmd.Flags().BoolVar(&genFlags.copy, "copy", false, "Copy the generated UUIDs to the clipboard")

	_ = genCmd.RegisterFlagCompletionFunc("variant", getVariantCompletions)
	_ = genCmd.RegisterFlagCompletionFunc("output", getFormatCompletions)
}

func runGen(cmd *cobra.Command, args []string) error {
	ctx, err := NewCommandContext()
	if err != nil {
		return err
	}

	variant, err := ctx.InitialVariant(genFlags.variant)
	if err != nil {
		return err
	}

	format, err := outputFormat(genFlags.output, ctx.Config.Output.Format)
	if err != nil {
		return err
	}

	values, err := generate(ctx.Registry, variant, genFlags.count)
	if err != nil {
		return err
	}

	ctx.Printer.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err := ctx.Printer.PrintIdentifiers(toIdentifiers(values, variant), format); err != nil {
		return err
	}

	if genFlags.copy {
		clip, err := ctx.Clipboard()
		if err != nil {
			return err
		}
		clip.WriteText(strings.Join(values, "\n"))
		ctx.Printer.PrintSuccess(fmt.Sprintf("Copied %d UUID(s) to clipboard", len(values)))
	}
	return nil
}

// generate drives a headless workspace. An empty count yields the
// workspace's current identifier, otherwise a bulk batch.
func generate(gen registry.Generator, variant registry.Variant, count string) ([]string, error) {
	store := workspace.NewWithVariant(gen, variant)

	if count == "" {
		return []string{store.State().Current}, nil
	}

	n, err := workspace.ParseCount(count)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %q", workspace.ErrInvalidCount, count)
	}

	store.Dispatch(workspace.UpdateBulkCountText{Raw: count})
	return store.Dispatch(workspace.GenerateBulk{}).Bulk, nil
}

func toIdentifiers(values []string, variant registry.Variant) []models.Identifier {
	return utils.Map(values, func(v string) models.Identifier {
		ts, _ := registry.Timestamp(v)
		return models.Identifier{Value: v, Variant: variant.String(), Timestamp: ts}
	})
}

// outputFormat picks the flag value over the configured default.
func outputFormat(flag, configured string) (string, error) {
	format := flag
	if format == "" {
		format = configured
	}
	if format == "" {
		format = ui.FormatText
	}
	if !ui.ValidFormat(format) {
		return "", fmt.Errorf("unknown output format: %s (valid: %v)", format, ui.Formats)
	}
	return format, nil
}
