package cmd

import (
	"fmt"

	"github.com/d-kuro/uuidw/internal/registry"
	"github.com/d-kuro/uuidw/internal/workspace"
	"github.com/spf13/cobra"
)

var inspectFlags struct {
	variant string
	all     bool
}

// inspectCmd represents the inspect command.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Generate a UUID and show its decoded fields",
	Long: `Generate a UUID and show its version, layout and embedded fields.

Version 1 UUIDs show their timestamp, clock sequence and node ID;
version 7 UUIDs show their millisecond timestamp.`,
	Example: `  # Inspect a fresh UUID of the default version
  uuidw inspect

  # Inspect one UUID of every version
  uuidw inspect --all`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectFlags.variant, "variant", "V", "", "UUID version (v1, v4, v7)")
	inspectCmd.Flags().BoolVarP(&inspectFlags.all, "all", "a", false, "Inspect one UUID of every version")
	inspectCmd.MarkFlagsMutuallyExclusive("variant", "all")

	_ = inspectCmd.RegisterFlagCompletionFunc("variant", getVariantCompletions)
}

func runInspect(cmd *cobra.Command, args []string) error {
	ctx, err := NewCommandContext()
	if err != nil {
		return err
	}
	ctx.Printer.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())

	variants := registry.Variants()
	if !inspectFlags.all {
		v, err := ctx.InitialVariant(inspectFlags.variant)
		if err != nil {
			return err
		}
		variants = []registry.Variant{v}
	}

	store := workspace.NewWithVariant(ctx.Registry, variants[0])
	for i, v := range variants {
		state := store.Dispatch(workspace.SelectVariant{Variant: v})

		info, err := registry.Inspect(state.Current)
		if err != nil {
			return fmt.Errorf("failed to inspect %s UUID: %w", v, err)
		}
		if i > 0 {
			_, _ = fmt.Fprintln(cmd.OutOrStdout())
		}
		ctx.Printer.PrintInspect(state.Current, info)
	}
	return nil
}
