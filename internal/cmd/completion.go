package cmd

import (
	"fmt"
	"strings"

	"github.com/d-kuro/uuidw/internal/registry"
	"github.com/d-kuro/uuidw/internal/ui"
	"github.com/d-kuro/uuidw/pkg/utils"
	"github.com/spf13/cobra"
)

// completionCmd represents the completion command.
var completionCmd = &cobra.Command{
	Use:   "completion <bash|zsh|fish|powershell>",
	Short: "Generate shell completion script",
	Long: `Generate the autocompletion script for the specified shell.

Load it in the current session, or write it to your shell's
completion directory to load it for every session.`,
	Example: `  # bash
  source <(uuidw completion bash)

  # zsh
  uuidw completion zsh > "${fpath[1]}/_uuidw"

  # fish
  uuidw completion fish > ~/.config/fish/completions/uuidw.fish`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	RunE:      runCompletion,
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

func runCompletion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	switch args[0] {
	case "bash":
		return rootCmd.GenBashCompletionV2(out, true)
	case "zsh":
		return rootCmd.GenZshCompletion(out)
	case "fish":
		return rootCmd.GenFishCompletion(out, true)
	case "powershell":
		return rootCmd.GenPowerShellCompletionWithDesc(out)
	default:
		return fmt.Errorf("unsupported shell: %s", args[0])
	}
}

// getVariantCompletions returns UUID version names for shell completion
func getVariantCompletions(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	variants := utils.Filter(registry.Variants(), func(v registry.Variant) bool {
		return strings.HasPrefix(v.String(), strings.ToLower(toComplete))
	})
	completions := utils.Map(variants, func(v registry.Variant) string {
		return fmt.Sprintf("%s\t%s", v, v.Label())
	})
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// getFormatCompletions returns output format names for shell completion
func getFormatCompletions(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	formats := utils.Filter(ui.Formats, func(f string) bool {
		return strings.HasPrefix(f, toComplete)
	})
	return formats, cobra.ShellCompDirectiveNoFileComp
}

// getConfigKeyCompletions returns config key names for shell completion
func getConfigKeyCompletions(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	keys := []struct {
		name string
		desc string
	}{
		{"workspace.default_variant", "UUID version selected at start"},
		{"clipboard.method", "Clipboard method (auto, osc52, command, none)"},
		{"output.format", "Default output format for gen"},
		{"finder.preview", "Enable preview window"},
		{"ui.color", "Enable colored output"},
		{"ui.icons", "Enable icon display"},
		{"log.level", "Log level (debug, info, warn, error, off)"},
		{"log.file", "Log file used while the workspace is open"},
	}

	var completions []string
	for _, key := range keys {
		if strings.HasPrefix(key.name, toComplete) {
			completions = append(completions, fmt.Sprintf("%s\t%s", key.name, key.desc))
		}
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}
