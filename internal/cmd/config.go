package cmd

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/d-kuro/uuidw/internal/clipboard"
	"github.com/d-kuro/uuidw/internal/config"
	"github.com/d-kuro/uuidw/internal/registry"
	"github.com/d-kuro/uuidw/internal/ui"
	"github.com/spf13/cobra"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long:  `Manage uuidw configuration settings.`,
}

// configListCmd represents the config list command.
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show configuration",
	Long:  `Display all current configuration settings.`,
	Example: `  # Show all configuration
  uuidw config list`,
	RunE: runConfigList,
}

// configSetCmd represents the config set command.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set configuration value",
	Long: `Set a configuration value.

Configuration keys follow a dot notation format (e.g., workspace.default_variant).`,
	Example: `  # Start the workspace on version 7
  uuidw config set workspace.default_variant v7

  # Always copy with OSC 52
  uuidw config set clipboard.method osc52

  # Enable/disable colored output
  uuidw config set ui.color true`,
	Args:              cobra.ExactArgs(2),
	RunE:              runConfigSet,
	ValidArgsFunction: getConfigKeyCompletions,
}

// configGetCmd represents the config get command.
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get configuration value",
	Long:  `Get a specific configuration value.`,
	Example: `  # Get the default UUID version
  uuidw config get workspace.default_variant`,
	Args:              cobra.ExactArgs(1),
	RunE:              runConfigGet,
	ValidArgsFunction: getConfigKeyCompletions,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
}

func runConfigList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	printer := ui.New(&cfg.UI)
	printer.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	printer.PrintConfigFile(config.ConfigFile())
	printer.PrintConfig(config.AllSettings())

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	typedValue := parseConfigValue(args[1])

	if !slices.Contains(config.Keys(), key) {
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	if err := validateConfigValue(key, typedValue); err != nil {
		return err
	}

	if err := config.Set(key, typedValue); err != nil {
		return fmt.Errorf("failed to set config: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, typedValue)
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := config.GetValue(key)

	if value == nil {
		return fmt.Errorf("configuration key not found: %s", key)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

// parseConfigValue converts string values to appropriate types.
func parseConfigValue(value string) any {
	switch value {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	return value
}

// validateConfigValue rejects values the commands would refuse later.
func validateConfigValue(key string, value any) error {
	s := fmt.Sprint(value)
	switch key {
	case "workspace.default_variant":
		if _, err := registry.ParseVariant(s); err != nil {
			return err
		}
	case "output.format":
		if !ui.ValidFormat(s) {
			return fmt.Errorf("unknown output format: %s (valid: %v)", s, ui.Formats)
		}
	case "clipboard.method":
		switch s {
		case clipboard.MethodAuto, clipboard.MethodOSC52, clipboard.MethodCommand, clipboard.MethodNone:
		default:
			return fmt.Errorf("unknown clipboard method: %s (valid: auto, osc52, command, none)", s)
		}
	}
	return nil
}
