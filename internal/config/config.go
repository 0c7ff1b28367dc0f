// Package config provides configuration management for the uuidw application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/d-kuro/uuidw/pkg/models"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	envPrefix  = "UUIDW"
)

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home is not available
		return filepath.Join(".", ".config", "uuidw")
	}
	return filepath.Join(home, ".config", "uuidw")
}

// setDefaults registers the default value of every configuration key.
func setDefaults() {
	viper.SetDefault("workspace.default_variant", "v4")
	viper.SetDefault("clipboard.method", "auto")
	viper.SetDefault("output.format", "text")
	viper.SetDefault("finder.preview", true)
	viper.SetDefault("ui.color", true)
	viper.SetDefault("ui.icons", true)
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.file", "")
}

// Init initializes the configuration system, creating default config if needed.
func Init() error {
	configDir := getConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigName(configName)
	viper.SetConfigType(configType)
	viper.AddConfigPath(configDir)

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			configPath := filepath.Join(configDir, configName+"."+configType)
			if err := viper.SafeWriteConfig(); err != nil {
				if err := viper.WriteConfigAs(configPath); err != nil {
					return fmt.Errorf("failed to create config file: %w", err)
				}
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// Load loads and returns the current configuration.
func Load() (*models.Config, error) {
	var cfg models.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Log.File = expandPath(cfg.Log.File)

	return &cfg, nil
}

// Set sets a configuration value by key.
func Set(key string, value any) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}

// GetValue retrieves a configuration value by key.
func GetValue(key string) any {
	return viper.Get(key)
}

// AllSettings returns all configuration settings.
func AllSettings() map[string]any {
	return viper.AllSettings()
}

// Keys returns every known configuration key, for shell completion.
func Keys() []string {
	return viper.AllKeys()
}

// ConfigFile returns the path of the configuration file in use.
func ConfigFile() string {
	return viper.ConfigFileUsed()
}

// expandPath expands environment variables and a leading ~/.
func expandPath(path string) string {
	path = os.ExpandEnv(path)
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	return path
}
