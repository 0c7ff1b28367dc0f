// Package models defines the core data structures used throughout the uuidw application.
package models

import "time"

// Identifier is a generated UUID together with the variant that produced it.
type Identifier struct {
	Value     string    `json:"value" yaml:"value"`                            // Canonical 36-character form
	Variant   string    `json:"variant" yaml:"variant"`                        // v1, v4 or v7
	Timestamp time.Time `json:"timestamp,omitzero" yaml:"timestamp,omitempty"` // Embedded time for v1/v7, absent for v4
}

// Config represents the application configuration.
type Config struct {
	Workspace WorkspaceConfig `mapstructure:"workspace"` // Interactive workspace configuration
	Clipboard ClipboardConfig `mapstructure:"clipboard"` // Clipboard collaborator configuration
	Output    OutputConfig    `mapstructure:"output"`    // Non-interactive output configuration
	Finder    FinderConfig    `mapstructure:"finder"`    // Fuzzy finder configuration
	UI        UIConfig        `mapstructure:"ui"`        // UI-related configuration
	Log       LogConfig       `mapstructure:"log"`       // Logging configuration
}

// WorkspaceConfig contains workspace state machine options.
type WorkspaceConfig struct {
	DefaultVariant string `mapstructure:"default_variant"` // Variant selected at mount
}

// ClipboardConfig selects how identifiers are copied.
type ClipboardConfig struct {
	Method string `mapstructure:"method"` // auto, osc52, command or none
}

// OutputConfig contains options for the gen command.
type OutputConfig struct {
	Format string `mapstructure:"format"` // text, table, csv, json or yaml
}

// FinderConfig contains fuzzy finder configuration options.
type FinderConfig struct {
	Preview bool `mapstructure:"preview"` // Enable preview window
}

// UIConfig contains UI-related configuration options.
type UIConfig struct {
	Color bool `mapstructure:"color"` // Enable colored output
	Icons bool `mapstructure:"icons"` // Enable icon display
}

// LogConfig contains logger configuration options.
type LogConfig struct {
	Level string `mapstructure:"level"` // trace, debug, info, warn, error
	File  string `mapstructure:"file"`  // Log destination while the TUI owns the terminal
}
