// Package ui provides user interface utilities for the uuidw application.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/d-kuro/uuidw/internal/registry"
	"github.com/d-kuro/uuidw/internal/table"
	"github.com/d-kuro/uuidw/pkg/models"
	"github.com/d-kuro/uuidw/pkg/utils"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by PrintIdentifiers.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats lists every supported output format.
var Formats = []string{FormatText, FormatTable, FormatCSV, FormatJSON, FormatYAML}

// ValidFormat reports whether format is supported.
func ValidFormat(format string) bool {
	return slices.Contains(Formats, format)
}

// Printer handles output formatting.
type Printer struct {
	useColor bool
	useIcons bool
	out      io.Writer
	errOut   io.Writer
}

// New creates a new Printer instance.
func New(config *models.UIConfig) *Printer {
	return &Printer{
		useColor: config.Color,
		useIcons: config.Icons,
		out:      os.Stdout,
		errOut:   os.Stderr,
	}
}

// SetOutput redirects standard and error output, mainly for tests.
func (p *Printer) SetOutput(out, errOut io.Writer) {
	p.out = out
	p.errOut = errOut
}

// PrintIdentifiers writes ids in the given format.
func (p *Printer) PrintIdentifiers(ids []models.Identifier, format string) error {
	switch format {
	case FormatText, "":
		for _, id := range ids {
			if _, err := fmt.Fprintln(p.out, id.Value); err != nil {
				return err
			}
		}
		return nil

	case FormatTable:
		return p.identifierTable(ids).Println()

	case FormatCSV:
		return p.identifierTable(ids).WriteCSV()

	case FormatJSON:
		encoder := json.NewEncoder(p.out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(ids)

	case FormatYAML:
		encoder := yaml.NewEncoder(p.out)
		encoder.SetIndent(2)
		if err := encoder.Encode(ids); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return encoder.Close()

	default:
		return fmt.Errorf("unknown output format: %s (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

func (p *Printer) identifierTable(ids []models.Identifier) *table.Builder {
	style := table.PlainStyle()
	if p.useColor {
		style = table.DefaultStyle()
	}

	b := table.NewWithStyle(style).SetOutput(p.out).Headers("#", "UUID", "VERSION", "TIMESTAMP")
	for i, id := range ids {
		b.Row(strconv.Itoa(i+1), id.Value, id.Variant, p.formatTime(id.Timestamp))
	}
	return b
}

// PrintInspect displays the decoded fields of an identifier.
func (p *Printer) PrintInspect(id string, info registry.Info) {
	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	_, _ = fmt.Fprintf(w, "UUID:\t%s\n", id)
	_, _ = fmt.Fprintf(w, "Version:\t%d\n", info.Version)
	_, _ = fmt.Fprintf(w, "Layout:\t%s\n", info.Layout)
	if info.HasTime {
		_, _ = fmt.Fprintf(w, "Timestamp:\t%s\n", p.formatTime(info.Time))
	}
	if info.HasNodeID {
		_, _ = fmt.Fprintf(w, "Clock sequence:\t%d\n", info.ClockSeq)
		_, _ = fmt.Fprintf(w, "Node:\t%s\n", info.Node)
	}
}

// PrintConfig displays configuration in a formatted manner, sorted by key.
func (p *Printer) PrintConfig(settings map[string]any) {
	var lines []string
	p.collectConfig("", settings, &lines)
	slices.Sort(lines)
	for _, line := range lines {
		_, _ = fmt.Fprintln(p.out, line)
	}
}

// PrintConfigFile prints the configuration file location.
func (p *Printer) PrintConfigFile(path string) {
	if path == "" {
		return
	}
	_, _ = fmt.Fprintf(p.out, "# %s\n", utils.TildePath(path))
}

// PrintError displays an error message.
func (p *Printer) PrintError(err error) {
	_, _ = fmt.Fprintf(p.errOut, "Error: %v\n", err)
}

// PrintSuccess displays a success message.
func (p *Printer) PrintSuccess(message string) {
	if p.useIcons {
		message = "✔ " + message
	}
	_, _ = fmt.Fprintln(p.errOut, message)
}

// formatTime formats an embedded timestamp for display.
func (p *Printer) formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// collectConfig recursively flattens configuration values.
func (p *Printer) collectConfig(prefix string, data any, lines *[]string) {
	switch v := data.(type) {
	case map[string]any:
		for key, value := range v {
			newPrefix := key
			if prefix != "" {
				newPrefix = prefix + "." + key
			}
			p.collectConfig(newPrefix, value, lines)
		}
	default:
		*lines = append(*lines, fmt.Sprintf("%s = %v", prefix, v))
	}
}
