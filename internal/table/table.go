// Package table renders identifier listings with lipgloss/table.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Builder provides a convenient interface for creating styled tables using lipgloss/table
type Builder struct {
	headers []string
	rows    [][]string
	style   Style
	output  io.Writer
}

// Style defines the visual styling options for tables
type Style struct {
	Border lipgloss.Border
	// HeaderStyle applies styling to header row
	HeaderStyle lipgloss.Style
	// MarginLeft sets left margin
	MarginLeft int
	// PaddingLeft and PaddingRight pad every cell
	PaddingLeft  int
	PaddingRight int
}

// DefaultStyle returns a rounded, bold-header style
func DefaultStyle() Style {
	return Style{
		Border:       lipgloss.RoundedBorder(),
		HeaderStyle:  lipgloss.NewStyle().Bold(true),
		MarginLeft:   0,
		PaddingLeft:  1,
		PaddingRight: 1,
	}
}

// PlainStyle returns an unstyled style for output that is not a terminal
func PlainStyle() Style {
	return Style{
		Border:       lipgloss.NormalBorder(),
		HeaderStyle:  lipgloss.NewStyle(),
		PaddingLeft:  1,
		PaddingRight: 1,
	}
}

// New creates a new table builder with default styling
func New() *Builder {
	return NewWithStyle(DefaultStyle())
}

// NewWithStyle creates a new table builder with custom styling
func NewWithStyle(style Style) *Builder {
	return &Builder{
		style:  style,
		output: os.Stdout,
	}
}

// SetOutput sets the output writer for the table
func (b *Builder) SetOutput(w io.Writer) *Builder {
	b.output = w
	return b
}

// Headers sets the table headers
func (b *Builder) Headers(headers ...string) *Builder {
	b.headers = append([]string(nil), headers...)
	return b
}

// Row adds a data row to the table
func (b *Builder) Row(columns ...string) *Builder {
	b.rows = append(b.rows, append([]string(nil), columns...))
	return b
}

// RowCount returns the number of data rows in the table
func (b *Builder) RowCount() int {
	return len(b.rows)
}

// Build creates and returns the formatted table as a string
func (b *Builder) Build() string {
	headerStyle := b.style.HeaderStyle.
		PaddingLeft(b.style.PaddingLeft).
		PaddingRight(b.style.PaddingRight)
	cellStyle := lipgloss.NewStyle().
		PaddingLeft(b.style.PaddingLeft).
		PaddingRight(b.style.PaddingRight)

	t := table.New().
		Border(b.style.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	if len(b.headers) > 0 {
		t.Headers(b.headers...)
	}
	for _, row := range b.rows {
		t.Row(row...)
	}

	return lipgloss.NewStyle().
		MarginLeft(b.style.MarginLeft).
		Render(t.Render())
}

// Println writes the table followed by a newline to the configured output writer
func (b *Builder) Println() error {
	_, err := fmt.Fprintln(b.output, b.Build())
	return err
}

// WriteCSV writes the table data in CSV format to the output writer
func (b *Builder) WriteCSV() error {
	w := csv.NewWriter(b.output)
	if len(b.headers) > 0 {
		if err := w.Write(b.headers); err != nil {
			return err
		}
	}
	if err := w.WriteAll(b.rows); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
