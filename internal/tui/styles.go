package tui

import "github.com/charmbracelet/lipgloss"

// Simplified color palette - minimal and readable
var (
	primaryColor = lipgloss.Color("#0EA5E9") // Blue
	successColor = lipgloss.Color("#22C55E") // Green
	accentColor  = lipgloss.Color("#F59E0B") // Orange
	mutedColor   = lipgloss.Color("#64748B") // Gray
	valueBgColor = lipgloss.Color("#000000")
	valueFgColor = lipgloss.Color("#F0F8FF")
)

type styles struct {
	label       lipgloss.Style
	value       lipgloss.Style
	panel       lipgloss.Style
	legend      lipgloss.Style
	option      lipgloss.Style
	selected    lipgloss.Style
	input       lipgloss.Style
	inputFocus  lipgloss.Style
	placeholder lipgloss.Style
	item        lipgloss.Style
	detail      lipgloss.Style
	status      lipgloss.Style
	help        lipgloss.Style
	footer      lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{
			label:       plain,
			value:       plain,
			panel:       plain.Padding(1, 1),
			legend:      plain.MarginTop(1),
			option:      plain.PaddingLeft(2),
			selected:    plain.PaddingLeft(2),
			input:       plain,
			inputFocus:  plain,
			placeholder: plain,
			item:        plain.PaddingLeft(1),
			detail:      plain,
			status:      plain,
			help:        plain,
			footer:      plain.MarginTop(1),
		}
	}

	return styles{
		label: lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true),
		value: lipgloss.NewStyle().
			Background(valueBgColor).
			Foreground(valueFgColor).
			Padding(0, 1),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1),
		legend: lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			MarginTop(1),
		option: lipgloss.NewStyle().
			PaddingLeft(2),
		selected: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(accentColor).
			Bold(true),
		input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(mutedColor).
			Width(4),
		inputFocus: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(primaryColor).
			Width(4),
		placeholder: lipgloss.NewStyle().
			Foreground(mutedColor),
		item: lipgloss.NewStyle().
			PaddingLeft(1),
		detail: lipgloss.NewStyle().
			Foreground(mutedColor),
		status: lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true),
		help: lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true),
		footer: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(mutedColor).
			MarginTop(1),
	}
}
