// Package tui implements the interactive UUID workspace.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/d-kuro/uuidw/internal/clipboard"
	"github.com/d-kuro/uuidw/internal/registry"
	"github.com/d-kuro/uuidw/internal/workspace"
	"github.com/mattn/go-runewidth"
)

const (
	statusTimeout = 2 * time.Second
	countHint     = "10"
	// lines used by everything except the bulk list
	chromeLines = 18
)

type focus int

const (
	focusVariants focus = iota
	focusCount
)

type copiedMsg struct {
	seq int
}

type clearStatusMsg struct {
	seq int
}

// Options configures the workspace model.
type Options struct {
	Color bool
	Icons bool
}

// WorkspaceModel represents the TUI model for the UUID workspace
type WorkspaceModel struct {
	store       *workspace.Store
	state       workspace.State
	unsubscribe func()
	clip        clipboard.Clipboard
	styles      styles
	icons       bool
	focus       focus
	status      string
	statusSeq   int
	width       int
	height      int
}

// NewWorkspaceModel creates a model that renders store and dispatches to it.
func NewWorkspaceModel(store *workspace.Store, clip clipboard.Clipboard, opts Options) *WorkspaceModel {
	m := &WorkspaceModel{
		store:  store,
		state:  store.State(),
		clip:   clip,
		styles: newStyles(opts.Color),
		icons:  opts.Icons,
	}
	m.unsubscribe = store.Subscribe(func(s workspace.State) {
		m.state = s
	})
	return m
}

// Init initializes the model
func (m *WorkspaceModel) Init() tea.Cmd {
	return nil
}

// Update handles input and updates the model
func (m *WorkspaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case copiedMsg:
		if msg.seq == m.statusSeq {
			m.status = "Copied to clipboard"
			return m, tea.Tick(statusTimeout, func(time.Time) tea.Msg {
				return clearStatusMsg{seq: msg.seq}
			})
		}

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		if m.focus == focusCount {
			return m.updateCount(msg)
		}
		return m.updateVariants(msg)
	}

	return m, nil
}

func (m *WorkspaceModel) updateVariants(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m.quit()

	case "1":
		m.store.Dispatch(workspace.SelectVariant{Variant: registry.V1})
	case "2", "4":
		m.store.Dispatch(workspace.SelectVariant{Variant: registry.V4})
	case "3", "7":
		m.store.Dispatch(workspace.SelectVariant{Variant: registry.V7})

	case "left", "h", "up", "k":
		m.store.Dispatch(workspace.SelectVariant{Variant: m.adjacentVariant(-1)})
	case "right", "l", "down", "j":
		m.store.Dispatch(workspace.SelectVariant{Variant: m.adjacentVariant(1)})

	case "g", "enter", " ":
		m.store.Dispatch(workspace.RegenerateSingle{})

	case "c", "y":
		return m, m.copyCurrent()

	case "tab", "/", "n":
		m.focus = focusCount
	}
	return m, nil
}

func (m *WorkspaceModel) updateCount(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	text := m.state.BulkCountText

	switch msg.Type {
	case tea.KeyEsc, tea.KeyTab, tea.KeyShiftTab:
		m.focus = focusVariants
	case tea.KeyEnter:
		m.store.Dispatch(workspace.GenerateBulk{})
	case tea.KeyBackspace:
		if text != "" {
			r := []rune(text)
			m.store.Dispatch(workspace.UpdateBulkCountText{Raw: string(r[:len(r)-1])})
		}
	case tea.KeyCtrlU:
		m.store.Dispatch(workspace.UpdateBulkCountText{Raw: ""})
	case tea.KeyRunes, tea.KeySpace:
		// Every keystroke is proposed; the workspace keeps only valid text.
		m.store.Dispatch(workspace.UpdateBulkCountText{Raw: text + string(msg.Runes)})
	}
	return m, nil
}

func (m *WorkspaceModel) adjacentVariant(step int) registry.Variant {
	variants := registry.Variants()
	for i, v := range variants {
		if v == m.state.Selected {
			return variants[(i+step+len(variants))%len(variants)]
		}
	}
	return workspace.DefaultVariant
}

// copyCurrent writes the current identifier off the event loop. An OSC 52
// clipboard emits its sequence in one write, so it cannot split a frame.
func (m *WorkspaceModel) copyCurrent() tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	id := m.state.Current
	clip := m.clip
	return func() tea.Msg {
		clip.WriteText(id)
		return copiedMsg{seq: seq}
	}
}

func (m *WorkspaceModel) quit() (tea.Model, tea.Cmd) {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	return m, tea.Quit
}

// View renders the TUI
func (m *WorkspaceModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	sections := []string{
		m.renderCurrent(),
		m.renderVariants(),
		m.renderCount(),
	}
	if list := m.renderBulk(); list != "" {
		sections = append(sections, list)
	}
	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *WorkspaceModel) renderCurrent() string {
	line := lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.label.Render("Generated UUID:"),
		" ",
		m.styles.value.Render(m.state.Current),
	)

	detail := m.styles.detail.Render(describe(m.state.Current))
	return m.styles.panel.Render(lipgloss.JoinVertical(lipgloss.Left, line, detail))
}

func (m *WorkspaceModel) renderVariants() string {
	lines := []string{m.styles.legend.Render("Select UUID version")}
	for i, v := range registry.Variants() {
		mark := "( )"
		style := m.styles.option
		if v == m.state.Selected {
			mark = "(•)"
			style = m.styles.selected
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s %d  %s", mark, i+1, v.Label())))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *WorkspaceModel) renderCount() string {
	text := m.state.BulkCountText
	if text == "" {
		text = m.styles.placeholder.Render(countHint)
	}

	field := m.styles.input
	prompt := "Count"
	if m.focus == focusCount {
		field = m.styles.inputFocus
		prompt = "Count ›"
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.label.Render(prompt),
		" ",
		field.Render(text),
		" ",
		m.styles.help.Render("enter: generate bulk"),
	)
}

func (m *WorkspaceModel) renderBulk() string {
	ids := m.state.Bulk
	if len(ids) == 0 {
		return ""
	}

	visible := max(1, m.height-chromeLines)
	lines := make([]string, 0, min(len(ids), visible)+1)
	for i, id := range ids {
		if i == visible {
			lines = append(lines, m.styles.detail.Render(fmt.Sprintf("… and %d more", len(ids)-visible)))
			break
		}
		line := fmt.Sprintf("%2d. %s", i+1, id)
		lines = append(lines, m.styles.item.Render(runewidth.Truncate(line, max(8, m.width-2), "…")))
	}
	return strings.Join(lines, "\n")
}

func (m *WorkspaceModel) renderFooter() string {
	var help string
	if m.focus == focusCount {
		help = "0-9: edit • ⌫: delete • enter: generate • tab/esc: back • ctrl+c: quit"
	} else {
		help = "1/2/3 ←/→: version • g/enter: generate • c/y: copy • tab: count • q: quit"
	}
	help = runewidth.Truncate(help, max(8, m.width), "…")

	content := m.styles.help.Render(help)
	if m.status != "" {
		status := m.status
		if m.icons {
			status = "✔ " + status
		}
		content = lipgloss.JoinVertical(lipgloss.Left, m.styles.status.Render(status), content)
	}
	return m.styles.footer.Render(content)
}

// describe summarises the decoded fields of id for the detail line.
func describe(id string) string {
	info, err := registry.Inspect(id)
	if err != nil {
		return ""
	}
	parts := []string{fmt.Sprintf("version %d", info.Version), info.Layout}
	if info.HasTime {
		parts = append(parts, info.Time.Format("2006-01-02 15:04:05.000 MST"))
	}
	if info.HasNodeID {
		parts = append(parts, "node "+info.Node)
	}
	return strings.Join(parts, " · ")
}

// RunWorkspace starts the TUI workspace
func RunWorkspace(store *workspace.Store, clip clipboard.Clipboard, opts Options) error {
	model := NewWorkspaceModel(store, clip, opts)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
