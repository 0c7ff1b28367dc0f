package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/d-kuro/uuidw/internal/registry"
	"github.com/d-kuro/uuidw/internal/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	written []string
}

func (f *fakeClipboard) WriteText(s string) {
	f.written = append(f.written, s)
}

func newTestModel(t *testing.T) (*WorkspaceModel, *workspace.Store, *fakeClipboard) {
	t.Helper()
	store := workspace.New(registry.New())
	clip := &fakeClipboard{}
	m := NewWorkspaceModel(store, clip, Options{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, store, clip
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *WorkspaceModel, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestView_BeforeSize(t *testing.T) {
	m := NewWorkspaceModel(workspace.New(registry.New()), &fakeClipboard{}, Options{})
	assert.Equal(t, "Loading...", m.View())
}

func TestView_Initial(t *testing.T) {
	m, store, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "Generated UUID:")
	assert.Contains(t, view, store.State().Current)
	assert.Contains(t, view, "Select UUID version")
	assert.Contains(t, view, "(•) 2  version 4 UUID")
	assert.Contains(t, view, "( ) 1  version 1 UUID")
	assert.Contains(t, view, countHint)
}

func TestUpdate_SelectVariantKeys(t *testing.T) {
	tests := []struct {
		key  tea.KeyMsg
		want registry.Variant
	}{
		{key: runes("1"), want: registry.V1},
		{key: runes("3"), want: registry.V7},
		{key: runes("7"), want: registry.V7},
		{key: tea.KeyMsg{Type: tea.KeyRight}, want: registry.V7},
		{key: tea.KeyMsg{Type: tea.KeyLeft}, want: registry.V1},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			m, store, _ := newTestModel(t)
			before := store.State().Current

			press(m, tt.key)

			s := store.State()
			assert.Equal(t, tt.want, s.Selected)
			assert.NotEqual(t, before, s.Current)
			assert.Equal(t, s, m.state, "subscription should keep the model in sync")
			assert.Contains(t, m.View(), "(•) ")
		})
	}
}

func TestUpdate_RightWrapsAround(t *testing.T) {
	m, store, _ := newTestModel(t)
	press(m, runes("3"), tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, registry.V1, store.State().Selected)
}

func TestUpdate_Regenerate(t *testing.T) {
	m, store, _ := newTestModel(t)
	before := store.State().Current

	press(m, runes("g"))

	assert.NotEqual(t, before, store.State().Current)
	assert.Equal(t, registry.V4, store.State().Selected)
}

func TestUpdate_CountFieldFiltersInput(t *testing.T) {
	m, store, _ := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, focusCount, m.focus)

	press(m, runes("1"), runes("x"), runes("-"), runes("2"), runes("3"))
	assert.Equal(t, "12", store.State().BulkCountText)

	press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "1", store.State().BulkCountText)

	press(m, runes("0"), tea.KeyMsg{Type: tea.KeyEnter})
	s := store.State()
	assert.Len(t, s.Bulk, 10)

	view := m.View()
	assert.Contains(t, view, " 1. "+s.Bulk[0])
	assert.Contains(t, view, "10. "+s.Bulk[9])
}

func TestUpdate_CountFieldDoesNotQuit(t *testing.T) {
	m, store, _ := newTestModel(t)

	cmd := press(m, tea.KeyMsg{Type: tea.KeyTab}, runes("q"))
	assert.Nil(t, cmd)
	assert.Equal(t, "", store.State().BulkCountText)

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, focusVariants, m.focus)
}

func TestUpdate_FocusKeys(t *testing.T) {
	tests := []struct {
		name  string
		enter tea.KeyMsg
		leave tea.KeyMsg
	}{
		{name: "tab/tab", enter: tea.KeyMsg{Type: tea.KeyTab}, leave: tea.KeyMsg{Type: tea.KeyTab}},
		{name: "slash/esc", enter: runes("/"), leave: tea.KeyMsg{Type: tea.KeyEsc}},
		{name: "n/shift+tab", enter: runes("n"), leave: tea.KeyMsg{Type: tea.KeyShiftTab}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, store, _ := newTestModel(t)
			before := store.State()

			press(m, tt.enter)
			require.Equal(t, focusCount, m.focus)
			assert.Contains(t, m.View(), "tab/esc: back")

			cmd := press(m, tt.leave)
			assert.Nil(t, cmd, "leaving the count field must not quit")
			assert.Equal(t, focusVariants, m.focus)
			assert.Contains(t, m.View(), "tab: count")
			assert.Equal(t, before, store.State(), "focus changes dispatch nothing")
		})
	}
}

func TestUpdate_VariantChangeClearsBulk(t *testing.T) {
	m, store, _ := newTestModel(t)

	press(m, runes("/"), runes("5"), tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEsc})
	require.Len(t, store.State().Bulk, 5)

	press(m, runes("3"))
	s := store.State()
	assert.Empty(t, s.Bulk)
	assert.Empty(t, s.BulkCountText)
	assert.NotContains(t, m.View(), " 1. ")
}

func TestUpdate_LongBulkIsWindowed(t *testing.T) {
	m, store, _ := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: chromeLines + 5})

	press(m, runes("n"), runes("9"), runes("9"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, store.State().Bulk, 99)

	view := m.View()
	assert.Contains(t, view, " 5. ")
	assert.NotContains(t, view, " 6. ")
	assert.Contains(t, view, "… and 94 more")
}

func TestUpdate_Copy(t *testing.T) {
	m, store, clip := newTestModel(t)

	cmd := press(m, runes("c"))
	require.NotNil(t, cmd)
	assert.Empty(t, clip.written, "clipboard write should run as a command")

	msg := cmd()
	assert.Equal(t, []string{store.State().Current}, clip.written)

	tick := press(m, msg)
	assert.NotNil(t, tick)
	assert.Contains(t, m.View(), "Copied to clipboard")

	press(m, clearStatusMsg{seq: m.statusSeq})
	assert.NotContains(t, m.View(), "Copied to clipboard")
}

func TestUpdate_StaleStatusIgnored(t *testing.T) {
	m, _, _ := newTestModel(t)

	first := press(m, runes("c"))
	second := press(m, runes("y"))

	press(m, first())
	assert.NotContains(t, m.View(), "Copied to clipboard")

	press(m, second())
	assert.Contains(t, m.View(), "Copied to clipboard")
}

func TestUpdate_Quit(t *testing.T) {
	for _, key := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		t.Run(key.String(), func(t *testing.T) {
			m, store, _ := newTestModel(t)

			cmd := press(m, key)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())

			// Unsubscribed: later dispatches no longer reach the model.
			store.Dispatch(workspace.SelectVariant{Variant: registry.V1})
			assert.Equal(t, registry.V4, m.state.Selected)
		})
	}
}

func TestDescribe(t *testing.T) {
	assert.True(t, strings.HasPrefix(describe("018e3f5a-2b00-7abc-8def-0123456789ab"), "version 7 · RFC4122 · 2024-03-"))
	assert.Equal(t, "version 4 · RFC4122", describe("0b5e9f6a-3c1d-4e2f-8a7b-6c5d4e3f2a1b"))
	assert.Contains(t, describe(registry.New().Generate(registry.V1)), "node ")
	assert.Equal(t, "", describe("garbage"))
}
