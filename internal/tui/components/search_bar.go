package components

import (
	"github.com/Veraticus/taxref/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SearchPlaceholder is shown while the search box is empty.
const SearchPlaceholder = "輸入名稱或代碼進行搜尋..."

type searchKeyMap struct {
	Submit key.Binding
	Leave  key.Binding
}

var searchKeys = searchKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "search"),
	),
	Leave: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back to results"),
	),
}

// SearchBarModel is the free-text query input.
type SearchBarModel struct {
	theme themes.Theme
	input textinput.Model
	width int
}

// NewSearchBar creates a focused search bar.
func NewSearchBar(theme themes.Theme) SearchBarModel {
	input := textinput.New()
	input.Placeholder = SearchPlaceholder
	input.Prompt = "🔍 "
	input.CharLimit = 100
	input.Focus()

	m := SearchBarModel{
		input: input,
		width: 80,
	}
	m.SetTheme(theme)
	m.Resize(m.width)
	return m
}

// Update handles messages while focused.
func (m SearchBarModel) Update(msg tea.Msg) (SearchBarModel, tea.Cmd) {
	if !m.input.Focused() {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, searchKeys.Submit):
			query := m.input.Value()
			m.input.Blur()
			return m, func() tea.Msg {
				return QuerySubmittedMsg{Query: query}
			}

		case key.Matches(msg, searchKeys.Leave):
			m.input.Blur()
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if after := m.input.Value(); after != before {
		changed := func() tea.Msg {
			return QueryChangedMsg{Query: after}
		}
		return m, tea.Batch(cmd, changed)
	}
	return m, cmd
}

// View renders the search bar.
func (m SearchBarModel) View() string {
	style := m.theme.RoundedBox.
		Padding(0, 1).
		Width(max(20, m.width-2))
	if m.input.Focused() {
		style = style.BorderForeground(m.theme.Primary)
	}
	return style.Render(m.input.View())
}

// Focus gives the search bar keyboard focus.
func (m *SearchBarModel) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur removes keyboard focus.
func (m *SearchBarModel) Blur() {
	m.input.Blur()
}

// Focused reports whether the search bar receives keys.
func (m SearchBarModel) Focused() bool {
	return m.input.Focused()
}

// Value returns the raw query text.
func (m SearchBarModel) Value() string {
	return m.input.Value()
}

// SetValue replaces the query text without emitting a change message.
func (m *SearchBarModel) SetValue(s string) {
	m.input.SetValue(s)
}

// SetTheme switches the color scheme.
func (m *SearchBarModel) SetTheme(theme themes.Theme) {
	m.theme = theme
	m.input.PromptStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	m.input.TextStyle = theme.Normal
	m.input.PlaceholderStyle = theme.Faint
}

// Resize updates the component width.
func (m *SearchBarModel) Resize(width int) {
	m.width = width
	m.input.Width = max(10, width-10)
}
