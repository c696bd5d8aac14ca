package components

import (
	"strings"

	"github.com/Veraticus/taxref/internal/model"
	"github.com/Veraticus/taxref/internal/tui/themes"
	"github.com/Veraticus/taxref/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Card chrome: rounded border top and bottom.
const cardChrome = 2

type listKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Select   key.Binding
}

var listKeys = listKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("↓/j", "down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "page down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
}

// ResultListModel shows the matches of one collection as summary cards.
type ResultListModel struct {
	theme   themes.Theme
	kind    model.Kind
	query   string
	entries []model.Entry
	cards   []viewmodel.CardView
	total   int
	cursor  int
	offset  int
	width   int
	height  int
}

// NewResultList creates an empty list for kind.
func NewResultList(kind model.Kind, theme themes.Theme) ResultListModel {
	return ResultListModel{
		theme:  theme,
		kind:   kind,
		width:  80,
		height: 20,
	}
}

// SetEntries replaces the listed entries. The cursor stays in place when it
// still points at an entry, otherwise it moves to the last one.
func (m *ResultListModel) SetEntries(entries []model.Entry, query string, total int) {
	m.entries = entries
	m.query = query
	m.total = total
	m.cards = make([]viewmodel.CardView, len(entries))
	for i, e := range entries {
		m.cards[i] = viewmodel.BuildCard(e)
	}
	if m.cursor >= len(entries) {
		m.cursor = max(0, len(entries)-1)
	}
	m.offset = min(m.offset, m.cursor)
	m.ensureVisible()
}

// Update handles key navigation.
func (m ResultListModel) Update(msg tea.Msg) (ResultListModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.entries) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, listKeys.Down):
		m.moveTo(m.cursor + 1)

	case key.Matches(keyMsg, listKeys.Up):
		m.moveTo(m.cursor - 1)

	case key.Matches(keyMsg, listKeys.Top):
		m.moveTo(0)

	case key.Matches(keyMsg, listKeys.Bottom):
		m.moveTo(len(m.entries) - 1)

	case key.Matches(keyMsg, listKeys.PageDown):
		m.moveTo(m.cursor + m.pageSize())

	case key.Matches(keyMsg, listKeys.PageUp):
		m.moveTo(m.cursor - m.pageSize())

	case key.Matches(keyMsg, listKeys.Select):
		entry, index := m.entries[m.cursor], m.cursor
		return m, func() tea.Msg {
			return EntrySelectedMsg{Entry: entry, Index: index}
		}
	}

	return m, nil
}

// SelectRelative moves the cursor by delta and returns the entry under it.
// It reports false, leaving the cursor alone, when that would leave the list.
func (m *ResultListModel) SelectRelative(delta int) (model.Entry, bool) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.entries) {
		return model.Entry{}, false
	}
	m.moveTo(next)
	return m.entries[m.cursor], true
}

// Selected returns the entry under the cursor.
func (m ResultListModel) Selected() (model.Entry, bool) {
	if len(m.entries) == 0 {
		return model.Entry{}, false
	}
	return m.entries[m.cursor], true
}

// Cursor returns the cursor position.
func (m ResultListModel) Cursor() int {
	return m.cursor
}

// Len returns the number of listed entries.
func (m ResultListModel) Len() int {
	return len(m.entries)
}

// Kind returns the collection shown by the list.
func (m ResultListModel) Kind() model.Kind {
	return m.kind
}

// View renders the header and the visible cards.
func (m ResultListModel) View() string {
	header := m.theme.Subtitle.Render(viewmodel.ListHeader(m.kind, m.query, len(m.entries), m.total))

	if len(m.entries) == 0 {
		empty := viewmodel.EmptyState(m.kind)
		body := lipgloss.JoinVertical(lipgloss.Center,
			m.theme.Bold.Render(empty.Title),
			m.theme.Faint.Render(empty.Hint),
		)
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			lipgloss.Place(m.width, max(3, m.height-1), lipgloss.Center, lipgloss.Center, body),
		)
	}

	rendered := []string{header}
	used := 1
	for i := m.offset; i < len(m.cards); i++ {
		h := m.cardHeight(i)
		if used+h > m.height && i > m.offset {
			break
		}
		rendered = append(rendered, m.renderCard(i))
		used += h
	}

	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func (m ResultListModel) renderCard(i int) string {
	card := m.cards[i]
	inner := m.innerWidth()

	title := themes.KindIcon(card.Kind) + " " + card.Name
	lines := []string{m.theme.Bold.Render(runewidth.Truncate(title, inner, "…"))}
	for _, line := range card.Lines() {
		lines = append(lines, m.styleLine(line, card).Render(runewidth.Truncate(line, inner, "…")))
	}

	style := m.theme.Card
	if i == m.cursor {
		style = m.theme.CardSelected
	}
	return style.Width(inner + 2).Render(strings.Join(lines, "\n"))
}

func (m ResultListModel) styleLine(line string, card viewmodel.CardView) lipgloss.Style {
	switch {
	case card.Exemption != "" && strings.HasPrefix(line, viewmodel.LabelExemption):
		return m.theme.Exemption
	case card.Threshold != "" && strings.HasPrefix(line, viewmodel.LabelThreshold):
		return m.theme.Threshold
	case strings.HasPrefix(line, viewmodel.LabelResident), strings.HasPrefix(line, viewmodel.LabelNonResident):
		return m.theme.Normal
	default:
		return m.theme.Faint
	}
}

// cardHeight is the number of terminal rows card i occupies.
func (m ResultListModel) cardHeight(i int) int {
	return 1 + len(m.cards[i].Lines()) + cardChrome
}

func (m ResultListModel) innerWidth() int {
	// Border plus horizontal padding.
	return max(10, m.width-4)
}

func (m ResultListModel) pageSize() int {
	if len(m.cards) == 0 {
		return 1
	}
	return max(1, (m.height-1)/m.cardHeight(m.cursor))
}

func (m *ResultListModel) moveTo(i int) {
	m.cursor = max(0, min(i, len(m.entries)-1))
	m.ensureVisible()
}

// ensureVisible scrolls so the cursor card is fully rendered.
func (m *ResultListModel) ensureVisible() {
	if m.cursor < m.offset {
		m.offset = m.cursor
		return
	}
	for m.offset < m.cursor && m.windowHeight(m.offset, m.cursor) > m.height-1 {
		m.offset++
	}
}

func (m ResultListModel) windowHeight(from, to int) int {
	h := 0
	for i := from; i <= to && i < len(m.cards); i++ {
		h += m.cardHeight(i)
	}
	return h
}

// SetTheme switches the color scheme.
func (m *ResultListModel) SetTheme(theme themes.Theme) {
	m.theme = theme
}

// Resize updates the component size.
func (m *ResultListModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}
