package components

import (
	"fmt"

	"github.com/Veraticus/taxref/internal/model"
	"github.com/Veraticus/taxref/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// TabsModel switches between the income and occupation collections.
type TabsModel struct {
	counts map[model.Kind]int
	active model.Kind
	theme  themes.Theme
}

// NewTabs creates the tab bar with active selected.
// An unknown kind selects the income tab.
func NewTabs(active model.Kind, theme themes.Theme) TabsModel {
	if _, ok := model.ParseKind(string(active)); !ok {
		active = model.KindIncome
	}
	return TabsModel{
		counts: make(map[model.Kind]int, len(model.Kinds)),
		active: active,
		theme:  theme,
	}
}

// Active returns the selected tab.
func (m TabsModel) Active() model.Kind {
	return m.active
}

// SetActive selects kind. Unknown kinds are ignored.
func (m *TabsModel) SetActive(kind model.Kind) {
	if _, ok := model.ParseKind(string(kind)); ok {
		m.active = kind
	}
}

// Next selects the following tab, wrapping around.
func (m *TabsModel) Next() {
	for i, kind := range model.Kinds {
		if kind == m.active {
			m.active = model.Kinds[(i+1)%len(model.Kinds)]
			return
		}
	}
}

// SetCount records the number of matches shown on a tab.
func (m *TabsModel) SetCount(kind model.Kind, n int) {
	m.counts[kind] = n
}

// Count returns the number of matches recorded for kind.
func (m TabsModel) Count(kind model.Kind) int {
	return m.counts[kind]
}

// SetTheme switches the color scheme.
func (m *TabsModel) SetTheme(theme themes.Theme) {
	m.theme = theme
}

// View renders the tab bar.
func (m TabsModel) View() string {
	tabs := make([]string, 0, len(model.Kinds))
	for _, kind := range model.Kinds {
		label := fmt.Sprintf("%s %s (%d)", themes.KindIcon(kind), kind.Label(), m.counts[kind])
		style := m.theme.TabInactive
		if kind == m.active {
			style = m.theme.TabActive
		}
		tabs = append(tabs, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
