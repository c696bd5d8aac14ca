package tui

import (
	"github.com/Veraticus/taxref/internal/model"
	"github.com/charmbracelet/lipgloss"
)

const (
	appTitle    = "所得類別及職務類別查詢器"
	appSubtitle = "快速查詢所得類別與職務類別的代碼、名稱及扣繳稅率資訊"

	// Rows used by everything except the result list.
	chromeHeight = 8
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.selection.IsOpen() {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.detail.View(),
			m.renderStatusBar(),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.search.View(),
		m.tabs.View(),
		m.renderList(),
		m.renderStatusBar(),
	)
}

func (m Model) renderHeader() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render(appTitle),
		m.theme.Subtitle.Render(appSubtitle),
	)
}

func (m Model) renderList() string {
	if m.tabs.Active() == model.KindOccupation {
		return m.occupationList.View()
	}
	return m.incomeList.View()
}

// renderStatusBar shows the short help and the latest status message.
func (m Model) renderStatusBar() string {
	bar := m.help.ShortHelpView(m.keymap.ShortHelp())
	if m.status != "" {
		bar = m.theme.StatusError.Render(m.status) + "  " + bar
	}
	return bar
}

func (m Model) renderHelp() string {
	h := m.help
	h.ShowAll = true

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("Keyboard Shortcuts"),
		"",
		h.View(m.keymap),
		"",
		m.theme.Faint.Render("Press ? or Esc to close"),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		m.theme.RoundedBox.BorderForeground(m.theme.Primary).Render(content))
}
