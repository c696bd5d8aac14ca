package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/taxref/internal/model"
	"github.com/Veraticus/taxref/internal/tui/themes"
	"github.com/Veraticus/taxref/internal/tui/viewmodel"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type detailKeyMap struct {
	Close key.Binding
	Next  key.Binding
	Prev  key.Binding
	Copy  key.Binding
	Help  key.Binding
}

var detailKeys = detailKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc/q", "close"),
	),
	Next: key.NewBinding(
		key.WithKeys("n", "right", "l"),
		key.WithHelp("n", "next entry"),
	),
	Prev: key.NewBinding(
		key.WithKeys("p", "left", "h"),
		key.WithHelp("p", "previous entry"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy code"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}

// CopyFunc writes text to the system clipboard.
type CopyFunc func(string) error

// DetailModalModel shows the full detail view of one entry.
type DetailModalModel struct {
	theme    themes.Theme
	copy     CopyFunc
	status   string
	detail   viewmodel.DetailView
	fees     []model.FeeCategory
	items    []model.DetailedIncomeItem
	viewport viewport.Model
	width    int
	height   int
}

// NewDetailModal creates a detail modal that resolves fee codes and related
// items from the given reference tables.
func NewDetailModal(theme themes.Theme, fees []model.FeeCategory, items []model.DetailedIncomeItem) DetailModalModel {
	return DetailModalModel{
		theme:    theme,
		copy:     clipboard.WriteAll,
		fees:     fees,
		items:    items,
		viewport: viewport.New(76, 20),
		width:    80,
		height:   24,
	}
}

// WithCopier replaces the clipboard writer.
func (m DetailModalModel) WithCopier(fn CopyFunc) DetailModalModel {
	m.copy = fn
	return m
}

// SetEntry renders entry and scrolls back to the top.
func (m *DetailModalModel) SetEntry(entry model.Entry) {
	m.detail = viewmodel.BuildDetail(entry, m.fees, m.items)
	m.status = ""
	m.refresh()
	m.viewport.GotoTop()
}

// Detail returns the rendered detail view.
func (m DetailModalModel) Detail() viewmodel.DetailView {
	return m.detail
}

// Update handles messages while the modal is open.
func (m DetailModalModel) Update(msg tea.Msg) (DetailModalModel, tea.Cmd) {
	switch msg := msg.(type) {
	case CodeCopiedMsg:
		if msg.Err != nil {
			m.status = m.theme.StatusError.Render("無法複製: " + msg.Err.Error())
		} else {
			m.status = m.theme.StatusSuccess.Render("已複製代碼 " + msg.Code)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, detailKeys.Close):
			return m, func() tea.Msg {
				return CloseDetailMsg{}
			}

		case key.Matches(msg, detailKeys.Next):
			return m, func() tea.Msg {
				return NavigateDetailMsg{Delta: 1}
			}

		case key.Matches(msg, detailKeys.Prev):
			return m, func() tea.Msg {
				return NavigateDetailMsg{Delta: -1}
			}

		case key.Matches(msg, detailKeys.Copy):
			code, copyFn := m.detail.Code, m.copy
			return m, func() tea.Msg {
				return CodeCopiedMsg{Code: code, Err: copyFn(code)}
			}

		case key.Matches(msg, detailKeys.Help):
			return m, func() tea.Msg {
				return ShowHelpMsg{}
			}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the modal box.
func (m DetailModalModel) View() string {
	hints := m.theme.Faint.Render("[↑↓] Scroll  [n/p] Next/Prev  [y] Copy code  [esc] Close")
	if m.status != "" {
		hints = m.status + "  " + hints
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		"",
		hints,
	)

	return m.theme.RoundedBox.
		BorderForeground(m.theme.Primary).
		Padding(0, 1).
		Width(m.width - 2).
		Render(body)
}

// Resize updates the component size.
func (m *DetailModalModel) Resize(width, height int) {
	m.width = width
	m.height = height
	// Border, padding, blank line and hint line.
	m.viewport.Width = max(10, width-4)
	m.viewport.Height = max(3, height-4)
	m.refresh()
}

// SetTheme switches the color scheme.
func (m *DetailModalModel) SetTheme(theme themes.Theme) {
	m.theme = theme
	m.refresh()
}

func (m *DetailModalModel) refresh() {
	m.viewport.SetContent(RenderDetail(m.detail, m.theme, m.viewport.Width))
}

// RenderDetail lays out a detail view for a terminal of the given width.
func RenderDetail(d viewmodel.DetailView, theme themes.Theme, width int) string {
	wrap := lipgloss.NewStyle().Width(max(10, width))
	var blocks []string

	for _, s := range d.Sections {
		var lines []string
		switch s.Kind {
		case viewmodel.SectionHeader:
			lines = append(lines, theme.Title.Render(themes.KindIcon(d.Kind)+" "+s.Title))
			for _, f := range s.Fields {
				lines = append(lines, theme.Code.Render(f.Label+": "+f.Value))
			}

		case viewmodel.SectionIdentity:
			for _, f := range s.Fields {
				lines = append(lines, theme.Faint.Render(f.Label+": "+f.Value))
			}

		case viewmodel.SectionFooter:
			for _, item := range s.Items {
				lines = append(lines, theme.Faint.Render(wrap.Render(item)))
			}

		default:
			lines = append(lines, theme.Bold.Foreground(theme.Primary).Render(s.Title))
			for _, f := range s.Fields {
				lines = append(lines, wrap.Render(fieldStyle(theme, f).Render(f.Label+": ")+f.Value))
			}
			if s.Text != "" {
				style := theme.Normal
				if s.Kind == viewmodel.SectionNotes {
					style = theme.Notes
				}
				lines = append(lines, style.Render(wrap.Render(s.Text)))
			}
			for i, item := range s.Items {
				prefix := "  • "
				if s.Kind == viewmodel.SectionExamples {
					prefix = fmt.Sprintf("  %d. ", i+1)
				}
				lines = append(lines, wrap.Render(prefix+item))
			}
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	return strings.Join(blocks, "\n\n")
}

func fieldStyle(theme themes.Theme, f viewmodel.Field) lipgloss.Style {
	switch f.Label {
	case viewmodel.LabelExemption:
		return theme.Exemption
	case viewmodel.LabelThreshold:
		return theme.Threshold
	default:
		return theme.Bold
	}
}
