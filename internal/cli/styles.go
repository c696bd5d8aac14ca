// Package cli provides styled terminal output for the non-interactive commands.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.Color("#7AA2F7")
	muted  = lipgloss.Color("#666666")

	// TitleStyle renders headings: command titles, table headers and
	// detail sections share it.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	// SubtitleStyle renders the line under a title.
	SubtitleStyle = lipgloss.NewStyle().Foreground(muted)
	// SubtleStyle renders secondary text such as detail fields.
	SubtleStyle = lipgloss.NewStyle().Foreground(muted)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(1, 2)
)

// FolderIcon prefixes filesystem paths in summaries.
const FolderIcon = "🗄️"

// tone pairs a status icon with its color.
type tone struct {
	icon  string
	color lipgloss.Color
}

var (
	toneSuccess = tone{icon: "✓", color: "#4ECDC4"}
	toneError   = tone{icon: "✗", color: "#FF6B6B"}
	toneWarning = tone{icon: "⚠️", color: "#FFE66D"}
	toneInfo    = tone{icon: "ℹ️", color: "#95E1D3"}
)

func (t tone) render(message string) string {
	return lipgloss.NewStyle().Foreground(t.color).Render(t.icon + " " + message)
}

// FormatSuccess prefixes message with a check mark.
func FormatSuccess(message string) string { return toneSuccess.render(message) }

// FormatError prefixes message with a cross.
func FormatError(message string) string { return toneError.render(message) }

// FormatTitle renders title as a heading with the book icon.
func FormatTitle(title string) string {
	return TitleStyle.Render("📘 " + title)
}

// RenderBox renders content under title inside a rounded border.
func RenderBox(title, content string) string {
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, TitleStyle.Render(title), content))
}
