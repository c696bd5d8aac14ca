// Package themes defines the color schemes of the terminal UI.
package themes

import (
	"slices"

	"github.com/Veraticus/taxref/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Faint         lipgloss.Style
	Code          lipgloss.Style
	Selected      lipgloss.Style
	Highlighted   lipgloss.Style
	Box           lipgloss.Style
	BorderedBox   lipgloss.Style
	RoundedBox    lipgloss.Style
	Card          lipgloss.Style
	CardSelected  lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	Badge         lipgloss.Style
	BadgeOutline  lipgloss.Style
	Exemption     lipgloss.Style
	Threshold     lipgloss.Style
	Notes         lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	Name          string
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Background    lipgloss.Color
	Surface       lipgloss.Color
	Info          lipgloss.Color
	Error         lipgloss.Color
	Warning       lipgloss.Color
	Success       lipgloss.Color
}

// Theme names accepted by Get.
const (
	NameDefault         = "default"
	NameCatppuccinMocha = "catppuccin-mocha"
	NameLight           = "light"
)

type palette struct {
	primary    string
	secondary  string
	success    string
	warning    string
	errorColor string
	info       string
	background string
	foreground string
	subtle     string
	surface    string
	border     string
	muted      string
	onPrimary  string
}

func newTheme(name string, p palette) Theme {
	fg := lipgloss.Color(p.foreground)
	border := lipgloss.Color(p.border)

	return Theme{
		Name:       name,
		Primary:    lipgloss.Color(p.primary),
		Secondary:  lipgloss.Color(p.secondary),
		Success:    lipgloss.Color(p.success),
		Warning:    lipgloss.Color(p.warning),
		Error:      lipgloss.Color(p.errorColor),
		Info:       lipgloss.Color(p.info),
		Background: lipgloss.Color(p.background),
		Foreground: fg,
		Surface:    lipgloss.Color(p.surface),
		Border:     border,
		Muted:      lipgloss.Color(p.muted),

		// Text styles
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.subtle)),
		Normal: lipgloss.NewStyle().
			Foreground(fg),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg),
		Faint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)),
		Code: lipgloss.NewStyle().
			Background(lipgloss.Color(p.surface)).
			Foreground(fg).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(p.primary)).
			Foreground(lipgloss.Color(p.onPrimary)).
			Bold(true),
		Highlighted: lipgloss.NewStyle().
			Background(border).
			Foreground(fg),

		// Component styles
		Box: lipgloss.NewStyle().
			Padding(1, 2),
		BorderedBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(border).
			Padding(1, 2),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.primary)).
			Padding(0, 1),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.onPrimary)).
			Background(lipgloss.Color(p.primary)).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)).
			Padding(0, 2),
		Badge: lipgloss.NewStyle().
			Background(lipgloss.Color(p.surface)).
			Foreground(fg).
			Padding(0, 1),
		BadgeOutline: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.secondary)).
			Padding(0, 1),
		Exemption: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.success)),
		Threshold: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.info)),
		Notes: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.warning)),

		// Status styles
		StatusSuccess: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.success)).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.errorColor)).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.info)).
			Bold(true),
	}
}

// Default is the default theme.
var Default = newTheme(NameDefault, palette{
	primary:    "#7c3aed",
	secondary:  "#a78bfa",
	success:    "#10b981",
	warning:    "#f59e0b",
	errorColor: "#ef4444",
	info:       "#3b82f6",
	background: "#1a1a1a",
	foreground: "#fafafa",
	subtle:     "#a3a3a3",
	surface:    "#262626",
	border:     "#404040",
	muted:      "#737373",
	onPrimary:  "#fafafa",
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(NameCatppuccinMocha, palette{
	primary:    "#cba6f7",
	secondary:  "#f5c2e7",
	success:    "#a6e3a1",
	warning:    "#f9e2af",
	errorColor: "#f38ba8",
	info:       "#89dceb",
	background: "#1e1e2e",
	foreground: "#cdd6f4",
	subtle:     "#a6adc8",
	surface:    "#313244",
	border:     "#45475a",
	muted:      "#6c7086",
	onPrimary:  "#1e1e2e",
})

// Light suits terminals with a light background.
var Light = newTheme(NameLight, palette{
	primary:    "#6d28d9",
	secondary:  "#7c3aed",
	success:    "#047857",
	warning:    "#b45309",
	errorColor: "#b91c1c",
	info:       "#1d4ed8",
	background: "#ffffff",
	foreground: "#171717",
	subtle:     "#525252",
	surface:    "#f4f4f5",
	border:     "#d4d4d8",
	muted:      "#737373",
	onPrimary:  "#ffffff",
})

var registry = []Theme{Default, CatppuccinMocha, Light}

// Names lists the available themes in cycling order.
func Names() []string {
	names := make([]string, len(registry))
	for i, t := range registry {
		names[i] = t.Name
	}
	return names
}

// Lookup returns the theme with the given name.
func Lookup(name string) (Theme, bool) {
	for _, t := range registry {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// GetTheme returns a theme by name, falling back to Default.
func GetTheme(name string) Theme {
	if t, ok := Lookup(name); ok {
		return t
	}
	return Default
}

// Next returns the theme after name in cycling order.
func Next(name string) Theme {
	i := slices.IndexFunc(registry, func(t Theme) bool { return t.Name == name })
	return registry[(i+1)%len(registry)]
}

// KindIcon returns the marker shown next to an entry of the given kind.
func KindIcon(kind model.Kind) string {
	switch kind {
	case model.KindIncome:
		return "📄"
	case model.KindOccupation:
		return "💼"
	default:
		return "•"
	}
}
