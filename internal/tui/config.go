package tui

import (
	"github.com/Veraticus/taxref/internal/dataset"
	"github.com/Veraticus/taxref/internal/model"
	"github.com/Veraticus/taxref/internal/prefs"
	"github.com/Veraticus/taxref/internal/tui/components"
	"github.com/Veraticus/taxref/internal/tui/themes"
)

// PreferenceStore persists the preferences changed while browsing.
type PreferenceStore interface {
	Save(p prefs.Prefs) error
}

// Config holds TUI configuration.
type Config struct {
	Theme        themes.Theme
	Prefs        PreferenceStore
	Copier       components.CopyFunc
	DefaultTab   model.Kind
	InitialQuery string
	RecordDir    string
	Income       []model.IncomeCategory
	Occupations  []model.OccupationCategory
	Fees         []model.FeeCategory
	Items        []model.DetailedIncomeItem
	Width        int
	Height       int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration over the built-in dataset.
func defaultConfig() Config {
	return Config{
		Theme:       themes.Default,
		DefaultTab:  model.KindIncome,
		Income:      dataset.Income(),
		Occupations: dataset.Occupations(),
		Fees:        dataset.FeeCategories(),
		Items:       dataset.DetailedItems(),
		Width:       80,
		Height:      24,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithPrefs sets where theme and tab changes are saved.
func WithPrefs(store PreferenceStore) Option {
	return func(c *Config) {
		c.Prefs = store
	}
}

// WithCopier replaces the clipboard writer used by the detail view.
func WithCopier(fn components.CopyFunc) Option {
	return func(c *Config) {
		c.Copier = fn
	}
}

// WithDefaultTab sets the tab shown first.
func WithDefaultTab(kind model.Kind) Option {
	return func(c *Config) {
		c.DefaultTab = kind
	}
}

// WithQuery pre-fills the search box.
func WithQuery(q string) Option {
	return func(c *Config) {
		c.InitialQuery = q
	}
}

// WithDataset replaces the searched collections.
func WithDataset(income []model.IncomeCategory, occupations []model.OccupationCategory) Option {
	return func(c *Config) {
		c.Income = income
		c.Occupations = occupations
	}
}

// WithReference replaces the fee table and detailed items used by the detail view.
func WithReference(fees []model.FeeCategory, items []model.DetailedIncomeItem) Option {
	return func(c *Config) {
		c.Fees = fees
		c.Items = items
	}
}

// WithRecording writes every rendered frame to dir.
func WithRecording(dir string) Option {
	return func(c *Config) {
		c.RecordDir = dir
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
