// Package prefs persists the terminal UI preferences that change while
// browsing, such as the theme and the last active tab.
// Preferences are stored as TOML, by default in ~/.config/taxref/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/taxref/internal/config"
	"github.com/Veraticus/taxref/internal/model"
	"github.com/Veraticus/taxref/internal/tui/themes"
	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences.
type Prefs struct {
	Theme   string     `toml:"theme"`
	LastTab model.Kind `toml:"last_tab"`
}

// Defaults returns the preferences used when nothing is stored.
func Defaults() Prefs {
	return Prefs{
		Theme:   themes.NameDefault,
		LastTab: model.KindIncome,
	}
}

// Store reads and writes preferences at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store for path. An empty path uses the default location.
func NewStore(path string) *Store {
	if strings.TrimSpace(path) == "" {
		path = config.DefaultPrefsPath
	}
	return &Store{path: config.ExpandPath(path)}
}

// Path returns the resolved file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads preferences, falling back to defaults for a missing file or
// for individual values that are empty or unknown. A file that cannot be
// parsed yields the defaults together with the parse error.
func (s *Store) Load() (Prefs, error) {
	p := Defaults()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return p, fmt.Errorf("read prefs: %w", err)
	}

	var stored Prefs
	if err := toml.Unmarshal(data, &stored); err != nil {
		return p, fmt.Errorf("parse prefs %s: %w", s.path, err)
	}

	if _, ok := themes.Lookup(stored.Theme); ok {
		p.Theme = stored.Theme
	}
	if kind, ok := model.ParseKind(string(stored.LastTab)); ok {
		p.LastTab = kind
	}
	return p, nil
}

// Save writes preferences, creating directories as needed.
func (s *Store) Save(p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}
