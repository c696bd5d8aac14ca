package config

import (
	"fmt"
	"slices"

	"github.com/Veraticus/taxref/internal/common"
	"github.com/Veraticus/taxref/internal/model"
	"github.com/Veraticus/taxref/internal/tui/themes"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyTheme      = "ui.theme"
	KeyDefaultTab = "ui.default_tab"
	KeyPrefsPath  = "prefs.path"
	KeyExportPath = "export.path"
	KeyLogLevel   = "logging.level"
	KeyLogFormat  = "logging.format"
	KeyLogFile    = "logging.file"
)

var logFormats = []string{"console", "json"}

// Settings is the validated application configuration.
type Settings struct {
	Theme      string
	DefaultTab model.Kind
	PrefsPath  string
	ExportPath string
	LogLevel   string
	LogFormat  string
	LogFile    string
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyTheme, themes.NameDefault)
	v.SetDefault(KeyDefaultTab, string(model.KindIncome))
	v.SetDefault(KeyPrefsPath, DefaultPrefsPath)
	v.SetDefault(KeyExportPath, DefaultExportPath)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyLogFile, "")
}

// Load reads and validates the settings held by v. Paths are expanded.
func Load(v *viper.Viper) (Settings, error) {
	s := Settings{
		Theme:      v.GetString(KeyTheme),
		DefaultTab: model.Kind(v.GetString(KeyDefaultTab)),
		PrefsPath:  ExpandPath(v.GetString(KeyPrefsPath)),
		ExportPath: ExpandPath(v.GetString(KeyExportPath)),
		LogLevel:   v.GetString(KeyLogLevel),
		LogFormat:  v.GetString(KeyLogFormat),
		LogFile:    ExpandPath(v.GetString(KeyLogFile)),
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports the first invalid setting.
func (s Settings) Validate() error {
	if _, ok := themes.Lookup(s.Theme); !ok {
		return fmt.Errorf("%w: unknown theme %q (available: %v)", common.ErrInvalidConfig, s.Theme, themes.Names())
	}
	if _, ok := model.ParseKind(string(s.DefaultTab)); !ok {
		return fmt.Errorf("%w: unknown default tab %q", common.ErrInvalidConfig, s.DefaultTab)
	}
	if _, err := common.ParseLevel(s.LogLevel); err != nil {
		return err
	}
	if !slices.Contains(logFormats, s.LogFormat) {
		return fmt.Errorf("%w: invalid log format %q", common.ErrInvalidConfig, s.LogFormat)
	}
	return nil
}
