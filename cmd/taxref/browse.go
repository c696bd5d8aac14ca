package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Veraticus/taxref/internal/common"
	"github.com/Veraticus/taxref/internal/model"
	"github.com/Veraticus/taxref/internal/prefs"
	"github.com/Veraticus/taxref/internal/tui"
	"github.com/Veraticus/taxref/internal/tui/themes"
	"github.com/spf13/cobra"
)

func browseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [query]",
		Short: "Open the interactive browser",
		Long: `Open the interactive browser. Type to filter both collections, press Tab
to switch between them and Enter to see the full details of an entry.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBrowse,
	}
	addBrowseFlags(cmd)
	return cmd
}

func addBrowseFlags(cmd *cobra.Command) {
	cmd.Flags().String("tab", "", "tab shown first (income, occupation)")
	cmd.Flags().String("theme", "", fmt.Sprintf("color theme %v", themes.Names()))
	cmd.Flags().String("record", "", "write every rendered frame to this directory")
}

// startup is the resolved initial state of the browser.
type startup struct {
	theme themes.Theme
	tab   model.Kind
}

// resolveStartup picks the theme and first tab. Flags win over saved
// preferences, which win over the config file.
func resolveStartup(cmd *cobra.Command, store *prefs.Store, s settingsView) (startup, error) {
	st := startup{
		theme: themes.GetTheme(s.theme),
		tab:   s.tab,
	}

	if _, err := os.Stat(store.Path()); err == nil {
		p, loadErr := store.Load()
		if loadErr != nil {
			common.LogError(loadErr, "load preferences", common.Fields{"path": store.Path()})
		} else {
			st.theme = themes.GetTheme(p.Theme)
			st.tab = p.LastTab
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		common.LogError(err, "stat preferences", common.Fields{"path": store.Path()})
	}

	if name, _ := cmd.Flags().GetString("theme"); name != "" {
		theme, ok := themes.Lookup(name)
		if !ok {
			return st, common.NewUserError(
				fmt.Sprintf("unknown theme %q (available: %v)", name, themes.Names()),
				common.ErrInvalidConfig,
			)
		}
		st.theme = theme
	}

	if tab, _ := cmd.Flags().GetString("tab"); tab != "" {
		kind, err := parseKind(tab)
		if err != nil {
			return st, err
		}
		st.tab = kind
	}

	return st, nil
}

// settingsView is the part of the configuration the browser starts from.
type settingsView struct {
	theme string
	tab   model.Kind
}

func runBrowse(cmd *cobra.Command, args []string) error {
	store := prefs.NewStore(settings.PrefsPath)
	st, err := resolveStartup(cmd, store, settingsView{theme: settings.Theme, tab: settings.DefaultTab})
	if err != nil {
		return err
	}

	opts := []tui.Option{
		tui.WithTheme(st.theme),
		tui.WithDefaultTab(st.tab),
		tui.WithPrefs(store),
	}
	if len(args) > 0 {
		opts = append(opts, tui.WithQuery(args[0]))
	}
	if dir, _ := cmd.Flags().GetString("record"); dir != "" {
		opts = append(opts, tui.WithRecording(dir))
	}

	common.LogInfo("Starting browser", common.Fields{"theme": st.theme.Name, "tab": string(st.tab)})
	return tui.Run(cmd.Context(), opts...)
}
