package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Veraticus/taxref/internal/common"
	"github.com/Veraticus/taxref/internal/dataset"
	"github.com/Veraticus/taxref/internal/model"
	"github.com/Veraticus/taxref/internal/prefs"
	"github.com/Veraticus/taxref/internal/storage"
	tuitest "github.com/Veraticus/taxref/internal/tui/testing"
	"github.com/Veraticus/taxref/internal/tui/themes"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	// A nil slice makes cobra fall back to os.Args, which holds the test flags.
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.ExecuteContext(context.Background())
	return tuitest.StripANSI(out.String()), err
}

func TestRootCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"browse", "search", "show", "fees", "items", "export", "version"} {
		assert.True(t, names[want], "missing %s command", want)
	}

	for _, flag := range []string{"tab", "theme", "record"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(flag), "root runs the browser and needs --%s", flag)
	}
}

func TestIsInteractive(t *testing.T) {
	assert.True(t, isInteractive(rootCmd))

	subcommands := make(map[string]*cobra.Command)
	for _, sub := range rootCmd.Commands() {
		subcommands[sub.Name()] = sub
	}
	assert.True(t, isInteractive(subcommands["browse"]))
	assert.False(t, isInteractive(subcommands["search"]))
	assert.False(t, isInteractive(subcommands["export"]))

	require.NotNil(t, rootCmd.PersistentPreRunE)
	require.NotNil(t, rootCmd.RunE)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, versionCmd())
	require.NoError(t, err)
	assert.Equal(t, "taxref dev\n", out)
}

func TestSearchCmd(t *testing.T) {
	t.Run("occupations only", func(t *testing.T) {
		out, err := execute(t, searchCmd(), "醫師", "--kind", "occupation")
		require.NoError(t, err)

		assert.Contains(t, out, "找到 15 個結果")
		assert.Contains(t, out, "內科醫師")
		assert.NotContains(t, out, "律師")
		assert.NotContains(t, out, model.KindIncome.Label())
	})

	t.Run("both collections", func(t *testing.T) {
		out, err := execute(t, searchCmd())
		require.NoError(t, err)
		assert.True(t, tuitest.ContainsInOrder(out, "共 10 個所得類別", "共 62 個職務類別"), out)
	})

	t.Run("help names matched fields", func(t *testing.T) {
		long := searchCmd().Long
		assert.Contains(t, long, "examples and notes")
		assert.Contains(t, long, "description and category")
		assert.NotContains(t, long, "tax rate")
	})

	t.Run("no matches", func(t *testing.T) {
		out, err := execute(t, searchCmd(), "xyz123notfound")
		require.NoError(t, err)
		assert.True(t, tuitest.ContainsInOrder(out, "找不到相關的所得類別", "找不到相關的職務類別"), out)
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, searchCmd(), "9B", "--kind", "income", "--json")
		require.NoError(t, err)

		var decoded struct {
			Query       string                     `json:"query"`
			Income      []model.IncomeCategory     `json:"income"`
			Occupations []model.OccupationCategory `json:"occupations"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, "9B", decoded.Query)
		require.NotEmpty(t, decoded.Income)
		assert.Equal(t, "9B", decoded.Income[0].Code)
		assert.Empty(t, decoded.Occupations)
	})

	t.Run("invalid kind", func(t *testing.T) {
		_, err := execute(t, searchCmd(), "--kind", "salary")
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrInvalidKind)
		assert.Contains(t, common.UserMessage(err), "salary")
	})
}

func TestShowCmd(t *testing.T) {
	t.Run("income", func(t *testing.T) {
		out, err := execute(t, showCmd(), "income", "9B")
		require.NoError(t, err)
		assert.True(t, tuitest.ContainsInOrder(out, "執行業務所得稿費、演講費等", "代碼: 9B", "補充健保資訊", dataset.Source), out)
	})

	t.Run("occupation", func(t *testing.T) {
		out, err := execute(t, showCmd(), "occupation", "30")
		require.NoError(t, err)
		assert.Contains(t, out, "內科醫師")
		assert.NotContains(t, out, "補充健保資訊")
	})

	t.Run("case insensitive code", func(t *testing.T) {
		out, err := execute(t, showCmd(), "income", "9b")
		require.NoError(t, err)
		assert.Contains(t, out, "代碼: 9B")
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, showCmd(), "occupation", "10", "--json")
		require.NoError(t, err)

		var decoded model.OccupationCategory
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, "10", decoded.Code)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := execute(t, showCmd(), "income", "ZZ")
		assert.ErrorIs(t, err, common.ErrNotFound)
		assert.Contains(t, common.UserMessage(err), "ZZ")
	})

	t.Run("invalid kind", func(t *testing.T) {
		_, err := execute(t, showCmd(), "vendor", "50")
		assert.ErrorIs(t, err, common.ErrInvalidKind)
	})

	t.Run("missing code", func(t *testing.T) {
		_, err := execute(t, showCmd(), "income")
		assert.Error(t, err)
	})
}

func TestFeesCmd(t *testing.T) {
	out, err := execute(t, feesCmd())
	require.NoError(t, err)
	assert.True(t, tuitest.ContainsInOrder(out, "98", "非自行出版", "99", "自行出版"), out)

	out, err = execute(t, feesCmd(), "--json")
	require.NoError(t, err)
	var fees []model.FeeCategory
	require.NoError(t, json.Unmarshal([]byte(out), &fees))
	assert.Equal(t, dataset.FeeCategories(), fees)
}

func TestItemsCmd(t *testing.T) {
	out, err := execute(t, itemsCmd(), "口譯")
	require.NoError(t, err)
	assert.Contains(t, out, "口譯費(非屬演講性質)")
	assert.Contains(t, out, "口譯費(屬演講性質)")
	assert.NotContains(t, out, "子女教育補助費")

	out, err = execute(t, itemsCmd(), "--json")
	require.NoError(t, err)
	var items []model.DetailedIncomeItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	assert.Len(t, items, len(dataset.DetailedItems()))

	out, err = execute(t, itemsCmd(), "nothing-matches-this")
	require.NoError(t, err)
	assert.Contains(t, out, "沒有符合的項目")
}

func TestExportCmd(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "out", "taxref.db")

	out, err := execute(t, exportCmd(), "--db", dbPath, "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported")
	assert.Contains(t, out, dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	count, err := store.CountRows(context.Background(), "occupation_categories")
	require.NoError(t, err)
	assert.Equal(t, len(dataset.Occupations()), count)

	out, err = execute(t, exportCmd(), "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Export Complete")
}

func TestExportCmd_CanceledContext(t *testing.T) {
	cmd := exportCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--db", filepath.Join(t.TempDir(), "taxref.db"), "--quiet"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := cmd.ExecuteContext(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestResolveStartup(t *testing.T) {
	newCmd := func(args ...string) *cobra.Command {
		cmd := browseCmd()
		require.NoError(t, cmd.ParseFlags(args))
		return cmd
	}
	defaults := settingsView{theme: themes.NameDefault, tab: model.KindIncome}

	t.Run("config when nothing is saved", func(t *testing.T) {
		store := prefs.NewStore(filepath.Join(t.TempDir(), "prefs.toml"))
		st, err := resolveStartup(newCmd(), store, settingsView{theme: themes.NameLight, tab: model.KindOccupation})
		require.NoError(t, err)
		assert.Equal(t, themes.NameLight, st.theme.Name)
		assert.Equal(t, model.KindOccupation, st.tab)
	})

	t.Run("saved preferences win over config", func(t *testing.T) {
		store := prefs.NewStore(filepath.Join(t.TempDir(), "prefs.toml"))
		require.NoError(t, store.Save(prefs.Prefs{Theme: themes.NameCatppuccinMocha, LastTab: model.KindOccupation}))

		st, err := resolveStartup(newCmd(), store, defaults)
		require.NoError(t, err)
		assert.Equal(t, themes.NameCatppuccinMocha, st.theme.Name)
		assert.Equal(t, model.KindOccupation, st.tab)
	})

	t.Run("flags win over everything", func(t *testing.T) {
		store := prefs.NewStore(filepath.Join(t.TempDir(), "prefs.toml"))
		require.NoError(t, store.Save(prefs.Prefs{Theme: themes.NameCatppuccinMocha, LastTab: model.KindOccupation}))

		st, err := resolveStartup(newCmd("--theme", themes.NameLight, "--tab", "income"), store, defaults)
		require.NoError(t, err)
		assert.Equal(t, themes.NameLight, st.theme.Name)
		assert.Equal(t, model.KindIncome, st.tab)
	})

	t.Run("unknown theme", func(t *testing.T) {
		store := prefs.NewStore(filepath.Join(t.TempDir(), "prefs.toml"))
		_, err := resolveStartup(newCmd("--theme", "neon"), store, defaults)
		assert.ErrorIs(t, err, common.ErrInvalidConfig)
	})

	t.Run("unknown tab", func(t *testing.T) {
		store := prefs.NewStore(filepath.Join(t.TempDir(), "prefs.toml"))
		_, err := resolveStartup(newCmd("--tab", "vendors"), store, defaults)
		assert.ErrorIs(t, err, common.ErrInvalidKind)
	})
}

func TestSetupLogging(t *testing.T) {
	saved := settings
	defer func() { settings = saved }()

	settings.LogLevel = "loud"
	assert.ErrorIs(t, setupLogging(false), common.ErrInvalidConfig)

	settings.LogLevel = "debug"
	settings.LogFormat = "json"
	settings.LogFile = filepath.Join(t.TempDir(), "taxref.log")
	require.NoError(t, setupLogging(true))
	require.NotNil(t, logFile)
	assert.FileExists(t, settings.LogFile)
	_ = logFile.Close()
	logFile = nil
}
