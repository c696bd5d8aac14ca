package tui

import (
	"github.com/Veraticus/taxref/internal/common"
	"github.com/Veraticus/taxref/internal/model"
	"github.com/Veraticus/taxref/internal/prefs"
	"github.com/Veraticus/taxref/internal/query"
	"github.com/Veraticus/taxref/internal/selection"
	"github.com/Veraticus/taxref/internal/tui/components"
	"github.com/Veraticus/taxref/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the root of the browser. It owns the query, the active tab and
// the detail selection, and recomputes the result lists whenever the query
// changes.
type Model struct {
	theme          themes.Theme
	prefs          PreferenceStore
	recorder       *Recorder
	engine         *query.Engine
	status         string
	query          string
	results        query.Results
	selection      selection.State
	help           help.Model
	search         components.SearchBarModel
	tabs           components.TabsModel
	incomeList     components.ResultListModel
	occupationList components.ResultListModel
	detail         components.DetailModalModel
	keymap         KeyMap
	width          int
	height         int
	showHelp       bool
	quitting       bool
}

// New creates the root model.
func New(opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newModel(cfg)
}

func newModel(cfg Config) Model {
	detail := components.NewDetailModal(cfg.Theme, cfg.Fees, cfg.Items)
	if cfg.Copier != nil {
		detail = detail.WithCopier(cfg.Copier)
	}

	m := Model{
		theme:          cfg.Theme,
		prefs:          cfg.Prefs,
		recorder:       NewRecorder(cfg.RecordDir),
		engine:         query.NewEngine(cfg.Income, cfg.Occupations),
		query:          cfg.InitialQuery,
		help:           help.New(),
		search:         components.NewSearchBar(cfg.Theme),
		tabs:           components.NewTabs(cfg.DefaultTab, cfg.Theme),
		incomeList:     components.NewResultList(model.KindIncome, cfg.Theme),
		occupationList: components.NewResultList(model.KindOccupation, cfg.Theme),
		detail:         detail,
		keymap:         DefaultKeyMap(),
		width:          cfg.Width,
		height:         cfg.Height,
	}
	m.search.SetValue(cfg.InitialQuery)
	m.refresh()
	m.handleResize()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.search.Focus()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.recorder.RecordState(m, msg)
	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case components.QueryChangedMsg:
		m.query = msg.Query
		m.refresh()
		return m, nil

	case components.QuerySubmittedMsg:
		m.query = msg.Query
		m.refresh()
		m.selection.Close()
		return m, nil

	case components.EntrySelectedMsg:
		m.open(msg.Entry)
		return m, nil

	case components.NavigateDetailMsg:
		list := m.activeList()
		if entry, ok := list.SelectRelative(msg.Delta); ok {
			m.open(entry)
		}
		return m, nil

	case components.CloseDetailMsg:
		m.selection.Close()
		return m, nil

	case components.ShowHelpMsg:
		m.showHelp = !m.showHelp
		return m, nil

	case components.CodeCopiedMsg:
		if msg.Err != nil {
			common.LogError(msg.Err, "copy code", common.Fields{"code": msg.Code})
		}
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd

	case prefsSavedMsg:
		if msg.err != nil {
			common.LogError(msg.err, "save preferences", nil)
			m.status = "無法儲存偏好設定"
		}
		return m, nil
	}

	// Cursor blinks and other input housekeeping.
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// handleKey routes a key press to the help screen, the open detail view,
// the search box or the active list, in that order.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showHelp {
		if key.Matches(msg, m.keymap.Help, m.keymap.Close, m.keymap.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	if m.selection.IsOpen() {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	if key.Matches(msg, m.keymap.NextTab) {
		return m, m.switchTab()
	}

	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Search):
		return m, m.search.Focus()

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keymap.Theme):
		m.setTheme(themes.Next(m.theme.Name))
		return m, m.savePrefs()
	}

	var cmd tea.Cmd
	switch m.tabs.Active() {
	case model.KindOccupation:
		m.occupationList, cmd = m.occupationList.Update(msg)
	default:
		m.incomeList, cmd = m.incomeList.Update(msg)
	}
	return m, cmd
}

// refresh recomputes the results for the current query and pushes them into
// both lists and the tab counts.
func (m *Model) refresh() {
	m.results = m.engine.Search(m.query)

	m.incomeList.SetEntries(m.results.Entries(model.KindIncome), m.query, m.engine.Total(model.KindIncome))
	m.occupationList.SetEntries(m.results.Entries(model.KindOccupation), m.query, m.engine.Total(model.KindOccupation))

	for _, kind := range model.Kinds {
		m.tabs.SetCount(kind, m.results.Count(kind))
	}
}

func (m *Model) open(entry model.Entry) {
	m.selection.Select(&entry)
	if current, ok := m.selection.Current(); ok {
		m.detail.SetEntry(current)
	}
}

func (m *Model) switchTab() tea.Cmd {
	m.tabs.Next()
	return m.savePrefs()
}

func (m *Model) activeList() *components.ResultListModel {
	if m.tabs.Active() == model.KindOccupation {
		return &m.occupationList
	}
	return &m.incomeList
}

func (m *Model) setTheme(theme themes.Theme) {
	m.theme = theme
	m.search.SetTheme(theme)
	m.tabs.SetTheme(theme)
	m.incomeList.SetTheme(theme)
	m.occupationList.SetTheme(theme)
	m.detail.SetTheme(theme)
}

func (m Model) savePrefs() tea.Cmd {
	if m.prefs == nil {
		return nil
	}
	store := m.prefs
	p := prefs.Prefs{Theme: m.theme.Name, LastTab: m.tabs.Active()}
	return func() tea.Msg {
		return prefsSavedMsg{err: store.Save(p)}
	}
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	m.search.Resize(m.width)
	m.help.Width = m.width

	// Title, subtitle, search box (3), tabs, status bar.
	listHeight := max(5, m.height-chromeHeight)
	m.incomeList.Resize(m.width, listHeight)
	m.occupationList.Resize(m.width, listHeight)
	m.detail.Resize(m.width, max(8, m.height-1))
}

// Query returns the current search text.
func (m Model) Query() string {
	return m.query
}

// ActiveTab returns the selected collection.
func (m Model) ActiveTab() model.Kind {
	return m.tabs.Active()
}

// Selection returns the detail selection.
func (m Model) Selection() selection.State {
	return m.selection
}

// Results returns the results for the current query.
func (m Model) Results() query.Results {
	return m.results
}

// ThemeName returns the active theme.
func (m Model) ThemeName() string {
	return m.theme.Name
}
