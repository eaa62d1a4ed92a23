// Package tui implements the interactive entry browser and editor.
package tui

import (
	"github.com/Veraticus/pocket-ledger/internal/common"
	"github.com/Veraticus/pocket-ledger/internal/model"
	"github.com/Veraticus/pocket-ledger/internal/store"
	"github.com/Veraticus/pocket-ledger/internal/tui/components"
	"github.com/Veraticus/pocket-ledger/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Screen is the part of the UI that receives key presses.
type Screen int

const (
	ScreenList Screen = iota
	ScreenEntryForm
	ScreenCategoryForm
	ScreenHelp
)

// String returns the screen's status bar label.
func (s Screen) String() string {
	switch s {
	case ScreenList:
		return "Browse"
	case ScreenEntryForm:
		return "Entry"
	case ScreenCategoryForm:
		return "Category"
	case ScreenHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// Model holds the main TUI state.
type Model struct {
	theme           themes.Theme
	store           store.Store
	effects         *store.Effects
	recorder        *Recorder
	pendingCategory string
	snapshot        store.State
	help            help.Model
	spinner         spinner.Model
	entryList       components.EntryListModel
	entryForm       components.EntryFormModel
	categoryForm    components.CategoryFormModel
	statsPanel      components.StatsPanelModel
	config          Config
	keymap          KeyMap
	width           int
	height          int
	screen          Screen
	quitting        bool
}

// New creates the TUI model over st. Data access goes through fx, which
// must dispatch into st.
func New(st store.Store, fx *store.Effects, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = spin.Style.Foreground(cfg.Theme.Primary)

	m := Model{
		theme:        cfg.Theme,
		store:        st,
		effects:      fx,
		recorder:     NewRecorder(cfg.RecordDir),
		help:         help.New(),
		spinner:      spin,
		entryList:    components.NewEntryList(cfg.Theme),
		entryForm:    components.NewEntryForm(cfg.Theme, cfg.Now, cfg.EnableAnimations),
		categoryForm: components.NewCategoryForm(cfg.Theme, cfg.EnableAnimations),
		statsPanel:   components.NewStatsPanelModel(cfg.Theme),
		config:       cfg,
		keymap:       DefaultKeyMap(),
		width:        cfg.Width,
		height:       cfg.Height,
		screen:       ScreenList,
	}
	m.applyState(st.GetState())
	m.handleResize()

	return m
}

// Init starts the initial fetch.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadAll()}
	if m.config.EnableAnimations {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.recorder.RecordState(next, msg)
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case stateChangedMsg:
		m.applyState(m.store.GetState())
		return m, nil

	case spinner.TickMsg:
		if m.snapshot.EntriesLoaded || !m.config.EnableAnimations {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case components.EntrySelectedMsg:
		cmd, err := m.entryForm.OpenEdit(msg.Entry)
		if err != nil {
			common.LogError(err, "cannot edit entry", common.Fields{"id": msg.Entry.ID})
			return m, nil
		}
		m.screen = ScreenEntryForm
		return m, cmd

	case components.EntryFormSubmittedMsg:
		m.screen = ScreenList
		m.pendingCategory = ""
		return m, m.saveEntry(msg.Submission)

	case components.EntryFormClosedMsg:
		m.screen = ScreenList
		m.pendingCategory = ""
		return m, m.loadCategories()

	case components.CategoryFormRequestedMsg:
		m.screen = ScreenCategoryForm
		return m, m.categoryForm.Open(msg.Type)

	case components.CategorySubmittedMsg:
		m.screen = ScreenEntryForm
		m.pendingCategory = msg.Name
		return m, m.saveCategory(msg.Name, msg.Type)

	case components.CategoryFormClosedMsg:
		m.screen = ScreenEntryForm
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	switch m.screen {
	case ScreenEntryForm:
		m.entryForm, cmd = m.entryForm.Update(msg)
	case ScreenCategoryForm:
		m.categoryForm, cmd = m.categoryForm.Update(msg)
	}
	return m, cmd
}

// handleKey routes a key press to the active screen.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch m.screen {
	case ScreenHelp:
		if key.Matches(msg, m.keymap.ToggleHelp, m.keymap.Quit) || msg.String() == "esc" {
			m.screen = ScreenList
		}
		return m, nil

	case ScreenEntryForm:
		m.entryForm, cmd = m.entryForm.Update(msg)
		return m, cmd

	case ScreenCategoryForm:
		m.categoryForm, cmd = m.categoryForm.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.ToggleHelp):
		m.screen = ScreenHelp
		return m, nil
	case key.Matches(msg, m.keymap.CashIn):
		return m.openCreate(model.EntryTypeIncome)
	case key.Matches(msg, m.keymap.CashOut):
		return m.openCreate(model.EntryTypeExpense)
	case key.Matches(msg, m.keymap.Dismiss):
		if m.snapshot.Notice != nil {
			m.store.Dispatch(store.NoticeDismissed{})
			m.applyState(m.store.GetState())
		}
		return m, nil
	case key.Matches(msg, m.keymap.ToggleStats):
		m.config.ShowStats = !m.config.ShowStats
		m.handleResize()
		return m, nil
	case key.Matches(msg, m.keymap.Refresh):
		return m, m.loadAll()
	case key.Matches(msg, m.keymap.ClearScreen):
		return m, tea.ClearScreen
	}

	m.entryList, cmd = m.entryList.Update(msg)
	m.statsPanel.SetView(m.entryList.ListView())
	return m, cmd
}

// openCreate opens the entry form for a new entry ("cash in" or "cash out").
func (m Model) openCreate(entryType model.EntryType) (Model, tea.Cmd) {
	cmd, err := m.entryForm.OpenCreate(entryType)
	if err != nil {
		common.LogError(err, "cannot open entry form", common.Fields{"type": entryType})
		return m, nil
	}
	m.screen = ScreenEntryForm
	return m, cmd
}

// applyState copies a store snapshot into the components.
func (m *Model) applyState(state store.State) {
	m.snapshot = state
	m.entryList.SetEntries(state.Entries)
	m.statsPanel.SetView(m.entryList.ListView())
	m.entryForm.SetCategories(state.MergedCategories())

	// A category added from the form is selected once a refetch lists it.
	if m.pendingCategory != "" {
		if !m.entryForm.IsOpen() || m.entryForm.SelectCategory(m.pendingCategory) {
			m.pendingCategory = ""
		}
	}
}

// Snapshot returns the store state the model last rendered.
func (m Model) Snapshot() store.State {
	return m.snapshot
}

// Screen returns the active screen.
func (m Model) Screen() Screen {
	return m.screen
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	// border (2) + header (1) + notice (1) + status bar (1)
	usableHeight := max(4, m.height-5)

	listWidth := m.width - 2
	if m.config.ShowStats && m.width >= 100 {
		listWidth = int(float64(m.width-5) * 0.7)
		m.statsPanel.SetCompact(false)
		m.statsPanel.Resize(m.width-5-listWidth, usableHeight)
	} else {
		m.statsPanel.SetCompact(true)
		m.statsPanel.Resize(m.width-2, 1)
		if m.config.ShowStats {
			usableHeight--
		}
	}

	m.entryList.Resize(listWidth, usableHeight)
	m.entryForm.Resize(m.width)
	m.help.Width = m.width - 4
}
