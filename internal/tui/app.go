// Package tui provides the interactive Bubble Tea dashboard.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/theirongolddev/kakeibo/internal/fx"
	"github.com/theirongolddev/kakeibo/internal/model"
	"github.com/theirongolddev/kakeibo/internal/store"
)

// StateLoadedMsg is sent when the store load finishes.
type StateLoadedMsg struct {
	State *model.State
	Err   error
}

// FXRefreshedMsg is sent when a forced FX refresh completes.
type FXRefreshedMsg struct {
	Snapshot model.Snapshot
	Err      error
}

const (
	tabOverview = iota
	tabExpenses
	tabDeals
	tabFX
	tabCount
)

var tabNames = [tabCount]string{"Overview", "Expenses", "Deals", "FX"}

// App is the root Bubble Tea model.
type App struct {
	dbPath    string
	fxBaseURL string
	log       *logrus.Logger

	state   *model.State
	loaded  bool
	loadErr error
	fxNote  string

	width     int
	height    int
	activeTab int

	spinner spinner.Model
}

// NewApp builds the dashboard model.
func NewApp(dbPath, fxBaseURL string, log *logrus.Logger) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAccent)

	if dbPath == "" {
		dbPath = store.DefaultPath()
	}

	return App{
		dbPath:    dbPath,
		fxBaseURL: fxBaseURL,
		log:       log,
		spinner:   sp,
	}
}

// Init starts the spinner and the initial state load.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.loadStateCmd())
}

func (a App) loadStateCmd() tea.Cmd {
	return func() tea.Msg {
		db, err := store.Open(a.dbPath)
		if err != nil {
			return StateLoadedMsg{Err: err}
		}
		defer func() { _ = db.Close() }()

		st, err := db.LoadState("")
		return StateLoadedMsg{State: st, Err: err}
	}
}

func (a App) refreshFXCmd() tea.Cmd {
	return func() tea.Msg {
		client := fx.NewClient(a.fxBaseURL, a.log)
		snap, err := client.FetchLatest(context.Background())
		if err != nil {
			return FXRefreshedMsg{Err: err}
		}

		db, err := store.Open(a.dbPath)
		if err != nil {
			return FXRefreshedMsg{Snapshot: snap, Err: err}
		}
		defer func() { _ = db.Close() }()
		if err := db.SaveFX(snap); err != nil {
			return FXRefreshedMsg{Snapshot: snap, Err: err}
		}
		return FXRefreshedMsg{Snapshot: snap}
	}
}

// Update handles messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case StateLoadedMsg:
		a.loaded = true
		a.loadErr = msg.Err
		if msg.Err == nil {
			a.state = msg.State
		}
		return a, nil

	case FXRefreshedMsg:
		if msg.Err != nil {
			a.fxNote = fmt.Sprintf("FX refresh failed: %v (keeping previous rates)", msg.Err)
			return a, nil
		}
		a.fxNote = "FX updated: " + msg.Snapshot.Date
		if a.state != nil {
			a.state.FX = msg.Snapshot
		}
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return a, tea.Quit
		case "tab", "l", "right":
			a.activeTab = (a.activeTab + 1) % tabCount
		case "shift+tab", "h", "left":
			a.activeTab = (a.activeTab + tabCount - 1) % tabCount
		case "1", "2", "3", "4":
			a.activeTab = int(msg.String()[0] - '1')
		case "r":
			a.loaded = false
			return a, a.loadStateCmd()
		case "R":
			a.fxNote = "refreshing FX..."
			return a, a.refreshFXCmd()
		}
	}

	return a, nil
}
