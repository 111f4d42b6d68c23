// Package tui provides the terminal user interface for slotfill.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/slotfill/internal/config"
	"github.com/javiermolinar/slotfill/internal/db"
	"github.com/javiermolinar/slotfill/internal/timetable"
	"github.com/javiermolinar/slotfill/internal/tui/commands"
	"github.com/javiermolinar/slotfill/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeMove        // A token is picked up and follows the cursor
	ModePrompt
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone      ModalType = iota
	ModalTokenForm           // Edit a token label
	ModalConfirmReset
	ModalHelp
	ModalInit
	ModalConfirmQuit // Unsaved changes on quit
)

// Position represents a cursor position. Rows 0..days-1 are grid rows and
// the row after the last day is the pool. Item selects a token within the
// cell, or the insertion point while moving.
type Position struct {
	Row  int
	Col  int
	Item int
}

// moveState is the picked-up token. The store is untouched until the drop.
type moveState struct {
	ID          string
	Source      string
	SourceIndex int
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   timetable.Repository
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	store    *timetable.Store
	topology *timetable.Topology
	cursor   Position
	mode     Mode
	loading  bool // True until the saved session has been read
	dirty    bool // Changes not yet written to the session store
	revision int  // Bumped on every mutation
	writer   *commands.SessionWriter
	moving   *moveState

	// Modal state
	modalType ModalType
	editID    string          // Token being labeled
	editIsNew bool            // Token was just created by "a"
	tokenForm textinput.Model // Label input
	initState InitState       // Startup initialization state
	initError string          // Initialization error for modal display

	// Components
	prompt textinput.Model

	// Terminal dimensions and layout
	width       int
	height      int
	layoutCache LayoutCache

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	// Error state
	err error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithInitState sets the startup initialization state.
func WithInitState(state InitState) ModelOption {
	return func(m *Model) {
		m.initState = state
		if state.NeedsInit {
			m.mode = ModeModal
			m.modalType = ModalInit
			m.loading = false
		}
	}
}

// WithStore starts the model from an existing store instead of an empty one.
func WithStore(store *timetable.Store) ModelOption {
	return func(m *Model) {
		if store != nil {
			m.store = store
			m.topology = store.Topology()
		}
	}
}

// New creates a new TUI model.
func New(repo timetable.Repository, cfg *config.Config, opts ...ModelOption) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	topology, err := cfg.Topology()
	if err != nil {
		topology = timetable.DefaultTopology()
	}

	ti := textinput.New()
	ti.Placeholder = "/save timetable.json"

	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, _ = theme.Load("mocha")
	}

	styles := NewStyles(t)

	tokenForm := textinput.New()
	tokenForm.Placeholder = "Label (course, room, note)"
	tokenForm.CharLimit = 120
	tokenForm.Width = 44
	tokenForm.PlaceholderStyle = styles.ModalPlaceholderStyle
	tokenForm.TextStyle = styles.ModalInputTextStyle
	tokenForm.PromptStyle = styles.ModalInputTextStyle
	tokenForm.Cursor.Style = styles.ModalInputCursorStyle
	tokenForm.Cursor.TextStyle = styles.ModalInputTextStyle

	m := &Model{
		repo:      repo,
		config:    cfg,
		theme:     t,
		styles:    styles,
		store:     timetable.NewStore(topology),
		topology:  topology,
		mode:      ModeNormal,
		loading:   repo != nil,
		prompt:    ti,
		tokenForm: tokenForm,
		writer:    commands.NewSessionWriter(),
	}
	m.layoutCache = m.buildLayoutCache(0, 0)

	for _, opt := range opts {
		opt(m)
	}

	m.clampCursor()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.initState.NeedsInit || m.repo == nil {
		return nil
	}
	return commands.LoadSession(m.repo)
}

// Run starts the TUI.
func Run(repo timetable.Repository, cfg *config.Config) error {
	return RunWithDebug(repo, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo timetable.Repository, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	initialRepo := repo
	var initState InitState

	if repo == nil {
		state, err := DetectInitState(cfg)
		if err != nil {
			return err
		}
		initState = state
		if !state.NeedsInit {
			repo, err = db.Open(state.DBPath)
			if err != nil {
				return err
			}
		}
	}

	model := New(repo, cfg, WithInitState(initState))
	p := tea.NewProgram(*model, tea.WithAltScreen())
	finalModel, err := p.Run()
	m, ok := finalModel.(Model)
	if !ok || m.repo == nil {
		return err
	}
	if flushErr := m.writer.Flush(context.Background(), m.repo); flushErr != nil && err == nil {
		err = fmt.Errorf("saving session: %w", flushErr)
	}
	if initialRepo == nil {
		_ = m.repo.Close()
	}
	return err
}
