package tui

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/slotfill/internal/timetable"
	"github.com/javiermolinar/slotfill/internal/tui/commands"
	"github.com/javiermolinar/slotfill/internal/tui/input"
	"github.com/javiermolinar/slotfill/internal/tui/view"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Log keystroke
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	// Mode-specific handling
	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeMove:
		return m.handleMoveKeys(msg)
	case ModeModal:
		return m.handleModalKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		if m.dirty && m.repo != nil {
			m.openModal(ModalConfirmQuit)
			return m, nil
		}
		return m, tea.Quit

	// Navigation
	case "h", "left":
		m.moveCursorLeft()
		LogCursorMove(m.cursor, "left")
	case "l", "right":
		m.moveCursorRight()
		LogCursorMove(m.cursor, "right")
	case "k", "up":
		m.moveCursorUp()
		LogCursorMove(m.cursor, "up")
	case "j", "down":
		m.moveCursorDown()
		LogCursorMove(m.cursor, "down")
	case "tab":
		m.cycleItem(1)
		LogCursorMove(m.cursor, "next token")
	case "shift+tab":
		m.cycleItem(-1)
		LogCursorMove(m.cursor, "previous token")

	// Tokens
	case "a":
		return m.addToken("")
	case "e", "enter":
		return m.openTokenForm()
	case "x", "delete", "backspace":
		return m.removeAtCursor()
	case " ", "m":
		return m.pickUp()

	// Files and session
	case "s":
		return m.exportTo(m.config.Storage.ExportPath)
	case "S":
		m.openPrompt("/save " + m.config.Storage.ExportPath)
		return m, textinput.Blink
	case "o":
		m.openPrompt("/load " + m.config.Storage.ExportPath)
		return m, textinput.Blink
	case "w":
		return m.writeSession()
	case "y":
		return m.copyOutline()
	case "R":
		return m.openConfirmReset()

	case "?":
		return m.openHelp()
	case "/", ":":
		m.openPrompt("/")
		return m, textinput.Blink
	}

	return m, nil
}

// handleMoveKeys handles keys while a token is picked up.
func (m Model) handleMoveKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.cancelMove("cancelled"), nil

	case "h", "left":
		m.moveCursorLeft()
		LogCursorMove(m.cursor, "move left")
	case "l", "right":
		m.moveCursorRight()
		LogCursorMove(m.cursor, "move right")
	case "k", "up":
		m.moveCursorUp()
		LogCursorMove(m.cursor, "move up")
	case "j", "down":
		m.moveCursorDown()
		LogCursorMove(m.cursor, "move down")
	case "tab":
		m.cycleItem(1)
	case "shift+tab":
		m.cycleItem(-1)

	case "enter", " ", "m":
		return m.drop()
	}

	return m, nil
}

func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt()
		return m, nil

	case "enter":
		value := m.prompt.Value()
		m.closePrompt()
		return m.handlePromptSubmit(value)

	case "tab":
		if completion, ok := input.PromptAutocomplete(m.prompt.Value(), promptCommands); ok {
			m.prompt.SetValue(completion)
			m.prompt.CursorEnd()
			m.layoutCache = m.buildLayoutCache(m.width, m.height)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	m.layoutCache = m.buildLayoutCache(m.width, m.height)
	return m, cmd
}

// handleModalKeys handles keys when a modal is open.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalTokenForm:
		return m.handleTokenFormKeys(msg)
	case ModalConfirmReset:
		return m.handleConfirmResetKeys(msg)
	case ModalHelp:
		return m.handleHelpKeys(msg)
	case ModalInit:
		return m.handleInitKeys(msg)
	case ModalConfirmQuit:
		return m.handleConfirmQuitKeys(msg)
	default:
		if msg.String() == "esc" {
			m.closeModal()
			return m, nil
		}
	}
	return m, nil
}

func (m Model) handleTokenFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil
	case "enter":
		id, text := m.editID, m.tokenForm.Value()
		m.closeModal()
		if err := m.store.EditToken(id, text); err != nil {
			LogError("edit token", err)
			m.statusMsg = fmt.Sprintf("Error: %v", err)
			return m, nil
		}
		LogStoreOp("edit", id, map[string]any{"text": text})
		return m, m.afterMutation()
	}

	var cmd tea.Cmd
	m.tokenForm, cmd = m.tokenForm.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmResetKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.closeModal()
		m.store.Clear()
		m.cursor = Position{}
		m.clampCursor()
		LogStoreOp("reset", "", nil)
		m.statusMsg = "Timetable cleared"
		m.revision++
		if m.repo != nil && m.config.Storage.Autosave {
			return m, commands.ClearSession(m.writer, m.repo, m.revision)
		}
		m.dirty = true
		return m, nil
	case "n", "N", "esc":
		m.closeModal()
		return m, nil
	}
	return m, nil
}

// handleConfirmQuitKeys runs when quitting with unsaved changes. The save is
// only queued here; the program flushes it after exiting.
func (m Model) handleConfirmQuitKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.writer.QueueSave(m.store.Export())
		m.dirty = false
		m.closeModal()
		return m, tea.Quit
	case "n", "N":
		LogStoreOp("discard", "", map[string]any{"revision": m.revision})
		m.closeModal()
		return m, tea.Quit
	case "esc":
		m.closeModal()
	}
	return m, nil
}

func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "?", "q", "enter":
		m.closeModal()
	}
	return m, nil
}

func (m Model) handleInitKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "y":
		updated, err := m.initializeStorage()
		if err != nil {
			LogError("initialize storage", err)
			m.initError = err.Error()
			return m, nil
		}
		m = updated
		m.initState.NeedsInit = false
		m.initError = ""
		m.closeModal()
		m.loading = true
		return m, commands.LoadSession(m.repo)
	case "esc", "q", "n":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) closeModal() {
	LogModeChange(m.mode, ModeNormal, "close modal")
	m.mode = ModeNormal
	m.modalType = ModalNone
	m.editID = ""
	m.editIsNew = false
	m.tokenForm.Blur()
}

func (m *Model) openModal(modal ModalType) {
	LogModeChange(m.mode, ModeModal, fmt.Sprintf("open modal %d", modal))
	m.mode = ModeModal
	m.modalType = modal
}

// afterMutation marks the session as changed and, with autosave on, writes
// the new state to the session store.
func (m *Model) afterMutation() tea.Cmd {
	m.clampCursor()
	m.revision++
	if m.repo != nil && m.config.Storage.Autosave {
		return commands.SaveSession(m.writer, m.repo, m.store.Export(), m.revision)
	}
	m.dirty = true
	return nil
}

// addToken creates a pool token. Without a label the form opens so the new
// token can be named right away.
func (m Model) addToken(label string) (tea.Model, tea.Cmd) {
	id := m.store.AddToken()
	LogStoreOp("add", id, nil)
	if label != "" {
		_ = m.store.EditToken(id, label)
	}
	m.focusToken(id)
	cmd := m.afterMutation()
	if label != "" {
		m.statusMsg = fmt.Sprintf("Added %s", id)
		return m, cmd
	}

	m.beginTokenForm(id, true)
	return m, tea.Batch(cmd, textinput.Blink)
}

func (m Model) openTokenForm() (tea.Model, tea.Cmd) {
	id, _, ok := m.tokenAtCursor()
	if !ok {
		return m, nil
	}
	m.beginTokenForm(id, false)
	return m, textinput.Blink
}

func (m *Model) beginTokenForm(id string, isNew bool) {
	tok, _ := m.store.Token(id)
	m.editID = id
	m.editIsNew = isNew
	m.tokenForm.SetValue(tok.Text)
	m.tokenForm.CursorEnd()
	m.tokenForm.Focus()
	m.openModal(ModalTokenForm)
}

func (m Model) removeAtCursor() (tea.Model, tea.Cmd) {
	id, _, ok := m.tokenAtCursor()
	if !ok {
		return m, nil
	}
	if !m.store.RemoveToken(id) {
		return m, nil
	}
	LogStoreOp("remove", id, nil)
	m.statusMsg = fmt.Sprintf("Removed %s", id)
	return m, m.afterMutation()
}

// pickUp starts moving the token under the cursor.
func (m Model) pickUp() (tea.Model, tea.Cmd) {
	id, loc, ok := m.tokenAtCursor()
	if !ok {
		return m, nil
	}
	LogModeChange(m.mode, ModeMove, "pick up "+id)
	m.moving = &moveState{ID: id, Source: loc.List, SourceIndex: loc.Index}
	m.mode = ModeMove
	m.clampCursor()
	return m, nil
}

func (m Model) cancelMove(reason string) Model {
	if m.moving == nil {
		return m
	}
	id := m.moving.ID
	LogModeChange(m.mode, ModeNormal, "move "+reason)
	m.moving = nil
	m.mode = ModeNormal
	m.focusToken(id)
	m.clampCursor()
	return m
}

// drop places the moving token at the insertion point under the cursor.
func (m Model) drop() (tea.Model, tea.Cmd) {
	if m.moving == nil {
		m.mode = ModeNormal
		return m, nil
	}

	dest, ok := m.listAtCursor()
	if !ok {
		m.statusMsg = "Lunch break: tokens cannot be placed here"
		return m, nil
	}

	req := timetable.MoveRequest{
		Source:      m.moving.Source,
		SourceIndex: m.moving.SourceIndex,
		Dest:        dest,
		DestIndex:   m.cursor.Item,
		ID:          m.moving.ID,
	}
	if err := m.store.Move(req); err != nil {
		LogError("move", err)
		m = m.cancelMove("failed")
		if errors.Is(err, timetable.ErrStaleIndex) {
			m.statusMsg = "Token moved elsewhere, try again"
		} else {
			m.statusMsg = fmt.Sprintf("Error: %v", err)
		}
		return m, nil
	}
	LogStoreOp("move", req.ID, map[string]any{
		"from":       req.Source,
		"from_index": req.SourceIndex,
		"to":         req.Dest,
		"to_index":   req.DestIndex,
	})

	unchanged := req.Source == req.Dest && req.SourceIndex == req.DestIndex
	m = m.cancelMove("dropped")
	if unchanged {
		return m, nil
	}
	m.statusMsg = fmt.Sprintf("Moved %s to %s", req.ID, view.LocationLabel(m.topology, req.Dest))
	return m, m.afterMutation()
}

func (m Model) writeSession() (tea.Model, tea.Cmd) {
	if m.repo == nil {
		m.statusMsg = "No session store configured"
		return m, nil
	}
	return m, commands.SaveSession(m.writer, m.repo, m.store.Export(), m.revision)
}

func (m Model) copyOutline() (tea.Model, tea.Cmd) {
	var buf bytes.Buffer
	if err := timetable.WriteOutline(&buf, m.store); err != nil {
		m.statusMsg = fmt.Sprintf("Error: %v", err)
		return m, nil
	}
	return m, commands.CopyText("outline", strings.TrimRight(buf.String(), "\n"))
}

func (m Model) openConfirmReset() (tea.Model, tea.Cmd) {
	if m.store.Len() == 0 {
		m.statusMsg = "Nothing to reset"
		return m, nil
	}
	m.openModal(ModalConfirmReset)
	return m, nil
}

func (m Model) openHelp() (tea.Model, tea.Cmd) {
	m.openModal(ModalHelp)
	return m, nil
}
