package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/slotfill/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutCache = m.buildLayoutCache(m.width, m.height)
		return m, nil

	case commands.SessionLoadedMsg:
		m.loading = false
		if msg.Snapshot == nil {
			return m, nil
		}
		if err := m.store.Import(msg.Snapshot); err != nil {
			LogError("import session", err)
			m.statusMsg = fmt.Sprintf("Saved session ignored: %v", err)
			m.statusTime = time.Now().Add(errorDuration)
			return m, nil
		}
		m.cursor = Position{}
		m.clampCursor()
		return m, nil

	case commands.SessionSavedMsg:
		if msg.Revision == m.revision {
			m.dirty = false
		}
		return m, nil

	case commands.FileSavedMsg:
		return m.setStatus(fmt.Sprintf("Saved %s", msg.Path))

	case commands.FileLoadedMsg:
		if err := m.store.Import(msg.Snapshot); err != nil {
			LogError("import file", err)
			return m.setStatus(fmt.Sprintf("Invalid file: %v", err))
		}
		LogStoreOp("import", "", map[string]any{"path": msg.Path})
		m.cursor = Position{}
		cmd := m.afterMutation()
		updated, statusCmd := m.setStatus(fmt.Sprintf("Loaded %s", msg.Path))
		return updated, tea.Batch(cmd, statusCmd)

	case commands.FileLoadFailedMsg:
		LogError("load file", msg.Err)
		return m.setStatus(fmt.Sprintf("Invalid file: %v", msg.Err))

	case commands.CopiedMsg:
		return m.setStatus(fmt.Sprintf("Copied %s to clipboard", msg.What))

	case commands.ErrMsg:
		LogError("command", msg.Err)
		m.err = msg.Err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(errorDuration)
		return m, nil

	case commands.StatusMsgCmd:
		return m.setStatus(msg.Msg)

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Handle text input blink and other non-key messages
	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		m.layoutCache = m.buildLayoutCache(m.width, m.height)
		cmds = append(cmds, cmd)
	}
	if m.mode == ModeModal && m.modalType == ModalTokenForm {
		var cmd tea.Cmd
		m.tokenForm, cmd = m.tokenForm.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// setStatus shows a temporary status message.
func (m Model) setStatus(msg string) (tea.Model, tea.Cmd) {
	m.statusMsg = msg
	m.statusTime = time.Now().Add(statusDuration)
	return m, tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}
