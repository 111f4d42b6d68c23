// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/slotfill/internal/timetable"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// SessionLoadedMsg is sent when the saved session has been read.
// Snapshot is nil when nothing was saved yet.
type SessionLoadedMsg struct {
	Snapshot *timetable.Snapshot
}

// SessionSavedMsg is sent after a session write completes. Revision is the
// model revision the written state belongs to.
type SessionSavedMsg struct {
	Revision int
}

// FileSavedMsg is sent when the timetable was written to a file.
type FileSavedMsg struct {
	Path string
}

// FileLoadedMsg is sent when a timetable file was read and decoded.
type FileLoadedMsg struct {
	Path     string
	Snapshot *timetable.Snapshot
}

// FileLoadFailedMsg is sent when a timetable file could not be read.
type FileLoadFailedMsg struct {
	Path string
	Err  error
}

// CopiedMsg is sent when text was copied to the clipboard.
type CopiedMsg struct {
	What string
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadSession reads the last saved session from the repository.
func LoadSession(repo timetable.Repository) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return SessionLoadedMsg{}
		}
		snap, err := repo.Load(context.Background())
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading session: %w", err)}
		}
		return SessionLoadedMsg{Snapshot: snap}
	}
}

// SaveSession queues snap on w and writes it to the repository. The caller
// passes a copy so the store can keep changing while the write runs.
// revision is echoed back in SessionSavedMsg.
func SaveSession(w *SessionWriter, repo timetable.Repository, snap *timetable.Snapshot, revision int) tea.Cmd {
	if w == nil {
		w = NewSessionWriter()
	}
	seq := w.QueueSave(snap)
	return func() tea.Msg {
		if repo == nil {
			return ErrMsg{Err: errors.New("no session storage")}
		}
		if err := w.Write(context.Background(), repo, seq); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving session: %w", err)}
		}
		return SessionSavedMsg{Revision: revision}
	}
}

// ClearSession queues removal of the stored session on w and performs it.
func ClearSession(w *SessionWriter, repo timetable.Repository, revision int) tea.Cmd {
	if w == nil {
		w = NewSessionWriter()
	}
	seq := w.QueueClear()
	return func() tea.Msg {
		if repo == nil {
			return SessionSavedMsg{Revision: revision}
		}
		if err := w.Write(context.Background(), repo, seq); err != nil {
			return ErrMsg{Err: fmt.Errorf("clearing session: %w", err)}
		}
		return SessionSavedMsg{Revision: revision}
	}
}

// SaveFile writes snap to path as a timetable file.
func SaveFile(path string, snap *timetable.Snapshot) tea.Cmd {
	return func() tea.Msg {
		if err := timetable.WriteSnapshotFile(path, snap); err != nil {
			return ErrMsg{Err: err}
		}
		return FileSavedMsg{Path: path}
	}
}

// LoadFile reads and decodes the timetable file at path. Validation against
// the grid happens when the snapshot is imported.
func LoadFile(path string) tea.Cmd {
	return func() tea.Msg {
		snap, err := timetable.ReadSnapshotFile(path)
		if err != nil {
			return FileLoadFailedMsg{Path: path, Err: err}
		}
		return FileLoadedMsg{Path: path, Snapshot: snap}
	}
}

// CopyText copies text to the system clipboard.
func CopyText(what, text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copy failed: %w", err)}
		}
		return CopiedMsg{What: what}
	}
}
