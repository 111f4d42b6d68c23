package commands

import (
	"context"
	"sync"

	"github.com/javiermolinar/slotfill/internal/timetable"
)

// SessionWriter orders writes to the session store. Each tea.Cmd runs on its
// own goroutine, so a save queued later can reach the repository first. The
// writer always stores the newest queued state and skips writes that a
// later one already covered.
type SessionWriter struct {
	mu      sync.Mutex
	queued  int
	written int
	latest  *timetable.Snapshot
	clear   bool
}

// NewSessionWriter returns a writer with nothing queued.
func NewSessionWriter() *SessionWriter {
	return &SessionWriter{}
}

// QueueSave records snap as the newest session state and returns its
// sequence number. It does not touch the repository.
func (w *SessionWriter) QueueSave(snap *timetable.Snapshot) int {
	return w.queue(snap, false)
}

// QueueClear records that the session must be removed.
func (w *SessionWriter) QueueClear() int {
	return w.queue(nil, true)
}

func (w *SessionWriter) queue(snap *timetable.Snapshot, clear bool) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.queued++
	w.latest = snap
	w.clear = clear
	return w.queued
}

// Write stores the newest queued state unless the write for seq, or a later
// one, already happened.
func (w *SessionWriter) Write(ctx context.Context, repo timetable.Repository, seq int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if seq <= w.written {
		return nil
	}
	return w.store(ctx, repo)
}

// Flush stores the newest queued state if no command has done it yet. It is
// called once the program has exited, before the repository is closed.
func (w *SessionWriter) Flush(ctx context.Context, repo timetable.Repository) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.queued == w.written {
		return nil
	}
	return w.store(ctx, repo)
}

// Pending reports whether a queued state has not reached the repository.
func (w *SessionWriter) Pending() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.queued != w.written
}

// store must be called with mu held.
func (w *SessionWriter) store(ctx context.Context, repo timetable.Repository) error {
	var err error
	if w.clear {
		err = repo.Clear(ctx)
	} else {
		err = repo.Save(ctx, w.latest)
	}
	if err != nil {
		return err
	}
	w.written = w.queued
	return nil
}
