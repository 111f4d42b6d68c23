package timetable

import "context"

// Repository persists the working session between runs.
type Repository interface {
	// Load returns the last saved snapshot, or nil when nothing was saved yet.
	Load(ctx context.Context) (*Snapshot, error)

	// Save replaces the stored session with snap.
	Save(ctx context.Context, snap *Snapshot) error

	// Clear removes the stored session.
	Clear(ctx context.Context) error

	// Close releases any resources held by the repository.
	Close() error
}
