package db

import (
	"context"
	"path/filepath"
	"reflect"
	"sync"
	"testing"

	"github.com/javiermolinar/slotfill/internal/timetable"
)

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()
	repo, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("creating repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func sampleStore(t *testing.T) *timetable.Store {
	t.Helper()
	s := timetable.NewStore(timetable.DefaultTopology())
	for i := 0; i < 3; i++ {
		s.AddToken()
	}
	_ = s.EditToken("box-1", "DBMS")
	_ = s.EditToken("box-2", "Networks")
	moves := []timetable.MoveRequest{
		{Source: timetable.PoolID, SourceIndex: 0, Dest: "Monday_A11", DestIndex: 0, ID: "box-1"},
		{Source: timetable.PoolID, SourceIndex: 0, Dest: "Monday_A11", DestIndex: 0, ID: "box-2"},
	}
	for _, req := range moves {
		if err := s.Move(req); err != nil {
			t.Fatalf("Move failed: %v", err)
		}
	}
	return s
}

func TestLoad_Empty(t *testing.T) {
	repo := newTestRepo(t)

	snap, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snap != nil {
		t.Fatalf("expected nil snapshot from empty database, got %+v", snap)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	want := sampleStore(t).Export()

	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("loaded snapshot differs:\n got  %+v\n want %+v", got, want)
	}
	if slot := got.Timetable["Monday_A11"]; len(slot) != 2 || slot[0] != "box-2" || slot[1] != "box-1" {
		t.Errorf("Monday_A11 order = %v, want [box-2 box-1]", slot)
	}
}

func TestSave_ReplacesPreviousSession(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	s := sampleStore(t)

	if err := repo.Save(ctx, s.Export()); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}

	s.RemoveToken("box-1")
	s.AddToken()
	want := s.Export()
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("loaded snapshot differs:\n got  %+v\n want %+v", got, want)
	}
	if got.BoxCounter != 5 {
		t.Errorf("BoxCounter = %d, want 5", got.BoxCounter)
	}
}

func TestSave_DuplicatePlacementRollsBack(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	good := sampleStore(t).Export()
	if err := repo.Save(ctx, good); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	bad := sampleStore(t).Export()
	bad.Pool = append(bad.Pool, "box-1")
	if err := repo.Save(ctx, bad); err == nil {
		t.Fatal("expected error saving a token placed twice")
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, good) {
		t.Fatal("failed save changed the stored session")
	}
}

func TestClear(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Save(ctx, sampleStore(t).Export()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	snap, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snap != nil {
		t.Errorf("expected nil snapshot after Clear, got %+v", snap)
	}
}

func TestSavedAt(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	at, err := repo.SavedAt(ctx)
	if err != nil {
		t.Fatalf("SavedAt failed: %v", err)
	}
	if !at.IsZero() {
		t.Errorf("SavedAt on empty db = %v, want zero", at)
	}

	if err := repo.Save(ctx, sampleStore(t).Export()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	at, err = repo.SavedAt(ctx)
	if err != nil {
		t.Fatalf("SavedAt failed: %v", err)
	}
	if at.IsZero() {
		t.Error("SavedAt not recorded")
	}
}

func TestSave_ConcurrentCallers(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	snaps := make([]*timetable.Snapshot, 30)
	for i := range snaps {
		s := timetable.NewStore(timetable.DefaultTopology())
		for range i + 1 {
			s.AddToken()
		}
		snaps[i] = s.Export()
	}

	errs := make(chan error, len(snaps))
	var wg sync.WaitGroup
	for _, snap := range snaps {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.Save(ctx, snap)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent Save failed: %v", err)
		}
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	matches := false
	for _, snap := range snaps {
		if reflect.DeepEqual(got, snap) {
			matches = true
			break
		}
	}
	if !matches {
		t.Fatal("stored session is a mix of several saves")
	}
}

func TestForeignKeysOnEveryConnection(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	if err := repo.Save(ctx, sampleStore(t).Export()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	var enabled int
	if err := repo.db.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&enabled); err != nil {
		t.Fatalf("reading pragma: %v", err)
	}
	if enabled != 1 {
		t.Fatalf("foreign_keys = %d, want 1", enabled)
	}

	if _, err := repo.db.ExecContext(ctx, `DELETE FROM tokens WHERE id = 'box-1'`); err != nil {
		t.Fatalf("deleting token: %v", err)
	}
	var n int
	if err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM placements WHERE token_id = 'box-1'`).Scan(&n); err != nil {
		t.Fatalf("counting placements: %v", err)
	}
	if n != 0 {
		t.Errorf("placements for a deleted token = %d, want 0", n)
	}
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()
	want := sampleStore(t).Export()

	repo, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	_ = repo.Close()

	reopened, err := New(path)
	if err != nil {
		t.Fatalf("reopening failed: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	got, err := reopened.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("snapshot lost across reopen:\n got  %+v\n want %+v", got, want)
	}
}

func TestOpen_CreatesDataDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "slotfill.db")
	repo, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() { _ = repo.Close() }()

	snap, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snap != nil {
		t.Errorf("expected empty session, got %+v", snap)
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}
