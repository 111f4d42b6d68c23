// Package db provides SQLite storage for the editing session.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/slotfill/internal/timetable"
)

const (
	metaBoxCounter = "box_counter"
	metaSavedAt    = "saved_at"
)

// SQLite implements timetable.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// dsnPragmas apply to every connection the driver opens.
const dsnPragmas = "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// New opens the database at path and runs migrations. The pool holds a
// single connection, so transactions from concurrent callers run one after
// another instead of failing with SQLITE_BUSY.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path+dsnPragmas)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Open creates the parent directory of path when needed and opens the
// database there.
func Open(path string) (*SQLite, error) {
	if path == "" {
		return nil, errors.New("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return New(path)
}

// Save replaces the stored session with snap inside one transaction.
func (s *SQLite) Save(ctx context.Context, snap *timetable.Snapshot) error {
	if snap == nil {
		return errors.New("nil snapshot")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := clearTx(ctx, tx); err != nil {
		return err
	}

	tokenStmt, err := tx.PrepareContext(ctx, `INSERT INTO tokens (id, text, seq) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing token insert: %w", err)
	}
	defer func() { _ = tokenStmt.Close() }()

	for seq, id := range sortedTokenIDs(snap.GreenBoxes) {
		if _, err := tokenStmt.ExecContext(ctx, id, snap.GreenBoxes[id].Text, seq); err != nil {
			return fmt.Errorf("inserting token %s: %w", id, err)
		}
	}

	placeStmt, err := tx.PrepareContext(ctx, `INSERT INTO placements (list_id, position, token_id) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing placement insert: %w", err)
	}
	defer func() { _ = placeStmt.Close() }()

	insertList := func(listID string, ids []string) error {
		for pos, id := range ids {
			if _, err := placeStmt.ExecContext(ctx, listID, pos, id); err != nil {
				return fmt.Errorf("placing %s in %s: %w", id, listID, err)
			}
		}
		return nil
	}

	if err := insertList(timetable.PoolID, snap.Pool); err != nil {
		return err
	}
	for listID, ids := range snap.Timetable {
		if _, err := tx.ExecContext(ctx, `INSERT INTO slots (list_id) VALUES (?)`, listID); err != nil {
			return fmt.Errorf("inserting slot %s: %w", listID, err)
		}
		if err := insertList(listID, ids); err != nil {
			return err
		}
	}

	meta := map[string]string{
		metaBoxCounter: strconv.Itoa(snap.BoxCounter),
		metaSavedAt:    time.Now().Format(time.RFC3339),
	}
	for key, value := range meta {
		if _, err := tx.ExecContext(ctx, `INSERT INTO meta (key, value) VALUES (?, ?)`, key, value); err != nil {
			return fmt.Errorf("writing %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Load rebuilds the last saved snapshot. It returns nil, nil when the
// database holds no session.
func (s *SQLite) Load(ctx context.Context) (*timetable.Snapshot, error) {
	var counterStr string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, metaBoxCounter).Scan(&counterStr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying box counter: %w", err)
	}
	counter, err := strconv.Atoi(counterStr)
	if err != nil {
		return nil, fmt.Errorf("parsing box counter %q: %w", counterStr, err)
	}

	snap := &timetable.Snapshot{
		Timetable:  make(map[string][]string),
		Pool:       []string{},
		GreenBoxes: make(map[string]timetable.Token),
		BoxCounter: counter,
	}

	if err := s.loadTokens(ctx, snap); err != nil {
		return nil, err
	}
	if err := s.loadSlots(ctx, snap); err != nil {
		return nil, err
	}
	if err := s.loadPlacements(ctx, snap); err != nil {
		return nil, err
	}

	return snap, nil
}

func (s *SQLite) loadTokens(ctx context.Context, snap *timetable.Snapshot) error {
	rows, err := s.db.QueryContext(ctx, `SELECT id, text FROM tokens ORDER BY seq`)
	if err != nil {
		return fmt.Errorf("querying tokens: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var tok timetable.Token
		if err := rows.Scan(&tok.ID, &tok.Text); err != nil {
			return fmt.Errorf("scanning token: %w", err)
		}
		snap.GreenBoxes[tok.ID] = tok
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating tokens: %w", err)
	}
	return nil
}

func (s *SQLite) loadSlots(ctx context.Context, snap *timetable.Snapshot) error {
	rows, err := s.db.QueryContext(ctx, `SELECT list_id FROM slots`)
	if err != nil {
		return fmt.Errorf("querying slots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var listID string
		if err := rows.Scan(&listID); err != nil {
			return fmt.Errorf("scanning slot: %w", err)
		}
		snap.Timetable[listID] = []string{}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating slots: %w", err)
	}
	return nil
}

func (s *SQLite) loadPlacements(ctx context.Context, snap *timetable.Snapshot) error {
	rows, err := s.db.QueryContext(ctx, `SELECT list_id, token_id FROM placements ORDER BY list_id, position`)
	if err != nil {
		return fmt.Errorf("querying placements: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var listID, tokenID string
		if err := rows.Scan(&listID, &tokenID); err != nil {
			return fmt.Errorf("scanning placement: %w", err)
		}
		if listID == timetable.PoolID {
			snap.Pool = append(snap.Pool, tokenID)
			continue
		}
		snap.Timetable[listID] = append(snap.Timetable[listID], tokenID)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating placements: %w", err)
	}
	return nil
}

// Clear removes the stored session.
func (s *SQLite) Clear(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := clearTx(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// SavedAt returns when the session was last saved, or the zero time.
func (s *SQLite) SavedAt(ctx context.Context) (time.Time, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, metaSavedAt).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("querying saved_at: %w", err)
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing saved_at: %w", err)
	}
	return t, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func clearTx(ctx context.Context, tx *sql.Tx) error {
	for _, table := range []string{"placements", "slots", "tokens", "meta"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}

// sortedTokenIDs orders registry keys so tokens reload in a stable order.
func sortedTokenIDs(tokens map[string]timetable.Token) []string {
	ids := make([]string, 0, len(tokens))
	for id := range tokens {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
