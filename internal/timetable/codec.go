package timetable

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultExportName is the file name used when saving without a path.
const DefaultExportName = "timetable.json"

// ErrMalformedSnapshot is returned when a document is not a snapshot.
var ErrMalformedSnapshot = errors.New("malformed snapshot")

// snapshotFields are the top-level keys every document must carry.
var snapshotFields = []string{"timetable", "pool", "greenBoxes", "boxCounter"}

// EncodeSnapshot writes snap as a single JSON document.
func EncodeSnapshot(w io.Writer, snap *Snapshot) error {
	if snap == nil {
		return fmt.Errorf("%w: nil snapshot", ErrMalformedSnapshot)
	}
	out := *snap
	out.Timetable = make(map[string][]string, len(snap.Timetable))
	for id, ids := range snap.Timetable {
		if ids == nil {
			ids = []string{}
		}
		out.Timetable[id] = ids
	}
	if out.Pool == nil {
		out.Pool = []string{}
	}
	if out.GreenBoxes == nil {
		out.GreenBoxes = map[string]Token{}
	}
	if err := json.NewEncoder(w).Encode(&out); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot parses a JSON document and checks that it carries all four
// snapshot fields with the right JSON types.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	for _, name := range snapshotFields {
		raw, ok := fields[name]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return nil, fmt.Errorf("%w: missing field %q", ErrMalformedSnapshot, name)
		}
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	if snap.Timetable == nil {
		snap.Timetable = map[string][]string{}
	}
	if snap.GreenBoxes == nil {
		snap.GreenBoxes = map[string]Token{}
	}
	if snap.Pool == nil {
		snap.Pool = []string{}
	}
	return &snap, nil
}

// ReadSnapshotFile reads and decodes a snapshot file.
func ReadSnapshotFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	snap, err := DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return snap, nil
}

// WriteSnapshotFile atomically writes snap to path using a temp file, fsync
// and rename.
func WriteSnapshotFile(path string, snap *Snapshot) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".timetable-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	w := bufio.NewWriter(tmp)
	if err := EncodeSnapshot(w, snap); err != nil {
		cleanup()
		return err
	}
	if err := w.Flush(); err != nil {
		cleanup()
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
