package timetable

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEncodeSnapshot_Fields(t *testing.T) {
	s := populatedStore(t)

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, s.Export()); err != nil {
		t.Fatalf("EncodeSnapshot failed: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(doc) != 4 {
		t.Errorf("got %d top-level fields, want 4", len(doc))
	}
	for _, name := range []string{"timetable", "pool", "greenBoxes", "boxCounter"} {
		if _, ok := doc[name]; !ok {
			t.Errorf("missing field %q", name)
		}
	}
	if !strings.Contains(buf.String(), `"box-3":{"id":"box-3","text":"Compilers"}`) {
		t.Errorf("token not encoded as {id, text}: %s", buf.String())
	}
}

func TestEncodeSnapshot_EmptyListsAreArrays(t *testing.T) {
	var buf bytes.Buffer
	snap := &Snapshot{Timetable: map[string][]string{"Monday_A11": nil}, BoxCounter: 1}
	if err := EncodeSnapshot(&buf, snap); err != nil {
		t.Fatalf("EncodeSnapshot failed: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "null") {
		t.Errorf("encoded snapshot contains null: %s", out)
	}
	if snap.Timetable["Monday_A11"] != nil {
		t.Error("EncodeSnapshot modified its input")
	}
}

func TestDecodeSnapshot(t *testing.T) {
	doc := `{
		"timetable": {"Monday_A11": ["box-1"], "Monday_B11": []},
		"pool": ["box-2"],
		"greenBoxes": {"box-1": {"id": "box-1", "text": "DBMS"}, "box-2": {"id": "box-2", "text": ""}},
		"boxCounter": 3
	}`

	snap, err := DecodeSnapshot(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeSnapshot failed: %v", err)
	}
	if snap.BoxCounter != 3 {
		t.Errorf("BoxCounter = %d, want 3", snap.BoxCounter)
	}
	if got := snap.GreenBoxes["box-1"].Text; got != "DBMS" {
		t.Errorf("box-1 text = %q, want DBMS", got)
	}

	s := newTestStore(t)
	if err := s.Import(snap); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
}

func TestDecodeSnapshot_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `hello`},
		{"truncated", `{"timetable": {}, "pool": [`},
		{"array document", `[]`},
		{"missing pool", `{"timetable": {}, "greenBoxes": {}, "boxCounter": 1}`},
		{"missing counter", `{"timetable": {}, "pool": [], "greenBoxes": {}}`},
		{"null timetable", `{"timetable": null, "pool": [], "greenBoxes": {}, "boxCounter": 1}`},
		{"wrong type", `{"timetable": {}, "pool": "box-1", "greenBoxes": {}, "boxCounter": 1}`},
		{"counter as string", `{"timetable": {}, "pool": [], "greenBoxes": {}, "boxCounter": "1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSnapshot(strings.NewReader(tt.doc))
			if !errors.Is(err, ErrMalformedSnapshot) {
				t.Fatalf("got error %v, want ErrMalformedSnapshot", err)
			}
		})
	}
}

func TestSnapshotFile_RoundTrip(t *testing.T) {
	s := populatedStore(t)
	path := filepath.Join(t.TempDir(), "nested", DefaultExportName)

	if err := WriteSnapshotFile(path, s.Export()); err != nil {
		t.Fatalf("WriteSnapshotFile failed: %v", err)
	}

	snap, err := ReadSnapshotFile(path)
	if err != nil {
		t.Fatalf("ReadSnapshotFile failed: %v", err)
	}

	restored := newTestStore(t)
	if err := restored.Import(snap); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	assertSnapshotsEqual(t, s.Export(), restored.Export())

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the snapshot file, found %d entries", len(entries))
	}
}

func TestReadSnapshotFile_Missing(t *testing.T) {
	_, err := ReadSnapshotFile(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got error %v, want os.ErrNotExist", err)
	}
}
