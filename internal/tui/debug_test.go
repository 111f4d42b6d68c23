package tui

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDebugLogger_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := initDebugLoggerAt(path, true); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() { debugLog = nil })

	LogKeyPress(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	LogModeChange(ModeNormal, ModeMove, "pick up")
	LogCursorMove(Position{Row: 1, Col: 2}, "right")
	LogStoreOp("edit", "box-1", map[string]any{"text": "Operating Systems and Computer Architecture"})
	LogError("save", errors.New("disk full"))
	CloseDebugLogger()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer func() { _ = f.Close() }()

	var events []string
	var storeOp map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("invalid log line %q: %v", scanner.Text(), err)
		}
		event, _ := entry["event"].(string)
		events = append(events, event)
		if event == "STORE_OP" {
			storeOp = entry
		}
	}

	want := []string{"DEBUG_START", "KEY_PRESS", "MODE_CHANGE", "CURSOR_MOVE", "STORE_OP", "ERROR", "DEBUG_END"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("events = %v, want %v", events, want)
		}
	}
	if got := storeOp["text"]; got != "Operating Systems and Computer Archit..." {
		t.Errorf("store op text = %q, want truncated", got)
	}
}

func TestDebugLogger_DisabledIsSilent(t *testing.T) {
	if err := InitDebugLogger(false); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() { debugLog = nil })

	// Must not panic without a file.
	LogStoreOp("add", "box-1", nil)
	LogError("x", errors.New("y"))
	CloseDebugLogger()
}

func TestModeString(t *testing.T) {
	if got := modeString(ModeMove); got != "Move" {
		t.Errorf("modeString(ModeMove) = %q", got)
	}
	if got := modeString(Mode(42)); got != "Unknown(42)" {
		t.Errorf("modeString(42) = %q", got)
	}
}
