package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/javiermolinar/slotfill/internal/timetable"
)

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "fills short text", in: "A11", width: 6, want: "A11   "},
		{name: "truncates long text", in: "Algebra", width: 4, want: "Alg…"},
		{name: "exact width", in: "B23", width: 3, want: "B23"},
		{name: "zero width", in: "x", width: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pad(tt.in, tt.width); got != tt.want {
				t.Errorf("pad(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestFillBar(t *testing.T) {
	tests := []struct {
		name          string
		filled, total int
		want          string
	}{
		{name: "empty", filled: 0, total: 7, want: "[░░░░]"},
		{name: "no slots", filled: 0, total: 0, want: "[░░░░]"},
		{name: "half", filled: 2, total: 4, want: "[██░░]"},
		{name: "full", filled: 7, total: 7, want: "[████]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FillBar(tt.filled, tt.total, 4); got != tt.want {
				t.Errorf("FillBar(%d, %d) = %q, want %q", tt.filled, tt.total, got, tt.want)
			}
		})
	}
}

func TestCellWidth(t *testing.T) {
	if got := (PrintOpts{Width: 100}).CellWidth(8); got != 10 {
		t.Errorf("CellWidth = %d, want 10", got)
	}
	if got := (PrintOpts{Width: 20}).CellWidth(8); got != minCellWidth {
		t.Errorf("narrow CellWidth = %d, want %d", got, minCellWidth)
	}
}

func TestPrintGridStacksTokens(t *testing.T) {
	store := timetable.NewStore(timetable.DefaultTopology())
	for _, label := range []string{"Algebra", "Physics"} {
		id := store.AddToken()
		if err := store.EditToken(id, label); err != nil {
			t.Fatal(err)
		}
		if err := moveToken(store, id, "Monday_B11", -1); err != nil {
			t.Fatalf("moveToken failed: %v", err)
		}
	}

	var buf bytes.Buffer
	PrintGrid(&buf, store, PrintOpts{Width: 120})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	// Header, Monday (codes + two tokens), then one line per other day.
	if len(lines) != 1+3+4 {
		t.Fatalf("expected 8 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[1], "Monday") || !strings.Contains(lines[1], "B11") {
		t.Errorf("unexpected Monday line %q", lines[1])
	}
	if !strings.Contains(lines[2], "Algebra") || !strings.Contains(lines[3], "Physics") {
		t.Errorf("tokens not stacked in order:\n%s", buf.String())
	}
	if !strings.Contains(lines[0], lunchText) {
		t.Errorf("header should mark the lunch column: %q", lines[0])
	}
}

func TestPrintPoolAndStats(t *testing.T) {
	store := timetable.NewStore(timetable.DefaultTopology())
	var buf bytes.Buffer
	PrintPool(&buf, store)
	if !strings.Contains(buf.String(), "Pool (0)") || !strings.Contains(buf.String(), "empty") {
		t.Errorf("unexpected empty pool output %q", buf.String())
	}

	id := store.AddToken()
	buf.Reset()
	PrintPool(&buf, store)
	if !strings.Contains(buf.String(), id) || !strings.Contains(buf.String(), "(no label)") {
		t.Errorf("unexpected pool output %q", buf.String())
	}

	buf.Reset()
	PrintStats(&buf, store.Stats())
	out := buf.String()
	if !strings.Contains(out, "Slots: 0/35 (0%)") || !strings.Contains(out, "0 placed, 1 in pool") {
		t.Errorf("unexpected stats output %q", out)
	}
	if strings.Count(out, "\n") != 1+5 {
		t.Errorf("expected one line per day, got:\n%s", out)
	}
}

func TestResolveDest(t *testing.T) {
	top, err := timetable.NewTopology(
		[]string{"Mon", "Tue"},
		[]timetable.Column{{Label: "9:00"}, {Label: "12:00", Lunch: true}, {Label: "14:00"}},
		[][]string{{"A1", "", "B1"}, {"A1", "", "C1"}},
	)
	if err != nil {
		t.Fatalf("NewTopology failed: %v", err)
	}

	tests := []struct {
		name    string
		arg     string
		want    string
		wantErr error
	}{
		{name: "pool", arg: "pool", want: timetable.PoolID},
		{name: "pool any case", arg: "Pool", want: timetable.PoolID},
		{name: "slot id", arg: "Tue_C1", want: "Tue_C1"},
		{name: "unique code", arg: "b1", want: "Mon_B1"},
		{name: "ambiguous code", arg: "A1", wantErr: ErrAmbiguousSlot},
		{name: "unknown code", arg: "Z9", wantErr: timetable.ErrUnknownList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveDest(top, tt.arg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveDest(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}

func TestMoveTokenAppendWithinSameList(t *testing.T) {
	store := timetable.NewStore(timetable.DefaultTopology())
	a, b, c := store.AddToken(), store.AddToken(), store.AddToken()

	if err := moveToken(store, a, timetable.PoolID, -1); err != nil {
		t.Fatalf("moveToken failed: %v", err)
	}
	want := []string{b, c, a}
	got := store.Pool()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("pool = %v, want %v", got, want)
	}
}
