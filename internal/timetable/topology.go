package timetable

import (
	"errors"
	"fmt"
)

// PoolID is the reserved list identifier for tokens not yet placed on the grid.
const PoolID = "pool"

// Topology validation errors.
var (
	ErrEmptyTopology     = errors.New("topology needs at least one day and one column")
	ErrTopologyShape     = errors.New("slot code matrix does not match days and columns")
	ErrLunchCellHasCode  = errors.New("lunch cells cannot carry a slot code")
	ErrMissingSlotCode   = errors.New("non-lunch cell has no slot code")
	ErrDuplicateSlotCode = errors.New("slot code used twice on the same day")
)

// Column is one time column of the grid.
type Column struct {
	Label string
	Lunch bool
}

// Topology is the fixed grid layout: days are rows, columns are time slots.
type Topology struct {
	days    []string
	columns []Column
	codes   [][]string

	slotIDs []string
	index   map[string][2]int
}

// SlotID builds the list identifier of a grid cell.
func SlotID(day, code string) string {
	return day + "_" + code
}

// NewTopology validates the layout and builds the slot index.
// codes[row][col] must be empty exactly where columns[col] is a lunch column.
func NewTopology(days []string, columns []Column, codes [][]string) (*Topology, error) {
	if len(days) == 0 || len(columns) == 0 {
		return nil, ErrEmptyTopology
	}
	if len(codes) != len(days) {
		return nil, fmt.Errorf("%w: %d rows for %d days", ErrTopologyShape, len(codes), len(days))
	}

	t := &Topology{
		days:    append([]string(nil), days...),
		columns: append([]Column(nil), columns...),
		codes:   make([][]string, len(codes)),
		index:   make(map[string][2]int),
	}

	for row, rowCodes := range codes {
		if len(rowCodes) != len(columns) {
			return nil, fmt.Errorf("%w: %s has %d cells, want %d", ErrTopologyShape, days[row], len(rowCodes), len(columns))
		}
		t.codes[row] = append([]string(nil), rowCodes...)
		for col, code := range rowCodes {
			if columns[col].Lunch {
				if code != "" {
					return nil, fmt.Errorf("%w: %s column %q", ErrLunchCellHasCode, days[row], columns[col].Label)
				}
				continue
			}
			if code == "" {
				return nil, fmt.Errorf("%w: %s column %q", ErrMissingSlotCode, days[row], columns[col].Label)
			}
			id := SlotID(days[row], code)
			if _, dup := t.index[id]; dup {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateSlotCode, id)
			}
			t.index[id] = [2]int{row, col}
			t.slotIDs = append(t.slotIDs, id)
		}
	}

	return t, nil
}

// Default FFCS layout.
var (
	defaultDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

	defaultColumns = []Column{
		{Label: "8:30–10:00 AM"},
		{Label: "10:05–11:35 AM"},
		{Label: "11:40 AM–1:10 PM"},
		{Label: "Lunch", Lunch: true},
		{Label: "1:15–2:45 PM"},
		{Label: "2:50–4:20 PM"},
		{Label: "4:25–5:55 PM"},
		{Label: "6:00–7:30 PM"},
	}

	defaultCodes = [][]string{
		{"A11", "B11", "C11", "", "A21", "A14", "B21", "C21"},
		{"D11", "E11", "F11", "", "D21", "E14", "E21", "F21"},
		{"A12", "B12", "C12", "", "A22", "B14", "B22", "A24"},
		{"D12", "E12", "F12", "", "D22", "F14", "E22", "F22"},
		{"A13", "B13", "C13", "", "A23", "C14", "B23", "B24"},
	}
)

// DefaultDays returns the default day labels.
func DefaultDays() []string { return append([]string(nil), defaultDays...) }

// DefaultColumns returns the default time columns.
func DefaultColumns() []Column { return append([]Column(nil), defaultColumns...) }

// DefaultCodes returns a copy of the default slot code matrix.
func DefaultCodes() [][]string {
	out := make([][]string, len(defaultCodes))
	for i, row := range defaultCodes {
		out[i] = append([]string(nil), row...)
	}
	return out
}

// DefaultTopology returns the 5-day, 8-column grid with a lunch break.
func DefaultTopology() *Topology {
	t, err := NewTopology(defaultDays, defaultColumns, defaultCodes)
	if err != nil {
		panic(err)
	}
	return t
}

// Days returns the day labels in row order.
func (t *Topology) Days() []string { return append([]string(nil), t.days...) }

// Columns returns the time columns in order.
func (t *Topology) Columns() []Column { return append([]Column(nil), t.columns...) }

// Rows returns the number of grid rows (days).
func (t *Topology) Rows() int { return len(t.days) }

// Cols returns the number of grid columns.
func (t *Topology) Cols() int { return len(t.columns) }

// SlotIDs returns every droppable slot identifier in row-major order.
func (t *Topology) SlotIDs() []string { return append([]string(nil), t.slotIDs...) }

// Code returns the slot code of a cell, or "" for lunch and out-of-range cells.
func (t *Topology) Code(row, col int) string {
	if row < 0 || row >= len(t.codes) || col < 0 || col >= len(t.columns) {
		return ""
	}
	return t.codes[row][col]
}

// Cell returns the slot identifier of a cell. ok is false for lunch cells
// and positions outside the grid.
func (t *Topology) Cell(row, col int) (string, bool) {
	code := t.Code(row, col)
	if code == "" {
		return "", false
	}
	return SlotID(t.days[row], code), true
}

// Locate returns the grid position of a slot identifier.
func (t *Topology) Locate(slotID string) (row, col int, ok bool) {
	pos, ok := t.index[slotID]
	if !ok {
		return 0, 0, false
	}
	return pos[0], pos[1], true
}

// HasSlot reports whether slotID names a grid cell.
func (t *Topology) HasSlot(slotID string) bool {
	_, ok := t.index[slotID]
	return ok
}

// IsDroppable reports whether tokens can be placed into the list.
func (t *Topology) IsDroppable(listID string) bool {
	return listID == PoolID || t.HasSlot(listID)
}

// ResolveCode finds the slot identifier for a bare code like "A11".
// Codes are unique per day, so a code matching several days is ambiguous.
func (t *Topology) ResolveCode(code string) ([]string, bool) {
	var ids []string
	for row, day := range t.days {
		for _, c := range t.codes[row] {
			if c != "" && c == code {
				ids = append(ids, SlotID(day, c))
			}
		}
	}
	return ids, len(ids) > 0
}
