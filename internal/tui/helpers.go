package tui

import (
	"time"

	"github.com/javiermolinar/slotfill/internal/timetable"
)

// Layout constants
const (
	// Footer heights
	footerCompact = 2
	// Full footer includes stats, legend, prompt box, status, and help
	footerBaseLines       = 4 // Stats(1) + Legend(1) + Status(1) + Help(1)
	promptBorderLines     = 2
	promptMinContentLines = 1

	footerMinHeight     = footerBaseLines + promptBorderLines + promptMinContentLines
	footerFullMinHeight = 24

	statusDuration = 3 * time.Second
	errorDuration  = 5 * time.Second
)

// poolRow is the cursor row index of the pool.
func (m *Model) poolRow() int {
	return m.topology.Rows()
}

func (m *Model) onPool() bool {
	return m.cursor.Row == m.poolRow()
}

// listAt returns the list id under a grid position. Lunch cells have none.
func (m *Model) listAt(pos Position) (string, bool) {
	if pos.Row == m.poolRow() {
		return timetable.PoolID, true
	}
	return m.topology.Cell(pos.Row, pos.Col)
}

// listAtCursor returns the list under the cursor.
func (m *Model) listAtCursor() (string, bool) {
	return m.listAt(m.cursor)
}

// isLunchAt reports whether pos is a grid cell in a lunch column.
func (m *Model) isLunchAt(pos Position) bool {
	if pos.Row == m.poolRow() || pos.Col < 0 || pos.Col >= m.topology.Cols() {
		return false
	}
	return m.topology.Columns()[pos.Col].Lunch
}

// tokenAtCursor returns the token the cursor selects and its location.
func (m *Model) tokenAtCursor() (string, timetable.Location, bool) {
	listID, ok := m.listAtCursor()
	if !ok {
		return "", timetable.Location{}, false
	}
	ids := m.store.List(listID)
	if m.cursor.Item < 0 || m.cursor.Item >= len(ids) {
		return "", timetable.Location{}, false
	}
	return ids[m.cursor.Item], timetable.Location{List: listID, Index: m.cursor.Item}, true
}

// itemLimit is the largest valid Item for the current cell. While moving, the
// cursor addresses insertion points in the list without the picked token.
func (m *Model) itemLimit() int {
	listID, ok := m.listAtCursor()
	if !ok {
		return 0
	}
	n := len(m.store.List(listID))
	if m.moving == nil {
		return max(0, n-1)
	}
	if listID == m.moving.Source {
		n--
	}
	return max(0, n)
}

// clampCursor keeps the cursor inside the grid and off lunch cells outside
// move mode.
func (m *Model) clampCursor() {
	m.cursor.Row = clamp(m.cursor.Row, 0, m.poolRow())
	if m.onPool() {
		m.cursor.Col = 0
	} else {
		m.cursor.Col = clamp(m.cursor.Col, 0, m.topology.Cols()-1)
		if m.moving == nil && m.isLunchAt(m.cursor) {
			m.cursor.Col = m.nextCol(m.cursor.Col, 1)
		}
	}
	m.cursor.Item = clamp(m.cursor.Item, 0, m.itemLimit())
}

// nextCol steps from col in direction dir, skipping lunch columns unless a
// token is being moved. It stays put at the grid edge.
func (m *Model) nextCol(col, dir int) int {
	cols := m.topology.Cols()
	for c := col + dir; c >= 0 && c < cols; c += dir {
		if m.moving != nil || !m.topology.Columns()[c].Lunch {
			return c
		}
	}
	if m.moving == nil && m.topology.Columns()[col].Lunch {
		// Started on a lunch column at the edge: search the other way.
		for c := col - dir; c >= 0 && c < cols; c -= dir {
			if !m.topology.Columns()[c].Lunch {
				return c
			}
		}
	}
	return col
}

func (m *Model) moveCursorLeft() {
	if m.onPool() {
		m.cursor.Item = max(0, m.cursor.Item-1)
		return
	}
	m.cursor.Col = m.nextCol(m.cursor.Col, -1)
	m.cursor.Item = 0
	m.clampCursor()
}

func (m *Model) moveCursorRight() {
	if m.onPool() {
		m.cursor.Item = min(m.itemLimit(), m.cursor.Item+1)
		return
	}
	m.cursor.Col = m.nextCol(m.cursor.Col, 1)
	m.cursor.Item = 0
	m.clampCursor()
}

func (m *Model) moveCursorUp() {
	if m.cursor.Row == 0 {
		return
	}
	m.cursor.Row--
	m.cursor.Item = 0
	m.clampCursor()
}

func (m *Model) moveCursorDown() {
	if m.cursor.Row >= m.poolRow() {
		return
	}
	m.cursor.Row++
	m.cursor.Item = 0
	m.clampCursor()
}

// cycleItem steps through the tokens (or insertion points) of the cell.
func (m *Model) cycleItem(dir int) {
	limit := m.itemLimit() + 1
	m.cursor.Item = ((m.cursor.Item+dir)%limit + limit) % limit
}

// focusToken puts the cursor on the token's current location.
func (m *Model) focusToken(id string) {
	loc, ok := m.store.Locate(id)
	if !ok {
		return
	}
	if loc.List == timetable.PoolID {
		m.cursor = Position{Row: m.poolRow(), Item: loc.Index}
		return
	}
	row, col, ok := m.topology.Locate(loc.List)
	if !ok {
		return
	}
	m.cursor = Position{Row: row, Col: col, Item: loc.Index}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
