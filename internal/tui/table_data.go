package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/slotfill/internal/timetable"
	"github.com/javiermolinar/slotfill/internal/tui/view"
)

const (
	minCellWidth = 4
	dropMarker   = "▸ drop here"
	lunchLabel   = "lunch"
)

// cellWidth is the content width of one grid column for the given inner width.
func (m Model) cellWidth(innerW int) int {
	cols := m.topology.Cols()
	if cols == 0 {
		return minCellWidth
	}
	// Outer table borders, one separator per column and the day column.
	chrome := 2 + 2 + cols + dayColWidth
	return max(minCellWidth, (innerW-chrome)/cols)
}

func (m Model) buildGridTableRows(cellW int) ([][]string, [][]lipgloss.Style) {
	rowsN := m.topology.Rows()
	days := m.topology.Days()

	rows := make([][]string, 0, rowsN)
	cellStyles := make([][]lipgloss.Style, 0, rowsN)

	for r := 0; r < rowsN; r++ {
		row := make([]string, 0, m.topology.Cols()+1)
		rowStyles := make([]lipgloss.Style, 0, m.topology.Cols()+1)

		row = append(row, view.DayLabel(days[r]))
		rowStyles = append(rowStyles, m.styles.DayColumnStyle)

		for c := 0; c < m.topology.Cols(); c++ {
			style, lines := m.cellStyleAndLines(Position{Row: r, Col: c}, cellW)
			row = append(row, strings.Join(lines, "\n"))
			rowStyles = append(rowStyles, style)
		}

		rows = append(rows, row)
		cellStyles = append(cellStyles, rowStyles)
	}

	return rows, cellStyles
}

func (m Model) cellStyleAndLines(pos Position, cellW int) (lipgloss.Style, []string) {
	isCursor := pos.Row == m.cursor.Row && pos.Col == m.cursor.Col

	listID, ok := m.topology.Cell(pos.Row, pos.Col)
	if !ok {
		style := m.styles.LunchCellStyle
		if isCursor {
			style = style.Background(m.styles.colorWarning)
		}
		return style, []string{lunchLabel}
	}

	style := m.styles.CellStyle
	codeStyle := m.styles.SlotCodeStyle
	if isCursor {
		codeStyle = m.styles.CursorCodeStyle
		style = m.styles.CursorCellStyle
		if m.moving != nil {
			style = m.styles.TargetCellStyle
		}
	}

	lines := []string{codeStyle.Render(m.topology.Code(pos.Row, pos.Col))}
	lines = append(lines, m.tokenLines(listID, isCursor, cellW)...)
	return style, lines
}

// tokenLines renders the stacked tokens of a list. While moving, the drop
// marker is placed at the insertion point counted without the moving token.
func (m Model) tokenLines(listID string, isCursor bool, width int) []string {
	ids := m.store.List(listID)
	lines := make([]string, 0, len(ids)+1)

	showMarker := isCursor && m.moving != nil
	marker := m.styles.DropMarkerStyle.Width(width).Render(view.TokenLabel("", dropMarker, width))

	slot := 0 // insertion index among the non-moving tokens
	for i, id := range ids {
		moving := m.moving != nil && id == m.moving.ID
		if showMarker && !moving && slot == m.cursor.Item {
			lines = append(lines, marker)
			showMarker = false
		}

		tok, _ := m.store.Token(id)
		label := view.TokenLabel(id, tok.Text, width)

		style := m.styles.tokenStyle(i)
		switch {
		case moving:
			style = m.styles.TokenMovingStyle
		case isCursor && m.moving == nil && i == m.cursor.Item:
			style = m.styles.TokenSelectedStyle
		}
		lines = append(lines, style.Width(width).Render(label))

		if !moving {
			slot++
		}
	}
	if showMarker {
		lines = append(lines, marker)
	}
	return lines
}

// poolChips renders the pool tokens with the same cursor and move cues as
// grid cells.
func (m Model) poolChips(width int) []view.PoolChip {
	ids := m.store.Pool()
	onPool := m.onPool()
	chips := make([]view.PoolChip, 0, len(ids)+1)

	marker := view.PoolChip{Label: dropMarker, Style: m.styles.DropMarkerStyle.Padding(0, 1)}
	showMarker := onPool && m.moving != nil

	slot := 0
	for i, id := range ids {
		moving := m.moving != nil && id == m.moving.ID
		if showMarker && !moving && slot == m.cursor.Item {
			chips = append(chips, marker)
			showMarker = false
		}

		tok, _ := m.store.Token(id)
		style := m.styles.PoolTokenStyle
		switch {
		case moving:
			style = m.styles.TokenMovingStyle.Padding(0, 1)
		case onPool && m.moving == nil && i == m.cursor.Item:
			style = m.styles.TokenSelectedStyle.Padding(0, 1)
		}
		chips = append(chips, view.PoolChip{Label: view.TokenLabel(id, tok.Text, width), Style: style})

		if !moving {
			slot++
		}
	}
	if showMarker {
		chips = append(chips, marker)
	}
	return chips
}

func (m Model) tableViewState(layout LayoutCache, gridH int) view.TableViewState {
	if gridH <= 0 || m.topology.Rows() == 0 {
		return view.TableViewState{Render: false}
	}

	headers, lunchCols := view.HeaderLabels(m.topology.Columns())
	rows, cellStyles := m.buildGridTableRows(m.cellWidth(layout.InnerW))

	headerStyles := make([]lipgloss.Style, len(headers))
	if len(headers) > 0 {
		headerStyles[0] = m.styles.DayColumnStyle
	}
	for i := 1; i < len(headers); i++ {
		style := m.styles.ColumnHeader
		if lunchCols[i] {
			style = m.styles.LunchHeaderStyle
		}
		headerStyles[i] = style
	}

	return view.TableViewState{
		InnerW:       layout.InnerW,
		GridH:        gridH,
		Headers:      headers,
		HeaderStyles: headerStyles,
		Content: view.TableContent{
			Rows:       rows,
			CellStyles: cellStyles,
		},
		BorderStyle: m.styles.TableBorderStyle,
		VAlign:      lipgloss.Top,
		Bg:          m.styles.colorBg,
		Render:      true,
	}
}

func (m Model) poolViewState(layout LayoutCache) view.PoolViewState {
	border := m.styles.PoolStyle
	if m.onPool() {
		border = m.styles.PoolActiveStyle
	}
	title := "Pool"
	if n := len(m.store.Pool()); n > 0 {
		title = fmt.Sprintf("Pool (%d)", n)
	}

	return view.PoolViewState{
		InnerW:      layout.InnerW,
		Title:       title,
		TitleStyle:  m.styles.PoolTitleStyle,
		EmptyText:   "empty, press a to add a token",
		EmptyStyle:  m.styles.PoolEmptyStyle,
		Chips:       m.poolChips(max(minCellWidth, layout.InnerW/3)),
		BorderStyle: border,
		Bg:          m.styles.colorBg,
	}
}

// slotLabel names the list under the cursor for the stats bar.
func (m Model) slotLabel() string {
	listID, ok := m.listAtCursor()
	if !ok {
		return lunchLabel
	}
	if listID == timetable.PoolID {
		return "Pool"
	}
	return view.LocationLabel(m.topology, listID)
}
