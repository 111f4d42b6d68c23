package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/slotfill/internal/timetable"
	"github.com/javiermolinar/slotfill/internal/tui/view"
)

const (
	dayColWidth  = 10
	minCellWidth = 6
	lunchText    = "lunch"
)

// PrintOpts configures grid printing behavior.
type PrintOpts struct {
	Width int // Total output width (0 = terminal width)
}

// CellWidth returns the width of one grid column for the given column count.
func (o PrintOpts) CellWidth(cols int) int {
	width := o.Width
	if width <= 0 {
		width = termWidth()
	}
	if cols <= 0 {
		return minCellWidth
	}
	// One space between columns.
	return max(minCellWidth, (width-dayColWidth)/cols-1)
}

// PrintGrid prints the timetable: one block per day with slot codes on the
// first line and the stacked token labels below.
func PrintGrid(w io.Writer, s *timetable.Store, opts PrintOpts) {
	top := s.Topology()
	cellW := opts.CellWidth(top.Cols())

	// Column labels
	header := []string{pad("", dayColWidth)}
	for _, col := range top.Columns() {
		label := col.Label
		if col.Lunch {
			label = lunchText
		}
		header = append(header, formatMuted(pad(label, cellW)))
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(header, " "), " "))

	for row, day := range top.Days() {
		lines := gridRowLines(s, row, cellW)
		for i, line := range lines {
			lead := pad("", dayColWidth)
			if i == 0 {
				lead = formatHeader(pad(day, dayColWidth))
			}
			fmt.Fprintln(w, strings.TrimRight(lead+" "+strings.Join(line, " "), " "))
		}
	}
}

// gridRowLines lays out one day as rows of already formatted cells.
func gridRowLines(s *timetable.Store, row, cellW int) [][]string {
	top := s.Topology()
	cols := top.Cols()

	height := 1
	for col := 0; col < cols; col++ {
		if id, ok := top.Cell(row, col); ok {
			height = max(height, 1+len(s.Slot(id)))
		}
	}

	lines := make([][]string, height)
	for i := range lines {
		lines[i] = make([]string, cols)
	}

	for col := 0; col < cols; col++ {
		id, ok := top.Cell(row, col)
		if !ok {
			lines[0][col] = formatLunch(pad("·", cellW))
			for i := 1; i < height; i++ {
				lines[i][col] = pad("", cellW)
			}
			continue
		}

		lines[0][col] = formatMuted(pad(top.Code(row, col), cellW))
		tokens := s.Slot(id)
		for i := 1; i < height; i++ {
			if i-1 >= len(tokens) {
				lines[i][col] = pad("", cellW)
				continue
			}
			tok, _ := s.Token(tokens[i-1])
			lines[i][col] = formatToken(pad(tok.Label(), cellW))
		}
	}
	return lines
}

// PrintPool prints the unplaced tokens on one line each.
func PrintPool(w io.Writer, s *timetable.Store) {
	pool := s.Pool()
	fmt.Fprintf(w, "%s\n", formatHeader(fmt.Sprintf("Pool (%d)", len(pool))))
	if len(pool) == 0 {
		fmt.Fprintf(w, "  %s\n", formatMuted("empty"))
		return
	}
	for _, id := range pool {
		tok, _ := s.Token(id)
		fmt.Fprintf(w, "  %s  %s\n", formatPool(pad(id, 8)), tokenText(tok))
	}
}

// PrintStats prints the occupancy summary and the per-day fill bars.
func PrintStats(w io.Writer, stats timetable.Stats) {
	fmt.Fprintf(w, "Slots: %s | Tokens: %d placed, %d in pool\n",
		formatStats(view.FormatFill(stats.FilledSlots, stats.TotalSlots)),
		stats.Placed, stats.InPool)

	for _, ds := range stats.Days {
		fmt.Fprintf(w, "  %s %s %s\n",
			pad(ds.Day, dayColWidth),
			FillBar(ds.FilledSlots, ds.TotalSlots, 14),
			formatMuted(fmt.Sprintf("%d/%d", ds.FilledSlots, ds.TotalSlots)))
	}
}

// FillBar creates a progress bar showing how many slots hold a token.
func FillBar(filled, total, width int) string {
	if total <= 0 || filled <= 0 {
		return "[" + strings.Repeat("░", width) + "]"
	}
	n := min(width, (filled*width)/total)
	return "[" + formatToken(strings.Repeat("█", n)) + strings.Repeat("░", width-n) + "]"
}

// tokenText is the label shown next to an id, muted when blank.
func tokenText(tok timetable.Token) string {
	if strings.TrimSpace(tok.Text) == "" {
		return formatMuted("(no label)")
	}
	return tok.Text
}

// pad truncates s to width cells and fills the rest with spaces.
func pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}
