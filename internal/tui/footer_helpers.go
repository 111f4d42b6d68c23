package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/slotfill/internal/tui/view"
)

// statusMsgOrDefault returns the status message or a space to preserve layout.
func (m Model) statusMsgOrDefault() string {
	if m.statusMsg == "" {
		return " "
	}
	return m.statusMsg
}

// renderStatsBar renders the occupancy bar.
func (m Model) renderStatsBar(width int) string {
	stats := m.store.Stats()

	barStyle := lipgloss.NewStyle().
		Foreground(m.styles.colorFg).
		Background(m.styles.colorBg)
	keyStyle := m.styles.StatsKeyStyle
	warnStyle := barStyle.
		Foreground(m.styles.colorWarning).
		Bold(true)

	var bar strings.Builder
	bar.WriteString(barStyle.Render("Slots: "))
	bar.WriteString(keyStyle.Render(view.FormatFill(stats.FilledSlots, stats.TotalSlots)))
	bar.WriteString(barStyle.Render(fmt.Sprintf(" | Tokens: %d placed, %d in pool", stats.Placed, stats.InPool)))

	row := m.cursor.Row
	if row < len(stats.Days) {
		ds := stats.Days[row]
		bar.WriteString(barStyle.Render(fmt.Sprintf(" | %s: ", ds.Day)))
		bar.WriteString(keyStyle.Render(view.FormatFill(ds.FilledSlots, ds.TotalSlots)))
	}
	bar.WriteString(barStyle.Render(" | " + m.slotLabel()))

	if m.loading {
		bar.WriteString(barStyle.Render(" [Loading...]"))
	}
	if m.mode == ModeMove && m.moving != nil {
		bar.WriteString(warnStyle.Render(" [MOVE " + m.moving.ID + "]"))
	}
	if m.dirty {
		bar.WriteString(warnStyle.Render(" [unsaved]"))
	}

	statsStyle := m.layoutCache.StatsBarStyle
	frameW, _ := statsStyle.GetFrameSize()
	contentWidth := max(0, width-frameW)
	statsStyle = statsStyle.Width(contentWidth)
	content := bar.String()
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "")
	}
	return statsStyle.Render(content)
}

// renderLegend renders the legend for token states.
func (m Model) renderLegend() string {
	baseStyle := lipgloss.NewStyle().
		Foreground(m.styles.colorFg).
		Background(m.styles.colorBg)
	sep := baseStyle.Render("  ")

	var legend strings.Builder
	legend.WriteString(baseStyle.Render("Legend: "))
	legend.WriteString(m.styles.TokenStyle.Render(" placed "))
	legend.WriteString(sep)
	legend.WriteString(m.styles.PoolTokenStyle.Render("pool"))
	legend.WriteString(sep)
	legend.WriteString(m.styles.TokenSelectedStyle.Render(" selected "))
	legend.WriteString(sep)
	legend.WriteString(m.styles.LunchCellStyle.Render(" " + lunchLabel + " "))
	return legend.String()
}

// promptCursor returns the cursor character if in prompt mode.
func (m Model) promptCursor() string {
	if m.mode == ModePrompt {
		return "_"
	}
	return ""
}

// renderHelp renders the help bar.
func (m Model) renderHelp() string {
	var help string
	switch m.mode {
	case ModeMove:
		help = "MOVE: h/j/k/l: target | Tab: position | Enter/Space: drop | Esc: cancel"
	case ModePrompt:
		help = "Enter: submit | Tab: complete | Esc: cancel"
	case ModeModal:
		switch m.modalType {
		case ModalTokenForm:
			help = "Enter: save | Esc: cancel"
		case ModalConfirmReset:
			help = "y/Enter: reset | n/Esc: keep"
		case ModalInit:
			help = "Enter: allow | Esc: quit"
		case ModalConfirmQuit:
			help = "y/Enter: save and quit | n: discard | Esc: stay"
		default:
			help = "Esc: close"
		}
	default:
		help = "h/j/k/l: navigate | a: add | e: edit | Space: move | x: remove | s: save | o: load | ?: help | q: quit"
	}
	return m.styles.HelpStyle.Render(help)
}
