// Package view provides rendering helpers for the TUI.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// TokenLabel returns the text shown for a token, falling back to its id
// when the label is blank, truncated to width cells.
func TokenLabel(id, text string, width int) string {
	label := strings.TrimSpace(text)
	if label == "" {
		label = id
	}
	if width <= 0 {
		return label
	}
	return ansi.Truncate(label, width, "…")
}

// FormatFill formats an occupancy ratio as "n/total (p%)".
func FormatFill(n, total int) string {
	if total <= 0 {
		return fmt.Sprintf("%d/0", n)
	}
	return fmt.Sprintf("%d/%d (%d%%)", n, total, n*100/total)
}
