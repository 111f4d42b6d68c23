package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PoolChip is one token rendered in the pool strip.
type PoolChip struct {
	Label string
	Style lipgloss.Style
}

// PoolViewState holds the pool strip content.
type PoolViewState struct {
	InnerW      int
	Title       string
	TitleStyle  lipgloss.Style
	EmptyText   string
	EmptyStyle  lipgloss.Style
	Chips       []PoolChip
	BorderStyle lipgloss.Style
	Bg          lipgloss.Color
}

// RenderPool renders the pool as a bordered strip of wrapped chips.
func RenderPool(state PoolViewState) string {
	frameW, _ := state.BorderStyle.GetFrameSize()
	contentW := max(1, state.InnerW-frameW)
	gap := lipgloss.NewStyle().Background(state.Bg).Render(" ")

	lines := []string{state.TitleStyle.Render(state.Title)}
	if len(state.Chips) == 0 {
		lines = append(lines, state.EmptyStyle.Render(state.EmptyText))
	}

	var line strings.Builder
	lineW := 0
	for _, chip := range state.Chips {
		rendered := chip.Style.Render(chip.Label)
		w := lipgloss.Width(rendered)
		if lineW > 0 && lineW+1+w > contentW {
			lines = append(lines, line.String())
			line.Reset()
			lineW = 0
		}
		if lineW > 0 {
			line.WriteString(gap)
			lineW++
		}
		line.WriteString(rendered)
		lineW += w
	}
	if lineW > 0 {
		lines = append(lines, line.String())
	}

	body := PadLinesWithBackground(strings.Join(lines, "\n"), contentW, len(lines), state.Bg)
	return state.BorderStyle.Width(contentW).Render(body)
}
