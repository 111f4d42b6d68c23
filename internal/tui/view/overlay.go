package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderModalOverlay centers modalContent over baseContent. The grid stays
// visible around the modal; every modal line keeps modalBg after any style
// reset embedded in it.
func RenderModalOverlay(baseContent, modalContent string, width, height int, modalBg lipgloss.Color) string {
	modal := strings.Split(modalContent, "\n")
	modalW := min(width, lipgloss.Width(modalContent))
	if modalW <= 0 || modalContent == "" {
		return baseContent
	}

	top := max(0, (height-len(modal))/2)
	left := max(0, (width-modalW)/2)

	base := strings.Split(PadLinesWithBackground(baseContent, width, height, ""), "\n")
	for i, line := range modal {
		row := top + i
		if row >= len(base) {
			break
		}
		under := base[row]
		base[row] = ansi.Cut(under, 0, left) +
			fitModalLine(line, modalW, modalBg) +
			ansi.Cut(under, left+modalW, width)
	}
	return strings.Join(base, "\n")
}

// fitModalLine cuts or pads a modal line to exactly w cells.
func fitModalLine(line string, w int, modalBg lipgloss.Color) string {
	lineW := lipgloss.Width(line)
	switch {
	case lineW > w:
		line = ansi.Cut(line, 0, w)
	case lineW < w:
		line += lipgloss.NewStyle().Background(modalBg).Render(strings.Repeat(" ", w-lineW))
	}
	return ApplyModalBackgroundResets(line, modalBg) + ansi.ResetStyle
}

// ApplyModalBackgroundResets re-enables the modal background after every
// reset sequence, so unstyled gaps inside the modal are not transparent.
func ApplyModalBackgroundResets(line string, modalBg lipgloss.Color) string {
	bgSeq := ModalBackgroundSeq(modalBg)
	if bgSeq == "" {
		return line
	}
	for _, reset := range []string{ansi.ResetStyle, "\x1b[0m", "\x1b[49m"} {
		line = strings.ReplaceAll(line, reset, reset+bgSeq)
	}
	return line
}

// ModalBackgroundSeq returns the SGR sequence selecting modalBg as background.
func ModalBackgroundSeq(modalBg lipgloss.Color) string {
	if modalBg == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(modalBg))).String()
}
