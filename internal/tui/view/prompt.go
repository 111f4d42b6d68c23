package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const (
	promptPrefix       = "> "
	promptContinuation = "  "
)

// PromptCommand is a command suggestion entry.
type PromptCommand struct {
	Name        string
	Args        string // argument hint, e.g. "[path]"
	Description string
}

// usage renders "/save [path]  Export ..." for the suggestion list.
func (c PromptCommand) usage() string {
	head := c.Name
	if c.Args != "" {
		head += " " + c.Args
	}
	if c.Description == "" {
		return head
	}
	return head + "  " + c.Description
}

// PromptState captures prompt input state for rendering.
type PromptState struct {
	Value      string
	Cursor     string
	ModePrompt bool
}

// PromptLines builds the wrapped input line followed by one entry per
// suggestion. Suggestions are already filtered against the current input
// and only shown while the prompt is focused.
func PromptLines(state PromptState, contentWidth int, suggestions []PromptCommand) []string {
	lines := wrapTextWithPrefix(state.Value+state.Cursor, promptPrefix, promptContinuation, contentWidth)
	if !state.ModePrompt {
		return lines
	}
	for _, cmd := range suggestions {
		lines = append(lines, wrapTextWithPrefix(cmd.usage(), promptContinuation, promptContinuation+"  ", contentWidth)...)
	}
	return lines
}

// ClampPromptLines keeps at most maxLines lines and marks the cut with an
// ellipsis on the last kept line.
func ClampPromptLines(lines []string, maxLines, width int) []string {
	if maxLines <= 0 {
		return nil
	}
	if len(lines) <= maxLines {
		return lines
	}

	clamped := append([]string(nil), lines[:maxLines]...)
	last := clamped[maxLines-1]
	if width > 0 && ansi.StringWidth(last) >= width {
		last = ansi.Truncate(last, width-1, "")
	}
	clamped[maxLines-1] = last + "…"
	return clamped
}

// WrapTextToWidths wraps text on spaces, using firstWidth cells for the first
// line and otherWidth for the rest. Words longer than a line are split.
func WrapTextToWidths(s string, firstWidth, otherWidth int) []string {
	if firstWidth <= 0 || otherWidth <= 0 || s == "" {
		return []string{""}
	}

	runes := []rune(s)
	lines := make([]string, 0, 4)
	width := firstWidth
	start, lastSpace, used := 0, -1, 0

	for i := 0; i < len(runes); i++ {
		if runes[i] == ' ' {
			lastSpace = i
		}
		w := runewidth.RuneWidth(runes[i])
		if used+w <= width {
			used += w
			continue
		}

		if lastSpace >= start {
			lines = append(lines, string(runes[start:lastSpace]))
			start = lastSpace + 1
			i = lastSpace
		} else {
			lines = append(lines, string(runes[start:i]))
			start = i
			i--
		}
		width, lastSpace, used = otherWidth, -1, 0
	}

	return append(lines, string(runes[start:]))
}

// RenderPrompt renders the prompt box with the provided lines.
func RenderPrompt(width int, style lipgloss.Style, lines []string) string {
	frameW, _ := style.GetFrameSize()
	style = style.Width(max(0, width-frameW))
	if len(lines) == 0 {
		lines = []string{""}
	}
	return style.Render(strings.Join(lines, "\n"))
}

// RenderPromptPlaceholder renders an empty prompt box with matching height.
func RenderPromptPlaceholder(width int, style lipgloss.Style, maxContentLines int) string {
	return RenderPrompt(width, style, make([]string, max(1, maxContentLines)))
}

func wrapTextWithPrefix(s, prefix, continuation string, width int) []string {
	if width <= 0 {
		return []string{""}
	}

	lines := WrapTextToWidths(s, max(0, width-len(prefix)), max(0, width-len(continuation)))
	for i := range lines {
		if i == 0 {
			lines[i] = prefix + lines[i]
		} else {
			lines[i] = continuation + lines[i]
		}
	}
	return lines
}
