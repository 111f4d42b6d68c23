package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Footer holds the footer content and styles. A full footer shows the
// stats bar, legend, prompt row, status and help; a compact one only the
// last two.
type Footer struct {
	InnerW     int
	FooterH    int
	FullFooter bool

	StatsLine  string
	LegendText string
	StatusText string
	HelpText   string

	// The prompt row shows the prompt while it may be used, otherwise the
	// banner (the token being moved) or an empty prompt frame.
	PromptLines []string
	PromptMax   int
	PromptFocus bool
	ShowPrompt  bool
	Banner      string

	LegendStyle      lipgloss.Style
	StatusStyle      lipgloss.Style
	HelpStyle        lipgloss.Style
	BannerStyle      lipgloss.Style
	PromptStyle      lipgloss.Style
	PromptFocusStyle lipgloss.Style
	Bg               lipgloss.Color
}

// RenderFooter renders the footer pinned to the bottom of its box.
func RenderFooter(f Footer) string {
	if f.FooterH <= 0 {
		return ""
	}

	lines := make([]string, 0, 5)
	if f.FullFooter {
		lines = append(lines,
			f.StatsLine,
			footerLine(f.InnerW, f.LegendStyle, f.LegendText),
			f.promptRow(),
		)
	}
	lines = append(lines,
		footerLine(f.InnerW, f.StatusStyle, f.StatusText),
		footerLine(f.InnerW, f.HelpStyle, f.HelpText),
	)

	return PlaceBox(f.InnerW, f.FooterH, lipgloss.Bottom, strings.Join(lines, "\n"), f.Bg)
}

func (f Footer) promptRow() string {
	switch {
	case f.ShowPrompt:
		style := f.PromptStyle
		if f.PromptFocus {
			style = f.PromptFocusStyle
		}
		return RenderPrompt(f.InnerW, style, f.PromptLines)
	case f.Banner != "":
		// Same height as the prompt frame so the grid does not jump.
		frameW, _ := f.BannerStyle.GetFrameSize()
		lines := make([]string, max(1, f.PromptMax))
		lines[0] = ansi.Truncate(f.Banner, max(0, f.InnerW-frameW), "…")
		return RenderPrompt(f.InnerW, f.BannerStyle, lines)
	default:
		return RenderPromptPlaceholder(f.InnerW, f.PromptStyle, f.PromptMax)
	}
}

// footerLine renders content on one line, truncated to the style's inner width.
func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := max(0, width-frameW)
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "")
	}
	return style.Width(contentWidth).Render(content)
}
