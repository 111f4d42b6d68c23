package tui

import "github.com/charmbracelet/lipgloss"

// LayoutCache stores layout dimensions and styles derived from the window size.
type LayoutCache struct {
	InnerW int
	InnerH int

	FooterH int

	FooterAuxStyle lipgloss.Style
	StatusAuxStyle lipgloss.Style
	HelpAuxStyle   lipgloss.Style

	StatsBarStyle      lipgloss.Style
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style
	PromptContentWidth int
}

// FullFooter reports whether there is room for stats, legend and prompt.
func (c LayoutCache) FullFooter() bool {
	return c.FooterH > footerCompact
}

func promptContentWidth(styles *Styles, innerW int) int {
	promptFrameW, _ := styles.PromptStyle.GetFrameSize()
	promptWidth := innerW - promptFrameW
	if promptWidth < 0 {
		promptWidth = 0
	}
	if promptWidth < 20 && innerW >= promptFrameW+20 {
		promptWidth = 20
	}
	return promptWidth
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	styles := m.styles
	appH, appV := styles.AppStyle.GetFrameSize()
	innerW := max(0, width-appH)
	innerH := max(0, height-appV)

	footerH := footerCompact
	if innerH >= footerFullMinHeight {
		promptWidth := promptContentWidth(styles, innerW)
		footerH = m.fullFooterHeight(innerH, promptWidth)
	}

	footerAuxStyle := lipgloss.NewStyle().
		Padding(0, 0).
		Width(innerW).
		Background(styles.colorBg)
	statusAuxStyle := styles.StatusStyle.Inherit(footerAuxStyle)
	helpAuxStyle := styles.HelpStyle.Inherit(lipgloss.NewStyle().
		Padding(0, 1).
		Width(max(0, innerW-2)).
		Background(styles.colorBg))

	promptWidth := promptContentWidth(styles, innerW)

	return LayoutCache{
		InnerW:             innerW,
		InnerH:             innerH,
		FooterH:            footerH,
		FooterAuxStyle:     footerAuxStyle,
		StatusAuxStyle:     statusAuxStyle,
		HelpAuxStyle:       helpAuxStyle,
		StatsBarStyle:      styles.StatsBarStyle.Width(innerW),
		PromptStyle:        styles.PromptStyle.Width(promptWidth),
		PromptFocusedStyle: styles.PromptFocusedStyle.Width(promptWidth),
		PromptContentWidth: promptWidth,
	}
}
