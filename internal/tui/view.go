package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/slotfill/internal/tui/view"
)

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	state := m.viewState()
	return view.Render(state)
}

func (m Model) viewState() view.ViewState {
	base := m.renderAppContent()
	showModal := m.mode == ModeModal && m.modalType != ModalNone
	modal := ""
	if showModal {
		modal = m.renderModal()
	}

	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      base,
		ModalContent:     modal,
		ShowModal:        showModal,
		ModalBg:          m.styles.ModalBackdropColor,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) renderAppContent() string {
	layout := m.layoutCache
	if layout.InnerW <= 0 || layout.InnerH <= 0 {
		return "Terminal too small"
	}

	poolBox := view.RenderPool(m.poolViewState(layout))
	gridH := layout.InnerH - layout.FooterH - lipgloss.Height(poolBox)

	gridBox := view.RenderTable(m.tableViewState(layout, gridH))
	footerBox := view.RenderFooter(m.footerViewState(layout))

	parts := []string{gridBox, poolBox, footerBox}
	if gridBox == "" {
		parts = parts[1:]
	}
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) footerViewState(layout LayoutCache) view.Footer {
	contentWidth := layout.PromptContentWidth
	lines := m.promptLines(contentWidth)
	lines = view.ClampPromptLines(lines, m.promptMaxContentLines(), contentWidth)

	showPrompt := m.mode != ModeMove && (m.mode != ModeModal || m.modalType == ModalNone)

	return view.Footer{
		InnerW:           layout.InnerW,
		FooterH:          layout.FooterH,
		FullFooter:       layout.FullFooter(),
		StatsLine:        m.renderStatsBar(layout.InnerW),
		LegendText:       m.renderLegend(),
		StatusText:       m.statusMsgOrDefault(),
		HelpText:         m.renderHelp(),
		PromptLines:      lines,
		PromptMax:        m.promptMaxContentLines(),
		PromptFocus:      m.mode == ModePrompt,
		ShowPrompt:       showPrompt,
		Banner:           m.moveBanner(),
		LegendStyle:      layout.FooterAuxStyle,
		StatusStyle:      layout.StatusAuxStyle,
		HelpStyle:        layout.HelpAuxStyle,
		BannerStyle:      layout.PromptStyle.Foreground(m.styles.colorWarning),
		PromptStyle:      layout.PromptStyle,
		PromptFocusStyle: layout.PromptFocusedStyle,
		Bg:               m.styles.colorBg,
	}
}

// moveBanner describes the token in flight while in move mode.
func (m Model) moveBanner() string {
	if m.moving == nil {
		return ""
	}
	tok, _ := m.store.Token(m.moving.ID)
	return fmt.Sprintf("Moving %s from %s · enter drops · esc cancels",
		tok.Label(), view.LocationLabel(m.topology, m.moving.Source))
}
