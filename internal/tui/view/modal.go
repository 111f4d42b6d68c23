package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ModalStyles groups the styles needed to render modal frames and buttons.
type ModalStyles struct {
	ModalHeaderStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalStyle             lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalBodyStyle         lipgloss.Style
}

// ModalKind selects the key hints shown under a modal body.
type ModalKind int

const (
	ModalEditToken ModalKind = iota
	ModalNewToken            // label form for a token just added
	ModalConfirmReset
	ModalHelp
	ModalInit
	ModalConfirmQuit
)

var modalButtons = map[ModalKind][]string{
	ModalEditToken:    {"[Enter] Save", "[Esc] Cancel"},
	ModalNewToken:     {"[Enter] Save", "[Esc] Keep blank"},
	ModalConfirmReset: {"[y/Enter] Reset", "[n/Esc] Keep"},
	ModalHelp:         {"[Esc/?] Close"},
	ModalInit:         {"[Enter] Allow", "[Esc] Quit"},
	ModalConfirmQuit:  {"[y/Enter] Save", "[n] Discard", "[Esc] Stay"},
}

// ModalButtons returns the key hints of a modal, default action first.
func ModalButtons(kind ModalKind) []string {
	return append([]string(nil), modalButtons[kind]...)
}

// Modal is a framed dialog drawn over the grid.
type Modal struct {
	Kind  ModalKind
	Title string
	Body  string
}

// RenderModal renders the frame: title, body, then the button row.
func RenderModal(modal Modal, styles ModalStyles) string {
	parts := []string{styles.ModalHeaderStyle.Render(styles.ModalTitleStyle.Render(modal.Title))}
	if modal.Body != "" {
		parts = append(parts, modal.Body)
	}
	if labels := modalButtons[modal.Kind]; len(labels) > 0 {
		parts = append(parts, styles.ModalFooterStyle.Render(renderButtons(styles, labels)))
	}
	return styles.ModalStyle.Render(strings.Join(parts, "\n\n"))
}

// renderButtons joins the labels with body-styled gaps; the first is active.
func renderButtons(styles ModalStyles, labels []string) string {
	parts := make([]string, len(labels))
	for i, label := range labels {
		style := styles.ModalButtonStyle
		if i == 0 {
			style = styles.ModalButtonActiveStyle
		}
		parts[i] = style.Render(label)
	}
	return strings.Join(parts, styles.ModalBodyStyle.Render(" "))
}
