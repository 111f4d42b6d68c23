// Package view provides rendering helpers for the TUI.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TokenFormModel contains the fields needed to render the token label form.
type TokenFormModel struct {
	TokenID       string
	LocationLabel string
	InputView     string
	InputStyle    lipgloss.Style
	IsNew         bool
}

// TokenFormStyles groups styles for the token form body.
type TokenFormStyles struct {
	TagStyle          lipgloss.Style
	BodyStyle         lipgloss.Style
	SectionTitleStyle lipgloss.Style
	HintStyle         lipgloss.Style
}

// RenderTokenFormBody renders the modal body for editing a token label.
func RenderTokenFormBody(model TokenFormModel, styles TokenFormStyles) string {
	var body strings.Builder
	sep := styles.BodyStyle.Render(" ")

	body.WriteString(styles.TagStyle.Render(model.TokenID) + sep + styles.TagStyle.Render(model.LocationLabel) + "\n\n")
	body.WriteString(styles.SectionTitleStyle.Render("LABEL") + "\n")
	body.WriteString(model.InputStyle.Render(model.InputView) + "\n")
	if model.IsNew {
		body.WriteString(styles.HintStyle.Render(" New tokens start in the pool.") + "\n")
	}

	return body.String()
}

// ConfirmResetModel contains the fields needed to render the reset confirmation.
type ConfirmResetModel struct {
	Tokens int
	Placed int
}

// ConfirmResetStyles groups styles for the reset confirmation body.
type ConfirmResetStyles struct {
	BodyStyle lipgloss.Style
}

// RenderConfirmResetBody renders the modal body for the reset confirmation.
func RenderConfirmResetBody(model ConfirmResetModel, styles ConfirmResetStyles) string {
	var body strings.Builder
	body.WriteString(styles.BodyStyle.Render(fmt.Sprintf(" %d tokens (%d placed) will be removed.", model.Tokens, model.Placed)) + "\n\n")
	body.WriteString(styles.BodyStyle.Render(" The token counter restarts at box-1.\n Are you sure?"))
	return body.String()
}

// HelpBinding is one key and what it does.
type HelpBinding struct {
	Keys string
	Desc string
}

// HelpSection groups bindings under a title.
type HelpSection struct {
	Title    string
	Bindings []HelpBinding
}

// HelpStyles groups styles for the help body.
type HelpStyles struct {
	SectionTitleStyle lipgloss.Style
	KeyStyle          lipgloss.Style
	BodyStyle         lipgloss.Style
}

// RenderHelpBody renders key bindings grouped by section.
func RenderHelpBody(sections []HelpSection, styles HelpStyles) string {
	var body strings.Builder
	for i, section := range sections {
		if i > 0 {
			body.WriteString("\n")
		}
		body.WriteString(styles.SectionTitleStyle.Render(section.Title) + "\n")
		for _, b := range section.Bindings {
			body.WriteString(styles.KeyStyle.Render(" "+b.Keys) + styles.BodyStyle.Render(b.Desc) + "\n")
		}
	}
	return strings.TrimRight(body.String(), "\n")
}

// InitModalModel contains the fields needed to render the first-run modal.
type InitModalModel struct {
	ConfigPath    string
	DBPath        string
	ConfigMissing bool
	DBMissing     bool
	ErrorMessage  string
}

// InitModalStyles groups styles for the first-run modal body.
type InitModalStyles struct {
	BodyStyle  lipgloss.Style
	LabelStyle lipgloss.Style
	HintStyle  lipgloss.Style
}

// RenderInitBody renders the modal body asking to create config and storage.
func RenderInitBody(model InitModalModel, styles InitModalStyles) string {
	var body strings.Builder
	body.WriteString(styles.BodyStyle.Render(" slotfill needs to create:") + "\n\n")
	if model.ConfigMissing {
		body.WriteString(styles.LabelStyle.Render(" Config") + styles.BodyStyle.Render(model.ConfigPath) + "\n")
	}
	if model.DBMissing {
		body.WriteString(styles.LabelStyle.Render(" Session") + styles.BodyStyle.Render(model.DBPath) + "\n")
	}
	if model.ErrorMessage != "" {
		body.WriteString("\n" + styles.HintStyle.Render(" Error: "+model.ErrorMessage) + "\n")
	}
	return strings.TrimRight(body.String(), "\n")
}
