// Package view provides rendering helpers for the TUI.
package view

import "github.com/charmbracelet/lipgloss"

// ModalStyleSet groups modal styles to reduce call-site verbosity.
type ModalStyleSet struct {
	BodyStyle         lipgloss.Style
	SectionTitleStyle lipgloss.Style
	TagStyle          lipgloss.Style
	LabelStyle        lipgloss.Style
	KeyStyle          lipgloss.Style
	HintStyle         lipgloss.Style
}

// TokenFormStyles returns the modal styles needed for the token form.
func (s ModalStyleSet) TokenFormStyles() TokenFormStyles {
	return TokenFormStyles{
		TagStyle:          s.TagStyle,
		BodyStyle:         s.BodyStyle,
		SectionTitleStyle: s.SectionTitleStyle,
		HintStyle:         s.HintStyle,
	}
}

// ConfirmResetStyles returns the modal styles needed for reset confirmation.
func (s ModalStyleSet) ConfirmResetStyles() ConfirmResetStyles {
	return ConfirmResetStyles{BodyStyle: s.BodyStyle}
}

// HelpStyles returns the modal styles needed for the help modal.
func (s ModalStyleSet) HelpStyles() HelpStyles {
	return HelpStyles{
		SectionTitleStyle: s.SectionTitleStyle,
		KeyStyle:          s.KeyStyle,
		BodyStyle:         s.BodyStyle,
	}
}

// InitModalStyles returns the modal styles needed for initialization.
func (s ModalStyleSet) InitModalStyles() InitModalStyles {
	return InitModalStyles{
		BodyStyle:  s.BodyStyle,
		LabelStyle: s.LabelStyle,
		HintStyle:  s.HintStyle,
	}
}
