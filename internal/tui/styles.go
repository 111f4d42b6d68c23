// Package tui provides the terminal user interface for slotfill.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/slotfill/internal/tui/theme"
)

// dayColWidth is the width of the day label column.
const dayColWidth = 5

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorToken       lipgloss.Color
	colorPool        lipgloss.Color
	colorLunch       lipgloss.Color
	colorWarning     lipgloss.Color

	// Header styles
	HeaderStyle      lipgloss.Style
	ColumnHeader     lipgloss.Style
	LunchHeaderStyle lipgloss.Style
	DayColumnStyle   lipgloss.Style

	// Grid cells
	TableBorderStyle lipgloss.Style
	CellStyle        lipgloss.Style
	CursorCellStyle  lipgloss.Style
	TargetCellStyle  lipgloss.Style
	LunchCellStyle   lipgloss.Style
	SlotCodeStyle    lipgloss.Style
	CursorCodeStyle  lipgloss.Style

	// Token chips
	TokenStyle         lipgloss.Style
	TokenAltStyle      lipgloss.Style // every other token in a stacked slot
	PoolTokenStyle     lipgloss.Style
	TokenSelectedStyle lipgloss.Style
	TokenMovingStyle   lipgloss.Style // picked-up token left at its source
	DropMarkerStyle    lipgloss.Style

	// Pool strip
	PoolStyle       lipgloss.Style
	PoolActiveStyle lipgloss.Style
	PoolTitleStyle  lipgloss.Style
	PoolEmptyStyle  lipgloss.Style

	// Stats bar and legend
	StatsBarStyle lipgloss.Style
	StatsKeyStyle lipgloss.Style

	// Prompt box
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style

	// Status message
	StatusStyle lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalBackdropColor     lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalSectionTitleStyle lipgloss.Style
	ModalTagStyle          lipgloss.Style
	ModalLabelStyle        lipgloss.Style
	ModalKeyStyle          lipgloss.Style
	ModalInputStyle        lipgloss.Style
	ModalInputTextStyle    lipgloss.Style
	ModalInputCursorStyle  lipgloss.Style
	ModalPlaceholderStyle  lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalHintStyle         lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorToken = palette.Token
	s.colorPool = palette.Pool
	s.colorLunch = palette.Lunch
	s.colorWarning = palette.Warning

	s.HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.ColumnHeader = lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.LunchHeaderStyle = s.ColumnHeader.
		Bold(false).
		Foreground(s.colorLunch)

	s.DayColumnStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Width(dayColWidth)

	s.TableBorderStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.CellStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.CursorCellStyle = s.CellStyle.
		Background(s.colorBgSelection)

	s.TargetCellStyle = s.CellStyle.
		Background(s.colorBgHighlight)

	s.LunchCellStyle = lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(s.colorLunch).
		Background(palette.LunchBg)

	s.SlotCodeStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.CursorCodeStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)

	s.TokenStyle = lipgloss.NewStyle().
		Background(palette.TokenBg).
		Foreground(palette.TextOnToken).
		Bold(true)

	s.TokenAltStyle = s.TokenStyle.
		Background(palette.TokenBgAlt)

	s.PoolTokenStyle = lipgloss.NewStyle().
		Background(palette.PoolBg).
		Foreground(palette.TextOnPool).
		Bold(true).
		Padding(0, 1)

	s.TokenSelectedStyle = lipgloss.NewStyle().
		Background(s.colorWarning).
		Foreground(palette.TextOnWarning).
		Bold(true)

	s.TokenMovingStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Strikethrough(true).
		Italic(true)

	s.DropMarkerStyle = lipgloss.NewStyle().
		Background(s.colorAccent).
		Foreground(palette.TextOnAccent).
		Bold(true)

	s.PoolStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		BorderBackground(s.colorBg).
		Background(s.colorBg).
		Padding(0, 1)

	s.PoolActiveStyle = s.PoolStyle.
		BorderForeground(s.colorAccent)

	s.PoolTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorPool).
		Background(s.colorBg)

	s.PoolEmptyStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	// Stats bar - no margins, use explicit newlines in View() for spacing
	s.StatsBarStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg).
		Padding(0, 0)

	s.StatsKeyStyle = lipgloss.NewStyle().
		Foreground(s.colorToken).
		Background(s.colorBg).
		Bold(true)

	s.PromptStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		BorderBackground(s.colorBg).
		Background(s.colorBgHighlight).
		Foreground(s.colorFg).
		Padding(0, 1)

	s.PromptFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		BorderBackground(s.colorBg).
		Background(s.colorBgSelection).
		Foreground(s.colorFg).
		Bold(true).
		Padding(0, 1)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	// Modal styles - use high-contrast theme colors
	modal := palette.Modal
	s.ModalBackdropColor = modal.Backdrop
	s.ModalBgColor = modal.Bg

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.Border).
		Background(modal.Bg).
		Foreground(modal.Text).
		Padding(1, 1).
		Width(60).
		Align(lipgloss.Left)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modal.Bg).
		Padding(0, 1).
		Align(lipgloss.Center)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(modal.Bg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modal.Bg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modal.Bg)

	s.ModalSectionTitleStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Bold(true).
		PaddingLeft(1).
		Background(modal.Bg)

	s.ModalTagStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modal.Panel).
		Bold(true).
		Padding(0, 1)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Bold(true).
		Width(10).
		Background(modal.Bg)

	s.ModalKeyStyle = lipgloss.NewStyle().
		Foreground(modal.Highlight).
		Bold(true).
		Width(18).
		Background(modal.Bg)

	s.ModalInputStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(modal.Highlight).
		Background(modal.Panel).
		Foreground(modal.Text).
		Padding(0, 1).
		Width(50)

	s.ModalInputTextStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modal.Bg)

	s.ModalInputCursorStyle = lipgloss.NewStyle().
		Foreground(modal.ReverseText).
		Background(modal.Highlight)

	s.ModalPlaceholderStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modal.Bg)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Background(modal.Panel).
		Foreground(modal.Text).
		Padding(0, 3)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Background(modal.Highlight).
		Foreground(modal.ReverseText).
		Padding(0, 3).
		Underline(true)

	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modal.Bg)

	// App container - padding provides consistent indentation for all content
	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingTop(1).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingBottom(1)

	return s
}

// tokenStyle picks the chip style for the i-th token of a slot.
func (s *Styles) tokenStyle(i int) lipgloss.Style {
	if i%2 == 1 {
		return s.TokenAltStyle
	}
	return s.TokenStyle
}
