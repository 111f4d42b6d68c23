package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/slotfill/internal/tui/commands"
	"github.com/javiermolinar/slotfill/internal/tui/input"
	"github.com/javiermolinar/slotfill/internal/tui/view"
)

var promptCommands = []input.PromptCommand{
	{
		Name:        "/add",
		Args:        "[label]",
		Description: "Add a token to the pool, optionally labeled",
	},
	{
		Name:        "/save",
		Args:        "[path]",
		Description: "Export the timetable to a JSON file",
	},
	{
		Name:        "/load",
		Args:        "[path]",
		Description: "Import a timetable from a JSON file",
	},
	{
		Name:        "/copy",
		Description: "Copy a text outline to the clipboard",
	},
	{
		Name:        "/reset",
		Description: "Remove every token",
	},
	{
		Name:        "/help",
		Description: "Show key bindings",
	},
}

func (m Model) fullFooterHeight(innerH, promptWidth int) int {
	promptLines := max(promptMinContentLines, m.promptContentLineCount(promptWidth))
	promptHeight := promptLines + promptBorderLines
	desired := footerBaseLines + promptHeight

	maxFooter := innerH - 2
	if maxFooter < footerMinHeight {
		return footerCompact
	}
	if desired > maxFooter {
		desired = maxFooter
	}
	if desired < footerMinHeight {
		desired = footerMinHeight
	}
	return desired
}

func (m Model) promptContentLineCount(contentWidth int) int {
	return len(m.promptLines(contentWidth))
}

func (m Model) promptMaxContentLines() int {
	maxLines := m.layoutCache.FooterH - footerBaseLines - promptBorderLines
	if maxLines < promptMinContentLines {
		return promptMinContentLines
	}
	return maxLines
}

func (m Model) promptLines(contentWidth int) []string {
	state := view.PromptState{
		Value:      m.prompt.Value(),
		Cursor:     m.promptCursor(),
		ModePrompt: m.mode == ModePrompt,
	}
	matches := input.PromptMatchingCommands(m.prompt.Value(), promptCommands)
	suggestions := make([]view.PromptCommand, 0, len(matches))
	for _, cmd := range matches {
		suggestions = append(suggestions, view.PromptCommand(cmd))
	}
	return view.PromptLines(state, contentWidth, suggestions)
}

// openPrompt focuses the prompt with a prefilled value.
func (m *Model) openPrompt(value string) {
	LogModeChange(m.mode, ModePrompt, "open prompt")
	m.mode = ModePrompt
	m.prompt.SetValue(value)
	m.prompt.CursorEnd()
	m.prompt.Focus()
	m.layoutCache = m.buildLayoutCache(m.width, m.height)
}

func (m *Model) closePrompt() {
	LogModeChange(m.mode, ModeNormal, "close prompt")
	m.mode = ModeNormal
	m.prompt.Blur()
	m.prompt.SetValue("")
	m.layoutCache = m.buildLayoutCache(m.width, m.height)
}

func (m Model) handlePromptSubmit(value string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(value) == "" {
		return m, nil
	}

	name, arg, ok := input.ParsePromptCommand(value)
	if !ok {
		m.statusMsg = "Commands start with /, try /help"
		return m, nil
	}

	switch name {
	case "/add":
		return m.addToken(arg)
	case "/save":
		return m.exportTo(m.pathOrDefault(arg))
	case "/load":
		return m.importFrom(m.pathOrDefault(arg))
	case "/copy":
		return m.copyOutline()
	case "/reset":
		return m.openConfirmReset()
	case "/help":
		return m.openHelp()
	default:
		m.statusMsg = fmt.Sprintf("Unknown command: %s", name)
		return m, nil
	}
}

func (m Model) pathOrDefault(path string) string {
	if path == "" {
		return m.config.Storage.ExportPath
	}
	return path
}

func (m Model) exportTo(path string) (tea.Model, tea.Cmd) {
	m.statusMsg = "Saving..."
	return m, commands.SaveFile(path, m.store.Export())
}

func (m Model) importFrom(path string) (tea.Model, tea.Cmd) {
	m.statusMsg = "Loading..."
	return m, commands.LoadFile(path)
}
