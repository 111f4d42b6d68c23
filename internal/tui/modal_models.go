package tui

import "github.com/javiermolinar/slotfill/internal/tui/view"

var helpSections = []view.HelpSection{
	{
		Title: "NAVIGATE",
		Bindings: []view.HelpBinding{
			{Keys: "h/j/k/l, arrows", Desc: "Move between slots and the pool"},
			{Keys: "Tab / Shift+Tab", Desc: "Next / previous token in a slot"},
		},
	},
	{
		Title: "TOKENS",
		Bindings: []view.HelpBinding{
			{Keys: "a", Desc: "Add a token to the pool"},
			{Keys: "e, Enter", Desc: "Edit the label"},
			{Keys: "x, Delete", Desc: "Remove the token"},
			{Keys: "Space, m", Desc: "Pick up, then drop with Enter"},
			{Keys: "Esc", Desc: "Cancel a move"},
		},
	},
	{
		Title: "FILES",
		Bindings: []view.HelpBinding{
			{Keys: "s / S", Desc: "Save to the export file / choose path"},
			{Keys: "o", Desc: "Load a timetable file"},
			{Keys: "w", Desc: "Write the session now"},
			{Keys: "y", Desc: "Copy a text outline"},
			{Keys: "R", Desc: "Reset everything"},
		},
	},
	{
		Title: "OTHER",
		Bindings: []view.HelpBinding{
			{Keys: "/, :", Desc: "Command prompt"},
			{Keys: "?", Desc: "This help"},
			{Keys: "q, Ctrl+C", Desc: "Quit"},
		},
	},
}

type tokenFormModalViewModel struct {
	Title  string
	Model  view.TokenFormModel
	Styles view.TokenFormStyles
}

func (m Model) tokenFormModalViewModel() (tokenFormModalViewModel, bool) {
	tok, ok := m.store.Token(m.editID)
	if !ok {
		return tokenFormModalViewModel{}, false
	}
	loc, _ := m.store.Locate(m.editID)

	title := "Edit Token"
	if m.editIsNew {
		title = "New Token"
	}

	return tokenFormModalViewModel{
		Title: title,
		Model: view.NewTokenFormModel(view.TokenFormInput{
			Token:     tok,
			Location:  loc,
			Topology:  m.topology,
			InputView: m.tokenForm.View(),
			Style:     m.styles.ModalInputStyle,
			IsNew:     m.editIsNew,
		}),
		Styles: m.modalStyleSet().TokenFormStyles(),
	}, true
}

func (m Model) initModalViewModel() view.InitModalModel {
	return view.InitModalModel{
		ConfigPath:    m.initState.ConfigPath,
		DBPath:        m.initState.DBPath,
		ConfigMissing: m.initState.ConfigMissing,
		DBMissing:     m.initState.DBMissing,
		ErrorMessage:  m.initError,
	}
}
