package tui

import "github.com/javiermolinar/slotfill/internal/tui/view"

// renderModal renders the current modal.
func (m Model) renderModal() string {
	switch m.modalType {
	case ModalTokenForm:
		return m.renderTokenFormModal()
	case ModalConfirmReset:
		return m.renderConfirmResetModal()
	case ModalHelp:
		return m.renderHelpModal()
	case ModalInit:
		return m.renderInitModal()
	case ModalConfirmQuit:
		return m.renderConfirmQuitModal()
	default:
		return ""
	}
}

func (m Model) modalStyles() view.ModalStyles {
	return view.ModalStyles{
		ModalHeaderStyle:       m.styles.ModalHeaderStyle,
		ModalTitleStyle:        m.styles.ModalTitleStyle,
		ModalFooterStyle:       m.styles.ModalFooterStyle,
		ModalStyle:             m.styles.ModalStyle,
		ModalButtonStyle:       m.styles.ModalButtonStyle,
		ModalButtonActiveStyle: m.styles.ModalButtonActiveStyle,
		ModalBodyStyle:         m.styles.ModalBodyStyle,
	}
}

func (m Model) modalStyleSet() view.ModalStyleSet {
	return view.ModalStyleSet{
		BodyStyle:         m.styles.ModalBodyStyle,
		SectionTitleStyle: m.styles.ModalSectionTitleStyle,
		TagStyle:          m.styles.ModalTagStyle,
		LabelStyle:        m.styles.ModalLabelStyle,
		KeyStyle:          m.styles.ModalKeyStyle,
		HintStyle:         m.styles.ModalHintStyle,
	}
}

// renderTokenFormModal renders the token label form.
func (m Model) renderTokenFormModal() string {
	vm, ok := m.tokenFormModalViewModel()
	if !ok {
		return ""
	}
	kind := view.ModalEditToken
	if vm.Model.IsNew {
		kind = view.ModalNewToken
	}
	return view.RenderModal(view.Modal{
		Kind:  kind,
		Title: vm.Title,
		Body:  view.RenderTokenFormBody(vm.Model, vm.Styles),
	}, m.modalStyles())
}

// renderConfirmResetModal renders the reset confirmation.
func (m Model) renderConfirmResetModal() string {
	model := view.NewConfirmResetModel(m.store.Stats())
	return view.RenderModal(view.Modal{
		Kind:  view.ModalConfirmReset,
		Title: "Reset Timetable",
		Body:  view.RenderConfirmResetBody(model, m.modalStyleSet().ConfirmResetStyles()),
	}, m.modalStyles())
}

// renderHelpModal renders the key binding reference.
func (m Model) renderHelpModal() string {
	return view.RenderModal(view.Modal{
		Kind:  view.ModalHelp,
		Title: "Keys",
		Body:  view.RenderHelpBody(helpSections, m.modalStyleSet().HelpStyles()),
	}, m.modalStyles())
}

// renderInitModal renders the startup initialization modal.
func (m Model) renderInitModal() string {
	vm := m.initModalViewModel()
	return view.RenderModal(view.Modal{
		Kind:  view.ModalInit,
		Title: "Initialize Slotfill",
		Body:  view.RenderInitBody(vm, m.modalStyleSet().InitModalStyles()),
	}, m.modalStyles())
}

// renderConfirmQuitModal asks what to do with unsaved changes on quit.
func (m Model) renderConfirmQuitModal() string {
	body := m.modalStyleSet().BodyStyle.Render(" The session has changes that are not saved.\n Save them before quitting?")
	return view.RenderModal(view.Modal{
		Kind:  view.ModalConfirmQuit,
		Title: "Unsaved Changes",
		Body:  body,
	}, m.modalStyles())
}
