package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderButtons_UsesModalBodySeparator(t *testing.T) {
	styles := ModalStyles{
		ModalBodyStyle:         lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		ModalButtonStyle:       lipgloss.NewStyle(),
		ModalButtonActiveStyle: lipgloss.NewStyle(),
	}

	out := renderButtons(styles, ModalButtons(ModalEditToken))
	sep := styles.ModalBodyStyle.Render(" ")
	if !strings.Contains(out, sep) {
		t.Fatalf("expected modal button separator to use modal body style")
	}
}

func TestModalButtons(t *testing.T) {
	tests := []struct {
		name string
		kind ModalKind
		want []string
	}{
		{name: "edit token", kind: ModalEditToken, want: []string{"[Enter] Save", "[Esc] Cancel"}},
		{name: "new token", kind: ModalNewToken, want: []string{"[Enter] Save", "[Esc] Keep blank"}},
		{name: "confirm reset", kind: ModalConfirmReset, want: []string{"[y/Enter] Reset", "[n/Esc] Keep"}},
		{name: "help", kind: ModalHelp, want: []string{"[Esc/?] Close"}},
		{name: "init", kind: ModalInit, want: []string{"[Enter] Allow", "[Esc] Quit"}},
		{name: "confirm quit", kind: ModalConfirmQuit, want: []string{"[y/Enter] Save", "[n] Discard", "[Esc] Stay"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ModalButtons(tt.kind)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("ModalButtons = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderModal(t *testing.T) {
	out := RenderModal(Modal{Kind: ModalConfirmReset, Title: "Reset Timetable", Body: "Delete 3 tokens?"}, ModalStyles{})
	lines := strings.Split(out, "\n")
	if lines[0] != "Reset Timetable" {
		t.Errorf("first line = %q, want the title", lines[0])
	}
	for _, want := range []string{"Delete 3 tokens?", "[y/Enter] Reset", "[n/Esc] Keep"} {
		if !strings.Contains(out, want) {
			t.Errorf("modal missing %q:\n%s", want, out)
		}
	}

	// The buttons are the last block, after a blank line.
	if len(lines) != 5 || lines[1] != "" || lines[3] != "" {
		t.Errorf("unexpected layout:\n%s", out)
	}
}
