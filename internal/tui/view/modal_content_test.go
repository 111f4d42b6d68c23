// Package view provides rendering helpers for the TUI.
package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/slotfill/internal/timetable"
)

func TestRenderTokenFormBody_ShowsIDAndLocation(t *testing.T) {
	styles := TokenFormStyles{
		TagStyle:          lipgloss.NewStyle(),
		BodyStyle:         lipgloss.NewStyle(),
		SectionTitleStyle: lipgloss.NewStyle(),
		HintStyle:         lipgloss.NewStyle(),
	}
	model := NewTokenFormModel(TokenFormInput{
		Token:     timetable.Token{ID: "box-3", Text: "DBMS"},
		Location:  timetable.Location{List: "Tuesday_B11", Index: 0},
		Topology:  timetable.DefaultTopology(),
		InputView: "> DBMS",
		Style:     lipgloss.NewStyle(),
	})

	body := RenderTokenFormBody(model, styles)
	for _, want := range []string{"box-3", "Tuesday B11", "LABEL", "> DBMS"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in body:\n%s", want, body)
		}
	}
	if strings.Contains(body, "New tokens") {
		t.Fatal("hint for new tokens shown while editing an existing token")
	}
}

func TestRenderConfirmResetBody_UsesBodyStyle(t *testing.T) {
	styles := ConfirmResetStyles{
		BodyStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
	body := RenderConfirmResetBody(ConfirmResetModel{Tokens: 4, Placed: 1}, styles)

	expected := styles.BodyStyle.Render(" 4 tokens (1 placed) will be removed.")
	if !strings.Contains(body, expected) {
		t.Fatalf("expected counts rendered with body style, got %q", body)
	}
}

func TestRenderHelpBody_ListsBindings(t *testing.T) {
	sections := []HelpSection{
		{Title: "Grid", Bindings: []HelpBinding{{Keys: "h/j/k/l", Desc: "navigate"}}},
		{Title: "Files", Bindings: []HelpBinding{{Keys: "s", Desc: "save"}}},
	}
	body := RenderHelpBody(sections, HelpStyles{})

	for _, want := range []string{"Grid", "h/j/k/l", "navigate", "Files", "save"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in help body:\n%s", want, body)
		}
	}
	if strings.HasSuffix(body, "\n") {
		t.Fatal("help body should not end with a newline")
	}
}

func TestRenderInitBody_OnlyListsMissingPaths(t *testing.T) {
	model := InitModalModel{
		ConfigPath:    "/home/u/.config/slotfill/config.toml",
		DBPath:        "/home/u/.local/share/slotfill/slotfill.db",
		ConfigMissing: false,
		DBMissing:     true,
	}
	body := RenderInitBody(model, InitModalStyles{})

	if strings.Contains(body, model.ConfigPath) {
		t.Fatal("existing config path should not be listed")
	}
	if !strings.Contains(body, model.DBPath) {
		t.Fatal("missing db path should be listed")
	}
}

func TestLocationLabel(t *testing.T) {
	top := timetable.DefaultTopology()
	tests := []struct {
		list string
		want string
	}{
		{list: timetable.PoolID, want: "Pool"},
		{list: "Monday_A11", want: "Monday A11"},
		{list: "Someday_Z9", want: "Someday_Z9"},
	}
	for _, tt := range tests {
		if got := LocationLabel(top, tt.list); got != tt.want {
			t.Errorf("LocationLabel(%q) = %q, want %q", tt.list, got, tt.want)
		}
	}
}
