package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderModalOverlay_CentersModal(t *testing.T) {
	base := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 10)+"\n", 5), "\n")

	out := ansi.Strip(RenderModalOverlay(base, "AB\nCD", 10, 5, ""))
	want := []string{
		"..........",
		"....AB....",
		"....CD....",
		"..........",
		"..........",
	}
	if got := strings.Split(out, "\n"); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("overlay =\n%s\nwant\n%s", out, strings.Join(want, "\n"))
	}
}

func TestRenderModalOverlay_EmptyModal(t *testing.T) {
	if got := RenderModalOverlay("grid", "", 10, 2, ""); got != "grid" {
		t.Errorf("expected base content back, got %q", got)
	}
}

func TestApplyModalBackgroundResets(t *testing.T) {
	line := "a" + ansi.ResetStyle + "b"
	if got := ApplyModalBackgroundResets(line, ""); got != line {
		t.Errorf("no background should leave the line alone, got %q", got)
	}

	seq := ModalBackgroundSeq("#1e1e2e")
	if seq == "" {
		t.Fatal("expected a background sequence")
	}
	got := ApplyModalBackgroundResets(line, "#1e1e2e")
	if got != "a"+ansi.ResetStyle+seq+"b" {
		t.Errorf("got %q", got)
	}
}

func TestPadLinesWithBackground(t *testing.T) {
	out := PadLinesWithBackground("ab\nabcdef", 4, 3, "")
	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "ab  " || lines[1] != "abcdef" || lines[2] != "    " {
		t.Errorf("unexpected padding %q", lines)
	}
}
