package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

func TestBuildLayoutCache_FooterAuxBackground(t *testing.T) {
	th := mustTheme(t, "mocha")
	styles := NewStyles(th)
	m := Model{styles: styles, prompt: textinput.New()}

	layout := m.buildLayoutCache(100, 40)
	appH, _ := styles.AppStyle.GetFrameSize()
	innerW := 100 - appH

	footerBg, ok := layout.FooterAuxStyle.GetBackground().(lipgloss.Color)
	if !ok {
		t.Fatalf("FooterAuxStyle background type = %T, want lipgloss.Color", layout.FooterAuxStyle.GetBackground())
	}
	if footerBg != lipgloss.Color(th.Bg) {
		t.Fatalf("FooterAuxStyle background = %q, want %q", footerBg, th.Bg)
	}
	if got := layout.FooterAuxStyle.GetWidth(); got != innerW {
		t.Fatalf("FooterAuxStyle width = %d, want %d", got, innerW)
	}
	if got := layout.StatsBarStyle.GetWidth(); got != innerW {
		t.Fatalf("StatsBarStyle width = %d, want %d", got, innerW)
	}
}

func TestBuildLayoutCache_PromptContentWidth(t *testing.T) {
	styles := NewStyles(mustTheme(t, "mocha"))
	m := Model{styles: styles, prompt: textinput.New()}

	layout := m.buildLayoutCache(100, 40)
	if got, want := layout.PromptContentWidth, promptContentWidth(styles, layout.InnerW); got != want {
		t.Fatalf("PromptContentWidth = %d, want %d", got, want)
	}
	if layout.PromptStyle.GetWidth() != layout.PromptContentWidth {
		t.Fatalf("PromptStyle width = %d, want %d", layout.PromptStyle.GetWidth(), layout.PromptContentWidth)
	}
}

func TestBuildLayoutCache_FooterModes(t *testing.T) {
	styles := NewStyles(mustTheme(t, "mocha"))
	m := Model{styles: styles, prompt: textinput.New()}

	small := m.buildLayoutCache(100, 12)
	if small.FullFooter() {
		t.Fatalf("FooterH = %d, want compact footer on short terminals", small.FooterH)
	}

	tall := m.buildLayoutCache(100, 50)
	if !tall.FullFooter() {
		t.Fatalf("FooterH = %d, want full footer", tall.FooterH)
	}
	if tall.FooterH < footerMinHeight {
		t.Fatalf("FooterH = %d, want at least %d", tall.FooterH, footerMinHeight)
	}
}

func TestBuildLayoutCache_NegativeSizes(t *testing.T) {
	styles := NewStyles(mustTheme(t, "mocha"))
	m := Model{styles: styles, prompt: textinput.New()}

	layout := m.buildLayoutCache(0, 0)
	if layout.InnerW != 0 || layout.InnerH != 0 {
		t.Fatalf("inner = %dx%d, want 0x0", layout.InnerW, layout.InnerH)
	}
}
