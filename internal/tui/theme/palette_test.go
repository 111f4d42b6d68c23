package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewPalette_TokenShades(t *testing.T) {
	base := &Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Token:       "#112233",
		Pool:        "#445566",
		Lunch:       "#777777",
		Warning:     "#888888",
	}

	palette := NewPalette(base)

	if palette.TokenBg != lipgloss.Color(darkenColor(base.Token)) {
		t.Fatalf("TokenBg = %q, want %q", palette.TokenBg, darkenColor(base.Token))
	}
	if palette.PoolBg != lipgloss.Color(darkenColor(base.Pool)) {
		t.Fatalf("PoolBg = %q, want %q", palette.PoolBg, darkenColor(base.Pool))
	}
	if palette.TokenBgAlt != lipgloss.Color(alternateShade(darkenColor(base.Token), false)) {
		t.Fatalf("TokenBgAlt = %q, want %q", palette.TokenBgAlt, alternateShade(darkenColor(base.Token), false))
	}
	if palette.LunchBg != lipgloss.Color(muteColor(base.Lunch)) {
		t.Fatalf("LunchBg = %q, want %q", palette.LunchBg, muteColor(base.Lunch))
	}
}

func TestNewPalette_ModalFallbacks(t *testing.T) {
	base := &Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Token:       "#00ff00",
		Pool:        "#0000ff",
		Lunch:       "#ffff00",
		Warning:     "#ff00ff",
	}

	palette := NewPalette(base)
	if palette.Modal.Bg != lipgloss.Color(base.BgHighlight) {
		t.Fatalf("Modal.Bg = %q, want %q", palette.Modal.Bg, base.BgHighlight)
	}
	if palette.Modal.Border.Dark != base.Accent {
		t.Fatalf("Modal.Border.Dark = %q, want %q", palette.Modal.Border.Dark, base.Accent)
	}
	if palette.Modal.Backdrop != lipgloss.Color(base.BgSelection) {
		t.Fatalf("Modal.Backdrop = %q, want %q", palette.Modal.Backdrop, base.BgSelection)
	}
}

func TestNewPalette_LightThemeLightensTokens(t *testing.T) {
	base := &Theme{
		Bg:          "#f5f5f5",
		BgHighlight: "#eeeeee",
		BgSelection: "#e0e0e0",
		Fg:          "#222222",
		FgMuted:     "#555555",
		Accent:      "#2f6feb",
		Token:       "#2f8f2f",
		Pool:        "#1d8a8a",
		Lunch:       "#bbbbbb",
		Warning:     "#c2410c",
	}

	palette := NewPalette(base)
	if relativeLuminance(string(palette.TokenBg)) <= relativeLuminance(base.Token) {
		t.Fatalf("TokenBg luminance = %f, want greater than Token", relativeLuminance(string(palette.TokenBg)))
	}
	if relativeLuminance(string(palette.PoolBg)) <= relativeLuminance(base.Pool) {
		t.Fatalf("PoolBg luminance = %f, want greater than Pool", relativeLuminance(string(palette.PoolBg)))
	}
}

func TestNewPalette_NilFallsBackToMocha(t *testing.T) {
	palette := NewPalette(nil)
	mocha, err := Load("mocha")
	if err != nil {
		t.Fatalf("Load(mocha) unexpected error: %v", err)
	}
	if palette.Token != lipgloss.Color(mocha.Token) {
		t.Fatalf("Token = %q, want %q", palette.Token, mocha.Token)
	}
}

func TestChooseTextColorPrefersContrast(t *testing.T) {
	bg := "#f0f0f0"
	lightText := "#ffffff"
	darkText := "#111111"

	if got := chooseTextColor(bg, lightText, darkText); got != darkText {
		t.Fatalf("chooseTextColor(%q, %q, %q) = %q, want %q", bg, lightText, darkText, got, darkText)
	}
}

func TestBlendColors(t *testing.T) {
	if got := blendColors("#000000", "#ffffff", 0.5); got != "#808080" {
		t.Fatalf("blendColors = %q, want #808080", got)
	}
	if got := blendColors("bad", "#ffffff", 0.5); got != "bad" {
		t.Fatalf("blendColors with invalid input = %q, want input unchanged", got)
	}
}

func TestDarkenColor(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "#000000", want: "#282828"},
		{in: "#ff0000", want: "#802828"},
		{in: "1", want: "1"},
	}
	for _, tt := range tests {
		if got := darkenColor(tt.in); got != tt.want {
			t.Errorf("darkenColor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
