package bannerview

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/banners/internal/core/banner"
	"github.com/hay-kot/banners/internal/core/styles"
)

func newBanner(text string, opts ...banner.RequestOption) *banner.Banner {
	r := banner.NewRequest(text, opts...)
	return &banner.Banner{ID: 1, Request: r, Visual: r.Visual()}
}

func TestRender_nil(t *testing.T) {
	assert.Empty(t, Render(nil, Options{}))
}

func TestRender_text_and_glyph(t *testing.T) {
	b := newBanner("Saved", banner.WithStyle(banner.Positive{}), banner.WithGlyph(true))

	got := ansi.Strip(Render(b, Options{Width: 20, Icons: styles.IconsUnicode}))

	assert.Equal(t, " ✔ Saved            ", got)
	assert.Equal(t, 20, lipgloss.Width(got))
}

func TestRender_glyph_hidden(t *testing.T) {
	b := newBanner("Offline", banner.WithGlyph(false))

	got := ansi.Strip(Render(b, Options{Icons: styles.IconsUnicode}))

	assert.Equal(t, " Offline ", got)
}

func TestRender_icons_none(t *testing.T) {
	b := newBanner("Offline", banner.WithGlyph(true))

	got := ansi.Strip(Render(b, Options{Icons: styles.IconsNone}))

	assert.Equal(t, " Offline ", got)
}

func TestRender_truncates_long_text(t *testing.T) {
	b := newBanner("a very long message that will not fit")

	got := ansi.Strip(Render(b, Options{Width: 12}))

	assert.Equal(t, 12, lipgloss.Width(got))
	assert.Contains(t, got, "…")
}

func TestRender_custom_glyph_verbatim(t *testing.T) {
	b := newBanner("Deploy", banner.WithGlyph(true), banner.WithStyle(banner.Custom{
		Background: "#112233",
		Glyph:      "🚀",
	}))

	got := ansi.Strip(Render(b, Options{Icons: styles.IconsNerd}))

	assert.Equal(t, " 🚀 Deploy ", got)
}

func TestTextColor(t *testing.T) {
	tests := []struct {
		bg   lipgloss.Color
		want lipgloss.Color
	}{
		{bg: lipgloss.Color(banner.NeutralBackground), want: darkText},
		{bg: lipgloss.Color(banner.PositiveBackground), want: darkText},
		{bg: lipgloss.Color(banner.NegativeBackground), want: lightText},
		{bg: "#000000", want: lightText},
		{bg: "#ffffff", want: darkText},
		{bg: "12", want: lightText},
	}

	for _, tt := range tests {
		t.Run(string(tt.bg), func(t *testing.T) {
			assert.Equal(t, tt.want, TextColor(tt.bg))
		})
	}
}
