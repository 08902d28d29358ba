package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/banners/internal/core/banner"
)

func TestThemeNames_sorted_and_known(t *testing.T) {
	names := ThemeNames()

	assert.Equal(t, []string{"catppuccin", "gruvbox", "tokyo-night"}, names)
	for _, n := range names {
		_, ok := GetPalette(n)
		assert.True(t, ok, n)
	}
}

func TestSetTheme_updates_colors(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, ok := GetPalette("gruvbox")
	assert.True(t, ok)

	SetTheme(p)

	assert.Equal(t, p, CurrentPalette)
	assert.Equal(t, p.Primary, ColorPrimary)
	assert.Equal(t, p.Error, ColorError)
}

func TestGlyphIcon(t *testing.T) {
	tests := []struct {
		name  string
		set   IconSet
		glyph banner.Glyph
		want  string
	}{
		{"unicode warning", IconsUnicode, banner.GlyphWarningRing, "⚠"},
		{"unicode checkmark", IconsUnicode, banner.GlyphCheckmarkRing, "✔"},
		{"nerd warning", IconsNerd, banner.GlyphWarningRing, "\U000F0028"},
		{"custom glyph verbatim", IconsUnicode, "★", "★"},
		{"none set", IconsNone, banner.GlyphWarningRing, ""},
		{"empty glyph", IconsNerd, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GlyphIcon(tt.set, tt.glyph))
		})
	}
}

func TestIconSet_IsValid(t *testing.T) {
	assert.True(t, IconsNerd.IsValid())
	assert.True(t, IconsUnicode.IsValid())
	assert.True(t, IconsNone.IsValid())
	assert.False(t, IconSet("emoji").IsValid())
}
