package banner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_builtin_styles(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		want  Visual
	}{
		{
			name:  "neutral",
			style: Neutral{},
			want:  Visual{Background: NeutralBackground, Glyph: GlyphWarningRing, GlyphTint: DefaultGlyphTint},
		},
		{
			name:  "negative",
			style: Negative{},
			want:  Visual{Background: NegativeBackground, Glyph: GlyphWarningRing, GlyphTint: DefaultGlyphTint},
		},
		{
			name:  "positive",
			style: Positive{},
			want:  Visual{Background: PositiveBackground, Glyph: GlyphCheckmarkRing, GlyphTint: DefaultGlyphTint},
		},
		{
			name:  "nil falls back to negative",
			style: nil,
			want:  Visual{Background: NegativeBackground, Glyph: GlyphWarningRing, GlyphTint: DefaultGlyphTint},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.style)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got.Background)
			assert.NotEmpty(t, got.Glyph)
		})
	}
}

func TestResolve_builtin_ignores_other_request_fields(t *testing.T) {
	a := NewRequest("a", WithStyle(Positive{}), WithGlyph(true), WithTimeout(5))
	b := NewRequest("something else", WithStyle(Positive{}))

	assert.Equal(t, a.Visual(), b.Visual())
}

func TestResolve_custom_passes_through(t *testing.T) {
	tests := []struct {
		name   string
		custom Custom
	}{
		{
			name:   "all fields",
			custom: Custom{Background: "#112233", Glyph: "★", GlyphTint: "#ffffff"},
		},
		{
			name:   "no glyph",
			custom: Custom{Background: "#112233", GlyphTint: "#ffffff"},
		},
		{
			name:   "no tint",
			custom: Custom{Background: "#112233", Glyph: GlyphCheckmarkRing},
		},
		{
			name:   "empty",
			custom: Custom{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.custom)
			assert.Equal(t, tt.custom.Background, got.Background)
			assert.Equal(t, tt.custom.Glyph, got.Glyph)
			assert.Equal(t, tt.custom.GlyphTint, got.GlyphTint)

			ptr := tt.custom
			assert.Equal(t, got, Resolve(&ptr))
		})
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in     string
		want   Style
		wantOK bool
	}{
		{"neutral", Neutral{}, true},
		{"Negative", Negative{}, true},
		{" positive ", Positive{}, true},
		{"custom", Custom{}, true},
		{"loud", nil, false},
		{"", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseStyle(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStyleName(t *testing.T) {
	assert.Equal(t, "neutral", StyleName(Neutral{}))
	assert.Equal(t, "negative", StyleName(Negative{}))
	assert.Equal(t, "positive", StyleName(Positive{}))
	assert.Equal(t, "custom", StyleName(Custom{Background: "#000000"}))
	assert.Equal(t, "negative", StyleName(nil))
}
