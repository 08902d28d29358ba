package styles

import "github.com/hay-kot/banners/internal/core/banner"

// Tip: To find icons use https://github.com/loichyan/nerdfix

// IconSet names a family of glyph icons.
type IconSet string

const (
	IconsNerd    IconSet = "nerd"
	IconsUnicode IconSet = "unicode"
	IconsNone    IconSet = "none"
)

// IsValid reports whether s is a known icon set.
func (s IconSet) IsValid() bool {
	switch s {
	case IconsNerd, IconsUnicode, IconsNone:
		return true
	default:
		return false
	}
}

var glyphIcons = map[IconSet]map[banner.Glyph]string{
	IconsNerd: {
		banner.GlyphWarningRing:   "\U000F0028", // 󰀨
		banner.GlyphCheckmarkRing: "\U000F05E1", // 󰗡
	},
	IconsUnicode: {
		banner.GlyphWarningRing:   "⚠",
		banner.GlyphCheckmarkRing: "✔",
	},
}

// GlyphIcon returns the icon drawn for g. Unknown glyph names are drawn
// verbatim so callers can pass their own symbol. The none set and the
// empty glyph draw nothing.
func GlyphIcon(set IconSet, g banner.Glyph) string {
	if g == "" || set == IconsNone {
		return ""
	}
	if icon, ok := glyphIcons[set][g]; ok {
		return icon
	}
	return string(g)
}

// Status icons used by the CLI printer.
var (
	IconSuccess = "✔"
	IconInfo    = "•"
	IconError   = "✘"
)
