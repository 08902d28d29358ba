package banner

import "strings"

// Color is a hex colour such as "#F04949". The empty Color means none.
type Color string

// Glyph identifies the icon drawn next to the banner text. Renderers map the
// known names below to concrete icons and draw any other value verbatim.
// The empty Glyph means none.
type Glyph string

const (
	GlyphWarningRing   Glyph = "warningRing"
	GlyphCheckmarkRing Glyph = "checkmarkRing"
)

// Fixed appearance of the built-in styles.
const (
	NeutralBackground  Color = "#C7C7CC"
	NegativeBackground Color = "#F04949"
	PositiveBackground Color = "#34C759"
	DefaultGlyphTint   Color = "#000000"
)

// Style is the visual variant of a banner. It is one of Neutral, Negative,
// Positive or Custom.
type Style interface {
	styleName() string
}

// Neutral is the gray informational style.
type Neutral struct{}

// Negative is the red error style. It is the default for requests that do
// not set a style.
type Negative struct{}

// Positive is the green success style.
type Positive struct{}

// Custom carries caller supplied appearance. Empty fields resolve to none.
type Custom struct {
	Background Color
	Glyph      Glyph
	GlyphTint  Color
}

func (Neutral) styleName() string  { return "neutral" }
func (Negative) styleName() string { return "negative" }
func (Positive) styleName() string { return "positive" }
func (Custom) styleName() string   { return "custom" }

// StyleName returns the lower case name of s. A nil style reports the
// default style name.
func StyleName(s Style) string {
	if s == nil {
		return Negative{}.styleName()
	}
	return s.styleName()
}

// ParseStyle returns the built-in style with the given name. "custom"
// yields an empty Custom style.
func ParseStyle(name string) (Style, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neutral":
		return Neutral{}, true
	case "negative":
		return Negative{}, true
	case "positive":
		return Positive{}, true
	case "custom":
		return Custom{}, true
	default:
		return nil, false
	}
}

// Visual is the resolved appearance of a banner.
type Visual struct {
	Background Color
	Glyph      Glyph
	GlyphTint  Color
}

// Resolve maps a style to its appearance. Built-in styles always resolve to
// a background and a glyph; Custom is passed through as is.
func Resolve(s Style) Visual {
	switch s := s.(type) {
	case Neutral:
		return Visual{Background: NeutralBackground, Glyph: GlyphWarningRing, GlyphTint: DefaultGlyphTint}
	case Positive:
		return Visual{Background: PositiveBackground, Glyph: GlyphCheckmarkRing, GlyphTint: DefaultGlyphTint}
	case Custom:
		return Visual(s)
	case *Custom:
		if s == nil {
			return Visual{}
		}
		return Visual(*s)
	default:
		return Visual{Background: NegativeBackground, Glyph: GlyphWarningRing, GlyphTint: DefaultGlyphTint}
	}
}
