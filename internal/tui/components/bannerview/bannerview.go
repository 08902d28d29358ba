// Package bannerview renders a banner as a single styled block.
package bannerview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/hay-kot/banners/internal/core/banner"
	"github.com/hay-kot/banners/internal/core/styles"
)

const padding = 1

const (
	lightText = lipgloss.Color("#ffffff")
	darkText  = lipgloss.Color("#000000")
)

// Options control how a banner is drawn.
type Options struct {
	Width int
	Icons styles.IconSet
	// Leaving draws the banner faded while it is being detached.
	Leaving bool
}

// Render draws b on one line. The background comes from the resolved
// visual; the text colour is black or white, whichever reads better on that
// background. Text longer than the width is truncated.
func Render(b *banner.Banner, opts Options) string {
	if b == nil {
		return ""
	}

	bg := background(b.Visual.Background)
	fg := TextColor(bg)

	base := styles.BannerBaseStyle.
		UnsetPadding().
		Background(bg).
		Foreground(fg)
	if opts.Leaving {
		base = base.Faint(true)
	}

	var icon string
	if g := glyph(b, opts.Icons); g != "" {
		tint := fg
		if b.Visual.GlyphTint != "" {
			tint = lipgloss.Color(b.Visual.GlyphTint)
		}
		icon = base.Foreground(tint).Render(g) + base.Render(" ")
	}

	text := b.Request.Text
	inner := opts.Width - 2*padding
	if opts.Width > 0 {
		text = ansi.Truncate(text, max(inner-lipgloss.Width(icon), 0), "…")
	}

	line := icon + base.Render(text)
	if fill := inner - lipgloss.Width(line); opts.Width > 0 && fill > 0 {
		line += base.Render(strings.Repeat(" ", fill))
	}

	side := base.Render(strings.Repeat(" ", padding))
	return side + line + side
}

// TextColor returns white for dark backgrounds and black for light ones.
// Colours that are not hex strings get white text.
func TextColor(bg lipgloss.Color) lipgloss.Color {
	c, err := colorful.Hex(string(bg))
	if err != nil {
		return lightText
	}
	_, _, l := c.Hcl()
	if l > 0.6 {
		return darkText
	}
	return lightText
}

func glyph(b *banner.Banner, icons styles.IconSet) string {
	if !b.Request.ShowGlyph {
		return ""
	}
	return styles.GlyphIcon(icons, b.Visual.Glyph)
}

func background(c banner.Color) lipgloss.Color {
	if c == "" {
		return styles.ColorSurface
	}
	return lipgloss.Color(c)
}
