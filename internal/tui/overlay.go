package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// rect is a region of the screen in cells.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// placeBanner composites block over base, centred horizontally on the top
// or bottom row. It returns the combined view and the block's bounds.
func placeBanner(base, block string, width, height int, bottom bool) (string, rect) {
	if block == "" {
		return base, rect{}
	}

	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}

	r := bannerBounds(block, width, len(lines), bottom)

	for i, bl := range strings.Split(block, "\n") {
		row := r.y + i
		if row >= len(lines) {
			break
		}

		line := lines[row]
		if w := ansi.StringWidth(line); w < width {
			line += strings.Repeat(" ", width-w)
		}

		out := ansi.Cut(line, 0, r.x) + bl
		if end := r.x + r.w; end < width {
			out += ansi.Cut(line, end, width)
		}
		lines[row] = out
	}

	return strings.Join(lines, "\n"), r
}

// bannerBounds returns where placeBanner draws block on a width by height
// screen.
func bannerBounds(block string, width, height int, bottom bool) rect {
	if block == "" {
		return rect{}
	}

	bw := lipgloss.Width(block)
	bh := lipgloss.Height(block)

	y := 0
	if bottom {
		y = max(height-bh, 0)
	}
	return rect{x: max((width-bw)/2, 0), y: y, w: bw, h: bh}
}
