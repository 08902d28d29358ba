package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/banners/internal/core/banner"
	"github.com/hay-kot/banners/internal/core/styles"
)

func (m Model) View() string {
	sections := []string{
		styles.TitleStyle.Render("banners"),
		m.statusLine(),
		"",
		m.eventsView(),
		"",
		m.help.View(m.keys),
	}
	base := strings.Join(sections, "\n")

	view, _ := placeBanner(base, m.surface.Render(m.bannerOptions()), m.width, m.height, m.bottom())
	return view
}

func (m Model) statusLine() string {
	timeout := "until tapped"
	if m.timeout > 0 {
		timeout = m.timeout.String()
	}
	glyph := "off"
	if m.glyph {
		glyph = "on"
	}

	parts := []string{
		styles.StatusKeyStyle.Render(m.engine.State().String()),
		styles.StatusStyle.Render("timeout " + timeout),
		styles.StatusStyle.Render("glyph " + glyph),
		styles.StatusStyle.Render("throttle " + m.cfg.Banner.ThrottleDelay.String()),
	}
	if r, ok := m.engine.Pending(); ok {
		parts = append(parts, styles.StatusStyle.Render("waiting: "+r.Text))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) eventsView() string {
	if len(m.events.lines) == 0 {
		return styles.MutedStyle.Render("No events yet. Press 1, 2 or 3 to show a banner.")
	}

	lines := make([]string, 0, len(m.events.lines))
	for _, ev := range m.events.lines {
		lines = append(lines, formatEvent(ev))
	}
	return styles.PanelStyle.Render(strings.Join(lines, "\n"))
}

func formatEvent(ev banner.Event) string {
	detail := ev.Text
	switch ev.Kind {
	case banner.EventDeferred:
		detail = fmt.Sprintf("%s (wait %s)", ev.Text, ev.Wait)
	case banner.EventDismissed:
		detail = fmt.Sprintf("%s (%s)", ev.Text, ev.Reason)
	case banner.EventDetached:
		detail = fmt.Sprintf("#%d", ev.BannerID)
	}

	return styles.EventTimeStyle.Render(ev.At.Format("15:04:05.000")) + " " +
		styles.EventKindStyle.Render(string(ev.Kind)) + " " +
		styles.EventTextStyle.Render(detail)
}
