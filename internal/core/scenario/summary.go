package scenario

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hay-kot/banners/internal/core/banner"
)

// Summary tallies engine events during playback.
type Summary struct {
	Name      string
	Presented int
	Deferred  int
	Dropped   int
	Actions   int
	TotalWait time.Duration
	Dismissed map[banner.Reason]int

	start time.Time
	end   time.Time
}

// NewSummary returns an empty summary for the named scenario.
func NewSummary(name string) *Summary {
	return &Summary{Name: name, Dismissed: make(map[banner.Reason]int)}
}

// Observe is an engine observer hook.
func (s *Summary) Observe(ev banner.Event) {
	if s.start.IsZero() {
		s.start = ev.At
	}
	s.end = ev.At

	switch ev.Kind {
	case banner.EventPresented:
		s.Presented++
	case banner.EventDeferred:
		s.Deferred++
		s.TotalWait += ev.Wait
	case banner.EventDropped:
		s.Dropped++
	case banner.EventAction:
		s.Actions++
	case banner.EventDismissed:
		s.Dismissed[ev.Reason]++
	}
}

// Elapsed is the time between the first and last observed event.
func (s *Summary) Elapsed() time.Duration {
	return s.end.Sub(s.start)
}

// Markdown renders the summary as a markdown document.
func (s *Summary) Markdown() string {
	var b strings.Builder

	title := s.Name
	if title == "" {
		title = "scenario"
	}
	fmt.Fprintf(&b, "## %s\n\n", title)

	b.WriteString("| metric | value |\n|---|---|\n")
	fmt.Fprintf(&b, "| presented | %d |\n", s.Presented)
	fmt.Fprintf(&b, "| deferred | %d |\n", s.Deferred)
	fmt.Fprintf(&b, "| throttle wait | %s |\n", s.TotalWait.Round(time.Millisecond))
	fmt.Fprintf(&b, "| dropped | %d |\n", s.Dropped)
	fmt.Fprintf(&b, "| actions | %d |\n", s.Actions)

	reasons := make([]string, 0, len(s.Dismissed))
	for r := range s.Dismissed {
		reasons = append(reasons, string(r))
	}
	sort.Strings(reasons)
	for _, r := range reasons {
		fmt.Fprintf(&b, "| dismissed (%s) | %d |\n", r, s.Dismissed[banner.Reason(r)])
	}

	fmt.Fprintf(&b, "\nFinished in %s.\n", s.Elapsed().Round(time.Millisecond))
	return b.String()
}
