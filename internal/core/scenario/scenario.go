// Package scenario defines scripted banner playback: a list of show, tap
// and dismiss steps at fixed offsets from the start of playback.
package scenario

import (
	"fmt"
	"sort"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/banners/internal/core/banner"
	"github.com/hay-kot/banners/internal/core/config"
)

// Scenario is a scripted sequence of engine calls.
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step runs exactly one of Show, Tap or Dismiss at offset At.
type Step struct {
	At      time.Duration `yaml:"at"`
	Show    *Show         `yaml:"show"`
	Tap     bool          `yaml:"tap"`
	Dismiss bool          `yaml:"dismiss"`
}

// Show describes the request a step submits. Unset fields fall back to the
// banner defaults from the config.
type Show struct {
	Text          string         `yaml:"text"`
	Style         string         `yaml:"style"`
	Custom        config.Preset  `yaml:"custom"`
	Timeout       *time.Duration `yaml:"timeout"`
	Glyph         *bool          `yaml:"glyph"`
	ThrottleDelay *time.Duration `yaml:"throttle_delay"`
	Action        string         `yaml:"action"`
}

// Kind names the operation a step performs.
func (s Step) Kind() string {
	switch {
	case s.Show != nil:
		return "show"
	case s.Tap:
		return "tap"
	case s.Dismiss:
		return "dismiss"
	default:
		return ""
	}
}

// Duration is the offset of the last step.
func (sc Scenario) Duration() time.Duration {
	var d time.Duration
	for _, s := range sc.Steps {
		d = max(d, s.At)
	}
	return d
}

// Validate checks every step against cfg, which supplies preset names.
func (sc Scenario) Validate(cfg *config.Config) error {
	if len(sc.Steps) == 0 {
		return criterio.NewFieldErrors("steps", fmt.Errorf("at least one step is required"))
	}

	var errs criterio.FieldErrorsBuilder
	for i, step := range sc.Steps {
		field := fmt.Sprintf("steps[%d]", i)

		if step.At < 0 {
			errs = errs.Append(field+".at", fmt.Errorf("offset cannot be negative"))
		}

		n := 0
		if step.Show != nil {
			n++
		}
		if step.Tap {
			n++
		}
		if step.Dismiss {
			n++
		}
		if n != 1 {
			errs = errs.Append(field, fmt.Errorf("exactly one of show, tap or dismiss is required"))
			continue
		}

		if step.Show != nil {
			errs = step.Show.validate(errs, field+".show", cfg)
		}
	}
	return errs.ToError()
}

// Validate checks a single show request outside of a scenario.
func (s *Show) Validate(cfg *config.Config) error {
	var errs criterio.FieldErrorsBuilder
	return s.validate(errs, "show", cfg).ToError()
}

func (s *Show) validate(errs criterio.FieldErrorsBuilder, field string, cfg *config.Config) criterio.FieldErrorsBuilder {
	if s.Timeout != nil && *s.Timeout < 0 {
		errs = errs.Append(field+".timeout", fmt.Errorf("cannot be negative"))
	}
	if s.ThrottleDelay != nil && *s.ThrottleDelay < 0 {
		errs = errs.Append(field+".throttle_delay", fmt.Errorf("cannot be negative"))
	}

	if s.Style == "custom" {
		if err := config.ValidateColor(s.Custom.Background); err != nil {
			errs = errs.Append(field+".custom.background", err)
		}
		if err := config.ValidateColor(s.Custom.GlyphTint); err != nil {
			errs = errs.Append(field+".custom.glyph_tint", err)
		}
		return errs
	}

	if s.Style != "" {
		if _, ok := cfg.LookupStyle(s.Style); !ok {
			errs = errs.Append(field+".style", fmt.Errorf("unknown style or preset %q", s.Style))
		}
	}
	return errs
}

// Request builds the banner request for s. action, when non-nil, is bound
// to the request with the step's action label.
func (s *Show) Request(cfg *config.Config, action func(label string)) banner.Request {
	opts := cfg.RequestOptions()

	switch {
	case s.Style == "custom":
		opts = append(opts, banner.WithStyle(s.Custom.Style()))
	case s.Style != "":
		if style, ok := cfg.LookupStyle(s.Style); ok {
			opts = append(opts, banner.WithStyle(style))
		}
	}

	if s.Timeout != nil {
		opts = append(opts, banner.WithTimeout(*s.Timeout))
	}
	if s.Glyph != nil {
		opts = append(opts, banner.WithGlyph(*s.Glyph))
	}
	if s.ThrottleDelay != nil {
		opts = append(opts, banner.WithThrottleDelay(*s.ThrottleDelay))
	}
	if s.Action != "" && action != nil {
		label := s.Action
		opts = append(opts, banner.WithAction(func() { action(label) }))
	}

	return banner.NewRequest(s.Text, opts...)
}

// sortedSteps returns the steps ordered by offset, keeping file order for
// equal offsets.
func (sc Scenario) sortedSteps() []Step {
	steps := make([]Step, len(sc.Steps))
	copy(steps, sc.Steps)
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].At < steps[j].At })
	return steps
}
