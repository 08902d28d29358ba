// Package tui implements the interactive banner demo.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/hay-kot/banners/internal/core/banner"
	"github.com/hay-kot/banners/internal/core/config"
	"github.com/hay-kot/banners/internal/core/logging"
	"github.com/hay-kot/banners/internal/core/styles"
	"github.com/hay-kot/banners/internal/tui/components/bannerview"
	"github.com/hay-kot/banners/internal/tui/notify"
)

const maxEventLines = 12

// timeoutChoices are cycled by the timeout key. Zero keeps the banner until
// it is tapped or dismissed.
var timeoutChoices = []time.Duration{0, time.Second, 3 * time.Second, 5 * time.Second}

// ConfigReloadedMsg carries the result of a config file reload.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// Options configure the demo model.
type Options struct {
	// Initial is shown as soon as the program starts.
	Initial *banner.Request
}

// eventLog keeps the most recent engine events for display.
type eventLog struct {
	lines []banner.Event
}

func (l *eventLog) add(ev banner.Event) {
	l.lines = append(l.lines, ev)
	if len(l.lines) > maxEventLines {
		l.lines = l.lines[len(l.lines)-maxEventLines:]
	}
}

// Model is the Bubble Tea model for the demo. The engine, its scheduler and
// the surface live behind pointers and are only touched inside Update.
type Model struct {
	cfg  *config.Config
	keys keyMap
	help help.Model
	log  zerolog.Logger

	sched   *teaScheduler
	surface *Surface
	engine  *banner.Engine
	bus     *notify.Bus
	events  *eventLog

	initial *banner.Request

	glyph      bool
	timeout    time.Duration
	presetIdx  int
	burstCount int

	width  int
	height int
}

// New creates the demo model.
func New(cfg *config.Config, opts Options) Model {
	sched := newTeaScheduler()
	surface := NewSurface(sched, cfg.Banner.LeaveAnimation)
	events := &eventLog{}

	engine := banner.NewEngine(surface, sched,
		banner.WithObserver(events.add),
	)

	bus := notify.NewBus(cfg.RequestOptions()...)
	bus.Subscribe(engine.Show)

	return Model{
		cfg:     cfg,
		keys:    defaultKeyMap(),
		help:    help.New(),
		log:     logging.Component("tui"),
		sched:   sched,
		surface: surface,
		engine:  engine,
		bus:     bus,
		events:  events,
		initial: opts.Initial,
		glyph:   cfg.Banner.Glyph,
		timeout: cfg.Banner.Timeout,
	}
}

func (m Model) Init() tea.Cmd {
	if m.initial == nil {
		return nil
	}
	r := *m.initial
	return func() tea.Msg { return showMsg{request: r} }
}

// showMsg submits a request from outside Update.
type showMsg struct {
	request banner.Request
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case timerFiredMsg:
		m.sched.Fire(msg)
	case showMsg:
		m.bus.Publish(msg.request)
	case ConfigReloadedMsg:
		m = m.applyConfig(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)
	}

	return m, tea.Batch(cmd, m.sched.Drain())
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Neutral):
		m.bus.Publish(m.request("Syncing in the background", banner.Neutral{}))
	case key.Matches(msg, m.keys.Negative):
		r := m.request("Upload failed. Tap to retry", banner.Negative{})
		r.Action = m.retryAction()
		m.bus.Publish(r)
	case key.Matches(msg, m.keys.Positive):
		m.bus.Publish(m.request("Changes saved", banner.Positive{}))
	case key.Matches(msg, m.keys.Preset):
		m.showPreset()
	case key.Matches(msg, m.keys.Burst):
		for range 3 {
			m.burstCount++
			m.bus.Publish(m.request(fmt.Sprintf("Burst #%d", m.burstCount), banner.Neutral{}))
		}
	case key.Matches(msg, m.keys.Glyph):
		m.glyph = !m.glyph
	case key.Matches(msg, m.keys.Timeout):
		m.timeout = nextTimeout(m.timeout)
	case key.Matches(msg, m.keys.Tap):
		m.engine.Tap()
	case key.Matches(msg, m.keys.Dismiss):
		m.engine.Dismiss()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	block := m.surface.Render(m.bannerOptions())
	if bannerBounds(block, m.width, m.height, m.bottom()).contains(msg.X, msg.Y) {
		m.engine.Tap()
	}
}

// request builds a demo request with the current glyph and timeout choices.
func (m Model) request(text string, style banner.Style) banner.Request {
	return banner.NewRequest(text,
		banner.WithStyle(style),
		banner.WithThrottleDelay(m.cfg.Banner.ThrottleDelay),
		banner.WithTimeout(m.timeout),
		banner.WithGlyph(m.glyph),
	)
}

// retryAction returns the tap action of the negative demo banner. It runs
// inside Update, so publishing from it is safe.
func (m Model) retryAction() func() {
	bus := m.bus
	return func() {
		bus.Successf("Upload retried")
	}
}

func (m *Model) showPreset() {
	names := m.cfg.PresetNames()
	if len(names) == 0 {
		m.bus.Warnf("No presets configured")
		return
	}

	name := names[m.presetIdx%len(names)]
	m.presetIdx++
	m.bus.Publish(m.request("Preset "+name, m.cfg.Presets[name].Style()))
}

func (m Model) applyConfig(msg ConfigReloadedMsg) Model {
	if msg.Err != nil {
		m.log.Warn().Err(msg.Err).Msg("config reload failed")
		m.bus.Errorf("Config reload failed")
		return m
	}

	cfg := msg.Config
	m.cfg = cfg
	if palette, ok := styles.GetPalette(cfg.Theme); ok {
		styles.SetTheme(palette)
	}
	m.surface.SetAnimation(cfg.Banner.LeaveAnimation)
	m.bus.SetDefaults(cfg.RequestOptions()...)
	m.glyph = cfg.Banner.Glyph
	m.timeout = cfg.Banner.Timeout
	m.presetIdx = 0

	m.log.Info().Str("theme", cfg.Theme).Msg("config reloaded")
	m.bus.Infof("Config reloaded")
	return m
}

func nextTimeout(cur time.Duration) time.Duration {
	for i, d := range timeoutChoices {
		if d == cur {
			return timeoutChoices[(i+1)%len(timeoutChoices)]
		}
	}
	return timeoutChoices[0]
}

func (m Model) bottom() bool {
	return m.cfg.Banner.Position == config.PositionBottom
}

// bannerOptions returns the render options for the configured width.
func (m Model) bannerOptions() bannerview.Options {
	width := m.cfg.Banner.Width
	if m.width > 0 {
		width = min(width, m.width)
	}
	return bannerview.Options{Width: width, Icons: m.cfg.Icons}
}
