package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/banners/internal/core/banner"
	"github.com/hay-kot/banners/internal/core/config"
	"github.com/hay-kot/banners/internal/core/eventloop"
	"github.com/hay-kot/banners/internal/core/scenario"
	"github.com/hay-kot/banners/internal/core/styles"
	"github.com/hay-kot/banners/internal/tui/components/bannerview"
	"github.com/hay-kot/banners/pkg/ioyaml"
)

const defaultPlayLimit = time.Minute

type PlayCmd struct {
	flags *Flags

	reader  ioyaml.FileReader[scenario.Scenario]
	limit   time.Duration
	glob    string
	summary bool
}

// NewPlayCmd creates a new play command
func NewPlayCmd(flags *Flags) *PlayCmd {
	return &PlayCmd{flags: flags}
}

// Register adds the play command to the application
func (cmd *PlayCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "play",
		Usage:     "Play a banner scenario without a UI",
		UsageText: "banners play [-f scenario.yaml | --glob 'scenarios/**/*.yaml'] [--summary]",
		Description: `Runs a scripted scenario against the banner engine and prints every event.

Each step runs at its offset from the start of playback and performs one of
show, tap or dismiss. Playback ends once the last step has run and the slot is
empty again.

Example scenario:

  steps:
    - at: 0s
      show: { text: "Saved", style: positive, timeout: 2s }
    - at: 100ms
      show: { text: "Offline", style: negative, action: retry }
    - at: 1s
      tap: true`,
		Flags: []cli.Flag{
			cmd.reader.Flag(),
			&cli.DurationFlag{
				Name:        "limit",
				Usage:       "give up if playback has not finished after this long",
				Value:       defaultPlayLimit,
				Destination: &cmd.limit,
			},
			&cli.StringFlag{
				Name:        "glob",
				Usage:       "play every scenario file matching a pattern relative to the working directory",
				Destination: &cmd.glob,
			},
			&cli.BoolFlag{
				Name:        "summary",
				Usage:       "print a summary of each scenario after playback",
				Destination: &cmd.summary,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *PlayCmd) run(ctx context.Context, c *cli.Command) error {
	scenarios, err := cmd.scenarios()
	if err != nil {
		return err
	}

	cfg := cmd.flags.Config
	w := c.Root().Writer

	for i, sc := range scenarios {
		if err := sc.Validate(cfg); err != nil {
			return fmt.Errorf("invalid scenario %s: %w", sc.Name, err)
		}

		if len(scenarios) > 1 {
			if i > 0 {
				_, _ = fmt.Fprintln(w)
			}
			_, _ = fmt.Fprintln(w, styles.TitleStyle.Render(sc.Name))
		}

		summary, err := play(ctx, w, cfg, sc, cmd.limit)
		if err != nil {
			return fmt.Errorf("%s: %w", sc.Name, err)
		}

		if cmd.summary {
			_, _ = fmt.Fprintln(w, renderSummary(summary, cfg.Banner.Width))
		}
	}

	return nil
}

// scenarios returns the scenarios selected by --glob, or the single
// scenario read from --file.
func (cmd *PlayCmd) scenarios() ([]scenario.Scenario, error) {
	if cmd.glob == "" {
		sc, err := cmd.reader.Read()
		if err != nil {
			return nil, fmt.Errorf("read scenario %s: %w", cmd.reader.Path(), err)
		}
		return []scenario.Scenario{sc}, nil
	}

	fsys := os.DirFS(".")
	paths, err := scenario.Discover(fsys, cmd.glob)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenarios match %q", cmd.glob)
	}

	out := make([]scenario.Scenario, 0, len(paths))
	for _, p := range paths {
		sc, err := scenario.Load(fsys, p)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}

// renderSummary renders the playback summary as terminal markdown, falling
// back to the raw markdown when rendering fails.
func renderSummary(s *scenario.Summary, width int) string {
	md := s.Markdown()

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}

	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

// play runs sc on a fresh event loop, writing events to w, until the
// scenario settles or limit elapses. The returned summary covers every event
// observed before playback ended.
func play(ctx context.Context, w io.Writer, cfg *config.Config, sc scenario.Scenario, limit time.Duration) (*scenario.Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, limit)
	defer cancel()

	loop := eventloop.New(64)
	out := &eventWriter{
		w:     w,
		now:   loop.Now,
		start: loop.Now(),
		icons: cfg.Icons,
		width: cfg.Banner.Width,
	}
	surface := &printSurface{out: out, sched: loop, animation: cfg.Banner.LeaveAnimation}

	summary := scenario.NewSummary(sc.Name)

	var player *scenario.Player
	engine := banner.NewEngine(surface, loop,
		banner.WithObserver(func(ev banner.Event) {
			out.event(ev)
			summary.Observe(ev)
			player.Observe(ev)
		}),
	)
	player = scenario.NewPlayer(loop, engine, cfg, out.action)

	errCh := make(chan error, 1)
	go func() { errCh <- loop.Run(ctx) }()

	loop.Post(func() { player.Schedule(ctx, sc) })

	select {
	case <-player.Done():
		cancel()
		<-errCh
		return summary, nil
	case err := <-errCh:
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("scenario did not finish within %s", limit)
		}
		return nil, err
	}
}

// eventWriter prints engine events relative to the start of playback. It is
// only used from the event loop.
type eventWriter struct {
	w     io.Writer
	now   func() time.Time
	start time.Time
	icons styles.IconSet
	width int
}

func (o *eventWriter) event(ev banner.Event) {
	var detail string
	switch ev.Kind {
	case banner.EventDeferred:
		detail = fmt.Sprintf("%q wait=%s", ev.Text, ev.Wait)
	case banner.EventDismissed:
		detail = fmt.Sprintf("#%d %q reason=%s", ev.BannerID, ev.Text, ev.Reason)
	case banner.EventDetached:
		detail = fmt.Sprintf("#%d", ev.BannerID)
	case banner.EventPresented, banner.EventAction:
		detail = fmt.Sprintf("#%d %q", ev.BannerID, ev.Text)
	default:
		detail = fmt.Sprintf("%q", ev.Text)
	}

	o.line(ev.At, string(ev.Kind), detail)
}

func (o *eventWriter) action(label string) {
	o.line(o.now(), "run", label)
}

func (o *eventWriter) banner(b *banner.Banner) {
	_, _ = fmt.Fprintln(o.w, "  "+bannerview.Render(b, bannerview.Options{Width: o.width, Icons: o.icons}))
}

func (o *eventWriter) line(at time.Time, kind, detail string) {
	offset := at.Sub(o.start).Round(time.Millisecond)
	_, _ = fmt.Fprintf(o.w, "%s %s %s\n",
		styles.EventTimeStyle.Render(fmt.Sprintf("%8s", offset)),
		styles.EventKindStyle.Render(kind),
		styles.EventTextStyle.Render(detail),
	)
}

// printSurface draws attached banners once and detaches them after the
// leave animation.
type printSurface struct {
	out       *eventWriter
	sched     banner.Scheduler
	animation time.Duration
}

func (s *printSurface) Attach(b *banner.Banner) {
	s.out.banner(b)
}

func (s *printSurface) Detach(_ *banner.Banner, done func()) {
	if s.animation <= 0 {
		done()
		return
	}
	s.sched.After(s.animation, done)
}
