package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/banners/internal/core/config"
	"github.com/hay-kot/banners/internal/core/scenario"
	"github.com/hay-kot/banners/internal/core/styles"
	"github.com/hay-kot/banners/internal/tui"
)

type ShowCmd struct {
	flags *Flags

	// Command-specific flags
	text       string
	style      string
	timeout    time.Duration
	glyph      bool
	throttle   time.Duration
	background string
	glyphName  string
	glyphTint  string

	glyphFromForm bool
}

// NewShowCmd creates a new show command
func NewShowCmd(flags *Flags) *ShowCmd {
	return &ShowCmd{flags: flags}
}

// Register adds the show command to the application
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Compose a banner and open the demo with it",
		UsageText: "banners show [options]",
		Description: `Builds one banner request and opens the demo with it already shown.

When --text is omitted and stdin is a terminal, an interactive form prompts
for the text, style and glyph. Unset options use the banner defaults from the
config file.

Use --style custom with --background, --glyph-name and --glyph-tint for a
one-off custom style.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "text",
				Aliases:     []string{"m"},
				Usage:       "banner text",
				Destination: &cmd.text,
			},
			&cli.StringFlag{
				Name:        "style",
				Aliases:     []string{"s"},
				Usage:       "neutral, negative, positive, custom or a preset name",
				Value:       "negative",
				Destination: &cmd.style,
			},
			&cli.DurationFlag{
				Name:        "timeout",
				Usage:       "auto-dismiss after this long (0 = until tapped)",
				Destination: &cmd.timeout,
			},
			&cli.BoolFlag{
				Name:        "glyph",
				Usage:       "show the style glyph",
				Destination: &cmd.glyph,
			},
			&cli.DurationFlag{
				Name:        "throttle",
				Usage:       "minimum delay since the previous banner",
				Destination: &cmd.throttle,
			},
			&cli.StringFlag{
				Name:        "background",
				Usage:       "custom style background colour (hex)",
				Destination: &cmd.background,
			},
			&cli.StringFlag{
				Name:        "glyph-name",
				Usage:       "custom style glyph (warningRing, checkmarkRing or any text)",
				Destination: &cmd.glyphName,
			},
			&cli.StringFlag{
				Name:        "glyph-tint",
				Usage:       "custom style glyph colour (hex)",
				Destination: &cmd.glyphTint,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.text == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("--text is required when stdin is not a terminal")
		}
		if err := cmd.runForm(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	show := cmd.show(c.IsSet)
	if err := show.Validate(cmd.flags.Config); err != nil {
		return fmt.Errorf("invalid banner: %w", err)
	}

	r := show.Request(cmd.flags.Config, nil)
	return runDemo(ctx, cmd.flags, tui.Options{Initial: &r})
}

// show maps the flags onto a scenario show step. Flags the user did not set
// are left nil so the config defaults apply.
func (cmd *ShowCmd) show(isSet func(name string) bool) *scenario.Show {
	s := &scenario.Show{
		Text:  cmd.text,
		Style: strings.ToLower(strings.TrimSpace(cmd.style)),
		Custom: config.Preset{
			Background: cmd.background,
			Glyph:      cmd.glyphName,
			GlyphTint:  cmd.glyphTint,
		},
	}
	if isSet("timeout") {
		s.Timeout = &cmd.timeout
	}
	if isSet("glyph") || cmd.glyphFromForm {
		s.Glyph = &cmd.glyph
	}
	if isSet("throttle") {
		s.ThrottleDelay = &cmd.throttle
	}
	return s
}

func (cmd *ShowCmd) runForm() error {
	cfg := cmd.flags.Config

	options := []huh.Option[string]{
		huh.NewOption("Negative", "negative"),
		huh.NewOption("Neutral", "neutral"),
		huh.NewOption("Positive", "positive"),
	}
	for _, name := range cfg.PresetNames() {
		options = append(options, huh.NewOption("Preset: "+name, name))
	}

	cmd.glyph = cfg.Banner.Glyph

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Text").
				Description("Message shown in the banner").
				Validate(validateText).
				Value(&cmd.text),
			huh.NewSelect[string]().
				Title("Style").
				Options(options...).
				Value(&cmd.style),
			huh.NewConfirm().
				Title("Show glyph").
				Value(&cmd.glyph),
		),
	).WithTheme(styles.FormTheme()).Run()
	if err != nil {
		return err
	}

	cmd.glyphFromForm = true
	return nil
}

func validateText(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("text is required")
	}
	return nil
}
