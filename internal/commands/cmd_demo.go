package commands

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/banners/internal/core/config"
	"github.com/hay-kot/banners/internal/tui"
)

type DemoCmd struct {
	flags *Flags
}

// NewDemoCmd creates a new demo command
func NewDemoCmd(flags *Flags) *DemoCmd {
	return &DemoCmd{flags: flags}
}

// Register adds the demo command to the application
func (cmd *DemoCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "demo",
		Usage:     "Open the interactive banner demo",
		UsageText: "banners demo",
		Description: `Opens a terminal UI with a single banner slot.

Keys 1, 2 and 3 show neutral, negative and positive banners, 4 cycles through
the configured presets and b submits a burst of three requests at once. Tap
the banner with enter, space or a mouse click; esc dismisses it.

The config file is watched while the demo runs and changes apply immediately.`,
		Action: cmd.run,
	})

	return app
}

// Run executes the demo. Exported for use as default command.
func (cmd *DemoCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *DemoCmd) run(ctx context.Context, _ *cli.Command) error {
	return runDemo(ctx, cmd.flags, tui.Options{})
}

// runDemo runs the demo program until the user quits, reloading the config
// file whenever it changes.
func runDemo(ctx context.Context, flags *Flags, opts tui.Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(
		tui.New(flags.Config, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	go func() {
		err := config.Watch(ctx, flags.ConfigPath, func(cfg *config.Config, err error) {
			p.Send(tui.ConfigReloadedMsg{Config: cfg, Err: err})
		})
		if err != nil {
			log.Warn().Err(err).Msg("config watcher stopped")
		}
	}()

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
