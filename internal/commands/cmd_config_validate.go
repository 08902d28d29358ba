package commands

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/banners/internal/core/config"
	"github.com/hay-kot/banners/internal/printer"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "banners config validate [options]",
				Description: "Validates the configuration file, checking the theme, banner defaults and preset colours.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

// validationError is one failed check in the validation report.
type validationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type validationReport struct {
	Valid    bool                       `json:"valid"`
	Errors   []validationError          `json:"errors,omitempty"`
	Warnings []config.ValidationWarning `json:"warnings,omitempty"`
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	report := buildReport(cmd.flags.Config, cmd.flags.ConfigPath)

	if cmd.format == "json" {
		enc := json.NewEncoder(c.Root().Writer)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
		if !report.Valid {
			return cli.Exit("", 1)
		}
		return nil
	}

	return cmd.outputText(printer.Ctx(ctx), report)
}

func buildReport(cfg *config.Config, configPath string) validationReport {
	report := validationReport{Valid: true}

	if err := cfg.ValidateDeep(configPath); err != nil {
		report.Valid = false

		var fieldErrs criterio.FieldErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				report.Errors = append(report.Errors, validationError{Field: fe.Field, Message: fe.Err.Error()})
			}
		} else {
			report.Errors = append(report.Errors, validationError{Message: err.Error()})
		}
	}

	report.Warnings = cfg.Warnings()
	return report
}

func (cmd *ConfigValidateCmd) outputText(p *printer.Printer, report validationReport) error {
	p.Infof("Config file: %s", cmd.flags.ConfigPath)

	for _, warn := range report.Warnings {
		p.Infof("%s: %s", warn.Category, warn.Message)
		if warn.Item != "" {
			p.Printf("  Item: %s", warn.Item)
		}
	}

	for _, e := range report.Errors {
		if e.Field != "" {
			p.Errorf("%s: %s", e.Field, e.Message)
			continue
		}
		p.Errorf("%s", e.Message)
	}

	p.Printf("")
	if report.Valid {
		p.Successf("Configuration is valid")
		return nil
	}

	p.Errorf("%d error(s) found", len(report.Errors))
	return cli.Exit("", 1)
}
