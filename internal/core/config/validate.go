package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/hay-kot/criterio"
	"github.com/lucasb-eyer/go-colorful"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration
// including preset colours and file accessibility. The configPath argument
// specifies the config file location to validate (empty string skips the
// config file check). This calls Validate() first for basic structural
// validation.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		c.validatePresets(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.Banner.Timeout == 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "Banner",
			Item:     "timeout",
			Message:  "banners stay visible until tapped or dismissed",
		})
	}

	for _, name := range c.PresetNames() {
		p := c.Presets[name]
		if p.Glyph != "" && p.GlyphTint == "" {
			warnings = append(warnings, ValidationWarning{
				Category: "Presets",
				Item:     name,
				Message:  "glyph has no tint and inherits the text colour",
			})
		}
	}

	return warnings
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// validatePresets checks that preset colours are parseable hex colours.
func (c *Config) validatePresets() error {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs criterio.FieldErrorsBuilder
	for _, name := range names {
		p := c.Presets[name]
		field := fmt.Sprintf("presets[%q]", name)

		if err := ValidateColor(p.Background); err != nil {
			errs = errs.Append(field+".background", err)
		}
		if err := ValidateColor(p.GlyphTint); err != nil {
			errs = errs.Append(field+".glyph_tint", err)
		}
	}
	return errs.ToError()
}

// ValidateColor checks that s is empty or a hex colour such as "#F04949".
func ValidateColor(s string) error {
	if s == "" {
		return nil
	}
	if _, err := colorful.Hex(s); err != nil {
		return fmt.Errorf("invalid hex colour %q", s)
	}
	return nil
}
