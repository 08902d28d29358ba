// Package config handles configuration loading and validation for banners.
package config

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/banners/internal/core/banner"
	"github.com/hay-kot/banners/internal/core/styles"
)

// Banner positions on the host surface.
const (
	PositionTop    = "top"
	PositionBottom = "bottom"
)

// Config holds the application configuration.
type Config struct {
	Theme   string            `yaml:"theme"`
	Icons   styles.IconSet    `yaml:"icons"`
	Banner  BannerConfig      `yaml:"banner"`
	Presets map[string]Preset `yaml:"presets"`
}

// BannerConfig holds the defaults applied to banners created by the demo
// and by scenarios that leave a field unset.
type BannerConfig struct {
	ThrottleDelay  time.Duration `yaml:"throttle_delay"`
	Timeout        time.Duration `yaml:"timeout"` // 0 = stay until tapped
	Glyph          bool          `yaml:"glyph"`
	Position       string        `yaml:"position"`        // top, bottom
	LeaveAnimation time.Duration `yaml:"leave_animation"` // 0 = detach immediately
	Width          int           `yaml:"width"`
}

// Preset is a named custom style.
type Preset struct {
	Background string `yaml:"background"`
	Glyph      string `yaml:"glyph"`
	GlyphTint  string `yaml:"glyph_tint"`
}

// Style converts the preset into a custom banner style.
func (p Preset) Style() banner.Custom {
	return banner.Custom{
		Background: banner.Color(p.Background),
		Glyph:      banner.Glyph(p.Glyph),
		GlyphTint:  banner.Color(p.GlyphTint),
	}
}

// defaultPresets are merged under user presets.
var defaultPresets = map[string]Preset{
	"info": {
		Background: "#7aa2f7",
		Glyph:      string(banner.GlyphCheckmarkRing),
		GlyphTint:  "#1a1b26",
	},
	"plain": {
		Background: "#3b4261",
	},
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme: styles.DefaultTheme,
		Icons: styles.IconsNerd,
		Banner: BannerConfig{
			ThrottleDelay:  banner.DefaultThrottleDelay,
			Timeout:        3 * time.Second,
			Glyph:          true,
			Position:       PositionTop,
			LeaveAnimation: 150 * time.Millisecond,
			Width:          60,
		},
		Presets: map[string]Preset{},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	// Merge user presets into defaults (user config overrides defaults)
	cfg.Presets = mergePresets(defaultPresets, cfg.Presets)

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Icons == "" {
		c.Icons = defaults.Icons
	}
	if c.Banner.Position == "" {
		c.Banner.Position = defaults.Banner.Position
	}
	if c.Banner.Width == 0 {
		c.Banner.Width = defaults.Banner.Width
	}
}

// mergePresets merges user presets into defaults.
// User presets override defaults with the same name.
func mergePresets(defaults, user map[string]Preset) map[string]Preset {
	result := make(map[string]Preset, len(defaults)+len(user))
	for k, v := range defaults {
		result[k] = v
	}
	for k, v := range user {
		result[k] = v
	}
	return result
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q", c.Theme)
	}

	if !c.Icons.IsValid() {
		return fmt.Errorf("icons must be one of nerd, unicode, none; got %q", c.Icons)
	}

	if c.Banner.ThrottleDelay < 0 {
		return fmt.Errorf("banner.throttle_delay cannot be negative")
	}

	if c.Banner.Timeout < 0 {
		return fmt.Errorf("banner.timeout cannot be negative")
	}

	if c.Banner.LeaveAnimation < 0 {
		return fmt.Errorf("banner.leave_animation cannot be negative")
	}

	if c.Banner.Position != PositionTop && c.Banner.Position != PositionBottom {
		return fmt.Errorf("banner.position must be top or bottom; got %q", c.Banner.Position)
	}

	if c.Banner.Width < 10 {
		return fmt.Errorf("banner.width must be at least 10")
	}

	for name := range c.Presets {
		if _, builtin := banner.ParseStyle(name); builtin {
			return fmt.Errorf("preset %q shadows a built-in style", name)
		}
	}

	return nil
}

// PresetNames returns the sorted preset names.
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupStyle resolves a built-in style name or a preset name.
func (c *Config) LookupStyle(name string) (banner.Style, bool) {
	if s, ok := banner.ParseStyle(name); ok {
		return s, true
	}
	if p, ok := c.Presets[name]; ok {
		return p.Style(), true
	}
	return nil, false
}

// RequestOptions returns the request options implied by the banner defaults.
func (c *Config) RequestOptions() []banner.RequestOption {
	return []banner.RequestOption{
		banner.WithThrottleDelay(c.Banner.ThrottleDelay),
		banner.WithTimeout(c.Banner.Timeout),
		banner.WithGlyph(c.Banner.Glyph),
	}
}
