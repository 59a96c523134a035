// Package config defines the configuration types for mdrender.
// These types are pure data structures; file discovery and YAML parsing live
// alongside them, but nothing here touches the renderer directly.
package config

import (
	"fmt"

	"github.com/yaklabco/mdrender/pkg/autolink"
)

// Mode selects which renderer a batch run uses.
type Mode string

const (
	ModeStyled   Mode = "styled"
	ModeUnstyled Mode = "unstyled"
)

// IsValid returns true if the mode is one of the known renderers.
func (m Mode) IsValid() bool {
	switch m {
	case ModeStyled, ModeUnstyled:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for mdrender.
type Config struct {
	// Mode selects the renderer ("styled" or "unstyled").
	Mode Mode `yaml:"mode"`

	// Rules contains the autolink rules, applied in order.
	Rules []autolink.Rule `yaml:"rules"`

	// HardBreaks renders single newlines as <br /> tags.
	HardBreaks bool `yaml:"hard_breaks"`

	// TargetBlank decorates autolinked URLs with target="_blank".
	TargetBlank bool `yaml:"target_blank"`

	// Ignore contains glob patterns for files to skip during discovery.
	Ignore []string `yaml:"ignore"`

	// CLI-level options (not persisted to config files).

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// OutputDir is where rendered files are written. Empty means next to
	// the source file.
	OutputDir string `yaml:"-"`
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		Mode: ModeStyled,
	}
}

// Validate checks the configuration for errors. Autolink rules are compiled
// to surface invalid patterns; the compiled set is discarded.
func (c *Config) Validate() error {
	if c.Mode != "" && !c.Mode.IsValid() {
		return fmt.Errorf("invalid mode %q: must be %q or %q", c.Mode, ModeStyled, ModeUnstyled)
	}

	for i, rule := range c.Rules {
		if rule.Pattern == "" {
			return fmt.Errorf("rule %d: pattern must not be empty", i)
		}
		if rule.Template == "" {
			return fmt.Errorf("rule %d: template must not be empty", i)
		}
	}

	if _, err := autolink.Compile(c.Rules); err != nil {
		return fmt.Errorf("validate rules: %w", err)
	}

	return nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c

	if c.Rules != nil {
		clone.Rules = make([]autolink.Rule, len(c.Rules))
		copy(clone.Rules, c.Rules)
	}
	if c.Ignore != nil {
		clone.Ignore = make([]string, len(c.Ignore))
		copy(clone.Ignore, c.Ignore)
	}

	return &clone
}
