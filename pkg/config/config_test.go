package config_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/mdrender/pkg/autolink"
	"github.com/yaklabco/mdrender/pkg/config"
)

func TestFromYAML(t *testing.T) {
	t.Parallel()

	data := []byte(`
mode: unstyled
hard_breaks: true
rules:
  - pattern: '#(\d+)'
    template: https://tracker/issues/{1}
ignore:
  - vendor/**
`)

	cfg, err := config.FromYAML(data)
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}

	if cfg.Mode != config.ModeUnstyled {
		t.Errorf("mode = %q", cfg.Mode)
	}
	if !cfg.HardBreaks {
		t.Error("hard_breaks not set")
	}
	if len(cfg.Rules) != 1 || cfg.Rules[0].Pattern != `#(\d+)` {
		t.Errorf("rules = %+v", cfg.Rules)
	}
	if len(cfg.Ignore) != 1 || cfg.Ignore[0] != "vendor/**" {
		t.Errorf("ignore = %v", cfg.Ignore)
	}
}

func TestFromYAMLEmptyUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML(nil)
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}
	if cfg.Mode != config.ModeStyled {
		t.Errorf("mode = %q, want styled default", cfg.Mode)
	}
}

func TestFromYAMLRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("hard_break: true\n"))
	if err == nil {
		t.Fatal("expected an error for unknown key")
	}
}

func TestFromYAMLRejectsInvalidMode(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("mode: fancy\n"))
	if err == nil || !strings.Contains(err.Error(), "invalid mode") {
		t.Fatalf("err = %v", err)
	}
}

func TestFromYAMLRejectsInvalidPattern(t *testing.T) {
	t.Parallel()

	data := []byte(`
rules:
  - pattern: '[unclosed'
    template: https://t/{0}
`)
	_, err := config.FromYAML(data)
	if err == nil {
		t.Fatal("expected an error for invalid pattern")
	}
}

func TestValidateRejectsEmptyRuleFields(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Rules = []autolink.Rule{{Pattern: "", Template: "https://t/{0}"}}
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "pattern") {
		t.Errorf("empty pattern: err = %v", err)
	}

	cfg.Rules = []autolink.Rule{{Pattern: "x", Template: ""}}
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "template") {
		t.Errorf("empty template: err = %v", err)
	}
}

func TestToYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.HardBreaks = true
	cfg.Rules = []autolink.Rule{{Pattern: `#(\d+)`, Template: "https://t/{1}"}}

	data, err := cfg.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}

	loaded, err := config.FromYAML(data)
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}
	if !loaded.HardBreaks {
		t.Error("hard_breaks lost in round trip")
	}
	if len(loaded.Rules) != 1 || loaded.Rules[0].Template != "https://t/{1}" {
		t.Errorf("rules lost in round trip: %+v", loaded.Rules)
	}
}

func TestClone(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML([]byte(`
rules:
  - pattern: 'X'
    template: 'https://t/{0}'
ignore:
  - a/**
`))
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}

	clone := cfg.Clone()
	clone.Rules[0].Pattern = "Y"
	clone.Ignore[0] = "b/**"

	if cfg.Rules[0].Pattern != "X" {
		t.Error("clone shares rules with original")
	}
	if cfg.Ignore[0] != "a/**" {
		t.Error("clone shares ignore list with original")
	}
}

func TestModeIsValid(t *testing.T) {
	t.Parallel()

	if !config.ModeStyled.IsValid() || !config.ModeUnstyled.IsValid() {
		t.Error("known modes should be valid")
	}
	if config.Mode("other").IsValid() {
		t.Error("unknown mode should be invalid")
	}
}
