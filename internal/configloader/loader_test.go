package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/mdrender/pkg/config"
)

func writeProjectConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, ".mdrender.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func baseOptions(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	result, err := Load(context.Background(), baseOptions(dir))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if result.Config.Mode != config.ModeStyled {
		t.Errorf("mode = %q", result.Config.Mode)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("loaded from %v, want nothing", result.LoadedFrom)
	}
}

func TestLoadProjectConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeProjectConfig(t, dir, "hard_breaks: true\nrules:\n  - pattern: '#(\\d+)'\n    template: https://t/{1}\n")

	result, err := Load(context.Background(), baseOptions(dir))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !result.Config.HardBreaks {
		t.Error("hard_breaks not loaded")
	}
	if len(result.Config.Rules) != 1 {
		t.Errorf("rules = %+v", result.Config.Rules)
	}
	if len(result.LoadedFrom) != 1 || result.LoadedFrom[0] != path {
		t.Errorf("loaded from %v", result.LoadedFrom)
	}
}

func TestLoadFindsConfigInParent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeProjectConfig(t, dir, "target_blank: true\n")

	nested := filepath.Join(dir, "docs", "guide")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	opts := baseOptions(nested)
	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !result.Config.TargetBlank {
		t.Error("parent config not found")
	}
}

func TestLoadStopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeProjectConfig(t, dir, "hard_breaks: true\n")

	repo := filepath.Join(dir, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	result, err := Load(context.Background(), baseOptions(repo))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if result.Config.HardBreaks {
		t.Error("search should stop at the VCS root")
	}
}

func TestLoadCLIOverridesProject(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeProjectConfig(t, dir, "mode: styled\n")

	opts := baseOptions(dir)
	opts.CLIConfig = &config.Config{Mode: config.ModeUnstyled, Jobs: 4}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if result.Config.Mode != config.ModeUnstyled {
		t.Errorf("mode = %q, want CLI override", result.Config.Mode)
	}
	if result.Config.Jobs != 4 {
		t.Errorf("jobs = %d", result.Config.Jobs)
	}
}

func TestLoadExplicitPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	explicit := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(explicit, []byte("hard_breaks: true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	opts := baseOptions(t.TempDir())
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !result.Config.HardBreaks {
		t.Error("explicit config not loaded")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MDRENDER_MODE", "unstyled")
	t.Setenv("MDRENDER_JOBS", "3")
	t.Setenv("MDRENDER_IGNORE", "a/**, b/**")

	opts := baseOptions(t.TempDir())
	opts.IgnoreEnv = false

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if result.Config.Mode != config.ModeUnstyled {
		t.Errorf("mode = %q", result.Config.Mode)
	}
	if result.Config.Jobs != 3 {
		t.Errorf("jobs = %d", result.Config.Jobs)
	}
	if len(result.Config.Ignore) != 2 {
		t.Errorf("ignore = %v", result.Config.Ignore)
	}
}

func TestLoadInvalidProjectConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeProjectConfig(t, dir, "rules:\n  - pattern: '[broken'\n    template: t\n")

	_, err := Load(context.Background(), baseOptions(dir))
	if err == nil {
		t.Fatal("expected an error for invalid pattern")
	}
}

func TestLoadSurfacesTemplateWarnings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeProjectConfig(t, dir, "rules:\n  - pattern: '#(\\d+)'\n    template: https://t/{2}\n")

	result, err := Load(context.Background(), baseOptions(dir))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(result.Warnings) != 1 {
		t.Errorf("warnings = %v, want one template warning", result.Warnings)
	}
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	base := config.Default()
	mid := &config.Config{HardBreaks: true}
	top := &config.Config{Mode: config.ModeUnstyled}

	merged := MergeAll(base, mid, top)
	if merged.Mode != config.ModeUnstyled || !merged.HardBreaks {
		t.Errorf("merged = %+v", merged)
	}
}
