package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/mdrender/pkg/autolink"
	"github.com/yaklabco/mdrender/pkg/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func newRunner(t *testing.T, cfg *config.Config) *Runner {
	t.Helper()

	r, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestRunRendersTree(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "# A\n")
	writeFile(t, filepath.Join(dir, "docs", "b.md"), "*b*\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not markdown\n")

	r := newRunner(t, nil)

	result, err := r.Run(context.Background(), Options{WorkingDir: dir})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Stats.FilesDiscovered != 2 {
		t.Errorf("discovered = %d, want 2", result.Stats.FilesDiscovered)
	}
	if result.Stats.FilesRendered != 2 {
		t.Errorf("rendered = %d, want 2", result.Stats.FilesRendered)
	}
	if result.HasFailures() {
		t.Error("unexpected failures")
	}

	content, err := os.ReadFile(filepath.Join(dir, "docs", "b.html"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(content) != "<p><em>b</em></p>\n" {
		t.Errorf("output = %q", content)
	}
}

func TestRunOutputDirMirrorsLayout(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(dir, "docs", "guide.md"), "hello\n")

	r := newRunner(t, nil)

	result, err := r.Run(context.Background(), Options{WorkingDir: dir, OutputDir: out})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Stats.FilesRendered != 1 {
		t.Fatalf("rendered = %d", result.Stats.FilesRendered)
	}

	if _, err := os.Stat(filepath.Join(out, "docs", "guide.html")); err != nil {
		t.Errorf("mirrored output missing: %v", err)
	}
}

func TestRunUnstyledMode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "**bold** text\n")

	cfg := config.Default()
	cfg.Mode = config.ModeUnstyled

	r := newRunner(t, cfg)

	if _, err := r.Run(context.Background(), Options{WorkingDir: dir}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "a.html"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(content) != "<p>bold text</p>\n" {
		t.Errorf("output = %q", content)
	}
}

func TestRunAppliesAutolinkRules(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "fixes #7\n")

	cfg := config.Default()
	cfg.Rules = []autolink.Rule{{Pattern: `#(\d+)`, Template: "https://t/{1}"}}

	r := newRunner(t, cfg)

	if _, err := r.Run(context.Background(), Options{WorkingDir: dir}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "a.html"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(content) != "<p>fixes <a href=\"https://t/7\">#7</a></p>\n" {
		t.Errorf("output = %q", content)
	}
}

func TestRunSecondPassUnchanged(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "# A\n")

	r := newRunner(t, nil)
	ctx := context.Background()

	if _, err := r.Run(ctx, Options{WorkingDir: dir}); err != nil {
		t.Fatalf("first run: %v", err)
	}

	result, err := r.Run(ctx, Options{WorkingDir: dir})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if result.Stats.FilesUnchanged != 1 {
		t.Errorf("unchanged = %d, want 1", result.Stats.FilesUnchanged)
	}
}

func TestRunExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "a\n")
	writeFile(t, filepath.Join(dir, "vendor", "b.md"), "b\n")

	r := newRunner(t, nil)

	result, err := r.Run(context.Background(), Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"vendor/**"},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Stats.FilesDiscovered != 1 {
		t.Errorf("discovered = %d, want 1", result.Stats.FilesDiscovered)
	}
}

func TestRunReportsMissingPath(t *testing.T) {
	t.Parallel()

	r := newRunner(t, nil)

	_, err := r.Run(context.Background(), Options{
		WorkingDir: t.TempDir(),
		Paths:      []string{"no-such-file.md"},
	})
	if err == nil {
		t.Fatal("expected an error for missing path")
	}
}

func TestNewRejectsBadRules(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Rules = []autolink.Rule{{Pattern: `[`, Template: "t"}}

	if _, err := New(cfg); err == nil {
		t.Fatal("expected an error")
	}
}

func TestDiscoverDeterministicOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "z.md"), "z\n")
	writeFile(t, filepath.Join(dir, "a.md"), "a\n")
	writeFile(t, filepath.Join(dir, "m.md"), "m\n")

	files, err := Discover(context.Background(), Options{WorkingDir: dir})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files", len(files))
	}
	for i := 1; i < len(files); i++ {
		if files[i-1] >= files[i] {
			t.Errorf("files not sorted: %v", files)
		}
	}
}
