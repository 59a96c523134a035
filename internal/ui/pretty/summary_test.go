package pretty

import (
	"strings"
	"testing"

	"github.com/yaklabco/mdrender/pkg/runner"
)

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)

	stats := runner.Stats{
		FilesDiscovered: 3,
		FilesRendered:   3,
		FilesUnchanged:  1,
		BytesWritten:    2048,
	}

	got := styles.FormatSummaryOneLine(stats)
	want := "3 files rendered (2.0 kB written), 1 unchanged\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatSummaryOneLineSingular(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)

	stats := runner.Stats{
		FilesDiscovered: 1,
		FilesRendered:   1,
		BytesWritten:    10,
	}

	got := styles.FormatSummaryOneLine(stats)
	if got != "1 file rendered (10 B written)\n" {
		t.Errorf("got %q", got)
	}
}

func TestFormatSummaryOneLineEmpty(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)

	got := styles.FormatSummaryOneLine(runner.Stats{})
	if got != "No Markdown files found\n" {
		t.Errorf("got %q", got)
	}
}

func TestFormatSummaryOneLineFailures(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)

	stats := runner.Stats{
		FilesDiscovered: 2,
		FilesRendered:   1,
		FilesErrored:    1,
		BytesWritten:    5,
	}

	got := styles.FormatSummaryOneLine(stats)
	if !strings.Contains(got, "1 failed") {
		t.Errorf("got %q", got)
	}
}

func TestFormatSummaryBlock(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)

	stats := runner.Stats{
		FilesDiscovered: 2,
		FilesRendered:   2,
		BytesWritten:    100,
	}

	got := styles.FormatSummary(stats, 0)

	for _, want := range []string{"Summary", "Files discovered:", "Render complete"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "failed") {
		t.Errorf("clean summary mentions failures:\n%s", got)
	}
}

func TestFormatSummaryNarrowWidth(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)

	got := styles.FormatSummary(runner.Stats{FilesDiscovered: 1, FilesRendered: 1}, 10)
	if !strings.Contains(got, strings.Repeat("-", 10)+"\n") {
		t.Errorf("divider not clamped:\n%s", got)
	}
	if strings.Contains(got, strings.Repeat("-", 11)) {
		t.Errorf("divider too wide:\n%s", got)
	}
}

func TestTerminalWidthFallback(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	if got := TerminalWidth(&buf, 42); got != 42 {
		t.Errorf("got %d, want fallback 42", got)
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 kB"},
		{1536, "1.5 kB"},
		{2 * 1024 * 1024, "2.0 MB"},
	}

	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestIsColorEnabled(t *testing.T) {
	styles := strings.Builder{}

	if !IsColorEnabled("always", &styles) {
		t.Error("always should enable color")
	}
	if IsColorEnabled("never", &styles) {
		t.Error("never should disable color")
	}
	// Non-file writers never get color in auto mode.
	if IsColorEnabled("auto", &styles) {
		t.Error("auto should disable color for non-TTY writers")
	}
}
