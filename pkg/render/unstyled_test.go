package render

import (
	"testing"

	"github.com/yaklabco/mdrender/pkg/parser/goldmark"
)

func renderUnstyled(t *testing.T, source string, opts Options) string {
	t.Helper()
	return NewUnstyled(opts).Render(goldmark.Unstyled().Parse([]byte(source)))
}

func TestUnstyledStripsInlineStyling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			"bold and emphasis",
			"**bold** and *em*",
			"<p>bold and em</p>\n",
		},
		{
			"strikethrough highlight underline",
			"~~a~~ ==b== __c__",
			"<p>a b c</p>\n",
		},
		{
			"link collapses to text",
			"[docs](https://example.com)",
			"<p>docs</p>\n",
		},
		{
			"image collapses to alt text",
			"![a cat](cat.png)",
			"<p>a cat</p>\n",
		},
		{
			"code span is escaped text",
			"`<b>`",
			"<p>&lt;b&gt;</p>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := renderUnstyled(t, tt.source, Options{}); got != tt.want {
				t.Errorf("got:\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestUnstyledHeading(t *testing.T) {
	t.Parallel()

	got := renderUnstyled(t, "# Title\n\nBody.\n", Options{})
	if got != "Title\n<p>Body.</p>\n" {
		t.Errorf("got %q", got)
	}
}

func TestUnstyledInlineHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"br survives", "a<br>b", "<p>a<br />b</p>\n"},
		{"self-closing br survives", "a<br />b", "<p>a<br />b</p>\n"},
		{"p with attributes survives", `a<p class="wide">b`, "<p>a<p>b</p>\n"},
		{"other tags dropped", "a <em>fancy</em> b", "<p>a fancy b</p>\n"},
		{"span dropped", `x <span class="y">z</span>`, "<p>x z</p>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := renderUnstyled(t, tt.source, Options{}); got != tt.want {
				t.Errorf("got:\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestUnstyledHTMLBlockDropped(t *testing.T) {
	t.Parallel()

	got := renderUnstyled(t, "<div>\nraw\n</div>\n\ntext\n", Options{})
	if got != "<p>text</p>\n" {
		t.Errorf("got %q", got)
	}
}

func TestUnstyledLists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			"flat bullets",
			"- a\n- b\n",
			"\n  - a\n  - b\n\n",
		},
		{
			"nested bullets",
			"* a list\n* of\n  - nested\n",
			"\n  * a list\n  * of\n    - nested\n\n\n",
		},
		{
			"ordered",
			"1. one\n2. two\n",
			"\n  1. one\n  2. two\n\n",
		},
		{
			"ordered with start",
			"5. five\n6. six\n",
			"\n  5. five\n  6. six\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := renderUnstyled(t, tt.source, Options{}); got != tt.want {
				t.Errorf("got:\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestUnstyledTable(t *testing.T) {
	t.Parallel()

	got := renderUnstyled(t, "| a | b |\n|---|---|\n| 1 | 2 |\n", Options{})
	if got != "a b\n1 2\n" {
		t.Errorf("got %q", got)
	}
}

func TestUnstyledCodeBlock(t *testing.T) {
	t.Parallel()

	got := renderUnstyled(t, "```\n<b>raw</b>\n```\n", Options{})
	if got != "&lt;b&gt;raw&lt;/b&gt;\n" {
		t.Errorf("got %q", got)
	}
}

func TestUnstyledBlockquote(t *testing.T) {
	t.Parallel()

	got := renderUnstyled(t, "> quoted words\n", Options{})
	if got != "<p>quoted words</p>\n" {
		t.Errorf("got %q", got)
	}
}

func TestUnstyledAlertKeepsBody(t *testing.T) {
	t.Parallel()

	got := renderUnstyled(t, "> [!TIP]\n> Useful.\n", Options{})
	if got != "<p>Useful.</p>\n" {
		t.Errorf("got %q", got)
	}
}

func TestUnstyledHardBreaks(t *testing.T) {
	t.Parallel()

	if got := renderUnstyled(t, "a\nb", Options{}); got != "<p>a\nb</p>\n" {
		t.Errorf("soft break got %q", got)
	}
	if got := renderUnstyled(t, "a\nb", Options{HardBreaks: true}); got != "<p>a<br />\nb</p>\n" {
		t.Errorf("hard break got %q", got)
	}
}

func TestUnstyledEmptyDocument(t *testing.T) {
	t.Parallel()

	if got := renderUnstyled(t, "", Options{}); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
