package render

import (
	"strings"
	"testing"

	"github.com/yaklabco/mdrender/pkg/mdast"
	"github.com/yaklabco/mdrender/pkg/parser/goldmark"
)

func renderStyled(t *testing.T, source string, opts Options) string {
	t.Helper()
	return NewStyled(opts).Render(goldmark.Styled().Parse([]byte(source)))
}

func TestStyledBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			"paragraph",
			"**bold** text",
			"<p><strong>bold</strong> text</p>\n",
		},
		{
			"heading with anchor",
			"## Results",
			"<h2><a href=\"#results\" aria-hidden=\"true\" class=\"anchor\" id=\"indico-md-results\"></a>Results</h2>\n",
		},
		{
			"fenced code",
			"```go\nx := 1\n```\n",
			"<pre><code class=\"language-go\">x := 1\n</code></pre>\n",
		},
		{
			"code language alias",
			"```golang\nx := 1\n```\n",
			"<pre><code class=\"language-go\">x := 1\n</code></pre>\n",
		},
		{
			"code without language",
			"```\nplain\n```\n",
			"<pre><code>plain\n</code></pre>\n",
		},
		{
			"tight list",
			"- a\n- b\n",
			"<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n",
		},
		{
			"ordered list with start",
			"3. a\n4. b\n",
			"<ol start=\"3\">\n<li>a</li>\n<li>b</li>\n</ol>\n",
		},
		{
			"blockquote",
			"> hi\n",
			"<blockquote>\n<p>hi</p>\n</blockquote>\n",
		},
		{
			"thematic break",
			"---\n",
			"<hr />\n",
		},
		{
			"alert",
			"> [!NOTE]\n> Careful.\n",
			"<div class=\"markdown-alert markdown-alert-note\">\n<p class=\"markdown-alert-title\">Note</p>\n<p>Careful.</p>\n</div>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := renderStyled(t, tt.source, Options{}); got != tt.want {
				t.Errorf("got:\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestStyledInlines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			"span soup",
			"~~a~~ ==b== __c__ *d*",
			"<p><del>a</del> <mark>b</mark> <u>c</u> <em>d</em></p>\n",
		},
		{
			"code span escapes",
			"`<b>`",
			"<p><code>&lt;b&gt;</code></p>\n",
		},
		{
			"link with title",
			"[docs](https://example.com \"Docs\")",
			"<p><a href=\"https://example.com\" title=\"Docs\">docs</a></p>\n",
		},
		{
			"bare url",
			"see https://example.com",
			"<p>see <a href=\"https://example.com\">https://example.com</a></p>\n",
		},
		{
			"image",
			"![cat](cat.png)",
			"<p><img src=\"cat.png\" alt=\"cat\" /></p>\n",
		},
		{
			"inline math",
			"$x^2$",
			"<p><span data-math-style=\"inline\">x^2</span></p>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := renderStyled(t, tt.source, Options{}); got != tt.want {
				t.Errorf("got:\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestStyledTable(t *testing.T) {
	t.Parallel()

	got := renderStyled(t, "| a | b |\n|:--|--:|\n| 1 | 2 |\n", Options{})

	want := "<table>\n<thead>\n<tr>\n<th align=\"left\">a</th>\n<th align=\"right\">b</th>\n</tr>\n</thead>\n" +
		"<tbody>\n<tr>\n<td align=\"left\">1</td>\n<td align=\"right\">2</td>\n</tr>\n</tbody>\n</table>\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestStyledTaskList(t *testing.T) {
	t.Parallel()

	got := renderStyled(t, "- [x] done\n- [ ] todo\n", Options{})

	if !strings.Contains(got, `<input type="checkbox" checked="" disabled="" />`) {
		t.Errorf("missing checked checkbox in %q", got)
	}
	if !strings.Contains(got, `<input type="checkbox" disabled="" />`) {
		t.Errorf("missing unchecked checkbox in %q", got)
	}
}

func TestStyledTagFilter(t *testing.T) {
	t.Parallel()

	got := renderStyled(t, "evil <script>alert(1)</script> stuff", Options{})

	if strings.Contains(got, "<script>") {
		t.Errorf("script tag not filtered: %q", got)
	}
	if !strings.Contains(got, "&lt;script>") {
		t.Errorf("script tag not escaped: %q", got)
	}
}

func TestStyledRawHTMLPassesThrough(t *testing.T) {
	t.Parallel()

	got := renderStyled(t, "a <em>fancy</em> b", Options{})

	if got != "<p>a <em>fancy</em> b</p>\n" {
		t.Errorf("got %q", got)
	}
}

func TestStyledHardBreaks(t *testing.T) {
	t.Parallel()

	if got := renderStyled(t, "a\nb", Options{}); got != "<p>a\nb</p>\n" {
		t.Errorf("soft break got %q", got)
	}
	if got := renderStyled(t, "a\nb", Options{HardBreaks: true}); got != "<p>a<br />\nb</p>\n" {
		t.Errorf("hard break got %q", got)
	}
}

func TestStyledTargetBlankDecoration(t *testing.T) {
	t.Parallel()

	doc := mdast.NewDocument()
	para := mdast.NewNode(mdast.NodeParagraph)
	link := mdast.NewLink("https://tracker/42")
	link.Inline.Link.Auto = true
	mdast.AppendChild(link, mdast.NewText([]byte("#42")))
	mdast.AppendChild(para, link)
	mdast.AppendChild(doc, para)

	plain := NewStyled(Options{}).Render(doc)
	if plain != "<p><a href=\"https://tracker/42\">#42</a></p>\n" {
		t.Errorf("undecorated got %q", plain)
	}

	decorated := NewStyled(Options{TargetBlank: true}).Render(doc)
	want := "<p><a href=\"https://tracker/42\" title=\"#42\" target=\"_blank\">#42</a></p>\n"
	if decorated != want {
		t.Errorf("decorated got %q, want %q", decorated, want)
	}
}

func TestStyledEmptyDocument(t *testing.T) {
	t.Parallel()

	if got := renderStyled(t, "", Options{}); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
