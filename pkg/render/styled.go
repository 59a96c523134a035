package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-enry/go-enry/v2"
	"github.com/yuin/goldmark/util"

	"github.com/yaklabco/mdrender/pkg/mdast"
)

// StyledRenderer emits the full HTML representation of a document: semantic
// tags, heading anchors, tables, task checkboxes, alert containers, and math
// spans. Raw HTML passes through with disallowed tags escaped.
type StyledRenderer struct {
	opts Options
}

// NewStyled creates a styled renderer with the given options.
func NewStyled(opts Options) *StyledRenderer {
	return &StyledRenderer{opts: opts}
}

// Render converts a document tree to HTML.
func (r *StyledRenderer) Render(doc *mdast.Node) string {
	var buf bytes.Buffer
	r.renderChildren(&buf, doc)
	return buf.String()
}

func (r *StyledRenderer) renderChildren(buf *bytes.Buffer, parent *mdast.Node) {
	for child := parent.FirstChild; child != nil; child = child.Next {
		r.renderNode(buf, child)
	}
}

//nolint:cyclop,funlen // one case per node kind keeps the dispatch readable
func (r *StyledRenderer) renderNode(buf *bytes.Buffer, n *mdast.Node) {
	switch n.Kind {
	case mdast.NodeDocument:
		r.renderChildren(buf, n)

	case mdast.NodeParagraph:
		buf.WriteString("<p>")
		r.renderChildren(buf, n)
		buf.WriteString("</p>\n")

	case mdast.NodeTextBlock:
		r.renderChildren(buf, n)

	case mdast.NodeHeading:
		r.renderHeading(buf, n)

	case mdast.NodeList:
		r.renderList(buf, n)

	case mdast.NodeListItem:
		r.renderListItem(buf, n)

	case mdast.NodeBlockquote:
		r.renderBlockquote(buf, n)

	case mdast.NodeCodeBlock:
		r.renderCodeBlock(buf, n)

	case mdast.NodeThematicBreak:
		buf.WriteString("<hr />\n")

	case mdast.NodeHTMLBlock:
		buf.Write(filterTags(n.Block.Literal))

	case mdast.NodeTable:
		r.renderTable(buf, n)

	case mdast.NodeMathBlock:
		buf.WriteString(`<span data-math-style="display">`)
		buf.Write(util.EscapeHTML(bytes.TrimRight(n.Block.Literal, "\n")))
		buf.WriteString("</span>\n")

	case mdast.NodeText:
		buf.Write(util.EscapeHTML(n.Inline.Text))

	case mdast.NodeSoftBreak:
		if r.opts.HardBreaks {
			buf.WriteString("<br />\n")
		} else {
			buf.WriteByte('\n')
		}

	case mdast.NodeHardBreak:
		buf.WriteString("<br />\n")

	case mdast.NodeEmphasis:
		r.renderWrapped(buf, n, "em")

	case mdast.NodeStrong:
		r.renderWrapped(buf, n, "strong")

	case mdast.NodeStrikethrough:
		r.renderWrapped(buf, n, "del")

	case mdast.NodeHighlight:
		r.renderWrapped(buf, n, "mark")

	case mdast.NodeUnderline:
		r.renderWrapped(buf, n, "u")

	case mdast.NodeCodeSpan:
		buf.WriteString("<code>")
		buf.Write(util.EscapeHTML(n.Inline.Text))
		buf.WriteString("</code>")

	case mdast.NodeLink:
		r.renderLink(buf, n)

	case mdast.NodeImage:
		r.renderImage(buf, n)

	case mdast.NodeHTMLInline:
		buf.Write(filterTags(n.Inline.Text))

	case mdast.NodeMathInline:
		buf.WriteString(`<span data-math-style="inline">`)
		buf.Write(util.EscapeHTML(n.Inline.Text))
		buf.WriteString("</span>")

	case mdast.NodeTaskCheckbox:
		if n.Inline.Checked {
			buf.WriteString(`<input type="checkbox" checked="" disabled="" />`)
		} else {
			buf.WriteString(`<input type="checkbox" disabled="" />`)
		}

	default:
		r.renderChildren(buf, n)
	}
}

func (r *StyledRenderer) renderWrapped(buf *bytes.Buffer, n *mdast.Node, tag string) {
	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	r.renderChildren(buf, n)
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">")
}

func (r *StyledRenderer) renderHeading(buf *bytes.Buffer, n *mdast.Node) {
	fmt.Fprintf(buf, "<h%d>", n.Block.HeadingLevel)
	if n.Block.HeadingID != "" {
		fmt.Fprintf(buf, `<a href="#%s" aria-hidden="true" class="anchor" id="%s"></a>`,
			n.Block.HeadingSlug, n.Block.HeadingID)
	}
	r.renderChildren(buf, n)
	fmt.Fprintf(buf, "</h%d>\n", n.Block.HeadingLevel)
}

func (r *StyledRenderer) renderList(buf *bytes.Buffer, n *mdast.Node) {
	attrs := n.Block.List
	if attrs.Ordered {
		if attrs.StartNumber != 1 {
			fmt.Fprintf(buf, "<ol start=\"%d\">\n", attrs.StartNumber)
		} else {
			buf.WriteString("<ol>\n")
		}
		r.renderChildren(buf, n)
		buf.WriteString("</ol>\n")
		return
	}

	buf.WriteString("<ul>\n")
	r.renderChildren(buf, n)
	buf.WriteString("</ul>\n")
}

func (r *StyledRenderer) renderListItem(buf *bytes.Buffer, n *mdast.Node) {
	// Tight items carry text blocks and render inline; loose items carry
	// paragraphs and keep their block layout.
	if n.FirstChild != nil && n.FirstChild.Kind == mdast.NodeTextBlock {
		buf.WriteString("<li>")
		r.renderChildren(buf, n)
		buf.WriteString("</li>\n")
		return
	}

	buf.WriteString("<li>\n")
	r.renderChildren(buf, n)
	buf.WriteString("</li>\n")
}

func (r *StyledRenderer) renderBlockquote(buf *bytes.Buffer, n *mdast.Node) {
	if n.Block != nil && n.Block.Alert != mdast.AlertNone {
		kind := string(n.Block.Alert)
		fmt.Fprintf(buf, "<div class=\"markdown-alert markdown-alert-%s\">\n", kind)
		fmt.Fprintf(buf, "<p class=\"markdown-alert-title\">%s</p>\n", alertTitle(kind))
		r.renderChildren(buf, n)
		buf.WriteString("</div>\n")
		return
	}

	buf.WriteString("<blockquote>\n")
	r.renderChildren(buf, n)
	buf.WriteString("</blockquote>\n")
}

func (r *StyledRenderer) renderCodeBlock(buf *bytes.Buffer, n *mdast.Node) {
	attrs := n.Block.CodeBlock

	buf.WriteString("<pre><code")
	if lang := languageClass(attrs.Info); lang != "" {
		fmt.Fprintf(buf, " class=\"language-%s\"", lang)
	}
	buf.WriteString(">")
	buf.Write(util.EscapeHTML(attrs.Literal))
	buf.WriteString("</code></pre>\n")
}

func (r *StyledRenderer) renderTable(buf *bytes.Buffer, n *mdast.Node) {
	buf.WriteString("<table>\n")

	wroteBody := false
	for child := n.FirstChild; child != nil; child = child.Next {
		switch child.Kind {
		case mdast.NodeTableHeader:
			buf.WriteString("<thead>\n")
			r.renderTableRow(buf, child)
			buf.WriteString("</thead>\n")
		case mdast.NodeTableRow:
			if !wroteBody {
				buf.WriteString("<tbody>\n")
				wroteBody = true
			}
			r.renderTableRow(buf, child)
		}
	}
	if wroteBody {
		buf.WriteString("</tbody>\n")
	}

	buf.WriteString("</table>\n")
}

func (r *StyledRenderer) renderTableRow(buf *bytes.Buffer, row *mdast.Node) {
	buf.WriteString("<tr>\n")
	for cell := row.FirstChild; cell != nil; cell = cell.Next {
		tag := "td"
		if cell.Block.Cell.Header {
			tag = "th"
		}

		buf.WriteString("<")
		buf.WriteString(tag)
		if align := cell.Block.Cell.Alignment.String(); align != "" {
			fmt.Fprintf(buf, " align=\"%s\"", align)
		}
		buf.WriteString(">")
		r.renderChildren(buf, cell)
		buf.WriteString("</")
		buf.WriteString(tag)
		buf.WriteString(">\n")
	}
	buf.WriteString("</tr>\n")
}

func (r *StyledRenderer) renderLink(buf *bytes.Buffer, n *mdast.Node) {
	link := n.Inline.Link

	buf.WriteString(`<a href="`)
	buf.Write(util.EscapeHTML(util.URLEscape([]byte(link.Destination), true)))
	buf.WriteString(`"`)

	if link.Title != "" {
		fmt.Fprintf(buf, ` title="%s"`, util.EscapeHTML([]byte(link.Title)))
	}
	if link.Auto && r.opts.TargetBlank {
		fmt.Fprintf(buf, ` title="%s" target="_blank"`, util.EscapeHTML(mdast.PlainText(n)))
	}

	buf.WriteString(">")
	r.renderChildren(buf, n)
	buf.WriteString("</a>")
}

func (r *StyledRenderer) renderImage(buf *bytes.Buffer, n *mdast.Node) {
	link := n.Inline.Link

	buf.WriteString(`<img src="`)
	buf.Write(util.EscapeHTML(util.URLEscape([]byte(link.Destination), true)))
	buf.WriteString(`" alt="`)
	buf.Write(util.EscapeHTML(mdast.PlainText(n)))
	buf.WriteString(`"`)
	if link.Title != "" {
		fmt.Fprintf(buf, ` title="%s"`, util.EscapeHTML([]byte(link.Title)))
	}
	buf.WriteString(" />")
}

// alertTitle capitalizes an alert kind for display.
func alertTitle(kind string) string {
	if kind == "" {
		return ""
	}
	return strings.ToUpper(kind[:1]) + kind[1:]
}

// languageClass normalizes a code fence info string to a language identifier.
// Known aliases resolve through the linguist data set, so "golang" and "go"
// both come out as "go". Unknown info strings pass through as their first word.
func languageClass(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}

	alias := fields[0]
	if lang, ok := enry.GetLanguageByAlias(alias); ok {
		return strings.ToLower(lang)
	}
	return alias
}
