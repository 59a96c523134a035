package render

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/yuin/goldmark/util"

	"github.com/yaklabco/mdrender/pkg/mdast"
)

var (
	brTagPattern    = regexp.MustCompile(`(?i)^<br\s*/?>$`)
	pOpenTagPattern = regexp.MustCompile(`(?i)^<\s*p(\s[^>]*)?>$`)
	pCloseTag       = regexp.MustCompile(`(?i)^</p\s*>$`)
)

// UnstyledRenderer flattens a document to text in which only <p> and <br />
// survive as markup. Inline styling disappears, links collapse to their
// visible text, lists become indented plain-text lines, and tables become
// space-separated rows. Raw HTML is dropped except for literal break and
// paragraph tags.
type UnstyledRenderer struct {
	opts Options
}

// NewUnstyled creates an unstyled renderer with the given options.
func NewUnstyled(opts Options) *UnstyledRenderer {
	return &UnstyledRenderer{opts: opts}
}

// Render converts a document tree to unstyled output.
func (r *UnstyledRenderer) Render(doc *mdast.Node) string {
	state := &unstyledState{opts: r.opts}
	state.renderChildren(doc)
	return state.buf.String()
}

// unstyledState carries the buffer and the ordered-list counter stack for one
// render pass.
type unstyledState struct {
	opts     Options
	buf      bytes.Buffer
	counters []int
}

func (s *unstyledState) renderChildren(parent *mdast.Node) {
	for child := parent.FirstChild; child != nil; child = child.Next {
		s.renderNode(child)
	}
}

//nolint:cyclop // one case per node kind keeps the dispatch readable
func (s *unstyledState) renderNode(n *mdast.Node) {
	switch n.Kind {
	case mdast.NodeDocument, mdast.NodeBlockquote, mdast.NodeTextBlock:
		s.renderChildren(n)

	case mdast.NodeParagraph:
		if s.inList() {
			s.renderChildren(n)
			return
		}
		s.buf.WriteString("<p>")
		s.renderChildren(n)
		s.buf.WriteString("</p>\n")

	case mdast.NodeHeading:
		s.renderChildren(n)
		s.buf.WriteByte('\n')

	case mdast.NodeList:
		s.renderList(n)

	case mdast.NodeListItem:
		// Handled by renderList.

	case mdast.NodeCodeBlock:
		s.buf.Write(util.EscapeHTML(n.Block.CodeBlock.Literal))

	case mdast.NodeMathBlock:
		s.buf.Write(util.EscapeHTML(n.Block.Literal))

	case mdast.NodeThematicBreak:
		s.buf.WriteByte('\n')

	case mdast.NodeHTMLBlock:
		// Dropped: only inline break and paragraph tags survive.

	case mdast.NodeTable:
		s.renderTable(n)

	case mdast.NodeText:
		s.buf.Write(util.EscapeHTML(n.Inline.Text))

	case mdast.NodeSoftBreak:
		if s.opts.HardBreaks {
			s.buf.WriteString("<br />\n")
		} else {
			s.buf.WriteByte('\n')
		}

	case mdast.NodeHardBreak:
		s.buf.WriteString("<br />\n")

	case mdast.NodeCodeSpan, mdast.NodeMathInline:
		s.buf.Write(util.EscapeHTML(n.Inline.Text))

	case mdast.NodeHTMLInline:
		s.renderInlineHTML(n.Inline.Text)

	case mdast.NodeTaskCheckbox:
		// Dropped.

	default:
		// Emphasis, strong, strikethrough, highlight, underline, links,
		// and images all collapse to their visible text.
		s.renderChildren(n)
	}
}

// renderInlineHTML keeps literal break and paragraph tags and drops the rest.
func (s *unstyledState) renderInlineHTML(raw []byte) {
	tag := bytes.TrimSpace(raw)
	switch {
	case brTagPattern.Match(tag):
		s.buf.WriteString("<br />")
	case pOpenTagPattern.Match(tag):
		s.buf.WriteString("<p>")
	case pCloseTag.Match(tag):
		s.buf.WriteString("</p>")
	}
}

func (s *unstyledState) inList() bool {
	return len(s.counters) > 0
}

// lineBreak starts a new line unless the output already sits at one.
func (s *unstyledState) lineBreak() {
	if b := s.buf.Bytes(); len(b) > 0 && b[len(b)-1] == '\n' {
		return
	}
	s.buf.WriteByte('\n')
}

// renderList flattens a list to indented plain-text lines. Nesting indents by
// two spaces per level; ordered items count up from the list's start number.
// Every list is followed by a blank-ish separator line.
func (s *unstyledState) renderList(list *mdast.Node) {
	attrs := list.Block.List

	start := 1
	if attrs.Ordered {
		start = attrs.StartNumber
	}
	s.counters = append(s.counters, start)
	s.lineBreak()

	for item := list.FirstChild; item != nil; item = item.Next {
		if item.Kind != mdast.NodeListItem {
			continue
		}
		s.renderListItem(item, attrs)
	}

	s.counters = s.counters[:len(s.counters)-1]
	s.buf.WriteByte('\n')
}

func (s *unstyledState) renderListItem(item *mdast.Node, attrs *mdast.ListAttrs) {
	depth := len(s.counters)
	for range 2 * depth {
		s.buf.WriteByte(' ')
	}

	if attrs.Ordered {
		delim := attrs.Marker
		if delim == 0 {
			delim = '.'
		}
		fmt.Fprintf(&s.buf, "%d%c ", s.counters[depth-1], delim)
	} else {
		marker := attrs.Marker
		if marker == 0 {
			marker = '*'
		}
		s.buf.WriteByte(marker)
		s.buf.WriteByte(' ')
	}

	s.renderChildren(item)
	s.lineBreak()
	s.counters[depth-1]++
}

// renderTable writes each row as space-separated cell text, one row per line.
func (s *unstyledState) renderTable(table *mdast.Node) {
	for row := table.FirstChild; row != nil; row = row.Next {
		first := true
		for cell := row.FirstChild; cell != nil; cell = cell.Next {
			if !first {
				s.buf.WriteByte(' ')
			}
			first = false
			s.renderChildren(cell)
		}
		s.buf.WriteByte('\n')
	}
}
