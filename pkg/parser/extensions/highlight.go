// Package extensions provides the goldmark extensions that complete the
// Indico Markdown flavor: ==highlight==, __underline__, blockquote alerts,
// and prefixed heading IDs. Each extension only adds parser options; rendering
// happens in pkg/render over the mapped mdast tree, never through goldmark's
// renderer.
package extensions

import (
	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// HighlightNode is a ==highlighted== text span.
type HighlightNode struct {
	gast.BaseInline
}

// Dump implements ast.Node.
func (n *HighlightNode) Dump(source []byte, level int) {
	gast.DumpHelper(n, source, level, nil, nil)
}

// KindHighlight is the node kind of HighlightNode.
var KindHighlight = gast.NewNodeKind("Highlight")

// Kind implements ast.Node.
func (n *HighlightNode) Kind() gast.NodeKind {
	return KindHighlight
}

// NewHighlightNode returns a new HighlightNode.
func NewHighlightNode() *HighlightNode {
	return &HighlightNode{}
}

type highlightDelimiterProcessor struct{}

func (p *highlightDelimiterProcessor) IsDelimiter(b byte) bool {
	return b == '='
}

func (p *highlightDelimiterProcessor) CanOpenCloser(opener, closer *parser.Delimiter) bool {
	return opener.Char == closer.Char
}

func (p *highlightDelimiterProcessor) OnMatch(_ int) gast.Node {
	return NewHighlightNode()
}

var defaultHighlightDelimiterProcessor = &highlightDelimiterProcessor{}

type highlightParser struct{}

var defaultHighlightParser = &highlightParser{}

// NewHighlightParser returns an InlineParser that parses ==highlight== spans.
func NewHighlightParser() parser.InlineParser {
	return defaultHighlightParser
}

func (s *highlightParser) Trigger() []byte {
	return []byte{'='}
}

func (s *highlightParser) Parse(_ gast.Node, block text.Reader, pc parser.Context) gast.Node {
	before := block.PrecendingCharacter()
	line, segment := block.PeekLine()
	node := parser.ScanDelimiter(line, before, 2, defaultHighlightDelimiterProcessor)
	if node == nil || node.OriginalLength != 2 || before == rune(line[0]) {
		return nil
	}
	node.Segment = segment.WithStop(segment.Start + node.OriginalLength)
	block.Advance(node.OriginalLength)
	pc.PushDelimiter(node)
	return node
}

type highlight struct{}

// Highlight is an extension that parses ==text== as a highlight span.
var Highlight goldmark.Extender = &highlight{}

func (e *highlight) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(NewHighlightParser(), 500),
	))
}
