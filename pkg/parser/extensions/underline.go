package extensions

import (
	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// UnderlineNode is an __underlined__ text span.
type UnderlineNode struct {
	gast.BaseInline
}

// Dump implements ast.Node.
func (n *UnderlineNode) Dump(source []byte, level int) {
	gast.DumpHelper(n, source, level, nil, nil)
}

// KindUnderline is the node kind of UnderlineNode.
var KindUnderline = gast.NewNodeKind("Underline")

// Kind implements ast.Node.
func (n *UnderlineNode) Kind() gast.NodeKind {
	return KindUnderline
}

// NewUnderlineNode returns a new UnderlineNode.
func NewUnderlineNode() *UnderlineNode {
	return &UnderlineNode{}
}

type underlineDelimiterProcessor struct{}

func (p *underlineDelimiterProcessor) IsDelimiter(b byte) bool {
	return b == '_'
}

func (p *underlineDelimiterProcessor) CanOpenCloser(opener, closer *parser.Delimiter) bool {
	return opener.Char == closer.Char
}

func (p *underlineDelimiterProcessor) OnMatch(_ int) gast.Node {
	return NewUnderlineNode()
}

var defaultUnderlineDelimiterProcessor = &underlineDelimiterProcessor{}

type underlineParser struct{}

var defaultUnderlineParser = &underlineParser{}

// NewUnderlineParser returns an InlineParser that parses __underline__ spans.
// It must be registered ahead of the emphasis parser so that double-underscore
// runs become underlines instead of strong emphasis; single underscores fall
// through to the default emphasis handling.
func NewUnderlineParser() parser.InlineParser {
	return defaultUnderlineParser
}

func (s *underlineParser) Trigger() []byte {
	return []byte{'_'}
}

func (s *underlineParser) Parse(_ gast.Node, block text.Reader, pc parser.Context) gast.Node {
	before := block.PrecendingCharacter()
	line, segment := block.PeekLine()
	node := parser.ScanDelimiter(line, before, 2, defaultUnderlineDelimiterProcessor)
	if node == nil || node.OriginalLength != 2 || before == rune(line[0]) {
		return nil
	}
	node.Segment = segment.WithStop(segment.Start + node.OriginalLength)
	block.Advance(node.OriginalLength)
	pc.PushDelimiter(node)
	return node
}

type underline struct{}

// Underline is an extension that parses __text__ as an underline span
// instead of strong emphasis.
var Underline goldmark.Extender = &underline{}

func (e *underline) Extend(m goldmark.Markdown) {
	// Priority 499: ahead of the built-in emphasis parser at 500.
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(NewUnderlineParser(), 499),
	))
}
