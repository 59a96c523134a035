// Package goldmark wraps the goldmark library as the Markdown parsing black
// box. It configures the fixed Indico extension set and maps the goldmark AST
// into the owned mdast tree; no parsing logic lives in this repository.
package goldmark

import (
	"sync"

	mathjax "github.com/litao91/goldmark-mathjax"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/mdrender/pkg/mdast"
	"github.com/yaklabco/mdrender/pkg/parser/extensions"
)

// HeadingIDPrefix is prepended to every generated heading id attribute.
const HeadingIDPrefix = "indico-md-"

// Mode selects the extension set the parser is configured with.
type Mode string

const (
	// ModeStyled enables the full extension set used by styled rendering:
	// tables, strikethrough, tasklists, bare-URL autolinks, math spans,
	// highlight, underline, alerts, and prefixed heading IDs.
	ModeStyled Mode = "styled"

	// ModeUnstyled enables the reduced set used by unstyled rendering:
	// no autolinking, heading IDs, or math, since those constructs are
	// flattened to plain text anyway.
	ModeUnstyled Mode = "unstyled"
)

// Parser turns Markdown source into an mdast document tree.
type Parser struct {
	mode Mode
	md   goldmark.Markdown
}

// New creates a parser for the given mode. Invalid modes default to styled.
func New(mode Mode) *Parser {
	m := modeOrDefault(mode)
	return &Parser{
		mode: m,
		md:   newGoldmarkInstance(m),
	}
}

// Mode returns the configured parsing mode.
func (p *Parser) Mode() Mode {
	return p.mode
}

// Parse converts Markdown source into an mdast tree. Parsing is total:
// malformed input is recovered per CommonMark rules and never fails.
func (p *Parser) Parse(source []byte) *mdast.Node {
	ctxOpts := []parser.ContextOption{}
	if p.mode == ModeStyled {
		ctxOpts = append(ctxOpts, parser.WithIDs(extensions.NewPrefixedIDs(HeadingIDPrefix)))
	}

	reader := text.NewReader(source)
	gmDoc := p.md.Parser().Parse(reader, parser.WithContext(parser.NewContext(ctxOpts...)))

	return newMapper(source).mapDocument(gmDoc)
}

// Process-wide parser instances, built once. A Parser is safe for concurrent
// use: goldmark parsers are stateless across Parse calls with fresh contexts.
//
//nolint:gochecknoglobals // fixed process-wide configuration per the contract
var (
	styledOnce     sync.Once
	styledParser   *Parser
	unstyledOnce   sync.Once
	unstyledParser *Parser
)

// Styled returns the shared styled-mode parser.
func Styled() *Parser {
	styledOnce.Do(func() {
		styledParser = New(ModeStyled)
	})
	return styledParser
}

// Unstyled returns the shared unstyled-mode parser.
func Unstyled() *Parser {
	unstyledOnce.Do(func() {
		unstyledParser = New(ModeUnstyled)
	})
	return unstyledParser
}

// modeOrDefault returns the mode if valid, otherwise ModeStyled.
func modeOrDefault(mode Mode) Mode {
	switch mode {
	case ModeStyled, ModeUnstyled:
		return mode
	default:
		return ModeStyled
	}
}

// newGoldmarkInstance creates a configured goldmark.Markdown instance.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(mode Mode) goldmark.Markdown {
	exts := []goldmark.Extender{
		extension.Table,
		extension.Strikethrough,
		extension.TaskList,
		extensions.Highlight,
		extensions.Underline,
		extensions.Alerts,
	}

	var parserOpts []parser.Option

	if mode == ModeStyled {
		exts = append(exts,
			extension.Linkify,
			mathjax.MathJax,
		)
		parserOpts = append(parserOpts, parser.WithAutoHeadingID())
	}

	return goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(parserOpts...),
	)
}
