package extensions

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// AlertAttributeName is the blockquote attribute set by the alert transformer.
// Its value is the lowercased alert kind ("note", "tip", "important",
// "warning", "caution").
const AlertAttributeName = "alert"

var alertMarkerPattern = regexp.MustCompile(`^\[!([A-Za-z]+)\][ \t]*$`)

var alertKinds = map[string]bool{
	"note":      true,
	"tip":       true,
	"important": true,
	"warning":   true,
	"caution":   true,
}

type alertTransformer struct{}

var defaultAlertTransformer = &alertTransformer{}

// NewAlertTransformer returns an ASTTransformer that tags blockquotes whose
// first line is an alert marker such as [!NOTE], removing the marker from the
// tree and recording the kind as a blockquote attribute.
func NewAlertTransformer() parser.ASTTransformer {
	return defaultAlertTransformer
}

func (t *alertTransformer) Transform(doc *gast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()

	//nolint:errcheck // the walk callback never returns an error
	gast.Walk(doc, func(n gast.Node, entering bool) (gast.WalkStatus, error) {
		if !entering {
			return gast.WalkContinue, nil
		}

		quote, ok := n.(*gast.Blockquote)
		if !ok {
			return gast.WalkContinue, nil
		}

		para, ok := quote.FirstChild().(*gast.Paragraph)
		if !ok {
			return gast.WalkContinue, nil
		}

		// The marker has to be matched against the raw first line: the
		// inline parser splits "[!NOTE]" into several text nodes, so no
		// single child carries the whole marker.
		lines := para.Lines()
		if lines.Len() == 0 {
			return gast.WalkContinue, nil
		}
		firstLine := lines.At(0)

		m := alertMarkerPattern.FindSubmatch(bytes.TrimRight(firstLine.Value(source), " \t\r\n"))
		if m == nil {
			return gast.WalkContinue, nil
		}

		kind := strings.ToLower(string(m[1]))
		if !alertKinds[kind] {
			return gast.WalkContinue, nil
		}

		quote.SetAttributeString(AlertAttributeName, []byte(kind))

		// Drop every inline that sits on the marker line. The line break
		// after the marker is a flag on its last text node, so removing
		// the nodes removes the break as well.
		for child := para.FirstChild(); child != nil; {
			next := child.NextSibling()
			textNode, ok := child.(*gast.Text)
			if !ok || textNode.Segment.Start >= firstLine.Stop {
				break
			}
			para.RemoveChild(para, child)
			child = next
		}
		if para.ChildCount() == 0 {
			quote.RemoveChild(quote, para)
		}

		return gast.WalkSkipChildren, nil
	})
}

type alerts struct{}

// Alerts is an extension that recognizes GitHub-style blockquote alerts.
var Alerts goldmark.Extender = &alerts{}

func (e *alerts) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(NewAlertTransformer(), 500),
	))
}
