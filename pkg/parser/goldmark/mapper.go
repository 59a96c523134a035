package goldmark

import (
	"strings"

	mathjax "github.com/litao91/goldmark-mathjax"
	gast "github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/yaklabco/mdrender/pkg/mdast"
	"github.com/yaklabco/mdrender/pkg/parser/extensions"
)

// mapper converts a goldmark AST into an mdast.Node tree.
type mapper struct {
	source []byte
}

// newMapper creates a new mapper for the given source.
func newMapper(source []byte) *mapper {
	return &mapper{source: source}
}

// mapDocument converts a goldmark document node to an mdast.Node tree.
func (m *mapper) mapDocument(gmDoc gast.Node) *mdast.Node {
	doc := mdast.NewDocument()
	m.mapChildren(gmDoc, doc)
	return doc
}

// mapChildren maps all children of a goldmark node onto parent. Text nodes
// are handled separately because goldmark folds line breaks into a flag on
// the preceding text node, which expands to two mdast nodes. Unrecognized
// node kinds are flattened into their children.
func (m *mapper) mapChildren(gmParent gast.Node, parent *mdast.Node) {
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		if textNode, ok := child.(*gast.Text); ok {
			m.appendText(parent, textNode)
			continue
		}
		if node := m.mapNode(child); node != nil {
			mdast.AppendChild(parent, node)
		} else {
			m.mapChildren(child, parent)
		}
	}
}

// appendText appends the mdast expansion of a goldmark Text node: the literal
// content, followed by a break node when the text carries a line-break flag.
func (m *mapper) appendText(parent *mdast.Node, textNode *gast.Text) {
	if value := textNode.Segment.Value(m.source); len(value) > 0 {
		mdast.AppendChild(parent, mdast.NewText(value))
	}

	switch {
	case textNode.HardLineBreak():
		mdast.AppendChild(parent, mdast.NewNode(mdast.NodeHardBreak))
	case textNode.SoftLineBreak():
		mdast.AppendChild(parent, mdast.NewNode(mdast.NodeSoftBreak))
	}
}

// mapNode converts a single goldmark node to an mdast.Node.
// Returns nil for unrecognized kinds, which callers flatten.
func (m *mapper) mapNode(gmNode gast.Node) *mdast.Node {
	switch gmn := gmNode.(type) {
	// Block-level nodes.
	case *gast.Document:
		return m.mapDocument(gmNode)

	case *gast.Heading:
		return m.mapHeading(gmn)

	case *gast.Paragraph:
		node := mdast.NewNode(mdast.NodeParagraph)
		m.mapChildren(gmNode, node)
		return node

	case *gast.TextBlock:
		node := mdast.NewNode(mdast.NodeTextBlock)
		m.mapChildren(gmNode, node)
		return node

	case *gast.List:
		return m.mapList(gmn)

	case *gast.ListItem:
		node := mdast.NewNode(mdast.NodeListItem)
		m.mapChildren(gmNode, node)
		return node

	case *gast.Blockquote:
		return m.mapBlockquote(gmn)

	case *gast.FencedCodeBlock:
		return m.mapFencedCodeBlock(gmn)

	case *gast.CodeBlock:
		return m.mapIndentedCodeBlock(gmn)

	case *gast.ThematicBreak:
		return mdast.NewNode(mdast.NodeThematicBreak)

	case *gast.HTMLBlock:
		return m.mapHTMLBlock(gmn)

	// Inline-level nodes.
	case *gast.String:
		return mdast.NewText(gmn.Value)

	case *gast.Emphasis:
		return m.mapEmphasis(gmn)

	case *gast.CodeSpan:
		return m.mapCodeSpan(gmn)

	case *gast.Link:
		return m.mapLink(gmn)

	case *gast.Image:
		return m.mapImage(gmn)

	case *gast.AutoLink:
		return m.mapAutoLink(gmn)

	case *gast.RawHTML:
		return m.mapRawHTML(gmn)

	// Flavor extension nodes.
	case *east.Strikethrough:
		node := mdast.NewNode(mdast.NodeStrikethrough)
		m.mapChildren(gmNode, node)
		return node

	case *extensions.HighlightNode:
		node := mdast.NewNode(mdast.NodeHighlight)
		m.mapChildren(gmNode, node)
		return node

	case *extensions.UnderlineNode:
		node := mdast.NewNode(mdast.NodeUnderline)
		m.mapChildren(gmNode, node)
		return node

	case *east.TaskCheckBox:
		node := mdast.NewNode(mdast.NodeTaskCheckbox)
		node.Inline = mdast.NewInlineAttrs()
		node.Inline.Checked = gmn.IsChecked
		return node

	case *east.Table:
		return m.mapTable(gmn)

	case *east.TableHeader:
		return m.mapTableRow(gmNode, true)

	case *east.TableRow:
		return m.mapTableRow(gmNode, false)

	case *east.TableCell:
		return m.mapTableCell(gmn, false)

	case *mathjax.InlineMath:
		node := mdast.NewNode(mdast.NodeMathInline)
		node.Inline = mdast.NewInlineAttrs().WithText(m.childText(gmNode))
		return node

	case *mathjax.MathBlock:
		node := mdast.NewNode(mdast.NodeMathBlock)
		node.Block = mdast.NewBlockAttrs()
		node.Block.Literal = m.linesValue(gmNode)
		return node

	default:
		return nil
	}
}

// mapHeading converts a goldmark Heading, capturing the generated id.
func (m *mapper) mapHeading(h *gast.Heading) *mdast.Node {
	node := mdast.NewNode(mdast.NodeHeading)
	node.Block = mdast.NewBlockAttrs().WithHeadingLevel(h.Level)

	if id, ok := h.AttributeString("id"); ok {
		if idBytes, ok := id.([]byte); ok {
			node.Block.HeadingID = string(idBytes)
			node.Block.HeadingSlug = strings.TrimPrefix(node.Block.HeadingID, HeadingIDPrefix)
		}
	}

	m.mapChildren(h, node)
	return node
}

// mapList converts a goldmark List to an mdast node.
func (m *mapper) mapList(list *gast.List) *mdast.Node {
	node := mdast.NewNode(mdast.NodeList)
	node.Block = mdast.NewBlockAttrs().WithList(&mdast.ListAttrs{
		Ordered:     list.IsOrdered(),
		Marker:      list.Marker,
		StartNumber: list.Start,
		Tight:       list.IsTight,
	})
	m.mapChildren(list, node)
	return node
}

// mapBlockquote converts a goldmark Blockquote, honoring the alert attribute
// set by the alerts transformer.
func (m *mapper) mapBlockquote(quote *gast.Blockquote) *mdast.Node {
	node := mdast.NewNode(mdast.NodeBlockquote)
	node.Block = mdast.NewBlockAttrs()

	if kind, ok := quote.AttributeString(extensions.AlertAttributeName); ok {
		if kindBytes, ok := kind.([]byte); ok {
			node.Block.Alert = mdast.AlertKind(kindBytes)
		}
	}

	m.mapChildren(quote, node)
	return node
}

// mapFencedCodeBlock converts a goldmark FencedCodeBlock to an mdast node.
func (m *mapper) mapFencedCodeBlock(codeBlock *gast.FencedCodeBlock) *mdast.Node {
	info := ""
	if codeBlock.Info != nil {
		info = string(codeBlock.Info.Value(m.source))
	}

	node := mdast.NewNode(mdast.NodeCodeBlock)
	node.Block = mdast.NewBlockAttrs().WithCodeBlock(&mdast.CodeBlockAttrs{
		Info:    info,
		Literal: m.linesValue(codeBlock),
	})
	return node
}

// mapIndentedCodeBlock converts a goldmark indented CodeBlock to an mdast node.
func (m *mapper) mapIndentedCodeBlock(codeBlock *gast.CodeBlock) *mdast.Node {
	node := mdast.NewNode(mdast.NodeCodeBlock)
	node.Block = mdast.NewBlockAttrs().WithCodeBlock(&mdast.CodeBlockAttrs{
		Literal: m.linesValue(codeBlock),
	})
	return node
}

// mapHTMLBlock converts a goldmark HTMLBlock, including any closure line.
func (m *mapper) mapHTMLBlock(block *gast.HTMLBlock) *mdast.Node {
	literal := m.linesValue(block)
	if block.HasClosure() {
		literal = append(literal, block.ClosureLine.Value(m.source)...)
	}

	node := mdast.NewNode(mdast.NodeHTMLBlock)
	node.Block = mdast.NewBlockAttrs()
	node.Block.Literal = literal
	return node
}

// mapEmphasis converts a goldmark Emphasis node to an mdast node.
func (m *mapper) mapEmphasis(emphasis *gast.Emphasis) *mdast.Node {
	kind := mdast.NodeEmphasis
	if emphasis.Level == 2 {
		kind = mdast.NodeStrong
	}

	node := mdast.NewNode(kind)
	m.mapChildren(emphasis, node)
	return node
}

// mapCodeSpan converts a goldmark CodeSpan to an mdast node.
func (m *mapper) mapCodeSpan(codeSpan *gast.CodeSpan) *mdast.Node {
	node := mdast.NewNode(mdast.NodeCodeSpan)
	node.Inline = mdast.NewInlineAttrs().WithText(m.childText(codeSpan))
	return node
}

// mapLink converts a goldmark Link to an mdast node.
func (m *mapper) mapLink(link *gast.Link) *mdast.Node {
	node := mdast.NewNode(mdast.NodeLink)
	node.Inline = mdast.NewInlineAttrs().WithLink(&mdast.LinkAttrs{
		Destination: string(link.Destination),
		Title:       string(link.Title),
	})
	m.mapChildren(link, node)
	return node
}

// mapImage converts a goldmark Image to an mdast node.
// The image's children carry the alt text.
func (m *mapper) mapImage(img *gast.Image) *mdast.Node {
	node := mdast.NewNode(mdast.NodeImage)
	node.Inline = mdast.NewInlineAttrs().WithLink(&mdast.LinkAttrs{
		Destination: string(img.Destination),
		Title:       string(img.Title),
	})
	m.mapChildren(img, node)
	return node
}

// mapAutoLink converts a goldmark AutoLink (bare URL or email) to a link node.
func (m *mapper) mapAutoLink(autoLink *gast.AutoLink) *mdast.Node {
	node := mdast.NewLink(string(autoLink.URL(m.source)))
	mdast.AppendChild(node, mdast.NewText(autoLink.Label(m.source)))
	return node
}

// mapRawHTML converts a goldmark RawHTML inline to an mdast node.
func (m *mapper) mapRawHTML(raw *gast.RawHTML) *mdast.Node {
	var literal []byte
	for i := range raw.Segments.Len() {
		seg := raw.Segments.At(i)
		literal = append(literal, seg.Value(m.source)...)
	}

	node := mdast.NewNode(mdast.NodeHTMLInline)
	node.Inline = mdast.NewInlineAttrs().WithText(literal)
	return node
}

// mapTable converts a GFM Table to an mdast node.
func (m *mapper) mapTable(table *east.Table) *mdast.Node {
	alignments := make([]mdast.Alignment, len(table.Alignments))
	for i, a := range table.Alignments {
		alignments[i] = mapAlignment(a)
	}

	node := mdast.NewNode(mdast.NodeTable)
	node.Block = mdast.NewBlockAttrs()
	node.Block.Table = &mdast.TableAttrs{Alignments: alignments}
	m.mapChildren(table, node)
	return node
}

// mapTableRow converts a GFM table row (or header row) to an mdast node.
func (m *mapper) mapTableRow(row gast.Node, header bool) *mdast.Node {
	kind := mdast.NodeTableRow
	if header {
		kind = mdast.NodeTableHeader
	}

	node := mdast.NewNode(kind)
	for child := row.FirstChild(); child != nil; child = child.NextSibling() {
		if cell, ok := child.(*east.TableCell); ok {
			mdast.AppendChild(node, m.mapTableCell(cell, header))
		}
	}
	return node
}

// mapTableCell converts a GFM TableCell to an mdast node.
func (m *mapper) mapTableCell(cell *east.TableCell, header bool) *mdast.Node {
	node := mdast.NewNode(mdast.NodeTableCell)
	node.Block = mdast.NewBlockAttrs()
	node.Block.Cell = &mdast.TableCellAttrs{
		Alignment: mapAlignment(cell.Alignment),
		Header:    header,
	}
	m.mapChildren(cell, node)
	return node
}

// mapAlignment converts a GFM alignment to the mdast representation.
func mapAlignment(a east.Alignment) mdast.Alignment {
	switch a {
	case east.AlignLeft:
		return mdast.AlignLeft
	case east.AlignCenter:
		return mdast.AlignCenter
	case east.AlignRight:
		return mdast.AlignRight
	default:
		return mdast.AlignNone
	}
}

// childText concatenates the text segments of a node's direct Text children.
// Used for leaf-like inlines (code spans, math) whose content goldmark stores
// as raw text children.
func (m *mapper) childText(gmNode gast.Node) []byte {
	var out []byte
	for child := gmNode.FirstChild(); child != nil; child = child.NextSibling() {
		if textNode, ok := child.(*gast.Text); ok {
			out = append(out, textNode.Segment.Value(m.source)...)
		}
	}
	return out
}

// linesValue concatenates the line segments of a block node.
func (m *mapper) linesValue(gmNode gast.Node) []byte {
	var out []byte
	lines := gmNode.Lines()
	for i := range lines.Len() {
		seg := lines.At(i)
		out = append(out, seg.Value(m.source)...)
	}
	return out
}
