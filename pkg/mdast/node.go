// Package mdast defines the typed Markdown document tree consumed by the
// renderers and rewritten by the autolinker. Trees are produced by
// pkg/parser/goldmark and are strict forests: no back-references other than
// Parent, no sharing between documents.
package mdast

// NodeKind classifies the type of an AST node.
type NodeKind uint16

// Node kinds for block-level and inline-level Markdown elements.
const (
	NodeDocument NodeKind = iota

	// Block-level nodes.
	NodeParagraph
	NodeTextBlock
	NodeHeading
	NodeList
	NodeListItem
	NodeBlockquote
	NodeCodeBlock
	NodeThematicBreak
	NodeHTMLBlock
	NodeTable
	NodeTableHeader
	NodeTableRow
	NodeTableCell
	NodeMathBlock

	// Inline-level nodes.
	NodeText
	NodeEmphasis
	NodeStrong
	NodeStrikethrough
	NodeHighlight
	NodeUnderline
	NodeCodeSpan
	NodeLink
	NodeImage
	NodeSoftBreak
	NodeHardBreak
	NodeHTMLInline
	NodeMathInline
	NodeTaskCheckbox
)

// String returns a human-readable name for the node kind.
func (k NodeKind) String() string {
	names := [...]string{
		"Document",
		"Paragraph",
		"TextBlock",
		"Heading",
		"List",
		"ListItem",
		"Blockquote",
		"CodeBlock",
		"ThematicBreak",
		"HTMLBlock",
		"Table",
		"TableHeader",
		"TableRow",
		"TableCell",
		"MathBlock",
		"Text",
		"Emphasis",
		"Strong",
		"Strikethrough",
		"Highlight",
		"Underline",
		"CodeSpan",
		"Link",
		"Image",
		"SoftBreak",
		"HardBreak",
		"HTMLInline",
		"MathInline",
		"TaskCheckbox",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Node represents a single node in the Markdown document tree.
// Nodes form a tree structure with parent/child/sibling relationships.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Block holds attributes for block-level nodes.
	Block *BlockAttrs

	// Inline holds attributes for inline-level nodes.
	Inline *InlineAttrs
}

// IsBlock returns true if this is a block-level node.
func (n *Node) IsBlock() bool {
	switch n.Kind {
	case NodeDocument, NodeParagraph, NodeTextBlock, NodeHeading, NodeList,
		NodeListItem, NodeBlockquote, NodeCodeBlock, NodeThematicBreak,
		NodeHTMLBlock, NodeTable, NodeTableHeader, NodeTableRow,
		NodeTableCell, NodeMathBlock:
		return true
	default:
		return false
	}
}

// IsInline returns true if this is an inline-level node.
func (n *Node) IsInline() bool {
	switch n.Kind {
	case NodeText, NodeEmphasis, NodeStrong, NodeStrikethrough, NodeHighlight,
		NodeUnderline, NodeCodeSpan, NodeLink, NodeImage, NodeSoftBreak,
		NodeHardBreak, NodeHTMLInline, NodeMathInline, NodeTaskCheckbox:
		return true
	default:
		return false
	}
}

// IsLeaf returns true for node kinds that never own children.
// Leaf content lives in the node's attributes, not in child nodes.
func (n *Node) IsLeaf() bool {
	switch n.Kind {
	case NodeText, NodeCodeSpan, NodeSoftBreak, NodeHardBreak, NodeHTMLInline,
		NodeMathInline, NodeTaskCheckbox, NodeCodeBlock, NodeThematicBreak,
		NodeHTMLBlock, NodeMathBlock:
		return true
	default:
		return false
	}
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// Text returns the literal text content of a Text, CodeSpan, MathInline, or
// HTMLInline node, or nil for other kinds.
func (n *Node) Text() []byte {
	if n.Inline == nil {
		return nil
	}
	return n.Inline.Text
}
