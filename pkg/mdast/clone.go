package mdast

// Clone returns a deep copy of the subtree rooted at n. Attribute structs are
// copied; literal byte slices are shared, since no tree operation mutates
// literal content in place (text rewrites replace whole nodes instead).
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}

	cp := &Node{Kind: n.Kind}

	if n.Block != nil {
		block := *n.Block
		if n.Block.List != nil {
			list := *n.Block.List
			block.List = &list
		}
		if n.Block.CodeBlock != nil {
			code := *n.Block.CodeBlock
			block.CodeBlock = &code
		}
		if n.Block.Table != nil {
			table := *n.Block.Table
			table.Alignments = append([]Alignment(nil), n.Block.Table.Alignments...)
			block.Table = &table
		}
		if n.Block.Cell != nil {
			cell := *n.Block.Cell
			block.Cell = &cell
		}
		cp.Block = &block
	}

	if n.Inline != nil {
		inline := *n.Inline
		if n.Inline.Link != nil {
			link := *n.Inline.Link
			inline.Link = &link
		}
		cp.Inline = &inline
	}

	for child := n.FirstChild; child != nil; child = child.Next {
		AppendChild(cp, Clone(child))
	}

	return cp
}
