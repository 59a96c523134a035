package autolink

import (
	"bytes"
	"regexp"
	"sort"

	"github.com/yaklabco/mdrender/pkg/mdast"
)

var (
	anchorOpenPattern  = regexp.MustCompile(`(?i)<a(\s[^>]*)?/?>`)
	anchorClosePattern = regexp.MustCompile(`(?i)</a\s*>`)
)

// Apply returns a copy of doc in which every plain-text match of the rule set
// has been replaced by a link node. The input document is never modified.
// Text inside existing links, images, and raw HTML anchors is left alone, as
// are code spans and code blocks, which never contain NodeText.
//
// With no rules the document is still cloned, so callers may always mutate
// the result freely.
func Apply(doc *mdast.Node, rs *RuleSet) *mdast.Node {
	clone := mdast.Clone(doc)
	if rs == nil || len(rs.rules) == 0 {
		return clone
	}

	for _, textNode := range collectLinkableText(clone) {
		linkMatches(textNode, rs)
	}
	return clone
}

// collectLinkableText gathers the text nodes eligible for autolinking, in
// document order. Raw HTML anchors are tracked across inline HTML nodes so
// that text sitting between a literal <a> and </a> is skipped.
func collectLinkableText(doc *mdast.Node) []*mdast.Node {
	var texts []*mdast.Node
	anchorDepth := 0

	mdast.WalkSkippable(doc, func(n *mdast.Node) mdast.WalkStatus {
		switch n.Kind {
		case mdast.NodeLink, mdast.NodeImage:
			return mdast.WalkSkipChildren

		case mdast.NodeHTMLInline, mdast.NodeHTMLBlock:
			var literal []byte
			if n.Kind == mdast.NodeHTMLBlock {
				literal = n.Block.Literal
			} else {
				literal = n.Inline.Text
			}
			// Self-closing <a/> tags open nothing and must not
			// suppress linking of the text that follows them.
			for _, tag := range anchorOpenPattern.FindAll(literal, -1) {
				if !bytes.HasSuffix(tag, []byte("/>")) {
					anchorDepth++
				}
			}
			anchorDepth -= len(anchorClosePattern.FindAllIndex(literal, -1))
			if anchorDepth < 0 {
				anchorDepth = 0
			}

		case mdast.NodeText:
			if anchorDepth == 0 {
				texts = append(texts, n)
			}
		}
		return mdast.WalkContinue
	})

	return texts
}

// candidate is a single accepted or rejected pattern match within one text node.
type candidate struct {
	start    int
	end      int
	priority int
	dest     string
}

// linkMatches replaces rule matches inside a single text node with link nodes,
// splitting the surrounding text into new text nodes.
func linkMatches(textNode *mdast.Node, rs *RuleSet) {
	source := textNode.Inline.Text
	accepted := resolveMatches(source, rs)
	if len(accepted) == 0 {
		return
	}

	cursor := 0
	for _, c := range accepted {
		if c.start > cursor {
			mdast.InsertBefore(textNode, mdast.NewText(source[cursor:c.start]))
		}

		link := mdast.NewLink(c.dest)
		link.Inline.Link.Auto = true
		mdast.AppendChild(link, mdast.NewText(source[c.start:c.end]))
		mdast.InsertBefore(textNode, link)

		cursor = c.end
	}
	if cursor < len(source) {
		mdast.InsertBefore(textNode, mdast.NewText(source[cursor:]))
	}

	mdast.RemoveChild(textNode.Parent, textNode)
}

// resolveMatches finds every rule match in source and reduces them to a
// non-overlapping set. Matches are preferred by start offset, then by rule
// order, then by length, longest first.
func resolveMatches(source []byte, rs *RuleSet) []candidate {
	var all []candidate
	for priority, rule := range rs.rules {
		for _, m := range rule.re.FindAllSubmatchIndex(source, -1) {
			if m[0] == m[1] {
				continue
			}
			all = append(all, candidate{
				start:    m[0],
				end:      m[1],
				priority: priority,
				dest:     rule.expand(source, m),
			})
		}
	}
	if len(all) == 0 {
		return nil
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].start != all[j].start {
			return all[i].start < all[j].start
		}
		if all[i].priority != all[j].priority {
			return all[i].priority < all[j].priority
		}
		return all[i].end > all[j].end
	})

	accepted := all[:0]
	lastEnd := 0
	for _, c := range all {
		if c.start < lastEnd {
			continue
		}
		accepted = append(accepted, c)
		lastEnd = c.end
	}
	return accepted
}
