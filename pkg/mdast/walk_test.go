package mdast_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/mdrender/pkg/mdast"
)

func buildTestTree() *mdast.Node {
	// Document
	//   Heading
	//     Text
	//   Paragraph
	//     Text
	//     Emphasis
	//       Text

	doc := mdast.NewDocument()

	heading := mdast.NewNode(mdast.NodeHeading)
	mdast.AppendChild(heading, mdast.NewText([]byte("title")))
	mdast.AppendChild(doc, heading)

	para := mdast.NewNode(mdast.NodeParagraph)
	mdast.AppendChild(para, mdast.NewText([]byte("plain ")))

	emphasis := mdast.NewNode(mdast.NodeEmphasis)
	mdast.AppendChild(emphasis, mdast.NewText([]byte("emphasized")))
	mdast.AppendChild(para, emphasis)

	mdast.AppendChild(doc, para)

	return doc
}

func TestWalk_PreOrder(t *testing.T) {
	t.Parallel()

	doc := buildTestTree()

	var visited []mdast.NodeKind
	err := mdast.Walk(doc, func(n *mdast.Node) error {
		visited = append(visited, n.Kind)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk returned error: %v", err)
	}

	expected := []mdast.NodeKind{
		mdast.NodeDocument,
		mdast.NodeHeading,
		mdast.NodeText,
		mdast.NodeParagraph,
		mdast.NodeText,
		mdast.NodeEmphasis,
		mdast.NodeText,
	}

	if len(visited) != len(expected) {
		t.Fatalf("expected %d nodes, got %d", len(expected), len(visited))
	}
	for i, kind := range expected {
		if visited[i] != kind {
			t.Errorf("node %d: expected %s, got %s", i, kind, visited[i])
		}
	}
}

func TestWalk_EarlyTermination(t *testing.T) {
	t.Parallel()

	doc := buildTestTree()
	stop := errors.New("stop here")

	count := 0
	err := mdast.Walk(doc, func(n *mdast.Node) error {
		count++
		if n.Kind == mdast.NodeParagraph {
			return stop
		}
		return nil
	})

	if !errors.Is(err, stop) {
		t.Fatalf("expected stop error, got %v", err)
	}
	if count != 4 {
		t.Errorf("expected 4 visits before stop, got %d", count)
	}
}

func TestWalkSkippable_PrunesSubtree(t *testing.T) {
	t.Parallel()

	doc := buildTestTree()

	var visited []mdast.NodeKind
	mdast.WalkSkippable(doc, func(n *mdast.Node) mdast.WalkStatus {
		visited = append(visited, n.Kind)
		if n.Kind == mdast.NodeEmphasis {
			return mdast.WalkSkipChildren
		}
		return mdast.WalkContinue
	})

	// Emphasis is visited but its Text child is skipped, leaving the
	// heading text and the plain paragraph text.
	count := 0
	for _, kind := range visited {
		if kind == mdast.NodeText {
			count++
		}
	}
	if count != 2 {
		t.Errorf("expected 2 text nodes visited, got %d", count)
	}
}

func TestHasAncestor(t *testing.T) {
	t.Parallel()

	link := mdast.NewLink("https://example.com")
	strong := mdast.NewNode(mdast.NodeStrong)
	text := mdast.NewText([]byte("x"))
	mdast.AppendChild(strong, text)
	mdast.AppendChild(link, strong)

	if !mdast.HasAncestor(text, mdast.NodeLink) {
		t.Error("expected link ancestor")
	}
	if mdast.HasAncestor(text, mdast.NodeImage) {
		t.Error("unexpected image ancestor")
	}
}

func TestFindByKind(t *testing.T) {
	t.Parallel()

	doc := buildTestTree()

	texts := mdast.FindByKind(doc, mdast.NodeText)
	if len(texts) != 3 {
		t.Errorf("expected 3 text nodes, got %d", len(texts))
	}
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	para := mdast.NewNode(mdast.NodeParagraph)
	mdast.AppendChild(para, mdast.NewText([]byte("a ")))

	code := mdast.NewNode(mdast.NodeCodeSpan)
	code.Inline = mdast.NewInlineAttrs().WithText([]byte("b"))
	mdast.AppendChild(para, code)

	raw := mdast.NewNode(mdast.NodeHTMLInline)
	raw.Inline = mdast.NewInlineAttrs().WithText([]byte("<span>"))
	mdast.AppendChild(para, raw)

	if got := string(mdast.PlainText(para)); got != "a b" {
		t.Errorf("PlainText() = %q, want %q", got, "a b")
	}
}
