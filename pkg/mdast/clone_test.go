package mdast_test

import (
	"testing"

	"github.com/yaklabco/mdrender/pkg/mdast"
)

func TestClone_DeepCopy(t *testing.T) {
	t.Parallel()

	doc := buildTestTree()
	cp := mdast.Clone(doc)

	// Same shape.
	var origKinds, cloneKinds []mdast.NodeKind
	collect := func(dst *[]mdast.NodeKind) mdast.WalkFunc {
		return func(n *mdast.Node) error {
			*dst = append(*dst, n.Kind)
			return nil
		}
	}
	if err := mdast.Walk(doc, collect(&origKinds)); err != nil {
		t.Fatal(err)
	}
	if err := mdast.Walk(cp, collect(&cloneKinds)); err != nil {
		t.Fatal(err)
	}
	if len(origKinds) != len(cloneKinds) {
		t.Fatalf("clone has %d nodes, original %d", len(cloneKinds), len(origKinds))
	}
	for i := range origKinds {
		if origKinds[i] != cloneKinds[i] {
			t.Errorf("node %d: clone kind %s, original %s", i, cloneKinds[i], origKinds[i])
		}
	}

	// Mutating the clone must not touch the original.
	mdast.AppendChild(cp, mdast.NewNode(mdast.NodeThematicBreak))
	if doc.ChildCount() == cp.ChildCount() {
		t.Error("appending to clone changed original")
	}
}

func TestClone_CopiesAttrs(t *testing.T) {
	t.Parallel()

	link := mdast.NewLink("https://example.com")
	link.Inline.Link.Title = "original"

	cp := mdast.Clone(link)
	cp.Inline.Link.Title = "changed"

	if link.Inline.Link.Title != "original" {
		t.Error("clone shares LinkAttrs with original")
	}
}

func TestClone_CopiesTableAlignments(t *testing.T) {
	t.Parallel()

	table := mdast.NewNode(mdast.NodeTable)
	table.Block = mdast.NewBlockAttrs()
	table.Block.Table = &mdast.TableAttrs{
		Alignments: []mdast.Alignment{mdast.AlignLeft, mdast.AlignRight},
	}

	cp := mdast.Clone(table)
	cp.Block.Table.Alignments[0] = mdast.AlignCenter

	if table.Block.Table.Alignments[0] != mdast.AlignLeft {
		t.Error("clone shares alignment slice with original")
	}
}

func TestClone_Nil(t *testing.T) {
	t.Parallel()

	if mdast.Clone(nil) != nil {
		t.Error("Clone(nil) should return nil")
	}
}
