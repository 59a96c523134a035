// Package render turns mdast documents into HTML. Two renderers exist: the
// styled renderer emits the full HTML vocabulary, the unstyled renderer
// flattens everything down to paragraphs, line breaks, and plain text.
package render

// Options control renderer output. The zero value is the default behavior.
type Options struct {
	// HardBreaks renders soft line breaks (single newlines in the source)
	// as <br /> tags instead of newlines.
	HardBreaks bool

	// TargetBlank decorates links produced by autolink rules with
	// target="_blank" and a title carrying the matched text.
	TargetBlank bool
}
