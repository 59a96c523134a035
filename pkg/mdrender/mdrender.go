// Package mdrender is the high-level entry point: Markdown in, HTML out.
// It ties together the parser, the autolink engine, and the two renderers.
// All functions are safe for concurrent use.
package mdrender

import (
	"github.com/yaklabco/mdrender/pkg/autolink"
	"github.com/yaklabco/mdrender/pkg/parser/goldmark"
	"github.com/yaklabco/mdrender/pkg/render"
)

// Options re-exports the renderer options for callers that only import this
// package.
type Options = render.Options

// Rule re-exports the autolink rule type for callers that only import this
// package.
type Rule = autolink.Rule

// ToHTML renders Markdown source to styled HTML. Autolink rules are compiled
// on every call; use Compile plus ToHTMLWithRules when rendering many
// documents against the same rule set. The only error condition is an invalid
// rule pattern.
func ToHTML(source []byte, rules []Rule, opts Options) (string, error) {
	ruleSet, err := autolink.Compile(rules)
	if err != nil {
		return "", err
	}
	return ToHTMLWithRules(source, ruleSet, opts), nil
}

// ToHTMLWithRules renders Markdown source to styled HTML using a precompiled
// rule set. A nil rule set renders without autolinking.
func ToHTMLWithRules(source []byte, rules *autolink.RuleSet, opts Options) string {
	if len(source) == 0 {
		return ""
	}

	doc := goldmark.Styled().Parse(source)
	doc = autolink.Apply(doc, rules)
	return render.NewStyled(opts).Render(doc)
}

// ToUnstyledHTML renders Markdown source to the unstyled form, in which only
// paragraph and line-break tags survive. Autolink rules never apply here.
func ToUnstyledHTML(source []byte, opts Options) string {
	if len(source) == 0 {
		return ""
	}

	doc := goldmark.Unstyled().Parse(source)
	return render.NewUnstyled(opts).Render(doc)
}

// Compile validates autolink rules ahead of time. See autolink.Compile.
func Compile(rules []Rule) (*autolink.RuleSet, error) {
	return autolink.Compile(rules)
}
