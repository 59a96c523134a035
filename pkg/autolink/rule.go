// Package autolink turns plain text that matches user-supplied patterns into
// links. Rules are compiled once and applied to parsed documents; matching
// never touches code spans, existing links, or raw HTML anchors.
package autolink

import (
	"fmt"
	"regexp"
	"strconv"
)

// Rule pairs a regular expression with a URL template. Every non-overlapping
// match of Pattern in renderable text becomes a link whose destination is
// Template with {n} placeholders replaced by the match's capture groups.
// {0} expands to the whole match.
type Rule struct {
	Pattern  string `yaml:"pattern"`
	Template string `yaml:"template"`
}

// InvalidPatternError reports a rule whose pattern failed to compile.
type InvalidPatternError struct {
	// Index is the position of the offending rule in the input slice.
	Index int

	// Pattern is the pattern that failed to compile.
	Pattern string

	// Err is the underlying regexp compile error.
	Err error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("autolink rule %d: invalid pattern %q: %v", e.Index, e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// segment is one piece of a parsed template: either a literal string or a
// reference to a capture group.
type segment struct {
	literal string
	group   int
	isRef   bool
}

// compiledRule is a rule ready for matching.
type compiledRule struct {
	re       *regexp.Regexp
	segments []segment
}

// RuleSet holds compiled rules in priority order. Earlier rules win ties when
// two matches start at the same offset. A RuleSet is immutable and safe for
// concurrent use.
type RuleSet struct {
	rules    []compiledRule
	warnings []string
}

// Compile validates and compiles a slice of rules. The first rule with an
// invalid pattern aborts compilation with an *InvalidPatternError. Template
// placeholders that reference capture groups the pattern does not have are
// tolerated (they expand to the empty string) but recorded as warnings.
func Compile(rules []Rule) (*RuleSet, error) {
	rs := &RuleSet{rules: make([]compiledRule, 0, len(rules))}

	for i, rule := range rules {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, &InvalidPatternError{Index: i, Pattern: rule.Pattern, Err: err}
		}

		segments := parseTemplate(rule.Template)
		for _, seg := range segments {
			if seg.isRef && seg.group > re.NumSubexp() {
				rs.warnings = append(rs.warnings, fmt.Sprintf(
					"rule %d: template references group {%d} but pattern %q has only %d group(s)",
					i, seg.group, rule.Pattern, re.NumSubexp()))
			}
		}

		rs.rules = append(rs.rules, compiledRule{re: re, segments: segments})
	}

	return rs, nil
}

// Len returns the number of compiled rules.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Warnings returns human-readable notes about suspicious but non-fatal rule
// definitions, such as template references to missing capture groups.
func (rs *RuleSet) Warnings() []string {
	return rs.warnings
}

// parseTemplate splits a template into literal and {n} reference segments.
// Braces that do not wrap a decimal number are kept as literal text.
func parseTemplate(template string) []segment {
	var segments []segment
	literalStart := 0

	for i := 0; i < len(template); {
		if template[i] != '{' {
			i++
			continue
		}

		j := i + 1
		for j < len(template) && template[j] >= '0' && template[j] <= '9' {
			j++
		}
		if j == i+1 || j >= len(template) || template[j] != '}' {
			i++
			continue
		}

		group, err := strconv.Atoi(template[i+1 : j])
		if err != nil {
			i++
			continue
		}

		if i > literalStart {
			segments = append(segments, segment{literal: template[literalStart:i]})
		}
		segments = append(segments, segment{group: group, isRef: true})
		i = j + 1
		literalStart = i
	}

	if literalStart < len(template) {
		segments = append(segments, segment{literal: template[literalStart:]})
	}

	return segments
}

// expand renders the template against a FindSubmatchIndex result. Groups that
// did not participate in the match, or that the pattern does not define,
// expand to the empty string.
func (r *compiledRule) expand(source []byte, match []int) string {
	var out []byte
	for _, seg := range r.segments {
		if !seg.isRef {
			out = append(out, seg.literal...)
			continue
		}

		lo := 2 * seg.group
		if lo+1 >= len(match) || match[lo] < 0 {
			continue
		}
		out = append(out, source[match[lo]:match[lo+1]]...)
	}
	return string(out)
}
