package extensions

import (
	"fmt"
	"unicode"

	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
)

// prefixedIDs generates heading id attributes with a fixed prefix, matching
// the header-ids behavior of the Indico flavor. Collisions get a numeric
// suffix. Not safe for concurrent use; a fresh instance is created per parse.
type prefixedIDs struct {
	prefix string
	used   map[string]bool
}

// NewPrefixedIDs returns a parser.IDs implementation that prefixes every
// generated heading id with the given string.
func NewPrefixedIDs(prefix string) parser.IDs {
	return &prefixedIDs{
		prefix: prefix,
		used:   map[string]bool{},
	}
}

func (p *prefixedIDs) Generate(value []byte, _ gast.NodeKind) []byte {
	slug := Slugify(value)
	if slug == "" {
		slug = "heading"
	}

	id := p.prefix + slug
	if !p.used[id] {
		p.used[id] = true
		return []byte(id)
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", id, i)
		if !p.used[candidate] {
			p.used[candidate] = true
			return []byte(candidate)
		}
	}
}

func (p *prefixedIDs) Put(value []byte) {
	p.used[string(value)] = true
}

// Slugify lowercases heading text and maps runs of non-alphanumeric
// characters to single dashes.
func Slugify(value []byte) string {
	var out []rune
	dash := false
	for _, r := range string(value) {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			if dash && len(out) > 0 {
				out = append(out, '-')
			}
			dash = false
			out = append(out, unicode.ToLower(r))
		default:
			dash = true
		}
	}
	return string(out)
}
