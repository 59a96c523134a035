package render

import "bytes"

// filteredTags are the raw HTML tag names whose opening bracket gets escaped,
// following the GFM tagfilter extension. Matching is case-insensitive and
// applies to both opening and closing tags.
var filteredTags = [][]byte{
	[]byte("title"),
	[]byte("textarea"),
	[]byte("style"),
	[]byte("xmp"),
	[]byte("iframe"),
	[]byte("noembed"),
	[]byte("noframes"),
	[]byte("script"),
	[]byte("plaintext"),
}

// filterTags escapes the leading < of disallowed raw HTML tags so browsers
// render them as text. All other markup passes through untouched.
func filterTags(raw []byte) []byte {
	var out []byte
	last := 0

	for i := 0; i < len(raw); i++ {
		if raw[i] != '<' {
			continue
		}
		if !startsFilteredTag(raw[i+1:]) {
			continue
		}

		out = append(out, raw[last:i]...)
		out = append(out, "&lt;"...)
		last = i + 1
	}

	if out == nil {
		return raw
	}
	return append(out, raw[last:]...)
}

// startsFilteredTag reports whether rest begins a disallowed tag, optionally
// with a leading slash for closing tags.
func startsFilteredTag(rest []byte) bool {
	if len(rest) > 0 && rest[0] == '/' {
		rest = rest[1:]
	}

	for _, tag := range filteredTags {
		if len(rest) <= len(tag) {
			continue
		}
		if !bytes.EqualFold(rest[:len(tag)], tag) {
			continue
		}
		switch rest[len(tag)] {
		case ' ', '\t', '\n', '/', '>':
			return true
		}
	}
	return false
}
