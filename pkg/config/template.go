package config

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes every option with documentation comments.
	Full bool
}

const minimalTemplate = `# mdrender configuration
mode: styled

# Autolink rules turn matching text into links. {n} in the template expands
# to the nth capture group of the pattern; {0} is the whole match.
# rules:
#   - pattern: '#(\d+)'
#     template: 'https://example.com/issues/{1}'
`

const fullTemplate = `# mdrender configuration

# Renderer mode: "styled" (full HTML) or "unstyled" (<p> and <br /> only).
mode: styled

# Render single newlines as <br /> tags.
hard_breaks: false

# Add title and target="_blank" attributes to autolinked URLs.
target_blank: false

# Glob patterns for files to skip during directory discovery.
ignore:
  - vendor/**
  - node_modules/**

# Autolink rules, applied in order. {n} in the template expands to the nth
# capture group of the pattern; {0} is the whole match.
rules:
  - pattern: '#(\d+)'
    template: 'https://example.com/issues/{1}'
  - pattern: '\bCVE-\d{4}-\d+\b'
    template: 'https://nvd.nist.gov/vuln/detail/{0}'
`

// GenerateTemplate produces a starter configuration file.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Full {
		return []byte(fullTemplate), nil
	}
	return []byte(minimalTemplate), nil
}
