package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTemplateMinimal(t *testing.T) {
	t.Parallel()

	content, err := GenerateTemplate(TemplateOptions{})
	require.NoError(t, err)

	cfg, err := FromYAML(content)
	require.NoError(t, err, "minimal template must parse")

	assert.Equal(t, ModeStyled, cfg.Mode)
	assert.Empty(t, cfg.Rules)
}

func TestGenerateTemplateFull(t *testing.T) {
	t.Parallel()

	content, err := GenerateTemplate(TemplateOptions{Full: true})
	require.NoError(t, err)

	cfg, err := FromYAML(content)
	require.NoError(t, err, "full template must parse and validate")

	assert.Equal(t, ModeStyled, cfg.Mode)
	assert.False(t, cfg.HardBreaks)
	assert.Len(t, cfg.Rules, 2)
	assert.Contains(t, cfg.Ignore, "vendor/**")
}
