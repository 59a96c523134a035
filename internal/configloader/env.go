package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/mdrender/pkg/config"
)

// envVarPrefix is the prefix for all mdrender environment variables.
const envVarPrefix = "MDRENDER_"

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with MDRENDER_ (e.g., MDRENDER_MODE).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if value := os.Getenv(envVarPrefix + "MODE"); value != "" {
		cfg.Mode = config.Mode(value)
	}

	if err := applyEnvBool("HARD_BREAKS", &cfg.HardBreaks); err != nil {
		return err
	}
	if err := applyEnvBool("TARGET_BLANK", &cfg.TargetBlank); err != nil {
		return err
	}

	if value := os.Getenv(envVarPrefix + "JOBS"); value != "" {
		jobs, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %sJOBS: %q", envVarPrefix, value)
		}
		cfg.Jobs = jobs
	}

	if value := os.Getenv(envVarPrefix + "IGNORE"); value != "" {
		cfg.Ignore = parseSliceValue(value)
	}

	return nil
}

// applyEnvBool parses a boolean environment variable into target.
func applyEnvBool(suffix string, target *bool) error {
	envVar := envVarPrefix + suffix
	value := os.Getenv(envVar)
	if value == "" {
		return nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
	}
	*target = parsed
	return nil
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"MDRENDER_MODE":         "Renderer mode: styled or unstyled",
		"MDRENDER_HARD_BREAKS":  "Render single newlines as <br />: true or false",
		"MDRENDER_TARGET_BLANK": "Open autolinked URLs in a new tab: true or false",
		"MDRENDER_JOBS":         "Number of parallel workers (0 = auto)",
		"MDRENDER_IGNORE":       "Comma-separated list of ignore patterns",
	}
}
