package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdrender/internal/configloader"
	"github.com/yaklabco/mdrender/internal/logging"
	"github.com/yaklabco/mdrender/pkg/autolink"
)

type rulesFlags struct {
	format string
}

const formatJSON = "json"

// ruleInfo represents an autolink rule in JSON output.
type ruleInfo struct {
	Index    int    `json:"index"`
	Pattern  string `json:"pattern"`
	Template string `json:"template"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List and validate the configured autolink rules",
		Long: `List the autolink rules from the effective configuration.

Rules are compiled before listing, so invalid regular expressions fail the
command and templates that reference missing capture groups are reported
as warnings.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRules(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

func runRules(cmd *cobra.Command, flags *rulesFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return err
	}

	rules := loadResult.Config.Rules

	if flags.format == formatJSON {
		return outputRulesJSON(rules)
	}

	logger := logging.NewInteractive()

	if len(rules) == 0 {
		logger.Info("no autolink rules configured")
		logger.Info("run 'mdrender init' to create a config file with examples")
		return nil
	}

	logger.Info("configured autolink rules")

	for i, rule := range rules {
		logger.Info(fmt.Sprintf("rule %d", i),
			logging.FieldPattern, rule.Pattern,
			logging.FieldTemplate, rule.Template,
		)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn("template warning", logging.FieldWarning, warning)
	}

	return nil
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(rules []autolink.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for i, rule := range rules {
		infos = append(infos, ruleInfo{
			Index:    i,
			Pattern:  rule.Pattern,
			Template: rule.Template,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
