package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdrender/internal/configloader"
	"github.com/yaklabco/mdrender/internal/logging"
	"github.com/yaklabco/mdrender/internal/ui/pretty"
	"github.com/yaklabco/mdrender/pkg/autolink"
	"github.com/yaklabco/mdrender/pkg/config"
	"github.com/yaklabco/mdrender/pkg/mdrender"
	"github.com/yaklabco/mdrender/pkg/render"
	"github.com/yaklabco/mdrender/pkg/runner"
)

// ErrRenderFailed is returned when one or more files could not be rendered.
var ErrRenderFailed = errors.New("render failed")

// stdinPath is the argument that selects stdin as the source.
const stdinPath = "-"

type renderFlags struct {
	unstyled bool
	toStdout bool
	summary  string
	ignore   []string
	rules    []string
}

func newRenderCommand() *cobra.Command {
	var cfg config.Config
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [paths...]",
		Short: "Render Markdown files to HTML",
		Long:  renderLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, &cfg, flags)
		},
	}

	addRenderFlags(cmd, &cfg, flags)

	return cmd
}

const renderLongDescription = `Render Markdown files to HTML.

By default, renders all .md and .markdown files in the current directory
and subdirectories, writing each .html file next to its source. Specify
paths to render specific files or directories, or "-" to read from stdin
and write to stdout.

Examples:
  mdrender render                     # Render current directory
  mdrender render docs/               # Render docs directory
  mdrender render README.md --stdout  # Render single file to stdout
  mdrender render - < notes.md        # Render stdin to stdout
  mdrender render --out public/       # Mirror output under public/
  mdrender render --unstyled          # Strip output to <p> and <br /> tags`

func runRender(cmd *cobra.Command, args []string, cfg *config.Config, flags *renderFlags) error {
	logger := logging.Default()

	// Only set values that were explicitly provided via CLI flags.
	if flags.unstyled {
		cfg.Mode = config.ModeUnstyled
	}
	cfg.Ignore = flags.ignore

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
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
		CLIConfig:    cfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	// CLI rules append after config-file rules, so file rules keep priority.
	for _, raw := range flags.rules {
		rule, err := parseRuleFlag(raw)
		if err != nil {
			return err
		}
		finalCfg.Rules = append(finalCfg.Rules, rule)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldMode, finalCfg.Mode,
		logging.FieldRules, len(finalCfg.Rules),
		logging.FieldHardBreaks, finalCfg.HardBreaks,
		logging.FieldJobs, finalCfg.Jobs,
	)

	if len(args) == 1 && args[0] == stdinPath {
		return renderStdin(cmd, finalCfg)
	}

	if flags.toStdout {
		if len(args) != 1 {
			return errors.New("--stdout requires exactly one file argument")
		}
		return renderFileToStdout(cmd, args[0], finalCfg)
	}

	return runBatch(ctx, cmd, args, workDir, finalCfg, flags)
}

// parseRuleFlag parses a --rule value of the form "pattern=template".
// The split is at the first "="; patterns needing a literal "=" can escape
// it as \x3d.
func parseRuleFlag(raw string) (autolink.Rule, error) {
	pattern, template, ok := strings.Cut(raw, "=")
	if !ok || pattern == "" || template == "" {
		return autolink.Rule{}, fmt.Errorf("invalid --rule %q: expected pattern=template", raw)
	}
	return autolink.Rule{Pattern: pattern, Template: template}, nil
}

// renderStdin renders Markdown from stdin to stdout.
func renderStdin(cmd *cobra.Command, cfg *config.Config) error {
	source, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	html, err := renderSource(source, cfg)
	if err != nil {
		return err
	}

	_, err = io.WriteString(cmd.OutOrStdout(), html)
	return err
}

// renderFileToStdout renders a single file to stdout.
func renderFileToStdout(cmd *cobra.Command, path string, cfg *config.Config) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	html, err := renderSource(source, cfg)
	if err != nil {
		return err
	}

	_, err = io.WriteString(cmd.OutOrStdout(), html)
	return err
}

// renderSource renders one Markdown document per the configuration.
func renderSource(source []byte, cfg *config.Config) (string, error) {
	opts := render.Options{
		HardBreaks:  cfg.HardBreaks,
		TargetBlank: cfg.TargetBlank,
	}

	if cfg.Mode == config.ModeUnstyled {
		return mdrender.ToUnstyledHTML(source, opts), nil
	}

	return mdrender.ToHTML(source, cfg.Rules, opts)
}

// runBatch renders the given paths through the worker-pool runner.
func runBatch(
	ctx context.Context,
	cmd *cobra.Command,
	args []string,
	workDir string,
	cfg *config.Config,
	flags *renderFlags,
) error {
	logger := logging.Default()

	batchRunner, err := runner.New(cfg)
	if err != nil {
		return err
	}

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		OutputDir:    cfg.OutputDir,
	}

	logger.Debug("starting render run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	start := time.Now()

	result, err := batchRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("render run failed"), err)
	}

	logger.Debug("render run finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesRendered, result.Stats.FilesRendered,
		logging.FieldDuration, time.Since(start),
	)

	for _, outcome := range result.Files {
		if outcome.Error != nil {
			logger.Error("render failed",
				logging.FieldPath, outcome.Path,
				logging.FieldError, outcome.Error,
			)
		}
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

	if flags.summary == "full" {
		width := pretty.TerminalWidth(out, 0)
		fmt.Fprint(out, styles.FormatSummary(result.Stats, width))
	} else {
		fmt.Fprint(out, styles.FormatSummaryOneLine(result.Stats))
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrRenderFailed
	}

	return nil
}

func addRenderFlags(cmd *cobra.Command, cfg *config.Config, flags *renderFlags) {
	cmd.Flags().BoolVar(&flags.unstyled, "unstyled", false,
		"render with only <p> and <br /> tags")
	cmd.Flags().BoolVar(&cfg.HardBreaks, "hard-breaks", false,
		"render single newlines as <br /> tags")
	cmd.Flags().BoolVar(&cfg.TargetBlank, "target-blank", false,
		"add target=\"_blank\" to autolinked URLs")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringVarP(&cfg.OutputDir, "out", "o", "",
		"output directory (mirrors the source layout)")
	cmd.Flags().StringArrayVar(&flags.rules, "rule", nil,
		"autolink rule as pattern=template (repeatable, applied after config rules)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringVar(&flags.summary, "summary", "line",
		"summary style after a batch run: line, full")
	cmd.Flags().BoolVar(&flags.toStdout, "stdout", false,
		"write the rendered HTML to stdout instead of a file")
}
