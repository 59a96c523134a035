package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/yaklabco/mdrender/internal/logging"
	"github.com/yaklabco/mdrender/pkg/autolink"
	"github.com/yaklabco/mdrender/pkg/config"
	"github.com/yaklabco/mdrender/pkg/fsutil"
	"github.com/yaklabco/mdrender/pkg/mdrender"
	"github.com/yaklabco/mdrender/pkg/render"
)

// Runner orchestrates multi-file Markdown rendering.
type Runner struct {
	cfg   *config.Config
	rules *autolink.RuleSet
}

// New creates a Runner from a validated configuration. The autolink rules are
// compiled once and shared by all workers.
func New(cfg *config.Config) (*Runner, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	rules, err := autolink.Compile(cfg.Rules)
	if err != nil {
		return nil, fmt.Errorf("compile autolink rules: %w", err)
	}

	return &Runner{cfg: cfg, rules: rules}, nil
}

// Run discovers files under opts.Paths and renders them concurrently.
// It returns a deterministic collection of FileOutcome values and aggregate stats.
//
// The runner:
//   - Discovers files matching the options criteria
//   - Renders files concurrently using a worker pool
//   - Writes each output atomically, skipping files whose output is current
//   - Respects context cancellation
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx)
	logger.Debug("discovery complete",
		logging.FieldFilesDiscovered, len(files),
		logging.FieldWorkingDir, workDir,
	)

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, workDir, opts)
		}()
	}

	// Feed work in a separate goroutine.
	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; key by path and rebuild in input order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker renders files from workCh and sends outcomes to outCh.
func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	workDir string,
	opts Options,
) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.renderFile(ctx, path, workDir, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// renderFile reads, renders, and writes a single file.
func (r *Runner) renderFile(ctx context.Context, path, workDir string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	source, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	renderOpts := render.Options{
		HardBreaks:  r.cfg.HardBreaks,
		TargetBlank: r.cfg.TargetBlank,
	}

	var html string
	if r.cfg.Mode == config.ModeUnstyled {
		html = mdrender.ToUnstyledHTML(source, renderOpts)
	} else {
		html = mdrender.ToHTMLWithRules(source, r.rules, renderOpts)
	}

	outPath, err := outputPath(path, workDir, opts.OutputDir)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.OutputPath = outPath

	if dir := filepath.Dir(outPath); opts.OutputDir != "" {
		if err := fsutil.EnsureDir(dir); err != nil {
			outcome.Error = err
			return outcome
		}
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, outPath, []byte(html), 0)
	if err != nil {
		outcome.Error = fmt.Errorf("write %s: %w", outPath, err)
		return outcome
	}

	outcome.Written = written
	outcome.BytesWritten = len(html)
	return outcome
}

// outputPath derives the HTML output path for a source file. With an output
// directory the source layout is mirrored under it; otherwise the output
// lands next to the source.
func outputPath(sourcePath, workDir, outputDir string) (string, error) {
	withExt := strings.TrimSuffix(sourcePath, filepath.Ext(sourcePath)) + ".html"

	if outputDir == "" {
		return withExt, nil
	}

	rel, err := filepath.Rel(workDir, withExt)
	if err != nil || strings.HasPrefix(rel, "..") {
		// Sources outside the working directory flatten to their base name.
		rel = filepath.Base(withExt)
	}

	return filepath.Join(outputDir, rel), nil
}
