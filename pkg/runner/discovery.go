package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover finds Markdown source files for a render run. Each entry in
// opts.Paths is either a file, which is taken as-is when it qualifies, or a
// directory, which is walked recursively. The result is deduplicated and
// sorted, so a run over the same tree always renders in the same order.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	walker := &sourceWalker{
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		opts:       opts,
	}
	if opts.OutputDir != "" {
		// A mirrored output tree inside the workspace is never a source.
		walker.outputDir = opts.OutputDir
		if !filepath.IsAbs(walker.outputDir) {
			walker.outputDir = filepath.Join(workDir, walker.outputDir)
		}
		walker.outputDir = filepath.Clean(walker.outputDir)
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			if walker.wantFile(absPath) {
				add(absPath)
			}
			continue
		}

		found, err := walker.walk(ctx, absPath)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}

	sort.Strings(files)
	return files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// sourceWalker collects Markdown sources under a directory tree, honoring
// the run's extension set, include/exclude globs, and output directory.
type sourceWalker struct {
	workDir    string
	extensions []string
	outputDir  string
	opts       Options
}

func (w *sourceWalker) walk(ctx context.Context, root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		relPath := w.rel(path)

		if entry.IsDir() {
			// Hidden directories are skipped everywhere but at the root,
			// so "mdrender render ." inside a dot-directory still works.
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if w.outputDir != "" && filepath.Clean(path) == w.outputDir {
				return filepath.SkipDir
			}
			if matchesAnyGlob(relPath, w.opts.ExcludeGlobs) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			return w.walkSymlink(ctx, path, &files)
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if w.wantFile(path) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}
	return files, nil
}

// walkSymlink resolves a symlinked entry. File links fall through to the
// normal file checks; directory links are only descended into when the run
// asks for it, and always via the resolved target since WalkDir lstats its
// root. Broken or unreadable links are skipped.
func (w *sourceWalker) walkSymlink(ctx context.Context, path string, files *[]string) error {
	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil //nolint:nilerr // broken links are not render inputs
	}
	info, err := os.Stat(realPath)
	if err != nil {
		return nil //nolint:nilerr // unreadable targets are not render inputs
	}

	if info.IsDir() {
		if !w.opts.FollowSymlinks {
			return nil
		}
		found, err := w.walk(ctx, realPath)
		if err != nil {
			return err
		}
		*files = append(*files, found...)
		return nil
	}

	if !strings.HasPrefix(filepath.Base(path), ".") && w.wantFile(path) {
		*files = append(*files, path)
	}
	return nil
}

// wantFile reports whether a file is a render input: a Markdown extension,
// not excluded, and matching the include globs when any are set.
func (w *sourceWalker) wantFile(path string) bool {
	if !hasMarkdownExtension(path, w.extensions) {
		return false
	}

	relPath := w.rel(path)
	if matchesAnyGlob(relPath, w.opts.ExcludeGlobs) {
		return false
	}
	if len(w.opts.IncludeGlobs) > 0 && !matchesAnyGlob(relPath, w.opts.IncludeGlobs) {
		return false
	}
	return true
}

// rel makes a path relative to the working directory for glob matching.
func (w *sourceWalker) rel(path string) string {
	relPath, err := filepath.Rel(w.workDir, path)
	if err != nil {
		return path
	}
	return relPath
}

func hasMarkdownExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

func matchesAnyGlob(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a slash-normalized relative path against one ignore or
// include pattern. Patterns without "**" use filepath.Match semantics, with
// a basename fallback so "*.md" applies at any depth.
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return matchRecursiveGlob(path, pattern)
	}

	if matched, err := filepath.Match(pattern, path); err == nil && matched {
		return true
	}
	matched, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && matched
}

// matchRecursiveGlob handles patterns containing "**". The segment before
// the stars anchors a directory prefix ("vendor/**"), the segment after
// them may match anywhere below it ("**/drafts", "docs/**/*.md").
func matchRecursiveGlob(path, pattern string) bool {
	head, tail, _ := strings.Cut(pattern, "**")
	head = strings.TrimSuffix(head, "/")
	tail = strings.TrimPrefix(tail, "/")

	if head != "" {
		if path != head && !strings.HasPrefix(path, head+"/") {
			return false
		}
		path = strings.TrimPrefix(strings.TrimPrefix(path, head), "/")
	}
	if tail == "" {
		return true
	}
	if strings.Contains(tail, "**") {
		return matchRecursiveGlob(path, tail)
	}

	if strings.HasSuffix(path, tail) {
		return true
	}
	for _, part := range strings.Split(path, "/") {
		if matched, err := filepath.Match(tail, part); err == nil && matched {
			return true
		}
	}
	return false
}
