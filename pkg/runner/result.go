package runner

// FileOutcome records what happened to a single source file.
type FileOutcome struct {
	// Path is the Markdown file that was rendered.
	Path string

	// OutputPath is where the HTML was written.
	OutputPath string

	// BytesWritten is the size of the rendered output.
	BytesWritten int

	// Written is false when the output file already held identical content.
	Written bool

	// Error is set if the file could not be read or written.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesRendered is the number of files successfully rendered.
	FilesRendered int

	// FilesUnchanged is the number of files whose output was already current.
	FilesUnchanged int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// BytesWritten is the total rendered output size across all files.
	BytesWritten int64
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any file failed to render.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesRendered++
	r.Stats.BytesWritten += int64(outcome.BytesWritten)

	if !outcome.Written {
		r.Stats.FilesUnchanged++
	}
}
