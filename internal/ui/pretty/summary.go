package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/mdrender/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"

	kilobyte = 1024
	megabyte = 1024 * 1024
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 files rendered (2.1 kB written), 1 unchanged, 1 failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesDiscovered == 0 {
		return s.Dim.Render("No Markdown files found") + "\n"
	}

	fileWord := wordFiles
	if stats.FilesRendered == 1 {
		fileWord = wordFile
	}

	parts := []string{
		fmt.Sprintf("%d %s rendered (%s written)",
			stats.FilesRendered, fileWord, formatBytes(stats.BytesWritten)),
	}

	if stats.FilesUnchanged > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d unchanged", stats.FilesUnchanged)))
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block. The divider is
// sized to width when positive, capped at the default divider width.
func (s *Styles) FormatSummary(stats runner.Stats, width int) string {
	divider := summaryDividerWidth
	if width > 0 && width < divider {
		divider = width
	}

	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", divider))
	builder.WriteString("\n")

	builder.WriteString("  Files discovered:  " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)) + "\n")
	builder.WriteString("  Files rendered:    " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesRendered)) + "\n")

	if stats.FilesUnchanged > 0 {
		builder.WriteString("  Files unchanged:   " +
			s.Dim.Render(strconv.Itoa(stats.FilesUnchanged)) + "\n")
	}

	if stats.FilesErrored > 0 {
		builder.WriteString("  Files failed:      " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("  Bytes written:     " +
		s.SummaryValue.Render(formatBytes(stats.BytesWritten)) + "\n")

	builder.WriteString("\n")

	if stats.FilesErrored > 0 {
		builder.WriteString(s.Failure.Render("Render failed for some files"))
	} else {
		builder.WriteString(s.Success.Render("Render complete"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// formatBytes renders a byte count in a human-readable unit.
func formatBytes(n int64) string {
	switch {
	case n >= megabyte:
		return fmt.Sprintf("%.1f MB", float64(n)/megabyte)
	case n >= kilobyte:
		return fmt.Sprintf("%.1f kB", float64(n)/kilobyte)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
