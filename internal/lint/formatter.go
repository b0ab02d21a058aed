package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Formatter formats linting results for output.
type Formatter interface {
	Format(w io.Writer, result *Result, root string) error
}

// TextFormatter formats results as human-readable text.
type TextFormatter struct {
	errorC *color.Color
	warnC  *color.Color
	infoC  *color.Color
	pathC  *color.Color
}

// NewTextFormatter creates a text formatter. Colors are only emitted when
// useColor is set.
func NewTextFormatter(useColor bool) *TextFormatter {
	f := &TextFormatter{
		errorC: color.New(color.FgRed, color.Bold),
		warnC:  color.New(color.FgYellow),
		infoC:  color.New(color.FgCyan),
		pathC:  color.New(color.Bold),
	}
	for _, c := range []*color.Color{f.errorC, f.warnC, f.infoC, f.pathC} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return f
}

// Format outputs results in human-readable text format.
func (f *TextFormatter) Format(w io.Writer, result *Result, root string) error {
	p := &printer{w: w}
	p.printf("Linting content in: %s\n", root)
	p.println(strings.Repeat("━", 60))
	p.println()

	for _, issue := range result.Issues {
		f.formatIssue(p, issue)
		p.println()
	}

	p.println(strings.Repeat("━", 60))
	p.printf("Results:\n")
	p.printf("  %d files scanned\n", result.FilesTotal)
	if n := result.ErrorCount(); n > 0 {
		p.printf("  %s\n", f.errorC.Sprintf("%d error%s", n, pluralize(n)))
	}
	if n := result.WarningCount(); n > 0 {
		p.printf("  %s\n", f.warnC.Sprintf("%d warning%s", n, pluralize(n)))
	}
	if n := result.InfoCount(); n > 0 {
		p.printf("  %s\n", f.infoC.Sprintf("%d info", n))
	}
	p.println()

	switch {
	case result.HasErrors():
		p.println("Content has errors. Pages are served with fallback values until fixed.")
	case result.HasWarnings():
		p.println("Content has warnings. Consider fixing before publishing.")
	case len(result.Issues) > 0:
		p.println("All issues are informational.")
	default:
		p.println("All content passes linting.")
	}
	return p.err
}

func (f *TextFormatter) formatIssue(p *printer, issue Issue) {
	var icon string
	switch issue.Severity {
	case SeverityError:
		icon = f.errorC.Sprint("✗")
	case SeverityWarning:
		icon = f.warnC.Sprint("⚠")
	default:
		icon = f.infoC.Sprint("ℹ")
	}

	p.printf("%s %s\n", icon, f.pathC.Sprint(issue.FilePath))
	p.printf("  %s [%s]: %s\n", issue.Severity, issue.Rule, issue.Message)
	if issue.Explanation != "" {
		for line := range strings.SplitSeq(strings.TrimSpace(issue.Explanation), "\n") {
			p.printf("  %s\n", line)
		}
	}
	if issue.Fix != "" {
		p.printf("  Fix: %s\n", issue.Fix)
	}
}

// printer remembers the first write error so formatting code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}

func (p *printer) println(args ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintln(p.w, args...)
	}
}

// JSONFormatter formats results as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// JSONOutput represents the JSON output structure.
type JSONOutput struct {
	Path         string      `json:"path"`
	FilesTotal   int         `json:"files_total"`
	ErrorCount   int         `json:"error_count"`
	WarningCount int         `json:"warning_count"`
	InfoCount    int         `json:"info_count"`
	Issues       []JSONIssue `json:"issues"`
}

// JSONIssue represents a single issue in JSON format.
type JSONIssue struct {
	FilePath    string `json:"file_path"`
	Severity    string `json:"severity"`
	Rule        string `json:"rule"`
	Message     string `json:"message"`
	Explanation string `json:"explanation,omitempty"`
	Fix         string `json:"fix,omitempty"`
	Line        int    `json:"line,omitempty"`
}

// Format outputs results in JSON format.
func (f *JSONFormatter) Format(w io.Writer, result *Result, root string) error {
	output := JSONOutput{
		Path:         root,
		FilesTotal:   result.FilesTotal,
		ErrorCount:   result.ErrorCount(),
		WarningCount: result.WarningCount(),
		InfoCount:    result.InfoCount(),
		Issues:       make([]JSONIssue, 0, len(result.Issues)),
	}

	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, JSONIssue{
			FilePath:    issue.FilePath,
			Severity:    issue.Severity.String(),
			Rule:        issue.Rule,
			Message:     issue.Message,
			Explanation: issue.Explanation,
			Fix:         issue.Fix,
			Line:        issue.Line,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// NewFormatter creates the appropriate formatter based on format string.
func NewFormatter(format string, useColor bool) Formatter {
	switch format {
	case "json":
		return NewJSONFormatter()
	default:
		return NewTextFormatter(useColor)
	}
}

// pluralize returns "s" if count != 1, otherwise empty string.
func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
