package lint

import (
	"git.home.luguber.info/inful/docsite/internal/content"
)

// Severity indicates the importance level of a linting issue.
type Severity int

const (
	// SeverityInfo marks observations that need no action.
	SeverityInfo Severity = iota
	// SeverityWarning marks issues that degrade the site but do not break it.
	SeverityWarning
	// SeverityError marks pages that will not render as authored.
	SeverityError
)

// String returns the human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Issue represents a single linting problem found in a file.
type Issue struct {
	FilePath    string   // Path relative to the content root
	Severity    Severity // Issue severity level
	Rule        string   // Rule identifier (e.g., "frontmatter-title-missing")
	Message     string   // Brief description of the issue
	Explanation string   // Detailed explanation with context
	Fix         string   // Suggested fix
	Line        int      // Line number (0 if file-level issue)
}

// Result contains all issues found during linting.
type Result struct {
	Issues     []Issue
	FilesTotal int // Total files scanned
}

func (r *Result) count(s Severity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == s {
			n++
		}
	}
	return n
}

// HasErrors returns true if any error-level issues exist.
func (r *Result) HasErrors() bool { return r.ErrorCount() > 0 }

// HasWarnings returns true if any warning-level issues exist.
func (r *Result) HasWarnings() bool { return r.WarningCount() > 0 }

// ErrorCount returns the number of error-level issues.
func (r *Result) ErrorCount() int { return r.count(SeverityError) }

// WarningCount returns the number of warning-level issues.
func (r *Result) WarningCount() int { return r.count(SeverityWarning) }

// InfoCount returns the number of info-level issues.
func (r *Result) InfoCount() int { return r.count(SeverityInfo) }

// Site is the snapshot of the content tree every rule inspects.
type Site struct {
	Sections []SiteSection
	BasePath string

	relPath func(slug []string) string
	pages   map[string]content.ContentFile
}

// SiteSection holds the parsed files of one section in scan order.
type SiteSection struct {
	ID      string
	Labeled bool
	Files   []content.ContentFile
}

// Path returns the display path of a page.
func (s *Site) Path(f content.ContentFile) string {
	return s.relPath(f.Slug())
}

// Lookup finds a page by slug.
func (s *Site) Lookup(slug []string) (content.ContentFile, bool) {
	if len(slug) != 2 {
		return content.ContentFile{}, false
	}
	f, ok := s.pages[slug[0]+"/"+slug[1]]
	return f, ok
}

// Rule defines a linting rule applied to the whole site.
type Rule interface {
	// Name returns the unique identifier for this rule.
	Name() string

	// Check returns the issues the rule finds in site.
	Check(site *Site) []Issue
}

// Config contains configuration for the linter.
type Config struct {
	// Quiet suppresses warnings and info, only showing errors.
	Quiet bool

	// Labels are the configured section labels keyed by id.
	Labels map[string]string

	// BasePath is the URL prefix of internal page links.
	BasePath string
}
