package lint

import (
	"fmt"

	"git.home.luguber.info/inful/docsite/internal/frontmatter"
)

// FrontmatterMalformedRule reports headers that could not be decoded at all.
type FrontmatterMalformedRule struct{}

func (r *FrontmatterMalformedRule) Name() string { return "frontmatter-malformed" }

func (r *FrontmatterMalformedRule) Check(site *Site) []Issue {
	var issues []Issue
	eachProblem(site, func(path string, p frontmatter.Problem) {
		if !p.Malformed() {
			return
		}
		issues = append(issues, Issue{
			FilePath:    path,
			Severity:    SeverityError,
			Rule:        r.Name(),
			Message:     "Invalid frontmatter",
			Explanation: p.Message + "\nThe page is served with default title, order and status.",
			Fix:         "Fix the YAML syntax between the --- delimiters",
			Line:        1,
		})
	})
	return issues
}

// TitleMissingRule reports pages without a usable title.
type TitleMissingRule struct{}

func (r *TitleMissingRule) Name() string { return "frontmatter-title-missing" }

func (r *TitleMissingRule) Check(site *Site) []Issue {
	var issues []Issue
	eachProblem(site, func(path string, p frontmatter.Problem) {
		if p.Field != "title" {
			return
		}
		issues = append(issues, Issue{
			FilePath:    path,
			Severity:    SeverityError,
			Rule:        r.Name(),
			Message:     "Missing 'title' field in frontmatter",
			Explanation: p.Message + "\nNavigation and search fall back to the file name.",
			Fix:         "Add 'title: <Page title>' to frontmatter",
			Line:        1,
		})
	})
	return issues
}

// FieldInvalidRule reports optional fields with the wrong type or value.
type FieldInvalidRule struct{}

func (r *FieldInvalidRule) Name() string { return "frontmatter-field-invalid" }

func (r *FieldInvalidRule) Check(site *Site) []Issue {
	var issues []Issue
	eachProblem(site, func(path string, p frontmatter.Problem) {
		if p.Malformed() || p.Field == "title" {
			return
		}
		issues = append(issues, Issue{
			FilePath: path,
			Severity: SeverityWarning,
			Rule:     r.Name(),
			Message:  fmt.Sprintf("Invalid '%s' field: %s", p.Field, p.Message),
			Fix:      fmt.Sprintf("Correct or remove '%s'; the default is used meanwhile", p.Field),
			Line:     1,
		})
	})
	return issues
}

func eachProblem(site *Site, fn func(path string, p frontmatter.Problem)) {
	for _, sec := range site.Sections {
		for _, f := range sec.Files {
			for _, p := range f.Problems {
				fn(site.Path(f), p)
			}
		}
	}
}
