// Package frontmatter parses the structured header at the top of a content file.
//
// Parsing fails soft: a header that cannot be decoded, or fields with the wrong
// shape, are reported as Problems while the page keeps documented defaults.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/foundation/normalization"
	adrg "github.com/adrg/frontmatter"
	"github.com/inful/mdfp"
	"gopkg.in/yaml.v3"
)

// DefaultOrder is the sort weight used when a page does not declare one.
const DefaultOrder = 99

// Status is the lifecycle badge of a documented component.
type Status string

const (
	StatusStable     Status = "stable"
	StatusBeta       Status = "beta"
	StatusDeprecated Status = "deprecated"
)

var statuses = normalization.NewNormalizer(map[string]Status{
	string(StatusStable):     StatusStable,
	string(StatusBeta):       StatusBeta,
	string(StatusDeprecated): StatusDeprecated,
}, "")

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusStable, StatusBeta, StatusDeprecated:
		return true
	default:
		return false
	}
}

// Frontmatter is the typed header of a content file.
type Frontmatter struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Status      Status   `yaml:"status,omitempty" json:"status,omitempty"`
	Order       int      `yaml:"order" json:"order"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// Default returns a header with every optional field at its documented default.
func Default() Frontmatter {
	return Frontmatter{Order: DefaultOrder}
}

// Problem describes a header issue that was tolerated during parsing.
// Field is empty when the header as a whole could not be decoded.
type Problem struct {
	Field   string
	Message string
}

// Malformed reports whether the whole header was rejected.
func (p Problem) Malformed() bool { return p.Field == "" }

func (p Problem) String() string {
	if p.Field == "" {
		return p.Message
	}
	return p.Field + ": " + p.Message
}

// Parse splits source into a typed header and the remaining body.
//
// YAML (---) and TOML (+++) headers are accepted. Parse never fails: when the
// header cannot be decoded the defaults are returned together with the body
// that follows the header block, and the reason is reported as a Problem.
func Parse(source []byte) (Frontmatter, []byte, []Problem) {
	fm := Default()

	var fields map[string]any
	body, err := adrg.Parse(bytes.NewReader(source), &fields)
	if err != nil {
		return fm, recoverBody(source), []Problem{{Message: fmt.Sprintf("header could not be parsed: %v", err)}}
	}

	return fm, body, fm.apply(fields)
}

func (fm *Frontmatter) apply(fields map[string]any) []Problem {
	var problems []Problem

	switch v := fields["title"].(type) {
	case nil:
		problems = append(problems, Problem{Field: "title", Message: "title is required"})
	case string:
		if strings.TrimSpace(v) == "" {
			problems = append(problems, Problem{Field: "title", Message: "title is required"})
		} else {
			fm.Title = v
		}
	default:
		problems = append(problems, Problem{Field: "title", Message: fmt.Sprintf("expected a string, got %T", v)})
	}

	switch v := fields["description"].(type) {
	case nil:
	case string:
		fm.Description = v
	default:
		problems = append(problems, Problem{Field: "description", Message: fmt.Sprintf("expected a string, got %T", v)})
	}

	switch v := fields["status"].(type) {
	case nil:
	case string:
		if s, err := statuses.NormalizeWithError(v); err == nil {
			fm.Status = s
		} else {
			problems = append(problems, Problem{Field: "status", Message: fmt.Sprintf("unknown status: %v", err)})
		}
	default:
		problems = append(problems, Problem{Field: "status", Message: fmt.Sprintf("expected a string, got %T", v)})
	}

	if raw, ok := fields["order"]; ok && raw != nil {
		if n, ok := toInt(raw); ok {
			fm.Order = n
		} else {
			problems = append(problems, Problem{Field: "order", Message: fmt.Sprintf("expected an integer, got %v", raw)})
		}
	}

	switch v := fields["tags"].(type) {
	case nil:
	case []string:
		fm.Tags = append([]string(nil), v...)
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				fm.Tags = append(fm.Tags, s)
			}
		}
		if len(fm.Tags) != len(v) {
			problems = append(problems, Problem{Field: "tags", Message: "non-string tags were ignored"})
		}
	default:
		problems = append(problems, Problem{Field: "tags", Message: fmt.Sprintf("expected a list, got %T", v)})
	}

	return problems
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		if n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// Fingerprint returns a stable content fingerprint for a parsed page.
// It changes whenever the typed header or the body changes.
func Fingerprint(fm Frontmatter, body []byte) string {
	header := ""
	if out, err := yaml.Marshal(fm); err == nil {
		header = strings.TrimSuffix(string(out), "\n")
	}
	return mdfp.CalculateFingerprintFromParts(header, string(body))
}

// recoverBody strips a --- delimited header block so that a page whose header
// is broken still exposes its body. Without a recognizable block the whole
// source is the body.
func recoverBody(source []byte) []byte {
	_, body, had, _, err := Split(source)
	if err != nil || !had {
		return source
	}
	return body
}

// Style captures the newline shape of a document.
type Style struct {
	Newline            string
	HasTrailingNewline bool
}

// Split separates YAML frontmatter (`---` delimited) from the Markdown body.
//
// If the document does not start with a YAML frontmatter delimiter, had is false
// and body is the full input.
func Split(content []byte) (frontmatter []byte, body []byte, had bool, style Style, err error) {
	style = detectStyle(content)

	nl := style.Newline
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, style, nil
	}

	frontmatterStart := len(open)
	closeLine := []byte("---" + nl)
	if bytes.HasPrefix(content[frontmatterStart:], closeLine) {
		bodyStart := frontmatterStart + len(closeLine)
		return []byte{}, content[bodyStart:], true, style, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[frontmatterStart:], closeSeq)
	if idx < 0 {
		return nil, nil, false, style, ErrMissingClosingDelimiter
	}

	frontmatterEnd := frontmatterStart + idx + len(nl)
	bodyStart := frontmatterStart + idx + len(closeSeq)
	return content[frontmatterStart:frontmatterEnd], content[bodyStart:], true, style, nil
}

// ErrMissingClosingDelimiter indicates the document started with a YAML
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

func detectStyle(content []byte) Style {
	newline := "\n"
	for i := 0; i+1 < len(content); i++ {
		if content[i] == '\r' && content[i+1] == '\n' {
			newline = "\r\n"
			break
		}
		if content[i] == '\n' {
			newline = "\n"
			break
		}
	}

	hasTrailingNewline := len(content) > 0 && (content[len(content)-1] == '\n')

	return Style{
		Newline:            newline,
		HasTrailingNewline: hasTrailingNewline,
	}
}
