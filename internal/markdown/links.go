package markdown

import "strings"

type LinkKind string

const (
	LinkKindInline              LinkKind = "inline"
	LinkKindImage               LinkKind = "image"
	LinkKindAuto                LinkKind = "auto"
	LinkKindReferenceDefinition LinkKind = "reference_definition"
)

type Link struct {
	Kind        LinkKind
	Destination string
}

// Internal reports whether the link points below basePath, e.g. /docs/a/b#c.
func (l Link) Internal(basePath string) bool {
	prefix := strings.TrimRight(basePath, "/") + "/"
	return strings.HasPrefix(l.Destination, prefix)
}

// Target splits an internal destination into its slug and fragment.
func (l Link) Target(basePath string) (slug []string, fragment string) {
	dest := strings.TrimPrefix(l.Destination, strings.TrimRight(basePath, "/")+"/")
	if i := strings.IndexAny(dest, "?#"); i >= 0 {
		if j := strings.IndexByte(dest, '#'); j >= 0 {
			fragment = dest[j+1:]
		}
		dest = dest[:i]
	}
	dest = strings.Trim(dest, "/")
	if dest == "" {
		return nil, fragment
	}
	return strings.Split(dest, "/"), fragment
}
