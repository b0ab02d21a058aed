package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractLinks_InlineLink(t *testing.T) {
	links := ExtractLinks([]byte("See [API](api.md) for details."))
	require.Len(t, links, 1)
	require.Equal(t, LinkKindInline, links[0].Kind)
	require.Equal(t, "api.md", links[0].Destination)
}

func TestExtractLinks_ImageLink(t *testing.T) {
	links := ExtractLinks([]byte("![Diagram](diagram.png)"))
	require.Len(t, links, 1)
	require.Equal(t, LinkKindImage, links[0].Kind)
	require.Equal(t, "diagram.png", links[0].Destination)
}

func TestExtractLinks_AutoLink(t *testing.T) {
	links := ExtractLinks([]byte("<https://example.com/path>"))
	require.Len(t, links, 1)
	require.Equal(t, LinkKindAuto, links[0].Kind)
	require.Equal(t, "https://example.com/path", links[0].Destination)
}

func TestExtractLinks_ReferenceLinkUsageAndDefinition(t *testing.T) {
	links := ExtractLinks([]byte("See [API][ref].\n\n[ref]: api.md\n"))

	require.Len(t, links, 2)
	require.Equal(t, LinkKindInline, links[0].Kind)
	require.Equal(t, "api.md", links[0].Destination)
	require.Equal(t, LinkKindReferenceDefinition, links[1].Kind)
}

func TestLink_Target(t *testing.T) {
	l := Link{Kind: LinkKindInline, Destination: "/docs/components/button#variants"}
	require.True(t, l.Internal("/docs"))
	require.True(t, l.Internal("/docs/"))

	slug, frag := l.Target("/docs")
	require.Equal(t, []string{"components", "button"}, slug)
	require.Equal(t, "variants", frag)

	slug, frag = Link{Destination: "/docs/a/b/?tab=1"}.Target("/docs")
	require.Equal(t, []string{"a", "b"}, slug)
	require.Empty(t, frag)

	require.False(t, Link{Destination: "/documentation/x"}.Internal("/docs"))
	require.False(t, Link{Destination: "https://example.com/docs/x"}.Internal("/docs"))
}
