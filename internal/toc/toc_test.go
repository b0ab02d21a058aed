package toc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_LevelsAndOrder(t *testing.T) {
	got := Extract("## A\n### B\n## C")

	assert.Equal(t, []Entry{
		{ID: "a", Text: "A", Level: 2},
		{ID: "b", Text: "B", Level: 3},
		{ID: "c", Text: "C", Level: 2},
	}, got)
}

func TestExtract_IgnoresOtherLevels(t *testing.T) {
	body := "# Title\n\n## Usage\n\n#### Deep\n\n##### Deeper\n\n###NoSpace\n  ## Indented\n"

	got := Extract(body)

	require.Len(t, got, 1)
	assert.Equal(t, "usage", got[0].ID)
}

func TestExtract_Empty(t *testing.T) {
	assert.Empty(t, Extract(""))
	assert.Empty(t, Extract("Just a paragraph.\n\nAnother one."))
}

func TestExtract_StripsBackticks(t *testing.T) {
	got := Extract("## The `variant` prop\r\n")

	require.Len(t, got, 1)
	assert.Equal(t, "The variant prop", got[0].Text)
	assert.Equal(t, "the-variant-prop", got[0].ID)
}

func TestExtract_OneEntryPerHeadingLine(t *testing.T) {
	got := Extract("## ``\n## A  \n")

	assert.Equal(t, []Entry{
		{ID: "", Text: "", Level: 2},
		{ID: "a", Text: "A  ", Level: 2},
	}, got)
}

func TestExtract_KeepsDuplicateAnchors(t *testing.T) {
	got := Extract("## Examples\n## Examples\n")

	require.Len(t, got, 2)
	assert.Equal(t, got[0].ID, got[1].ID)
}

func TestAnchor(t *testing.T) {
	cases := map[string]string{
		"Getting Started":       "getting-started",
		"  Spaces  around  ":    "spaces-around",
		"API: v2 (beta)!":       "api-v2-beta",
		"Already-hyphenated":    "already-hyphenated",
		"Ünïcode letters":       "n-code-letters",
		"---":                   "",
		"Colors & Typography 2": "colors-typography-2",
	}
	for in, want := range cases {
		assert.Equal(t, want, Anchor(in), "Anchor(%q)", in)
	}
}
