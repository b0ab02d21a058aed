package markdown

import (
	"testing"

	"git.home.luguber.info/inful/docsite/internal/toc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_HeadingIDsMatchAnchors(t *testing.T) {
	r := NewRenderer(Options{})

	out, err := r.Render([]byte("## Hello World\n\n### The `size` prop\n"))
	require.NoError(t, err)
	assert.Contains(t, out, `<h2 id="hello-world">Hello World</h2>`)
	assert.Contains(t, out, `id="the-size-prop"`)
}

func TestRender_HeadingIDsAgreeWithTOC(t *testing.T) {
	body := "## !!!\n\n## Usage\n\n## Usage\n\n### API: v2 (beta)\n"

	out, err := NewRenderer(Options{}).Render([]byte(body))
	require.NoError(t, err)

	for _, e := range toc.Extract(body) {
		assert.Contains(t, out, `id="`+e.ID+`"`)
	}
	assert.Contains(t, out, `<h2 id="">!!!</h2>`)
	assert.NotContains(t, out, `id="heading"`)
	assert.NotContains(t, out, `id="usage-1"`)
}

func TestRender_GFMTable(t *testing.T) {
	r := NewRenderer(Options{})

	out, err := r.Render([]byte("| a | b |\n|---|---|\n| 1 | 2 |\n"))
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
}

func TestRender_RawHTML(t *testing.T) {
	body := []byte("<div class=\"note\">hi</div>\n")

	safe, err := NewRenderer(Options{}).Render(body)
	require.NoError(t, err)
	assert.NotContains(t, safe, `<div class="note">`)

	unsafe, err := NewRenderer(Options{Unsafe: true}).Render(body)
	require.NoError(t, err)
	assert.Contains(t, unsafe, `<div class="note">hi</div>`)
}
