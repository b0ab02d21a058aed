package search

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"git.home.luguber.info/inful/docsite/internal/content"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/nav"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const root = "/content/docs"

func page(title, description, body string) string {
	out := "---\ntitle: " + title + "\n"
	if description != "" {
		out += "description: " + description + "\n"
	}
	return out + "---\n" + body
}

func newService(t *testing.T, files map[string]string, opts ...Option) (*Service, afero.Fs) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for rel, data := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, afero.WriteFile(fsys, path, []byte(data), 0o644))
	}
	store := content.NewFSStore(fsys, root)
	builder := nav.NewBuilder(store, nav.WithSectionOrder([]string{"getting-started", "components"}))
	return NewService(builder, store, opts...), fsys
}

func TestSearch_ShortQueryGuard(t *testing.T) {
	svc, _ := newService(t, map[string]string{
		"components/a.mdx": page("A", "", "a a a"),
	})

	assert.Empty(t, svc.Search(""))
	assert.Empty(t, svc.Search("a"))
	assert.Empty(t, svc.Search("  a  "))
	assert.NotNil(t, svc.Search("a"))
}

func TestSearch_MatchesTitleDescriptionAndBody(t *testing.T) {
	svc, _ := newService(t, map[string]string{
		"getting-started/introduction.mdx": page("Introduction", "Start here", "Welcome to the system."),
		"components/button.mdx":            page("Button", "Clickable control", "Buttons trigger actions."),
		"components/card.mdx":              page("Card", "", "Surfaces group content."),
	})

	got := svc.Search("BUTTON")
	require.Len(t, got, 1)
	assert.Equal(t, Result{Title: "Button", Href: "/docs/components/button", Description: "Clickable control"}, got[0])

	got = svc.Search("start here")
	require.Len(t, got, 1)
	assert.Equal(t, "Introduction", got[0].Title)

	got = svc.Search("surfaces")
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Description)

	assert.Empty(t, svc.Search("nonexistent"))
}

func TestSearch_NavigationOrder(t *testing.T) {
	svc, _ := newService(t, map[string]string{
		"components/zed.mdx":             page("Zed", "", "token"),
		"getting-started/install.mdx":    page("Install", "", "token"),
		"components/alpha.mdx":           page("Alpha", "", "token"),
	})

	got := svc.Search("token")
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Install", "Alpha", "Zed"}, []string{got[0].Title, got[1].Title, got[2].Title})
}

func TestSearch_CapsResults(t *testing.T) {
	files := map[string]string{}
	for i := 0; i < 12; i++ {
		files[fmt.Sprintf("components/page-%02d.mdx", i)] = page(fmt.Sprintf("Page %02d", i), "", "shared keyword")
	}
	svc, _ := newService(t, files)

	got := svc.Search("keyword")
	require.Len(t, got, 8)
	assert.Equal(t, "Page 00", got[0].Title)
	assert.Equal(t, "Page 07", got[7].Title)

	limited, _ := newService(t, files, WithLimit(3))
	assert.Len(t, limited.Search("keyword"), 3)
}

func TestSearch_Idempotent(t *testing.T) {
	svc, _ := newService(t, map[string]string{
		"components/button.mdx": page("Button", "", "x"),
		"components/badge.mdx":  page("Badge", "", "x"),
	})

	assert.Equal(t, svc.Search("ba"), svc.Search("ba"))
}

func TestSearch_ReflectsContentChanges(t *testing.T) {
	svc, fsys := newService(t, map[string]string{
		"components/button.mdx": page("Button", "", "x"),
	})
	require.Empty(t, svc.Search("tooltip"))

	require.NoError(t, afero.WriteFile(fsys, filepath.Join(root, "components/tooltip.mdx"), []byte(page("Tooltip", "", "")), 0o644))
	assert.Len(t, svc.Search("tooltip"), 1)
}

type countingRecorder struct {
	searches []int
}

func (c *countingRecorder) ObserveSearch(_ time.Duration, n int)          { c.searches = append(c.searches, n) }
func (c *countingRecorder) ObserveTreeBuild(time.Duration, int)           {}
func (c *countingRecorder) IncPageResult(metrics.ResultLabel)             {}
func (c *countingRecorder) IncContentChange()                             {}
func (c *countingRecorder) ObserveHTTPRequest(string, int, time.Duration) {}

func TestSearch_RecordsMetrics(t *testing.T) {
	rec := &countingRecorder{}
	svc, _ := newService(t, map[string]string{
		"components/button.mdx": page("Button", "", "x"),
	}, WithRecorder(rec))

	svc.Search("button")
	svc.Search("b")

	assert.Equal(t, []int{1, 0}, rec.searches)
}
