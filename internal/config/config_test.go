package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	derrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultContentRoot, cfg.Content.Root)
	assert.Equal(t, ".mdx", cfg.Content.Extension)
	assert.Equal(t, "/docs", cfg.Content.BasePath)
	assert.Equal(t, 8, cfg.Search.Limit)
	assert.Equal(t, 2, cfg.Search.MinQueryLength)
	assert.True(t, cfg.Monitoring.Metrics.Enabled)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t,
		[]string{"getting-started", "foundations", "components", "patterns", "resources"},
		cfg.SectionOrder())
	assert.Equal(t, "Getting Started", cfg.SectionLabels()["getting-started"])
}

func TestParse_OverridesAndDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
content:
  root: site/content
  extension: md
sections:
  - id: guides
    label: Guides
  - id: api
search:
  limit: 5
server:
  addr: ":8080"
  read_timeout: 5s
monitoring:
  metrics:
    enabled: false
`))
	require.NoError(t, err)

	assert.Equal(t, "site/content", cfg.Content.Root)
	assert.Equal(t, ".md", cfg.Content.Extension)
	assert.Equal(t, "site/content", cfg.Content.EditPrefix)
	assert.Equal(t, []string{"guides", "api"}, cfg.SectionOrder())
	assert.Equal(t, "api", cfg.SectionLabels()["api"], "missing label falls back to id")
	assert.Equal(t, 5, cfg.Search.Limit)
	assert.Equal(t, 2, cfg.Search.MinQueryLength)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.False(t, cfg.Monitoring.Metrics.Enabled)
	assert.True(t, cfg.History.Enabled)
}

func TestParse_ExpandsEnvironment(t *testing.T) {
	t.Setenv("DOCSITE_TEST_ROOT", "/srv/docs")

	cfg, err := Parse([]byte("content:\n  root: ${DOCSITE_TEST_ROOT}\n"))
	require.NoError(t, err)
	assert.Equal(t, "/srv/docs", cfg.Content.Root)
}

func TestParse_ValidationErrors(t *testing.T) {
	cases := map[string]string{
		"duplicate section": "sections:\n  - id: a\n  - id: a\n",
		"empty section id":  "sections:\n  - label: Nameless\n",
		"negative limit":    "search:\n  limit: -1\n",
		"relative base":     "content:\n  base_path: docs\n",
		"invalid yaml":      "content: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.Error(t, err)
			assert.True(t, derrors.HasCategory(err, derrors.CategoryConfig))
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryConfig))
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()

	cfg, found, err := LoadOrDefault(filepath.Join(dir, "absent.yaml"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(dir, "docsite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  limit: 3\n"), 0o600))
	cfg, found, err = LoadOrDefault(path)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, cfg.Search.Limit)
}

func TestInit_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docsite.yaml")

	require.NoError(t, Init(path, false))
	require.Error(t, Init(path, false), "refuses to overwrite without force")
	require.NoError(t, Init(path, true))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
