package history

import (
	"path/filepath"
	"testing"
	"time"

	"git.home.luguber.info/inful/docsite/internal/testutil"
	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastUpdated(t *testing.T) {
	w, dir := testutil.InitGitRepo(t)

	first := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)
	testutil.CommitFile(t, w, dir, "content/docs/components/button.mdx", "v1", first)
	testutil.CommitFile(t, w, dir, "content/docs/components/card.mdx", "v1", second)

	h, err := Open(filepath.Join(dir, "content", "docs"))
	require.NoError(t, err)

	info, err := h.LastUpdated(filepath.Join(dir, "content/docs/components/button.mdx"))
	require.NoError(t, err)
	assert.True(t, first.Equal(info.Updated), "got %s", info.Updated)
	assert.Equal(t, "Test", info.Author)
	assert.Len(t, info.Commit, 40)

	info, err = h.LastUpdated(filepath.Join(dir, "content/docs/components/card.mdx"))
	require.NoError(t, err)
	assert.True(t, second.Equal(info.Updated))
}

func TestLastUpdated_LatestCommitWins(t *testing.T) {
	w, dir := testutil.InitGitRepo(t)

	first := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	testutil.CommitFile(t, w, dir, "guide.mdx", "v1", first)
	testutil.CommitFile(t, w, dir, "guide.mdx", "v2", first.Add(time.Hour))

	h, err := Open(dir)
	require.NoError(t, err)

	info, err := h.LastUpdated(filepath.Join(dir, "guide.mdx"))
	require.NoError(t, err)
	assert.True(t, first.Add(time.Hour).Equal(info.Updated))
}

func TestLastUpdated_Untracked(t *testing.T) {
	w, dir := testutil.InitGitRepo(t)
	testutil.CommitFile(t, w, dir, "a.mdx", "a", time.Now())

	h, err := Open(dir)
	require.NoError(t, err)

	_, err = h.LastUpdated(filepath.Join(dir, "b.mdx"))
	assert.ErrorIs(t, err, ErrNoHistory)
}

func TestLastUpdated_EmptyRepository(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	h, err := Open(dir)
	require.NoError(t, err)

	_, err = h.LastUpdated(filepath.Join(dir, "a.mdx"))
	assert.ErrorIs(t, err, ErrNoHistory)
}

func TestOpen_NotARepository(t *testing.T) {
	_, err := Open(t.TempDir())
	require.Error(t, err)
}
