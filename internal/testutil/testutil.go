// Package testutil holds fixtures shared by package tests: content trees on
// disk and throwaway git repositories.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// WriteTree writes files (slash-separated paths relative to root) and
// creates parent directories as needed.
func WriteTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, data := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	}
}

// InitGitRepo initializes a repository in a fresh temp directory and
// returns its worktree and path.
func InitGitRepo(t *testing.T) (*git.Worktree, string) {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	w, err := repo.Worktree()
	require.NoError(t, err)
	return w, dir
}

// CommitFile writes rel under dir and commits it with author and committer
// time set to when.
func CommitFile(t *testing.T, w *git.Worktree, dir, rel, data string, when time.Time) {
	t.Helper()
	WriteTree(t, dir, map[string]string{rel: data})
	_, err := w.Add(rel)
	require.NoError(t, err)
	sig := &object.Signature{Name: "Test", Email: "test@example.com", When: when}
	_, err = w.Commit("update "+rel, &git.CommitOptions{Author: sig, Committer: sig})
	require.NoError(t, err)
}
