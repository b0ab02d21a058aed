// Package history looks up when a content file last changed in version control.
package history

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	derrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrNoHistory is returned when a file has no commits touching it.
var ErrNoHistory = errors.New("no commit history for file")

// Info describes the most recent commit touching a file.
type Info struct {
	Updated time.Time `json:"updated"`
	Author  string    `json:"author"`
	Commit  string    `json:"commit"`
}

// Source resolves the last change of a file given its filesystem path.
type Source interface {
	LastUpdated(path string) (Info, error)
}

// Repository is a Source backed by a git working tree.
type Repository struct {
	repo *git.Repository
	root string
}

// Open finds the git repository containing path, walking up parent directories.
func Open(path string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryHistory, "open git repository").
			WithContext("path", path).
			Build()
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryHistory, "open worktree").
			WithContext("path", path).
			Build()
	}

	return &Repository{repo: repo, root: resolve(wt.Filesystem.Root())}, nil
}

// Root returns the working tree root.
func (r *Repository) Root() string { return r.root }

// LastUpdated returns the newest commit on HEAD that touched path.
func (r *Repository) LastUpdated(path string) (Info, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Info{}, err
	}
	rel, err := filepath.Rel(r.root, resolve(abs))
	if err != nil || strings.HasPrefix(rel, "..") {
		return Info{}, derrors.NewError(derrors.CategoryHistory, "path outside repository").
			WithContext("path", path).
			Build()
	}
	rel = filepath.ToSlash(rel)

	iter, err := r.repo.Log(&git.LogOptions{FileName: &rel})
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return Info{}, ErrNoHistory
		}
		return Info{}, derrors.WrapError(err, derrors.CategoryHistory, "read commit log").
			WithContext("path", rel).
			Build()
	}
	defer iter.Close()

	commit, err := iter.Next()
	if err != nil {
		return Info{}, ErrNoHistory
	}
	return infoFrom(commit), nil
}

func infoFrom(c *object.Commit) Info {
	return Info{
		Updated: c.Committer.When.UTC(),
		Author:  c.Author.Name,
		Commit:  c.Hash.String(),
	}
}

func resolve(path string) string {
	if real, err := filepath.EvalSymlinks(path); err == nil {
		return real
	}
	return path
}
