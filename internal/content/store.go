// Package content reads documentation content files from a section-per-directory tree.
//
// Every call re-reads the underlying filesystem; nothing is cached.
package content

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/frontmatter"
	derrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"github.com/spf13/afero"
)

// ErrNotFound is matched (via errors.Is) by every error returned when a slug
// does not resolve to an existing content file.
var ErrNotFound = derrors.NotFoundError("page not found").Build()

// ContentFile is one parsed document on disk.
type ContentFile struct {
	SectionID   string
	PageID      string
	Frontmatter frontmatter.Frontmatter
	Body        string
	// Problems lists header issues tolerated while parsing.
	Problems []frontmatter.Problem
}

// Slug returns the page's path segments.
func (f ContentFile) Slug() []string {
	return []string{f.SectionID, f.PageID}
}

// Store is the read-only view of the content tree used by navigation and search.
type Store interface {
	// ListSections returns the immediate subdirectories of the content root in scan order.
	ListSections() ([]string, error)
	// ListPages returns the parsed content files of one section in scan order.
	ListPages(sectionID string) ([]ContentFile, error)
	// GetPage resolves a slug to its content file or an error matching ErrNotFound.
	GetPage(slug []string) (ContentFile, error)
}

// FSStore implements Store over an afero filesystem.
type FSStore struct {
	fs     afero.Fs
	root   string
	ext    string
	logger *slog.Logger
}

// Option configures an FSStore.
type Option func(*FSStore)

// WithExtension sets the recognized content file extension (default ".mdx").
func WithExtension(ext string) Option {
	return func(s *FSStore) {
		if ext != "" {
			s.ext = ext
		}
	}
}

// WithLogger sets the logger used for soft failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *FSStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewFSStore creates a store reading content below root on fsys.
func NewFSStore(fsys afero.Fs, root string, opts ...Option) *FSStore {
	s := &FSStore{
		fs:     fsys,
		root:   filepath.Clean(root),
		ext:    ".mdx",
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewOSStore creates a store reading content from the local filesystem.
func NewOSStore(root string, opts ...Option) *FSStore {
	return NewFSStore(afero.NewOsFs(), root, opts...)
}

// Root returns the content root directory.
func (s *FSStore) Root() string { return s.root }

// Extension returns the recognized content file extension.
func (s *FSStore) Extension() string { return s.ext }

// RelPath returns the slash-separated path of a page relative to the content root.
func (s *FSStore) RelPath(slug []string) string {
	return strings.Join(slug, "/") + s.ext
}

// ListSections lists the section directories below the content root.
func (s *FSStore) ListSections() ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryFileSystem, "list content root").
			WithContext("root", s.root).
			Build()
	}

	sections := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		sections = append(sections, entry.Name())
	}
	return sections, nil
}

// ListPages lists and parses the content files of a section. Files that
// cannot be read are skipped; files with broken headers are kept with defaults.
func (s *FSStore) ListPages(sectionID string) ([]ContentFile, error) {
	if !validSegment(sectionID) {
		return nil, derrors.NotFoundError("section not found").WithContext("section", sectionID).Build()
	}

	dir := filepath.Join(s.root, sectionID)
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryFileSystem, "list section").
			WithContext("section", sectionID).
			Build()
	}

	pages := make([]ContentFile, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, s.ext) {
			continue
		}

		// A bare ".mdx" would have an empty page id that GetPage cannot resolve.
		pageID := strings.TrimSuffix(name, s.ext)
		if pageID == "" {
			continue
		}
		file, err := s.load(sectionID, pageID, filepath.Join(dir, name))
		if err != nil {
			s.logger.Warn("Skipping unreadable content file",
				logfields.Section(sectionID),
				logfields.File(name),
				logfields.Error(err))
			continue
		}
		pages = append(pages, file)
	}
	return pages, nil
}

// GetPage resolves slug to a content file. Slugs with empty, relative or
// separator-bearing segments never resolve.
func (s *FSStore) GetPage(slug []string) (ContentFile, error) {
	notFound := ErrNotFound.WithContext("slug", strings.Join(slug, "/"))
	if len(slug) == 0 {
		return ContentFile{}, notFound
	}
	for _, seg := range slug {
		if !validSegment(seg) {
			return ContentFile{}, notFound
		}
	}

	path := filepath.Join(append([]string{s.root}, slug...)...) + s.ext
	info, err := s.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ContentFile{}, notFound
		}
		return ContentFile{}, derrors.WrapError(err, derrors.CategoryFileSystem, "stat page").
			WithContext("path", path).
			Build()
	}
	if info.IsDir() {
		return ContentFile{}, notFound
	}

	sectionID := ""
	if len(slug) > 1 {
		sectionID = slug[len(slug)-2]
	}
	file, err := s.load(sectionID, slug[len(slug)-1], path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ContentFile{}, notFound
		}
		return ContentFile{}, err
	}
	return file, nil
}

func (s *FSStore) load(sectionID, pageID, path string) (ContentFile, error) {
	raw, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return ContentFile{}, derrors.WrapError(err, derrors.CategoryFileSystem, "read page").
			WithContext("path", path).
			Build()
	}

	fm, body, problems := frontmatter.Parse(raw)
	if fm.Title == "" {
		fm.Title = pageID
	}
	for _, p := range problems {
		s.logger.Warn("Content header problem",
			logfields.Section(sectionID),
			logfields.Page(pageID),
			slog.String("problem", p.String()))
	}

	return ContentFile{
		SectionID:   sectionID,
		PageID:      pageID,
		Frontmatter: fm,
		Body:        string(body),
		Problems:    problems,
	}, nil
}

func validSegment(seg string) bool {
	if seg == "" || seg == "." || seg == ".." {
		return false
	}
	return !strings.ContainsAny(seg, `/\`) && !strings.ContainsRune(seg, os.PathSeparator)
}
