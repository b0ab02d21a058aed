// Package search answers substring queries over every page in navigation order.
//
// There is no index: each query walks the navigation tree and re-reads every
// page through the content store.
package search

import (
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"git.home.luguber.info/inful/docsite/internal/content"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/nav"
)

const (
	DefaultLimit          = 8
	DefaultMinQueryLength = 2
)

// Result is one matching page. The body is never included.
type Result struct {
	Title       string `json:"title"`
	Href        string `json:"href"`
	Description string `json:"description,omitempty"`
}

// Service runs queries against a navigation builder and its store.
type Service struct {
	builder  *nav.Builder
	store    content.Store
	limit    int
	minLen   int
	logger   *slog.Logger
	recorder metrics.Recorder
}

type Option func(*Service)

// WithLimit caps the number of results per query.
func WithLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithMinQueryLength sets the shortest query, in characters, that is searched.
func WithMinQueryLength(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.minLen = n
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithRecorder(r metrics.Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// NewService creates a search service.
func NewService(builder *nav.Builder, store content.Store, opts ...Option) *Service {
	s := &Service{
		builder:  builder,
		store:    store,
		limit:    DefaultLimit,
		minLen:   DefaultMinQueryLength,
		logger:   slog.Default(),
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search returns up to the configured limit of pages whose title, description
// or body contains query, case-insensitively, in navigation order. Queries
// shorter than the minimum length after trimming return no results.
func (s *Service) Search(query string) []Result {
	start := time.Now()
	results := s.search(query)
	s.recorder.ObserveSearch(time.Since(start), len(results))
	return results
}

func (s *Service) search(query string) []Result {
	results := []Result{}

	q := strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(q) < s.minLen {
		return results
	}

	tree, err := s.builder.BuildTree()
	if err != nil {
		s.logger.Warn("Search could not build navigation tree", logfields.Query(q), logfields.Error(err))
		return results
	}

	for _, page := range nav.FlattenPages(tree) {
		file, err := s.store.GetPage(page.Slug)
		if err != nil {
			if !errors.Is(err, content.ErrNotFound) {
				s.logger.Warn("Search skipped unreadable page", logfields.Slug(page.Slug), logfields.Error(err))
			}
			continue
		}

		fm := file.Frontmatter
		haystack := strings.ToLower(fm.Title + " " + fm.Description + " " + file.Body)
		if !strings.Contains(haystack, q) {
			continue
		}

		results = append(results, Result{
			Title:       fm.Title,
			Href:        page.Href,
			Description: fm.Description,
		})
		if len(results) >= s.limit {
			break
		}
	}

	s.logger.Debug("Search completed", logfields.Query(q), logfields.Results(len(results)))
	return results
}
