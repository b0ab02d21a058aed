package handlers

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/content"
	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/frontmatter"
	"git.home.luguber.info/inful/docsite/internal/history"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/nav"
	"git.home.luguber.info/inful/docsite/internal/server/responses"
	"git.home.luguber.info/inful/docsite/internal/toc"
	"github.com/cespare/xxhash/v2"
	"github.com/go-chi/chi/v5"
)

// ContentSource is a content store that also knows where its files live.
type ContentSource interface {
	content.Store
	Root() string
	RelPath(slug []string) string
}

// Renderer turns a page body into HTML.
type Renderer interface {
	Render(body []byte) (string, error)
}

// DocsHandlers serves the navigation tree and page payloads.
type DocsHandlers struct {
	store        ContentSource
	builder      *nav.Builder
	renderer     Renderer
	history      history.Source
	editPrefix   string
	recorder     metrics.Recorder
	logger       *slog.Logger
	errorAdapter *errors.HTTPErrorAdapter
}

// DocsOptions carries the optional collaborators of DocsHandlers.
type DocsOptions struct {
	// History resolves last-updated metadata; nil omits it.
	History history.Source
	// EditPrefix is prepended to a page's relative path to form editPath.
	EditPrefix string
	Recorder   metrics.Recorder
	Logger     *slog.Logger
}

// NewDocsHandlers creates docs handlers.
func NewDocsHandlers(store ContentSource, builder *nav.Builder, renderer Renderer, opts DocsOptions) *DocsHandlers {
	if opts.Recorder == nil {
		opts.Recorder = metrics.NoopRecorder{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &DocsHandlers{
		store:        store,
		builder:      builder,
		renderer:     renderer,
		history:      opts.History,
		editPrefix:   strings.TrimRight(filepath.ToSlash(opts.EditPrefix), "/"),
		recorder:     opts.Recorder,
		logger:       opts.Logger,
		errorAdapter: errors.NewHTTPErrorAdapter(opts.Logger),
	}
}

// HandleTree serves the navigation tree.
func (h *DocsHandlers) HandleTree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.builder.BuildTree()
	if err != nil {
		h.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, r, http.StatusOK, responses.TreeResponse{Sections: tree}); err != nil {
		h.errorAdapter.WriteErrorResponse(w, r, errors.WrapError(err, errors.CategoryInternal, "failed to write tree response").Build())
	}
}

// HandlePage serves one page resolved from the section and page URL params.
func (h *DocsHandlers) HandlePage(w http.ResponseWriter, r *http.Request) {
	slug := []string{chi.URLParam(r, "section"), chi.URLParam(r, "page")}

	file, err := h.store.GetPage(slug)
	if err != nil {
		if stderrors.Is(err, content.ErrNotFound) {
			h.recorder.IncPageResult(metrics.ResultNotFound)
		} else {
			h.recorder.IncPageResult(metrics.ResultError)
		}
		h.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}

	html, err := h.renderer.Render([]byte(file.Body))
	if err != nil {
		h.recorder.IncPageResult(metrics.ResultError)
		h.errorAdapter.WriteErrorResponse(w, r, errors.RenderError("failed to render page").
			WithCause(err).
			WithContext("slug", strings.Join(slug, "/")).
			Build())
		return
	}

	tree, err := h.builder.BuildTree()
	if err != nil {
		h.logger.Warn("Page served without navigation", logfields.Slug(slug), logfields.Error(err))
	}
	prev, next, _ := nav.Neighbors(nav.FlattenPages(tree), slug)

	rel := h.store.RelPath(slug)
	resp := responses.PageResponse{
		Slug:        slug,
		Href:        h.builder.Href(slug),
		Frontmatter: file.Frontmatter,
		HTML:        html,
		TOC:         toc.Extract(file.Body),
		Breadcrumbs: h.builder.Breadcrumbs(tree, slug, file.Frontmatter.Title),
		Prev:        responses.LinkTo(prev),
		Next:        responses.LinkTo(next),
		EditPath:    path.Join(h.editPrefix, rel),
		LastUpdated: h.lastUpdated(rel),
		Fingerprint: frontmatter.Fingerprint(file.Frontmatter, []byte(file.Body)),
	}

	// The ETag covers the whole payload; navigation changes with sibling pages.
	if etag, err := payloadETag(resp); err == nil {
		w.Header().Set("ETag", etag)
		if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
			h.recorder.IncPageResult(metrics.ResultFound)
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	h.recorder.IncPageResult(metrics.ResultFound)
	if err := writeJSON(w, r, http.StatusOK, resp); err != nil {
		h.errorAdapter.WriteErrorResponse(w, r, errors.WrapError(err, errors.CategoryInternal, "failed to write page response").Build())
	}
}

func payloadETag(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`"%016x"`, xxhash.Sum64(b)), nil
}

func (h *DocsHandlers) lastUpdated(rel string) *history.Info {
	if h.history == nil {
		return nil
	}
	info, err := h.history.LastUpdated(filepath.Join(h.store.Root(), filepath.FromSlash(rel)))
	if err != nil {
		h.logger.Debug("No history for page", logfields.Path(rel), logfields.Error(err))
		return nil
	}
	return &info
}
