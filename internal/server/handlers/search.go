package handlers

import (
	"log/slog"
	"net/http"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/search"
	"git.home.luguber.info/inful/docsite/internal/server/responses"
)

// Searcher answers search queries.
type Searcher interface {
	Search(query string) []search.Result
}

// SearchHandlers serves the search endpoint.
type SearchHandlers struct {
	searcher     Searcher
	errorAdapter *errors.HTTPErrorAdapter
}

// NewSearchHandlers creates search handlers backed by s.
func NewSearchHandlers(s Searcher) *SearchHandlers {
	return &SearchHandlers{
		searcher:     s,
		errorAdapter: errors.NewHTTPErrorAdapter(slog.Default()),
	}
}

// HandleSearch answers GET /api/search?q=. A missing or short query yields an
// empty result list, never an error.
func (h *SearchHandlers) HandleSearch(w http.ResponseWriter, r *http.Request) {
	results := h.searcher.Search(r.URL.Query().Get("q"))
	if results == nil {
		results = []search.Result{}
	}

	if err := writeJSON(w, r, http.StatusOK, responses.SearchResponse{Results: results}); err != nil {
		internalErr := errors.WrapError(err, errors.CategoryInternal, "failed to write search response").
			Build()
		h.errorAdapter.WriteErrorResponse(w, r, internalErr)
	}
}
