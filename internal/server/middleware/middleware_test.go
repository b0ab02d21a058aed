package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	derrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChain(buf *bytes.Buffer) func(http.Handler) http.Handler {
	logger := slog.New(slog.NewTextHandler(buf, nil))
	return Chain(logger, derrors.NewHTTPErrorAdapter(logger), metrics.NoopRecorder{})
}

func TestChain_AssignsRequestID(t *testing.T) {
	var buf bytes.Buffer
	var seen string
	h := newChain(&buf)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
	assert.Len(t, seen, 36)
	assert.Contains(t, buf.String(), "status=418")
	assert.Contains(t, buf.String(), "request_id="+seen)
}

func TestChain_ReusesIncomingRequestID(t *testing.T) {
	var buf bytes.Buffer
	h := newChain(&buf)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc", rec.Header().Get(RequestIDHeader))
}

func TestChain_RecoversPanics(t *testing.T) {
	var buf bytes.Buffer
	h := newChain(&buf)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/explode", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body["error"])
	assert.Contains(t, buf.String(), "HTTP handler panic")
}
