package errors

import (
	"encoding/json"
	stdErrors "errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "config", err: ConfigError("bad").Build(), expected: http.StatusBadRequest},
		{name: "content", err: ContentError("bad header").Build(), expected: http.StatusUnprocessableEntity},
		{name: "validation", err: ValidationError("bad query").Build(), expected: http.StatusBadRequest},
		{name: "not found", err: NotFoundError("page not found").Build(), expected: http.StatusNotFound},
		{name: "render", err: RenderError("render failed").Build(), expected: http.StatusUnprocessableEntity},
		{name: "filesystem", err: FileSystemError("read failed").Build(), expected: http.StatusInternalServerError},
		{name: "runtime", err: RuntimeError("shutting down").Build(), expected: http.StatusServiceUnavailable},
		{name: "unclassified", err: stdErrors.New("unknown"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, statusFor(tt.err))
		})
	}
}

func TestHTTPErrorAdapter_WriteErrorResponse(t *testing.T) {
	adapter := NewHTTPErrorAdapter(slog.Default())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/docs/nope/missing", nil)

	err := NotFoundError("page not found").WithContext("slug", "nope/missing").Build()
	adapter.WriteErrorResponse(rec, req, err)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var payload HTTPErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "page not found", payload.Error)
	require.Equal(t, string(CategoryNotFound), payload.Code)
	require.Equal(t, "nope/missing", payload.Details["slug"])
}

func TestHTTPErrorAdapter_WriteUnclassified(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)

	NewHTTPErrorAdapter(nil).WriteErrorResponse(rec, req, stdErrors.New("plain"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var payload HTTPErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "plain", payload.Error)
	require.Empty(t, payload.Code)
	require.Empty(t, payload.Details)
}
