package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	payload := map[string]string{"title": "<Button>"}

	t.Run("compact", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/docs/tree", nil)
		require.NoError(t, writeJSON(rec, req, http.StatusOK, payload))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "{\"title\":\"\\u003cButton\\u003e\"}\n", rec.Body.String())
	})

	t.Run("pretty", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/docs/tree?pretty=1", nil)
		require.NoError(t, writeJSON(rec, req, http.StatusCreated, payload))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "{\n  \"title\": \"\\u003cButton\\u003e\"\n}\n", rec.Body.String())
	})

	t.Run("encode failure writes nothing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		err := writeJSON(rec, nil, http.StatusOK, map[string]any{"bad": make(chan int)})
		require.Error(t, err)
		assert.Empty(t, rec.Body.String())
		assert.Empty(t, rec.Header().Get("Content-Type"))
	})
}
