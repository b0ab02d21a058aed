package errors

import (
	"bytes"
	stdErrors "errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	require.Equal(t, 0, adapter.ExitCodeFor(nil))
	require.Equal(t, 2, adapter.ExitCodeFor(ValidationError("bad").Build()))
	require.Equal(t, 3, adapter.ExitCodeFor(NotFoundError("missing").Build()))
	require.Equal(t, 7, adapter.ExitCodeFor(ConfigError("bad config").Build()))
	require.Equal(t, 11, adapter.ExitCodeFor(ContentError("bad header").Build()))
	require.Equal(t, 10, adapter.ExitCodeFor(InternalError("oops").Build()))
	require.Equal(t, 1, adapter.ExitCodeFor(stdErrors.New("plain")))
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, slog.Default())
	verbose := NewCLIErrorAdapter(true, slog.Default())
	err := ConfigError("content root missing").WithCause(stdErrors.New("stat failed")).Build()

	require.Equal(t, "Error: content root missing", quiet.FormatError(err))
	require.Equal(t, "[config:fatal] content root missing: stat failed", verbose.FormatError(err))
	require.Equal(t, "Error: plain", quiet.FormatError(stdErrors.New("plain")))
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var out bytes.Buffer
	var logs bytes.Buffer
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil)))
	adapter.out = &out
	code := -1
	adapter.exit = func(c int) { code = c }

	adapter.HandleError(ConfigError("no config").Build())

	require.Equal(t, 7, code)
	require.Equal(t, "Error: no config\n", out.String())
	require.Contains(t, logs.String(), "category=config")
}

func TestCLIErrorAdapter_HandleErrorQuietForNonFatal(t *testing.T) {
	var out, logs bytes.Buffer
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil)))
	adapter.out = &out
	code := -1
	adapter.exit = func(c int) { code = c }

	adapter.HandleError(ContentError("content has lint errors").Build())

	require.Equal(t, 11, code)
	require.Equal(t, "Error: content has lint errors\n", out.String())
	require.Empty(t, logs.String())
}
