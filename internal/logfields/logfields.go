package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeySection    = "section"
	KeyPage       = "page"
	KeySlug       = "slug"
	KeyQuery      = "query"
	KeyResults    = "results"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyRule       = "rule"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyMethod     = "method"
	KeyStatus     = "status"
	KeyUserAgent  = "user_agent"
	KeyRemoteAddr = "remote_addr"
	KeyRequestID  = "request_id"
	KeyAddr       = "addr"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Section(s string) slog.Attr      { return slog.String(KeySection, s) }
func Page(p string) slog.Attr         { return slog.String(KeyPage, p) }
func Slug(parts []string) slog.Attr   { return slog.Any(KeySlug, parts) }
func Query(q string) slog.Attr        { return slog.String(KeyQuery, q) }
func Results(n int) slog.Attr         { return slog.Int(KeyResults, n) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Rule(r string) slog.Attr         { return slog.String(KeyRule, r) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Method(m string) slog.Attr       { return slog.String(KeyMethod, m) }
func Status(code int) slog.Attr       { return slog.Int(KeyStatus, code) }
func UserAgent(ua string) slog.Attr   { return slog.String(KeyUserAgent, ua) }
func RemoteAddr(a string) slog.Attr   { return slog.String(KeyRemoteAddr, a) }
func RequestID(id string) slog.Attr   { return slog.String(KeyRequestID, id) }
func Addr(a string) slog.Attr         { return slog.String(KeyAddr, a) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
