package errors

// ErrorCategory routes an error to an HTTP status and a CLI exit code.
type ErrorCategory string

const (
	// User input and configuration.
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"
	CategoryNotFound   ErrorCategory = "not_found"

	// Reading and presenting content.
	CategoryContent    ErrorCategory = "content"
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryRender     ErrorCategory = "render"
	CategoryHistory    ErrorCategory = "history"

	// Process level.
	CategoryRuntime  ErrorCategory = "runtime"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity decides how loudly an error is logged.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // the process cannot continue
	SeverityError   ErrorSeverity = "error"   // the current operation failed
	SeverityWarning ErrorSeverity = "warning" // degraded result
	SeverityInfo    ErrorSeverity = "info"    // expected outcome, e.g. an unknown page
)

// ErrorContext carries structured details; it is exposed in HTTP error bodies.
type ErrorContext map[string]any

// with returns a copy of c with key set, leaving c untouched.
func (c ErrorContext) with(key string, value any) ErrorContext {
	out := make(ErrorContext, len(c)+1)
	for k, v := range c {
		out[k] = v
	}
	out[key] = value
	return out
}
