package errors

// ErrorBuilder assembles a ClassifiedError.
type ErrorBuilder struct {
	err ClassifiedError
}

// NewError starts an error of the given category at error severity.
func NewError(category ErrorCategory, message string) *ErrorBuilder {
	return &ErrorBuilder{err: ClassifiedError{
		category: category,
		severity: SeverityError,
		message:  message,
	}}
}

// WrapError is NewError with cause attached.
func WrapError(cause error, category ErrorCategory, message string) *ErrorBuilder {
	return NewError(category, message).WithCause(cause)
}

func (b *ErrorBuilder) WithSeverity(severity ErrorSeverity) *ErrorBuilder {
	b.err.severity = severity
	return b
}

func (b *ErrorBuilder) WithCause(cause error) *ErrorBuilder {
	b.err.cause = cause
	return b
}

func (b *ErrorBuilder) WithContext(key string, value any) *ErrorBuilder {
	b.err.context = b.err.context.with(key, value)
	return b
}

// Fatal marks the error as stopping the process.
func (b *ErrorBuilder) Fatal() *ErrorBuilder {
	return b.WithSeverity(SeverityFatal)
}

// Build returns the error. The builder may be reused; later calls do not
// affect errors already built.
func (b *ErrorBuilder) Build() *ClassifiedError {
	e := b.err
	return &e
}

// ConfigError reports an unusable configuration.
func ConfigError(message string) *ErrorBuilder {
	return NewError(CategoryConfig, message).Fatal()
}

// ValidationError reports bad user input.
func ValidationError(message string) *ErrorBuilder {
	return NewError(CategoryValidation, message)
}

// NotFoundError reports a slug or route that does not resolve. It is an
// expected outcome, so it logs at info.
func NotFoundError(message string) *ErrorBuilder {
	return NewError(CategoryNotFound, message).WithSeverity(SeverityInfo)
}

// ContentError reports content that is readable but wrong. The pipeline
// still serves it with defaults, hence warning severity.
func ContentError(message string) *ErrorBuilder {
	return NewError(CategoryContent, message).WithSeverity(SeverityWarning)
}

func FileSystemError(message string) *ErrorBuilder {
	return NewError(CategoryFileSystem, message)
}

func RenderError(message string) *ErrorBuilder {
	return NewError(CategoryRender, message)
}

// RuntimeError reports a failure of the process environment, such as a port in use.
func RuntimeError(message string) *ErrorBuilder {
	return NewError(CategoryRuntime, message).Fatal()
}

func InternalError(message string) *ErrorBuilder {
	return NewError(CategoryInternal, message).Fatal()
}
