package apperror

// FieldError describes one invalid field in a request payload.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// AppError is a custom error type that includes an HTTP status code and optional field-level messages.
type AppError struct {
	Code     int          // HTTP Status Code (e.g., 400, 404)
	Message  string       // User-facing error message
	Messages []FieldError // Optional per-field messages rendered as errorMessages
	Err      error        // The underlying error, if any (not exposed to user in production)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError with the same code and message,
// so copies produced by WithFields/WithCause still match their sentinel
// through errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code && t.Message == e.Message
}

// New creates a new AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithFields returns a copy of e carrying field-level messages.
// Shared sentinel errors stay untouched.
func (e *AppError) WithFields(fields ...FieldError) *AppError {
	return &AppError{
		Code:     e.Code,
		Message:  e.Message,
		Messages: fields,
		Err:      e.Err,
	}
}

// WithCause returns a copy of e wrapping the given underlying error.
func (e *AppError) WithCause(err error) *AppError {
	return &AppError{
		Code:     e.Code,
		Message:  e.Message,
		Messages: e.Messages,
		Err:      err,
	}
}
