package utils

// APIError carries the HTTP status a failure should be rendered with. Handlers
// and services return it; the fiber error handler turns it into the envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

func NewAPIError(status int, msg string) *APIError {
	return &APIError{StatusCode: status, Message: msg}
}

// BadRequest reports malformed identifiers and blank required fields.
func BadRequest(msg string) *APIError { return NewAPIError(400, msg) }

// NotFound reports both "does not exist" and "exists but not yours". The two
// cases are deliberately indistinguishable to the caller.
func NotFound(msg string) *APIError { return NewAPIError(404, msg) }

// Unauthorized reports a missing or invalid token.
func Unauthorized(msg string) *APIError { return NewAPIError(401, msg) }

// Forbidden reports the absence of an authenticated actor.
func Forbidden(msg string) *APIError { return NewAPIError(403, msg) }

// Internal reports database and media-store failures.
func Internal(msg string) *APIError { return NewAPIError(500, msg) }
