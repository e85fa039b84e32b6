package usecase

import "errors"

// HTTPError is the error shape usecases hand back to handlers.
// Fields carries per-field validation messages when present.
type HTTPError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *HTTPError) Error() string {
	return e.Message
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func NewValidationError(status int, message string, fields map[string]string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
		Fields:  fields,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}
