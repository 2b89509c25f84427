package apperrors

import "errors"

// Error taxonomy for the API. Each sentinel maps to exactly one HTTP status
// in middleware.HandleAPIError.
var (
	// ErrNotFound is returned when an entity lookup misses (404)
	ErrNotFound = errors.New("recurso no encontrado")

	// ErrMissingField is returned when a required input field is absent (400)
	ErrMissingField = errors.New("falta un campo obligatorio")

	// ErrInvalidReference is returned when a supplied foreign key points
	// at a row that does not exist (400)
	ErrInvalidReference = errors.New("referencia inválida")

	// ErrConflict is returned on uniqueness violations (409)
	ErrConflict = errors.New("conflicto")

	// ErrUnauthorized is returned on credential mismatch (401)
	ErrUnauthorized = errors.New("no autorizado")

	// ErrInternal is returned on unexpected store or runtime failures (500)
	ErrInternal = errors.New("error interno")
)

// CustomError wraps a sentinel with a user-facing message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "error desconocido"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrNotFound, Message: message}
}

// NewMissingFieldError creates a missing-field error with a message
func NewMissingFieldError(message string) error {
	return &CustomError{Err: ErrMissingField, Message: message}
}

// NewInvalidReferenceError creates an invalid-reference error with a message
func NewInvalidReferenceError(message string) error {
	return &CustomError{Err: ErrInvalidReference, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewUnauthorizedError creates an unauthorized error with a message
func NewUnauthorizedError(message string) error {
	return &CustomError{Err: ErrUnauthorized, Message: message}
}
