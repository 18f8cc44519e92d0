package models

// Typed errors returned by the service layer. Controllers translate them
// into HTTP statuses; every response body carries a single human-readable
// message field and nothing else.

// ValidationError reports a missing or malformed request field (400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError creates a ValidationError with the given message
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// ConflictError reports a double booking (400).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NewConflictError creates a ConflictError with the given message
func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// NotFoundError reports an unknown entity id (404).
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NewNotFoundError creates a NotFoundError with the given message
func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// AuthError reports bad credentials (401).
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// NewAuthError creates an AuthError with the given message
func NewAuthError(message string) *AuthError {
	return &AuthError{Message: message}
}
