package service

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password;
	// callers must not be able to tell which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken covers bad signatures, malformed tokens and expiry.
	ErrInvalidToken = errors.New("invalid token")
	// ErrForbidden means the caller is authenticated but not the owner.
	ErrForbidden = errors.New("forbidden")
	// ErrUserNotFound is returned when an operation references a user record
	// that does not exist, such as a comment author whose account is gone.
	ErrUserNotFound = errors.New("user not found")
)

// ValidationError reports missing or malformed input. Field is set when a
// single field can be named.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func missingField(name string) *ValidationError {
	return &ValidationError{Field: name, Message: "Missing required field: " + name}
}
