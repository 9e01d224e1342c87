// internal/services/errors.go
package services

import "errors"

// Error taxonomy surfaced to the HTTP layer. Services wrap these with
// context via fmt.Errorf("...: %w", ...) and handlers dispatch on
// errors.Is.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
	ErrInvalid  = errors.New("invalid request")
)
