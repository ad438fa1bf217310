package domain

import "errors"

// Common domain errors returned by repositories. Usecases translate these
// into apperror values with caller-facing messages.
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("duplicate resource")
)
