package entities

import "errors"

// Error kinds shared by the store collaborators and the use cases.
// Use cases wrap them with the offending ids; callers match with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateRelation = errors.New("duplicate relation")
	ErrValidation        = errors.New("validation error")
	ErrDeleteRestricted  = errors.New("delete restricted")
	ErrStorageFailure    = errors.New("storage failure")
)
