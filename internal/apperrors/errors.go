package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks or broke a business rule.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that an attempt was made to create a resource that already exists.
var ErrConflict = errors.New("resource already exists")

// ErrForbidden indicates an operation that is disallowed regardless of input.
var ErrForbidden = errors.New("operation not allowed")

// ErrInternal indicates an unexpected failure (storage I/O, corrupted state) that
// is not a domain condition and surfaces to callers as an opaque internal error.
var ErrInternal = errors.New("internal error")
