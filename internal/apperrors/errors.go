package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNoEligibleProduct indicates that no catalog product accepts the
// requested amount/term combination. Business outcome, not a system fault.
var ErrNoEligibleProduct = errors.New("no eligible product for the requested parameters")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrStoreUnavailable indicates a persistence fault. It is passed through to
// the caller unmodified; no retries happen below the handler layer.
var ErrStoreUnavailable = errors.New("store unavailable")
