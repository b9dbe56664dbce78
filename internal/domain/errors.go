package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrUnauthenticated indicates the request carries no valid session.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden indicates a valid session lacking permission for the route.
	ErrForbidden = errors.New("forbidden")

	// ErrAlreadyExists indicates a uniqueness conflict on insert.
	ErrAlreadyExists = errors.New("already exists")

	// ErrValidation indicates caller input rejected before any mutation.
	// Wrap with a human-readable detail: fmt.Errorf("%w: ...", ErrValidation).
	ErrValidation = errors.New("validation failed")
)
