package reconcile

import "errors"

var (
	// ErrNotFound is returned when no group exists for a reference.
	ErrNotFound = errors.New("reconcile: not found")

	// ErrNilGroup is returned when the caller attempts to persist a nil group.
	ErrNilGroup = errors.New("reconcile: nil group")

	// ErrInvalidParty is returned for an empty party name.
	ErrInvalidParty = errors.New("reconcile: invalid party")

	// ErrInvalidExpected is returned when a group would expect no party.
	ErrInvalidExpected = errors.New("reconcile: expected parties must be positive")

	// ErrNoContent is returned when absent content is reported.
	ErrNoContent = errors.New("reconcile: no content")
)
