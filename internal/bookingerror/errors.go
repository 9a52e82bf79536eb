// Package bookingerror defines the typed errors shared by the record store,
// catalog, directory and booking engine.
package bookingerror

import "fmt"

// NotFoundError indicates that a backing resource (CSV or YAML file) is absent.
// Callers decide the fallback: an empty catalog, a bootstrap admin, etc.
type NotFoundError struct {
	Resource string
	Err      error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// MalformedRowError indicates that a required numeric field in a row could not
// be parsed. The offending row is excluded; the rest of the catalog survives.
type MalformedRowError struct {
	Resource string
	Line     int
	Field    string
	Value    string
	Err      error
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("%s: malformed row %d: failed to parse %s='%s': %v",
		e.Resource, e.Line, e.Field, e.Value, e.Err)
}

func (e *MalformedRowError) Unwrap() error {
	return e.Err
}

// DuplicateUserError indicates a registration attempt with an already-taken ID.
type DuplicateUserError struct {
	UserID string
}

func (e *DuplicateUserError) Error() string {
	return fmt.Sprintf("user ID already exists: %s", e.UserID)
}

// InvalidCredentialsError indicates a failed authentication attempt. The
// message deliberately does not reveal whether the user exists.
type InvalidCredentialsError struct {
	UserID string
}

func (e *InvalidCredentialsError) Error() string {
	return fmt.Sprintf("invalid credentials for user %s", e.UserID)
}

// InsufficientCapacityError indicates a reservation request exceeding the
// remaining seats or rooms on an offering. Capacity is left unchanged.
type InsufficientCapacityError struct {
	OfferingID string
	Requested  int
	Available  int
}

func (e *InsufficientCapacityError) Error() string {
	return fmt.Sprintf("insufficient capacity on %s: requested %d, available %d",
		e.OfferingID, e.Requested, e.Available)
}

// OutOfRangeError indicates an administrative row index outside [0, Count).
type OutOfRangeError struct {
	Index int
	Count int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("row index %d out of range [0, %d)", e.Index, e.Count)
}
