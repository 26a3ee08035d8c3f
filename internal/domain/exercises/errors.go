package exercises

import (
	"fmt"
)

// The persistence layer surfaces failures as one of the closed set of error types
// below so callers can branch on kind with errors.As instead of matching strings.

// DatabaseError reports an unexpected failure from the storage engine: I/O errors,
// constraint violations or a malformed encoding on read-back. It is never retried
// internally; the message is surfaced verbatim to the caller.
type DatabaseError struct {
	Message string
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("Database error: %s", e.Message)
}

// NotFoundError reports absence of an exercise on point lookup by id. This is an
// expected outcome for ids that were never added or already deleted, not a fault.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Exercise not found with id: %s", e.ID)
}

// InvalidInputError reports input that could not be processed, such as a field
// that fails to serialize for storage.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("Invalid input: %s", e.Message)
}

// PoolError reports a connection-pool acquisition failure. It is kept distinct from
// DatabaseError so callers can apply a different backoff or retry policy.
type PoolError struct {
	Message string
}

func (e *PoolError) Error() string {
	return fmt.Sprintf("Connection pool error: %s", e.Message)
}
