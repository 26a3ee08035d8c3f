package exercises

import (
	"context"
)

// ExerciseRepository defines the interface for Exercise-related persistence operations
type ExerciseRepository interface {
	// Create inserts a new Exercise row keyed by its ID.
	// A duplicate id surfaces the unique-key violation as a DatabaseError.
	Create(ctx context.Context, exercise *Exercise) error
	// GetByID retrieves an Exercise by its unique ID.
	// It returns a NotFoundError when no row matches.
	GetByID(ctx context.Context, exerciseID string) (*Exercise, error)
	// List returns every stored Exercise ordered by name ascending.
	// An empty store yields an empty slice, never an error.
	List(ctx context.Context) ([]*Exercise, error)
	// DeleteByID removes the Exercise with the given ID when present.
	// It reports whether a row was removed; absence is not an error.
	DeleteByID(ctx context.Context, exerciseID string) (bool, error)
}

// ExerciseService defines the application-facing operations over the exercise catalog.
type ExerciseService interface {
	// Add persists a new exercise record.
	Add(ctx context.Context, exercise *Exercise) error

	// Get retrieves a single exercise by id.
	// It returns a NotFoundError when the id is absent.
	Get(ctx context.Context, exerciseID string) (*Exercise, error)

	// ListAll retrieves every stored exercise ordered by name ascending.
	ListAll(ctx context.Context) ([]*Exercise, error)

	// Delete removes an exercise by id and reports whether a row was removed.
	Delete(ctx context.Context, exerciseID string) (bool, error)
}
