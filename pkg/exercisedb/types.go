package exercisedb

import (
	"exercise_db_service/internal/domain/exercises"
)

// Re-exports of the domain entity and error kinds. Consumers outside this module
// cannot import internal packages, so the public surface aliases them here; the
// aliases are identical types, so errors.As matches either name.

// Exercise is the stored entity.
type Exercise = exercises.Exercise

// Difficulty level bounds on a 1-10 scale
const (
	MinDifficultyLevel = exercises.MinDifficultyLevel
	MaxDifficultyLevel = exercises.MaxDifficultyLevel
)

// Error kinds surfaced by Repository operations.
type (
	DatabaseError     = exercises.DatabaseError
	NotFoundError     = exercises.NotFoundError
	InvalidInputError = exercises.InvalidInputError
	PoolError         = exercises.PoolError
)

// NewExercise creates an exercise with a generated UUID. The difficulty level is
// clamped into the valid band rather than rejected.
func NewExercise(name string, description *string, muscleGroups []string, equipmentNeeded *string, difficultyLevel uint8) *Exercise {
	return exercises.NewExercise(name, description, muscleGroups, equipmentNeeded, difficultyLevel)
}

// NewExerciseWithID creates an exercise with a caller-supplied id.
func NewExerciseWithID(id, name string, description *string, muscleGroups []string, equipmentNeeded *string, difficultyLevel uint8) *Exercise {
	return exercises.NewExerciseWithID(id, name, description, muscleGroups, equipmentNeeded, difficultyLevel)
}
