package v1

import (
	"errors"
	"net/http"

	"exercise_db_service/internal/domain/exercises"
)

// Error kind identifiers carried in error responses so binding targets can branch
// on kind without parsing messages.
const (
	ErrorKindDatabase     = "database_error"
	ErrorKindNotFound     = "exercise_not_found"
	ErrorKindInvalidInput = "invalid_input"
	ErrorKindPool         = "pool_error"
)

// AddExerciseRequest represents the payload for creating an exercise.
// The id is optional; one is generated when absent.
type AddExerciseRequest struct {
	ID              *string  `json:"id,omitempty"`
	Name            string   `json:"name"`
	Description     *string  `json:"description,omitempty"`
	MuscleGroups    []string `json:"muscle_groups"`
	EquipmentNeeded *string  `json:"equipment_needed,omitempty"`
	DifficultyLevel uint8    `json:"difficulty_level"`
}

// ToDomain builds the domain entity, generating an id when none was supplied.
// Difficulty normalization happens in the domain constructor.
func (r *AddExerciseRequest) ToDomain() *exercises.Exercise {
	if r.ID != nil && *r.ID != "" {
		return exercises.NewExerciseWithID(*r.ID, r.Name, r.Description, r.MuscleGroups, r.EquipmentNeeded, r.DifficultyLevel)
	}
	return exercises.NewExercise(r.Name, r.Description, r.MuscleGroups, r.EquipmentNeeded, r.DifficultyLevel)
}

// ExerciseResponse is the interchange shape for a stored exercise
type ExerciseResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     *string  `json:"description,omitempty"`
	MuscleGroups    []string `json:"muscle_groups"`
	EquipmentNeeded *string  `json:"equipment_needed,omitempty"`
	DifficultyLevel uint8    `json:"difficulty_level"`
}

// NewExerciseResponse maps a domain entity onto the interchange shape
func NewExerciseResponse(e *exercises.Exercise) ExerciseResponse {
	muscleGroups := e.MuscleGroups
	if muscleGroups == nil {
		muscleGroups = []string{}
	}
	return ExerciseResponse{
		ID:              e.ID,
		Name:            e.Name,
		Description:     e.Description,
		MuscleGroups:    muscleGroups,
		EquipmentNeeded: e.EquipmentNeeded,
		DifficultyLevel: e.DifficultyLevel,
	}
}

// DeleteExerciseResponse reports whether a row was removed
type DeleteExerciseResponse struct {
	Deleted bool `json:"deleted"`
}

// ErrorResponse carries the error kind and a user-facing message
type ErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// NewErrorResponse maps a domain error onto an HTTP status and response body.
// Unclassified failures are treated as database errors.
func NewErrorResponse(err error) (int, ErrorResponse) {
	var notFound *exercises.NotFoundError
	var invalid *exercises.InvalidInputError
	var poolErr *exercises.PoolError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, ErrorResponse{Kind: ErrorKindNotFound, Message: notFound.Error()}
	case errors.As(err, &invalid):
		return http.StatusBadRequest, ErrorResponse{Kind: ErrorKindInvalidInput, Message: invalid.Error()}
	case errors.As(err, &poolErr):
		return http.StatusServiceUnavailable, ErrorResponse{Kind: ErrorKindPool, Message: poolErr.Error()}
	default:
		return http.StatusInternalServerError, ErrorResponse{Kind: ErrorKindDatabase, Message: err.Error()}
	}
}
