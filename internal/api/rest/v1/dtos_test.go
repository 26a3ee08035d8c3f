//go:build unit
// +build unit

package v1

import (
	"fmt"
	"net/http"
	"testing"

	"exercise_db_service/internal/domain/exercises"

	"github.com/stretchr/testify/assert"
)

func TestNewErrorResponse_KindMapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedKind   string
	}{
		{
			name:           "not found",
			err:            &exercises.NotFoundError{ID: "abc"},
			expectedStatus: http.StatusNotFound,
			expectedKind:   ErrorKindNotFound,
		},
		{
			name:           "invalid input",
			err:            &exercises.InvalidInputError{Message: "bad"},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   ErrorKindInvalidInput,
		},
		{
			name:           "pool exhaustion",
			err:            &exercises.PoolError{Message: "exhausted"},
			expectedStatus: http.StatusServiceUnavailable,
			expectedKind:   ErrorKindPool,
		},
		{
			name:           "database failure",
			err:            &exercises.DatabaseError{Message: "disk I/O error"},
			expectedStatus: http.StatusInternalServerError,
			expectedKind:   ErrorKindDatabase,
		},
		{
			name:           "wrapped error keeps its kind",
			err:            fmt.Errorf("get exercise: %w", &exercises.NotFoundError{ID: "abc"}),
			expectedStatus: http.StatusNotFound,
			expectedKind:   ErrorKindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, response := NewErrorResponse(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedKind, response.Kind)
			assert.NotEmpty(t, response.Message)
		})
	}
}

func TestAddExerciseRequest_ToDomain_GeneratesID(t *testing.T) {
	request := &AddExerciseRequest{Name: "Squat", DifficultyLevel: 7}

	exercise := request.ToDomain()
	assert.NotEmpty(t, exercise.ID)
	assert.Equal(t, uint8(7), exercise.DifficultyLevel)
}

func TestNewExerciseResponse_NilMuscleGroups(t *testing.T) {
	exercise := exercises.NewExerciseWithID("a", "Squat", nil, nil, nil, 7)

	response := NewExerciseResponse(exercise)
	assert.NotNil(t, response.MuscleGroups)
	assert.Empty(t, response.MuscleGroups)
}
