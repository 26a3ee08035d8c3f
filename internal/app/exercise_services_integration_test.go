//go:build integration
// +build integration

package app

import (
	"context"
	"errors"
	"testing"

	"exercise_db_service/internal/domain/exercises"
	"exercise_db_service/internal/infrastructure/persistence"
	"exercise_db_service/internal/pkg/config"
	"exercise_db_service/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupExerciseService(t *testing.T) exercises.ExerciseService {
	t.Helper()

	testCtx := persistence.SetupTestDB(t, config.SqliteDbType)
	log := testutil.SetupTestLogger(t)

	service, err := NewExerciseService(testCtx.ExerciseRepo, log)
	require.NoError(t, err)

	return service
}

func TestExerciseService_AddAndGet(t *testing.T) {
	service := setupExerciseService(t)

	exercise := exercises.NewExercise("Squat", nil, []string{"Quadriceps"}, nil, 7)
	require.NoError(t, service.Add(context.Background(), exercise))

	fetched, err := service.Get(context.Background(), exercise.ID)
	require.NoError(t, err)
	assert.Equal(t, exercise.Name, fetched.Name)
	assert.Equal(t, exercise.MuscleGroups, fetched.MuscleGroups)
}

func TestExerciseService_Get_NotFound(t *testing.T) {
	service := setupExerciseService(t)

	_, err := service.Get(context.Background(), uuid.NewString())
	require.Error(t, err)

	var notFound *exercises.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestExerciseService_ListAll(t *testing.T) {
	service := setupExerciseService(t)

	require.NoError(t, service.Add(context.Background(), exercises.NewExercise("Squat", nil, nil, nil, 7)))
	require.NoError(t, service.Add(context.Background(), exercises.NewExercise("Curl", nil, nil, nil, 2)))

	list, err := service.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Curl", list[0].Name)
	assert.Equal(t, "Squat", list[1].Name)
}

func TestExerciseService_Delete(t *testing.T) {
	service := setupExerciseService(t)

	exercise := exercises.NewExercise("Row", nil, nil, nil, 4)
	require.NoError(t, service.Add(context.Background(), exercise))

	deleted, err := service.Delete(context.Background(), exercise.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = service.Delete(context.Background(), exercise.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
