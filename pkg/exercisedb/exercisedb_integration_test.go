//go:build integration
// +build integration

package exercisedb_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"exercise_db_service/pkg/exercisedb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeLogging_Idempotent(t *testing.T) {
	require.NoError(t, exercisedb.InitializeLogging())
	require.NoError(t, exercisedb.InitializeLogging())
}

func TestNewExercise_GeneratesIDAndClamps(t *testing.T) {
	equipment := "Dumbbell"
	exercise := exercisedb.NewExercise("Curl", nil, []string{"Biceps"}, &equipment, 15)

	assert.NotEmpty(t, exercise.ID)
	assert.Equal(t, exercisedb.MaxDifficultyLevel, exercise.DifficultyLevel)

	exercise = exercisedb.NewExercise("Plank", nil, nil, nil, 0)
	assert.Equal(t, exercisedb.MinDifficultyLevel, exercise.DifficultyLevel)
}

func TestInMemoryRepository_CRUD(t *testing.T) {
	repo, err := exercisedb.NewInMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	description := "Compound leg exercise"
	equipment := "Barbell"
	exercise := exercisedb.NewExerciseWithID(
		"test-123",
		"Squat",
		&description,
		[]string{"Quadriceps", "Glutes"},
		&equipment,
		7,
	)

	require.NoError(t, repo.AddExercise(context.Background(), exercise))

	retrieved, err := repo.GetExercise(context.Background(), "test-123")
	require.NoError(t, err)
	assert.Equal(t, exercise, retrieved)

	all, err := repo.GetAllExercises(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, exercise, all[0])

	deleted, err := repo.DeleteExercise(context.Background(), "test-123")
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.GetExercise(context.Background(), "test-123")
	var notFound *exercisedb.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "test-123", notFound.ID)
}

func TestInMemoryRepository_ClampAndOrdering(t *testing.T) {
	repo, err := exercisedb.NewInMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	// Difficulty 15 clamps to 10, 0 clamps to 1.
	squat := exercisedb.NewExerciseWithID("a", "Squat", nil, nil, nil, 15)
	curl := exercisedb.NewExerciseWithID("b", "Curl", nil, nil, nil, 0)

	require.NoError(t, repo.AddExercise(context.Background(), squat))
	require.NoError(t, repo.AddExercise(context.Background(), curl))

	stored, err := repo.GetExercise(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, uint8(10), stored.DifficultyLevel)

	stored, err = repo.GetExercise(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, uint8(1), stored.DifficultyLevel)

	all, err := repo.GetAllExercises(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Curl", all[0].Name)
	assert.Equal(t, "Squat", all[1].Name)
}

func TestInMemoryRepository_HandlesAreIsolated(t *testing.T) {
	repo1, err := exercisedb.NewInMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo1.Close() })

	repo2, err := exercisedb.NewInMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo2.Close() })

	require.NoError(t, repo1.AddExercise(context.Background(),
		exercisedb.NewExerciseWithID("only-in-1", "Squat", nil, nil, nil, 7)))

	all, err := repo2.GetAllExercises(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFileRepository_RetainsRowsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "exercises.db")

	repo, err := exercisedb.NewRepository(dbPath)
	require.NoError(t, err)

	exercise := exercisedb.NewExerciseWithID(
		"ex1",
		"Bench Press",
		nil,
		[]string{"Chest", "Triceps", "Shoulders"},
		nil,
		6,
	)
	require.NoError(t, repo.AddExercise(context.Background(), exercise))
	require.NoError(t, repo.Close())

	// Re-create the handle against the same path, simulating an app restart.
	repo, err = exercisedb.NewRepository(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	retrieved, err := repo.GetExercise(context.Background(), "ex1")
	require.NoError(t, err)
	assert.Equal(t, exercise, retrieved)
}

func TestRepository_ConcurrentAdds(t *testing.T) {
	repo, err := exercisedb.NewInMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []string{"a", "b"} {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			errs[i] = repo.AddExercise(context.Background(),
				exercisedb.NewExerciseWithID(id, "Exercise-"+id, nil, nil, nil, 5))
		}(i, id)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	all, err := repo.GetAllExercises(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRepository_DuplicateAdd(t *testing.T) {
	repo, err := exercisedb.NewInMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	exercise := exercisedb.NewExerciseWithID("dup", "Squat", nil, nil, nil, 7)
	require.NoError(t, repo.AddExercise(context.Background(), exercise))

	err = repo.AddExercise(context.Background(), exercise)
	require.Error(t, err)

	var dbErr *exercisedb.DatabaseError
	assert.True(t, errors.As(err, &dbErr))
}
