//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"

	"exercise_db_service/internal/domain/exercises"
	"exercise_db_service/internal/pkg/config"
	"exercise_db_service/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds the test database and repository
type TestContext struct {
	DB           *gorm.DB
	ExerciseRepo exercises.ExerciseRepository
}

// SetupTestDB initializes a test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  NewInMemoryDSN(),
		}
		cleanupFunc = func() {
			// In-memory store vanishes with the pool
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	err = MigrateSchema(db)
	require.NoError(t, err, "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)

	exerciseRepo, err := NewGormExerciseRepository(db, log)
	require.NoError(t, err, "Failed to create exercise repository")

	return &TestContext{
		DB:           db,
		ExerciseRepo: exerciseRepo,
	}
}

// CreateTestExercise creates a test exercise with default values
func CreateTestExercise(t *testing.T, name string) *exercises.Exercise {
	t.Helper()

	description := "compound movement"
	equipment := "Barbell"

	return exercises.NewExerciseWithID(
		uuid.NewString(),
		name,
		&description,
		[]string{"Quadriceps", "Glutes"},
		&equipment,
		7,
	)
}
