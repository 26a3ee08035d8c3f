// Package exercisedb is the embedding surface consumed by the mobile bindings and
// demo applications. It bundles a pooled SQLite-backed exercise repository behind
// factory entry points for file-backed and in-memory stores.
package exercisedb

import (
	"context"

	"exercise_db_service/internal/domain/exercises"
	"exercise_db_service/internal/infrastructure/persistence"
	"exercise_db_service/internal/pkg/config"
	"exercise_db_service/internal/pkg/logger"

	"gorm.io/gorm"
)

// Repository is a handle on one backing store. All operations against one handle
// target the same store; the connection pool is owned by the handle, so separate
// handles stay fully isolated. Safe for concurrent callers.
type Repository struct {
	db   *gorm.DB
	repo exercises.ExerciseRepository
}

// InitializeLogging sets up process-wide diagnostic logging. It is idempotent and
// safe to call from every binding target.
func InitializeLogging() error {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}
	return logger.InitLogger(settings)
}

// NewRepository opens or creates a file-backed exercise database at path and ensures
// the schema exists. Setup failures surface as a DatabaseError.
func NewRepository(path string) (*Repository, error) {
	return newRepository(persistence.FileDSN(path))
}

// NewInMemoryRepository creates a repository over a transient in-memory store scoped
// to the returned handle. The store vanishes when the handle is closed or dropped.
func NewInMemoryRepository() (*Repository, error) {
	return newRepository(persistence.NewInMemoryDSN())
}

func newRepository(dsn string) (*Repository, error) {
	if err := InitializeLogging(); err != nil {
		return nil, &DatabaseError{Message: err.Error()}
	}
	log, err := logger.GetLogger()
	if err != nil {
		return nil, &DatabaseError{Message: err.Error()}
	}

	db, err := persistence.NewDBConnection(config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  dsn,
	})
	if err != nil {
		return nil, &DatabaseError{Message: err.Error()}
	}

	if err := persistence.MigrateSchema(db); err != nil {
		_ = persistence.CloseDB(db)
		return nil, &DatabaseError{Message: err.Error()}
	}

	repo, err := persistence.NewGormExerciseRepository(db, log)
	if err != nil {
		_ = persistence.CloseDB(db)
		return nil, &DatabaseError{Message: err.Error()}
	}

	return &Repository{db: db, repo: repo}, nil
}

// AddExercise persists a new exercise record. A duplicate id surfaces as a
// DatabaseError.
func (r *Repository) AddExercise(ctx context.Context, exercise *Exercise) error {
	return r.repo.Create(ctx, exercise)
}

// GetExercise retrieves an exercise by id. A missing id yields a NotFoundError,
// which callers handle as a normal branch.
func (r *Repository) GetExercise(ctx context.Context, exerciseID string) (*Exercise, error) {
	return r.repo.GetByID(ctx, exerciseID)
}

// GetAllExercises returns every stored exercise ordered by name ascending.
func (r *Repository) GetAllExercises(ctx context.Context) ([]*Exercise, error) {
	return r.repo.List(ctx)
}

// DeleteExercise removes an exercise by id and reports whether a row was removed.
// Absence yields false, not an error.
func (r *Repository) DeleteExercise(ctx context.Context, exerciseID string) (bool, error) {
	return r.repo.DeleteByID(ctx, exerciseID)
}

// Close releases the underlying connection pool. For in-memory stores this discards
// all data.
func (r *Repository) Close() error {
	return persistence.CloseDB(r.db)
}
