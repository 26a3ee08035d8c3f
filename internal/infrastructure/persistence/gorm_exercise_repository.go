package persistence

import (
	"context"
	"errors"

	"exercise_db_service/internal/domain/exercises"
	"exercise_db_service/internal/infrastructure/persistence/models"
	"exercise_db_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormExerciseRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormExerciseRepository creates a new GORM-based ExerciseRepository implementation.
// The repository owns no state beyond the pooled connection handle; it is safe for
// concurrent callers.
func NewGormExerciseRepository(db *gorm.DB, logger logger.Logger) (exercises.ExerciseRepository, error) {
	return &gormExerciseRepository{
		db:     db,
		logger: logger,
	}, nil
}

// MigrateSchema ensures the exercise table exists. It is idempotent and safe to run
// on every repository creation against the same backing store.
func MigrateSchema(db *gorm.DB) error {
	return db.AutoMigrate(&models.ExerciseModel{})
}

// withConnection pins one pooled connection for the duration of fn and returns it to
// the pool on every exit path. Acquisition failures surface as PoolError so callers
// can tell resource exhaustion apart from query failures.
func (r *gormExerciseRepository) withConnection(ctx context.Context, fn func(tx *gorm.DB) error) error {
	acquired := false
	err := r.db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		acquired = true
		return fn(tx)
	})
	if err != nil && !acquired {
		return &exercises.PoolError{Message: err.Error()}
	}
	return err
}

func (r *gormExerciseRepository) Create(ctx context.Context, exercise *exercises.Exercise) error {
	model := &models.ExerciseModel{}
	if err := model.FromDomain(exercise); err != nil {
		return &exercises.InvalidInputError{Message: err.Error()}
	}

	err := r.withConnection(ctx, func(tx *gorm.DB) error {
		// A duplicate id hits the primary-key constraint and surfaces as a
		// DatabaseError like any other engine failure.
		if err := tx.Create(model).Error; err != nil {
			return &exercises.DatabaseError{Message: err.Error()}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Created exercise with id ", exercise.ID)
	return nil
}

func (r *gormExerciseRepository) GetByID(ctx context.Context, exerciseID string) (*exercises.Exercise, error) {
	var exercise *exercises.Exercise

	err := r.withConnection(ctx, func(tx *gorm.DB) error {
		var model models.ExerciseModel
		if err := tx.Where("id = ?", exerciseID).First(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &exercises.NotFoundError{ID: exerciseID}
			}
			return &exercises.DatabaseError{Message: err.Error()}
		}

		var convErr error
		exercise, convErr = model.ToDomain()
		if convErr != nil {
			return &exercises.DatabaseError{Message: convErr.Error()}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return exercise, nil
}

func (r *gormExerciseRepository) List(ctx context.Context) ([]*exercises.Exercise, error) {
	// SQLite's default BINARY collation gives the locale-independent byte ordering
	// callers rely on.
	list := []*exercises.Exercise{}

	err := r.withConnection(ctx, func(tx *gorm.DB) error {
		var modelList []*models.ExerciseModel
		if err := tx.Model(&models.ExerciseModel{}).Order("name asc").Find(&modelList).Error; err != nil {
			return &exercises.DatabaseError{Message: err.Error()}
		}

		for _, model := range modelList {
			exercise, err := model.ToDomain()
			if err != nil {
				return &exercises.DatabaseError{Message: err.Error()}
			}
			list = append(list, exercise)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *gormExerciseRepository) DeleteByID(ctx context.Context, exerciseID string) (bool, error) {
	deleted := false

	err := r.withConnection(ctx, func(tx *gorm.DB) error {
		result := tx.Where("id = ?", exerciseID).Delete(&models.ExerciseModel{})
		if result.Error != nil {
			return &exercises.DatabaseError{Message: result.Error.Error()}
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}

	if deleted {
		r.logger.Info("Deleted exercise with id ", exerciseID)
	}
	return deleted, nil
}
