package app

import (
	"context"

	"exercise_db_service/internal/domain/exercises"
	"exercise_db_service/internal/pkg/logger"
)

// exerciseService implements the ExerciseService interface over an ExerciseRepository
type exerciseService struct {
	exerciseRepo exercises.ExerciseRepository
	logger       logger.Logger
}

// NewExerciseService creates a new exerciseService instance
func NewExerciseService(exerciseRepo exercises.ExerciseRepository, logger logger.Logger) (exercises.ExerciseService, error) {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		logger:       logger,
	}, nil
}

// Add persists a new exercise record. Failures propagate to the caller untouched;
// no retry policy is applied here.
func (s *exerciseService) Add(ctx context.Context, exercise *exercises.Exercise) error {
	return s.exerciseRepo.Create(ctx, exercise)
}

// Get retrieves a single exercise by id. A NotFoundError is a normal outcome for
// absent ids and is returned as-is for callers to branch on.
func (s *exerciseService) Get(ctx context.Context, exerciseID string) (*exercises.Exercise, error) {
	return s.exerciseRepo.GetByID(ctx, exerciseID)
}

// ListAll retrieves every stored exercise ordered by name ascending.
func (s *exerciseService) ListAll(ctx context.Context) ([]*exercises.Exercise, error) {
	return s.exerciseRepo.List(ctx)
}

// Delete removes an exercise by id and reports whether a row was removed.
func (s *exerciseService) Delete(ctx context.Context, exerciseID string) (bool, error) {
	deleted, err := s.exerciseRepo.DeleteByID(ctx, exerciseID)
	if err != nil {
		return false, err
	}
	if !deleted {
		s.logger.Debug("No exercise to delete for id ", exerciseID)
	}
	return deleted, nil
}
