//go:build unit
// +build unit

package v1

import (
	"context"

	"exercise_db_service/internal/domain/exercises"

	"github.com/stretchr/testify/mock"
)

// MockExerciseService is a mock implementation of ExerciseService
type MockExerciseService struct {
	mock.Mock
}

func (m *MockExerciseService) Add(ctx context.Context, exercise *exercises.Exercise) error {
	args := m.Called(ctx, exercise)
	return args.Error(0)
}

func (m *MockExerciseService) Get(ctx context.Context, exerciseID string) (*exercises.Exercise, error) {
	args := m.Called(ctx, exerciseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*exercises.Exercise), args.Error(1)
}

func (m *MockExerciseService) ListAll(ctx context.Context) ([]*exercises.Exercise, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*exercises.Exercise), args.Error(1)
}

func (m *MockExerciseService) Delete(ctx context.Context, exerciseID string) (bool, error) {
	args := m.Called(ctx, exerciseID)
	return args.Bool(0), args.Error(1)
}
