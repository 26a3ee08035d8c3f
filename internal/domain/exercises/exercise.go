package exercises

import (
	"github.com/google/uuid"
)

// Difficulty level bounds on a 1-10 scale
const (
	MinDifficultyLevel uint8 = 1
	MaxDifficultyLevel uint8 = 10
)

// Exercise entity
type Exercise struct {
	ID              string
	Name            string
	Description     *string
	MuscleGroups    []string
	EquipmentNeeded *string
	DifficultyLevel uint8
}

// NewExercise creates an exercise with a generated UUID. The difficulty level is
// clamped into the valid band rather than rejected; no other field is validated.
func NewExercise(name string, description *string, muscleGroups []string, equipmentNeeded *string, difficultyLevel uint8) *Exercise {
	return NewExerciseWithID(uuid.NewString(), name, description, muscleGroups, equipmentNeeded, difficultyLevel)
}

// NewExerciseWithID creates an exercise with a caller-supplied id.
func NewExerciseWithID(id, name string, description *string, muscleGroups []string, equipmentNeeded *string, difficultyLevel uint8) *Exercise {
	return &Exercise{
		ID:              id,
		Name:            name,
		Description:     description,
		MuscleGroups:    muscleGroups,
		EquipmentNeeded: equipmentNeeded,
		DifficultyLevel: clampDifficulty(difficultyLevel),
	}
}

func clampDifficulty(level uint8) uint8 {
	if level < MinDifficultyLevel {
		return MinDifficultyLevel
	}
	if level > MaxDifficultyLevel {
		return MaxDifficultyLevel
	}
	return level
}
