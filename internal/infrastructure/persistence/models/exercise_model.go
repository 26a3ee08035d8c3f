package models

import (
	"encoding/json"
	"fmt"

	"exercise_db_service/internal/domain/exercises"
)

// ExerciseModel is the GORM database model for exercises (infrastructure concern).
// The ordered muscle-group list is stored as a JSON array in a single text column.
type ExerciseModel struct {
	ID              string  `gorm:"primaryKey;type:text"`
	Name            string  `gorm:"not null;type:text"`
	Description     *string `gorm:"type:text"`
	MuscleGroups    string  `gorm:"not null;type:text"`
	EquipmentNeeded *string `gorm:"type:text"`
	DifficultyLevel uint8   `gorm:"not null;type:integer"`
}

// TableName specifies the table name for GORM
func (ExerciseModel) TableName() string {
	return "exercises"
}

// ToDomain converts the GORM model to a domain entity, decoding the muscle-group
// column. The stored difficulty was clamped at construction time and is taken as-is.
func (m *ExerciseModel) ToDomain() (*exercises.Exercise, error) {
	var muscleGroups []string
	if err := json.Unmarshal([]byte(m.MuscleGroups), &muscleGroups); err != nil {
		return nil, fmt.Errorf("failed to decode muscle groups for exercise %s: %w", m.ID, err)
	}

	return &exercises.Exercise{
		ID:              m.ID,
		Name:            m.Name,
		Description:     m.Description,
		MuscleGroups:    muscleGroups,
		EquipmentNeeded: m.EquipmentNeeded,
		DifficultyLevel: m.DifficultyLevel,
	}, nil
}

// FromDomain converts a domain entity to the GORM model, encoding the muscle-group
// list as a compact JSON array.
func (m *ExerciseModel) FromDomain(e *exercises.Exercise) error {
	muscleGroups, err := json.Marshal(e.MuscleGroups)
	if err != nil {
		return fmt.Errorf("failed to encode muscle groups: %w", err)
	}

	m.ID = e.ID
	m.Name = e.Name
	m.Description = e.Description
	m.MuscleGroups = string(muscleGroups)
	m.EquipmentNeeded = e.EquipmentNeeded
	m.DifficultyLevel = e.DifficultyLevel
	return nil
}
