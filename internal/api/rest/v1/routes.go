package v1

import (
	"exercise_db_service/internal/domain/exercises"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, exerciseService exercises.ExerciseService) {
	v1 := r.Group(BasePath)

	exerciseHandler := NewExerciseHandler(exerciseService)
	v1.POST("/exercises", exerciseHandler.Add)
	v1.GET("/exercises", exerciseHandler.List)
	v1.GET("/exercises/:id", exerciseHandler.GetByID)
	v1.DELETE("/exercises/:id", exerciseHandler.DeleteByID)
}
