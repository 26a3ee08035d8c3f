package v1

import (
	"fmt"
	"net/http"

	"exercise_db_service/internal/domain/exercises"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler defines the interface for handling exercise-related requests
type ExerciseHandler interface {
	Add(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// exerciseHandler struct holds the services
type exerciseHandler struct {
	exerciseService exercises.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler
func NewExerciseHandler(exerciseService exercises.ExerciseService) ExerciseHandler {
	return &exerciseHandler{
		exerciseService: exerciseService,
	}
}

// Add handles the POST request to persist a new exercise
// @Summary Add an exercise
// @Description Persist a new exercise record. Out-of-range difficulty values are clamped into 1-10.
// @Tags Exercise
// @Accept json
// @Produce json
// @Param requestBody body AddExerciseRequest true "Exercise Data"
// @Success 201 {object} ExerciseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /exercises [post]
func (handler *exerciseHandler) Add(ctx *gin.Context) {
	var request AddExerciseRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		errorResponse := ErrorResponse{
			Kind:    ErrorKindInvalidInput,
			Message: fmt.Sprintf("invalid exercise data: %v", err.Error()),
		}
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	exercise := request.ToDomain()

	if err := handler.exerciseService.Add(ctx, exercise); err != nil {
		status, errorResponse := NewErrorResponse(err)
		ctx.JSON(status, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, NewExerciseResponse(exercise))
}

// List handles the GET request to list every stored exercise
// @Summary List exercises
// @Description Fetch all stored exercises ordered by name ascending. An empty store yields an empty list.
// @Tags Exercise
// @Produce json
// @Success 200 {array} ExerciseResponse
// @Failure 500 {object} ErrorResponse
// @Router /exercises [get]
func (handler *exerciseHandler) List(ctx *gin.Context) {
	exerciseList, err := handler.exerciseService.ListAll(ctx)
	if err != nil {
		status, errorResponse := NewErrorResponse(err)
		ctx.JSON(status, errorResponse)
		return
	}

	listResponse := []ExerciseResponse{}
	for _, exercise := range exerciseList {
		listResponse = append(listResponse, NewExerciseResponse(exercise))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to fetch one exercise by id
// @Summary Get an exercise by id
// @Description Fetch a single exercise. A missing id yields a 404 with kind exercise_not_found.
// @Tags Exercise
// @Produce json
// @Param id path string true "Exercise ID"
// @Success 200 {object} ExerciseResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /exercises/{id} [get]
func (handler *exerciseHandler) GetByID(ctx *gin.Context) {
	exerciseID := ctx.Param("id")

	exercise, err := handler.exerciseService.Get(ctx, exerciseID)
	if err != nil {
		status, errorResponse := NewErrorResponse(err)
		ctx.JSON(status, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, NewExerciseResponse(exercise))
}

// DeleteByID handles the DELETE request to remove an exercise by id
// @Summary Delete an exercise by id
// @Description Remove an exercise if present. Absence is reported as deleted=false, not an error.
// @Tags Exercise
// @Produce json
// @Param id path string true "Exercise ID"
// @Success 200 {object} DeleteExerciseResponse
// @Failure 500 {object} ErrorResponse
// @Router /exercises/{id} [delete]
func (handler *exerciseHandler) DeleteByID(ctx *gin.Context) {
	exerciseID := ctx.Param("id")

	deleted, err := handler.exerciseService.Delete(ctx, exerciseID)
	if err != nil {
		status, errorResponse := NewErrorResponse(err)
		ctx.JSON(status, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, DeleteExerciseResponse{Deleted: deleted})
}
