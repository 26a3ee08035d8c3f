package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"exercise_db_service/internal/domain/exercises"
	"exercise_db_service/internal/infrastructure/persistence"
	"exercise_db_service/internal/pkg/config"
	"exercise_db_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// ExerciseCommandHandler encapsulates logic for handling exercise operations via CLI.
type ExerciseCommandHandler struct {
	logger logger.Logger
}

// NewExerciseCommandHandler initializes and returns an ExerciseCommandHandler
// instance with a configured logger.
func NewExerciseCommandHandler() (*ExerciseCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &ExerciseCommandHandler{
		logger: loggerInstance,
	}, nil
}

// openRepository opens the file-backed repository named by the --db flag.
func (commandHandler *ExerciseCommandHandler) openRepository(cmd *cobra.Command) (exercises.ExerciseRepository, func(), error) {
	dbPath, err := cmd.Flags().GetString("db")
	if err != nil {
		return nil, nil, fmt.Errorf("invalid db flag: %w", err)
	}

	db, err := persistence.NewDBConnection(config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  persistence.FileDSN(dbPath),
	})
	if err != nil {
		return nil, nil, err
	}

	closeFunc := func() {
		if err := persistence.CloseDB(db); err != nil {
			commandHandler.logger.Warn("failed to close database: ", err)
		}
	}

	if err := persistence.MigrateSchema(db); err != nil {
		closeFunc()
		return nil, nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	repo, err := persistence.NewGormExerciseRepository(db, commandHandler.logger)
	if err != nil {
		closeFunc()
		return nil, nil, err
	}

	return repo, closeFunc, nil
}

// AddExerciseCmd persists a new exercise built from the command flags
func (commandHandler *ExerciseCommandHandler) AddExerciseCmd(cmd *cobra.Command, _ []string) {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}
	description, err := cmd.Flags().GetString("description")
	if err != nil {
		commandHandler.logger.Error("invalid description flag ", err)
		return
	}
	muscleGroups, err := cmd.Flags().GetStringSlice("muscle-groups")
	if err != nil {
		commandHandler.logger.Error("invalid muscle-groups flag ", err)
		return
	}
	equipment, err := cmd.Flags().GetString("equipment")
	if err != nil {
		commandHandler.logger.Error("invalid equipment flag ", err)
		return
	}
	difficulty, err := cmd.Flags().GetUint8("difficulty")
	if err != nil {
		commandHandler.logger.Error("invalid difficulty flag ", err)
		return
	}

	var descriptionPtr, equipmentPtr *string
	if description != "" {
		descriptionPtr = &description
	}
	if equipment != "" {
		equipmentPtr = &equipment
	}

	exercise := exercises.NewExercise(name, descriptionPtr, muscleGroups, equipmentPtr, difficulty)

	repo, closeFunc, err := commandHandler.openRepository(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer closeFunc()

	if err := repo.Create(cmd.Context(), exercise); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("Added exercise %s with id %s\n", exercise.Name, exercise.ID)
}

// GetExerciseCmd fetches one exercise by id and prints it as JSON
func (commandHandler *ExerciseCommandHandler) GetExerciseCmd(cmd *cobra.Command, _ []string) {
	exerciseID, err := cmd.Flags().GetString("id")
	if err != nil {
		commandHandler.logger.Error("invalid id flag ", err)
		return
	}

	repo, closeFunc, err := commandHandler.openRepository(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer closeFunc()

	exercise, err := repo.GetByID(cmd.Context(), exerciseID)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	printExercise(exercise)
}

// ListExercisesCmd prints every stored exercise ordered by name
func (commandHandler *ExerciseCommandHandler) ListExercisesCmd(cmd *cobra.Command, _ []string) {
	repo, closeFunc, err := commandHandler.openRepository(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer closeFunc()

	exerciseList, err := repo.List(cmd.Context())
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, exercise := range exerciseList {
		printExercise(exercise)
	}
}

// DeleteExerciseCmd removes one exercise by id
func (commandHandler *ExerciseCommandHandler) DeleteExerciseCmd(cmd *cobra.Command, _ []string) {
	exerciseID, err := cmd.Flags().GetString("id")
	if err != nil {
		commandHandler.logger.Error("invalid id flag ", err)
		return
	}

	repo, closeFunc, err := commandHandler.openRepository(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer closeFunc()

	deleted, err := repo.DeleteByID(cmd.Context(), exerciseID)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if deleted {
		fmt.Printf("Deleted exercise with id %s\n", exerciseID)
	} else {
		fmt.Printf("No exercise found with id %s\n", exerciseID)
	}
}

func printExercise(exercise *exercises.Exercise) {
	encoded, err := json.MarshalIndent(exercise, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to render exercise %s: %v\n", exercise.ID, err)
		return
	}
	fmt.Println(string(encoded))
}

// InitExerciseCommands registers the exercise command group with the root command.
func InitExerciseCommands(rootCmd *cobra.Command) error {
	handler, err := NewExerciseCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create exercise command handler: %w", err)
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new exercise",
		Run:   handler.AddExerciseCmd,
	}
	addCmd.Flags().String("name", "", "Exercise name")
	addCmd.Flags().String("description", "", "Optional description")
	addCmd.Flags().StringSlice("muscle-groups", nil, "Ordered, comma-separated muscle groups")
	addCmd.Flags().String("equipment", "", "Optional equipment")
	addCmd.Flags().Uint8("difficulty", 5, "Difficulty level (clamped into 1-10)")

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Get an exercise by id",
		Run:   handler.GetExerciseCmd,
	}
	getCmd.Flags().String("id", "", "Exercise id")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all exercises ordered by name",
		Run:   handler.ListExercisesCmd,
	}

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an exercise by id",
		Run:   handler.DeleteExerciseCmd,
	}
	deleteCmd.Flags().String("id", "", "Exercise id")

	for _, cmd := range []*cobra.Command{addCmd, getCmd, listCmd, deleteCmd} {
		cmd.Flags().String("db", "exercises.db", "Path to the database file")
		rootCmd.AddCommand(cmd)
	}

	return nil
}
