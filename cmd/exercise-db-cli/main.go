// Package main is the entry point for the exercise-db-cli application.
// It initializes the root command, registers the exercise sub-commands and
// executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "exercise_db_service/cmd/exercise-db-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "exercise-db-cli",
		Short: "Exercise database CLI tool",
		Long: `exercise-db-cli manages a file-backed exercise database.
Supports adding, fetching, listing and deleting exercise records. The database
file is created with its schema on first use of a given path.`,
	}

	if err := commands.InitExerciseCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}
