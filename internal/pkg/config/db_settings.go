package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Database type constants
const (
	SqliteDbType   = "sqlite"
	PostgresDbType = "postgres"
)

// Connection pool defaults applied when a setting is left at zero
const (
	DefaultMaxOpenConns = 10
	DefaultMaxIdleConns = 5
)

// DatabaseSettings holds configuration for the backing store and its connection pool.
// The pool is owned by the repository handle created from these settings, so separate
// handles (e.g. in tests) stay fully isolated.
type DatabaseSettings struct {
	Type         string `mapstructure:"type" validate:"required,oneof=sqlite postgres"`
	DSN          string `mapstructure:"dsn"`
	DBName       string `mapstructure:"db_name"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"omitempty,min=1,max=128"`
	MaxIdleConns int    `mapstructure:"max_idle_conns" validate:"omitempty,min=1,max=128"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	// SQLite falls back to an in-memory instance when the DSN is empty
	if s.Type == PostgresDbType && s.DSN == "" {
		return fmt.Errorf("DSN is required for postgres databases")
	}

	if s.MaxIdleConns > s.MaxOpenConns && s.MaxOpenConns > 0 {
		return fmt.Errorf("max idle connections must not exceed max open connections")
	}

	return nil
}
