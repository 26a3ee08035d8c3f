package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// RestConfig aggregates the settings for the REST API application
type RestConfig struct {
	Port     string           `mapstructure:"port"`
	Database DatabaseSettings `mapstructure:"database"`
	Logger   LoggerSettings   `mapstructure:"logger"`
}

// InitializeRestConfig loads and validates the REST application configuration
// from the YAML file at configPath.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetDefault("port", "8080")
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Database.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database settings: %w", err)
	}

	if err := cfg.Logger.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger settings: %w", err)
	}

	return &cfg, nil
}
