package config

import (
	"fmt"
	"os"
	"strconv"

	"vocabtracker/pkg/validator"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	BotPassword string
	Database    DatabaseConfig
	Words       WordsConfig
	// MigrationsSource is a golang-migrate source URL
	MigrationsSource string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// WordsConfig holds word list settings
type WordsConfig struct {
	StorageKey     string `validate:"required"`
	PageSize       int    `validate:"min=1,max=50"`
	ExportFileName string `validate:"required"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	pageSize, err := strconv.Atoi(getEnv("PAGE_SIZE", "10"))
	if err != nil {
		return nil, fmt.Errorf("PAGE_SIZE must be a number: %w", err)
	}

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		BotPassword: os.Getenv("BOT_PASSWORD"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "vocabtracker"),
			User:     getEnv("DB_USER", "vocabtracker"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Words: WordsConfig{
			StorageKey:     getEnv("WORDS_KEY", "languageWords"),
			PageSize:       pageSize,
			ExportFileName: getEnv("EXPORT_FILENAME", "language_words.csv"),
		},
		MigrationsSource: getEnv("MIGRATIONS_SOURCE", "file://migrations"),
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.BotPassword == "" {
		return nil, fmt.Errorf("BOT_PASSWORD is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	if err := validator.ValidateStruct(cfg.Words); err != nil {
		return nil, fmt.Errorf("invalid words config: %w", err)
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
