package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Default data file locations, matching the layout shipped in data/
const (
	DefaultBasePath = "data/items_base.csv"
	DefaultLootPath = "data/items_loot.csv"
)

// Config holds the application configuration
type Config struct {
	Token       string `validate:"required"`
	AppID       string `validate:"required"`
	BasePath    string `validate:"required"`
	LootPath    string `validate:"required"`
	HealthPort  int    `validate:"min=1,max=65535"`
	LogLevel    string
	LogFormat   string
	Environment string
}

// envNames maps struct fields to the environment variables that feed them,
// so validation errors name something the operator can act on.
var envNames = map[string]string{
	"Token":      "DISCORD_TOKEN",
	"AppID":      "DISCORD_APP_ID",
	"BasePath":   "LOOT_BASE_PATH",
	"LootPath":   "LOOT_DATA_PATH",
	"HealthPort": "HEALTH_PORT",
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Token:       os.Getenv("DISCORD_TOKEN"),
		AppID:       os.Getenv("DISCORD_APP_ID"),
		BasePath:    getEnv("LOOT_BASE_PATH", DefaultBasePath),
		LootPath:    getEnv("LOOT_DATA_PATH", DefaultLootPath),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),
	}

	portStr := getEnv("HEALTH_PORT", "8082")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HEALTH_PORT value %q: %w", portStr, err)
	}
	cfg.HealthPort = port

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate runs struct tag validation and rewrites failures in terms of the
// environment variables the operator controls.
func validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	var problems []string
	for _, e := range validationErrors {
		name := envNames[e.Field()]
		if name == "" {
			name = e.Field()
		}
		switch e.Tag() {
		case "required":
			problems = append(problems, name+" is required")
		default:
			problems = append(problems, fmt.Sprintf("%s is invalid (%s)", name, e.Tag()))
		}
	}
	return errors.New("invalid configuration: " + strings.Join(problems, "; "))
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
