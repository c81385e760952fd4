package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultBudgetCeiling = 10000

// AppConfig holds infrastructure config from standard env vars
type AppConfig struct {
	DataFile   string
	ConfigPath string // Path to the optional YAML settings file
	LogLevel   string
	LogFormat  string
}

// Settings holds tunables from the YAML file.
type Settings struct {
	BudgetCeiling int    `yaml:"budget_ceiling"`
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`
}

// GetAppConfig reads infrastructure settings from the environment, after
// loading a .env file from the working directory when one exists.
func GetAppConfig() (AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return AppConfig{}, fmt.Errorf("failed to load .env: %w", err)
	}

	return AppConfig{
		DataFile:   getEnv("LUNCH_DATA_FILE", "menu_data.json"),
		ConfigPath: getEnv("CONFIG_PATH", "lunch.yaml"),
		LogLevel:   os.Getenv("LOG_LEVEL"),
		LogFormat:  os.Getenv("LOG_FORMAT"),
	}, nil
}

// LoadSettings reads the YAML settings file. A missing file yields defaults.
func LoadSettings(path string) (*Settings, error) {
	cfg := &Settings{BudgetCeiling: DefaultBudgetCeiling, LogLevel: "warn", LogFormat: "console"}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file at '%s': %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if cfg.BudgetCeiling <= 0 {
		return nil, fmt.Errorf("budget_ceiling must be positive, got %d", cfg.BudgetCeiling)
	}
	return cfg, nil
}

// Merge lets environment values override the YAML logging settings.
func (s *Settings) Merge(app AppConfig) {
	if app.LogLevel != "" {
		s.LogLevel = app.LogLevel
	}
	if app.LogFormat != "" {
		s.LogFormat = app.LogFormat
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
