package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/party-planner/pkg/core/optimizer"
)

// DatabaseURLEnv overrides databaseURL when set in the environment or a .env file
const DatabaseURLEnv = "PARTY_PLANNER_DATABASE_URL"

// OptimizerConfig tunes candidate generation. Zero values fall back to the built-in defaults.
type OptimizerConfig struct {
	MaxOptions                   int   `yaml:"maxOptions,omitempty" validate:"omitempty,min=1,max=50"`
	ExhaustiveLimit              int   `yaml:"exhaustiveLimit,omitempty" validate:"omitempty,min=1,max=8"`
	AttemptsPerOption            int   `yaml:"attemptsPerOption,omitempty" validate:"omitempty,min=1,max=20"`
	SeatingHistoryIncludesEvents bool  `yaml:"seatingHistoryIncludesEvents,omitempty"`
	Seed                         int64 `yaml:"seed,omitempty"`
}

// WeightsConfig overrides individual penalty weights
type WeightsConfig struct {
	SeatingRelated        *float64 `yaml:"seatingRelated,omitempty" validate:"omitempty,gte=0"`
	SeatingHistory        *float64 `yaml:"seatingHistory,omitempty" validate:"omitempty,gte=0"`
	SeatingSameCategory   *float64 `yaml:"seatingSameCategory,omitempty" validate:"omitempty,gte=0"`
	TeamFairPlay          *float64 `yaml:"teamFairPlay,omitempty" validate:"omitempty,gte=0"`
	TeamRelated           *float64 `yaml:"teamRelated,omitempty" validate:"omitempty,gte=0"`
	TeamHistory           *float64 `yaml:"teamHistory,omitempty" validate:"omitempty,gte=0"`
	TeamCategoryImbalance *float64 `yaml:"teamCategoryImbalance,omitempty" validate:"omitempty,gte=0"`
}

// MealScheduleConfig is the default recurrence used by scheduleMeals
type MealScheduleConfig struct {
	RRule string `yaml:"rrule,omitempty"`
	Name  string `yaml:"name,omitempty"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL     string             `yaml:"databaseURL" validate:"required"`
	PublishSheetID  string             `yaml:"publishSheetID,omitempty"`
	CredentialsFile string             `yaml:"credentialsFile,omitempty"`
	Optimizer       OptimizerConfig    `yaml:"optimizer,omitempty"`
	Weights         WeightsConfig      `yaml:"weights,omitempty"`
	MealSchedule    MealScheduleConfig `yaml:"mealSchedule,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads and validates party_planner_<env>.yaml.
// It looks for the config file in the current directory first, then in the user's home directory.
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(fileName(env))
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// A missing .env file is not an error
	_ = godotenv.Load(filepath.Join(filepath.Dir(path), ".env"))
	if url := os.Getenv(DatabaseURLEnv); url != "" {
		cfg.DatabaseURL = url
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.MealSchedule.RRule != "" {
		if _, err := rrule.StrToRRule(cfg.MealSchedule.RRule); err != nil {
			return fmt.Errorf("invalid rrule in mealSchedule: %w", err)
		}
	}

	return nil
}

// SearchParams returns the optimizer settings; the caller supplies the random source
func (c *Config) SearchParams() optimizer.SearchParams {
	return optimizer.SearchParams{
		MaxOptions:        c.Optimizer.MaxOptions,
		AttemptsPerOption: c.Optimizer.AttemptsPerOption,
		ExhaustiveLimit:   c.Optimizer.ExhaustiveLimit,
	}
}

// PenaltyWeights returns the default weights with any configured overrides applied
func (c *Config) PenaltyWeights() optimizer.Weights {
	w := optimizer.DefaultWeights()
	override := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	override(&w.SeatingRelated, c.Weights.SeatingRelated)
	override(&w.SeatingHistory, c.Weights.SeatingHistory)
	override(&w.SeatingSameCategory, c.Weights.SeatingSameCategory)
	override(&w.TeamFairPlay, c.Weights.TeamFairPlay)
	override(&w.TeamRelated, c.Weights.TeamRelated)
	override(&w.TeamHistory, c.Weights.TeamHistory)
	override(&w.TeamCategoryImbalance, c.Weights.TeamCategoryImbalance)
	return w
}

func fileName(env string) string {
	return fmt.Sprintf("party_planner_%s.yaml", env)
}

// findConfigFile searches for the config file in current directory and home directory
func findConfigFile(configFileName string) (string, error) {
	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", configFileName)
}
