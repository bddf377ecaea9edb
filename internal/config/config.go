package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Auth   AuthConfig
	JWT    JWTConfig
	Sheets SheetsConfig
	Report ReportConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	Timezone string
}

// AuthConfig holds the dashboard login gate credentials.
// Password may be a bcrypt hash (preferred) or a plain secret.
type AuthConfig struct {
	Username string
	Password string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// SheetsConfig holds the Google Sheets source configuration
type SheetsConfig struct {
	SheetID         string
	Worksheet       string
	CredentialsFile string
	CacheTTL        time.Duration
}

// ReportConfig holds the knobs of the derivation layer
type ReportConfig struct {
	ExpectedColumns     []string
	StatusGroupPrefix   string
	RateEpsilon         float64
	TATEpsilonDays      float64
	IncludeUnknownBrand bool
	PriorityFilter      string
}

// DefaultExpectedColumns is the canonical schema of the source worksheet.
var DefaultExpectedColumns = []string{
	"Service number",
	"Service status date",
	"Service status",
	"Service repair date",
	"Service received date",
	"Product brand",
	"Service technician",
	"Service priority",
}

func Load() (*Config, error) {
	// .env is optional outside local development
	_ = godotenv.Load()

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Timezone: getEnv("APP_TIMEZONE", "Europe/Oslo"),
	}

	// Login gate configuration
	config.Auth = AuthConfig{
		Username: getEnv("AUTH_USERNAME", ""),
		Password: getEnv("AUTH_PASSWORD", ""),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	// Google Sheets source configuration
	cacheTTL, err := time.ParseDuration(getEnv("SHEETS_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHEETS_CACHE_TTL: %w", err)
	}

	config.Sheets = SheetsConfig{
		SheetID:         getEnv("SHEETS_SHEET_ID", ""),
		Worksheet:       getEnv("SHEETS_WORKSHEET", "Sheet1"),
		CredentialsFile: getEnv("SHEETS_CREDENTIALS_FILE", ""),
		CacheTTL:        cacheTTL,
	}

	// Report configuration
	rateEpsilon, err := strconv.ParseFloat(getEnv("REPORT_RATE_EPSILON", "0.05"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_RATE_EPSILON: %w", err)
	}
	tatEpsilon, err := strconv.ParseFloat(getEnv("REPORT_TAT_EPSILON_DAYS", "0.2"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_TAT_EPSILON_DAYS: %w", err)
	}

	expectedColumns := getEnvSlice("REPORT_EXPECTED_COLUMNS")
	if len(expectedColumns) == 0 {
		expectedColumns = DefaultExpectedColumns
	}

	config.Report = ReportConfig{
		ExpectedColumns:     expectedColumns,
		StatusGroupPrefix:   getEnv("REPORT_STATUS_GROUP_PREFIX", "Venter på ekstern part"),
		RateEpsilon:         rateEpsilon,
		TATEpsilonDays:      tatEpsilon,
		IncludeUnknownBrand: getEnv("REPORT_INCLUDE_UNKNOWN_BRAND", "false") == "true",
		PriorityFilter:      getEnv("REPORT_PRIORITY_FILTER", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Auth.Username == "" {
		return fmt.Errorf("AUTH_USERNAME is required")
	}
	if c.Auth.Password == "" {
		return fmt.Errorf("AUTH_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Sheets.SheetID == "" {
		return fmt.Errorf("SHEETS_SHEET_ID is required")
	}
	if c.Sheets.CredentialsFile == "" {
		return fmt.Errorf("SHEETS_CREDENTIALS_FILE is required")
	}
	return nil
}

// Location resolves the configured timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string = strings.Split(value, ",")
	return result
}
