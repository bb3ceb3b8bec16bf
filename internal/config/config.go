package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port           string
	DBConn         string
	LogLevel       string
	JWTSecret      string
	CBRURL         string
	CBRMargin      float64
	KeyRateRefresh string // cron spec
	TrendBucketing string // "month-name" or "calendar"
	TrendFill      string // "synthetic" or "none"
	TrendSeed      int64
	CORSOrigins    []string
}

// NewConfig loads configuration from environment variables. A .env file in
// the working directory is read first if present.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DBConn:         getEnv("DB_CONN", "host=localhost port=5436 user=test password=test dbname=coop sslmode=disable"),
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:      getEnv("JWT_SECRET", "secret"),
		CBRURL:         getEnv("CBR_URL", "https://www.cbr.ru/DailyInfoWebServ/DailyInfo.asmx"),
		KeyRateRefresh: getEnv("KEY_RATE_REFRESH", "@every 6h"),
		TrendBucketing: getEnv("TREND_BUCKETING", "month-name"),
		TrendFill:      getEnv("TREND_FILL", "synthetic"),
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "*")),
	}

	var err error
	if cfg.CBRMargin, err = strconv.ParseFloat(getEnv("CBR_MARGIN", "5"), 64); err != nil {
		return nil, fmt.Errorf("CBR_MARGIN must be a number: %w", err)
	}
	if cfg.TrendSeed, err = strconv.ParseInt(getEnv("TREND_SEED", "0"), 10, 64); err != nil {
		return nil, fmt.Errorf("TREND_SEED must be an integer: %w", err)
	}

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.TrendBucketing != "month-name" && cfg.TrendBucketing != "calendar" {
		return nil, fmt.Errorf("TREND_BUCKETING must be month-name or calendar, got %q", cfg.TrendBucketing)
	}
	if cfg.TrendFill != "synthetic" && cfg.TrendFill != "none" {
		return nil, fmt.Errorf("TREND_FILL must be synthetic or none, got %q", cfg.TrendFill)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
