package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr               string
	DatabaseURL        string
	JWTSecret          string
	Environment        string
	SeedAdminEmail     string
	SeedAdminPassword  string
	RunMigrations      bool
	RunSeed            bool
	MaxBodyBytes       int64
	RateLimitPerMinute int
	MetricsEnabled     bool

	// Annual composite weights; must sum to 100.
	WeightFirstHalf  float64
	WeightSecondHalf float64
	WeightPeerReview float64

	// Half-range for manager/hq corrections; 0 disables the bound.
	AdjustmentRange float64

	// Default dashboard low-score threshold; 0 disables the flag unless the
	// request overrides it.
	LowScoreThreshold float64

	ReminderWebhookURL    string
	ReminderSweepInterval time.Duration
	ReminderSweepDays     int
}

func Load() Config {
	return Config{
		Addr:               getEnv("APP_ADDR", ":8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		Environment:        getEnv("APP_ENV", "development"),
		SeedAdminEmail:     getEnv("SEED_ADMIN_EMAIL", ""),
		SeedAdminPassword:  getEnv("SEED_ADMIN_PASSWORD", ""),
		RunMigrations:      getEnvBool("RUN_MIGRATIONS", true),
		RunSeed:            getEnvBool("RUN_SEED", true),
		MaxBodyBytes:       int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),

		WeightFirstHalf:  getEnvFloat("ANNUAL_WEIGHT_FIRST_HALF", 40),
		WeightSecondHalf: getEnvFloat("ANNUAL_WEIGHT_SECOND_HALF", 40),
		WeightPeerReview: getEnvFloat("ANNUAL_WEIGHT_PEER_REVIEW", 20),

		AdjustmentRange:   getEnvFloat("ADJUSTMENT_RANGE", 10),
		LowScoreThreshold: getEnvFloat("LOW_SCORE_THRESHOLD", 0),

		ReminderWebhookURL:    getEnv("REMINDER_WEBHOOK_URL", ""),
		ReminderSweepInterval: getEnvDuration("REMINDER_SWEEP_INTERVAL", 24*time.Hour),
		ReminderSweepDays:     getEnvInt("REMINDER_SWEEP_DAYS", 3),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Environment == "production" && strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
	}
	if sum := c.WeightFirstHalf + c.WeightSecondHalf + c.WeightPeerReview; sum != 100 {
		return fmt.Errorf("annual weights must sum to 100, got %v", sum)
	}
	if c.AdjustmentRange < 0 {
		return fmt.Errorf("ADJUSTMENT_RANGE must not be negative")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	return nil
}

// AdjustmentBound returns the configured half-range, or nil when the campaign
// runs unconstrained.
func (c Config) AdjustmentBound() *float64 {
	if c.AdjustmentRange <= 0 {
		return nil
	}
	bound := c.AdjustmentRange
	return &bound
}

// Threshold returns the configured low-score threshold, or nil when disabled.
func (c Config) Threshold() *float64 {
	if c.LowScoreThreshold <= 0 {
		return nil
	}
	threshold := c.LowScoreThreshold
	return &threshold
}
