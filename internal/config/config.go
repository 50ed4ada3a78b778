package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"family-dues-go/internal/domain/plan"
	"family-dues-go/pkg/logger"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string
	Env      string
	DB       DBConfig
	Rates    plan.Rates
}

type DBConfig struct {
	DSN             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func Load(log logger.Logger) (Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	} else {
		log.Info("config: loaded .env")
	}

	cfg := Config{
		HTTPPort: getEnv("HTTP_PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		DB: DBConfig{
			DSN:             getEnv("DB_DSN", ""),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Name:            getEnv("DB_NAME", "family_dues"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			TimeZone:        getEnv("DB_TIMEZONE", "UTC"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Rates: loadRates(),
	}

	if err := cfg.Rates.Validate(); err != nil {
		return Config{}, fmt.Errorf("rate config: %w", err)
	}

	return cfg, nil
}

// loadRates applies per-deployment overrides on top of the default rate
// tables. Bracket boundaries are fixed; only amounts are configurable.
func loadRates() plan.Rates {
	rates := plan.DefaultRates()
	for i := range rates.Brackets {
		key := fmt.Sprintf("PLAN_RATE_%d", rates.Brackets[i].Bracket)
		rates.Brackets[i].Amount = getEnvFloat(key, rates.Brackets[i].Amount)
	}
	rates.Events[plan.EventWedding] = getEnvFloat("EVENT_RATE_WEDDING", rates.Events[plan.EventWedding])
	rates.Events[plan.EventBarMitzvah] = getEnvFloat("EVENT_RATE_BAR_MITZVAH", rates.Events[plan.EventBarMitzvah])
	rates.Events[plan.EventBirthBoy] = getEnvFloat("EVENT_RATE_BIRTH_BOY", rates.Events[plan.EventBirthBoy])
	rates.Events[plan.EventBirthGirl] = getEnvFloat("EVENT_RATE_BIRTH_GIRL", rates.Events[plan.EventBirthGirl])
	return rates
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
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

func (c DBConfig) GetDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.TimeZone
}
