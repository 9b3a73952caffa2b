package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ecotrip/go-trip-carbon/internal/models"
)

type Config struct {
	Server   ServerConfig
	DB       DatabaseConfig
	Emission EmissionConfig
	Credit   CreditConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Host      string
	Port      int
	RateLimit int // requests per second, global
}

type DatabaseConfig struct {
	Path string
}

// EmissionConfig holds the kg CO2 per km factor for every transport mode.
// Loaded once at startup and read-only afterwards.
type EmissionConfig struct {
	Factors map[models.TransportMode]float64
}

// CreditConfig is the carbon-credit purchase policy: how many kilograms of
// CO2 one credit offsets and the market price range for a single credit.
type CreditConfig struct {
	KgPerCredit float64
	PriceMin    float64
	PriceMax    float64
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:      getEnv("SERVER_HOST", "localhost"),
			Port:      getEnvInt("SERVER_PORT", 8080),
			RateLimit: getEnvInt("SERVER_RATE_LIMIT", 5),
		},
		DB: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/trip-carbon.db"),
		},
		Emission: EmissionConfig{
			Factors: map[models.TransportMode]float64{
				models.ModeBicycle: getEnvFloat("CO2_FACTOR_BICYCLE", 0),
				models.ModeCar:     getEnvFloat("CO2_FACTOR_CAR", 0.12),
				models.ModeBus:     getEnvFloat("CO2_FACTOR_BUS", 0.089),
				models.ModeTruck:   getEnvFloat("CO2_FACTOR_TRUCK", 0.96),
			},
		},
		Credit: CreditConfig{
			KgPerCredit: getEnvFloat("CREDIT_KG_PER_CREDIT", 1000),
			PriceMin:    getEnvFloat("CREDIT_PRICE_MIN", 50),
			PriceMax:    getEnvFloat("CREDIT_PRICE_MAX", 150),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate fails fast on malformed configuration: a mode without a factor or
// a broken credit policy is not recoverable at call time.
func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.RateLimit < 1 {
		return fmt.Errorf("invalid rate limit: %d", c.Server.RateLimit)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	for _, mode := range models.AllModes() {
		factor, ok := c.Emission.Factors[mode]
		if !ok {
			return fmt.Errorf("no emission factor configured for mode %s", mode)
		}
		if factor < 0 {
			return fmt.Errorf("emission factor for mode %s must be >= 0, got %f", mode, factor)
		}
	}

	if c.Credit.KgPerCredit <= 0 {
		return fmt.Errorf("kg per credit must be > 0, got %f", c.Credit.KgPerCredit)
	}
	if c.Credit.PriceMin < 0 {
		return fmt.Errorf("credit price min must be >= 0, got %f", c.Credit.PriceMin)
	}
	if c.Credit.PriceMin > c.Credit.PriceMax {
		return fmt.Errorf("credit price min %f exceeds max %f", c.Credit.PriceMin, c.Credit.PriceMax)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}
