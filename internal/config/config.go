// Package config provides configuration management functionality.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Default assumed sector averages.
//
// A handful of criterion thresholds reference a "sector average" through a
// fixed constant instead of the sector benchmark table. The constants are
// kept explicit and overridable here so a deployment can tune them without
// touching engine logic.
const (
	DefaultSectorCashRatio = 0.20 // assumed sector average cash / net sales
	DefaultSectorLeverage  = 0.70 // assumed sector average liabilities / assets
	DefaultSectorVATBurden = 0.02 // assumed sector average net VAT / net sales
)

// Assumptions holds the assumed sector-average constants consumed by the
// rule-criterion evaluators.
type Assumptions struct {
	SectorCashRatio float64
	SectorLeverage  float64
	SectorVATBurden float64
}

// DefaultAssumptions returns the built-in assumed sector averages.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		SectorCashRatio: DefaultSectorCashRatio,
		SectorLeverage:  DefaultSectorLeverage,
		SectorVATBurden: DefaultSectorVATBurden,
	}
}

// Config holds application configuration.
type Config struct {
	LogLevel    string
	Assumptions Assumptions
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Assumptions: Assumptions{
			SectorCashRatio: getEnvAsFloat("RISK_SECTOR_CASH_RATIO", DefaultSectorCashRatio),
			SectorLeverage:  getEnvAsFloat("RISK_SECTOR_LEVERAGE", DefaultSectorLeverage),
			SectorVATBurden: getEnvAsFloat("RISK_SECTOR_VAT_BURDEN", DefaultSectorVATBurden),
		},
	}

	return cfg, nil
}

// getEnv retrieves an environment variable with a fallback default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsFloat retrieves an environment variable as float64 with a fallback default.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
