package config

import (
	"os"
	"strconv"
)

// Config represents the complete application configuration.
type Config struct {
	Server   ServerConfig
	Defaults Defaults
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        string
	BearerToken string // empty disables auth (local development)
}

// Defaults holds the layer-building defaults injected into the service, in
// place of ambient module state.
type Defaults struct {
	FinancialSheetName  string // output sheet for financial layers
	FinancialParentName string // header-row display name
	FinancialPad        int    // zero-pad width for numeric codes
	PersonnelParentCode string // layer code the personnel tree hangs under
	PersonnelSheetName  string // output sheet for personnel layers
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Port:        getEnvOrDefault("PORT", "8000"),
			BearerToken: os.Getenv("MCP_BEARER_TOKEN"),
		},
		Defaults: LoadDefaults(),
	}, nil
}

// LoadDefaults returns the layer defaults, honoring env overrides.
func LoadDefaults() Defaults {
	return Defaults{
		FinancialSheetName:  getEnvOrDefault("FINANCIAL_SHEET_NAME", "Resultados"),
		FinancialParentName: getEnvOrDefault("FINANCIAL_PARENT_NAME", "Datos que fluyen"),
		FinancialPad:        getEnvIntOrDefault("FINANCIAL_PAD", 2),
		PersonnelParentCode: getEnvOrDefault("PERSONNEL_PARENT_CODE", "20"),
		PersonnelSheetName:  getEnvOrDefault("PERSONNEL_SHEET_NAME", "20 Personal"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
