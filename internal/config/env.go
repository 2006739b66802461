package config

import (
	"fmt"
	"os"
	"strconv"
)

// FromEnv builds a configuration entirely from environment variables, for
// invocations without a config file. Recognized variables:
//
//	DB_HOST, DB_PORT, DB_NAME, DB_USER, DB_PASSWORD, DB_SSLMODE
//	API_BASE_URL, API_LIMIT, API_OFFSET
//	COST_THRESHOLD, BET_TIMEZONE
//
// Unset variables fall back to the same defaults as the YAML loader.
func FromEnv() (*Config, error) {
	cfg := &Config{
		API: APIConfig{
			BaseURL: os.Getenv("API_BASE_URL"),
		},
		Database: DBConfig{
			Host:     os.Getenv("DB_HOST"),
			Name:     os.Getenv("DB_NAME"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			SSLMode:  os.Getenv("DB_SSLMODE"),
		},
		Ingest: IngestConfig{
			Timezone: os.Getenv("BET_TIMEZONE"),
		},
	}

	var err error
	if cfg.Database.Port, err = envInt("DB_PORT"); err != nil {
		return nil, err
	}
	if cfg.API.Limit, err = envInt("API_LIMIT"); err != nil {
		return nil, err
	}
	if cfg.API.Offset, err = envInt("API_OFFSET"); err != nil {
		return nil, err
	}
	if cfg.Ingest.CostThreshold, err = envFloat("COST_THRESHOLD"); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

// FromEnvAndValidate builds config from the environment and validates it.
func FromEnvAndValidate() (*Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func envInt(key string) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, s)
	}
	return v, nil
}

func envFloat(key string) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q", key, s)
	}
	return v, nil
}
