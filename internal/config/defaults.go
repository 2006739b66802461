package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL       = "https://data-api.polymarket.com"
	DefaultAPITimeout    = 30 * time.Second
	DefaultFetchLimit    = 9999
	DefaultCostThreshold = 750.0
	DefaultTimezone      = "America/Los_Angeles"
	DefaultDBPort        = 5432
	DefaultDBSSLMode     = "prefer"
	DefaultMaxConns      = 10
	DefaultMinConns      = 2
)

func (c *Config) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.Limit == 0 {
		c.API.Limit = DefaultFetchLimit
	}

	// Database defaults
	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = DefaultMaxConns
	}
	if c.Database.MinConns == 0 {
		c.Database.MinConns = DefaultMinConns
	}

	// Ingest defaults
	if c.Ingest.CostThreshold == 0 {
		c.Ingest.CostThreshold = DefaultCostThreshold
	}
	if c.Ingest.Timezone == "" {
		c.Ingest.Timezone = DefaultTimezone
	}
}
