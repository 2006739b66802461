package config

import "time"

// Config is the root configuration for an ingestor run.
type Config struct {
	API      APIConfig    `yaml:"api"`
	Database DBConfig     `yaml:"database"`
	Ingest   IngestConfig `yaml:"ingest"`
}

// APIConfig holds Polymarket data API settings.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	Limit   int           `yaml:"limit"`
	Offset  int           `yaml:"offset"`
}

// DBConfig holds the PostgreSQL connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// IngestConfig holds pipeline settings.
type IngestConfig struct {
	// CostThreshold is the minimum cost (price * size) for a trade to
	// qualify as a whale bet.
	CostThreshold float64 `yaml:"cost_threshold"`

	// Timezone is the IANA zone bet timestamps are localized to.
	Timezone string `yaml:"timezone"`
}
