package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config carries the run knobs and one endpoint per supported dialect.
// Values come from seedforge.config.json, SEEDFORGE_* environment
// variables and command line flags, in ascending precedence.
type Config struct {
	Dialect        string        `json:"dialect" mapstructure:"dialect"`
	Records        int           `json:"records" mapstructure:"records"`
	Batch          int           `json:"batch" mapstructure:"batch"`
	Seed           int64         `json:"seed" mapstructure:"seed"`
	NullChance     float64       `json:"null_chance" mapstructure:"null_chance"`
	MaxListLen     int           `json:"max_list_len" mapstructure:"max_list_len"`
	ConnectRetries int           `json:"connect_retries" mapstructure:"connect_retries"`
	RetryBackoff   time.Duration `json:"retry_backoff" mapstructure:"retry_backoff"`
	SchemaFile     string        `json:"schema_file" mapstructure:"schema_file"`
	Tables         []string      `json:"tables" mapstructure:"tables"`

	Postgres Endpoint `json:"postgres" mapstructure:"postgres"`
	MySQL    Endpoint `json:"mysql" mapstructure:"mysql"`
	MSSQL    Endpoint `json:"mssql" mapstructure:"mssql"`
	Oracle   Endpoint `json:"oracle" mapstructure:"oracle"`
	SQLite   Endpoint `json:"sqlite" mapstructure:"sqlite"`
}

// Endpoint locates one database server. Oracle uses Service instead of
// Database; SQLite only needs Path.
type Endpoint struct {
	Host     string `json:"host" mapstructure:"host"`
	Port     int    `json:"port" mapstructure:"port"`
	User     string `json:"user" mapstructure:"user"`
	Password string `json:"password" mapstructure:"password"`
	Database string `json:"database" mapstructure:"database"`
	SSLMode  string `json:"sslmode" mapstructure:"sslmode"`
	Service  string `json:"service" mapstructure:"service"`
	Path     string `json:"path" mapstructure:"path"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	if cfg.Dialect == "" {
		cfg.Dialect = "postgres"
	}
	if cfg.Records == 0 && !viper.IsSet("records") {
		cfg.Records = 1000
	}
	if cfg.Batch == 0 {
		cfg.Batch = 100
	}
	if cfg.NullChance == 0 && !viper.IsSet("null_chance") {
		cfg.NullChance = 0.03
	}
	if cfg.MaxListLen == 0 {
		cfg.MaxListLen = 5
	}
	if cfg.ConnectRetries == 0 && !viper.IsSet("connect_retries") {
		cfg.ConnectRetries = 3
	}
	if cfg.RetryBackoff == 0 {
		cfg.RetryBackoff = 2 * time.Second
	}

	applyEndpointDefaults(&cfg.Postgres, 5432)
	applyEndpointDefaults(&cfg.MySQL, 3306)
	applyEndpointDefaults(&cfg.MSSQL, 1433)
	applyEndpointDefaults(&cfg.Oracle, 1521)
	if cfg.Oracle.Service == "" {
		cfg.Oracle.Service = "FREEPDB1"
	}
	if cfg.SQLite.Path == "" {
		cfg.SQLite.Path = "./citadel.db"
	}

	return &cfg, nil
}

func applyEndpointDefaults(ep *Endpoint, port int) {
	if ep.Host == "" {
		ep.Host = "localhost"
	}
	if ep.Port == 0 {
		ep.Port = port
	}
	if ep.User == "" {
		ep.User = "sentinel"
	}
	if ep.Password == "" {
		ep.Password = "Test_123_Password"
	}
	if ep.Database == "" {
		ep.Database = "citadel"
	}
}

// EndpointFor returns the endpoint for a dialect name, accepting the same
// aliases Validate does.
func (c *Config) EndpointFor(dialect string) Endpoint {
	switch dialect {
	case "postgresql", "postgres":
		return c.Postgres
	case "mysql":
		return c.MySQL
	case "mssql", "sqlserver":
		return c.MSSQL
	case "oracle":
		return c.Oracle
	default:
		return c.SQLite
	}
}

func (c *Config) Validate() error {
	supportedDialects := []string{"postgresql", "postgres", "mysql", "mssql", "sqlserver", "oracle", "sqlite", "sqlite3"}
	supported := false
	for _, d := range supportedDialects {
		if c.Dialect == d {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported dialect: %s. Supported dialects: %v", c.Dialect, supportedDialects)
	}

	if c.Records < 0 {
		return fmt.Errorf("records cannot be negative, got %d", c.Records)
	}
	if c.Batch < 1 {
		return fmt.Errorf("batch must be at least 1, got %d", c.Batch)
	}
	if c.NullChance < 0.02 || c.NullChance > 0.05 {
		return fmt.Errorf("null_chance %.3f outside the supported 0.02..0.05 band", c.NullChance)
	}
	if c.MaxListLen < 1 {
		return fmt.Errorf("max_list_len must be at least 1, got %d", c.MaxListLen)
	}
	if c.ConnectRetries < 0 {
		return fmt.Errorf("connect_retries cannot be negative, got %d", c.ConnectRetries)
	}

	return nil
}
