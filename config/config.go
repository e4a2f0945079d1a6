// Package config loads and validates the cafeteria's YAML configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// Default kitchen settings
	defaultBurners         = 8
	defaultBreadCookTime   = 1 * time.Second
	defaultSausageCookTime = 1500 * time.Millisecond
	defaultHistorySize     = 100

	// Default server settings
	defaultListenAddr   = ":8080"
	defaultOrderTimeout = 30 * time.Second

	// Default monitoring settings
	defaultMetricsPrefix  = "cafeteria"
	defaultJobName        = "cafeteria"
	defaultReportSchedule = "* * * * *"

	// Default logging settings
	defaultLogLevel  = "info"
	defaultLogFormat = "json"
	defaultLogOutput = "stdout"
)

// Config represents the complete application configuration
type Config struct {
	Kitchen    KitchenConfig    `yaml:"kitchen"`
	Server     ServerConfig     `yaml:"server"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// KitchenConfig holds cooker and cooking settings
type KitchenConfig struct {
	// Burners is the number of burners on the shared gas cooker
	Burners int `yaml:"burners"`

	// BreadCookTime is the minimum time bread spends baking
	BreadCookTime time.Duration `yaml:"bread_cook_time"`

	// SausageCookTime is the minimum time sausage spends frying
	SausageCookTime time.Duration `yaml:"sausage_cook_time"`

	// HistorySize bounds the in-memory order journal
	HistorySize int `yaml:"history_size"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`

	// OrderTimeout bounds how long an order placed over HTTP waits for
	// its outcome before the request gives up
	OrderTimeout time.Duration `yaml:"order_timeout"`

	// TLSCert and TLSKey enable TLS when both are set
	TLSCert string `yaml:"tls_cert"`
	TLSKey  string `yaml:"tls_key"`
}

// MonitoringConfig holds metrics settings
type MonitoringConfig struct {
	// VictoriaMetricsURL enables remote-write metric pushes when set;
	// scrape-mode metrics on /metrics are always available
	VictoriaMetricsURL string `yaml:"victoriametrics_url"`
	MetricsPrefix      string `yaml:"metrics_prefix"`
	JobName            string `yaml:"jobname"`

	// ReportSchedule is a standard 5-field cron spec controlling how
	// often kitchen snapshots are pushed
	ReportSchedule string `yaml:"report_schedule"`
}

// LoggingConfig defines logging behavior settings
type LoggingConfig struct {
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
	Output    string `yaml:"output"`
	AddSource bool   `yaml:"add_source"`
}

// Validate performs basic validation on the configuration
func (c *Config) Validate() error {
	if c.Kitchen.Burners <= 0 {
		return fmt.Errorf("kitchen burner count must be positive")
	}
	if c.Kitchen.BreadCookTime <= 0 {
		return fmt.Errorf("bread cook time must be positive")
	}
	if c.Kitchen.SausageCookTime <= 0 {
		return fmt.Errorf("sausage cook time must be positive")
	}
	if c.Kitchen.HistorySize <= 0 {
		return fmt.Errorf("history size must be positive")
	}
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("server listen address is required")
	}
	if c.Server.OrderTimeout <= 0 {
		return fmt.Errorf("order timeout must be positive")
	}
	if (c.Server.TLSCert == "") != (c.Server.TLSKey == "") {
		return fmt.Errorf("TLS cert and key must be set together")
	}
	return nil
}

// SetDefaults sets reasonable default values for optional fields
func (c *Config) SetDefaults() {
	if c.Kitchen.Burners == 0 {
		c.Kitchen.Burners = defaultBurners
	}
	if c.Kitchen.BreadCookTime == 0 {
		c.Kitchen.BreadCookTime = defaultBreadCookTime
	}
	if c.Kitchen.SausageCookTime == 0 {
		c.Kitchen.SausageCookTime = defaultSausageCookTime
	}
	if c.Kitchen.HistorySize == 0 {
		c.Kitchen.HistorySize = defaultHistorySize
	}
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = defaultListenAddr
	}
	if c.Server.OrderTimeout == 0 {
		c.Server.OrderTimeout = defaultOrderTimeout
	}
	if c.Monitoring.MetricsPrefix == "" {
		c.Monitoring.MetricsPrefix = defaultMetricsPrefix
	}
	if c.Monitoring.JobName == "" {
		c.Monitoring.JobName = defaultJobName
	}
	if c.Monitoring.ReportSchedule == "" {
		c.Monitoring.ReportSchedule = defaultReportSchedule
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if c.Logging.Output == "" {
		c.Logging.Output = defaultLogOutput
	}
}

// LoadConfig reads and parses a YAML configuration file, applies
// defaults, and validates the result
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
