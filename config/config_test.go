package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	cfg := Config{}
	cfg.SetDefaults()
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "zero burners",
			mutate:  func(c *Config) { c.Kitchen.Burners = 0 },
			wantErr: true,
		},
		{
			name:    "negative bread cook time",
			mutate:  func(c *Config) { c.Kitchen.BreadCookTime = -time.Second },
			wantErr: true,
		},
		{
			name:    "zero sausage cook time",
			mutate:  func(c *Config) { c.Kitchen.SausageCookTime = 0 },
			wantErr: true,
		},
		{
			name:    "missing listen address",
			mutate:  func(c *Config) { c.Server.ListenAddr = "" },
			wantErr: true,
		},
		{
			name:    "zero order timeout",
			mutate:  func(c *Config) { c.Server.OrderTimeout = 0 },
			wantErr: true,
		},
		{
			name:    "cert without key",
			mutate:  func(c *Config) { c.Server.TLSCert = "/etc/cert.pem" },
			wantErr: true,
		},
		{
			name: "cert with key",
			mutate: func(c *Config) {
				c.Server.TLSCert = "/etc/cert.pem"
				c.Server.TLSKey = "/etc/key.pem"
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_SetDefaults(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()

	assert.Equal(t, 8, cfg.Kitchen.Burners)
	assert.Equal(t, 1*time.Second, cfg.Kitchen.BreadCookTime)
	assert.Equal(t, 1500*time.Millisecond, cfg.Kitchen.SausageCookTime)
	assert.Equal(t, 100, cfg.Kitchen.HistorySize)
	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
	assert.Equal(t, 30*time.Second, cfg.Server.OrderTimeout)
	assert.Equal(t, "cafeteria", cfg.Monitoring.MetricsPrefix)
	assert.Equal(t, "* * * * *", cfg.Monitoring.ReportSchedule)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestConfig_SetDefaults_PreservesExplicitValues(t *testing.T) {
	cfg := Config{}
	cfg.Kitchen.Burners = 2
	cfg.Server.ListenAddr = ":9999"
	cfg.SetDefaults()

	assert.Equal(t, 2, cfg.Kitchen.Burners)
	assert.Equal(t, ":9999", cfg.Server.ListenAddr)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
kitchen:
  burners: 4
  bread_cook_time: 500ms
  sausage_cook_time: 750ms
server:
  listen_addr: ":9090"
monitoring:
  victoriametrics_url: "http://vm:8428/api/v1/write"
  report_schedule: "*/5 * * * *"
logging:
  level: debug
  format: text
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Kitchen.Burners)
	assert.Equal(t, 500*time.Millisecond, cfg.Kitchen.BreadCookTime)
	assert.Equal(t, 750*time.Millisecond, cfg.Kitchen.SausageCookTime)
	assert.Equal(t, ":9090", cfg.Server.ListenAddr)
	assert.Equal(t, "http://vm:8428/api/v1/write", cfg.Monitoring.VictoriaMetricsURL)
	assert.Equal(t, "*/5 * * * *", cfg.Monitoring.ReportSchedule)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Unspecified fields pick up defaults.
	assert.Equal(t, 100, cfg.Kitchen.HistorySize)
	assert.Equal(t, 30*time.Second, cfg.Server.OrderTimeout)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kitchen: [not a map"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kitchen:\n  burners: -1\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
