package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all realty-agent configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Mortgage  MortgageConfig  `yaml:"mortgage"`
	Analytics AnalyticsConfig `yaml:"analytics"`
	Cache     CacheConfig     `yaml:"cache"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ReadTimeout     string `yaml:"read_timeout"`
	WriteTimeout    string `yaml:"write_timeout"`
	IdleTimeout     string `yaml:"idle_timeout"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

type RateLimitConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Capacity int    `yaml:"capacity"`
	Refill   string `yaml:"refill"`
}

// MortgageConfig sets the estimator policy. Rates are annual fractions of
// the home price (0.012 = 1.2%).
type MortgageConfig struct {
	PropertyTaxRate        float64 `yaml:"property_tax_rate"`
	InsuranceRate          float64 `yaml:"insurance_rate"`
	DefaultLoanTermYears   int     `yaml:"default_loan_term_years"`
	MaxLoanTermYears       int     `yaml:"max_loan_term_years"`
	MaxInterestRatePercent float64 `yaml:"max_interest_rate_percent"`
}

// AnalyticsConfig configures the local analytics mirror. A zero Seed picks
// one from the clock for the generated engagement figures.
type AnalyticsConfig struct {
	DatabasePath string `yaml:"database_path"`
	Seed         uint64 `yaml:"seed"`
	BufferSize   int    `yaml:"buffer_size"`
}

// CacheConfig selects the session/counter cache. An empty RedisAddr uses an
// in-process cache.
type CacheConfig struct {
	RedisAddr  string `yaml:"redis_addr"`
	SessionTTL string `yaml:"session_ttl"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     "15s",
			WriteTimeout:    "15s",
			IdleTimeout:     "60s",
			ShutdownTimeout: "10s",
		},
		RateLimit: RateLimitConfig{
			Enabled:  true,
			Capacity: 60,
			Refill:   "1m",
		},
		Mortgage: MortgageConfig{
			PropertyTaxRate:        0.012,
			InsuranceRate:          0.0035,
			DefaultLoanTermYears:   30,
			MaxLoanTermYears:       50,
			MaxInterestRatePercent: 30,
		},
		Analytics: AnalyticsConfig{
			DatabasePath: "data/analytics.db",
			BufferSize:   256,
		},
		Cache: CacheConfig{
			SessionTTL: "24h",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if addr := os.Getenv("REALTY_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if addr := os.Getenv("REALTY_REDIS_ADDR"); addr != "" {
		c.Cache.RedisAddr = addr
	}
	if path := os.Getenv("REALTY_DB"); path != "" {
		c.Analytics.DatabasePath = path
	}
	if level := os.Getenv("REALTY_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func (c *Config) GetReadTimeout() time.Duration {
	return parseDuration(c.Server.ReadTimeout, 15*time.Second)
}

func (c *Config) GetWriteTimeout() time.Duration {
	return parseDuration(c.Server.WriteTimeout, 15*time.Second)
}

func (c *Config) GetIdleTimeout() time.Duration {
	return parseDuration(c.Server.IdleTimeout, 60*time.Second)
}

func (c *Config) GetShutdownTimeout() time.Duration {
	return parseDuration(c.Server.ShutdownTimeout, 10*time.Second)
}

func (c *Config) GetRateLimitRefill() time.Duration {
	return parseDuration(c.RateLimit.Refill, time.Minute)
}

func (c *Config) GetSessionTTL() time.Duration {
	return parseDuration(c.Cache.SessionTTL, 24*time.Hour)
}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server address not configured")
	}
	m := c.Mortgage
	if m.PropertyTaxRate < 0 || m.PropertyTaxRate >= 1 {
		return fmt.Errorf("mortgage.property_tax_rate must be in [0, 1), got %g", m.PropertyTaxRate)
	}
	if m.InsuranceRate < 0 || m.InsuranceRate >= 1 {
		return fmt.Errorf("mortgage.insurance_rate must be in [0, 1), got %g", m.InsuranceRate)
	}
	if m.DefaultLoanTermYears <= 0 {
		return fmt.Errorf("mortgage.default_loan_term_years must be positive")
	}
	if m.MaxLoanTermYears < m.DefaultLoanTermYears {
		return fmt.Errorf("mortgage.max_loan_term_years (%d) is below the default term (%d)",
			m.MaxLoanTermYears, m.DefaultLoanTermYears)
	}
	if m.MaxInterestRatePercent <= 0 {
		return fmt.Errorf("mortgage.max_interest_rate_percent must be positive")
	}
	if c.RateLimit.Enabled && c.RateLimit.Capacity <= 0 {
		return fmt.Errorf("rate_limit.capacity must be positive when enabled")
	}

	validLevel := false
	for _, l := range ValidLogLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}

	return nil
}
