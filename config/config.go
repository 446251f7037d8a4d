package config

import (
	"time"

	"github.com/kbukum/scorepipe/logger"
	"github.com/kbukum/scorepipe/validation"
)

// Config is the root configuration for the scorepipe binary.
type Config struct {
	Name        string `yaml:"name" mapstructure:"name" json:"name" validate:"required"`
	Environment string `yaml:"environment" mapstructure:"environment" json:"environment" validate:"oneof=development staging production"`
	Debug       bool   `yaml:"debug" mapstructure:"debug" json:"debug"`

	Logging logger.Config `yaml:"logging" mapstructure:"logging" json:"logging"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server" json:"server"`
	Gen     GenConfig     `yaml:"gen" mapstructure:"gen" json:"gen"`
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics" json:"metrics"`
}

// ServerConfig configures the HTTP ingestion surface.
type ServerConfig struct {
	Addr            string        `yaml:"addr" mapstructure:"addr" json:"addr" validate:"required"`
	Mode            string        `yaml:"mode" mapstructure:"mode" json:"mode" validate:"oneof=debug release test"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout" json:"shutdown_timeout"`
}

// GenConfig configures synthetic dataset generation.
type GenConfig struct {
	Count      int     `yaml:"count" mapstructure:"count" json:"count" validate:"min=0"`
	Seed       int64   `yaml:"seed" mapstructure:"seed" json:"seed"`
	ValidRatio float64 `yaml:"valid_ratio" mapstructure:"valid_ratio" json:"valid_ratio" validate:"min=0,max=1"`
}

// MetricsConfig configures the optional OTLP exporters. Telemetry stays off
// unless Enabled is set.
type MetricsConfig struct {
	Enabled  bool          `yaml:"enabled" mapstructure:"enabled" json:"enabled"`
	Endpoint string        `yaml:"endpoint" mapstructure:"endpoint" json:"endpoint"`
	Insecure bool          `yaml:"insecure" mapstructure:"insecure" json:"insecure"`
	Interval time.Duration `yaml:"interval" mapstructure:"interval" json:"interval"`
}

// ApplyDefaults fills zero-valued configuration fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "scorepipe"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()

	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.Mode == "" {
		if c.Debug {
			c.Server.Mode = "debug"
		} else {
			c.Server.Mode = "release"
		}
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}

	if c.Gen.Count == 0 {
		c.Gen.Count = 1000
	}
	if c.Gen.ValidRatio == 0 {
		c.Gen.ValidRatio = 0.7
	}

	if c.Metrics.Endpoint == "" {
		c.Metrics.Endpoint = "localhost:4318"
	}
	if c.Metrics.Interval == 0 {
		c.Metrics.Interval = 15 * time.Second
	}
}

// Validate checks the configuration via struct tags plus the logging
// section's own rules.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	return c.Logging.Validate()
}
