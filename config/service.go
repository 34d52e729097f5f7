package config

import (
	"fmt"

	"github.com/kbukum/zipkit/logger"
	"github.com/kbukum/zipkit/validation"
)

// BaseConfig contains the fields every binary needs.
type BaseConfig struct {
	Name        string `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Version     string `yaml:"version" mapstructure:"version"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`
}

// ApplyDefaults applies default values to base configuration.
func (c *BaseConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
}

// ServiceConfig is BaseConfig plus logging. Binaries embed it in their own
// config structs.
//
//	type BenchConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Device device.Config `yaml:"device" mapstructure:"device"`
//	}
type ServiceConfig struct {
	BaseConfig `yaml:",inline" mapstructure:",squash"`
	Logging    logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies default values to the base and logging configuration.
func (c *ServiceConfig) ApplyDefaults() {
	c.BaseConfig.ApplyDefaults()
	if c.Debug && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the base and logging configuration.
func (c *ServiceConfig) Validate() error {
	if err := validation.Validate(c.BaseConfig); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// GetServiceConfig returns the embedded service configuration. Structs that
// embed ServiceConfig get it through promotion.
func (c *ServiceConfig) GetServiceConfig() *ServiceConfig { return c }
