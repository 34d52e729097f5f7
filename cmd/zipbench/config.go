package main

import (
	"fmt"

	"github.com/kbukum/zipkit/config"
	"github.com/kbukum/zipkit/device"
	"github.com/kbukum/zipkit/observability"
	"github.com/kbukum/zipkit/validation"
)

// BenchConfig is the zipbench configuration file.
type BenchConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Device               device.Config        `yaml:"device" mapstructure:"device"`
	Observability        observability.Config `yaml:"observability" mapstructure:"observability"`
	Bench                RunConfig            `yaml:"bench" mapstructure:"bench"`
}

// RunConfig shapes the benchmark workload.
type RunConfig struct {
	// Size is the number of elements in each input array.
	Size int `yaml:"size" mapstructure:"size" validate:"gte=0"`
	// Rounds is how many times the device transform is repeated.
	Rounds int `yaml:"rounds" mapstructure:"rounds" validate:"gte=0,lte=1000"`
	// Seed makes the generated inputs reproducible.
	Seed uint64 `yaml:"seed" mapstructure:"seed"`
	// Tolerance is the largest relative difference accepted between the host
	// and device outputs.
	Tolerance float64 `yaml:"tolerance" mapstructure:"tolerance" validate:"gte=0"`
	// Synchronous waits inside every transform and logs its duration.
	Synchronous bool `yaml:"synchronous" mapstructure:"synchronous"`
}

// ApplyDefaults applies defaults to every section.
func (c *BenchConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "zipbench"
	}
	c.ServiceConfig.ApplyDefaults()
	c.Device.ApplyDefaults()
	c.Observability.ApplyDefaults()
	if c.Bench.Size == 0 {
		c.Bench.Size = 1 << 20
	}
	if c.Bench.Rounds == 0 {
		c.Bench.Rounds = 5
	}
	if c.Bench.Seed == 0 {
		c.Bench.Seed = 42
	}
}

// Validate validates every section.
func (c *BenchConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Device.Validate(); err != nil {
		return fmt.Errorf("device: %w", err)
	}
	if err := c.Observability.Validate(); err != nil {
		return fmt.Errorf("observability: %w", err)
	}
	if err := validation.Validate(c.Bench); err != nil {
		return fmt.Errorf("bench: %w", err)
	}
	return nil
}
