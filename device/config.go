package device

import (
	"runtime"

	"github.com/kbukum/zipkit/validation"
)

// Config describes the shape of a device: how many blocks run at once and
// how many elements each block covers.
type Config struct {
	// Name identifies the device in logs, spans and metrics.
	Name string `yaml:"name" mapstructure:"name" validate:"max=64"`
	// ComputeUnits is the number of blocks that may run at the same time
	// across all queues of the device. 0 means GOMAXPROCS.
	ComputeUnits int `yaml:"compute_units" mapstructure:"compute_units" validate:"gte=0,lte=4096"`
	// BlockSize is the number of work items per block. Must be a power of two.
	BlockSize int `yaml:"block_size" mapstructure:"block_size" validate:"gte=0,lte=65536"`
	// ItemsPerThread is the number of elements each work item handles.
	ItemsPerThread int `yaml:"items_per_thread" mapstructure:"items_per_thread" validate:"gte=0,lte=1024"`
	// MaxLaunchSize rejects launches with more elements. 0 means unlimited.
	MaxLaunchSize int `yaml:"max_launch_size" mapstructure:"max_launch_size" validate:"gte=0"`
}

// ApplyDefaults applies default values to device configuration.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "cpu0"
	}
	if c.ComputeUnits == 0 {
		c.ComputeUnits = runtime.GOMAXPROCS(0)
	}
	if c.BlockSize == 0 {
		c.BlockSize = 256
	}
	if c.ItemsPerThread == 0 {
		c.ItemsPerThread = 4
	}
}

// Validate validates device configuration. Call ApplyDefaults first.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	v := validation.New().
		Min("compute_units", c.ComputeUnits, 1).
		PowerOfTwo("block_size", c.BlockSize).
		Min("items_per_thread", c.ItemsPerThread, 1).
		Custom(c.MaxLaunchSize == 0 || c.MaxLaunchSize >= c.TileSize(), "max_launch_size", "must be 0 or at least one tile")
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

// TileSize is the number of elements one block processes.
func (c Config) TileSize() int {
	return c.BlockSize * c.ItemsPerThread
}
