package bootstrap

import (
	"github.com/kbukum/zipkit/config"
)

// Config is the constraint for application configuration types. A pointer
// to any struct embedding config.ServiceConfig satisfies it through promoted
// methods, as long as the struct does not shadow them.
//
//	type BenchConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Device device.Config `yaml:"device" mapstructure:"device"`
//	}
//
//	app, err := bootstrap.NewApp(&cfg)
type Config interface {
	GetServiceConfig() *config.ServiceConfig
	ApplyDefaults()
	Validate() error
}
