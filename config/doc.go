// Package config loads binary configuration with Viper.
//
// Values come from a config.yml found next to the binary's main package
// (cmd/<name>/config.yml) or given explicitly, an optional .env file loaded
// with godotenv, and prefixed environment variables, in increasing order of
// precedence.
//
// # Usage
//
//	var cfg BenchConfig
//	if err := config.LoadConfig("zipbench", &cfg); err != nil { ... }
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil { ... }
//
// ZIPKIT_DEVICE_BLOCK_SIZE=512 overrides device.block_size.
package config
