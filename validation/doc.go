// Package validation validates configuration structs.
//
// Struct tag validation uses go-playground/validator and reports fields by
// their mapstructure names, so messages match the keys in config.yml.
// Relations between fields are checked with the programmatic Validator.
//
// # Struct Tag Validation
//
//	type Config struct {
//	    ComputeUnits int `mapstructure:"compute_units" validate:"gte=0,lte=1024"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.PowerOfTwo("block_size", cfg.BlockSize)
//	if appErr := v.Validate(); appErr != nil { ... }
//
// Both forms return an INVALID_CONFIG errors.AppError.
package validation
