// Package logger provides structured logging using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with standard field names for queue and kernel
// events.
//
// # Configuration
//
//	logger:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("device")
//	log.Info("launch complete", logger.Fields(logger.FieldKernel, "sum3", logger.FieldItems, 1024))
package logger
