package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/kbukum/zipkit/errors"
	"github.com/kbukum/zipkit/logger"
)

type tile struct {
	ComputeUnits int `mapstructure:"compute_units"`
	BlockSize    int `mapstructure:"block_size"`
}

type testConfig struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Device        tile `mapstructure:"device"`
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

const yamlContent = `
name: zipbench
environment: staging
version: "1.0.0"
logging:
  level: warn
  format: json
device:
  compute_units: 4
  block_size: 128
`

func TestLoadConfig_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", yamlContent)

	var cfg testConfig
	if err := LoadConfig("zipbench", &cfg, WithConfigFile(path), WithEnvPrefix("ZIPKIT_TEST_YAML")); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "zipbench" || cfg.Environment != "staging" || cfg.Version != "1.0.0" {
		t.Errorf("unexpected base config: %+v", cfg.BaseConfig)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
	if cfg.Device.ComputeUnits != 4 || cfg.Device.BlockSize != 128 {
		t.Errorf("unexpected device config: %+v", cfg.Device)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", yamlContent)
	t.Setenv("ZIPKIT_DEVICE_BLOCK_SIZE", "512")
	t.Setenv("ZIPKIT_LOGGING_NO_COLOR", "true")
	t.Setenv("OTHER_DEVICE_COMPUTE_UNITS", "99")

	var cfg testConfig
	if err := LoadConfig("zipbench", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Device.BlockSize != 512 {
		t.Errorf("expected env override 512, got %d", cfg.Device.BlockSize)
	}
	if !cfg.Logging.NoColor {
		t.Error("expected logging.no_color from env")
	}
	if cfg.Device.ComputeUnits != 4 {
		t.Errorf("unprefixed variable must be ignored, got %d", cfg.Device.ComputeUnits)
	}
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "ZIPKIT_ENVFILE_DEVICE_COMPUTE_UNITS=7\n")
	t.Cleanup(func() { os.Unsetenv("ZIPKIT_ENVFILE_DEVICE_COMPUTE_UNITS") })

	var cfg testConfig
	err := LoadConfig("zipbench", &cfg,
		WithConfigFile(filepath.Join(dir, "missing.yml")),
		WithEnvFile(envPath),
		WithEnvPrefix("ZIPKIT_ENVFILE"),
	)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Device.ComputeUnits != 7 {
		t.Errorf("expected compute_units from .env, got %d", cfg.Device.ComputeUnits)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	var cfg testConfig
	err := LoadConfig("zipbench", &cfg,
		WithConfigFile("/nonexistent/path.yml"),
		WithEnvPrefix("ZIPKIT_DEFAULTS_UNSET"),
		WithDefaults(map[string]any{"device.block_size": 64, "name": "fallback"}),
	)
	if err != nil {
		t.Fatalf("expected LoadConfig to succeed with missing file, got %v", err)
	}
	if cfg.Device.BlockSize != 64 || cfg.Name != "fallback" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", "device: [unterminated\n")

	var cfg testConfig
	err := LoadConfig("zipbench", &cfg, WithConfigFile(path))
	if !errors.IsCode(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestLoadConfig_BadType(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", "device:\n  block_size: lots\n")

	var cfg testConfig
	err := LoadConfig("zipbench", &cfg, WithConfigFile(path), WithEnvPrefix("ZIPKIT_BADTYPE"))
	if !errors.IsCode(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("expected INVALID_CONFIG, got %v", err)
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool  { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }

func TestResolver(t *testing.T) {
	tests := []struct {
		name       string
		files      []string
		wantConfig string
		wantEnv    string
	}{
		{"cmd dir", []string{"./cmd/zipbench/config.yml", "./cmd/zipbench/.env"}, "./cmd/zipbench/config.yml", "./cmd/zipbench/.env"},
		{"parent cmd dir", []string{"../cmd/zipbench/config.yml"}, "../cmd/zipbench/config.yml", ""},
		{"named env wins", []string{"./.env", "./config/.env.zipbench"}, "", "./config/.env.zipbench"},
		{"working dir", []string{"./config.yml", "./.env"}, "./config.yml", "./.env"},
		{"nothing", nil, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := &mockFS{files: map[string]bool{}}
			for _, f := range tt.files {
				fs.files[f] = true
			}
			r := &Resolver{FileSystem: fs}
			got := r.ResolveFiles("zipbench", LoaderConfig{})
			if got.ConfigFile != tt.wantConfig || got.EnvFile != tt.wantEnv {
				t.Errorf("got %+v, want config=%q env=%q", got, tt.wantConfig, tt.wantEnv)
			}
		})
	}
}

func TestResolver_ExplicitPaths(t *testing.T) {
	r := &Resolver{FileSystem: &mockFS{files: map[string]bool{"./config.yml": true}}}
	got := r.ResolveFiles("zipbench", LoaderConfig{ConfigFile: "/etc/zip.yml", EnvFile: "/etc/zip.env"})
	if got.ConfigFile != "/etc/zip.yml" || got.EnvFile != "/etc/zip.env" {
		t.Errorf("explicit paths not kept: %+v", got)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	got := envKeyVariants("DEVICE_BLOCK_SIZE")
	for _, want := range []string{"device_block_size", "device.block.size", "device.block_size", "device_block.size"} {
		if !slices.Contains(got, want) {
			t.Errorf("variants %v missing %q", got, want)
		}
	}
	if len(got) != 4 {
		t.Errorf("expected 4 unique variants, got %v", got)
	}
	if got := envKeyVariants("NAME"); len(got) != 1 || got[0] != "name" {
		t.Errorf("single part key: %v", got)
	}
}

func TestBaseConfig_ApplyDefaults(t *testing.T) {
	cfg := BaseConfig{Name: "svc"}
	cfg.ApplyDefaults()
	if cfg.Environment != "development" || !cfg.Debug {
		t.Errorf("unexpected defaults: %+v", cfg)
	}

	cfg = BaseConfig{Name: "svc", Environment: "production"}
	cfg.ApplyDefaults()
	if cfg.Debug {
		t.Error("expected debug=false for production")
	}
}

func TestServiceConfig_ApplyDefaults(t *testing.T) {
	cfg := ServiceConfig{BaseConfig: BaseConfig{Name: "svc"}}
	cfg.ApplyDefaults()
	if cfg.Logging.Level != "debug" {
		t.Errorf("development should default to debug logging, got %q", cfg.Logging.Level)
	}

	cfg = ServiceConfig{BaseConfig: BaseConfig{Name: "svc"}, Logging: logger.Config{Level: "error"}}
	cfg.ApplyDefaults()
	if cfg.Logging.Level != "error" {
		t.Errorf("explicit level overwritten: %q", cfg.Logging.Level)
	}
}

func TestServiceConfig_Validate(t *testing.T) {
	valid := func() ServiceConfig {
		c := ServiceConfig{BaseConfig: BaseConfig{Name: "svc", Environment: "production"}}
		c.ApplyDefaults()
		return c
	}
	tests := []struct {
		name   string
		mutate func(*ServiceConfig)
		errMsg string
	}{
		{"valid", func(*ServiceConfig) {}, ""},
		{"missing name", func(c *ServiceConfig) { c.Name = "" }, "name: is required"},
		{"invalid environment", func(c *ServiceConfig) { c.Environment = "qa" }, "environment: must be one of"},
		{"invalid logging", func(c *ServiceConfig) { c.Logging.Format = "xml" }, "logging: logging.format"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.errMsg == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.errMsg) {
				t.Errorf("expected error containing %q, got %v", tc.errMsg, err)
			}
		})
	}
}
