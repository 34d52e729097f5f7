package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/zipkit/errors"
)

type tileConfig struct {
	BlockSize    int    `mapstructure:"block_size" validate:"gt=0,lte=4096"`
	ComputeUnits int    `mapstructure:"compute_units" validate:"gte=0"`
	Name         string `mapstructure:"name" validate:"required,max=8"`
	Mode         string `mapstructure:"mode" validate:"omitempty,oneof=host device"`
	Inner        inner  `mapstructure:"inner"`
}

type inner struct {
	ItemsPerThread int `validate:"min=1"`
}

func validTile() tileConfig {
	return tileConfig{BlockSize: 256, Name: "cpu", Mode: "device", Inner: inner{ItemsPerThread: 4}}
}

func TestValidate_Valid(t *testing.T) {
	if err := Validate(validTile()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidate_Fields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*tileConfig)
		field   string
		message string
	}{
		{"gt", func(c *tileConfig) { c.BlockSize = 0 }, "block_size", "must be greater than 0"},
		{"lte", func(c *tileConfig) { c.BlockSize = 5000 }, "block_size", "must be at most 4096"},
		{"gte", func(c *tileConfig) { c.ComputeUnits = -1 }, "compute_units", "must be at least 0"},
		{"required", func(c *tileConfig) { c.Name = "" }, "name", "is required"},
		{"max string", func(c *tileConfig) { c.Name = "accelerator" }, "name", "must be at most 8 characters"},
		{"oneof", func(c *tileConfig) { c.Mode = "gpu" }, "mode", "must be one of: host device"},
		{"nested snake case", func(c *tileConfig) { c.Inner.ItemsPerThread = 0 }, "inner.items_per_thread", "must be at least 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTile()
			tt.mutate(&cfg)

			err := Validate(cfg)
			if !errors.IsCode(err, errors.ErrCodeInvalidConfig) {
				t.Fatalf("expected INVALID_CONFIG, got %v", err)
			}
			appErr, _ := errors.AsAppError(err)
			fields, ok := appErr.Details["fields"].([]FieldError)
			if !ok || len(fields) != 1 {
				t.Fatalf("expected one field error, got %v", appErr.Details["fields"])
			}
			if fields[0].Field != tt.field || fields[0].Message != tt.message {
				t.Errorf("got %+v, want %s: %s", fields[0], tt.field, tt.message)
			}
			if !strings.Contains(appErr.Message, tt.field+": "+tt.message) {
				t.Errorf("message %q does not mention the field", appErr.Message)
			}
		})
	}
}

func TestValidate_NotAStruct(t *testing.T) {
	err := Validate(42)
	if !errors.IsCode(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestValidator_NoErrors(t *testing.T) {
	v := New().
		Range("compute_units", 4, 0, 64).
		Min("items_per_thread", 1, 1).
		PowerOfTwo("block_size", 256).
		OneOf("format", "json", []string{"json", "console"}).
		OneOf("format", "", []string{"json"}).
		Custom(true, "x", "never")
	if v.HasErrors() {
		t.Errorf("expected no errors, got %v", v.Errors())
	}
	if v.Validate() != nil {
		t.Error("Validate should return nil without errors")
	}
}

func TestValidator_Collects(t *testing.T) {
	v := New().
		Range("compute_units", 100, 0, 64).
		Min("items_per_thread", 0, 1).
		OneOf("format", "xml", []string{"json", "console"}).
		Custom(false, "max_launch_size", "must cover one block")

	if got := len(v.Errors()); got != 4 {
		t.Fatalf("expected 4 errors, got %d: %v", got, v.Errors())
	}
	appErr := v.Validate()
	if appErr == nil || appErr.Code != errors.ErrCodeInvalidConfig {
		t.Fatalf("expected INVALID_CONFIG, got %v", appErr)
	}
	if !strings.Contains(appErr.Message, "max_launch_size: must cover one block") {
		t.Errorf("unexpected message %q", appErr.Message)
	}
}

func TestValidator_PowerOfTwo(t *testing.T) {
	tests := []struct {
		value int
		ok    bool
	}{
		{1, true}, {2, true}, {64, true}, {1024, true},
		{0, false}, {-4, false}, {3, false}, {96, false},
	}
	for _, tt := range tests {
		v := New().PowerOfTwo("n", tt.value)
		if v.HasErrors() == tt.ok {
			t.Errorf("PowerOfTwo(%d): errors=%v, want ok=%v", tt.value, v.Errors(), tt.ok)
		}
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"BlockSize":      "block_size",
		"ItemsPerThread": "items_per_thread",
		"name":           "name",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
