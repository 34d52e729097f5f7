package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/zipkit/component"
	"github.com/kbukum/zipkit/config"
	"github.com/kbukum/zipkit/logger"
)

type testConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Units                int `mapstructure:"units"`
}

func (c *testConfig) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	if c.Units == 0 {
		c.Units = 2
	}
}

type testComponent struct {
	name    string
	health  component.HealthStatus
	stopErr error
	events  *[]string
}

func (c *testComponent) Name() string { return c.name }

func (c *testComponent) Start(ctx context.Context) error {
	*c.events = append(*c.events, "start:"+c.name)
	return nil
}

func (c *testComponent) Stop(ctx context.Context) error {
	*c.events = append(*c.events, "stop:"+c.name)
	return c.stopErr
}

func (c *testComponent) Health(ctx context.Context) component.Health {
	status := c.health
	if status == "" {
		status = component.StatusHealthy
	}
	return component.Health{Name: c.name, Status: status}
}

func (c *testComponent) Describe() string { return "test unit" }

func newTestApp(t *testing.T, out *bytes.Buffer) *App[*testConfig] {
	t.Helper()
	cfg := &testConfig{ServiceConfig: config.ServiceConfig{BaseConfig: config.BaseConfig{Name: "bench"}}}
	app, err := NewApp(cfg, WithLogger(logger.Nop()), WithSummaryWriter(out), WithGracefulTimeout(time.Second))
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	return app
}

func TestNewApp_AppliesDefaults(t *testing.T) {
	var out bytes.Buffer
	app := newTestApp(t, &out)

	if app.Cfg.Units != 2 || app.Cfg.Environment != "development" {
		t.Errorf("defaults not applied: %+v", app.Cfg)
	}
	if app.Name != "bench" || app.Version == "" {
		t.Errorf("unexpected name/version %q %q", app.Name, app.Version)
	}
	if app.gracefulTimeout != time.Second {
		t.Errorf("expected graceful timeout 1s, got %v", app.gracefulTimeout)
	}
}

func TestNewApp_InvalidConfig(t *testing.T) {
	_, err := NewApp(&testConfig{}, WithLogger(logger.Nop()))
	if err == nil || !strings.Contains(err.Error(), "config validation") {
		t.Fatalf("expected config validation error, got %v", err)
	}
}

func TestRunTask_Lifecycle(t *testing.T) {
	var out bytes.Buffer
	app := newTestApp(t, &out)
	var events []string

	_ = app.RegisterComponent(&testComponent{name: "a", events: &events})
	_ = app.RegisterComponent(&testComponent{name: "b", events: &events})
	app.OnStart(func(ctx context.Context) error {
		events = append(events, "hook:start")
		return nil
	})
	app.OnStop(func(ctx context.Context) error {
		events = append(events, "hook:stop")
		return nil
	})

	err := app.RunTask(context.Background(), func(ctx context.Context) error {
		events = append(events, "task")
		return nil
	})
	if err != nil {
		t.Fatalf("RunTask() error = %v", err)
	}

	want := []string{"start:a", "start:b", "hook:start", "task", "hook:stop", "stop:b", "stop:a"}
	if strings.Join(events, ",") != strings.Join(want, ",") {
		t.Errorf("events = %v, want %v", events, want)
	}
	summary := out.String()
	if !strings.Contains(summary, "bench v") || !strings.Contains(summary, "a (healthy): test unit") {
		t.Errorf("unexpected summary:\n%s", summary)
	}
	if !strings.Contains(summary, "All components healthy (2/2)") {
		t.Errorf("summary missing health line:\n%s", summary)
	}
}

func TestRunTask_ErrorPrecedence(t *testing.T) {
	var out bytes.Buffer
	app := newTestApp(t, &out)
	var events []string
	stopErr := errors.New("stop failed")
	_ = app.RegisterComponent(&testComponent{name: "a", events: &events, stopErr: stopErr})

	taskErr := errors.New("task failed")
	err := app.RunTask(context.Background(), func(ctx context.Context) error { return taskErr })
	if !errors.Is(err, taskErr) {
		t.Errorf("expected task error, got %v", err)
	}

	app = newTestApp(t, &out)
	_ = app.RegisterComponent(&testComponent{name: "a", events: &events, stopErr: stopErr})
	err = app.RunTask(context.Background(), func(ctx context.Context) error { return nil })
	if !errors.Is(err, stopErr) {
		t.Errorf("expected stop error, got %v", err)
	}
}

func TestRunTask_StartHookFailureStopsComponents(t *testing.T) {
	var out bytes.Buffer
	app := newTestApp(t, &out)
	var events []string
	_ = app.RegisterComponent(&testComponent{name: "a", events: &events})
	app.OnStart(func(ctx context.Context) error { return errors.New("no telemetry") })

	ran := false
	err := app.RunTask(context.Background(), func(ctx context.Context) error { ran = true; return nil })
	if err == nil || !strings.Contains(err.Error(), "onStart hook failed") {
		t.Fatalf("expected hook error, got %v", err)
	}
	if ran {
		t.Error("task ran after a failed start hook")
	}
	if strings.Join(events, ",") != "start:a,stop:a" {
		t.Errorf("events = %v", events)
	}
}

func TestReadyCheck(t *testing.T) {
	var out bytes.Buffer
	app := newTestApp(t, &out)
	var events []string
	_ = app.RegisterComponent(&testComponent{name: "ok", events: &events})
	if err := app.ReadyCheck(context.Background()); err != nil {
		t.Errorf("ReadyCheck() error = %v", err)
	}

	_ = app.RegisterComponent(&testComponent{name: "slow", events: &events, health: component.StatusDegraded})
	err := app.ReadyCheck(context.Background())
	if err == nil || !strings.Contains(err.Error(), "slow=degraded") {
		t.Errorf("expected degraded component in error, got %v", err)
	}
}

func TestSummary_NoComponents(t *testing.T) {
	var out bytes.Buffer
	s := NewSummary("bench", "1.0.0")
	s.out = &out
	s.Display(context.Background(), component.NewRegistry())
	if !strings.Contains(out.String(), "No components registered") {
		t.Errorf("unexpected summary %q", out.String())
	}
}
