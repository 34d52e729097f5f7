// Command zipbench runs a sum-of-three transform over three zipped arrays on
// the sequential host queue and on a parallel device queue, checks that both
// produce the same output and logs the timings.
//
// Configuration is read from config.yml and ZIPKIT_* environment variables,
// e.g. ZIPKIT_BENCH_SIZE=4194304 or ZIPKIT_DEVICE_COMPUTE_UNITS=8.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kbukum/zipkit/bootstrap"
	"github.com/kbukum/zipkit/config"
	"github.com/kbukum/zipkit/device"
	"github.com/kbukum/zipkit/logger"
	"github.com/kbukum/zipkit/observability"
	"github.com/kbukum/zipkit/version"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "zipbench:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg BenchConfig
	if err := config.LoadConfig("zipbench", &cfg); err != nil {
		return err
	}

	app, err := bootstrap.NewApp(&cfg)
	if err != nil {
		return err
	}
	log := app.Logger.WithComponent("zipbench")
	log.Info("build", version.Get().Fields())

	providers, err := observability.Setup(ctx, observability.ServiceInfo{
		Name:        cfg.Name,
		Version:     app.Version,
		Environment: cfg.Environment,
	}, cfg.Observability)
	if err != nil {
		return err
	}
	app.OnStop(providers.Shutdown)

	opts := []device.Option{device.WithLogger(logger.Get("device"))}
	if providers.Tracer != nil {
		opts = append(opts, device.WithTracerProvider(providers.Tracer))
	}
	if providers.Meter != nil {
		opts = append(opts, device.WithMeterProvider(providers.Meter))
	}
	dev, err := device.New(cfg.Device, opts...)
	if err != nil {
		return err
	}
	if err := app.RegisterComponent(dev); err != nil {
		return err
	}

	return app.RunTask(ctx, func(ctx context.Context) error {
		host := device.NewHostQueue(opts...)
		defer host.Close()
		q, err := dev.NewQueue()
		if err != nil {
			return err
		}
		defer q.Close()

		res, err := runBench(ctx, cfg.Bench, host, q, log)
		if err != nil {
			return err
		}
		log.Info("benchmark complete", logger.Fields(
			logger.FieldItems, res.Size,
			"rounds", res.Rounds,
			"host_ms", float64(res.Host.Microseconds())/1000,
			"device_ms", float64(res.Device.Microseconds())/1000,
			"speedup", res.Speedup(),
			"units", dev.Info().ComputeUnits,
		))
		return nil
	})
}
