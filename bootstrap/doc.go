// Package bootstrap runs a binary's lifecycle: config defaults and
// validation, logger setup, component startup, the task itself and graceful
// shutdown.
//
//	app, err := bootstrap.NewApp(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = app.RegisterComponent(dev)
//	app.OnStop(providers.Shutdown)
//	if err := app.RunTask(ctx, run); err != nil {
//	    log.Fatal(err)
//	}
package bootstrap
