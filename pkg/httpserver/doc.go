// Package httpserver wraps net/http with graceful shutdown, env-driven
// timeouts, life-cycle hooks and health-check handlers.
//
//	srv := httpserver.NewFromConfig(cfg.Server,
//		httpserver.WithLogger(log),
//		httpserver.WithStopHook(func(context.Context) error { return store.Close() }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run blocks until ctx is cancelled or SIGINT/SIGTERM arrives, then drains
// in-flight requests within the shutdown timeout and runs the stop hooks.
package httpserver
