// Package httpserver runs an http.Handler with configurable timeouts,
// graceful shutdown and lifecycle logging.
//
// Run binds the listener, fires start hooks and serves until the context is
// cancelled, SIGINT/SIGTERM arrives or Shutdown is called. Shutdown waits up to
// the shutdown timeout for in-flight requests and then fires stop hooks.
// Errors are joined with ErrStart or ErrShutdown for errors.Is checks.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// LivenessHandler and ReadinessHandler serve health checks; readiness checks
// run with the request context, for example a ping of the Customer API.
package httpserver
