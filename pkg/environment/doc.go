// Package environment propagates the application environment (development,
// staging, production) through configuration, context.Context, HTTP requests
// and structured logs.
//
// Parse turns the APP_ENV configuration value into an Environment. The value
// decides the console and logger mode at startup:
//
//	env := environment.Parse(cfg.AppEnv)
//	mode := logger.ModeFor(env)
//
// Middleware stores the environment on every request context and
// LoggerExtractor exposes it as an "env" log attribute:
//
//	r.Use(environment.Middleware(env))
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//
// Missing values result in the zero value ("").
package environment
