package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/customerdesk/handler"
	"github.com/dmitrymomot/customerdesk/modules/customers"
	"github.com/dmitrymomot/customerdesk/pkg/clientip"
	"github.com/dmitrymomot/customerdesk/pkg/config"
	"github.com/dmitrymomot/customerdesk/pkg/customer"
	"github.com/dmitrymomot/customerdesk/pkg/customerapi"
	"github.com/dmitrymomot/customerdesk/pkg/environment"
	"github.com/dmitrymomot/customerdesk/pkg/httpserver"
	"github.com/dmitrymomot/customerdesk/pkg/logger"
	"github.com/dmitrymomot/customerdesk/pkg/ratelimiter"
	"github.com/dmitrymomot/customerdesk/pkg/redis"
	"github.com/dmitrymomot/customerdesk/pkg/requestid"
	"github.com/dmitrymomot/customerdesk/pkg/validator"
)

func main() {
	if err := run(context.Background()); err != nil {
		mode := logger.ModeFor(environment.Parse(os.Getenv("APP_ENV")))
		logger.NewConsole(os.Stdout, mode, logger.WithErrorOutput(os.Stderr)).Error("customerdesk:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if err := config.LoadEnv(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	env := environment.Parse(cfg.Env)
	log, err := newLogger(cfg, env)
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	patterns, err := loadPatterns(cfg.PatternsFile)
	if err != nil {
		return err
	}

	client, err := customerapi.NewFromConfig(cfg.CustomerAPI)
	if err != nil {
		return err
	}

	svc := customer.NewService(client, customer.NewValidator(patterns), log)

	readiness := []httpserver.Check{client.Ping}

	var store ratelimiter.Store
	if cfg.Redis.Enabled() {
		rdb, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close()

		store = ratelimiter.NewRedisStore(rdb)
		readiness = append(readiness, redis.Healthcheck(rdb))
	} else {
		mem := ratelimiter.NewMemoryStore()
		defer mem.Close()
		store = mem
	}

	var serviceOpts []customers.ServiceOption
	if !cfg.SubmitLimit.Disabled {
		bucket, err := ratelimiter.NewBucket(store, cfg.SubmitLimit)
		if err != nil {
			return err
		}
		serviceOpts = append(serviceOpts, customers.WithSubmitLimiter(bucket))
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware, clientip.Middleware(cfg.TrustProxyHeaders), environment.Middleware(env))
	r.Mount("/", customers.Router(customers.RouterOptions{
		Customers: customers.NewService(svc, handler.NewErrorHandler(log), serviceOpts...),
		Health:    httpserver.LivenessHandler(),
		Ready:     httpserver.ReadinessHandler(log, cfg.ReadinessTimeout, readiness...),
	}))

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}

func newLogger(cfg Config, env environment.Environment) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(env, cfg.ServiceName),
		logger.WithSanitizer(),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			environment.LoggerExtractor(),
		),
	}

	if cfg.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
		}
		opts = append(opts, logger.WithLevel(level))
	}

	return logger.New(opts...), nil
}

// loadPatterns returns the built-in deny-list, extended by the YAML file at
// path when one is configured.
func loadPatterns(path string) (*validator.PatternSet, error) {
	if path == "" {
		return validator.DefaultPatternSet(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dangerous patterns file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return validator.LoadPatternSet(f)
}
