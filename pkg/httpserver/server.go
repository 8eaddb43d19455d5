package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

type config struct {
	addr              string
	readTimeout       time.Duration
	readHeaderTimeout time.Duration
	writeTimeout      time.Duration
	idleTimeout       time.Duration
	shutdownTimeout   time.Duration
	maxHeaderBytes    int
	logger            *slog.Logger
	startHooks        []func(*slog.Logger)
	stopHooks         []func(*slog.Logger)
}

func defaultConfig() *config {
	return &config{
		addr:              ":8080",
		readTimeout:       30 * time.Second,
		readHeaderTimeout: 5 * time.Second,
		writeTimeout:      30 * time.Second,
		idleTimeout:       120 * time.Second,
		shutdownTimeout:   5 * time.Second,
		maxHeaderBytes:    64 << 10,
	}
}

// Server wraps http.Server with graceful shutdown and logging.
type Server struct {
	cfg  *config
	once sync.Once

	mu  sync.Mutex
	srv *http.Server
	ln  net.Listener
}

// New returns a configured Server.
func New(opts ...Option) *Server {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return &Server{cfg: cfg}
}

// Addr returns the bound listener address once Run has started listening,
// or the configured address before that.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.cfg.addr
}

// Run listens on the configured address and serves handler until ctx is
// cancelled, SIGINT/SIGTERM is received or Shutdown is called.
// Start hooks run after the listener is bound. Errors wrap ErrStart.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}

	ln, err := net.Listen("tcp", s.cfg.addr)
	if err != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, err)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadTimeout:       s.cfg.readTimeout,
		ReadHeaderTimeout: s.cfg.readHeaderTimeout,
		WriteTimeout:      s.cfg.writeTimeout,
		IdleTimeout:       s.cfg.idleTimeout,
		MaxHeaderBytes:    s.cfg.maxHeaderBytes,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
	s.srv, s.ln = srv, ln
	s.mu.Unlock()

	log := s.cfg.logger
	log.InfoContext(ctx, "http server started", slog.String("addr", ln.Addr().String()))
	for _, h := range s.cfg.startHooks {
		h(log)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	var runErr error
	select {
	case <-ctx.Done():
		runErr = s.shutdownAndWait(errCh)
	case sig := <-stop:
		log.InfoContext(ctx, "shutdown signal received", slog.String("signal", sig.String()))
		runErr = s.shutdownAndWait(errCh)
	case runErr = <-errCh:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, runErr)
	}
	return nil
}

func (s *Server) shutdownAndWait(errCh <-chan error) error {
	if err := s.Shutdown(context.Background()); err != nil {
		s.cfg.logger.Error("graceful shutdown failed", slog.String("error", err.Error()))
	}
	return <-errCh
}

// Shutdown stops the server gracefully, waiting up to the shutdown timeout
// for in-flight requests. It is a no-op before Run and safe for repeated calls.
// Any error from http.Server.Shutdown is wrapped with ErrShutdown.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	var err error
	s.once.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
		defer cancel()
		err = srv.Shutdown(ctx)

		for _, h := range s.cfg.stopHooks {
			h(s.cfg.logger)
		}
		s.cfg.logger.Info("http server stopped")
	})

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
