package customers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Mountable is a feature service that exposes its own routes.
type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures which services the module mounts.
// Each service is optional and is only mounted if provided.
type RouterOptions struct {
	Customers Mountable
	Health    http.Handler
	Ready     http.Handler
}

// Router creates the application router.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//	r.Mount("/", customers.Router(customers.RouterOptions{
//		Customers: customers.NewService(svc, errorHandler),
//		Health:    httpserver.LivenessHandler(),
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	if opts.Health != nil {
		r.Method(http.MethodGet, "/health/live", opts.Health)
	}
	if opts.Ready != nil {
		r.Method(http.MethodGet, "/health/ready", opts.Ready)
	}
	if opts.Customers != nil {
		r.Mount("/customers", opts.Customers.Handle())
	}

	return r
}
