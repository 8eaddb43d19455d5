// Package requestid attaches a correlation id to every HTTP request and
// carries it into logs and upstream calls.
//
// Middleware reuses a well-formed "X-Request-ID" header or generates a UUIDv4,
// stores it in the request context and echoes it in the response. Transport
// copies the id from the outgoing request context to the upstream request, so
// one id follows a customer submission from the browser to the Customer API.
// LoggerExtractor exposes it as the "request_id" log attribute.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	client := &http.Client{Transport: requestid.Transport(nil)}
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//
// Invalid or empty ids supplied by a client are silently replaced.
package requestid
