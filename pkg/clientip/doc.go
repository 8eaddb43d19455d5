// Package clientip resolves the originating client IP address of a request.
//
// Proxy headers (CF-Connecting-IP, X-Forwarded-For, X-Real-IP) are read only
// when the service is configured to trust them; otherwise the TCP peer
// address is used. Values that do not parse as an IP address are discarded,
// so the resolved address is safe to put into log records.
//
//	r.Use(clientip.Middleware(cfg.TrustProxyHeaders))
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
package clientip
