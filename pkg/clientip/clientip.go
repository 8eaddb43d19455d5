package clientip

import (
	"net"
	"net/http"
	"strings"
)

// proxyHeaders are consulted in order when forwarding headers are trusted.
var proxyHeaders = []string{"CF-Connecting-IP", "X-Real-IP"}

// FromRequest returns the client IP address of r.
//
// Forwarding headers are attacker controlled unless a proxy in front of the
// service overwrites them, so they are only read when trustProxy is set.
// In that case the order is CF-Connecting-IP, the first valid address of
// X-Forwarded-For, X-Real-IP, then RemoteAddr.
// Only values that parse as IP addresses are returned; anything else yields
// an empty string.
func FromRequest(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if ip := parseIP(r.Header.Get(proxyHeaders[0])); ip != "" {
			return ip
		}
		for candidate := range strings.SplitSeq(r.Header.Get("X-Forwarded-For"), ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
		if ip := parseIP(r.Header.Get(proxyHeaders[1])); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP validates and normalizes an IP address string.
func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}
