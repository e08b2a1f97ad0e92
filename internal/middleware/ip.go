package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ExtractIP returns the client IP address without port. X-Forwarded-For
// (first entry) and X-Real-IP are honored before RemoteAddr.
//
// The Mini App is served behind the Telegram-facing reverse proxy; when
// exposed directly these headers can be spoofed to dodge rate limiting.
func ExtractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
