package middleware

import (
	"net/http"
	"strings"
)

const (
	cacheNoStore   = "no-store"
	cacheImmutable = "public, max-age=31536000, immutable"
	cacheAssets    = "public, max-age=86400"
	cacheDocs      = "public, max-age=3600"
	cacheAPI       = "public, max-age=60, must-revalidate"

	// Screens carry the user's wallet, preferences and submit tokens.
	cachePages = "private, no-cache"
)

// CacheControl sets Cache-Control by request path:
// icon for a year, page script and styles for a day, API docs for an hour,
// JSON API for a minute. Screens are revalidated on every load and
// writes are never stored.
func CacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", cachePolicy(r))
		next.ServeHTTP(w, r)
	})
}

func cachePolicy(r *http.Request) string {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return cacheNoStore
	}

	path := r.URL.Path
	switch {
	case path == "/favicon.svg":
		return cacheImmutable
	case strings.HasPrefix(path, "/static/"):
		return cacheAssets
	case strings.HasPrefix(path, "/swagger/"):
		return cacheDocs
	case strings.HasPrefix(path, "/api/"):
		return cacheAPI
	default:
		return cachePages
	}
}
