// Package static provides the embedded page script, stylesheet and icon.
package static

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed app.js app.css favicon.svg
var files embed.FS

// Handler returns an http.Handler that serves static files. Mount it under
// "/static/" with the prefix stripped.
func Handler() http.Handler {
	return http.FileServer(http.FS(files))
}

// Favicon serves favicon.svg at the site root.
func Favicon(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, files, "favicon.svg")
}

// FS returns the embedded filesystem.
func FS() fs.FS {
	return files
}
