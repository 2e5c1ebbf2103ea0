// Package web serves the browser client: a login form and a details form
// backed by the JSON API.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"

	"github.com/klauspost/compress/gzhttp"
)

//go:embed assets
var embedded embed.FS

// Index is served for the root path and for every unknown path.
const Index = "index.html"

var contentTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "application/javascript; charset=utf-8",
}

var routes = map[string]string{
	"/":           Index,
	"/index.html": Index,
	"/styles.css": "styles.css",
	"/app.js":     "app.js",
}

// Assets returns the built-in assets, or the contents of dir when it is set.
func Assets(dir string) (fs.FS, error) {
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", dir)
		}
		return os.DirFS(dir), nil
	}
	return fs.Sub(embedded, "assets")
}

// Handler serves the known asset paths from fsys and falls back to the index
// page for anything else, so client-side routes survive a reload. Responses
// are gzip-compressed for clients that accept it.
func Handler(fsys fs.FS) http.Handler {
	return gzhttp.GzipHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name, ok := routes[r.URL.Path]
		if !ok {
			name = Index
		}
		serveFile(w, fsys, name)
	}))
}

func serveFile(w http.ResponseWriter, fsys fs.FS, name string) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Not found"))
		return
	}

	ct, ok := contentTypes[path.Ext(name)]
	if !ok {
		ct = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ct)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
