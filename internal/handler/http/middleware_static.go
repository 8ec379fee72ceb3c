package http

import (
	"net/http"
	"path"
)

// withStaticFiles serves GET and HEAD requests that name an existing file (or
// a directory with an index.html) under the configured static directory.
// Everything else goes on through the pipeline.
func (h *Handler) withStaticFiles(next http.Handler) http.Handler {
	if h.cfg.StaticDir == "" {
		return next
	}

	root := http.Dir(h.cfg.StaticDir)
	files := http.FileServer(root)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}
		if !staticFileExists(root, r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		files.ServeHTTP(w, r)
	})
}

func staticFileExists(root http.FileSystem, urlPath string) bool {
	name := path.Clean("/" + urlPath)

	f, err := root.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false
	}
	if !info.IsDir() {
		return true
	}

	index, err := root.Open(path.Join(name, "index.html"))
	if err != nil {
		return false
	}
	index.Close()
	return true
}
