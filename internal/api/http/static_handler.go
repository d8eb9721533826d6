package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// StaticHandler serves the front-end bundle. Unknown paths without an extension
// fall back to index.html so client-side routes survive a reload.
type StaticHandler struct {
	dir string
	fs  http.Handler
}

func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir, fs: http.FileServer(http.Dir(dir))}
}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	clean := path.Clean("/" + r.URL.Path)
	full := filepath.Join(h.dir, filepath.FromSlash(clean))
	if _, err := os.Stat(full); err != nil && filepath.Ext(clean) == "" {
		w.Header().Set("Cache-Control", "no-cache")
		http.ServeFile(w, r, filepath.Join(h.dir, "index.html"))
		return
	}

	if strings.HasPrefix(clean, "/assets/") {
		w.Header().Set("Cache-Control", "public, max-age=3600")
	}
	h.fs.ServeHTTP(w, r)
}
