package rest

import (
	"net/http"
	"os"
	"path/filepath"
)

// FrontendHandler serves the static frontend build, falling back to the index
// document for any path that does not match a file, so client-side routing
// keeps working on page reload.
type FrontendHandler struct {
	staticDir string
	indexFile string
}

func NewFrontendHandler(staticDir, indexFile string) *FrontendHandler {
	return &FrontendHandler{staticDir: staticDir, indexFile: indexFile}
}

func (h *FrontendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.staticDir, filepath.Clean("/"+r.URL.Path))

	if info, err := os.Stat(path); err != nil || info.IsDir() {
		http.ServeFile(w, r, filepath.Join(h.staticDir, h.indexFile))
		return
	}

	http.ServeFile(w, r, path)
}
