package api

import (
	"errors"
	"io/fs"
	"net/http"
	pathpkg "path"
	"strings"

	"github.com/go-chi/chi/v5"
)

// FileServer serves static files from root under path. Paths that do not
// exist and have no extension get index.html so client side routes load.
func FileServer(r chi.Router, path string, root http.FileSystem) {
	if strings.ContainsAny(path, "{}*") {
		panic("FileServer does not permit URL parameters.")
	}

	if path != "/" && path[len(path)-1] != '/' {
		r.Get(path, http.RedirectHandler(path+"/", http.StatusMovedPermanently).ServeHTTP)
		path += "/"
	}
	path += "*"

	r.Get(path, func(w http.ResponseWriter, req *http.Request) {
		rctx := chi.RouteContext(req.Context())
		pathPrefix := strings.TrimSuffix(rctx.RoutePattern(), "/*")

		name := pathpkg.Clean("/" + strings.TrimPrefix(req.URL.Path, pathPrefix))
		if f, err := root.Open(name); err == nil {
			f.Close()
		} else if errors.Is(err, fs.ErrNotExist) && pathpkg.Ext(name) == "" {
			req = req.Clone(req.Context())
			req.URL.Path = pathPrefix + "/"
		}

		handler := http.StripPrefix(pathPrefix, http.FileServer(root))
		handler.ServeHTTP(w, req)
	})
}
