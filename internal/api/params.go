package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/meur/homepage/internal/models"
)

func parseInt(name, raw string) (int, error) {
	if raw == "" {
		return 0, goerr.New("missing parameter", goerr.V("name", name), goerr.T(models.ErrTagInvalidArgument))
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, goerr.New("invalid "+name, goerr.V(name, raw), goerr.T(models.ErrTagInvalidArgument))
	}
	return v, nil
}

func urlInt(r *http.Request, name string) (int, error) {
	return parseInt(name, chi.URLParam(r, name))
}

func queryInt(r *http.Request, name string) (int, error) {
	return parseInt(name, r.URL.Query().Get(name))
}

// queryBool treats a missing parameter as false
func queryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, goerr.New("invalid "+name, goerr.V(name, raw), goerr.T(models.ErrTagInvalidArgument))
	}
	return v, nil
}
