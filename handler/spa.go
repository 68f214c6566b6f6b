package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/emzola/sdmagic/internal/spa"
	"github.com/julienschmidt/httprouter"
)

const apiPrefix = "/api/"

// routeHandler serves one entry of the front-end route table.
func (h *Handler) routeHandler(route spa.Route) http.HandlerFunc {
	if route.IsRedirect() {
		return func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, route.Redirect, http.StatusFound)
		}
	}
	return func(w http.ResponseWriter, r *http.Request) {
		file, err := h.views.View(route)
		if err != nil {
			h.viewErrorResponse(w, r, err)
			return
		}
		h.writeFile(w, file)
	}
}

// staticHandler serves a file below dir in the static directory, falling back
// to the application shell when it does not exist.
func (h *Handler) staticHandler(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("filepath")
		file, err := h.views.Asset(dir + name)
		if err != nil {
			if !errors.Is(err, spa.ErrViewNotFound) {
				h.serverErrorResponse(w, r, err)
				return
			}
			h.shellHandler(w, r)
			return
		}
		h.writeFile(w, file)
	}
}

// shellHandler serves the application shell so the front end can route paths
// it owns after a refresh.
func (h *Handler) shellHandler(w http.ResponseWriter, r *http.Request) {
	file, err := h.views.Shell()
	if err != nil {
		h.viewErrorResponse(w, r, err)
		return
	}
	h.writeFile(w, file)
}

// fallbackHandler answers requests no route matched. API paths and non-GET
// requests get a JSON 404; everything else is a front-end path.
func (h *Handler) fallbackHandler(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path+"/", apiPrefix) || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
		h.notFoundResponse(w, r)
		return
	}
	h.shellHandler(w, r)
}

func (h *Handler) viewErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, spa.ErrViewNotFound) {
		h.notFoundResponse(w, r)
		return
	}
	h.serverErrorResponse(w, r, err)
}

func (h *Handler) writeFile(w http.ResponseWriter, file spa.File) {
	w.Header().Set("Content-Type", file.ContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(file.Body)
}
