package handler

import (
	"net/http"

	"github.com/emzola/sdmagic/docs"
)

// handleSwaggerFile serves the OpenAPI document registered by the docs package.
func (h *Handler) handleSwaggerFile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(docs.SwaggerInfo.ReadDoc()))
	}
}
