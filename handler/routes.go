package handler

import (
	"expvar"
	"net/http"

	"github.com/emzola/sdmagic/internal/spa"
	"github.com/julienschmidt/httprouter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func (h *Handler) Routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(h.fallbackHandler)
	router.MethodNotAllowed = http.HandlerFunc(h.methodNotAllowed)

	router.HandlerFunc(http.MethodGet, "/api/categories", h.listCategoriesHandler)
	router.HandlerFunc(http.MethodPost, "/api/categories", h.createCategoryHandler)
	router.HandlerFunc(http.MethodGet, "/api/categories/:categoryId", h.showCategoryHandler)
	router.HandlerFunc(http.MethodPut, "/api/categories/:categoryId", h.updateCategoryHandler)
	router.HandlerFunc(http.MethodPatch, "/api/categories/:categoryId", h.updateCategoryHandler)
	router.HandlerFunc(http.MethodDelete, "/api/categories/:categoryId", h.deleteCategoryHandler)

	router.HandlerFunc(http.MethodGet, "/api/prompts", h.listPromptsHandler)
	router.HandlerFunc(http.MethodPost, "/api/prompts", h.createPromptHandler)
	router.HandlerFunc(http.MethodGet, "/api/prompts/:promptId", h.showPromptHandler)
	router.HandlerFunc(http.MethodPut, "/api/prompts/:promptId", h.updatePromptHandler)
	router.HandlerFunc(http.MethodPatch, "/api/prompts/:promptId", h.updatePromptHandler)
	router.HandlerFunc(http.MethodDelete, "/api/prompts/:promptId", h.deletePromptHandler)

	router.HandlerFunc(http.MethodGet, "/api/templates", h.listTemplatesHandler)
	router.HandlerFunc(http.MethodPost, "/api/templates", h.createTemplateHandler)
	router.HandlerFunc(http.MethodGet, "/api/templates/:templateId", h.showTemplateHandler)
	router.HandlerFunc(http.MethodPut, "/api/templates/:templateId", h.updateTemplateHandler)
	router.HandlerFunc(http.MethodPatch, "/api/templates/:templateId", h.updateTemplateHandler)
	router.HandlerFunc(http.MethodDelete, "/api/templates/:templateId", h.deleteTemplateHandler)

	router.HandlerFunc(http.MethodPost, "/api/snapshots", h.basicAuth(h.createSnapshotHandler))

	router.HandlerFunc(http.MethodGet, "/api/healthcheck", h.healthcheckHandler)
	router.HandlerFunc(http.MethodGet, "/debug/vars", h.basicAuth(expvar.Handler().ServeHTTP))

	// Swagger routes
	router.HandlerFunc(http.MethodGet, "/spec", h.handleSwaggerFile())
	router.HandlerFunc(http.MethodGet, "/docs/*any", httpSwagger.Handler(httpSwagger.URL("/spec")))

	// Front-end routes answer HEAD like the shell fallback does.
	for _, method := range []string{http.MethodGet, http.MethodHead} {
		for _, route := range spa.Table {
			router.HandlerFunc(method, route.Path, h.routeHandler(route))
		}
		router.HandlerFunc(method, "/static/*filepath", h.staticHandler(""))
		router.HandlerFunc(method, "/assets/*filepath", h.staticHandler("assets"))
	}

	return h.recoverPanic(h.metrics(h.enableCORS(h.rateLimit(router))))
}
