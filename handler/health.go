package handler

import "net/http"

// Version is the application version reported by the healthcheck.
const Version = "1.0.0"

// Healthcheck godoc
// @Summary Report service status
// @Tags ops
// @Produce json
// @Success 200
// @Router /api/healthcheck [get]
func (h *Handler) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	health := envelope{
		"status": "available",
		"system_info": map[string]string{
			"environment": h.config.Server.Env,
			"version":     Version,
		},
	}
	err := h.encodeJSON(w, http.StatusOK, health, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
