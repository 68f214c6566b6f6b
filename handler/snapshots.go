package handler

import (
	"errors"
	"net/http"

	"github.com/emzola/sdmagic/data/dto"
	"github.com/emzola/sdmagic/service"
)

// CreateSnapshot godoc
// @Summary Export a snapshot
// @Description This endpoint exports all categories, prompts and templates to object storage. The upload runs in the background
// @Tags snapshots
// @Accept  json
// @Produce json
// @Security BasicAuth
// @Param body body dto.CreateSnapshotRequestBody false "Snapshot format, json (default) or yaml"
// @Success 202
// @Failure 400
// @Failure 401
// @Failure 422
// @Failure 500
// @Failure 503
// @Router /api/snapshots [post]
func (h *Handler) createSnapshotHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateSnapshotRequestBody
	if r.ContentLength != 0 {
		err := h.decodeJSON(w, r, &requestBody)
		if err != nil {
			h.badRequestResponse(w, r, err)
			return
		}
	}
	key, err := h.service.ExportSnapshot(r.Context(), requestBody.Format)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStorageDisabled):
			h.storageDisabledResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusAccepted, envelope{"key": key}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
