package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/emzola/sdmagic/data"
	"github.com/emzola/sdmagic/data/dto"
	"github.com/emzola/sdmagic/internal/validator"
	"github.com/emzola/sdmagic/service"
)

// ListTemplates godoc
// @Summary List templates
// @Description This endpoint lists templates, most recently updated first
// @Tags templates
// @Produce json
// @Param name query string false "Case-insensitive name filter"
// @Param page query int false "Query string param for pagination (min 1)"
// @Param page_size query int false "Query string param for pagination (max 100)"
// @Param sort query string false "Sort by ascending or descending order. Asc: name, created_at, updated_at. Desc: -name, -created_at, -updated_at"
// @Success 200 {array} data.Template
// @Failure 422
// @Failure 500
// @Router /api/templates [get]
func (h *Handler) listTemplatesHandler(w http.ResponseWriter, r *http.Request) {
	var qsInput dto.QsListTemplates
	v := validator.New()
	qs := r.URL.Query()
	qsInput.Name = h.readString(qs, "name", "")
	qsInput.Filters.Page = h.readInt(qs, "page", 1, v)
	qsInput.Filters.PageSize = h.readInt(qs, "page_size", data.TemplatesPerPage, v)
	qsInput.Filters.Sort = h.readString(qs, "sort", "-updated_at")
	qsInput.Filters.SortSafeList = []string{"id", "name", "created_at", "updated_at", "-id", "-name", "-created_at", "-updated_at"}
	if !v.Valid() {
		h.errorResponse(w, r, http.StatusUnprocessableEntity, v.Errors)
		return
	}
	templates, metadata, err := h.service.ListTemplates(r.Context(), qsInput.Name, qsInput.Filters)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"templates": templates, "metadata": metadata}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// CreateTemplate godoc
// @Summary Create a template
// @Tags templates
// @Accept  json
// @Produce json
// @Param body body dto.CreateTemplateRequestBody true "JSON Payload required to create a template"
// @Success 201 {object} data.Template
// @Failure 400
// @Failure 422
// @Failure 500
// @Router /api/templates [post]
func (h *Handler) createTemplateHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateTemplateRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	template, err := h.service.CreateTemplate(r.Context(), requestBody.Name, requestBody.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/api/templates/%d", template.ID))
	err = h.encodeJSON(w, http.StatusCreated, template, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ShowTemplate godoc
// @Summary Show a template
// @Tags templates
// @Produce json
// @Param templateId path int true "ID of template to show"
// @Success 200 {object} data.Template
// @Failure 404
// @Failure 500
// @Router /api/templates/{templateId} [get]
func (h *Handler) showTemplateHandler(w http.ResponseWriter, r *http.Request) {
	templateID, err := h.readIDParam(r, "templateId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	template, err := h.service.GetTemplate(r.Context(), templateID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, template, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// UpdateTemplate godoc
// @Summary Update a template
// @Tags templates
// @Accept  json
// @Produce json
// @Param templateId path int true "ID of template to update"
// @Param body body dto.UpdateTemplateRequestBody true "JSON Payload required to update a template"
// @Success 200 {object} data.Template
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 422
// @Failure 500
// @Router /api/templates/{templateId} [put]
func (h *Handler) updateTemplateHandler(w http.ResponseWriter, r *http.Request) {
	templateID, err := h.readIDParam(r, "templateId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	var requestBody dto.UpdateTemplateRequestBody
	err = h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	template, err := h.service.UpdateTemplate(r.Context(), templateID, requestBody.Name, requestBody.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, template, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// DeleteTemplate godoc
// @Summary Delete a template
// @Tags templates
// @Produce json
// @Param templateId path int true "ID of template to delete"
// @Success 200
// @Failure 404
// @Failure 500
// @Router /api/templates/{templateId} [delete]
func (h *Handler) deleteTemplateHandler(w http.ResponseWriter, r *http.Request) {
	templateID, err := h.readIDParam(r, "templateId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	err = h.service.DeleteTemplate(r.Context(), templateID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"message": "template successfully deleted"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
