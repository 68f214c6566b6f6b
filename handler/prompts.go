package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/emzola/sdmagic/data"
	"github.com/emzola/sdmagic/data/dto"
	"github.com/emzola/sdmagic/internal/validator"
	"github.com/emzola/sdmagic/service"
)

// ListPrompts godoc
// @Summary List prompts
// @Description This endpoint lists prompts in windows of skip/limit. A category filter includes every subcategory
// @Tags prompts
// @Produce json
// @Param category_id query int false "Category to list, subcategories included"
// @Param search query string false "Case-insensitive text matched against the original text and translation"
// @Param original_text query string false "Alias of search"
// @Param skip query int false "Number of prompts to skip (min 0)"
// @Param limit query int false "Number of prompts to return (max 100)"
// @Success 200 {object} data.Page
// @Failure 422
// @Failure 500
// @Router /api/prompts [get]
func (h *Handler) listPromptsHandler(w http.ResponseWriter, r *http.Request) {
	var qsInput dto.QsListPrompts
	v := validator.New()
	qs := r.URL.Query()
	qsInput.CategoryID = h.readInt64(qs, "category_id", 0, v)
	qsInput.Search = h.readString(qs, "search", h.readString(qs, "original_text", ""))
	qsInput.Window.Skip = h.readInt(qs, "skip", 0, v)
	qsInput.Window.Limit = h.readInt(qs, "limit", data.DefaultWindowLimit, v)
	if !v.Valid() {
		h.errorResponse(w, r, http.StatusUnprocessableEntity, v.Errors)
		return
	}
	prompts, count, err := h.service.ListPrompts(r.Context(), qsInput.CategoryID, qsInput.Search, qsInput.Window)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	extra := url.Values{}
	if qsInput.CategoryID != 0 {
		extra.Set("category_id", strconv.FormatInt(qsInput.CategoryID, 10))
	}
	extra.Set("search", qsInput.Search)
	page := data.Page{Results: prompts, Count: count}
	page.Next, page.Previous = qsInput.Window.Links(r.URL.Path, count, extra)
	err = h.encodeJSON(w, http.StatusOK, page, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// CreatePrompt godoc
// @Summary Create a prompt
// @Description This endpoint creates a prompt in an existing category
// @Tags prompts
// @Accept  json
// @Produce json
// @Param body body dto.CreatePromptRequestBody true "JSON Payload required to create a prompt"
// @Success 201 {object} data.Prompt
// @Failure 400
// @Failure 404
// @Failure 422
// @Failure 500
// @Router /api/prompts [post]
func (h *Handler) createPromptHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreatePromptRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	prompt, err := h.service.CreatePrompt(r.Context(), requestBody.OriginalText, requestBody.ChineseTranslation, requestBody.CategoryID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case h.categoryErrorResponse(w, r, err):
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/api/prompts/%d", prompt.ID))
	err = h.encodeJSON(w, http.StatusCreated, prompt, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ShowPrompt godoc
// @Summary Show a prompt
// @Tags prompts
// @Produce json
// @Param promptId path int true "ID of prompt to show"
// @Success 200 {object} data.Prompt
// @Failure 404
// @Failure 500
// @Router /api/prompts/{promptId} [get]
func (h *Handler) showPromptHandler(w http.ResponseWriter, r *http.Request) {
	promptID, err := h.readIDParam(r, "promptId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	prompt, err := h.service.GetPrompt(r.Context(), promptID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, prompt, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// UpdatePrompt godoc
// @Summary Update a prompt
// @Description This endpoint changes the provided fields of a prompt
// @Tags prompts
// @Accept  json
// @Produce json
// @Param promptId path int true "ID of prompt to update"
// @Param body body dto.UpdatePromptRequestBody true "JSON Payload required to update a prompt"
// @Success 200 {object} data.Prompt
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 422
// @Failure 500
// @Router /api/prompts/{promptId} [put]
func (h *Handler) updatePromptHandler(w http.ResponseWriter, r *http.Request) {
	promptID, err := h.readIDParam(r, "promptId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	var requestBody dto.UpdatePromptRequestBody
	err = h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	prompt, err := h.service.UpdatePrompt(r.Context(), promptID, requestBody.OriginalText, requestBody.ChineseTranslation, requestBody.CategoryID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		case h.categoryErrorResponse(w, r, err):
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, prompt, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// DeletePrompt godoc
// @Summary Delete a prompt
// @Tags prompts
// @Produce json
// @Param promptId path int true "ID of prompt to delete"
// @Success 200
// @Failure 404
// @Failure 500
// @Router /api/prompts/{promptId} [delete]
func (h *Handler) deletePromptHandler(w http.ResponseWriter, r *http.Request) {
	promptID, err := h.readIDParam(r, "promptId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	err = h.service.DeletePrompt(r.Context(), promptID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"message": "prompt successfully deleted"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
