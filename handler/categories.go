package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/emzola/sdmagic/data/dto"
	"github.com/emzola/sdmagic/service"
)

// ListCategories godoc
// @Summary List all categories
// @Description This endpoint lists the category forest with nested children
// @Tags categories
// @Produce json
// @Success 200 {array} data.Category
// @Failure 500
// @Router /api/categories [get]
func (h *Handler) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, categories, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// CreateCategory godoc
// @Summary Create a category
// @Description This endpoint creates a category at the root or below a parent
// @Tags categories
// @Accept  json
// @Produce json
// @Param body body dto.CreateCategoryRequestBody true "JSON Payload required to create a category"
// @Success 201 {object} data.Category
// @Failure 400
// @Failure 404
// @Failure 422
// @Failure 500
// @Router /api/categories [post]
func (h *Handler) createCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateCategoryRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	category, err := h.service.CreateCategory(r.Context(), requestBody.Name, requestBody.ParentID)
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
	headers.Set("Location", fmt.Sprintf("/api/categories/%d", category.ID))
	err = h.encodeJSON(w, http.StatusCreated, category, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ShowCategory godoc
// @Summary Show a category
// @Description This endpoint shows a category together with its subtree
// @Tags categories
// @Produce json
// @Param categoryId path int true "ID of category to show"
// @Success 200 {object} data.Category
// @Failure 404
// @Failure 500
// @Router /api/categories/{categoryId} [get]
func (h *Handler) showCategoryHandler(w http.ResponseWriter, r *http.Request) {
	categoryID, err := h.readIDParam(r, "categoryId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	category, err := h.service.GetCategory(r.Context(), categoryID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, category, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// UpdateCategory godoc
// @Summary Update a category
// @Description This endpoint renames a category or moves it below another parent (0 for the root)
// @Tags categories
// @Accept  json
// @Produce json
// @Param categoryId path int true "ID of category to update"
// @Param body body dto.UpdateCategoryRequestBody true "JSON Payload required to update a category"
// @Success 200 {object} data.Category
// @Failure 400
// @Failure 404
// @Failure 422
// @Failure 500
// @Router /api/categories/{categoryId} [put]
func (h *Handler) updateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	categoryID, err := h.readIDParam(r, "categoryId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	var requestBody dto.UpdateCategoryRequestBody
	err = h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	category, err := h.service.UpdateCategory(r.Context(), categoryID, requestBody.Name, requestBody.ParentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case h.categoryErrorResponse(w, r, err):
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, category, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description This endpoint deletes a category and its subtree. Their prompts move to the default category
// @Tags categories
// @Produce json
// @Param categoryId path int true "ID of category to delete"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /api/categories/{categoryId} [delete]
func (h *Handler) deleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	categoryID, err := h.readIDParam(r, "categoryId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	moved, err := h.service.DeleteCategory(r.Context(), categoryID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case h.categoryErrorResponse(w, r, err):
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"message": "category successfully deleted", "prompts_moved": moved}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
