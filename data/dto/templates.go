package dto

import "github.com/emzola/sdmagic/data"

// CreateTemplateRequestBody defines the request body for CreateTemplate service.
type CreateTemplateRequestBody struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// UpdateTemplateRequestBody defines the request body for UpdateTemplate service.
type UpdateTemplateRequestBody struct {
	Name    *string `json:"name"`
	Content *string `json:"content"`
}

// QsListTemplates defines the query strings used for listing templates.
type QsListTemplates struct {
	Name    string
	Filters data.Filters
}
