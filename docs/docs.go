// Package docs registers the OpenAPI document for the SD Magic API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List all categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/data.Category"}}},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Create a category",
                "parameters": [
                    {"description": "JSON Payload required to create a category", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateCategoryRequestBody"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/data.Category"}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "422": {"description": "Unprocessable Entity"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/categories/{categoryId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Show a category",
                "parameters": [
                    {"type": "integer", "description": "ID of category to show", "name": "categoryId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/data.Category"}},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Update a category",
                "parameters": [
                    {"type": "integer", "description": "ID of category to update", "name": "categoryId", "in": "path", "required": true},
                    {"description": "JSON Payload required to update a category", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateCategoryRequestBody"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/data.Category"}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "422": {"description": "Unprocessable Entity"}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Delete a category",
                "parameters": [
                    {"type": "integer", "description": "ID of category to delete", "name": "categoryId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/prompts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["prompts"],
                "summary": "List prompts",
                "parameters": [
                    {"type": "integer", "description": "Category to list, subcategories included", "name": "category_id", "in": "query"},
                    {"type": "string", "description": "Case-insensitive text matched against the original text and translation", "name": "search", "in": "query"},
                    {"type": "integer", "description": "Number of prompts to skip (min 0)", "name": "skip", "in": "query"},
                    {"type": "integer", "description": "Number of prompts to return (max 100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/data.Page"}},
                    "422": {"description": "Unprocessable Entity"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["prompts"],
                "summary": "Create a prompt",
                "parameters": [
                    {"description": "JSON Payload required to create a prompt", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreatePromptRequestBody"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/data.Prompt"}},
                    "404": {"description": "Not Found"},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        },
        "/api/prompts/{promptId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["prompts"],
                "summary": "Show a prompt",
                "parameters": [
                    {"type": "integer", "description": "ID of prompt to show", "name": "promptId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/data.Prompt"}},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["prompts"],
                "summary": "Update a prompt",
                "parameters": [
                    {"type": "integer", "description": "ID of prompt to update", "name": "promptId", "in": "path", "required": true},
                    {"description": "JSON Payload required to update a prompt", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdatePromptRequestBody"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/data.Prompt"}},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"},
                    "422": {"description": "Unprocessable Entity"}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["prompts"],
                "summary": "Delete a prompt",
                "parameters": [
                    {"type": "integer", "description": "ID of prompt to delete", "name": "promptId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/templates": {
            "get": {
                "produces": ["application/json"],
                "tags": ["templates"],
                "summary": "List templates",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive name filter", "name": "name", "in": "query"},
                    {"type": "integer", "description": "Query string param for pagination (min 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Query string param for pagination (max 100)", "name": "page_size", "in": "query"},
                    {"type": "string", "description": "Sort order", "name": "sort", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/data.Template"}}},
                    "422": {"description": "Unprocessable Entity"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["templates"],
                "summary": "Create a template",
                "parameters": [
                    {"description": "JSON Payload required to create a template", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateTemplateRequestBody"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/data.Template"}},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        },
        "/api/templates/{templateId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["templates"],
                "summary": "Show a template",
                "parameters": [
                    {"type": "integer", "description": "ID of template to show", "name": "templateId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/data.Template"}},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["templates"],
                "summary": "Update a template",
                "parameters": [
                    {"type": "integer", "description": "ID of template to update", "name": "templateId", "in": "path", "required": true},
                    {"description": "JSON Payload required to update a template", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateTemplateRequestBody"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/data.Template"}},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"},
                    "422": {"description": "Unprocessable Entity"}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["templates"],
                "summary": "Delete a template",
                "parameters": [
                    {"type": "integer", "description": "ID of template to delete", "name": "templateId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/snapshots": {
            "post": {
                "security": [{"BasicAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["snapshots"],
                "summary": "Export a snapshot",
                "parameters": [
                    {"description": "Snapshot format, json (default) or yaml", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/dto.CreateSnapshotRequestBody"}}
                ],
                "responses": {
                    "202": {"description": "Accepted"},
                    "401": {"description": "Unauthorized"},
                    "422": {"description": "Unprocessable Entity"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/api/healthcheck": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ops"],
                "summary": "Report service status",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "data.Category": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "parentId": {"type": "integer"},
                "isDefault": {"type": "boolean"},
                "children": {"type": "array", "items": {"$ref": "#/definitions/data.Category"}}
            }
        },
        "data.Prompt": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "original_text": {"type": "string"},
                "chinese_translation": {"type": "string"},
                "category_id": {"type": "integer"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "data.Page": {
            "type": "object",
            "properties": {
                "results": {"type": "array", "items": {"$ref": "#/definitions/data.Prompt"}},
                "count": {"type": "integer"},
                "next": {"type": "string"},
                "previous": {"type": "string"}
            }
        },
        "data.Template": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "content": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "dto.CreateCategoryRequestBody": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "parentId": {"type": "integer"}
            }
        },
        "dto.UpdateCategoryRequestBody": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "parentId": {"type": "integer"}
            }
        },
        "dto.CreatePromptRequestBody": {
            "type": "object",
            "properties": {
                "original_text": {"type": "string"},
                "chinese_translation": {"type": "string"},
                "category_id": {"type": "integer"}
            }
        },
        "dto.UpdatePromptRequestBody": {
            "type": "object",
            "properties": {
                "original_text": {"type": "string"},
                "chinese_translation": {"type": "string"},
                "category_id": {"type": "integer"}
            }
        },
        "dto.CreateTemplateRequestBody": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "content": {"type": "string"}
            }
        },
        "dto.UpdateTemplateRequestBody": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "content": {"type": "string"}
            }
        },
        "dto.CreateSnapshotRequestBody": {
            "type": "object",
            "properties": {
                "format": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BasicAuth": {"type": "basic"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "SD Magic API",
	Description:      "Prompt library service for image-generation prompts, categories and templates.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
