// Package docs registers the Swagger document served at /swagger.
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
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "produces": ["application/json"], "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "produces": ["application/json"], "responses": {"200": {"description": "API is ready"}, "503": {"description": "Initial fetch pending"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "produces": ["application/json"], "responses": {"200": {"description": "API is alive"}}}},
        "/api/v1/session": {"get": {"tags": ["Session"], "summary": "Get session state", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/session/filters": {"put": {"tags": ["Session"], "summary": "Set filters", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/v1/session/draft": {
            "patch": {"tags": ["Session"], "summary": "Edit draft fields", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Unknown field"}}},
            "delete": {"tags": ["Session"], "summary": "Reset draft", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/session/draft/submit": {"post": {"tags": ["Session"], "summary": "Submit draft", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "422": {"description": "Invalid draft"}, "502": {"description": "Directory service rejected or unreachable"}}}},
        "/api/v1/session/refresh": {"post": {"tags": ["Session"], "summary": "Reload listings", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "502": {"description": "Directory service unreachable"}}}},
        "/api/v1/session/listings/{id}": {
            "get": {"tags": ["Session"], "summary": "Get listing detail", "produces": ["application/json"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["Session"], "summary": "Remove a listing", "produces": ["application/json"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "502": {"description": "Directory service rejected or unreachable"}}}
        },
        "/api/v1/session/stream": {"get": {"tags": ["Session"], "summary": "Stream session state", "responses": {"101": {"description": "Switching Protocols"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Listing Directory API",
	Description:      "Local session over a remote real-estate listing directory: filters, draft form and listing actions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
