// Package docs holds the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/loan_service/main.go -o cmd/docs
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
        "/loan": {
            "post": {
                "description": "Validates a loan submission and stores it. Every violated rule is listed in details.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["loans"],
                "summary": "Create a new loan",
                "parameters": [
                    {
                        "description": "Loan details",
                        "name": "loan",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.CreateLoanRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.LoanResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/dto.ValidationErrorResponse"}},
                    "500": {"description": "Failed to save loan", "schema": {"$ref": "#/definitions/dto.ServerErrorResponse"}}
                }
            }
        },
        "/loans": {
            "get": {
                "description": "Retrieves every loan. Only the first present sort parameter applies, in the order amount_sort, term_sort, createdAt_sort. \"asc\" sorts ascending, any other value descending. Without sort parameters loans are returned newest first.",
                "produces": ["application/json"],
                "tags": ["loans"],
                "summary": "List all loans",
                "parameters": [
                    {"enum": ["asc", "desc"], "type": "string", "description": "Sort by amount_gbp", "name": "amount_sort", "in": "query"},
                    {"enum": ["asc", "desc"], "type": "string", "description": "Sort by term", "name": "term_sort", "in": "query"},
                    {"enum": ["asc", "desc"], "type": "string", "description": "Sort by creation time", "name": "createdAt_sort", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.LoanResponse"}}},
                    "500": {"description": "Failed to fetch loans", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CreateLoanRequest": {
            "type": "object",
            "required": ["amount_gbp", "amount_original", "currency", "name", "rate_used", "term"],
            "properties": {
                "amount_gbp": {"type": "number", "example": 100},
                "amount_original": {"type": "number", "example": 127.5},
                "currency": {"type": "string", "enum": ["USD", "EUR", "GBP", "CAD"], "example": "USD"},
                "name": {"type": "string", "example": "Alice Smith"},
                "rate_used": {"type": "number", "example": 1.275},
                "term": {"type": "number", "example": 12}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "dto.LoanResponse": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "amount_gbp": {"type": "number"},
                "amount_original": {"type": "number"},
                "createdAt": {"type": "string"},
                "currency": {"type": "string"},
                "name": {"type": "string"},
                "rate_used": {"type": "number"},
                "term": {"type": "integer"},
                "updatedAt": {"type": "string"}
            }
        },
        "dto.ServerErrorResponse": {
            "type": "object",
            "properties": {"details": {"type": "string"}, "error": {"type": "string"}}
        },
        "dto.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "details": {"type": "array", "items": {"type": "string"}},
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Loan Service API",
	Description:      "Create and list loans.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
