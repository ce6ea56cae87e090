// Package docs holds the Swagger document served under /swagger.
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
        "/api/v1/schemas": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Schemas"],
                "summary": "List catalog schemas",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SchemaList"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/v1/schemas/{name}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Schemas"],
                "summary": "Describe a catalog schema",
                "parameters": [
                    {"type": "string", "description": "Schema name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SchemaDetail"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/v1/schemas/{name}/decode": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Schemas"],
                "summary": "Decode a payload against a catalog schema",
                "parameters": [
                    {"type": "string", "description": "Schema name", "name": "name", "in": "path", "required": true},
                    {"description": "Payload to decode", "name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.DecodeResult"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}},
                    "413": {"description": "Request Entity Too Large", "schema": {"type": "object", "additionalProperties": true}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.DecodeFailure"}}
                }
            }
        }
    },
    "definitions": {
        "catalog.Entry": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "direction": {"type": "string", "enum": ["read", "write", "query", "response"]},
                "name": {"type": "string"}
            }
        },
        "handlers.DecodeFailure": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "issues": {"type": "array", "items": {"$ref": "#/definitions/schema.Issue"}},
                "message": {"type": "string"},
                "schema": {"type": "string"}
            }
        },
        "handlers.DecodeResult": {
            "type": "object",
            "properties": {
                "schema": {"type": "string"},
                "value": {}
            }
        },
        "handlers.SchemaDetail": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "direction": {"type": "string"},
                "name": {"type": "string"},
                "schema": {"type": "object", "additionalProperties": true}
            }
        },
        "handlers.SchemaList": {
            "type": "object",
            "properties": {
                "schemas": {"type": "array", "items": {"$ref": "#/definitions/catalog.Entry"}}
            }
        },
        "schema.Issue": {
            "type": "object",
            "properties": {
                "actual": {"type": "string"},
                "code": {"type": "string", "enum": ["invalid_type", "invalid_literal", "missing_field", "unknown_field", "too_many_items", "invalid_json"]},
                "expected": {"type": "string"},
                "path": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Sponsored Brands Schema Catalog API",
	Description:      "Checks campaign management payloads against the published catalog schemas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
