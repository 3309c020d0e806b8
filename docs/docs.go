// Package docs registers the swagger description of the ship API.
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
        "/rest/ships": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ships"],
                "summary": "List ships",
                "parameters": [
                    {"type": "string", "description": "name substring", "name": "name", "in": "query"},
                    {"type": "string", "description": "planet substring", "name": "planet", "in": "query"},
                    {"type": "string", "description": "TRANSPORT, MILITARY, MERCHANT or SCIENTIFIC", "name": "shipType", "in": "query"},
                    {"type": "integer", "description": "production date lower bound, epoch millis", "name": "after", "in": "query"},
                    {"type": "integer", "description": "production date upper bound, epoch millis", "name": "before", "in": "query"},
                    {"type": "boolean", "description": "used flag", "name": "isUsed", "in": "query"},
                    {"type": "number", "description": "minimum speed", "name": "minSpeed", "in": "query"},
                    {"type": "number", "description": "maximum speed", "name": "maxSpeed", "in": "query"},
                    {"type": "integer", "description": "minimum crew size", "name": "minCrewSize", "in": "query"},
                    {"type": "integer", "description": "maximum crew size", "name": "maxCrewSize", "in": "query"},
                    {"type": "number", "description": "minimum rating", "name": "minRating", "in": "query"},
                    {"type": "number", "description": "maximum rating", "name": "maxRating", "in": "query"},
                    {"type": "string", "description": "ID, SPEED, DATE or RATING", "name": "order", "in": "query"},
                    {"type": "integer", "description": "page number, default 0", "name": "pageNumber", "in": "query"},
                    {"type": "integer", "description": "page size, default 3", "name": "pageSize", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/api.ShipJSON"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ships"],
                "summary": "Create ship",
                "parameters": [
                    {"description": "ship", "name": "ship", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.ShipRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.ShipJSON"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/rest/ships/count": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ships"],
                "summary": "Count ships",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "integer"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/rest/ships/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ships"],
                "summary": "Get ship",
                "parameters": [
                    {"type": "integer", "description": "ship id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.ShipJSON"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ships"],
                "summary": "Update ship",
                "parameters": [
                    {"type": "integer", "description": "ship id", "name": "id", "in": "path", "required": true},
                    {"description": "fields to change", "name": "ship", "in": "body", "schema": {"$ref": "#/definitions/api.ShipRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.ShipJSON"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["ships"],
                "summary": "Delete ship",
                "parameters": [
                    {"type": "integer", "description": "ship id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "boolean"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.ErrorResponse": {
            "type": "object",
            "properties": {
                "description": {"type": "string"}
            }
        },
        "api.ShipJSON": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "planet": {"type": "string"},
                "shipType": {"type": "string"},
                "prodDate": {"type": "integer"},
                "isUsed": {"type": "boolean"},
                "speed": {"type": "number"},
                "crewSize": {"type": "integer"},
                "rating": {"type": "number"}
            }
        },
        "api.ShipRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "planet": {"type": "string"},
                "shipType": {"type": "string"},
                "prodDate": {"type": "integer"},
                "isUsed": {"type": "boolean"},
                "speed": {"type": "number"},
                "crewSize": {"type": "integer"},
                "rating": {"type": "number"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Starfleet ship registry API",
	Description:      "Create, list, count, update and delete starships.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
