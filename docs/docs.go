// Package docs Location Loader API.
//
// Загрузка GeoJSON коллекций в таблицу locations: по одной локации на каждый
// именованный объект, координаты линий и полигонов усредняются.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/imports": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Imports"],
                "summary": "Загрузка GeoJSON коллекции",
                "parameters": [
                    {"type": "boolean", "default": false, "name": "dry_run", "in": "query"},
                    {"type": "string", "name": "source", "in": "query"},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.FeatureCollection"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ImportReport"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/imports/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Imports"],
                "summary": "Отчёт о загрузке",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ImportReport"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/locations/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Locations"],
                "summary": "Получение локации по ID",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.LocationRecord"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.FeatureCollection": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "example": "FeatureCollection"},
                "features": {"type": "array", "items": {"$ref": "#/definitions/domain.Feature"}}
            }
        },
        "domain.Feature": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "example": "Feature"},
                "properties": {"type": "object", "additionalProperties": true},
                "geometry": {"$ref": "#/definitions/domain.Geometry"}
            }
        },
        "domain.Geometry": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "example": "Polygon"},
                "coordinates": {"type": "array", "items": {}},
                "geometries": {"type": "array", "items": {"$ref": "#/definitions/domain.Geometry"}}
            }
        },
        "domain.FeatureResult": {
            "type": "object",
            "properties": {
                "index": {"type": "integer"},
                "name": {"type": "string"},
                "status": {"type": "string", "enum": ["inserted", "built", "skipped", "failed"]},
                "location_id": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "error": {"type": "string"}
            }
        },
        "domain.ImportReport": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "source": {"type": "string"},
                "dry_run": {"type": "boolean"},
                "committed": {"type": "boolean"},
                "total": {"type": "integer"},
                "inserted": {"type": "integer"},
                "built": {"type": "integer"},
                "skipped": {"type": "integer"},
                "failed": {"type": "integer"},
                "started_at": {"type": "string"},
                "finished_at": {"type": "string"},
                "results": {"type": "array", "items": {"$ref": "#/definitions/domain.FeatureResult"}}
            }
        },
        "domain.LocationRecord": {
            "type": "object",
            "properties": {
                "location_id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "location_type": {"type": "string"},
                "status": {"type": "string"},
                "contributed_by": {"type": "string"},
                "average_rating": {"type": "number"},
                "review_count": {"type": "integer"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"},
                        "details": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Location Loader API",
	Description:      "Загрузка GeoJSON объектов в таблицу locations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
