// Package docs holds the OpenAPI document served under /api/docs.
// Regenerate with: swag init -g internal/services/api/api.go -o internal/services/api/docs
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "openapi": "3.0.3",
    "info": {
        "title": "{{.Title}}",
        "description": "{{.Description}}",
        "version": "{{.Version}}"
    },
    "paths": {
        "/meta/health": {
            "get": {
                "tags": ["Meta"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.HealthResponse"}}}}
                }
            }
        },
        "/meta/ready": {
            "get": {
                "tags": ["Meta"],
                "summary": "Readiness probe with dependency checks",
                "responses": {
                    "200": {"description": "ok or degraded", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.ReadyResponse"}}}},
                    "503": {"description": "a backend failed its probe", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.ReadyResponse"}}}}
                }
            }
        },
        "/meta/version": {
            "get": {
                "tags": ["Meta"],
                "summary": "Build and version info",
                "responses": {
                    "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/version.BuildInfo"}}}}
                }
            }
        },
        "/meta/service": {
            "get": {
                "tags": ["Meta"],
                "summary": "Service info and uptime",
                "responses": {
                    "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.ServiceResponse"}}}}
                }
            }
        },
        "/meta/options": {
            "get": {
                "tags": ["Meta"],
                "summary": "House types, the selectable quarter window and form defaults",
                "responses": {
                    "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.OptionsResponse"}}}}
                }
            }
        },
        "/prices/search": {
            "get": {
                "tags": ["Prices"],
                "summary": "Replay a shared search from query parameters",
                "description": "Incomplete parameters fall back to the default selection",
                "parameters": [
                    {"name": "start", "in": "query", "description": "first quarter, YYYYKQ", "schema": {"type": "string"}},
                    {"name": "end", "in": "query", "description": "last quarter, YYYYKQ", "schema": {"type": "string"}},
                    {"name": "houseTypes", "in": "query", "description": "comma separated codes, e.g. 00,02", "schema": {"type": "string"}}
                ],
                "responses": {
                    "200": {"description": "chart data", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.SearchResult"}}}},
                    "400": {"description": "malformed selection", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/httpkit.Envelope"}}}},
                    "422": {"description": "range out of bounds, in the future or reversed", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/httpkit.Envelope"}}}},
                    "502": {"description": "malformed upstream response", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/httpkit.Envelope"}}}},
                    "503": {"description": "upstream unavailable", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/httpkit.Envelope"}}}}
                }
            },
            "post": {
                "tags": ["Prices"],
                "summary": "Square meter prices per house type and quarter",
                "requestBody": {
                    "description": "House types and quarter range",
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/filter.Selection"}}}
                },
                "responses": {
                    "200": {"description": "chart data", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.SearchResult"}}}},
                    "400": {"description": "malformed selection", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/httpkit.Envelope"}}}},
                    "422": {"description": "range out of bounds, in the future or reversed", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/httpkit.Envelope"}}}},
                    "502": {"description": "malformed upstream response", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/httpkit.Envelope"}}}},
                    "503": {"description": "upstream unavailable", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/httpkit.Envelope"}}}}
                }
            }
        },
        "/history": {
            "get": {
                "tags": ["History"],
                "summary": "Saved searches, oldest first",
                "parameters": [
                    {"name": "limit", "in": "query", "description": "max entries (1..500)", "schema": {"type": "integer"}}
                ],
                "responses": {
                    "200": {"description": "ok", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/history.Entry"}}}}},
                    "400": {"description": "bad limit", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/httpkit.Envelope"}}}}
                }
            },
            "post": {
                "tags": ["History"],
                "summary": "Save a search",
                "requestBody": {
                    "description": "Search to save",
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/filter.Selection"}}}
                },
                "responses": {
                    "201": {"description": "saved", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/history.Entry"}}}},
                    "503": {"description": "history storage unavailable", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/httpkit.Envelope"}}}}
                }
            }
        }
    },
    "components": {
        "schemas": {
            "filter.Selection": {
                "type": "object",
                "required": ["houseTypes", "startQuarter", "endQuarter"],
                "properties": {
                    "houseTypes": {"type": "array", "minItems": 1, "items": {"type": "string", "enum": ["00", "02", "03"]}, "example": ["00", "02"]},
                    "startQuarter": {"type": "string", "pattern": "^[0-9]{4}K[1-4]$", "example": "2009K1"},
                    "endQuarter": {"type": "string", "pattern": "^[0-9]{4}K[1-4]$", "example": "2010K1"}
                }
            },
            "jsonstat.Series": {
                "type": "object",
                "properties": {
                    "code": {"type": "string", "example": "00"},
                    "label": {"type": "string", "example": "Total"},
                    "data": {"type": "array", "items": {"type": "number", "nullable": true}}
                }
            },
            "domain.SearchResult": {
                "type": "object",
                "properties": {
                    "datasets": {"type": "array", "items": {"$ref": "#/components/schemas/jsonstat.Series"}},
                    "labels": {"type": "array", "items": {"type": "string"}, "example": ["2009K1", "2009K2"]},
                    "colors": {"type": "array", "items": {"type": "string"}, "example": ["rgb(12, 200, 77)"]},
                    "share": {"type": "string", "example": "end=2010K1&houseTypes=00%2C02&start=2009K1"},
                    "selection": {"$ref": "#/components/schemas/filter.Selection"},
                    "quarters": {"type": "array", "items": {"type": "string"}},
                    "fromUrl": {"type": "boolean"}
                }
            },
            "history.Entry": {
                "type": "object",
                "properties": {
                    "id": {"type": "string", "format": "uuid"},
                    "date": {"type": "string", "format": "date-time"},
                    "startQuarter": {"type": "string", "example": "2009K1"},
                    "endQuarter": {"type": "string", "example": "2010K1"},
                    "houseTypes": {"type": "array", "items": {"type": "string"}}
                }
            },
            "housetype.HouseType": {
                "type": "object",
                "properties": {
                    "code": {"type": "string", "example": "02"},
                    "label": {"type": "string", "example": "Small"}
                }
            },
            "http.HealthResponse": {
                "type": "object",
                "properties": {
                    "ok": {"type": "boolean"},
                    "service": {"type": "string", "example": "housepricing-api"},
                    "started": {"type": "string"},
                    "now": {"type": "string"}
                }
            },
            "http.ReadyCheck": {
                "type": "object",
                "properties": {
                    "name": {"type": "string", "example": "pg"},
                    "status": {"type": "string", "enum": ["ok", "fail", "skipped", "unknown"]},
                    "error": {"type": "string"}
                }
            },
            "http.ReadyResponse": {
                "type": "object",
                "properties": {
                    "status": {"type": "string", "enum": ["ok", "degraded", "fail"]},
                    "checks": {"type": "array", "items": {"$ref": "#/components/schemas/http.ReadyCheck"}},
                    "now": {"type": "string"}
                }
            },
            "http.ServiceResponse": {
                "type": "object",
                "properties": {
                    "name": {"type": "string"},
                    "started": {"type": "string"},
                    "uptime": {"type": "integer"}
                }
            },
            "http.OptionsResponse": {
                "type": "object",
                "properties": {
                    "houseTypes": {"type": "array", "items": {"$ref": "#/components/schemas/housetype.HouseType"}},
                    "earliest": {"type": "string", "example": "2009K1"},
                    "latest": {"type": "string", "example": "2025K3"},
                    "defaults": {"$ref": "#/components/schemas/filter.Selection"}
                }
            },
            "version.BuildInfo": {
                "type": "object",
                "properties": {
                    "service": {"type": "string"},
                    "version": {"type": "string"},
                    "commit": {"type": "string"},
                    "date": {"type": "string"}
                }
            },
            "errors.Wire": {
                "type": "object",
                "properties": {
                    "code": {"type": "integer", "example": 9},
                    "kind": {"type": "string", "example": "invalid_format"},
                    "message": {"type": "string", "example": "startQuarter should be in the format YYYYKQ"},
                    "field": {"type": "string", "example": "startQuarter"},
                    "meta": {"type": "object", "additionalProperties": {"type": "string"}}
                }
            },
            "httpkit.Envelope": {
                "type": "object",
                "properties": {
                    "status_code": {"type": "integer"},
                    "status": {"type": "string"},
                    "code": {"type": "integer"},
                    "error": {"$ref": "#/components/schemas/errors.Wire"},
                    "request_id": {"type": "string"},
                    "data": {}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Title:            "House pricing API",
	Description:      "Quarterly square meter prices per house type, with shareable searches and a search history",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
