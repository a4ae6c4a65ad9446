package swaggerkit

import (
	"encoding/json"
	"net/http"

	docs "housepricing/internal/services/api/docs"
)

var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

const requestIDExample = "579f33bf50b1/abc-000001"

// defaults are added to every operation that does not declare the status
var defaults = map[string]map[string]any{
	"400": errorResponse("Bad Request", 400, map[string]any{
		"code": 9, "kind": "invalid_format", "field": "startQuarter",
		"message": "startQuarter should be in the format YYYYKQ",
	}),
	"500": errorResponse("Internal Server Error", 500, map[string]any{
		"code": 1, "kind": "panic", "message": "panic recovered",
	}),
}

func errorResponse(status string, code int, example map[string]any) map[string]any {
	return map[string]any{
		"description": status,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": code,
					"status":      status,
					"code":        example["code"],
					"error":       example,
					"request_id":  requestIDExample,
				},
			},
		},
	}
}

// serveDocJSON serves the generated document with servers, the error schema and
// default error responses filled in
func serveDocJSON(o Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var doc map[string]any
		if err := json.Unmarshal([]byte(docReader()), &doc); err != nil {
			http.Error(w, "openapi document parse error", http.StatusInternalServerError)
			return
		}

		if _, ok := doc["servers"]; !ok {
			doc["servers"] = []any{map[string]any{"url": o.BasePath}}
		}
		if o.TitleSuffix != "" {
			if info, ok := doc["info"].(map[string]any); ok {
				if title, ok := info["title"].(string); ok {
					info["title"] = title + " " + o.TitleSuffix
				}
			}
		}
		ensureErrorSchema(doc)
		addDefaultResponses(doc)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(doc)
	}
}

func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}

// ensureErrorSchema describes the runtime error envelope unless the document already does
func ensureErrorSchema(doc map[string]any) {
	schemas := child(child(doc, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	str := map[string]any{"type": "string"}
	i32 := map[string]any{"type": "integer", "format": "int32"}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": i32,
			"status":      str,
			"code":        i32,
			"request_id":  str,
			"error": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"code":    i32,
					"kind":    str,
					"message": str,
					"field":   str,
					"meta":    map[string]any{"type": "object", "additionalProperties": str},
				},
			},
		},
		"required": []any{"status_code", "status"},
	}
}

func addDefaultResponses(doc map[string]any) {
	paths, _ := doc["paths"].(map[string]any)
	for _, p := range paths {
		ops, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range ops {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			resps := child(op, "responses")
			for status, resp := range defaults {
				if _, exists := resps[status]; !exists {
					resps[status] = resp
				}
			}
		}
	}
}
