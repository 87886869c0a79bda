package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"dollarwords/internal/core/version"
	"dollarwords/internal/modkit/httpkit"
	"dollarwords/internal/platform/config"
	perr "dollarwords/internal/platform/errors"
)

const docTitle = "Dollar Words API"

// operation is one documented route, paths are relative to the API root
type operation struct {
	method  string
	path    string
	tag     string
	summary string
	body    bool // takes a {"value": ...} payload
	success int
}

var operations = []operation{
	{http.MethodPost, "/currency/convert", "Currency", "Convert one amount to words", true, http.StatusOK},
	{http.MethodPost, "/currency/sessions", "Currency", "Open an empty query session", false, http.StatusCreated},
	{http.MethodGet, "/currency/sessions/{id}", "Currency", "Session info and query count", false, http.StatusOK},
	{http.MethodPost, "/currency/sessions/{id}/queries", "Currency", "Convert an amount and log it on the session", true, http.StatusOK},
	{http.MethodGet, "/currency/sessions/{id}/queries", "Currency", "Logged queries in call order", false, http.StatusOK},
	{http.MethodGet, "/currency/sessions/{id}/history", "Currency", "Text dump of the session history", false, http.StatusOK},
	{http.MethodDelete, "/currency/sessions/{id}", "Currency", "Drop a session and its history", false, http.StatusNoContent},
	{http.MethodGet, "/meta/health", "Meta", "Health check", false, http.StatusOK},
	{http.MethodGet, "/meta/version", "Meta", "Build and version info", false, http.StatusOK},
	{http.MethodGet, "/meta/service", "Meta", "Service info and uptime", false, http.StatusOK},
	{http.MethodGet, "/meta/converter", "Meta", "Conversion bounds and magnitude words", false, http.StatusOK},
}

// serveDocJSON serves the OpenAPI document, CORE_API_DOCS_TITLE_SUFFIX is appended to the title
func serveDocJSON(cfg config.Conf) http.HandlerFunc {
	title := docTitle
	if v := cfg.Prefix("CORE_API_").MayString("DOCS_TITLE_SUFFIX", ""); v != "" {
		title += " " + v
	}
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(buildDoc(title, version.Info().Version))
	}
}

func buildDoc(title, ver string) map[string]any {
	paths := map[string]any{}
	for _, op := range operations {
		node, ok := paths[op.path].(map[string]any)
		if !ok {
			node = map[string]any{}
			paths[op.path] = node
		}
		node[strings.ToLower(op.method)] = op.spec()
	}
	return map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":       title,
			"description": "Converts amounts to check-writing English and keeps per session query logs",
			"version":     ver,
		},
		"servers":    []any{map[string]any{"url": httpkit.APIV1}},
		"paths":      paths,
		"components": map[string]any{"schemas": map[string]any{"ErrorResponse": errorSchema()}},
	}
}

func (op operation) spec() map[string]any {
	ok := map[string]any{"description": http.StatusText(op.success)}
	if op.success != http.StatusNoContent {
		ok["content"] = map[string]any{"application/json": map[string]any{"schema": map[string]any{"type": "object"}}}
	}
	out := map[string]any{
		"tags":    []any{op.tag},
		"summary": op.summary,
		"responses": map[string]any{
			strconv.Itoa(op.success): ok,
			"400":            errorResponse(http.StatusBadRequest, perr.ErrorCodeValidation, "value is a required field", perr.FieldValue),
			"500":            errorResponse(http.StatusInternalServerError, perr.ErrorCodePanic, "panic recovered", ""),
		},
	}
	if strings.Contains(op.path, "{id}") {
		out["parameters"] = []any{map[string]any{
			"name": "id", "in": "path", "required": true,
			"description": "Session id", "schema": map[string]any{"type": "string"},
		}}
	}
	if op.body {
		out["requestBody"] = map[string]any{
			"required": true,
			"content": map[string]any{"application/json": map[string]any{
				"schema": map[string]any{
					"type":       "object",
					"required":   []any{"value"},
					"properties": map[string]any{"value": map[string]any{"oneOf": []any{map[string]any{"type": "number"}, map[string]any{"type": "string"}}}},
				},
				"example": map[string]any{"value": 123.45},
			}},
		}
	}
	return out
}

// errorSchema mirrors the error half of the response envelope
func errorSchema() map[string]any {
	return map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status", "error"},
	}
}

func errorResponse(status int, code perr.ErrorCode, msg, field string) map[string]any {
	ex := map[string]any{
		"status_code": status,
		"status":      http.StatusText(status),
		"code":        int(code),
		"error":       msg,
		"request_id":  "579f33bf50b1/abc-000001",
	}
	if field != "" {
		ex["field"] = field
	}
	return map[string]any{
		"description": http.StatusText(status),
		"content": map[string]any{"application/json": map[string]any{
			"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
			"example": ex,
		}},
	}
}
