// Package swaggerkit serves the OpenAPI document and Swagger UI for the api
package swaggerkit

import (
	"encoding/json"
	"net/http"
	"sort"
	"sync"

	"commlog/internal/core/version"
)

// SpecMutator lets modules tweak the document before it is served
type SpecMutator func(map[string]any)

var (
	mu       sync.RWMutex
	mutators []SpecMutator
)

// Register adds a document mutator
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	mutators = append(mutators, m)
	mu.Unlock()
}

// Operation describes one documented GET route
type Operation struct {
	Path    string
	Summary string
	Tag     string
	// Params are query or path parameter names; path params appear in Path as {name}
	Params []Param
	// Schema is the component name of the 200 body
	Schema string
}

// Param is a single documented parameter
type Param struct {
	Name     string
	In       string
	Required bool
	Format   string
}

// Document builds the OpenAPI 3 document for ops served under base
func Document(base string, ops []Operation) map[string]any {
	paths := map[string]any{}
	schemas := map[string]any{"ErrorResponse": errorSchema()}
	for _, op := range ops {
		params := make([]any, 0, len(op.Params))
		for _, p := range op.Params {
			schema := map[string]any{"type": "string"}
			if p.Format != "" {
				schema["format"] = p.Format
			}
			params = append(params, map[string]any{
				"name":     p.Name,
				"in":       p.In,
				"required": p.Required || p.In == "path",
				"schema":   schema,
			})
		}
		ok := map[string]any{"description": "OK"}
		if op.Schema != "" {
			ok["content"] = jsonContent(op.Schema)
			// bodies are documented as opaque objects, mutators may refine them
			if _, seen := schemas[op.Schema]; !seen {
				schemas[op.Schema] = map[string]any{"type": "object"}
			}
		}
		paths[op.Path] = map[string]any{
			"get": map[string]any{
				"summary":    op.Summary,
				"tags":       []any{op.Tag},
				"parameters": params,
				"responses": map[string]any{
					"200": ok,
					"400": errorResponse("Bad Request"),
					"405": errorResponse("Method Not Allowed"),
					"500": errorResponse("Internal Server Error"),
				},
			},
		}
	}

	info := version.Info()
	spec := map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   info.Service,
			"version": info.Version,
		},
		"servers": []any{map[string]any{"url": base}},
		"paths":   paths,
		"components": map[string]any{
			"schemas": schemas,
		},
	}

	mu.RLock()
	for _, m := range mutators {
		m(spec)
	}
	mu.RUnlock()
	return spec
}

// Tags lists the distinct tags used by ops in sorted order
func Tags(ops []Operation) []string {
	seen := map[string]bool{}
	var out []string
	for _, op := range ops {
		if op.Tag != "" && !seen[op.Tag] {
			seen[op.Tag] = true
			out = append(out, op.Tag)
		}
	}
	sort.Strings(out)
	return out
}

func jsonContent(schema string) map[string]any {
	return map[string]any{
		"application/json": map[string]any{
			"schema": map[string]any{"$ref": "#/components/schemas/" + schema},
		},
	}
}

func errorResponse(desc string) map[string]any {
	return map[string]any{"description": desc, "content": jsonContent("ErrorResponse")}
}

// errorSchema mirrors the runtime error body
func errorSchema() map[string]any {
	return map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"error":      map[string]any{"type": "string"},
			"details":    map[string]any{"type": "string"},
			"code":       map[string]any{"type": "integer", "format": "int32"},
			"field":      map[string]any{"type": "string"},
			"request_id": map[string]any{"type": "string"},
		},
		"required": []any{"error"},
	}
}

// serveDocJSON serves the document built from ops
func serveDocJSON(base string, ops []Operation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(Document(base, ops))
	}
}
