// Package openapi builds the OpenAPI 3.1 document describing the
// service routes.
package openapi

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

const Version = "3.1.0"

// Document is a complete OpenAPI document.
type Document struct {
	OpenAPI    string               `json:"openapi"`
	Info       Info                 `json:"info"`
	Paths      map[string]*PathItem `json:"paths"`
	Components *Components          `json:"components,omitempty"`
}

type Info struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
}

type PathItem struct {
	Get    *Operation `json:"get,omitempty"`
	Post   *Operation `json:"post,omitempty"`
	Put    *Operation `json:"put,omitempty"`
	Delete *Operation `json:"delete,omitempty"`
}

type Operation struct {
	OperationID string            `json:"operationId,omitempty"`
	Summary     string            `json:"summary,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	Parameters  []*Parameter      `json:"parameters,omitempty"`
	RequestBody *RequestBody      `json:"requestBody,omitempty"`
	Responses   map[int]*Response `json:"responses"`
}

type Parameter struct {
	Name        string  `json:"name"`
	In          string  `json:"in"`
	Required    bool    `json:"required,omitempty"`
	Description string  `json:"description,omitempty"`
	Schema      *Schema `json:"schema"`
}

type RequestBody struct {
	Required bool                  `json:"required,omitempty"`
	Content  map[string]*MediaType `json:"content"`
}

type Response struct {
	Description string                `json:"description"`
	Content     map[string]*MediaType `json:"content,omitempty"`
}

type MediaType struct {
	Schema *Schema `json:"schema,omitempty"`
}

type Schema struct {
	Type       any                `json:"type,omitempty"`
	Format     string             `json:"format,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Ref        string             `json:"$ref,omitempty"`
}

type Components struct {
	Schemas map[string]*Schema `json:"schemas,omitempty"`
}

func New(info Info) *Document {
	return &Document{
		OpenAPI: Version,
		Info:    info,
		Paths:   make(map[string]*PathItem),
	}
}

// AddOperation attaches op to path under the given HTTP method.
func (d *Document) AddOperation(method, path string, op *Operation) error {
	item, ok := d.Paths[path]
	if !ok {
		item = &PathItem{}
		d.Paths[path] = item
	}

	switch method {
	case http.MethodGet:
		item.Get = op
	case http.MethodPost:
		item.Post = op
	case http.MethodPut:
		item.Put = op
	case http.MethodDelete:
		item.Delete = op
	default:
		return errors.Errorf("unsupported method %q for path %q", method, path)
	}

	return nil
}

// AddSchema registers a reusable schema under components/schemas.
func (d *Document) AddSchema(name string, schema *Schema) {
	if d.Components == nil {
		d.Components = &Components{Schemas: make(map[string]*Schema)}
	}
	d.Components.Schemas[name] = schema
}

func (d *Document) MarshalIndent() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return data, nil
}

// Handler serves the marshalled document.
func Handler(data []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}

// SchemaRef references a schema in components/schemas.
func SchemaRef(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}

// Nullable returns a schema type accepting typ or null.
func Nullable(typ string) any {
	return []string{typ, "null"}
}

func JSONContent(schema *Schema) map[string]*MediaType {
	return map[string]*MediaType{
		"application/json": {Schema: schema},
	}
}

func ResponseJSON(description string, schema *Schema) *Response {
	return &Response{Description: description, Content: JSONContent(schema)}
}

func ResponseEmpty(description string) *Response {
	return &Response{Description: description}
}

func QueryParam(name, typ, description string, required bool) *Parameter {
	return &Parameter{
		Name:        name,
		In:          "query",
		Required:    required,
		Description: description,
		Schema:      &Schema{Type: typ},
	}
}

// PathParam creates a required path parameter with UUID format.
func PathParam(name, description string) *Parameter {
	return &Parameter{
		Name:        name,
		In:          "path",
		Required:    true,
		Description: description,
		Schema:      &Schema{Type: "string", Format: "uuid"},
	}
}
