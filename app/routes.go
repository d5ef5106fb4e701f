// Package app registers the HTTP routes of the showcase service and
// wraps them with the shared middleware stack.
package app

import (
	"log/slog"
	"net/http"

	"github.com/mytheresa/go-feature-showcase/app/catalog"
	"github.com/mytheresa/go-feature-showcase/app/categories"
	"github.com/mytheresa/go-feature-showcase/app/docs"
	"github.com/mytheresa/go-feature-showcase/app/joins"
	"github.com/mytheresa/go-feature-showcase/app/metrics"
	"github.com/mytheresa/go-feature-showcase/app/openapi"
	"github.com/mytheresa/go-feature-showcase/app/showcase"
	"github.com/mytheresa/go-feature-showcase/models"
	"github.com/rs/cors"
	sloghttp "github.com/samber/slog-http"
	"gorm.io/gorm"
)

const (
	Title   = "Go Feature Showcase"
	Version = "v1"

	DocumentPath  = "/openapi/v1.json"
	ReferencePath = "/scalar/v1"
)

// Route binds a method and path to a handler, with the operation used
// to describe it in the OpenAPI document.
type Route struct {
	Method    string
	Path      string
	Handler   http.HandlerFunc
	Operation *openapi.Operation
}

func (r Route) Pattern() string {
	return r.Method + " " + r.Path
}

type Options struct {
	DB             *gorm.DB
	Logger         *slog.Logger
	Development    bool
	AllowedOrigins []string
}

// NewHandler builds the service http.Handler. The OpenAPI document and
// the reference page are only mounted in development.
func NewHandler(opts Options) (http.Handler, error) {
	routes := Routes(opts.DB, opts.Logger)

	mux := http.NewServeMux()
	for _, route := range routes {
		mux.Handle(route.Pattern(), metrics.Instrument(route.Pattern(), route.Handler))
	}

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", metrics.Handler())

	if opts.Development {
		doc, err := Document(routes)
		if err != nil {
			return nil, err
		}
		data, err := doc.MarshalIndent()
		if err != nil {
			return nil, err
		}
		mux.Handle("GET "+DocumentPath, openapi.Handler(data))

		reference, err := docs.Handler(Title, DocumentPath)
		if err != nil {
			return nil, err
		}
		mux.Handle("GET "+ReferencePath, reference)
	}

	var handler http.Handler = mux
	handler = cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(handler)
	handler = sloghttp.Recovery(handler)
	handler = sloghttp.New(opts.Logger)(handler)

	return handler, nil
}

// Routes returns every documented route of the service.
func Routes(db *gorm.DB, logger *slog.Logger) []Route {
	productsRepo := models.NewProductsRepository(db)
	categoriesRepo := models.NewCategoriesRepository(db)

	demos := showcase.NewHandler(logger)
	joinHandler := joins.NewJoinHandler(productsRepo, logger)
	categoryHandler := categories.NewCategoryHandler(categoriesRepo, logger)
	catalogHandler := catalog.NewCatalogHandler(productsRepo, categoriesRepo, logger)

	return []Route{
		{
			Method:  http.MethodGet,
			Path:    "/field-backed",
			Handler: demos.HandleFieldBacked,
			Operation: &openapi.Operation{
				OperationID: "fieldBacked",
				Summary:     "Assign a message through a guarded setter",
				Tags:        []string{"Features"},
				Responses:   map[int]*openapi.Response{200: openapi.ResponseEmpty("OK")},
			},
		},
		{
			Method:  http.MethodGet,
			Path:    "/extension-members",
			Handler: demos.HandleExtensionMembers,
			Operation: &openapi.Operation{
				OperationID: "extensionMembers",
				Summary:     "Log word count, emptiness, truncation and reversal of a text",
				Tags:        []string{"Features"},
				Parameters: []*openapi.Parameter{
					openapi.QueryParam("text", "string", "Text to inspect, defaults to the sample sentence", false),
				},
				Responses: map[int]*openapi.Response{200: openapi.ResponseEmpty("OK")},
			},
		},
		{
			Method:  http.MethodGet,
			Path:    "/null-conditional",
			Handler: demos.HandleNullConditional,
			Operation: &openapi.Operation{
				OperationID: "nullConditional",
				Summary:     "Increment an optional number only when it is set",
				Tags:        []string{"Features"},
				Responses:   map[int]*openapi.Response{200: openapi.ResponseEmpty("OK")},
			},
		},
		{
			Method:  http.MethodPost,
			Path:    "/enhanced-from-validation",
			Handler: demos.HandleEnhancedValidation,
			Operation: &openapi.Operation{
				OperationID: "enhancedFormValidation",
				Summary:     "Validate an email and a name and echo them",
				Tags:        []string{"Features"},
				Parameters: []*openapi.Parameter{
					openapi.QueryParam("email", "string", "Email address", true),
					openapi.QueryParam("name", "string", "Name", true),
				},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Echoed form", openapi.SchemaRef("EnhancedForm")),
					400: openapi.ResponseJSON("Validation failed", openapi.SchemaRef("Error")),
				},
			},
		},
		{
			Method:  http.MethodGet,
			Path:    "/efcore-left-rigt-join",
			Handler: joinHandler.HandleGet,
			Operation: &openapi.Operation{
				OperationID: "outerJoins",
				Summary:     "Left and right outer joins of products and categories",
				Tags:        []string{"Features"},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Join results", openapi.SchemaRef("JoinResponse")),
					500: openapi.ResponseJSON("Server error", openapi.SchemaRef("Error")),
				},
			},
		},
		{
			Method:  http.MethodGet,
			Path:    "/categories",
			Handler: categoryHandler.HandleGetAll,
			Operation: &openapi.Operation{
				OperationID: "listCategories",
				Summary:     "List categories",
				Tags:        []string{"Categories"},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Categories", &openapi.Schema{Type: "array", Items: openapi.SchemaRef("Category")}),
				},
			},
		},
		{
			Method:  http.MethodPost,
			Path:    "/categories",
			Handler: categoryHandler.HandleCreate,
			Operation: &openapi.Operation{
				OperationID: "createCategory",
				Summary:     "Create a category",
				Tags:        []string{"Categories"},
				RequestBody: &openapi.RequestBody{Required: true, Content: openapi.JSONContent(openapi.SchemaRef("CreateCategory"))},
				Responses: map[int]*openapi.Response{
					201: openapi.ResponseJSON("Created", openapi.SchemaRef("Category")),
					400: openapi.ResponseJSON("Invalid payload", openapi.SchemaRef("Error")),
				},
			},
		},
		{
			Method:  http.MethodGet,
			Path:    "/catalog",
			Handler: catalogHandler.HandleGet,
			Operation: &openapi.Operation{
				OperationID: "listProducts",
				Summary:     "List products with pagination and filters",
				Tags:        []string{"Catalog"},
				Parameters: []*openapi.Parameter{
					openapi.QueryParam("offset", "integer", "Number of products to skip", false),
					openapi.QueryParam("limit", "integer", "Page size, between 1 and 100", false),
					openapi.QueryParam("category", "string", "Category identifier", false),
					openapi.QueryParam("price_lt", "number", "Only products cheaper than this", false),
				},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Products page", openapi.SchemaRef("ProductPage")),
				},
			},
		},
		{
			Method:  http.MethodGet,
			Path:    "/catalog/{id}",
			Handler: catalogHandler.HandleGetProduct,
			Operation: &openapi.Operation{
				OperationID: "getProduct",
				Summary:     "Get a product",
				Tags:        []string{"Catalog"},
				Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Product identifier")},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Product", openapi.SchemaRef("Product")),
					400: openapi.ResponseJSON("Malformed identifier", openapi.SchemaRef("Error")),
					404: openapi.ResponseJSON("Not found", openapi.SchemaRef("Error")),
				},
			},
		},
		{
			Method:  http.MethodPost,
			Path:    "/catalog",
			Handler: catalogHandler.HandleCreate,
			Operation: &openapi.Operation{
				OperationID: "createProduct",
				Summary:     "Create a product",
				Tags:        []string{"Catalog"},
				RequestBody: &openapi.RequestBody{Required: true, Content: openapi.JSONContent(openapi.SchemaRef("CreateProduct"))},
				Responses: map[int]*openapi.Response{
					201: openapi.ResponseJSON("Created", openapi.SchemaRef("Product")),
					400: openapi.ResponseJSON("Invalid payload", openapi.SchemaRef("Error")),
				},
			},
		},
	}
}

// Document describes routes as an OpenAPI document.
func Document(routes []Route) (*openapi.Document, error) {
	doc := openapi.New(openapi.Info{
		Title:       Title,
		Version:     Version,
		Description: "Small endpoints demonstrating language and framework features over an in-memory catalog.",
	})

	for _, route := range routes {
		if route.Operation == nil {
			continue
		}
		if err := doc.AddOperation(route.Method, route.Path, route.Operation); err != nil {
			return nil, err
		}
	}

	for name, schema := range schemas() {
		doc.AddSchema(name, schema)
	}

	return doc, nil
}

func schemas() map[string]*openapi.Schema {
	str := &openapi.Schema{Type: "string"}
	id := &openapi.Schema{Type: "string", Format: "uuid"}

	category := &openapi.Schema{
		Type:       "object",
		Properties: map[string]*openapi.Schema{"id": id, "name": str},
		Required:   []string{"id", "name"},
	}

	return map[string]*openapi.Schema{
		"Error": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"error":  str,
				"fields": {Type: "object"},
			},
			Required: []string{"error"},
		},
		"EnhancedForm": {
			Type:       "object",
			Properties: map[string]*openapi.Schema{"email": {Type: "string", Format: "email"}, "name": str},
			Required:   []string{"email", "name"},
		},
		"JoinRow": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":           id,
				"name":         str,
				"categoryId":   {Type: openapi.Nullable("string"), Format: "uuid"},
				"categoryName": {Type: openapi.Nullable("string")},
			},
		},
		"JoinResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"left":  {Type: "array", Items: openapi.SchemaRef("JoinRow")},
				"right": {Type: "array", Items: openapi.SchemaRef("JoinRow")},
			},
		},
		"Category": category,
		"CreateCategory": {
			Type:       "object",
			Properties: map[string]*openapi.Schema{"name": str},
			Required:   []string{"name"},
		},
		"Product": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":       id,
				"name":     str,
				"price":    {Type: "number"},
				"category": {Type: openapi.Nullable("object"), Properties: category.Properties},
			},
		},
		"ProductPage": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"total":    {Type: "integer"},
				"products": {Type: "array", Items: openapi.SchemaRef("Product")},
			},
		},
		"CreateProduct": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"name":       str,
				"price":      {Type: "number"},
				"categoryId": {Type: openapi.Nullable("string"), Format: "uuid"},
			},
			Required: []string{"name", "price"},
		},
	}
}
