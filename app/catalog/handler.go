package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/mytheresa/go-feature-showcase/app/api"
	"github.com/mytheresa/go-feature-showcase/models"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

type Response struct {
	Total    int       `json:"total"`
	Products []Product `json:"products"`
}

type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type Product struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Category *Category `json:"category"`
}

type CreateProductRequest struct {
	Name       string          `json:"name" validate:"required,max=200"`
	Price      decimal.Decimal `json:"price"`
	CategoryID *uuid.UUID      `json:"categoryId"`
}

type ProductProvider interface {
	GetFilteredProducts(ctx context.Context, offset, limit int, filters models.ProductFilters) ([]models.Product, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
}

type CategoryLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
}

type CatalogHandler struct {
	repo       ProductProvider
	categories CategoryLookup
	logger     *slog.Logger
}

func NewCatalogHandler(r ProductProvider, c CategoryLookup, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		repo:       r,
		categories: c,
		logger:     logger,
	}
}

func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	// Parse pagination query params
	offset := 0
	limit := defaultLimit

	if oStr := r.URL.Query().Get("offset"); oStr != "" {
		if o, err := strconv.Atoi(oStr); err == nil && o >= 0 {
			offset = o
		}
	}

	if lStr := r.URL.Query().Get("limit"); lStr != "" {
		if l, err := strconv.Atoi(lStr); err == nil {
			limit = min(max(l, 1), maxLimit)
		}
	}

	// Parse filters
	var filters models.ProductFilters

	if cStr := r.URL.Query().Get("category"); cStr != "" {
		if id, err := uuid.Parse(cStr); err == nil {
			filters.CategoryID = &id
		}
	}

	if priceStr := r.URL.Query().Get("price_lt"); priceStr != "" {
		if val, err := strconv.ParseFloat(priceStr, 64); err == nil {
			filters.PriceLessThan = &val
		}
	}

	res, total, err := h.repo.GetFilteredProducts(r.Context(), offset, limit, filters)
	if err != nil {
		api.RespondError(w, r, h.logger, http.StatusInternalServerError, "failed to get products", err)
		return
	}

	products := make([]Product, len(res))
	for i, p := range res {
		products[i] = toProduct(p)
	}

	api.RespondJSON(w, http.StatusOK, Response{
		Total:    int(total),
		Products: products,
	})
}

func (h *CatalogHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		api.RespondError(w, r, h.logger, http.StatusBadRequest, "Invalid product id", err)
		return
	}

	product, err := h.repo.GetByID(r.Context(), id)
	if errors.Is(err, models.ErrProductNotFound) {
		api.RespondError(w, r, h.logger, http.StatusNotFound, "Product not found", err)
		return
	}
	if err != nil {
		api.RespondError(w, r, h.logger, http.StatusInternalServerError, "failed to get product", err)
		return
	}

	api.RespondJSON(w, http.StatusOK, toProduct(*product))
}

func (h *CatalogHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.RespondError(w, r, h.logger, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}

	fields, err := api.Validate(input)
	if err != nil {
		api.RespondError(w, r, h.logger, http.StatusInternalServerError, "Failed to validate product", err)
		return
	}
	if input.Price.IsNegative() {
		if fields == nil {
			fields = map[string]string{}
		}
		fields["price"] = "must be greater than or equal to 0"
	}
	if fields != nil {
		api.RespondValidation(w, fields)
		return
	}

	product := &models.Product{
		Name:       input.Name,
		Price:      input.Price,
		CategoryID: input.CategoryID,
	}

	if input.CategoryID != nil {
		category, err := h.categories.GetByID(r.Context(), *input.CategoryID)
		if errors.Is(err, models.ErrCategoryNotFound) {
			api.RespondValidation(w, map[string]string{"categoryId": "does not exist"})
			return
		}
		if err != nil {
			api.RespondError(w, r, h.logger, http.StatusInternalServerError, "Failed to create product", err)
			return
		}
		product.Category = category
	}

	if err := h.repo.CreateProduct(r.Context(), product); err != nil {
		api.RespondError(w, r, h.logger, http.StatusInternalServerError, "Failed to create product", err)
		return
	}

	api.RespondJSON(w, http.StatusCreated, toProduct(*product))
}

func toProduct(p models.Product) Product {
	product := Product{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price.InexactFloat64(),
	}
	if p.Category != nil {
		product.Category = &Category{
			ID:   p.Category.ID,
			Name: p.Category.Name,
		}
	}
	return product
}
