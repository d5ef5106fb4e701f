package categories

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/mytheresa/go-feature-showcase/app/api"
	"github.com/mytheresa/go-feature-showcase/models"
)

type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type CategoryProvider interface {
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
}

type CategoryHandler struct {
	repo   CategoryProvider
	logger *slog.Logger
}

func NewCategoryHandler(r CategoryProvider, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{repo: r, logger: logger}
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.GetAllCategories(r.Context())
	if err != nil {
		api.RespondError(w, r, h.logger, http.StatusInternalServerError, "failed to fetch categories", err)
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = CategoryResponse{
			ID:   c.ID,
			Name: c.Name,
		}
	}

	api.RespondJSON(w, http.StatusOK, response)
}

func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.RespondError(w, r, h.logger, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}

	fields, err := api.Validate(input)
	if err != nil {
		api.RespondError(w, r, h.logger, http.StatusInternalServerError, "Failed to validate category", err)
		return
	}
	if fields != nil {
		api.RespondValidation(w, fields)
		return
	}

	category := &models.Category{
		Name: input.Name,
	}

	if err := h.repo.CreateCategory(r.Context(), category); err != nil {
		api.RespondError(w, r, h.logger, http.StatusInternalServerError, "Failed to create category", err)
		return
	}

	api.RespondJSON(w, http.StatusCreated, CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
	})
}
