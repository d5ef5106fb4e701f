package joins

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/mytheresa/go-feature-showcase/app/api"
	"github.com/mytheresa/go-feature-showcase/models"
)

// Row is one projected outer-join row. Category fields are null when a
// product has no category.
type Row struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	CategoryID   *uuid.UUID `json:"categoryId"`
	CategoryName *string    `json:"categoryName"`
}

type Response struct {
	Left  []Row `json:"left"`
	Right []Row `json:"right"`
}

type JoinProvider interface {
	LeftJoinCategories(ctx context.Context) ([]models.ProductCategoryRow, error)
	RightJoinCategories(ctx context.Context) ([]models.ProductCategoryRow, error)
}

type JoinHandler struct {
	repo   JoinProvider
	logger *slog.Logger
}

func NewJoinHandler(r JoinProvider, logger *slog.Logger) *JoinHandler {
	return &JoinHandler{repo: r, logger: logger}
}

func (h *JoinHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	left, err := h.repo.LeftJoinCategories(r.Context())
	if err != nil {
		api.RespondError(w, r, h.logger, http.StatusInternalServerError, "failed to left join products", err)
		return
	}

	right, err := h.repo.RightJoinCategories(r.Context())
	if err != nil {
		api.RespondError(w, r, h.logger, http.StatusInternalServerError, "failed to right join products", err)
		return
	}

	response := Response{
		Left:  make([]Row, len(left)),
		Right: make([]Row, len(right)),
	}
	for i, row := range left {
		response.Left[i] = project(row)
	}
	for i, row := range right {
		response.Right[i] = project(row)
	}

	api.RespondJSON(w, http.StatusOK, response)
}

// project maps a joined row to its response shape. A missing product
// gets a fresh placeholder identifier and an empty name.
func project(row models.ProductCategoryRow) Row {
	out := Row{
		ID:   row.ProductID.UUID,
		Name: row.ProductName.String,
	}
	if !row.ProductID.Valid {
		out.ID = uuid.Must(uuid.NewV7())
		out.Name = ""
	}
	if row.CategoryID.Valid {
		id := row.CategoryID.UUID
		out.CategoryID = &id
	}
	if row.CategoryName.Valid {
		name := row.CategoryName.String
		out.CategoryName = &name
	}
	return out
}
