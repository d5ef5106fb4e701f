package joins

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/mytheresa/go-feature-showcase/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock Repo ---

type MockJoinRepo struct {
	Left, Right []models.ProductCategoryRow
	LeftErr     error
	RightErr    error
}

func (m *MockJoinRepo) LeftJoinCategories(ctx context.Context) ([]models.ProductCategoryRow, error) {
	return m.Left, m.LeftErr
}

func (m *MockJoinRepo) RightJoinCategories(ctx context.Context) ([]models.ProductCategoryRow, error) {
	return m.Right, m.RightErr
}

// --- Helpers ---

func row(productID *uuid.UUID, productName string, categoryID *uuid.UUID, categoryName string) models.ProductCategoryRow {
	r := models.ProductCategoryRow{}
	if productID != nil {
		r.ProductID = uuid.NullUUID{UUID: *productID, Valid: true}
		r.ProductName = sql.NullString{String: productName, Valid: true}
	}
	if categoryID != nil {
		r.CategoryID = uuid.NullUUID{UUID: *categoryID, Valid: true}
		r.CategoryName = sql.NullString{String: categoryName, Valid: true}
	}
	return r
}

// --- Tests ---

func TestHandleGet(t *testing.T) {
	shirtID := uuid.Must(uuid.NewV7())
	giftCardID := uuid.Must(uuid.NewV7())
	clothingID := uuid.Must(uuid.NewV7())
	accessoriesID := uuid.Must(uuid.NewV7())

	testCases := []struct {
		name               string
		repo               *MockJoinRepo
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Unmatched rows on both sides",
			repo: &MockJoinRepo{
				Left: []models.ProductCategoryRow{
					row(&giftCardID, "Gift Card", nil, ""),
					row(&shirtID, "Linen Shirt", &clothingID, "Clothing"),
				},
				Right: []models.ProductCategoryRow{
					row(nil, "", &accessoriesID, "Accessories"),
					row(&shirtID, "Linen Shirt", &clothingID, "Clothing"),
				},
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp Response
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				require.Len(t, resp.Left, 2)
				require.Len(t, resp.Right, 2)

				assert.Equal(t, giftCardID, resp.Left[0].ID)
				assert.Nil(t, resp.Left[0].CategoryID)
				assert.Nil(t, resp.Left[0].CategoryName)
				assert.Equal(t, &clothingID, resp.Left[1].CategoryID)

				assert.NotEqual(t, uuid.Nil, resp.Right[0].ID, "Missing product gets a placeholder id")
				assert.Equal(t, uuid.Version(7), resp.Right[0].ID.Version())
				assert.Equal(t, "", resp.Right[0].Name)
				assert.Equal(t, "Accessories", *resp.Right[0].CategoryName)
				assert.Equal(t, shirtID, resp.Right[1].ID)
			},
		},
		{
			name:               "Empty store",
			repo:               &MockJoinRepo{},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp map[string][]any
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.NotNil(t, resp["left"])
				assert.NotNil(t, resp["right"])
				assert.Empty(t, resp["left"])
			},
		},
		{
			name:               "Left join error",
			repo:               &MockJoinRepo{LeftErr: errors.New("db down")},
			expectedStatusCode: http.StatusInternalServerError,
		},
		{
			name:               "Right join error",
			repo:               &MockJoinRepo{RightErr: errors.New("db down")},
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
				assert.Equal(t, "failed to right join products", errResp["error"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			handler := NewJoinHandler(tc.repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
			req := httptest.NewRequest("GET", "/efcore-left-rigt-join", nil)
			rec := httptest.NewRecorder()

			// Act
			handler.HandleGet(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
		})
	}
}
