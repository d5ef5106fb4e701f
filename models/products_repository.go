package models

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type ProductsRepository struct {
	db *gorm.DB
}

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

type ProductFilters struct {
	CategoryID    *uuid.UUID
	PriceLessThan *float64
}

// ProductCategoryRow is one row of a products/categories outer join.
// Either side may be absent depending on the join direction.
type ProductCategoryRow struct {
	ProductID    uuid.NullUUID
	ProductName  sql.NullString
	CategoryID   uuid.NullUUID
	CategoryName sql.NullString
}

const joinColumns = "products.id AS product_id, products.name AS product_name, " +
	"categories.id AS category_id, categories.name AS category_name"

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

func (r *ProductsRepository) GetAllProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Order("name").
		Find(&products).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	return products, nil
}

func (r *ProductsRepository) GetFilteredProducts(ctx context.Context, offset, limit int, filters ProductFilters) ([]Product, int64, error) {
	var products []Product
	var total int64

	query := r.db.WithContext(ctx).Model(&Product{})

	// Filter
	if filters.CategoryID != nil {
		query = query.Where("products.category_id = ?", *filters.CategoryID)
	}
	if filters.PriceLessThan != nil {
		query = query.Where("products.price < ?", *filters.PriceLessThan)
	}

	// Count total after filtering
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	// Apply pagination
	if err := query.
		Preload("Category").
		Order("products.name").
		Order("products.id").
		Offset(offset).
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	return products, total, nil
}

func (r *ProductsRepository) GetByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	var product Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errors.WithStack(err) // Other DB error
	}
	return &product, nil
}

func (r *ProductsRepository) CreateProduct(ctx context.Context, product *Product) error {
	if err := r.db.WithContext(ctx).Omit("Category").Create(product).Error; err != nil {
		return errors.Wrap(err, "could not create product")
	}
	return nil
}

// LeftJoinCategories returns every product, paired with its category
// when one exists.
func (r *ProductsRepository) LeftJoinCategories(ctx context.Context) ([]ProductCategoryRow, error) {
	var rows []ProductCategoryRow
	if err := r.db.WithContext(ctx).
		Table("products").
		Select(joinColumns).
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Order("products.name").
		Order("products.id").
		Scan(&rows).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	return rows, nil
}

// RightJoinCategories returns every category, once per matching product
// or once with empty product columns when it has none.
func (r *ProductsRepository) RightJoinCategories(ctx context.Context) ([]ProductCategoryRow, error) {
	var rows []ProductCategoryRow
	if err := r.db.WithContext(ctx).
		Table("products").
		Select(joinColumns).
		Joins("RIGHT JOIN categories ON categories.id = products.category_id").
		Order("categories.name").
		Order("products.name").
		Scan(&rows).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	return rows, nil
}
