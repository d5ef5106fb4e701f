package database

import (
	"context"

	"github.com/mytheresa/go-feature-showcase/models"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seed inserts a small demo catalog: categories with and without
// products and one product without a category, so both outer joins
// have unmatched rows. It does nothing when categories already exist.
func Seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Category{}).Count(&count).Error; err != nil {
			return errors.WithStack(err)
		}
		if count > 0 {
			return nil
		}

		clothing := models.Category{Name: "Clothing"}
		shoes := models.Category{Name: "Shoes"}
		accessories := models.Category{Name: "Accessories"}

		for _, c := range []*models.Category{&clothing, &shoes, &accessories} {
			if err := tx.Create(c).Error; err != nil {
				return errors.Wrapf(err, "could not seed category %q", c.Name)
			}
		}

		products := []models.Product{
			{Name: "Linen Shirt", Price: decimal.RequireFromString("49.90"), CategoryID: &clothing.ID},
			{Name: "Wool Coat", Price: decimal.RequireFromString("189.00"), CategoryID: &clothing.ID},
			{Name: "Leather Boots", Price: decimal.RequireFromString("129.50"), CategoryID: &shoes.ID},
			{Name: "Gift Card", Price: decimal.RequireFromString("25.00")},
		}

		for i := range products {
			if err := tx.Create(&products[i]).Error; err != nil {
				return errors.Wrapf(err, "could not seed product %q", products[i].Name)
			}
		}

		return nil
	})
}
