package models

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a product in the catalog.
// The category reference is optional so that outer joins have
// something to show on both sides.
type Product struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name       string          `gorm:"not null"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CategoryID *uuid.UUID      `gorm:"type:uuid;index"`
	Category   *Category       `gorm:"foreignKey:CategoryID"`
}

func (p *Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID != uuid.Nil {
		return nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return errors.WithStack(err)
	}

	p.ID = id
	return nil
}
