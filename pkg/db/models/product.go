package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a sellable catalog item. BasePrice is a reference
// price; line items may diverge from it.
type Product struct {
	ID        uint            `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string          `gorm:"column:name;not null"`
	SKU       string          `gorm:"column:sku;not null;uniqueIndex"`
	Category  string          `gorm:"column:category"`
	BasePrice decimal.Decimal `gorm:"column:base_price;type:numeric(12,2);not null;check:base_price > 0"`
	IsActive  bool            `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
}
