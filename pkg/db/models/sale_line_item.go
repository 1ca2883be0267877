package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	// ErrNonPositiveQuantity rejects line items with quantity <= 0.
	ErrNonPositiveQuantity = errors.New("line item quantity must be positive")
	// ErrNegativeUnitPrice rejects line items with unit_price < 0.
	ErrNegativeUnitPrice = errors.New("line item unit price must not be negative")
)

// SaleLineItem is one product-quantity-price entry within a sale. LineTotal is
// a derived value: it is always recomputed from quantity and unit price and
// never trusted from caller input.
type SaleLineItem struct {
	ID        uint            `gorm:"column:id;primaryKey;autoIncrement"`
	SaleID    uint            `gorm:"column:sale_id;not null"`
	ProductID uint            `gorm:"column:product_id;not null"`
	Quantity  int             `gorm:"column:quantity;not null;check:quantity > 0"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null;check:unit_price >= 0"`
	LineTotal decimal.Decimal `gorm:"column:line_total;type:numeric(12,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}

// BeforeSave validates the line item and overwrites any caller-supplied
// LineTotal with quantity * unit_price. The same rule runs as a trigger
// inside Postgres; the hook keeps every other dialect observably equivalent.
func (li *SaleLineItem) BeforeSave(tx *gorm.DB) error {
	if li.Quantity <= 0 {
		return ErrNonPositiveQuantity
	}
	if li.UnitPrice.IsNegative() {
		return ErrNegativeUnitPrice
	}
	li.LineTotal = li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
	return nil
}
