package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the flat record of the second schema. It carries no foreign
// keys; quantity * price is computed in the reporting queries, not stored.
type Transaction struct {
	ID              uint            `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID       uint            `gorm:"column:product_id;not null"`
	CustomerID      uint            `gorm:"column:customer_id;not null"`
	Quantity        int             `gorm:"column:quantity;not null"`
	Price           decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	TransactionDate time.Time       `gorm:"column:transaction_date;not null;autoCreateTime"`
}
