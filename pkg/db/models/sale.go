package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sale aggregates one or more line items. TotalAmount is supplied at
// insertion time; whether it is trusted or recomputed from the line items is
// a service-level policy.
type Sale struct {
	ID              uint            `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerID      uint            `gorm:"column:customer_id;not null"`
	PaymentMethodID uint            `gorm:"column:payment_method_id;not null"`
	SalesChannelID  uint            `gorm:"column:sales_channel_id;not null"`
	SaleDate        time.Time       `gorm:"column:sale_date;not null"`
	TotalAmount     decimal.Decimal `gorm:"column:total_amount;type:numeric(12,2);not null"`

	Customer      *Customer      `gorm:"foreignKey:CustomerID"`
	PaymentMethod *PaymentMethod `gorm:"foreignKey:PaymentMethodID"`
	SalesChannel  *SalesChannel  `gorm:"foreignKey:SalesChannelID"`
	LineItems     []SaleLineItem `gorm:"foreignKey:SaleID"`
}

// BeforeCreate defaults the sale date to the insertion time, mirroring the
// column default of the hosting engine.
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.SaleDate.IsZero() {
		s.SaleDate = time.Now().UTC()
	}
	return nil
}
