package reports

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Nakshatra2405/sales-ledger-backend/internal/repo"
)

// MonthlyRevenueRow is one month's recognized ledger revenue.
type MonthlyRevenueRow struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

// MonthlyOrderValueRow carries the inputs for a month's average order value.
type MonthlyOrderValueRow struct {
	Month     string          `json:"month"`
	SaleCount int64           `json:"sale_count"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// PriceDeviationRow is one line item with its price deviation from the
// product's base price. Items sold at base price carry a zero deviation.
type PriceDeviationRow struct {
	LineItemID  uint            `json:"line_item_id"`
	SaleID      uint            `json:"sale_id"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	BasePrice   decimal.Decimal `json:"base_price"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Deviation   decimal.Decimal `json:"deviation"`
}

// ChannelRevenueRow aggregates revenue per sales channel.
type ChannelRevenueRow struct {
	Channel   string          `json:"channel"`
	SaleCount int64           `json:"sale_count"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// PaymentMethodRevenueRow aggregates revenue per payment method.
type PaymentMethodRevenueRow struct {
	Method    string          `json:"method"`
	SaleCount int64           `json:"sale_count"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// Repository runs the read-only aggregate queries over the ledger schema.
type Repository interface {
	MonthlyRevenue(ctx context.Context) ([]MonthlyRevenueRow, error)
	MonthlyOrderValues(ctx context.Context) ([]MonthlyOrderValueRow, error)
	PriceDeviations(ctx context.Context) ([]PriceDeviationRow, error)
	RevenueByChannel(ctx context.Context) ([]ChannelRevenueRow, error)
	RevenueByPaymentMethod(ctx context.Context) ([]PaymentMethodRevenueRow, error)
}

type repository struct {
	repo.Base
}

// NewRepository returns a reports repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

// monthExpr yields the dialect's formatting expression for bucketing a
// timestamp column into a YYYY-MM string. Tests run on sqlite, production
// runs on Postgres.
func monthExpr(db *gorm.DB, column string) string {
	if db.Dialector.Name() == "sqlite" {
		return "strftime('%Y-%m', " + column + ")"
	}
	return "to_char(" + column + ", 'YYYY-MM')"
}

func (r *repository) MonthlyRevenue(ctx context.Context) ([]MonthlyRevenueRow, error) {
	db := r.DB(ctx)
	month := monthExpr(db, "sale_date")
	var rows []MonthlyRevenueRow
	err := db.
		Table("sales").
		Select(month + " AS month, SUM(total_amount) AS revenue").
		Group(month).
		Order("month ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) MonthlyOrderValues(ctx context.Context) ([]MonthlyOrderValueRow, error) {
	db := r.DB(ctx)
	month := monthExpr(db, "sale_date")
	var rows []MonthlyOrderValueRow
	err := db.
		Table("sales").
		Select(month + " AS month, COUNT(*) AS sale_count, SUM(total_amount) AS revenue").
		Group(month).
		Order("month ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) PriceDeviations(ctx context.Context) ([]PriceDeviationRow, error) {
	var rows []PriceDeviationRow
	err := r.DB(ctx).
		Table("sale_line_items AS li").
		Select(`li.id AS line_item_id,
			li.sale_id AS sale_id,
			p.id AS product_id,
			p.name AS product_name,
			p.sku AS sku,
			p.base_price AS base_price,
			li.unit_price AS unit_price,
			li.unit_price - p.base_price AS deviation`).
		Joins("JOIN products AS p ON p.id = li.product_id").
		Order("li.id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) RevenueByChannel(ctx context.Context) ([]ChannelRevenueRow, error) {
	var rows []ChannelRevenueRow
	err := r.DB(ctx).
		Table("sales AS s").
		Select("c.name AS channel, COUNT(*) AS sale_count, SUM(s.total_amount) AS revenue").
		Joins("JOIN sales_channels AS c ON c.id = s.sales_channel_id").
		Group("c.name").
		Order("revenue DESC, channel ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) RevenueByPaymentMethod(ctx context.Context) ([]PaymentMethodRevenueRow, error) {
	var rows []PaymentMethodRevenueRow
	err := r.DB(ctx).
		Table("sales AS s").
		Select("m.name AS method, COUNT(*) AS sale_count, SUM(s.total_amount) AS revenue").
		Joins("JOIN payment_methods AS m ON m.id = s.payment_method_id").
		Group("m.name").
		Order("revenue DESC, method ASC").
		Scan(&rows).Error
	return rows, err
}
