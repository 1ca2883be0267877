package transactions

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Nakshatra2405/sales-ledger-backend/internal/repo"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/db/models"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/pagination"
)

// ProductRevenueRow aggregates transaction revenue per product id. The flat
// schema holds no product names, only identifiers.
type ProductRevenueRow struct {
	ProductID uint            `json:"product_id"`
	Units     int64           `json:"units"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// CustomerSpendRow aggregates a customer's total spend across transactions.
type CustomerSpendRow struct {
	CustomerID uint            `json:"customer_id"`
	Spend      decimal.Decimal `json:"spend"`
}

// Repository manages the flat transactions schema.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, txn *models.Transaction) error
	List(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.Transaction, error)
	RevenueByProduct(ctx context.Context) ([]ProductRevenueRow, error)
	TopCustomersBySpend(ctx context.Context, limit int) ([]CustomerSpendRow, error)
}

type repository struct {
	repo.Base
}

// NewRepository returns a transactions repository bound to the provided
// database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{Base: repo.NewBase(tx)}
}

func (r *repository) Create(ctx context.Context, txn *models.Transaction) error {
	return r.DB(ctx).Create(txn).Error
}

// List pages through transactions in (transaction_date, id) order.
func (r *repository) List(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.Transaction, error) {
	query := r.DB(ctx).
		Order("transaction_date ASC, id ASC").
		Limit(limit)
	if cursor != nil {
		query = query.Where(
			"transaction_date > ? OR (transaction_date = ? AND id > ?)",
			cursor.Date, cursor.Date, cursor.ID,
		)
	}

	var records []models.Transaction
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) RevenueByProduct(ctx context.Context) ([]ProductRevenueRow, error) {
	var rows []ProductRevenueRow
	err := r.DB(ctx).
		Table("transactions").
		Select("product_id, SUM(quantity) AS units, SUM(quantity * price) AS revenue").
		Group("product_id").
		Order("revenue DESC, product_id ASC").
		Scan(&rows).Error
	return rows, err
}

// TopCustomersBySpend ranks customers by SUM(quantity * price) descending.
// Ties break on the lower customer id so the ranking is deterministic.
func (r *repository) TopCustomersBySpend(ctx context.Context, limit int) ([]CustomerSpendRow, error) {
	var rows []CustomerSpendRow
	err := r.DB(ctx).
		Table("transactions").
		Select("customer_id, SUM(quantity * price) AS spend").
		Group("customer_id").
		Order("spend DESC, customer_id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
