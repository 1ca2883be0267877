package transactions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Nakshatra2405/sales-ledger-backend/pkg/db"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/db/models"
	pkgerrors "github.com/Nakshatra2405/sales-ledger-backend/pkg/errors"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/pagination"
)

// DefaultTopCustomers is the ranking size when the caller does not ask for
// a specific limit.
const DefaultTopCustomers = 5

// RecordTransactionInput captures a single flat transaction. Product and
// customer ids are opaque here: the transactions schema intentionally
// enforces no referential integrity against the ledger.
type RecordTransactionInput struct {
	ProductID       uint            `json:"product_id" validate:"required"`
	CustomerID      uint            `json:"customer_id" validate:"required"`
	Quantity        int             `json:"quantity" validate:"required"`
	Price           decimal.Decimal `json:"price"`
	TransactionDate time.Time       `json:"transaction_date"`
}

// Service exposes the transactions schema's operations.
type Service interface {
	Record(ctx context.Context, input RecordTransactionInput) (*models.Transaction, error)
	List(ctx context.Context, params pagination.Params) (*TransactionPage, error)
	RevenueByProduct(ctx context.Context) ([]ProductRevenueRow, error)
	TopCustomersBySpend(ctx context.Context, limit int) ([]CustomerSpendRow, error)
}

// TransactionPage is one page of the transactions listing.
type TransactionPage struct {
	Items      []models.Transaction `json:"items"`
	NextCursor string               `json:"next_cursor,omitempty"`
}

type service struct {
	repo Repository
}

// NewService builds the transactions service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "transactions: repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Record(ctx context.Context, input RecordTransactionInput) (*models.Transaction, error) {
	if input.ProductID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if input.CustomerID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id is required")
	}
	if input.Quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeCheckViolation, "quantity must be positive")
	}
	if input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeCheckViolation, "price must not be negative")
	}

	txn := &models.Transaction{
		ProductID:       input.ProductID,
		CustomerID:      input.CustomerID,
		Quantity:        input.Quantity,
		Price:           input.Price,
		TransactionDate: input.TransactionDate,
	}
	if txn.TransactionDate.IsZero() {
		txn.TransactionDate = time.Now().UTC()
	}

	if err := s.repo.Create(ctx, txn); err != nil {
		return nil, db.Classify(err)
	}
	return txn, nil
}

// List returns one page of transactions plus the cursor for the next page.
func (s *service) List(ctx context.Context, params pagination.Params) (*TransactionPage, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	limit := pagination.NormalizeLimit(params.Limit)

	records, err := s.repo.List(ctx, cursor, pagination.LimitWithBuffer(params.Limit))
	if err != nil {
		return nil, db.Classify(err)
	}

	page := &TransactionPage{Items: records}
	if len(records) > limit {
		page.Items = records[:limit]
		last := page.Items[limit-1]
		page.NextCursor = pagination.EncodeCursor(pagination.Cursor{Date: last.TransactionDate, ID: last.ID})
	}
	return page, nil
}

func (s *service) RevenueByProduct(ctx context.Context) ([]ProductRevenueRow, error) {
	rows, err := s.repo.RevenueByProduct(ctx)
	if err != nil {
		return nil, db.Classify(err)
	}
	return rows, nil
}

func (s *service) TopCustomersBySpend(ctx context.Context, limit int) ([]CustomerSpendRow, error) {
	if limit <= 0 {
		limit = DefaultTopCustomers
	}
	rows, err := s.repo.TopCustomersBySpend(ctx, limit)
	if err != nil {
		return nil, db.Classify(err)
	}
	return rows, nil
}
