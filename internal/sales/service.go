package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Nakshatra2405/sales-ledger-backend/pkg/db"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/db/models"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/enums"
	pkgerrors "github.com/Nakshatra2405/sales-ledger-backend/pkg/errors"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/pagination"
)

// Service defines operations that record sales. The ledger is append-only:
// there is no update or delete lifecycle.
type Service interface {
	Record(ctx context.Context, input RecordSaleInput) (*models.Sale, error)
	Get(ctx context.Context, id uint) (*models.Sale, error)
	List(ctx context.Context, params pagination.Params) (*SalePage, error)
}

// SalePage is one page of the sales listing.
type SalePage struct {
	Items      []models.Sale `json:"items"`
	NextCursor string        `json:"next_cursor,omitempty"`
}

type service struct {
	repo   Repository
	policy enums.TotalPolicy
}

// LineItemInput is one product-quantity-price entry. LineTotal is accepted
// for wire compatibility but always recomputed before persistence.
type LineItemInput struct {
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// RecordSaleInput captures the immutable data a sale requires.
type RecordSaleInput struct {
	CustomerID      uint            `json:"customer_id"`
	PaymentMethodID uint            `json:"payment_method_id"`
	SalesChannelID  uint            `json:"sales_channel_id"`
	SaleDate        time.Time       `json:"sale_date"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	LineItems       []LineItemInput `json:"line_items"`
}

// NewService wires a sales service with the provided repository and total
// policy.
func NewService(repo Repository, policy enums.TotalPolicy) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("sales repository required")
	}
	if !policy.IsValid() {
		return nil, fmt.Errorf("invalid total policy %q", policy)
	}
	return &service{repo: repo, policy: policy}, nil
}

func (s *service) Record(ctx context.Context, input RecordSaleInput) (*models.Sale, error) {
	if input.CustomerID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id is required")
	}
	if input.PaymentMethodID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment method id is required")
	}
	if input.SalesChannelID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "sales channel id is required")
	}
	if len(input.LineItems) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "a sale requires at least one line item")
	}

	lineItems := make([]models.SaleLineItem, 0, len(input.LineItems))
	computedTotal := decimal.Zero
	for i, item := range input.LineItems {
		if item.ProductID == 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "line item product id is required").
				WithDetails(map[string]any{"index": i})
		}
		if item.Quantity <= 0 {
			return nil, pkgerrors.Wrap(pkgerrors.CodeCheckViolation, models.ErrNonPositiveQuantity, "invalid line item").
				WithDetails(map[string]any{"index": i, "quantity": item.Quantity})
		}
		if item.UnitPrice.IsNegative() {
			return nil, pkgerrors.Wrap(pkgerrors.CodeCheckViolation, models.ErrNegativeUnitPrice, "invalid line item").
				WithDetails(map[string]any{"index": i, "unit_price": item.UnitPrice.String()})
		}

		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		computedTotal = computedTotal.Add(lineTotal)
		lineItems = append(lineItems, models.SaleLineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: lineTotal,
		})
	}

	total, err := s.resolveTotal(input.TotalAmount, computedTotal)
	if err != nil {
		return nil, err
	}

	sale := &models.Sale{
		CustomerID:      input.CustomerID,
		PaymentMethodID: input.PaymentMethodID,
		SalesChannelID:  input.SalesChannelID,
		SaleDate:        input.SaleDate,
		TotalAmount:     total,
		LineItems:       lineItems,
	}

	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, db.Classify(err)
	}
	return sale, nil
}

// resolveTotal applies the configured total policy. Trust keeps the supplied
// value; recompute derives the total from the line items and rejects a
// conflicting non-zero supplied value.
func (s *service) resolveTotal(supplied, computed decimal.Decimal) (decimal.Decimal, error) {
	switch s.policy {
	case enums.TotalPolicyRecompute:
		if !supplied.IsZero() && !supplied.Equal(computed) {
			return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, "total amount does not match line items").
				WithDetails(map[string]any{
					"supplied": supplied.String(),
					"computed": computed.String(),
				})
		}
		return computed, nil
	default:
		if supplied.IsNegative() {
			return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, "total amount must not be negative")
		}
		return supplied, nil
	}
}

func (s *service) Get(ctx context.Context, id uint) (*models.Sale, error) {
	if id == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "sale id is required")
	}
	sale, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, db.Classify(err)
	}
	return sale, nil
}

// List returns one page of sales plus the cursor for the next page, empty
// when the listing is exhausted.
func (s *service) List(ctx context.Context, params pagination.Params) (*SalePage, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	limit := pagination.NormalizeLimit(params.Limit)

	records, err := s.repo.List(ctx, cursor, pagination.LimitWithBuffer(params.Limit))
	if err != nil {
		return nil, db.Classify(err)
	}

	page := &SalePage{Items: records}
	if len(records) > limit {
		page.Items = records[:limit]
		last := page.Items[limit-1]
		page.NextCursor = pagination.EncodeCursor(pagination.Cursor{Date: last.SaleDate, ID: last.ID})
	}
	return page, nil
}
