package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Nakshatra2405/sales-ledger-backend/pkg/db"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/db/models"
	pkgerrors "github.com/Nakshatra2405/sales-ledger-backend/pkg/errors"
)

// Service defines catalog operations: products, sales channels, and payment
// methods. All three are append-only.
type Service interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*models.Product, error)
	ListProducts(ctx context.Context, activeOnly bool) ([]models.Product, error)
	CreateChannel(ctx context.Context, name string) (*models.SalesChannel, error)
	ListChannels(ctx context.Context) ([]models.SalesChannel, error)
	CreatePaymentMethod(ctx context.Context, name string) (*models.PaymentMethod, error)
	ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
}

type service struct {
	repo Repository
}

// CreateProductInput captures the data a new catalog item requires.
type CreateProductInput struct {
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Category  string          `json:"category"`
	BasePrice decimal.Decimal `json:"base_price"`
	IsActive  *bool           `json:"is_active,omitempty"`
}

// NewService wires a catalog service with the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	sku := strings.TrimSpace(input.SKU)
	if sku == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product sku is required")
	}
	if !input.BasePrice.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeCheckViolation, "product base price must be positive").
			WithDetails(map[string]any{"base_price": input.BasePrice.String()})
	}

	product := &models.Product{
		Name:      name,
		SKU:       sku,
		Category:  strings.TrimSpace(input.Category),
		BasePrice: input.BasePrice,
		IsActive:  true,
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, db.Classify(err)
	}
	return product, nil
}

func (s *service) ListProducts(ctx context.Context, activeOnly bool) ([]models.Product, error) {
	records, err := s.repo.ListProducts(ctx, activeOnly)
	if err != nil {
		return nil, db.Classify(err)
	}
	return records, nil
}

func (s *service) CreateChannel(ctx context.Context, name string) (*models.SalesChannel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "channel name is required")
	}

	channel := &models.SalesChannel{Name: name, IsActive: true}
	if err := s.repo.CreateChannel(ctx, channel); err != nil {
		return nil, db.Classify(err)
	}
	return channel, nil
}

func (s *service) ListChannels(ctx context.Context) ([]models.SalesChannel, error) {
	records, err := s.repo.ListChannels(ctx)
	if err != nil {
		return nil, db.Classify(err)
	}
	return records, nil
}

func (s *service) CreatePaymentMethod(ctx context.Context, name string) (*models.PaymentMethod, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment method name is required")
	}

	method := &models.PaymentMethod{Name: name, IsActive: true}
	if err := s.repo.CreatePaymentMethod(ctx, method); err != nil {
		return nil, db.Classify(err)
	}
	return method, nil
}

func (s *service) ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	records, err := s.repo.ListPaymentMethods(ctx)
	if err != nil {
		return nil, db.Classify(err)
	}
	return records, nil
}
