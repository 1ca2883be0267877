package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Nakshatra2405/sales-ledger-backend/pkg/db/models"
	pkgerrors "github.com/Nakshatra2405/sales-ledger-backend/pkg/errors"
)

type fakeRepository struct {
	createProductFn func(ctx context.Context, product *models.Product) error
	createChannelFn func(ctx context.Context, channel *models.SalesChannel) error
	createMethodFn  func(ctx context.Context, method *models.PaymentMethod) error
}

func (f *fakeRepository) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakeRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	if f.createProductFn != nil {
		return f.createProductFn(ctx, product)
	}
	return nil
}

func (f *fakeRepository) GetProductByID(ctx context.Context, id uint) (*models.Product, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) ListProducts(ctx context.Context, activeOnly bool) ([]models.Product, error) {
	return nil, nil
}

func (f *fakeRepository) CreateChannel(ctx context.Context, channel *models.SalesChannel) error {
	if f.createChannelFn != nil {
		return f.createChannelFn(ctx, channel)
	}
	return nil
}

func (f *fakeRepository) ListChannels(ctx context.Context) ([]models.SalesChannel, error) {
	return nil, nil
}

func (f *fakeRepository) CreatePaymentMethod(ctx context.Context, method *models.PaymentMethod) error {
	if f.createMethodFn != nil {
		return f.createMethodFn(ctx, method)
	}
	return nil
}

func (f *fakeRepository) ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	return nil, nil
}

func TestService_CreateProduct(t *testing.T) {
	repo := &fakeRepository{}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("unexpected service error: %v", err)
	}

	var created *models.Product
	repo.createProductFn = func(ctx context.Context, product *models.Product) error {
		created = product
		return nil
	}

	got, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name:      "Laptop",
		SKU:       "SKU-LAP-01",
		Category:  "Electronics",
		BasePrice: decimal.RequireFromString("800.00"),
	})
	if err != nil {
		t.Fatalf("CreateProduct error: %v", err)
	}
	if created == nil {
		t.Fatal("expected product to be created")
	}
	if !created.IsActive {
		t.Fatal("products should default to active")
	}
	if got != created {
		t.Fatal("service should return created product")
	}
}

func TestService_CreateProductRejectsNonPositiveBasePrice(t *testing.T) {
	repo := &fakeRepository{}
	svc, _ := NewService(repo)

	for _, price := range []string{"0", "-1.00"} {
		_, err := svc.CreateProduct(context.Background(), CreateProductInput{
			Name:      "Bad",
			SKU:       "SKU-BAD",
			BasePrice: decimal.RequireFromString(price),
		})
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeCheckViolation {
			t.Fatalf("price %s: expected check violation, got %v", price, err)
		}
	}
}

func TestService_CreateProductClassifiesDuplicateSKU(t *testing.T) {
	repo := &fakeRepository{
		createProductFn: func(ctx context.Context, product *models.Product) error {
			return errors.New("UNIQUE constraint failed: products.sku")
		},
	}
	svc, _ := NewService(repo)

	_, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name:      "Laptop",
		SKU:       "SKU-LAP-01",
		BasePrice: decimal.NewFromInt(800),
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUniqueViolation {
		t.Fatalf("expected unique violation, got %v", err)
	}
}

func TestService_CreateChannelAndMethodValidation(t *testing.T) {
	repo := &fakeRepository{}
	svc, _ := NewService(repo)

	if _, err := svc.CreateChannel(context.Background(), "  "); err == nil {
		t.Fatal("expected blank channel name to be rejected")
	}
	if _, err := svc.CreatePaymentMethod(context.Background(), ""); err == nil {
		t.Fatal("expected blank method name to be rejected")
	}

	channel, err := svc.CreateChannel(context.Background(), " Online Store ")
	if err != nil {
		t.Fatalf("CreateChannel error: %v", err)
	}
	if channel.Name != "Online Store" {
		t.Fatalf("expected trimmed channel name, got %q", channel.Name)
	}
}
