package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/Nakshatra2405/sales-ledger-backend/internal/repo"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/db/models"
)

// Repository manages persistence for the sellable catalog: products plus the
// channel and payment method lookup tables.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id uint) (*models.Product, error)
	ListProducts(ctx context.Context, activeOnly bool) ([]models.Product, error)
	CreateChannel(ctx context.Context, channel *models.SalesChannel) error
	ListChannels(ctx context.Context) ([]models.SalesChannel, error)
	CreatePaymentMethod(ctx context.Context, method *models.PaymentMethod) error
	ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
}

type repository struct {
	repo.Base
}

// NewRepository returns a catalog repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{Base: repo.NewBase(tx)}
}

func (r *repository) CreateProduct(ctx context.Context, product *models.Product) error {
	return r.DB(ctx).Create(product).Error
}

func (r *repository) GetProductByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *repository) ListProducts(ctx context.Context, activeOnly bool) ([]models.Product, error) {
	query := r.DB(ctx).Order("id ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var records []models.Product
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) CreateChannel(ctx context.Context, channel *models.SalesChannel) error {
	return r.DB(ctx).Create(channel).Error
}

func (r *repository) ListChannels(ctx context.Context) ([]models.SalesChannel, error) {
	var records []models.SalesChannel
	if err := r.DB(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) CreatePaymentMethod(ctx context.Context, method *models.PaymentMethod) error {
	return r.DB(ctx).Create(method).Error
}

func (r *repository) ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	var records []models.PaymentMethod
	if err := r.DB(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
