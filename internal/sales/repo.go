package sales

import (
	"context"

	"gorm.io/gorm"

	"github.com/Nakshatra2405/sales-ledger-backend/internal/repo"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/db/models"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/pagination"
)

// Repository manages persistence for sales and their line items.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, sale *models.Sale) error
	GetByID(ctx context.Context, id uint) (*models.Sale, error)
	List(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.Sale, error)
}

type repository struct {
	repo.Base
}

// NewRepository returns a sales repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{Base: repo.NewBase(tx)}
}

// Create persists the sale and its line items in one statement batch. The
// line-total hook runs for every attached line item.
func (r *repository) Create(ctx context.Context, sale *models.Sale) error {
	return r.DB(ctx).Create(sale).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*models.Sale, error) {
	var sale models.Sale
	if err := r.DB(ctx).
		Preload("LineItems").
		First(&sale, id).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}

// List pages through sales in (sale_date, id) order. The cursor marks the
// last row of the previous page; nil starts from the beginning.
func (r *repository) List(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.Sale, error) {
	query := r.DB(ctx).
		Preload("LineItems").
		Order("sale_date ASC, id ASC").
		Limit(limit)
	if cursor != nil {
		query = query.Where(
			"sale_date > ? OR (sale_date = ? AND id > ?)",
			cursor.Date, cursor.Date, cursor.ID,
		)
	}

	var records []models.Sale
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
