package seed

import (
	"context"

	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/Nakshatra2405/sales-ledger-backend/pkg/db/models"
	pkgerrors "github.com/Nakshatra2405/sales-ledger-backend/pkg/errors"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/logger"
)

// Loader inserts the seed dataset. Reference rows are matched on their
// natural keys first, so repeated runs do not duplicate them. Sales and
// transactions are only inserted into empty tables.
type Loader struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewLoader builds a Loader around the provided connection.
func NewLoader(db *gorm.DB, log *logger.Logger) (*Loader, error) {
	if db == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "seed: database is required")
	}
	if log == nil {
		log = logger.New(logger.Options{})
	}
	return &Loader{db: db, log: log}, nil
}

// Load inserts the dataset. Individual row failures are collected rather
// than aborting the run, so one bad record does not starve the rest of the
// fixture.
func (l *Loader) Load(ctx context.Context, data Dataset) error {
	var errs error

	for i := range data.Customers {
		c := data.Customers[i]
		query := l.db.WithContext(ctx).Where("name = ?", c.Name)
		if c.Email != nil {
			query = l.db.WithContext(ctx).Where("email = ?", *c.Email)
		}
		if err := query.FirstOrCreate(&c).Error; err != nil {
			errs = multierr.Append(errs, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seed customer "+c.Name))
		}
	}
	for i := range data.Products {
		p := data.Products[i]
		if err := l.db.WithContext(ctx).Where("sku = ?", p.SKU).FirstOrCreate(&p).Error; err != nil {
			errs = multierr.Append(errs, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seed product "+p.SKU))
		}
	}
	for i := range data.Channels {
		ch := data.Channels[i]
		if err := l.db.WithContext(ctx).Where("name = ?", ch.Name).FirstOrCreate(&ch).Error; err != nil {
			errs = multierr.Append(errs, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seed channel "+ch.Name))
		}
	}
	for i := range data.Methods {
		m := data.Methods[i]
		if err := l.db.WithContext(ctx).Where("name = ?", m.Name).FirstOrCreate(&m).Error; err != nil {
			errs = multierr.Append(errs, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seed payment method "+m.Name))
		}
	}

	errs = multierr.Append(errs, l.loadSales(ctx, data))
	errs = multierr.Append(errs, l.loadTransactions(ctx, data))

	if errs != nil {
		return errs
	}
	l.log.Info(ctx, "seed dataset loaded")
	return nil
}

func (l *Loader) loadSales(ctx context.Context, data Dataset) error {
	var count int64
	if err := l.db.WithContext(ctx).Model(&models.Sale{}).Count(&count).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seed sales count")
	}
	if count > 0 {
		l.log.Info(ctx, "sales already present, skipping sale seed")
		return nil
	}

	var errs error
	for _, spec := range data.Sales {
		sale, err := l.resolveSale(ctx, spec)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if err := l.db.WithContext(ctx).Create(sale).Error; err != nil {
			errs = multierr.Append(errs, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seed sale for "+spec.CustomerEmail))
		}
	}
	return errs
}

// resolveSale turns a SaleSpec's natural keys into the foreign keys the
// ledger schema requires.
func (l *Loader) resolveSale(ctx context.Context, spec SaleSpec) (*models.Sale, error) {
	var customer models.Customer
	if err := l.db.WithContext(ctx).Where("email = ?", spec.CustomerEmail).First(&customer).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seed sale customer "+spec.CustomerEmail)
	}
	var channel models.SalesChannel
	if err := l.db.WithContext(ctx).Where("name = ?", spec.Channel).First(&channel).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seed sale channel "+spec.Channel)
	}
	var method models.PaymentMethod
	if err := l.db.WithContext(ctx).Where("name = ?", spec.Method).First(&method).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seed sale payment method "+spec.Method)
	}

	sale := &models.Sale{
		CustomerID:      customer.ID,
		PaymentMethodID: method.ID,
		SalesChannelID:  channel.ID,
		SaleDate:        spec.Date,
		TotalAmount:     spec.Total,
	}
	for _, line := range spec.Lines {
		var product models.Product
		if err := l.db.WithContext(ctx).Where("sku = ?", line.SKU).First(&product).Error; err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seed sale product "+line.SKU)
		}
		sale.LineItems = append(sale.LineItems, models.SaleLineItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	return sale, nil
}

func (l *Loader) loadTransactions(ctx context.Context, data Dataset) error {
	var count int64
	if err := l.db.WithContext(ctx).Model(&models.Transaction{}).Count(&count).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seed transactions count")
	}
	if count > 0 {
		l.log.Info(ctx, "transactions already present, skipping transaction seed")
		return nil
	}

	var errs error
	for i := range data.Transactions {
		txn := data.Transactions[i]
		if err := l.db.WithContext(ctx).Create(&txn).Error; err != nil {
			errs = multierr.Append(errs, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seed transaction"))
		}
	}
	return errs
}
