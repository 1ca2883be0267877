// Package repo holds the shared persistence plumbing embedded by the
// ledger's domain repositories.
package repo

import (
	"context"

	"gorm.io/gorm"
)

// Base wraps the GORM handle every domain repository queries through. It is
// embedded by the customers, catalog, sales, transactions and reports
// repositories so context propagation lives in one place.
type Base struct {
	db *gorm.DB
}

// NewBase binds a Base to the given connection. The connection may also be a
// transaction handle, which is how WithTx variants rebind a repository.
func NewBase(db *gorm.DB) Base {
	return Base{db: db}
}

// DB returns the connection scoped to ctx. A nil ctx yields the raw handle.
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}
