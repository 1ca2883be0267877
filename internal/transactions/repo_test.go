package transactions

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Nakshatra2405/sales-ledger-backend/pkg/db/models"
)

func setupTransactionsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`CREATE TABLE IF NOT EXISTS transactions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  product_id INTEGER NOT NULL,
  customer_id INTEGER NOT NULL,
  quantity INTEGER NOT NULL CHECK (quantity > 0),
  price NUMERIC NOT NULL CHECK (price >= 0),
  transaction_date DATETIME NOT NULL
);`).Error)

	return db
}

// seedTransactions gives six customers distinct spends, with customers 1 and
// 5 tied at 250.00 to pin down the tiebreak.
func seedTransactions(t *testing.T, db *gorm.DB) {
	t.Helper()

	day := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	rows := []models.Transaction{
		{ProductID: 1, CustomerID: 1, Quantity: 2, Price: decimal.RequireFromString("100.00"), TransactionDate: day},
		{ProductID: 2, CustomerID: 1, Quantity: 1, Price: decimal.RequireFromString("50.00"), TransactionDate: day},
		{ProductID: 1, CustomerID: 2, Quantity: 3, Price: decimal.RequireFromString("100.00"), TransactionDate: day},
		{ProductID: 2, CustomerID: 3, Quantity: 1, Price: decimal.RequireFromString("500.00"), TransactionDate: day},
		{ProductID: 2, CustomerID: 4, Quantity: 2, Price: decimal.RequireFromString("50.00"), TransactionDate: day},
		{ProductID: 1, CustomerID: 5, Quantity: 1, Price: decimal.RequireFromString("250.00"), TransactionDate: day},
		{ProductID: 2, CustomerID: 6, Quantity: 1, Price: decimal.RequireFromString("10.00"), TransactionDate: day},
	}
	require.NoError(t, db.Create(&rows).Error)
}

func TestRepository_CreateAllowsUnknownReferences(t *testing.T) {
	db := setupTransactionsTestDB(t)
	repo := NewRepository(db)

	// No product or customer with these ids exists anywhere. The flat
	// schema accepts the row regardless.
	txn := &models.Transaction{
		ProductID:       424242,
		CustomerID:      424242,
		Quantity:        1,
		Price:           decimal.RequireFromString("9.99"),
		TransactionDate: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), txn))
	assert.NotZero(t, txn.ID)
}

func TestRepository_RevenueByProduct(t *testing.T) {
	db := setupTransactionsTestDB(t)
	seedTransactions(t, db)
	repo := NewRepository(db)

	rows, err := repo.RevenueByProduct(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Product 2: 50 + 500 + 100 + 10 = 660. Product 1: 200 + 300 + 250 = 750.
	assert.Equal(t, uint(1), rows[0].ProductID)
	assert.True(t, rows[0].Revenue.Equal(decimal.RequireFromString("750.00")),
		"product 1 revenue: got %s", rows[0].Revenue)
	assert.Equal(t, uint(2), rows[1].ProductID)
	assert.True(t, rows[1].Revenue.Equal(decimal.RequireFromString("660.00")),
		"product 2 revenue: got %s", rows[1].Revenue)
}

func TestRepository_TopCustomersBySpend(t *testing.T) {
	db := setupTransactionsTestDB(t)
	seedTransactions(t, db)
	repo := NewRepository(db)

	rows, err := repo.TopCustomersBySpend(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	wantIDs := []uint{3, 2, 1, 5, 4}
	wantSpend := []string{"500.00", "300.00", "250.00", "250.00", "100.00"}
	for i := range rows {
		assert.Equal(t, wantIDs[i], rows[i].CustomerID, "rank %d", i+1)
		assert.True(t, rows[i].Spend.Equal(decimal.RequireFromString(wantSpend[i])),
			"rank %d spend: got %s", i+1, rows[i].Spend)
	}
	for i := 1; i < len(rows); i++ {
		assert.True(t, rows[i].Spend.LessThanOrEqual(rows[i-1].Spend),
			"spend must not increase down the ranking")
	}
}

func TestRepository_TopCustomersBySpendIsStable(t *testing.T) {
	db := setupTransactionsTestDB(t)
	seedTransactions(t, db)
	repo := NewRepository(db)

	first, err := repo.TopCustomersBySpend(context.Background(), 5)
	require.NoError(t, err)
	second, err := repo.TopCustomersBySpend(context.Background(), 5)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].CustomerID, second[i].CustomerID)
	}
}
