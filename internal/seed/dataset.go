package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Nakshatra2405/sales-ledger-backend/pkg/db/models"
)

// SaleSpec describes one seed sale with its line items, keyed by the natural
// identifiers of the referenced rows rather than database ids.
type SaleSpec struct {
	CustomerEmail string
	Channel       string
	Method        string
	Date          time.Time
	Total         decimal.Decimal
	Lines         []LineSpec
}

// LineSpec is one line item of a seed sale.
type LineSpec struct {
	SKU       string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Dataset is the full fixture loaded by the seed command.
type Dataset struct {
	Customers    []models.Customer
	Products     []models.Product
	Channels     []models.SalesChannel
	Methods      []models.PaymentMethod
	Sales        []SaleSpec
	Transactions []models.Transaction
}

func strptr(s string) *string { return &s }

// Default returns the demo dataset: two months of ledger activity across two
// channels, plus a batch of flat transactions spanning six customers.
func Default() Dataset {
	march10 := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	march20 := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	april5 := time.Date(2025, time.April, 5, 0, 0, 0, 0, time.UTC)

	return Dataset{
		Customers: []models.Customer{
			{Name: "Asha Rao", Email: strptr("asha@example.com"), Phone: strptr("555-0101")},
			{Name: "Bilal Khan", Email: strptr("bilal@example.com"), Phone: strptr("555-0102")},
			{Name: "Carmen Diaz", Email: strptr("carmen@example.com")},
			{Name: "Dev Patel", Email: strptr("dev@example.com")},
			{Name: "Elena Sokolova", Email: strptr("elena@example.com")},
			{Name: "Farid Osman", Email: strptr("farid@example.com")},
		},
		Products: []models.Product{
			{Name: "Laptop", SKU: "SKU-LAP-01", Category: "Electronics", BasePrice: decimal.RequireFromString("800.00"), IsActive: true},
			{Name: "Monitor", SKU: "SKU-MON-01", Category: "Electronics", BasePrice: decimal.RequireFromString("850.00"), IsActive: true},
			{Name: "Headphones", SKU: "SKU-HDP-01", Category: "Audio", BasePrice: decimal.RequireFromString("150.00"), IsActive: true},
			{Name: "Office Chair", SKU: "SKU-CHR-01", Category: "Furniture", BasePrice: decimal.RequireFromString("250.00"), IsActive: true},
		},
		Channels: []models.SalesChannel{
			{Name: "Online Store", IsActive: true},
			{Name: "Retail Outlet", IsActive: true},
			{Name: "Mobile App", IsActive: true},
			{Name: "Wholesale", IsActive: false},
			{Name: "Partner", IsActive: false},
		},
		Methods: []models.PaymentMethod{
			{Name: "Credit Card", IsActive: true},
			{Name: "UPI", IsActive: true},
		},
		Sales: []SaleSpec{
			{
				CustomerEmail: "asha@example.com",
				Channel:       "Online Store",
				Method:        "Credit Card",
				Date:          march10,
				Total:         decimal.RequireFromString("3300.00"),
				Lines: []LineSpec{
					{SKU: "SKU-LAP-01", Quantity: 2, UnitPrice: decimal.RequireFromString("800.00")},
					{SKU: "SKU-MON-01", Quantity: 2, UnitPrice: decimal.RequireFromString("850.00")},
				},
			},
			{
				CustomerEmail: "bilal@example.com",
				Channel:       "Retail Outlet",
				Method:        "UPI",
				Date:          march20,
				Total:         decimal.RequireFromString("135.00"),
				Lines: []LineSpec{
					{SKU: "SKU-HDP-01", Quantity: 1, UnitPrice: decimal.RequireFromString("135.00")},
				},
			},
			{
				CustomerEmail: "bilal@example.com",
				Channel:       "Online Store",
				Method:        "Credit Card",
				Date:          april5,
				Total:         decimal.RequireFromString("500.00"),
				Lines: []LineSpec{
					{SKU: "SKU-CHR-01", Quantity: 2, UnitPrice: decimal.RequireFromString("250.00")},
				},
			},
		},
		Transactions: []models.Transaction{
			{ProductID: 1, CustomerID: 1, Quantity: 2, Price: decimal.RequireFromString("100.00"), TransactionDate: march10},
			{ProductID: 2, CustomerID: 1, Quantity: 1, Price: decimal.RequireFromString("50.00"), TransactionDate: march10},
			{ProductID: 1, CustomerID: 2, Quantity: 3, Price: decimal.RequireFromString("100.00"), TransactionDate: march10},
			{ProductID: 2, CustomerID: 3, Quantity: 1, Price: decimal.RequireFromString("500.00"), TransactionDate: march20},
			{ProductID: 2, CustomerID: 4, Quantity: 2, Price: decimal.RequireFromString("50.00"), TransactionDate: march20},
			{ProductID: 1, CustomerID: 5, Quantity: 1, Price: decimal.RequireFromString("250.00"), TransactionDate: april5},
			{ProductID: 2, CustomerID: 6, Quantity: 1, Price: decimal.RequireFromString("10.00"), TransactionDate: april5},
		},
	}
}
