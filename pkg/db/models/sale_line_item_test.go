package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSaleLineItem_BeforeSaveDerivesLineTotal(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		unitPrice string
		supplied  string
		want      string
	}{
		{name: "overwrites caller value", quantity: 2, unitPrice: "800.00", supplied: "1.00", want: "1600.00"},
		{name: "fills missing value", quantity: 3, unitPrice: "19.99", supplied: "0", want: "59.97"},
		{name: "zero unit price", quantity: 5, unitPrice: "0", supplied: "123.45", want: "0"},
		{name: "single unit", quantity: 1, unitPrice: "3300.00", supplied: "0", want: "3300.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := SaleLineItem{
				SaleID:    1,
				ProductID: 1,
				Quantity:  tt.quantity,
				UnitPrice: decimal.RequireFromString(tt.unitPrice),
				LineTotal: decimal.RequireFromString(tt.supplied),
			}

			if err := item.BeforeSave(nil); err != nil {
				t.Fatalf("BeforeSave returned error: %v", err)
			}

			want := decimal.RequireFromString(tt.want)
			if !item.LineTotal.Equal(want) {
				t.Fatalf("expected line total %s, got %s", want, item.LineTotal)
			}
		})
	}
}

func TestSaleLineItem_BeforeSaveRejectsInvalidInput(t *testing.T) {
	zeroQty := SaleLineItem{Quantity: 0, UnitPrice: decimal.NewFromInt(10)}
	if err := zeroQty.BeforeSave(nil); !errors.Is(err, ErrNonPositiveQuantity) {
		t.Fatalf("expected non-positive quantity error, got %v", err)
	}

	negativeQty := SaleLineItem{Quantity: -2, UnitPrice: decimal.NewFromInt(10)}
	if err := negativeQty.BeforeSave(nil); !errors.Is(err, ErrNonPositiveQuantity) {
		t.Fatalf("expected non-positive quantity error, got %v", err)
	}

	negativePrice := SaleLineItem{Quantity: 1, UnitPrice: decimal.RequireFromString("-0.01")}
	if err := negativePrice.BeforeSave(nil); !errors.Is(err, ErrNegativeUnitPrice) {
		t.Fatalf("expected negative unit price error, got %v", err)
	}
}
