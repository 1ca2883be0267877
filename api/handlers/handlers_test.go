package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Nakshatra2405/sales-ledger-backend/internal/customers"
	"github.com/Nakshatra2405/sales-ledger-backend/internal/reports"
	"github.com/Nakshatra2405/sales-ledger-backend/internal/transactions"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/db/models"
	pkgerrors "github.com/Nakshatra2405/sales-ledger-backend/pkg/errors"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/logger"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/pagination"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test"})
}

type stubCustomerService struct {
	onboarded *models.Customer
	err       error
}

func (s *stubCustomerService) Onboard(ctx context.Context, input customers.OnboardCustomerInput) (*models.Customer, error) {
	return s.onboarded, s.err
}

func (s *stubCustomerService) Get(ctx context.Context, id uint) (*models.Customer, error) {
	return s.onboarded, s.err
}

func (s *stubCustomerService) List(ctx context.Context) ([]models.Customer, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []models.Customer{*s.onboarded}, nil
}

func TestCreateCustomer(t *testing.T) {
	svc := &stubCustomerService{onboarded: &models.Customer{ID: 1, Name: "Asha Rao"}}
	handler := CreateCustomer(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/v1/customers", strings.NewReader(`{"name":"Asha Rao"}`))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateCustomer_MalformedBody(t *testing.T) {
	handler := CreateCustomer(&stubCustomerService{}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/v1/customers", strings.NewReader(`{`))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if envelope.Error.Code != string(pkgerrors.CodeValidation) {
		t.Fatalf("expected validation code, got %s", envelope.Error.Code)
	}
}

func TestCreateCustomer_DuplicateEmail(t *testing.T) {
	svc := &stubCustomerService{err: pkgerrors.New(pkgerrors.CodeUniqueViolation, "email already registered")}
	handler := CreateCustomer(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/v1/customers", strings.NewReader(`{"name":"Asha Rao","email":"asha@example.com"}`))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

type stubReportService struct {
	monthly []reports.MonthlyRevenueRow
}

func (s *stubReportService) MonthlyRevenue(ctx context.Context) ([]reports.MonthlyRevenueRow, error) {
	return s.monthly, nil
}

func (s *stubReportService) MonthlyAverageOrderValue(ctx context.Context) ([]reports.MonthlyAverageOrderValueRow, error) {
	return nil, nil
}

func (s *stubReportService) PriceDeviations(ctx context.Context) ([]reports.PriceDeviationRow, error) {
	return nil, nil
}

func (s *stubReportService) RevenueByChannel(ctx context.Context) ([]reports.ChannelRevenueRow, error) {
	return nil, nil
}

func (s *stubReportService) RevenueByPaymentMethod(ctx context.Context) ([]reports.PaymentMethodRevenueRow, error) {
	return nil, nil
}

func TestMonthlyRevenue(t *testing.T) {
	svc := &stubReportService{monthly: []reports.MonthlyRevenueRow{
		{Month: "2025-03", Revenue: decimal.RequireFromString("3435.00")},
	}}
	handler := MonthlyRevenue(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/monthly-revenue", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "2025-03") {
		t.Fatalf("expected month bucket in body: %s", rec.Body.String())
	}
}

type stubTransactionService struct {
	lastLimit int
}

func (s *stubTransactionService) Record(ctx context.Context, input transactions.RecordTransactionInput) (*models.Transaction, error) {
	return &models.Transaction{ID: 1, ProductID: input.ProductID, CustomerID: input.CustomerID}, nil
}

func (s *stubTransactionService) List(ctx context.Context, params pagination.Params) (*transactions.TransactionPage, error) {
	return &transactions.TransactionPage{}, nil
}

func (s *stubTransactionService) RevenueByProduct(ctx context.Context) ([]transactions.ProductRevenueRow, error) {
	return nil, nil
}

func (s *stubTransactionService) TopCustomersBySpend(ctx context.Context, limit int) ([]transactions.CustomerSpendRow, error) {
	s.lastLimit = limit
	return nil, nil
}

func TestTopCustomersBySpend_LimitQuery(t *testing.T) {
	svc := &stubTransactionService{}
	handler := TopCustomersBySpend(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/transactions/top-customers?limit=3", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastLimit != 3 {
		t.Fatalf("expected limit 3, got %d", svc.lastLimit)
	}
}

func TestTopCustomersBySpend_BadLimit(t *testing.T) {
	handler := TopCustomersBySpend(&stubTransactionService{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/transactions/top-customers?limit=abc", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRecordTransaction(t *testing.T) {
	handler := RecordTransaction(&stubTransactionService{}, testLogger())

	body := `{"product_id":1,"customer_id":2,"quantity":1,"price":"9.99"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/transactions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}
