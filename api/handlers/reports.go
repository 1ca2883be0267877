package handlers

import (
	"net/http"

	"github.com/Nakshatra2405/sales-ledger-backend/api/responses"
	"github.com/Nakshatra2405/sales-ledger-backend/internal/reports"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/logger"
)

// MonthlyRevenue returns revenue per YYYY-MM bucket, earliest first.
func MonthlyRevenue(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.MonthlyRevenue(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// MonthlyAverageOrderValue returns per-month average order values.
func MonthlyAverageOrderValue(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.MonthlyAverageOrderValue(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// PriceDeviations returns every line item with its deviation from the
// product's base price.
func PriceDeviations(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.PriceDeviations(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// RevenueByChannel returns revenue grouped by sales channel.
func RevenueByChannel(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.RevenueByChannel(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// RevenueByPaymentMethod returns revenue grouped by payment method.
func RevenueByPaymentMethod(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.RevenueByPaymentMethod(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}
