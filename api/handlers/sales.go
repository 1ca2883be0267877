package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Nakshatra2405/sales-ledger-backend/api/responses"
	"github.com/Nakshatra2405/sales-ledger-backend/api/validators"
	"github.com/Nakshatra2405/sales-ledger-backend/internal/sales"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/logger"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/pagination"
)

// RecordSale records a sale with its line items. Line totals are derived
// server-side regardless of what the payload carries.
func RecordSale(svc sales.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input sales.RecordSaleInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sale, err := svc.Record(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, sale)
	}
}

// GetSale fetches one sale with its line items.
func GetSale(svc sales.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sale, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, sale)
	}
}

// ListSales returns one sale-date-ordered page. ?limit sizes the page and
// ?cursor resumes a previous listing.
func ListSales(svc sales.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", 0)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := svc.List(r.Context(), pagination.Params{
			Limit:  limit,
			Cursor: r.URL.Query().Get("cursor"),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}
