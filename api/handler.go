package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Nakshatra2405/sales-ledger-backend/api/handlers"
	"github.com/Nakshatra2405/sales-ledger-backend/api/middleware"
	"github.com/Nakshatra2405/sales-ledger-backend/internal/catalog"
	"github.com/Nakshatra2405/sales-ledger-backend/internal/customers"
	"github.com/Nakshatra2405/sales-ledger-backend/internal/reports"
	"github.com/Nakshatra2405/sales-ledger-backend/internal/sales"
	"github.com/Nakshatra2405/sales-ledger-backend/internal/transactions"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/config"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/db"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/logger"
)

// Deps bundles everything the HTTP surface needs. Registry may be nil when
// metrics exposure is not wanted.
type Deps struct {
	Customers    customers.Service
	Catalog      catalog.Service
	Sales        sales.Service
	Reports      reports.Service
	Transactions transactions.Service
	DB           *db.Client
	Registry     *prometheus.Registry
}

// NewHandler returns the HTTP handler that cmd/api wires into its server.
func NewHandler(cfg *config.Config, logg *logger.Logger, deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID(logg))
	r.Use(middleware.Logging(logg))
	r.Use(middleware.Recoverer(logg))

	r.Get("/healthz", handlers.Healthz(cfg, deps.DB, logg))
	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/v1", func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Post("/", handlers.CreateCustomer(deps.Customers, logg))
			r.Get("/", handlers.ListCustomers(deps.Customers, logg))
			r.Get("/{id}", handlers.GetCustomer(deps.Customers, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", handlers.CreateProduct(deps.Catalog, logg))
			r.Get("/", handlers.ListProducts(deps.Catalog, logg))
		})
		r.Route("/channels", func(r chi.Router) {
			r.Post("/", handlers.CreateChannel(deps.Catalog, logg))
			r.Get("/", handlers.ListChannels(deps.Catalog, logg))
		})
		r.Route("/payment-methods", func(r chi.Router) {
			r.Post("/", handlers.CreatePaymentMethod(deps.Catalog, logg))
			r.Get("/", handlers.ListPaymentMethods(deps.Catalog, logg))
		})

		r.Route("/sales", func(r chi.Router) {
			r.Post("/", handlers.RecordSale(deps.Sales, logg))
			r.Get("/", handlers.ListSales(deps.Sales, logg))
			r.Get("/{id}", handlers.GetSale(deps.Sales, logg))
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/monthly-revenue", handlers.MonthlyRevenue(deps.Reports, logg))
			r.Get("/monthly-aov", handlers.MonthlyAverageOrderValue(deps.Reports, logg))
			r.Get("/price-deviations", handlers.PriceDeviations(deps.Reports, logg))
			r.Get("/revenue-by-channel", handlers.RevenueByChannel(deps.Reports, logg))
			r.Get("/revenue-by-payment-method", handlers.RevenueByPaymentMethod(deps.Reports, logg))
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", handlers.RecordTransaction(deps.Transactions, logg))
			r.Get("/", handlers.ListTransactions(deps.Transactions, logg))
			r.Get("/revenue-by-product", handlers.TransactionRevenueByProduct(deps.Transactions, logg))
			r.Get("/top-customers", handlers.TopCustomersBySpend(deps.Transactions, logg))
		})
	})

	return r
}
