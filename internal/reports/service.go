package reports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Nakshatra2405/sales-ledger-backend/pkg/db"
	pkgerrors "github.com/Nakshatra2405/sales-ledger-backend/pkg/errors"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/logger"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/metrics"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/redis"
)

// Report names used for cache keys and metric labels.
const (
	ReportMonthlyRevenue    = "monthly_revenue"
	ReportMonthlyOrderValue = "monthly_order_value"
	ReportPriceDeviations   = "price_deviations"
	ReportChannelRevenue    = "channel_revenue"
	ReportPaymentRevenue    = "payment_method_revenue"
)

// MonthlyAverageOrderValueRow extends the raw aggregate with the derived
// average order value.
type MonthlyAverageOrderValueRow struct {
	Month             string          `json:"month"`
	SaleCount         int64           `json:"sale_count"`
	Revenue           decimal.Decimal `json:"revenue"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

// Cache is the subset of the redis client the report service needs. A nil
// cache disables read-through caching entirely.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	ReportKey(parts ...string) string
}

// Service exposes the ledger's read-only reports.
type Service interface {
	MonthlyRevenue(ctx context.Context) ([]MonthlyRevenueRow, error)
	MonthlyAverageOrderValue(ctx context.Context) ([]MonthlyAverageOrderValueRow, error)
	PriceDeviations(ctx context.Context) ([]PriceDeviationRow, error)
	RevenueByChannel(ctx context.Context) ([]ChannelRevenueRow, error)
	RevenueByPaymentMethod(ctx context.Context) ([]PaymentMethodRevenueRow, error)
}

type service struct {
	repo     Repository
	cache    Cache
	cacheTTL time.Duration
	metrics  *metrics.ReportMetrics
	log      *logger.Logger
}

// NewService builds the report service. cache and reportMetrics may be nil.
func NewService(repo Repository, cache Cache, cacheTTL time.Duration, reportMetrics *metrics.ReportMetrics, log *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "reports: repository is required")
	}
	if log == nil {
		log = logger.New(logger.Options{})
	}
	return &service{repo: repo, cache: cache, cacheTTL: cacheTTL, metrics: reportMetrics, log: log}, nil
}

func (s *service) MonthlyRevenue(ctx context.Context) ([]MonthlyRevenueRow, error) {
	return runReport(ctx, s, ReportMonthlyRevenue, s.repo.MonthlyRevenue)
}

func (s *service) MonthlyAverageOrderValue(ctx context.Context) ([]MonthlyAverageOrderValueRow, error) {
	return runReport(ctx, s, ReportMonthlyOrderValue, func(ctx context.Context) ([]MonthlyAverageOrderValueRow, error) {
		raw, err := s.repo.MonthlyOrderValues(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]MonthlyAverageOrderValueRow, 0, len(raw))
		for _, r := range raw {
			row := MonthlyAverageOrderValueRow{
				Month:     r.Month,
				SaleCount: r.SaleCount,
				Revenue:   r.Revenue,
			}
			if r.SaleCount > 0 {
				row.AverageOrderValue = r.Revenue.
					Div(decimal.NewFromInt(r.SaleCount)).
					Round(2)
			}
			rows = append(rows, row)
		}
		return rows, nil
	})
}

func (s *service) PriceDeviations(ctx context.Context) ([]PriceDeviationRow, error) {
	return runReport(ctx, s, ReportPriceDeviations, s.repo.PriceDeviations)
}

func (s *service) RevenueByChannel(ctx context.Context) ([]ChannelRevenueRow, error) {
	return runReport(ctx, s, ReportChannelRevenue, s.repo.RevenueByChannel)
}

func (s *service) RevenueByPaymentMethod(ctx context.Context) ([]PaymentMethodRevenueRow, error) {
	return runReport(ctx, s, ReportPaymentRevenue, s.repo.RevenueByPaymentMethod)
}

// runReport wraps a report query with caching and instrumentation. A cache
// miss or a broken cached payload falls through to the database; cache write
// failures are logged and never fail the report.
func runReport[T any](ctx context.Context, s *service, name string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveDuration(name, time.Since(start))
	}()

	if s.cache != nil {
		key := s.cache.ReportKey(name)
		if cached, err := s.cache.Get(ctx, key); err == nil {
			var rows []T
			if err := json.Unmarshal([]byte(cached), &rows); err == nil {
				s.metrics.IncCacheHit(name)
				s.metrics.IncSuccess(name)
				return rows, nil
			}
		} else if err != redis.Nil {
			reportCtx := s.log.WithReport(ctx, name)
			s.log.Warn(s.log.WithField(reportCtx, "error", err.Error()), "report cache read failed")
		}
	}

	rows, err := fetch(ctx)
	if err != nil {
		s.metrics.IncFailure(name)
		return nil, db.Classify(err)
	}
	s.metrics.IncSuccess(name)

	if s.cache != nil {
		payload, err := json.Marshal(rows)
		if err == nil {
			if err := s.cache.Set(ctx, s.cache.ReportKey(name), payload, s.cacheTTL); err != nil {
				reportCtx := s.log.WithReport(ctx, name)
				s.log.Warn(s.log.WithField(reportCtx, "error", err.Error()), "report cache write failed")
			}
		}
	}

	return rows, nil
}
