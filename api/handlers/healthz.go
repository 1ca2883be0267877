package handlers

import (
	"net/http"

	"github.com/Nakshatra2405/sales-ledger-backend/api/responses"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/config"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/db"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/logger"
)

// Healthz reports liveness plus a database round trip.
func Healthz(cfg *config.Config, client *db.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithField(r.Context(), "env", cfg.App.Env)

		status := map[string]string{"status": "ok", "database": "ok"}
		if client != nil {
			if err := client.Ping(r.Context()); err != nil {
				logg.Error(ctx, "health.database", err)
				status["status"] = "degraded"
				status["database"] = "unreachable"
			}
		}

		logg.Info(ctx, "health.check")
		responses.WriteSuccess(w, status)
	}
}
