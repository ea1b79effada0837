// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wallet-ledger/internal/api/handler"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(walletHandler *handler.WalletHandler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/asset-types", walletHandler.ListAssetTypes)

		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", walletHandler.ListAccounts)
			r.Post("/", walletHandler.CreateAccount)
			r.Get("/{accountID}/balance", walletHandler.GetBalance)
			r.Get("/{accountID}/ledger", walletHandler.GetLedger)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Post("/topup", walletHandler.Topup)
			r.Post("/bonus", walletHandler.Bonus)
			r.Post("/spend", walletHandler.Spend)
		})
	})

	return r
}
