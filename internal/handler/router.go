// Package handler exposes the document generation pipeline over HTTP.
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/advocflow/docgen/internal/config"
	"github.com/advocflow/docgen/internal/history"
	"github.com/advocflow/docgen/internal/observability"
	"github.com/advocflow/docgen/internal/pdfapi"
	"github.com/advocflow/docgen/internal/webhook"
	"github.com/advocflow/docgen/pkg/assembler"
	"github.com/advocflow/docgen/pkg/render"
)

// Deps bundles everything the routes need.
type Deps struct {
	Assembler *assembler.Assembler
	Renderers *render.Registry
	Webhook   *webhook.Client
	PDF       *pdfapi.Client
	History   *history.Store
	Config    *config.Config
	Metrics   *observability.Metrics
	Logger    *zap.Logger
}

// NewRouter creates the HTTP router with all routes and middleware.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(deps.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	r.Get("/healthz", healthzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(deps.Metrics.Registry, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/documents/generate", generateHandler(deps))
		r.Post("/documents/submit", submitHandler(deps))
		r.Post("/documents/pdf", pdfHandler(deps))
		r.Get("/history", historyHandler(deps))
	})

	return r
}

func healthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
