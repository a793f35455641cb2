package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tol-insights/potentialmap/internal/config"
	"github.com/tol-insights/potentialmap/internal/dataset"
	"github.com/tol-insights/potentialmap/internal/scoring"
)

func NewRouter(ds *dataset.Dataset, scorer *scoring.Scorer, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(120))

	rows := NewRowsHandler(ds)
	options := NewOptionsHandler(ds)
	scores := NewScoresHandler(ds, scorer)
	chart := NewChartHandler(ds)
	meta := NewMetaHandler(ds, cfg)

	r.Get("/", Dashboard())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/meta", meta.Meta)

		r.Get("/options/provinces", options.Provinces)
		r.Get("/options/districts", options.Districts)
		r.Get("/options/subdistricts", options.Subdistricts)
		r.Get("/options/happy-blocks", options.HappyBlocks)

		r.Get("/rows", rows.List)
		r.Get("/rows/{id}/score", scores.Explain)

		r.Get("/chart", chart.Distribution)
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
