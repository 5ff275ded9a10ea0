package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rzonedevops/cogllama-cloud-services/internal/api/handlers"
	mw "github.com/rzonedevops/cogllama-cloud-services/internal/api/middleware"
	"github.com/rzonedevops/cogllama-cloud-services/internal/buildconfig"
	"github.com/rzonedevops/cogllama-cloud-services/internal/config"
	"github.com/rzonedevops/cogllama-cloud-services/internal/domain"
	"github.com/rzonedevops/cogllama-cloud-services/internal/service"
	"github.com/rzonedevops/cogllama-cloud-services/internal/store"
	"go.uber.org/zap"
)

// App holds the router plus the request counters for the metrics endpoint.
type App struct {
	Router   *chi.Mux
	Registry *service.AgentRegistry

	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// NewApp wires the agent registry, handlers, and middleware. The database
// pool may be nil, in which case snapshot persistence degrades to 503s.
func NewApp(db *pgxpool.Pool, logger *zap.Logger) *App {
	var snapshots domain.SnapshotStore
	if db != nil {
		snapshots = store.NewSnapshotStore(db)
	}

	registry := service.NewAgentRegistry()

	agentHandler := handlers.NewAgentHandler(registry, snapshots, logger,
		config.InferenceThreshold(), config.ActionThreshold())
	cognitiveHandler := handlers.NewCognitiveHandler(registry)
	atomHandler := handlers.NewAtomHandler(registry)
	snapshotHandler := handlers.NewSnapshotHandler(registry, snapshots)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		Registry:  registry,
		startTime: time.Now(),
	}

	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	r.Get("/health", healthHandler(db))
	r.Get("/metrics", app.metricsHandler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/agents", agentHandler.Create)
		r.Route("/agents/{id}", func(r chi.Router) {
			r.Get("/", agentHandler.GetSummary)

			r.Post("/goals", agentHandler.AddGoal)
			r.Post("/beliefs", agentHandler.AddBelief)
			r.Post("/actions", agentHandler.AddAction)

			r.Post("/perceive", cognitiveHandler.Perceive)
			r.Post("/reason", cognitiveHandler.Reason)
			r.Post("/plan", cognitiveHandler.PlanActions)
			r.Post("/cycle", cognitiveHandler.Cycle)

			r.Get("/atoms", atomHandler.Find)
			r.Post("/links", atomHandler.Link)
			r.Route("/atoms/{atomID}", func(r chi.Router) {
				r.Get("/", atomHandler.GetByID)
				r.Get("/related", atomHandler.GetRelated)
				r.Put("/metadata", atomHandler.UpdateMetadata)
			})

			r.Get("/export", snapshotHandler.Export)
			r.Post("/sync", snapshotHandler.Sync)
		})

		r.Get("/snapshots/{id}", snapshotHandler.Get)
	})

	return app
}

func healthHandler(db *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "ok", "version": buildconfig.Version()}

		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(status)
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"agents":         app.Registry.Len(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure stores satisfy interfaces at compile time.
var _ domain.SnapshotStore = (*store.SnapshotStore)(nil)
