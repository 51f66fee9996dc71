package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/skylogistic00-crypto/skydev-sub002/internal/api/handlers"
	"github.com/skylogistic00-crypto/skydev-sub002/internal/api/middleware"
	"github.com/skylogistic00-crypto/skydev-sub002/internal/cache"
	"github.com/skylogistic00-crypto/skydev-sub002/internal/config"
	"github.com/skylogistic00-crypto/skydev-sub002/internal/extract"
	"github.com/skylogistic00-crypto/skydev-sub002/internal/llm"
	"github.com/skylogistic00-crypto/skydev-sub002/internal/ocr"
	"github.com/skylogistic00-crypto/skydev-sub002/internal/pipeline"
	"github.com/skylogistic00-crypto/skydev-sub002/internal/store"
)

type Router struct {
	mux   *chi.Mux
	db    *pgxpool.Pool
	redis *redis.Client
	cfg   *config.Config
	llmGW llm.Gateway
}

func NewRouter(db *pgxpool.Pool, rdb *redis.Client, cfg *config.Config) *Router {
	return &Router{
		mux:   chi.NewRouter(),
		db:    db,
		redis: rdb,
		cfg:   cfg,
		llmGW: llm.NewGateway(cfg.LLM),
	}
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))

	rl := middleware.NewRateLimiter(100, 200)
	r.Use(rl.Limit)

	// Health endpoints
	health := handlers.NewHealthHandler(rt.db, rt.redis)
	r.Get("/healthz", health.Healthz)
	r.Get("/readyz", health.Readyz)

	// Pipeline wiring
	ocrRouter := ocr.NewRouter(rt.cfg.OCR)

	var kk extract.KKExtractor
	if rt.cfg.Extract.KKServiceURL != "" {
		kk = extract.NewKKClient(rt.cfg.Extract.KKServiceURL, rt.cfg.OCR.HTTPTimeout)
	}
	extractor := extract.NewExtractor(rt.llmGW, kk, rt.cfg.LLM.DefaultModel)

	var history *store.History
	if rt.db != nil {
		history = store.NewHistory(rt.db)
	}

	var responseCache *cache.Cache
	if rt.redis != nil && rt.cfg.OCR.CacheTTL > 0 {
		responseCache = cache.NewCache(rt.redis)
	}

	pipe := pipeline.New(ocrRouter, extractor, history, responseCache, rt.cfg.OCR.CacheTTL)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		extractH := handlers.NewExtractHandler(pipe)
		r.Route("/documents", func(r chi.Router) {
			r.Post("/extract", extractH.Extract)

			if history != nil {
				historyH := handlers.NewHistoryHandler(history)
				r.Get("/extractions", historyH.List)
			}
		})
	})

	return r
}
