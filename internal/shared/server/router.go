package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tone-backend/internal/analysis"
	"tone-backend/internal/services/health"
	"tone-backend/internal/shared/config"
	"tone-backend/internal/shared/metrics"
	"tone-backend/internal/shared/server/middleware"
	"tone-backend/internal/shared/server/respond"
	"tone-backend/internal/suggestions"
)

const (
	rateGroupAnalyze = "ANALYZE"
	rateGroupRead    = "READ"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config             config.Config
	Health             *health.Service
	AnalysisHandler    *analysis.Handler
	SuggestionsHandler *suggestions.Handler
	Limiter            *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	cfg := deps.Config
	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	if cfg.RateLimitRPS > 0 {
		api.Use(middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				rateGroupAnalyze: {Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst},
				rateGroupRead:    {Rate: cfg.RateLimitRPS * 10, Burst: cfg.RateLimitBurst * 10},
			},
			DefaultGroup: rateGroupRead,
			GroupFor:     rateGroupFor,
			Limiter:      deps.Limiter,
		}))
	}

	api.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			respond.JSON(c, http.StatusOK, gin.H{"ok": true})
			return
		}
		status := deps.Health.Status(c.Request.Context())
		code := http.StatusOK
		if !status.OK {
			code = http.StatusServiceUnavailable
		}
		respond.JSON(c, code, status)
	})
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(api)
	}
	if deps.SuggestionsHandler != nil {
		deps.SuggestionsHandler.RegisterRoutes(api)
	}

	return r
}

func rateGroupFor(c *gin.Context) string {
	if c.Request.Method != http.MethodPost {
		return rateGroupRead
	}
	path := c.Request.URL.Path
	switch {
	case strings.HasSuffix(path, "/analyze"), strings.HasSuffix(path, "/suggestions"):
		return rateGroupAnalyze
	default:
		return rateGroupRead
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
