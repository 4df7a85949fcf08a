package httptransport

import (
	"log/slog"
	"net/http"
	"net/netip"
	"time"

	"github.com/go-chi/chi/v5"

	"writeyourmep/internal/mep/handler"
	"writeyourmep/internal/platform/health"
	request "writeyourmep/pkg/platform/middleware/request"
	"writeyourmep/pkg/platform/validation"
)

const defaultRequestTimeout = 30 * time.Second

// RouterConfig carries the transport-level settings and shared handlers.
type RouterConfig struct {
	Logger         *slog.Logger
	Metrics        *request.Metrics
	MetricsHandler http.Handler
	TrustedProxies []netip.Prefix
	RequestTimeout time.Duration
}

// NewRouter wires all public endpoints with middleware.
func NewRouter(cfg RouterConfig, contacts *handler.Handler, healthHandler *health.Handler) http.Handler {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	r := chi.NewRouter()

	r.Use(request.Recovery(cfg.Logger))
	r.Use(request.RequestID)
	r.Use(request.RequestTime)
	r.Use(request.ClientIP(cfg.TrustedProxies))
	r.Use(request.Logger(cfg.Logger))
	r.Use(request.LatencyMiddleware(cfg.Metrics))

	healthHandler.Register(r)
	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	r.Group(func(api chi.Router) {
		api.Use(request.Timeout(cfg.RequestTimeout))
		api.Use(request.BodyLimit(validation.MaxBodySize))
		api.Use(request.ContentTypeJSON)
		contacts.Register(api)
	})

	return r
}
