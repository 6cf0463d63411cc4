package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "showcase_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// MediaStoreOps counts media store calls by operation and outcome.
	MediaStoreOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "showcase_media_store_operations_total",
		Help: "Total media store operations by operation and outcome",
	}, []string{"operation", "outcome"})
)

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(service string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(service)
}

// MetricsMiddleware returns the Fiber handler recording HTTP metrics.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
