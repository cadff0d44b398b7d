// Package metrics expone los contadores Prometheus del servicio y el middleware HTTP de Fiber.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal cuenta peticiones por método, ruta y status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration duración de las peticiones en segundos.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// StockChangesTotal cambios de stock aceptados por el recorder.
	StockChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stock_changes_total",
			Help: "Accepted stock changes by item type and category",
		},
		[]string{"item_type", "category"},
	)

	// RejectedStockChangesTotal cambios rechazados (not_found, invalid_quantity, invalid_input).
	RejectedStockChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rejected_stock_changes_total",
			Help: "Rejected stock changes by reason",
		},
		[]string{"reason"},
	)

	// LowStockNotificationsTotal notificaciones de stock bajo emitidas.
	LowStockNotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "low_stock_notifications_total",
			Help: "Low stock notifications raised on threshold crossings",
		},
		[]string{"item_type"},
	)
)

// Middleware registra conteo y duración de cada petición. Usa la ruta registrada
// (no la URL cruda) para no disparar la cardinalidad con IDs.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		path := c.Route().Path
		statusStr := strconv.Itoa(status)

		HTTPRequestsTotal.WithLabelValues(c.Method(), path, statusStr).Inc()
		HTTPRequestDuration.WithLabelValues(c.Method(), path, statusStr).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler expone /metrics en Fiber.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
