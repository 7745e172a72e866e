package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const service = "reservashop"

var (
	// RequestsTotal tracks total HTTP requests
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "endpoint", "status"},
	)

	// RequestDuration tracks HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "endpoint"},
	)

	// OrdersTotal tracks order creation attempts by outcome
	OrdersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_total",
			Help: "Total number of order creation attempts",
		},
		[]string{"outcome"},
	)

	// PaymentsTotal tracks payment requests by method and outcome
	PaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_total",
			Help: "Total number of payment requests",
		},
		[]string{"method", "outcome"},
	)

	// OrderAmount tracks totals of created orders
	OrderAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_amount",
			Help:    "Totals of created orders",
			Buckets: []float64{10, 50, 100, 500, 1000, 5000, 20000},
		},
	)
)

// Outcome labels shared by order and payment counters.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// ObserveOrder records a finished order creation attempt.
func ObserveOrder(outcome string, total decimal.Decimal) {
	OrdersTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSuccess {
		amount, _ := total.Float64()
		OrderAmount.Observe(amount)
	}
}

// ObservePayment records a finished payment attempt.
func ObservePayment(method, outcome string) {
	if method == "" {
		method = "unknown"
	}
	PaymentsTotal.WithLabelValues(method, outcome).Inc()
}

// Middleware collects request counters and latencies per route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		RequestsTotal.WithLabelValues(service, c.Request.Method, endpoint, status).Inc()
		RequestDuration.WithLabelValues(service, c.Request.Method, endpoint).Observe(duration)
	}
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
