package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Quotes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_quotes_total",
		Help: "Price calculations by service type and outcome.",
	}, []string{"service_type", "outcome"})

	Orders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_orders_total",
		Help: "Order placements by outcome.",
	}, []string{"outcome"})

	CouponRedemptions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pricing_coupon_redemptions_total",
		Help: "Coupons reserved by committed orders.",
	})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by route and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
