package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Cheertaboi/facility-pricing-service/internal/api/handlers"
	"github.com/Cheertaboi/facility-pricing-service/internal/api/middleware"
)

type Deps struct {
	Pricing     *handlers.PricingHandler
	Orders      *handlers.OrderHandler
	Users       *handlers.UserHandler
	Coupons     *handlers.CouponHandler
	Verifier    *middleware.Verifier
	CORSOrigins []string
}

// NewRouter builds the HTTP router for the pricing service
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", handlers.IdempotencyKeyHeader, middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(15 * time.Second))
		r.Use(middleware.Authenticate(d.Verifier))

		r.Post("/payments/calculate", d.Pricing.Calculate)
		r.Post("/canteen/quote", d.Pricing.QuoteCanteen)
		r.Post("/orders", d.Orders.PlaceOrder)

		// Admin endpoints
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Post("/users/{id}/balance", d.Users.TopUp)
			r.Post("/coupons", d.Coupons.CreateCoupon)
			r.Get("/coupons/{code}", d.Coupons.GetCoupon)
		})
	})

	// health
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
