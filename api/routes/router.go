package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rydeapp/ryde-backend/api/controllers"
	"github.com/rydeapp/ryde-backend/api/middleware"
	"github.com/rydeapp/ryde-backend/internal/payments"
	"github.com/rydeapp/ryde-backend/internal/rides"
	"github.com/rydeapp/ryde-backend/internal/users"
	"github.com/rydeapp/ryde-backend/pkg/config"
	"github.com/rydeapp/ryde-backend/pkg/db"
	"github.com/rydeapp/ryde-backend/pkg/logger"
	"github.com/rydeapp/ryde-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	paymentService payments.Service,
	userService users.Service,
	rideService rides.Service,
) http.Handler {
	r := chi.NewRouter()

	registry := prometheus.NewRegistry()
	requestMetrics := metrics.NewRequestMetrics(registry)

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(requestMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/stripe", func(r chi.Router) {
			r.Post("/create", controllers.CreatePaymentSheet(paymentService, logg))
			r.Post("/pay", controllers.ConfirmPayment(paymentService, logg))
		})

		r.Post("/users", controllers.CreateUser(userService, logg))

		r.Route("/rides", func(r chi.Router) {
			r.Post("/", controllers.CreateRide(rideService, logg))
			r.Get("/{userId}", controllers.ListUserRides(rideService, logg))
		})
	})

	return r
}
