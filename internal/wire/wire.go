package wire

import (
	"context"
	"net/http"
	"time"

	"ecommerce-api/internal/adaptor"
	"ecommerce-api/internal/usecase"
	"ecommerce-api/pkg/middleware"
	"ecommerce-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type App struct {
	Router http.Handler
}

// guards holds the access middlewares shared by the route groups.
type guards struct {
	auth  func(http.Handler) http.Handler
	admin func(http.Handler) http.Handler
}

// Wiring builds the handlers and the instrumented router.
func Wiring(service *usecase.Service, db Pinger, tokens *utils.TokenManager, logger *zap.Logger) (*App, error) {
	handler := adaptor.NewHandler(service, logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router, err := setupRouter(handler, db, tokens, reg, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		Router: otelhttp.NewHandler(router, "http.server",
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		),
	}, nil
}

func setupRouter(
	handler *adaptor.Handler,
	db Pinger,
	tokens *utils.TokenManager,
	reg *prometheus.Registry,
	logger *zap.Logger,
) (*chi.Mux, error) {
	metrics, err := middleware.NewMetrics(reg)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(metrics.Handler)

	g := guards{
		auth:  middleware.AuthUser(tokens, logger),
		admin: middleware.Admin(logger),
	}

	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, g)
	wireAddress(r, handler.Address, g)
	wireLocation(r, handler.State)
	wireCategory(r, handler.Category, g)
	wireProduct(r, handler.Product, g)
	wireCart(r, handler.Cart, g)
	wirePaymentStatus(r, handler.PaymentStatus)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Warn("Health check failed", zap.Error(err))
			utils.ResponseUnavailable(w, "database unreachable")
			return
		}
		utils.ResponseSuccess(w, "OK", nil)
	})

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return r, nil
}
