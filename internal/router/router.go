package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/talx-hub/rez-booking/internal/api/middlewares"
	"github.com/talx-hub/rez-booking/internal/config"
	"github.com/talx-hub/rez-booking/internal/model"
)

type CustomRouter struct {
	router *chi.Mux
	logger *slog.Logger
	cfg    *config.Config
}

func New(cfg *config.Config, log *slog.Logger) *CustomRouter {
	router := &CustomRouter{
		router: chi.NewRouter(),
		logger: log,
		cfg:    cfg,
	}

	return router
}

type MerchantsHandler interface {
	ListMerchants(w http.ResponseWriter, r *http.Request)
	GetMerchant(w http.ResponseWriter, r *http.Request)
}

type BookingsHandler interface {
	Book(w http.ResponseWriter, r *http.Request)
	GetBooking(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	CreditWallet(w http.ResponseWriter, r *http.Request)
}

type HealthHandler interface {
	Ping(w http.ResponseWriter, r *http.Request)
}

type Handler interface {
	MerchantsHandler
	BookingsHandler
	WalletHandler
	HealthHandler
}

// SetMiddlewares must be called before SetRouter.
func (cr *CustomRouter) SetMiddlewares(observer middlewares.RequestObserver) {
	cr.router.Use(
		middleware.RequestID,
		middlewares.Logging(cr.logger),
		middleware.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", model.HeaderContentType},
			MaxAge:         300,
		}),
	)
	if observer != nil {
		cr.router.Use(middlewares.Metrics(observer))
	}
}

func (cr *CustomRouter) SetRouter(h Handler) {
	cr.router.Route("/api", func(r chi.Router) {
		r.Route("/merchants", func(r chi.Router) {
			r.Get("/", h.ListMerchants)
			r.Get("/{id}", h.GetMerchant)
		})

		r.With(middlewares.AllowContentType(model.ContentTypeJSON)).
			Post("/book", h.Book)
		r.Get("/bookings/{id}", h.GetBooking)

		r.Route("/wallet/{userID}", func(r chi.Router) {
			r.Get("/", h.GetWallet)
			r.With(middlewares.AllowContentType(model.ContentTypeJSON)).
				Post("/add", h.CreditWallet)
		})
	})
	cr.router.Get("/ping", h.Ping)

	cr.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w,
			http.StatusText(http.StatusMethodNotAllowed),
			http.StatusMethodNotAllowed)
	})
}

// SetMetrics exposes the Prometheus scrape endpoint.
func (cr *CustomRouter) SetMetrics(h http.Handler) {
	cr.router.Method(http.MethodGet, "/metrics", h)
}

func (cr *CustomRouter) GetRouter() *chi.Mux {
	return cr.router
}
