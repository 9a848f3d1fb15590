package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/talx-hub/rez-booking/internal/api/middlewares"
)

const contentTypeForm = "application/x-www-form-urlencoded"

type Router struct {
	router *chi.Mux
	logger *slog.Logger
	secret []byte
}

func NewRouter(secret []byte, log *slog.Logger) *Router {
	return &Router{
		router: chi.NewRouter(),
		logger: log,
		secret: secret,
	}
}

// SetMiddlewares must be called before SetRouter.
func (wr *Router) SetMiddlewares() {
	wr.router.Use(
		middleware.RequestID,
		middlewares.Logging(wr.logger),
		middleware.Recoverer,
	)
}

func (wr *Router) SetRouter(h *Handler) {
	wr.router.Get("/", h.ListMerchants)
	wr.router.Route("/merchants/{id}", func(r chi.Router) {
		r.Get("/", h.MerchantDetails)
		r.With(middleware.AllowContentType(contentTypeForm)).
			Post("/book", h.Book)
	})
	wr.router.With(middlewares.Confirmation(wr.secret, "/", wr.logger)).
		Get("/confirmation", h.Confirmation)
	wr.router.Get("/bookings/{id}", h.BookingDetails)
	wr.router.Get("/wallet", h.Wallet)
	wr.router.With(middleware.AllowContentType(contentTypeForm)).
		Post("/wallet/add", h.TopUp)
	wr.router.Get("/ping", h.Ping)

	wr.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w,
			http.StatusText(http.StatusMethodNotAllowed),
			http.StatusMethodNotAllowed)
	})
}

func (wr *Router) GetRouter() *chi.Mux {
	return wr.router
}
