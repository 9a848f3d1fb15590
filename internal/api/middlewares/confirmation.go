package middlewares

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/talx-hub/rez-booking/internal/model"
	"github.com/talx-hub/rez-booking/internal/utils/auth"
)

// Confirmation admits requests carrying a valid confirmation cookie and puts the booking id
// into the context. Anything else is redirected to fallback.
func Confirmation(secret []byte, fallback string, log *slog.Logger,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		confirmFunc := func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.CookieName)
			if err != nil {
				log.LogAttrs(r.Context(),
					slog.LevelDebug,
					"no confirmation cookie in request",
				)
				http.Redirect(w, r, fallback, http.StatusSeeOther)
				return
			}

			claims, err := auth.CheckToken(cookie.Value, secret)
			if err != nil {
				log.LogAttrs(r.Context(),
					slog.LevelWarn,
					"confirmation cookie rejected",
					slog.Any(model.KeyLoggerError, err),
				)
				expired := auth.ExpiredCookie()
				http.SetCookie(w, &expired)
				http.Redirect(w, r, fallback, http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), model.KeyContextBookingID, claims.BookingID)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(confirmFunc)
	}
}
