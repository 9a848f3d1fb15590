package middlewares

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/talx-hub/rez-booking/internal/api/dto"
	"github.com/talx-hub/rez-booking/internal/model"
)

const msgUnsupportedMediaType = "Unsupported content type"

// AllowContentType answers 415 with a JSON error body when a request body is sent
// with a media type other than the listed ones. Bodyless requests pass.
func AllowContentType(contentTypes ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(contentTypes))
	for _, ct := range contentTypes {
		allowed[ct] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		checkFunc := func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength == 0 {
				next.ServeHTTP(w, r)
				return
			}

			ct, _, err := mime.ParseMediaType(r.Header.Get(model.HeaderContentType))
			if _, ok := allowed[ct]; err == nil && ok {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set(model.HeaderContentType, model.ContentTypeJSON)
			w.WriteHeader(http.StatusUnsupportedMediaType)
			_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Error: msgUnsupportedMediaType})
		}
		return http.HandlerFunc(checkFunc)
	}
}
