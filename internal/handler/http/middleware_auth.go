package http

import (
	"net/http"

	"github.com/MKhiriev/film-vault/internal/logger"
	"github.com/MKhiriev/film-vault/internal/utils"
	"github.com/rs/zerolog"
)

// withAuth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization: Bearer <token>" header,
// validates it via the TokenService and, on success, stores the resulting
// identity in the request context (see [utils.WithIdentity]) before
// delegating to the next handler. The request logger gains a user_id field.
//
// Every rejection answers 401 with the same generic body; the concrete
// reason is only logged.
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		identity, err := h.services.TokenService.Validate(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		l := logger.FromContext(ctx).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", identity.UserID)
		})
		ctx = l.WithContext(utils.WithIdentity(ctx, identity))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
