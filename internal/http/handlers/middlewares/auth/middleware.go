package auth

import (
	"context"
	"net/http"
	"strings"

	"shortlink/internal/auth"
	"shortlink/internal/domain/models"
	"shortlink/internal/http/httputils"
)

type contextKey int

const identityKey contextKey = iota

const bearerPrefix = "Bearer "

// MiddlewareAuth извлекает личность из заголовка Authorization.
// Отсутствие заголовка - анонимный вызов (часть эндпоинтов это разрешает),
// но предъявленный и невалидный credential всегда отклоняется с 401.
func MiddlewareAuth(verifier auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			header := r.Header.Get(httputils.HeaderAuthorization)
			if header == "" {
				next.ServeHTTP(w, r.WithContext(withIdentity(ctx, models.Identity{})))
				return
			}

			if !strings.HasPrefix(header, bearerPrefix) {
				httputils.WriteJSONError(w, http.StatusUnauthorized, "missing or invalid authorization header")
				return
			}

			identity, err := verifier.Verify(ctx, strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				httputils.WriteJSONError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(withIdentity(ctx, identity)))
		})
	}
}

func withIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext возвращает личность вызывающего; без middleware - аноним.
func IdentityFromContext(ctx context.Context) models.Identity {
	identity, _ := ctx.Value(identityKey).(models.Identity)
	return identity
}
