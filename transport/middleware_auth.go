package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/shop-console/application/auth"
	"github.com/muhammadheryan/shop-console/constant"
	utilsContext "github.com/muhammadheryan/shop-console/utils/context"
	"github.com/muhammadheryan/shop-console/utils/errors"
)

// AuthMiddleware returns a middleware that validates JWT sessions using AuthApp.
// Public endpoints (/login, /swagger/, /internal/) pass without a token.
func AuthMiddleware(authApp auth.AuthApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(header, "Bearer ")

			sessionID, err := authApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := utilsContext.WithSessionID(r.Context(), sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no session required).
// /internal/ is guarded by its own API key.
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	return path == "/login"
}
