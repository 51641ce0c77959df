package transport

import (
	"crypto/subtle"
	"net/http"

	"github.com/muhammadheryan/shop-console/constant"
	"github.com/muhammadheryan/shop-console/utils/errors"
)

// InternalMiddleware checks for the static operator API key in header
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	expected := []byte("Bearer " + apiKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if subtle.ConstantTimeCompare([]byte(r.Header.Get("Authorization")), expected) != 1 {
				writeErrorData(w, errors.NewCustomError(constant.ErrUnauthorize, "Forbidden"), nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
