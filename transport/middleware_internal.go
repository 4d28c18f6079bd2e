package transport

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/ads-board/constant"
	"github.com/muhammadheryan/ads-board/utils/errors"
)

// InternalMiddleware checks for static API key in header
func InternalMiddleware(apiKey string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("Authorization")
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(got), []byte("Bearer "+apiKey)) != 1 {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
