package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/ads-board/application/user"
	"github.com/muhammadheryan/ads-board/constant"
	"github.com/muhammadheryan/ads-board/model"
	utilsContext "github.com/muhammadheryan/ads-board/utils/context"
	"github.com/muhammadheryan/ads-board/utils/errors"
)

// AuthMiddleware resolves the caller from a Bearer session token or HTTP Basic
// credentials and stores it in the request context.
// It allows public endpoints (like /login, /register, /swagger/) without credentials.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			var (
				principal *model.Principal
				err       error
			)
			auth := r.Header.Get("Authorization")
			switch {
			case strings.HasPrefix(auth, "Bearer "):
				principal, err = userApp.ValidateToken(r.Context(), strings.TrimPrefix(auth, "Bearer "))
			case strings.HasPrefix(auth, "Basic "):
				username, password, ok := r.BasicAuth()
				if !ok {
					writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
					return
				}
				principal, err = userApp.Authenticate(r.Context(), username, password)
			default:
				w.Header().Set("WWW-Authenticate", `Basic realm="ads-board"`)
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			if err != nil || principal == nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := utilsContext.WithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	for _, prefix := range []string{"/swagger/", "/internal/", "/ads-images/", "/avatars/"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	switch path {
	case "/login", "/register", "/metrics":
		return true
	}
	return false
}
