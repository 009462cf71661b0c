package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/wa-crm/application/identity"
	"github.com/muhammadheryan/wa-crm/constant"
	utilsContext "github.com/muhammadheryan/wa-crm/utils/context"
	"github.com/muhammadheryan/wa-crm/utils/errors"
)

// AuthMiddleware resolves the bearer token into a caller (user id and role)
// and embeds it in the request context. Swagger and internal routes skip it.
func AuthMiddleware(identityApp identity.IdentityApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			caller, err := identityApp.Resolve(r.Context(), token)
			if err != nil {
				writeError(w, err)
				return
			}

			ctx := utilsContext.WithCaller(r.Context(), caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	return strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/")
}
