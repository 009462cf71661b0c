package transport

import (
	"crypto/subtle"
	"net/http"

	"github.com/muhammadheryan/wa-crm/constant"
	"github.com/muhammadheryan/wa-crm/utils/errors"
)

// InternalMiddleware checks for static API key in header. An empty key
// disables every internal route.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
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
