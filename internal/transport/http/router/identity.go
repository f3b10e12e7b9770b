package router

import (
	"net/http"

	"github.com/example/launchpad/internal/ctxutil"
)

// Identity returns middleware that reads the authenticated user's email from
// the header injected by the external identity proxy and stores it in the
// request context. The proxy has already authenticated the request, so the
// value is trusted verbatim; a missing header means the request bypassed the
// proxy and is rejected.
func Identity(headerName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := r.Header.Get(headerName)
			if email == "" {
				http.Error(w, "unauthenticated", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxutil.WithActor(r.Context(), email)))
		})
	}
}
