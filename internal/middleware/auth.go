package middleware

import (
	"context"
	"net/http"

	"pawntour/internal/config"
)

type ctxKey int

const ctxPlayerClaims ctxKey = iota

// Auth attaches validated player claims to the request context. Requests
// without a valid token pass through anonymously with their stale cookies
// cleared.
func Auth(jwt *config.JWT, cookies *config.Cookies) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := jwt.ParsePlayerClaims(r)
			if err != nil {
				cookies.Clear(w)
				h.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), ctxPlayerClaims, claims)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PlayerClaimsFrom returns the claims stored by Auth, if any.
func PlayerClaimsFrom(ctx context.Context) (*config.PlayerClaims, bool) {
	claims, ok := ctx.Value(ctxPlayerClaims).(*config.PlayerClaims)
	return claims, ok
}
