package providers

import (
	"net/http"
	"strings"

	"fcd/internal/structures"
)

// AuthMiddleware guards the catalog routes with a bearer session token.
// When the session store is disabled the check is skipped entirely: the
// auth layer is a local mock, not a security boundary.
func AuthMiddleware(conf *structures.Config, sessions SessionProviderInterface, next http.Handler) http.Handler {
	if !conf.Session.Enabled {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if _, ok := sessions.Get(token); !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}
