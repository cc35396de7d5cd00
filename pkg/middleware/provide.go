package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/storo-shop/backend/pkg/constants"
)

// Provide injects a value under key into every request context.
func Provide(key constants.ContextKey, value interface{}) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), key, value)))
		})
	}
}
