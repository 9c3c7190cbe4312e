package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Nullular/myHustle-WEB-sub004/internal/domain"
)

// HeaderAuthMiddleware reads the identity headers set by the edge proxy
// (replace with real JWT validation when the edge does not terminate auth).
// Requests without a user id pass through unauthenticated; handlers decide
// whether that is acceptable.
func HeaderAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")
		if userID == "" {
			next.ServeHTTP(w, r)
			return
		}

		user := &domain.User{
			ID:          userID,
			DisplayName: r.Header.Get("X-User-Name"),
			Email:       r.Header.Get("X-User-Email"),
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = fmt.Sprintf("req-%d", time.Now().UnixNano())
		}

		ctx := context.WithValue(r.Context(), requestIDContextKey, requestID)
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
