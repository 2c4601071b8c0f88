// Package requesttime captures one "now" per HTTP request. Every timestamp
// produced while serving the request reads this instant, which keeps aggregate
// and child entity times consistent and keeps domain operations deterministic
// in tests.
package requesttime

import (
	"net/http"
	"time"

	"connectsphere/pkg/requestcontext"
)

// Middleware stores the current time in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
