package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"connectsphere/pkg/requestcontext"
)

// HeaderCorrelationID is the header clients use to thread their own
// correlation token through a request.
const HeaderCorrelationID = "X-Correlation-ID"

// Correlation accepts the client's correlation id or mints one, stores it in
// the context and echoes it on the response.
func Correlation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID := r.Header.Get(HeaderCorrelationID)
		if correlationID == "" {
			correlationID = uuid.NewString()
		}
		ctx := requestcontext.WithCorrelationID(r.Context(), correlationID)
		w.Header().Set(HeaderCorrelationID, correlationID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
