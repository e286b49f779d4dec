package requestid

import (
	"net/http"
	"signup/internal/core/domain/logging"

	"github.com/google/uuid"
)

const (
	REQUEST_ID_HEADER     = "X-Request-ID"
	REQUEST_ID_MAX_LENGTH = 128
)

// SetRequestIDToContext keeps a caller-supplied request id if it is sane,
// otherwise generates one.
func SetRequestIDToContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(REQUEST_ID_HEADER)
		if requestID == "" || len(requestID) > REQUEST_ID_MAX_LENGTH {
			requestID = uuid.NewString()
		}
		w.Header().Set(REQUEST_ID_HEADER, requestID)
		ctx := logging.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
