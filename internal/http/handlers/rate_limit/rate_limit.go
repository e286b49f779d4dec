package ratelimit

import (
	"math"
	"net"
	"net/http"
	e "signup/internal/core/domain/errors"
	"signup/internal/core/domain/logging"
	ratelimiter "signup/internal/core/domain/rate_limiter"
	"signup/internal/http/handlers/response"
	"strconv"
)

// WithRateLimiting limits requests per client address. It expects RemoteAddr
// to be already resolved to the real client address.
func WithRateLimiting(
	log logging.Logger,
	rateLimiter ratelimiter.RateLimiter,
	limit ratelimiter.Limit,
	keyPrefix string,
) func(http.Handler) http.Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if rateLimiter == nil {
		panic(e.NewNilArgumentError("rateLimiter"))
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyPrefix + "::" + clientAddress(r)
			rate := rateLimiter.CheckLimit(r.Context(), key, limit)
			if rate.IsAllowed {
				next.ServeHTTP(w, r)
				return
			}

			log.Warning(r.Context(), "Rate limit exceeded.", logging.Entry("key", key))
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(rate.RetryAfter.Seconds()))))
			response.RenderRateLimitExceeded(w)
		})
	}
}

func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
