package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/httprate"
)

// RateLimit returns a fixed-window per-client-IP limiter built on
// go-chi/httprate. Requests over budget are rejected with 429 and the
// JSON error envelope; the window resets on its own, there is no
// queueing.
func RateLimit(requests int, window time.Duration, message string) gin.HandlerFunc {
	limiter := httprate.NewRateLimiter(
		requests,
		window,
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, r, http.StatusTooManyRequests, message)
		}),
	)

	return func(c *gin.Context) {
		key, err := httprate.KeyByRealIP(c.Request)
		if err != nil {
			key = c.ClientIP()
		}
		if limiter.OnLimit(c.Writer, c.Request, key) {
			c.Abort()
			return
		}
		c.Next()
	}
}
