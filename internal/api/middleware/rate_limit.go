package middleware

import (
	"Sokdak/internal/pkg/response"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware 全局令牌桶, rps <= 0 时不限流
func RateLimitMiddleware(rps, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst <= 0 {
		burst = rps
	}

	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			log.WarnContext(c.Request.Context(), "Rate limit exceeded",
				log.String("remote_addr", c.ClientIP()),
				log.String("path", c.FullPath()),
			)
			response.Fail(c, http.StatusTooManyRequests, "요청이 너무 많습니다. 잠시 후 다시 시도해 주세요.")
			return
		}
		c.Next()
	}
}
