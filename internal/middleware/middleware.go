package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dquispe/sufragio/internal/pkg/logger"
)

// RequestLogger logs one structured line per request once the handler chain
// has finished.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("client_ip", c.ClientIP()).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
