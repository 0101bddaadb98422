package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger prints one line per request including request_id and the
// authenticated user when available.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		user := GetUserID(c)
		if user == "" {
			user = "-"
		}

		log.Printf("[HTTP] request_id=%s method=%s path=%s status=%d bytes=%d latency_ms=%.3f user=%s ip=%s",
			GetRequestID(c),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			c.Writer.Size(),
			float64(latency.Microseconds())/1000.0,
			user,
			c.ClientIP(),
		)
	}
}
