package middleware

import (
	"time"

	"homeinsight-sqft/pkg/logger"

	"github.com/gin-gonic/gin"
)

// probe routes are scraped constantly and only logged at DEBUG
var quietPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		if quietPaths[path] {
			logger.GlobalLogger.Debugf("%s %s %d %v request_id=%s", method, path, status, latency, GetRequestID(c))
			return
		}
		logger.GlobalLogger.Printf("%s %s %d %v request_id=%s", method, path, status, latency, GetRequestID(c))
	}
}
