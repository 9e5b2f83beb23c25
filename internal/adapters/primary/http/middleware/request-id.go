package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	headerRequestID = "X-Request-ID"
	keyRequestID    = "request_id"
	keyLogger       = "logger"
)

// RequestID assigns a request id and stores a log entry carrying it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(keyRequestID, requestID)
		c.Set(keyLogger, log.WithField(keyRequestID, requestID))
		c.Header(headerRequestID, requestID)

		c.Next()
	}
}

// Logger returns the request-scoped log entry, or a bare entry when
// RequestID is not installed.
func Logger(c *gin.Context) *log.Entry {
	if v, ok := c.Get(keyLogger); ok {
		if entry, ok := v.(*log.Entry); ok {
			return entry
		}
	}
	return log.NewEntry(log.StandardLogger())
}
