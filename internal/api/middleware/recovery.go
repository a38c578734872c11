package middleware

import (
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/bingeboard/pkg/logger"
	"github.com/d60-Lab/bingeboard/pkg/response"
)

// Recovery turns panics into 500s and forwards them to Sentry when a
// client is configured.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				if hub := sentry.CurrentHub(); hub.Client() != nil {
					hub.Recover(r)
				}
				logger.Error("panic recovered",
					zap.String("path", c.Request.URL.Path),
					zap.String("panic", fmt.Sprint(r)))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					response.Response{Code: http.StatusInternalServerError, Message: "internal error"})
			}
		}()
		c.Next()
	}
}
