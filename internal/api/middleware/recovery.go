package middleware

import (
	"runtime/debug"

	"github.com/kirusanth290/portfolio/internal/api/constants"
	"github.com/kirusanth290/portfolio/internal/logging"
	"github.com/kirusanth290/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a JSON error reply with the given status and
// message, logging the stack trace.
func Recovery(logger *logging.Logger, status int, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("[PANIC] %s | %s | %s | %s | %v\n%s",
					c.Request.Method,
					c.Request.URL.Path,
					utils.GetRealIP(c),
					c.GetString(constants.ContextKeyRequestID),
					r,
					debug.Stack(),
				)

				if c.Writer.Written() {
					c.Abort()
					return
				}
				utils.AbortWithError(c, status, message)
			}
		}()

		c.Next()
	}
}
